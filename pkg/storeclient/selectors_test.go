// pkg/storeclient/selectors_test.go
package storeclient

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOrdersToday(t *testing.T) {
	now := time.Date(2026, 8, 28, 15, 30, 0, 0, time.UTC)
	orders := []Order{
		{ID: "o1", CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "o2", CreatedAt: time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)},
		{ID: "o3", CreatedAt: now.Add(-24 * time.Hour)},
		{ID: "o4", CreatedAt: time.Date(2026, 8, 27, 23, 59, 59, 0, time.UTC)},
	}

	assert.Equal(t, 2, OrdersToday(orders, now))
}

func TestPendingOrders(t *testing.T) {
	orders := []Order{
		{Status: "Pending"},
		{Status: "Shipped"},
		{Status: "Pending"},
		{Status: "Cancelled"},
	}

	assert.Equal(t, 2, PendingOrders(orders))
}

func TestRevenueExcludesCancelled(t *testing.T) {
	orders := []Order{
		{Total: 500, Status: "Delivered"},
		{Total: 300, Status: "Pending"},
		{Total: 999, Status: "Cancelled"},
	}

	assert.Equal(t, 800.0, Revenue(orders))
}
