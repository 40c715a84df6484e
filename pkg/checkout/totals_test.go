// pkg/checkout/totals_test.go
package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeMixedCart(t *testing.T) {
	lines := []Line{
		{UnitPrice: 100, Quantity: 2},
		{UnitPrice: 250, Quantity: 1},
	}

	totals := Compute(lines, Defaults()).Rounded()

	assert.Equal(t, 450.0, totals.Subtotal)
	assert.Equal(t, 22.5, totals.Tax)
	assert.Equal(t, 50.0, totals.Shipping)
	assert.Equal(t, 522.5, totals.Total)
	assert.Equal(t, 3, totals.ItemCount)
	assert.Equal(t, "INR", totals.Currency)
}

func TestComputeFreeShippingBoundary(t *testing.T) {
	// Exactly at the threshold still pays the flat fee.
	atThreshold := Compute([]Line{{UnitPrice: 1000, Quantity: 1}}, Defaults())
	assert.Equal(t, 50.0, atThreshold.Shipping)

	// One paisa above it ships free.
	above := Compute([]Line{{UnitPrice: 1000.01, Quantity: 1}}, Defaults())
	assert.Equal(t, 0.0, above.Shipping)
}

func TestComputeFreeShippingCart(t *testing.T) {
	lines := []Line{
		{UnitPrice: 600, Quantity: 1},
		{UnitPrice: 600, Quantity: 1},
	}

	totals := Compute(lines, Defaults()).Rounded()

	assert.Equal(t, 1200.0, totals.Subtotal)
	assert.Equal(t, 60.0, totals.Tax)
	assert.Equal(t, 0.0, totals.Shipping)
	assert.Equal(t, 1260.0, totals.Total)
}

func TestComputeEmptyCart(t *testing.T) {
	totals := Compute(nil, Defaults())

	assert.Equal(t, 0.0, totals.Subtotal)
	assert.Equal(t, 0.0, totals.Tax)
	assert.Equal(t, 50.0, totals.Shipping)
	assert.Equal(t, 0, totals.ItemCount)
}

func TestRoundingOnlyAtTransmission(t *testing.T) {
	// 33.33 × 3 = 99.99, tax 4.9995: Compute keeps full precision,
	// Rounded snaps to two decimals.
	raw := Compute([]Line{{UnitPrice: 33.33, Quantity: 3}}, Defaults())
	assert.InDelta(t, 4.9995, raw.Tax, 1e-9)

	rounded := raw.Rounded()
	assert.Equal(t, 5.0, rounded.Tax)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 22.5, Round2(22.4999999))
	assert.Equal(t, 0.1, Round2(0.10000000001))
	assert.Equal(t, 1260.0, Round2(1260))
}
