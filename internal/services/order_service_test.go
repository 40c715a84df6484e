// internal/services/order_service_test.go
package services

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rrtraders/rr-backend/internal/config"
	"github.com/rrtraders/rr-backend/pkg/checkout"
)

func testOrderService() *OrderService {
	cfg := &config.Config{
		Payment: config.PaymentConfig{
			Currency:              "INR",
			TaxRate:               0.05,
			FreeShippingThreshold: 1000,
			FlatShippingFee:       50,
		},
	}
	return NewOrderService(nil, cfg, nil)
}

func validSubmission(t *testing.T) OrderSubmission {
	t.Helper()

	items := []checkout.Item{
		{ProductID: "p1", Name: "Sandal Agarbatti", OriginalPrice: 120, UnitPrice: 100, Quantity: 2},
		{ProductID: "p2", Name: "Camphor", OriginalPrice: 250, UnitPrice: 250, Quantity: 1},
	}
	itemsJSON, err := json.Marshal(items)
	require.NoError(t, err)

	totals := checkout.Compute([]checkout.Line{
		{UnitPrice: 100, Quantity: 2},
		{UnitPrice: 250, Quantity: 1},
	}, checkout.Defaults()).Rounded()
	totalsJSON, err := json.Marshal(totals)
	require.NoError(t, err)

	return OrderSubmission{
		Form: checkout.DeliveryForm{
			Name:        "Asha Rao",
			Mobile:      "9876543210",
			Address:     "12 Temple Street, Mysuru",
			Pincode:     "570001",
			PaymentMode: "cod",
		},
		ItemsJSON:  string(itemsJSON),
		TotalsJSON: string(totalsJSON),
	}
}

func TestCreateFromSubmissionRejectsInvalidForm(t *testing.T) {
	svc := testOrderService()
	sub := validSubmission(t)
	sub.Form.Mobile = "12345"

	_, err := svc.CreateFromSubmission(sub)
	require.Error(t, err)

	var subErr *SubmissionError
	require.ErrorAs(t, err, &subErr)
	assert.Equal(t, checkout.FieldMobile, subErr.Fields[0].Field)
}

func TestCreateFromSubmissionRejectsUnknownPaymentMode(t *testing.T) {
	svc := testOrderService()
	sub := validSubmission(t)
	sub.Form.PaymentMode = "cheque"

	_, err := svc.CreateFromSubmission(sub)
	require.Error(t, err)

	var subErr *SubmissionError
	require.ErrorAs(t, err, &subErr)
	assert.Equal(t, checkout.FieldPaymentMode, subErr.Fields[0].Field)
}

func TestCreateFromSubmissionRejectsMalformedItems(t *testing.T) {
	svc := testOrderService()
	sub := validSubmission(t)
	sub.ItemsJSON = "{not json"

	_, err := svc.CreateFromSubmission(sub)
	assert.EqualError(t, err, "items payload is not valid JSON")
}

func TestCreateFromSubmissionRejectsEmptyItems(t *testing.T) {
	svc := testOrderService()
	sub := validSubmission(t)
	sub.ItemsJSON = "[]"

	_, err := svc.CreateFromSubmission(sub)
	assert.EqualError(t, err, "order must contain at least one item")
}

func TestCreateFromSubmissionRejectsBadQuantity(t *testing.T) {
	svc := testOrderService()
	sub := validSubmission(t)
	sub.ItemsJSON = `[{"productId":"p1","unitPrice":100,"quantity":0}]`

	_, err := svc.CreateFromSubmission(sub)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid quantity")
}

func TestCreateFromSubmissionRejectsTotalsMismatch(t *testing.T) {
	svc := testOrderService()
	sub := validSubmission(t)

	// Claim free shipping on a cart below the threshold.
	forged := checkout.Totals{Subtotal: 450, Tax: 22.5, Shipping: 0, Total: 472.5, ItemCount: 3, Currency: "INR"}
	forgedJSON, err := json.Marshal(forged)
	require.NoError(t, err)
	sub.TotalsJSON = string(forgedJSON)

	_, err = svc.CreateFromSubmission(sub)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "totals mismatch")
}

func TestStartOfDayUsesLocalMidnight(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)

	// 01:30 IST is the previous day in UTC; the day boundary must
	// follow the clock the orders were placed under, not UTC.
	now := time.Date(2026, 8, 28, 1, 30, 0, 0, ist)
	start := startOfDay(now)

	assert.Equal(t, time.Date(2026, 8, 28, 0, 0, 0, 0, ist), start)
	assert.Equal(t, ist, start.Location())
	assert.NotEqual(t, now.UTC().Truncate(24*time.Hour), start.UTC())
}

func TestTotalsMatchToleratesUnroundedClaims(t *testing.T) {
	derived := checkout.Totals{Subtotal: 450, Tax: 22.5, Shipping: 50, Total: 522.5}
	claimed := checkout.Totals{Subtotal: 450, Tax: 22.499999999, Shipping: 50, Total: 522.499999999}

	assert.True(t, totalsMatch(derived, claimed))
}
