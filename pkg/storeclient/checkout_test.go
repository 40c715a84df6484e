// pkg/storeclient/checkout_test.go
package storeclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rrtraders/rr-backend/pkg/checkout"
)

type receivedSubmission struct {
	form   map[string]string
	items  []checkout.Item
	totals checkout.Totals
}

func checkoutServer(t *testing.T, status int, received *receivedSubmission) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/payment/create", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))

		if received != nil {
			received.form = map[string]string{
				checkout.FieldName:        r.FormValue(checkout.FieldName),
				checkout.FieldMobile:      r.FormValue(checkout.FieldMobile),
				checkout.FieldPaymentMode: r.FormValue(checkout.FieldPaymentMode),
			}
			require.NoError(t, json.Unmarshal([]byte(r.FormValue(checkout.FieldItems)), &received.items))
			require.NoError(t, json.Unmarshal([]byte(r.FormValue(checkout.FieldTotals)), &received.totals))
		}

		if status != http.StatusCreated {
			w.WriteHeader(status)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": false,
				"error":   map[string]string{"code": "BAD_REQUEST", "message": "totals mismatch"},
			})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data": map[string]interface{}{
				"order": map[string]interface{}{"id": "o1", "status": "Pending", "total": 1260.0},
			},
		})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func filledFlow(t *testing.T, baseURL string) (*CheckoutFlow, *Cart) {
	t.Helper()

	cart := NewCart()
	cart.Add(offerProduct("p1", 700, 600), 1)
	cart.Add(offerProduct("p2", 650, 600), 1)

	flow := NewCheckoutFlow(New(Config{BaseURL: baseURL}), cart, checkout.Defaults())
	flow.SetForm(checkout.DeliveryForm{
		Name:        "Asha Rao",
		Mobile:      "9876543210",
		Address:     "12 Temple Street, Mysuru",
		Pincode:     "570001",
		PaymentMode: "cod",
	})
	return flow, cart
}

func TestCheckoutSuccessClearsCartAndForm(t *testing.T) {
	received := &receivedSubmission{}
	srv := checkoutServer(t, http.StatusCreated, received)
	flow, cart := filledFlow(t, srv.URL)

	order, err := flow.Submit(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "o1", order.ID)

	// Wire payload carried the rounded free-shipping totals.
	assert.Equal(t, "Asha Rao", received.form[checkout.FieldName])
	assert.Len(t, received.items, 2)
	assert.Equal(t, 1200.0, received.totals.Subtotal)
	assert.Equal(t, 60.0, received.totals.Tax)
	assert.Equal(t, 0.0, received.totals.Shipping)
	assert.Equal(t, 1260.0, received.totals.Total)

	assert.Empty(t, cart.Lines())
	assert.Equal(t, checkout.DeliveryForm{}, flow.Form())
}

func TestCheckoutFailureLeavesStateUntouched(t *testing.T) {
	srv := checkoutServer(t, http.StatusBadRequest, nil)
	flow, cart := filledFlow(t, srv.URL)

	_, err := flow.Submit(context.Background(), nil)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "totals mismatch", apiErr.Message)

	assert.Len(t, cart.Lines(), 2)
	assert.Equal(t, "Asha Rao", flow.Form().Name)
}

func TestCheckoutValidationGatesNetwork(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	t.Cleanup(srv.Close)

	cart := NewCart()
	cart.Add(offerProduct("p1", 120, 100), 1)
	flow := NewCheckoutFlow(New(Config{BaseURL: srv.URL}), cart, checkout.Defaults())
	flow.SetForm(checkout.DeliveryForm{Name: "Asha Rao", Mobile: "12"})

	_, err := flow.Submit(context.Background(), nil)
	require.Error(t, err)

	var vErr *ValidationFailed
	require.ErrorAs(t, err, &vErr)
	assert.NotEmpty(t, vErr.Fields)
	assert.Zero(t, calls)
	assert.Len(t, cart.Lines(), 1)
}

func TestClientDecodeErrorOnUnexpectedShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>gateway error</html>`))
	}))
	t.Cleanup(srv.Close)

	client := New(Config{BaseURL: srv.URL})
	_, err := client.FetchProducts(context.Background())
	require.Error(t, err)

	var decodeErr *DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}
