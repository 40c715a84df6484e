// pkg/storeclient/checkout.go
package storeclient

import (
	"context"
	"sync"

	"github.com/rrtraders/rr-backend/pkg/checkout"
)

// CheckoutFlow drives one checkout: it holds the delivery form being
// filled in, validates it locally before any network traffic, and on a
// successful submission clears the cart and resets the form. A failed
// submission leaves both untouched so the customer can retry.
type CheckoutFlow struct {
	mu     sync.Mutex
	client *Client
	cart   *Cart
	params checkout.Params
	form   checkout.DeliveryForm
}

func NewCheckoutFlow(client *Client, cart *Cart, params checkout.Params) *CheckoutFlow {
	return &CheckoutFlow{
		client: client,
		cart:   cart,
		params: params,
	}
}

func (f *CheckoutFlow) SetForm(form checkout.DeliveryForm) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.form = form
}

func (f *CheckoutFlow) Form() checkout.DeliveryForm {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.form
}

// Totals previews the current cart through the shared pipeline.
func (f *CheckoutFlow) Totals() checkout.Totals {
	return f.cart.Totals(f.params)
}

// Validate runs the local synchronous checks. A non-empty result means
// Submit would refuse to touch the network.
func (f *CheckoutFlow) Validate() []checkout.FieldError {
	return f.Form().Validate()
}

// Submit sends the checkout payload. The item snapshots are value
// copies taken before the call, so the cart clear on success cannot
// disturb what was sent.
func (f *CheckoutFlow) Submit(ctx context.Context, shot *checkout.Screenshot) (*Order, error) {
	form := f.Form()

	if errs := form.Validate(); len(errs) > 0 {
		return nil, &ValidationFailed{Fields: errs}
	}

	items := f.cart.CheckoutItems()
	totals := f.cart.Totals(f.params)

	order, err := f.client.SubmitCheckout(ctx, form, items, totals, shot)
	if err != nil {
		return nil, err
	}

	f.cart.Clear()
	f.mu.Lock()
	f.form = checkout.DeliveryForm{}
	f.mu.Unlock()

	return order, nil
}

// ValidationFailed reports local form errors that blocked a submission.
type ValidationFailed struct {
	Fields []checkout.FieldError
}

func (e *ValidationFailed) Error() string {
	if len(e.Fields) > 0 {
		return e.Fields[0].Message
	}
	return "invalid delivery details"
}
