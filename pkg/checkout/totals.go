// pkg/checkout/totals.go
package checkout

import "math"

// Params are the storefront's checkout constants. The server loads them
// from configuration; clients use Defaults, which must match the server
// or submissions are rejected.
type Params struct {
	TaxRate           float64
	FreeShippingAbove float64
	FlatShippingFee   float64
	Currency          string
}

func Defaults() Params {
	return Params{
		TaxRate:           0.05,
		FreeShippingAbove: 1000,
		FlatShippingFee:   50,
		Currency:          "INR",
	}
}

// Line is the minimal shape the totals pipeline needs: the unit price
// captured when the line was added, and its quantity.
type Line struct {
	UnitPrice float64
	Quantity  int
}

// Totals holds unrounded intermediate values. Rounding happens only at
// the point of transmission or display, via Rounded.
type Totals struct {
	Subtotal  float64 `json:"subtotal"`
	Tax       float64 `json:"tax"`
	Shipping  float64 `json:"shipping"`
	Total     float64 `json:"total"`
	ItemCount int     `json:"itemCount"`
	Currency  string  `json:"currency"`
}

// Compute derives totals from cart lines:
//
//	subtotal = Σ unitPrice × quantity
//	tax      = subtotal × TaxRate
//	shipping = 0 when subtotal is strictly above the threshold, flat fee otherwise
//	total    = subtotal + tax + shipping
//
// No rounding is applied here.
func Compute(lines []Line, p Params) Totals {
	t := Totals{Currency: p.Currency}

	for _, l := range lines {
		t.Subtotal += l.UnitPrice * float64(l.Quantity)
		t.ItemCount += l.Quantity
	}

	t.Tax = t.Subtotal * p.TaxRate

	// Free shipping only strictly above the threshold; a subtotal of
	// exactly the threshold still pays the flat fee.
	if t.Subtotal > p.FreeShippingAbove {
		t.Shipping = 0
	} else {
		t.Shipping = p.FlatShippingFee
	}

	t.Total = t.Subtotal + t.Tax + t.Shipping
	return t
}

// Rounded returns a copy with every amount rounded to two decimal
// places, the form sent over the wire and shown to the customer.
func (t Totals) Rounded() Totals {
	return Totals{
		Subtotal:  Round2(t.Subtotal),
		Tax:       Round2(t.Tax),
		Shipping:  Round2(t.Shipping),
		Total:     Round2(t.Total),
		ItemCount: t.ItemCount,
		Currency:  t.Currency,
	}
}

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
