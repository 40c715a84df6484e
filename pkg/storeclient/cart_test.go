// pkg/storeclient/cart_test.go
package storeclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rrtraders/rr-backend/pkg/checkout"
)

func offerProduct(id string, original, offer float64) Product {
	return Product{ID: id, Name: "Product " + id, OriginalPrice: original, OfferPrice: &offer}
}

func TestCartCapturesOfferPrice(t *testing.T) {
	cart := NewCart()
	cart.Add(offerProduct("p1", 120, 100), 1)

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 100.0, lines[0].UnitPrice)
	assert.Equal(t, 120.0, lines[0].OriginalPrice)
}

func TestCartFallsBackToOriginalPrice(t *testing.T) {
	cart := NewCart()
	cart.Add(Product{ID: "p1", OriginalPrice: 120}, 1)

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 120.0, lines[0].UnitPrice)
}

func TestCartPriceImmutableAfterAdd(t *testing.T) {
	cart := NewCart()
	p := offerProduct("p1", 120, 100)
	cart.Add(p, 1)

	// A later price change merges quantity but keeps the captured price.
	discounted := offerProduct("p1", 120, 80)
	cart.Add(discounted, 2)

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Quantity)
	assert.Equal(t, 100.0, lines[0].UnitPrice)
}

func TestCartDecrementRemovesAtZero(t *testing.T) {
	cart := NewCart()
	cart.Add(offerProduct("p1", 120, 100), 2)

	cart.Decrement("p1")
	require.Len(t, cart.Lines(), 1)
	assert.Equal(t, 1, cart.Lines()[0].Quantity)

	cart.Decrement("p1")
	assert.Empty(t, cart.Lines())

	// Decrementing an absent product is a no-op.
	cart.Decrement("p1")
	assert.Empty(t, cart.Lines())
}

func TestCartRemoveAbsentIsNoop(t *testing.T) {
	cart := NewCart()
	cart.Add(offerProduct("p1", 120, 100), 1)
	cart.Remove("missing")
	assert.Len(t, cart.Lines(), 1)
}

func TestCartSubtotalAndCount(t *testing.T) {
	cart := NewCart()
	cart.Add(offerProduct("p1", 120, 100), 2)
	cart.Add(offerProduct("p2", 250, 250), 1)

	assert.Equal(t, 450.0, cart.Subtotal())
	assert.Equal(t, 3, cart.ItemCount())

	totals := cart.Totals(checkout.Defaults())
	assert.Equal(t, 450.0, totals.Subtotal)
	assert.Equal(t, 50.0, totals.Shipping)
}

func TestCartCheckoutItemsAreSnapshots(t *testing.T) {
	cart := NewCart()
	cart.Add(offerProduct("p1", 120, 100), 2)

	items := cart.CheckoutItems()
	cart.Clear()

	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Empty(t, cart.Lines())
}
