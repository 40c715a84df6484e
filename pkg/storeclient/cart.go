// pkg/storeclient/cart.go
package storeclient

import (
	"sync"

	"github.com/rrtraders/rr-backend/pkg/checkout"
)

// CartLine is a cart entry. UnitPrice is captured when the line is
// added and never re-read from the catalogue: a price change after the
// fact does not touch lines already in the cart.
type CartLine struct {
	ProductID     string  `json:"productId"`
	Name          string  `json:"name"`
	Image         string  `json:"image,omitempty"`
	Brand         string  `json:"brand,omitempty"`
	OriginalPrice float64 `json:"originalPrice"`
	UnitPrice     float64 `json:"unitPrice"`
	Quantity      int     `json:"quantity"`
}

type Cart struct {
	mu    sync.Mutex
	lines []CartLine
}

func NewCart() *Cart {
	return &Cart{}
}

// Add puts a product in the cart. A product already present has its
// quantity bumped; the price captured on first add wins.
func (c *Cart) Add(p Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ProductID == p.ID {
			c.lines[i].Quantity += quantity
			return
		}
	}

	line := CartLine{
		ProductID:     p.ID,
		Name:          p.Name,
		OriginalPrice: p.OriginalPrice,
		UnitPrice:     p.UnitPrice(),
		Quantity:      quantity,
	}
	if len(p.Images) > 0 {
		line.Image = p.Images[0]
	}
	if len(p.Brands) > 0 {
		line.Brand = p.Brands[0]
	}
	c.lines = append(c.lines, line)
}

// Remove drops a line entirely. Removing an absent product is a no-op.
func (c *Cart) Remove(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Decrement lowers a line's quantity by one, dropping the line when it
// reaches zero. Quantities never go negative.
func (c *Cart) Decrement(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ProductID != productID {
			continue
		}
		c.lines[i].Quantity--
		if c.lines[i].Quantity <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		}
		return
	}
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

func (c *Cart) Lines() []CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	lines := make([]CartLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	count := 0
	for _, line := range c.lines {
		count += line.Quantity
	}
	return count
}

func (c *Cart) Subtotal() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	subtotal := 0.0
	for _, line := range c.lines {
		subtotal += line.UnitPrice * float64(line.Quantity)
	}
	return subtotal
}

// Totals runs the shared checkout pipeline over the current lines.
func (c *Cart) Totals(p checkout.Params) checkout.Totals {
	lines := c.Lines()
	checkoutLines := make([]checkout.Line, len(lines))
	for i, line := range lines {
		checkoutLines[i] = checkout.Line{UnitPrice: line.UnitPrice, Quantity: line.Quantity}
	}
	return checkout.Compute(checkoutLines, p)
}

// CheckoutItems snapshots the lines as value copies for a submission
// payload, so clearing the cart afterwards cannot mutate the payload.
func (c *Cart) CheckoutItems() []checkout.Item {
	lines := c.Lines()
	items := make([]checkout.Item, len(lines))
	for i, line := range lines {
		items[i] = checkout.Item{
			ProductID:     line.ProductID,
			Name:          line.Name,
			Image:         line.Image,
			Brand:         line.Brand,
			OriginalPrice: line.OriginalPrice,
			UnitPrice:     line.UnitPrice,
			Quantity:      line.Quantity,
		}
	}
	return items
}
