// pkg/storeclient/types.go
package storeclient

import "time"

// Wire types for the storefront API. Fields mirror the server's JSON
// exactly; decoding is strict about the envelope, so shape drift shows
// up as a DecodeError instead of silently-zero fields.

type Product struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	OriginalPrice   float64  `json:"originalPrice"`
	OfferPrice      *float64 `json:"offerPrice,omitempty"`
	DiscountPercent float64  `json:"discountPercent"`
	Images          []string `json:"images"`
	Videos          []string `json:"videos"`
	Categories      []string `json:"categories"`
	Brands          []string `json:"brands"`
}

// UnitPrice is the effective selling price: offer price when present,
// original price otherwise.
func (p Product) UnitPrice() float64 {
	if p.OfferPrice != nil {
		return *p.OfferPrice
	}
	return p.OriginalPrice
}

type Category struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Images []string `json:"images"`
}

type Banner struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Image  string `json:"image"`
	Link   string `json:"link"`
	Active bool   `json:"active"`
}

type OrderItem struct {
	ProductID     string  `json:"productId"`
	Name          string  `json:"name"`
	Image         string  `json:"image,omitempty"`
	Brand         string  `json:"brand,omitempty"`
	OriginalPrice float64 `json:"originalPrice"`
	UnitPrice     float64 `json:"unitPrice"`
	Quantity      int     `json:"quantity"`
}

type Order struct {
	ID           string      `json:"id"`
	CreatedAt    time.Time   `json:"created_at"`
	CustomerName string      `json:"customer_name"`
	Mobile       string      `json:"mobile"`
	AltMobile    string      `json:"alt_mobile,omitempty"`
	Address      string      `json:"address"`
	Pincode      string      `json:"pincode"`
	PaymentMode  string      `json:"payment_mode"`
	PaymentRef   string      `json:"payment_ref,omitempty"`
	Items        []OrderItem `json:"items"`
	ItemCount    int         `json:"item_count"`
	Subtotal     float64     `json:"subtotal"`
	Tax          float64     `json:"tax"`
	Shipping     float64     `json:"shipping"`
	Total        float64     `json:"total"`
	Currency     string      `json:"currency"`
	Status       string      `json:"status"`
}

type Admin struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type OrderStats struct {
	TotalOrders   int64            `json:"total_orders"`
	TodayOrders   int64            `json:"today_orders"`
	PendingOrders int64            `json:"pending_orders"`
	ByStatus      map[string]int64 `json:"by_status"`
	TotalRevenue  float64          `json:"total_revenue"`
	TodayRevenue  float64          `json:"today_revenue"`
}
