// internal/models/order.go
package models

import (
	"database/sql/driver"
	"encoding/json"
)

// OrderItem is a value copy of a cart line taken at submission time.
// Prices are the ones captured when the line was added, not current
// product prices.
type OrderItem struct {
	ProductID     string  `json:"productId"`
	Name          string  `json:"name"`
	Image         string  `json:"image,omitempty"`
	Brand         string  `json:"brand,omitempty"`
	OriginalPrice float64 `json:"originalPrice"`
	UnitPrice     float64 `json:"unitPrice"`
	Quantity      int     `json:"quantity"`
}

// OrderItemList is stored as a jsonb column so the snapshot survives
// product edits and deletions.
type OrderItemList []OrderItem

func (l OrderItemList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]OrderItem{})
	}
	return json.Marshal(l)
}

func (l *OrderItemList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}

	return json.Unmarshal(bytes, l)
}

type Order struct {
	BaseModel
	CustomerName  string        `json:"customer_name" gorm:"size:100;not null"`
	Mobile        string        `json:"mobile" gorm:"size:15;not null;index"`
	AltMobile     string        `json:"alt_mobile,omitempty" gorm:"size:15"`
	Address       string        `json:"address" gorm:"type:text;not null"`
	Pincode       string        `json:"pincode" gorm:"size:10;not null"`
	PaymentMode   PaymentMode   `json:"payment_mode" gorm:"type:varchar(20);not null"`
	ScreenshotURL string        `json:"screenshot_url,omitempty" gorm:"size:512"`
	PaymentRef    string        `json:"payment_ref,omitempty" gorm:"size:255"`
	Items         OrderItemList `json:"items" gorm:"type:jsonb;not null"`
	ItemCount     int           `json:"item_count" gorm:"not null"`
	Subtotal      float64       `json:"subtotal" gorm:"type:decimal(10,2);not null"`
	Tax           float64       `json:"tax" gorm:"type:decimal(10,2);not null"`
	Shipping      float64       `json:"shipping" gorm:"type:decimal(10,2);not null"`
	Total         float64       `json:"total" gorm:"type:decimal(10,2);not null"`
	Currency      string        `json:"currency" gorm:"size:8;default:'INR'"`
	Status        OrderStatus   `json:"status" gorm:"type:varchar(20);default:'Pending';index"`
}
