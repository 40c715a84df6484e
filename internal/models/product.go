// internal/models/product.go
package models

import (
	"github.com/lib/pq"
)

type Product struct {
	BaseModel
	Name            string         `json:"name" gorm:"size:255;not null;index"`
	Description     string         `json:"description" gorm:"type:text"`
	OriginalPrice   float64        `json:"originalPrice" gorm:"type:decimal(10,2);not null"`
	OfferPrice      *float64       `json:"offerPrice,omitempty" gorm:"type:decimal(10,2)"`
	DiscountPercent float64        `json:"discountPercent" gorm:"type:decimal(5,2);default:0"`
	Images          pq.StringArray `json:"images" gorm:"type:text[]"`
	Videos          pq.StringArray `json:"videos" gorm:"type:text[]"`
	Categories      pq.StringArray `json:"categories" gorm:"type:text[]"`
	Brands          pq.StringArray `json:"brands" gorm:"type:text[]"`
}

// UnitPrice is the price captured into cart lines and order snapshots:
// offer price when one is set, the original price otherwise.
func (p *Product) UnitPrice() float64 {
	if p.OfferPrice != nil {
		return *p.OfferPrice
	}
	return p.OriginalPrice
}
