// internal/models/banner.go
package models

type Banner struct {
	BaseModel
	Title  string `json:"title" gorm:"size:255"`
	Image  string `json:"image" gorm:"size:512;not null"`
	Link   string `json:"link" gorm:"size:512"`
	Active bool   `json:"active" gorm:"default:true;index"`
}
