// internal/models/category.go
package models

import (
	"github.com/lib/pq"
)

type Category struct {
	BaseModel
	Name   string         `json:"name" gorm:"uniqueIndex;size:100;not null"`
	Images pq.StringArray `json:"images" gorm:"type:text[]"`
}
