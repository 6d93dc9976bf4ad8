package products

import (
	"time"

	"github.com/abarhail/abarhail-api/internal/models"
)

// Product carries a bilingual title and label plus a single image URL.
// Timestamps exist in the table but are not part of the API payload.
type Product struct {
	ID        uint                 `json:"id" gorm:"primaryKey"`
	Title     models.LocalizedText `json:"title" gorm:"type:json"`
	Label     models.LocalizedText `json:"label" gorm:"type:json"`
	Image     string               `json:"image"`
	CreatedAt time.Time            `json:"-"`
	UpdatedAt time.Time            `json:"-"`
}

func (Product) TableName() string { return "products" }
