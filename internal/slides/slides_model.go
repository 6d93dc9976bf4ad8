package slides

import (
	"time"

	"github.com/abarhail/abarhail-api/internal/models"
)

// Slide is one entry of the homepage slider. sort_order controls display
// sequence; the reorder endpoint rewrites it across the whole set.
type Slide struct {
	ID          uint                 `json:"id" gorm:"primaryKey"`
	Image       string               `json:"image"`
	Title       models.LocalizedText `json:"title" gorm:"type:json"`
	Description models.LocalizedText `json:"description" gorm:"type:json"`
	ButtonText  models.LocalizedText `json:"button_text" gorm:"type:json"`
	Link        string               `json:"link"`
	SortOrder   int                  `json:"sort_order" gorm:"default:0;index"`
	Status      string               `json:"status" gorm:"type:varchar(20);default:published;index"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

func (Slide) TableName() string { return "slides" }
