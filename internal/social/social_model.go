package social

import (
	"time"

	"github.com/abarhail/abarhail-api/internal/models"
)

// Post is a bilingual social feed post. Same column shape as news.
type Post struct {
	ID        uint                 `json:"id" gorm:"primaryKey"`
	Title     models.LocalizedText `json:"title" gorm:"type:json"`
	Content   models.LocalizedText `json:"content" gorm:"type:json"`
	Excerpt   models.LocalizedText `json:"excerpt" gorm:"type:json"`
	Images    models.StringSlice   `json:"images" gorm:"type:json"`
	Status    string               `json:"status" gorm:"type:varchar(20);default:published;index"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

func (Post) TableName() string { return "social" }
