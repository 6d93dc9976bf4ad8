package news

import (
	"time"

	"github.com/abarhail/abarhail-api/internal/models"
)

// News is a bilingual news article. Text fields are JSON columns holding
// {ar, en} pairs; images is a JSON array of URLs.
type News struct {
	ID        uint                 `json:"id" gorm:"primaryKey"`
	Title     models.LocalizedText `json:"title" gorm:"type:json"`
	Content   models.LocalizedText `json:"content" gorm:"type:json"`
	Excerpt   models.LocalizedText `json:"excerpt" gorm:"type:json"`
	Images    models.StringSlice   `json:"images" gorm:"type:json"`
	Status    string               `json:"status" gorm:"type:varchar(20);default:published;index"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

func (News) TableName() string { return "news" }
