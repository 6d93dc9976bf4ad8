package pictures

import (
	"time"

	"github.com/abarhail/abarhail-api/internal/models"
)

// Picture is a site image addressed by its natural key
// (category, subcategory, key_name). Creating an existing key overwrites it.
type Picture struct {
	ID          uint                 `json:"id" gorm:"primaryKey"`
	Category    string               `json:"category" gorm:"uniqueIndex:idx_pictures_key;index"`
	Subcategory string               `json:"subcategory" gorm:"uniqueIndex:idx_pictures_key"`
	KeyName     string               `json:"key_name" gorm:"uniqueIndex:idx_pictures_key"`
	ImageURL    string               `json:"image_url"`
	AltText     models.LocalizedText `json:"alt_text" gorm:"type:json"`
	Title       models.LocalizedText `json:"title" gorm:"type:json"`
	SortOrder   int                  `json:"sort_order" gorm:"default:0"`
	Status      string               `json:"status" gorm:"type:varchar(20);default:active;index"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

func (Picture) TableName() string { return "pictures" }

// CategoryMap groups one category's pictures by subcategory then key.
// Pictures without a subcategory land under "default".
type CategoryMap map[string]map[string]string

// StructuredMap is the full site image tree: category -> subcategory ->
// key -> url; keys without a subcategory hang directly off the category.
type StructuredMap map[string]map[string]interface{}
