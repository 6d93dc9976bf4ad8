package news

import (
	"errors"

	"gorm.io/gorm"

	"github.com/abarhail/abarhail-api/internal/models"
)

type NewsRepository interface {
	Create(item *News) error
	GetByID(id uint) (*News, error)
	GetAll(page, limit int, status string) ([]News, int64, error)
	Update(item *News) error
	Delete(id uint) error
}

type newsRepository struct {
	db *gorm.DB
}

// NewNewsRepository creates a new instance of NewsRepository.
func NewNewsRepository(db *gorm.DB) NewsRepository {
	return &newsRepository{db: db}
}

func (r *newsRepository) Create(item *News) error {
	return r.db.Create(item).Error
}

// GetByID fetches a row regardless of status; soft-deleted rows stay
// reachable by direct lookup. Returns (nil, nil) when the row is absent.
func (r *newsRepository) GetByID(id uint) (*News, error) {
	var item News
	err := r.db.First(&item, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// GetAll lists rows with the given status, newest first.
func (r *newsRepository) GetAll(page, limit int, status string) ([]News, int64, error) {
	var items []News
	var total int64

	query := r.db.Model(&News{}).Where("status = ?", status)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// Update replaces all content fields and refreshes updated_at.
func (r *newsRepository) Update(item *News) error {
	return r.db.Model(item).Updates(map[string]interface{}{
		"title":   item.Title,
		"content": item.Content,
		"excerpt": item.Excerpt,
		"images":  item.Images,
		"status":  item.Status,
	}).Error
}

// Delete soft-deletes by flipping status; the row itself stays.
func (r *newsRepository) Delete(id uint) error {
	return r.db.Model(&News{}).Where("id = ?", id).Update("status", models.StatusDeleted).Error
}
