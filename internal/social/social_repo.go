package social

import (
	"errors"

	"gorm.io/gorm"

	"github.com/abarhail/abarhail-api/internal/models"
)

type SocialRepository interface {
	Create(item *Post) error
	GetByID(id uint) (*Post, error)
	GetAll(page, limit int, status string) ([]Post, int64, error)
	Update(item *Post) error
	Delete(id uint) error
}

type socialRepository struct {
	db *gorm.DB
}

// NewSocialRepository creates a new instance of SocialRepository.
func NewSocialRepository(db *gorm.DB) SocialRepository {
	return &socialRepository{db: db}
}

func (r *socialRepository) Create(item *Post) error {
	return r.db.Create(item).Error
}

func (r *socialRepository) GetByID(id uint) (*Post, error) {
	var item Post
	err := r.db.First(&item, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *socialRepository) GetAll(page, limit int, status string) ([]Post, int64, error) {
	var items []Post
	var total int64

	query := r.db.Model(&Post{}).Where("status = ?", status)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *socialRepository) Update(item *Post) error {
	return r.db.Model(item).Updates(map[string]interface{}{
		"title":   item.Title,
		"content": item.Content,
		"excerpt": item.Excerpt,
		"images":  item.Images,
		"status":  item.Status,
	}).Error
}

func (r *socialRepository) Delete(id uint) error {
	return r.db.Model(&Post{}).Where("id = ?", id).Update("status", models.StatusDeleted).Error
}
