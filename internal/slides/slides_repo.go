package slides

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/abarhail/abarhail-api/internal/models"
)

type SlideRepository interface {
	Create(item *Slide) error
	GetByID(id uint) (*Slide, error)
	GetAll(page, limit int, status string) ([]Slide, int64, error)
	Update(item *Slide) error
	Delete(id uint) error
	UpdateSortOrder(id uint, sortOrder int) error
	Reorder(ids []uint) error
}

type slideRepository struct {
	db *gorm.DB
}

// NewSlideRepository creates a new instance of SlideRepository.
func NewSlideRepository(db *gorm.DB) SlideRepository {
	return &slideRepository{db: db}
}

func (r *slideRepository) Create(item *Slide) error {
	return r.db.Create(item).Error
}

func (r *slideRepository) GetByID(id uint) (*Slide, error) {
	var item Slide
	err := r.db.First(&item, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// GetAll lists slides in display order: sort_order ascending, newest first
// within the same rank.
func (r *slideRepository) GetAll(page, limit int, status string) ([]Slide, int64, error) {
	var items []Slide
	var total int64

	query := r.db.Model(&Slide{}).Where("status = ?", status)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Order("sort_order ASC").Order("created_at DESC").Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *slideRepository) Update(item *Slide) error {
	return r.db.Model(item).Updates(map[string]interface{}{
		"image":       item.Image,
		"title":       item.Title,
		"description": item.Description,
		"button_text": item.ButtonText,
		"link":        item.Link,
		"sort_order":  item.SortOrder,
		"status":      item.Status,
	}).Error
}

func (r *slideRepository) Delete(id uint) error {
	return r.db.Model(&Slide{}).Where("id = ?", id).Update("status", models.StatusDeleted).Error
}

func (r *slideRepository) UpdateSortOrder(id uint, sortOrder int) error {
	return r.db.Model(&Slide{}).Where("id = ?", id).Update("sort_order", sortOrder).Error
}

// Reorder assigns sort_order = position + 1 following the given id sequence.
// The whole batch runs in one transaction; an id that matches no row aborts
// it, so either every slide moves or none does.
func (r *slideRepository) Reorder(ids []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i, id := range ids {
			res := tx.Model(&Slide{}).Where("id = ?", id).Update("sort_order", i+1)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("slide %d not found", id)
			}
		}
		return nil
	})
}
