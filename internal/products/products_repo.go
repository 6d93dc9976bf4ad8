package products

import (
	"errors"

	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(item *Product) error
	GetByID(id uint) (*Product, error)
	GetAll(page, limit int) ([]Product, int64, error)
	Update(item *Product) error
	Delete(id uint) error
}

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new instance of ProductRepository.
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(item *Product) error {
	return r.db.Create(item).Error
}

func (r *productRepository) GetByID(id uint) (*Product, error) {
	var item Product
	err := r.db.First(&item, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// GetAll lists products newest id first. Products have no status column, so
// the count is unfiltered.
func (r *productRepository) GetAll(page, limit int) ([]Product, int64, error) {
	var items []Product
	var total int64

	if err := r.db.Model(&Product{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := r.db.Order("id DESC").Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *productRepository) Update(item *Product) error {
	return r.db.Model(item).Updates(map[string]interface{}{
		"title": item.Title,
		"label": item.Label,
		"image": item.Image,
	}).Error
}

// Delete removes the row. Products are the one resource that hard-deletes.
func (r *productRepository) Delete(id uint) error {
	return r.db.Delete(&Product{}, id).Error
}
