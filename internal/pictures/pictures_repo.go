package pictures

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/abarhail/abarhail-api/internal/models"
)

type PictureRepository interface {
	Upsert(item *Picture) error
	BulkUpsert(items []Picture) error
	GetByID(id uint) (*Picture, error)
	GetAll(page, limit int) ([]Picture, int64, error)
	GetByCategory(category string) (CategoryMap, error)
	GetStructured() (StructuredMap, error)
	GetCategories() ([]string, error)
	GetSubcategories(category string) ([]string, error)
	Update(item *Picture) error
	Delete(id uint) error
}

type pictureRepository struct {
	db *gorm.DB
}

// NewPictureRepository creates a new instance of PictureRepository.
func NewPictureRepository(db *gorm.DB) PictureRepository {
	return &pictureRepository{db: db}
}

// Upsert inserts or, when the (category, subcategory, key_name) key already
// exists, overwrites every non-key field and refreshes updated_at. The id of
// the existing row is resolved by key lookup when the insert produced none.
func (r *pictureRepository) Upsert(item *Picture) error {
	return r.upsertTx(r.db, item)
}

func (r *pictureRepository) upsertTx(tx *gorm.DB, item *Picture) error {
	if item.Category == "" || item.KeyName == "" {
		return fmt.Errorf("picture key requires category and key_name")
	}

	err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "category"}, {Name: "subcategory"}, {Name: "key_name"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"image_url", "alt_text", "title", "sort_order", "status", "updated_at",
		}),
	}).Create(item).Error
	if err != nil {
		return err
	}

	if item.ID == 0 {
		// Conflict path on some drivers reports no insert id; fall back to
		// the natural key.
		var existing Picture
		err := tx.Where("category = ? AND subcategory = ? AND key_name = ?",
			item.Category, item.Subcategory, item.KeyName).First(&existing).Error
		if err != nil {
			return fmt.Errorf("upsert resolved no id for %s/%s/%s: %w",
				item.Category, item.Subcategory, item.KeyName, err)
		}
		item.ID = existing.ID
	}
	return nil
}

// BulkUpsert applies Upsert to each element inside one transaction; any
// failure rolls the whole batch back.
func (r *pictureRepository) BulkUpsert(items []Picture) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i := range items {
			if err := r.upsertTx(tx, &items[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *pictureRepository) GetByID(id uint) (*Picture, error) {
	var item Picture
	err := r.db.First(&item, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *pictureRepository) GetAll(page, limit int) ([]Picture, int64, error) {
	var items []Picture
	var total int64

	query := r.db.Model(&Picture{}).Where("status = ?", models.StatusActive)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Order("category ASC, subcategory ASC, sort_order ASC").
		Offset(offset).Limit(limit).Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *pictureRepository) GetByCategory(category string) (CategoryMap, error) {
	var items []Picture
	err := r.db.Where("category = ? AND status = ?", category, models.StatusActive).
		Order("subcategory ASC, sort_order ASC").Find(&items).Error
	if err != nil {
		return nil, err
	}

	organized := CategoryMap{}
	for _, item := range items {
		sub := item.Subcategory
		if sub == "" {
			sub = "default"
		}
		if organized[sub] == nil {
			organized[sub] = map[string]string{}
		}
		organized[sub][item.KeyName] = item.ImageURL
	}
	return organized, nil
}

func (r *pictureRepository) GetStructured() (StructuredMap, error) {
	var items []Picture
	err := r.db.Where("status = ?", models.StatusActive).
		Order("category ASC, subcategory ASC, sort_order ASC").Find(&items).Error
	if err != nil {
		return nil, err
	}

	structured := StructuredMap{}
	for _, item := range items {
		cat := structured[item.Category]
		if cat == nil {
			cat = map[string]interface{}{}
			structured[item.Category] = cat
		}
		if item.Subcategory == "" {
			cat[item.KeyName] = item.ImageURL
			continue
		}
		sub, _ := cat[item.Subcategory].(map[string]string)
		if sub == nil {
			sub = map[string]string{}
			cat[item.Subcategory] = sub
		}
		sub[item.KeyName] = item.ImageURL
	}
	return structured, nil
}

func (r *pictureRepository) GetCategories() ([]string, error) {
	var categories []string
	err := r.db.Model(&Picture{}).
		Where("status = ?", models.StatusActive).
		Distinct("category").Order("category ASC").
		Pluck("category", &categories).Error
	return categories, err
}

func (r *pictureRepository) GetSubcategories(category string) ([]string, error) {
	var subcategories []string
	err := r.db.Model(&Picture{}).
		Where("category = ? AND status = ?", category, models.StatusActive).
		Distinct("subcategory").Order("subcategory ASC").
		Pluck("subcategory", &subcategories).Error
	return subcategories, err
}

func (r *pictureRepository) Update(item *Picture) error {
	return r.db.Model(item).Updates(map[string]interface{}{
		"category":    item.Category,
		"subcategory": item.Subcategory,
		"key_name":    item.KeyName,
		"image_url":   item.ImageURL,
		"alt_text":    item.AltText,
		"title":       item.Title,
		"sort_order":  item.SortOrder,
		"status":      item.Status,
	}).Error
}

func (r *pictureRepository) Delete(id uint) error {
	return r.db.Model(&Picture{}).Where("id = ?", id).Update("status", models.StatusDeleted).Error
}
