package repo

import (
	"context"

	"lostandfound/app/models"

	"gorm.io/gorm"
)

type CategoryRepository struct{ db *gorm.DB }

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) ListActive(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).Where("active = ?", true).Order("name").Find(&categories).Error
	return categories, err
}

func (r *CategoryRepository) FindActiveByID(ctx context.Context, id uint) (*models.Category, error) {
	var c models.Category
	err := r.db.WithContext(ctx).Where("id = ? AND active = ?", id, true).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ChildIDs returns the ids of active direct children.
func (r *CategoryRepository) ChildIDs(ctx context.Context, id uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).Model(&models.Category{}).
		Where("parent_category_id = ? AND active = ?", id, true).
		Pluck("id", &ids).Error
	return ids, err
}

func (r *CategoryRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Category{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

func (r *CategoryRepository) Create(ctx context.Context, c *models.Category) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CategoryRepository) Save(ctx context.Context, c *models.Category) error {
	return r.db.WithContext(ctx).Save(c).Error
}
