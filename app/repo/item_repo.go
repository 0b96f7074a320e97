package repo

import (
	"context"

	"lostandfound/app/models"

	"gorm.io/gorm"
)

// ItemFilter narrows item listings; zero values mean no filtering.
type ItemFilter struct {
	Reason     string
	CategoryID uint
}

type ItemRepository struct{ db *gorm.DB }

func NewItemRepository(db *gorm.DB) *ItemRepository { return &ItemRepository{db: db} }

func (r *ItemRepository) ListActive(ctx context.Context, page int, filter ItemFilter) ([]models.Item, error) {
	q := r.db.WithContext(ctx).Where("active = ?", true)
	if filter.Reason != "" {
		q = q.Where("reason = ?", filter.Reason)
	}
	if filter.CategoryID != 0 {
		q = q.Where("category_id = ?", filter.CategoryID)
	}
	var items []models.Item
	err := q.Order("name").Offset((page - 1) * PerPage).Limit(PerPage).Find(&items).Error
	return items, err
}

func (r *ItemRepository) FindActiveByID(ctx context.Context, id uint) (*models.Item, error) {
	var it models.Item
	err := r.db.WithContext(ctx).Where("id = ? AND active = ?", id, true).First(&it).Error
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *ItemRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Item{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

func (r *ItemRepository) Create(ctx context.Context, it *models.Item) error {
	return r.db.WithContext(ctx).Create(it).Error
}

func (r *ItemRepository) Save(ctx context.Context, it *models.Item) error {
	return r.db.WithContext(ctx).Save(it).Error
}
