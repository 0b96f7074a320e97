package repo

import (
	"context"

	"lostandfound/app/models"

	"gorm.io/gorm"
)

type ItemImageRepository struct{ db *gorm.DB }

func NewItemImageRepository(db *gorm.DB) *ItemImageRepository {
	return &ItemImageRepository{db: db}
}

func (r *ItemImageRepository) ListActiveByItem(ctx context.Context, itemID uint) ([]models.ItemImage, error) {
	var images []models.ItemImage
	err := r.db.WithContext(ctx).
		Where("item_id = ? AND active = ?", itemID, true).
		Order("id").
		Find(&images).Error
	return images, err
}

func (r *ItemImageRepository) FindActiveByID(ctx context.Context, id uint) (*models.ItemImage, error) {
	var img models.ItemImage
	err := r.db.WithContext(ctx).Where("id = ? AND active = ?", id, true).First(&img).Error
	if err != nil {
		return nil, err
	}
	return &img, nil
}

func (r *ItemImageRepository) Create(ctx context.Context, img *models.ItemImage) error {
	return r.db.WithContext(ctx).Create(img).Error
}

func (r *ItemImageRepository) Save(ctx context.Context, img *models.ItemImage) error {
	return r.db.WithContext(ctx).Save(img).Error
}
