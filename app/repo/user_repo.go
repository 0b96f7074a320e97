package repo

import (
	"context"

	"lostandfound/app/models"

	"gorm.io/gorm"
)

// PerPage is the fixed page size for every listing endpoint.
const PerPage = 10

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

// FindByEmail looks a user up regardless of the active flag; login and
// token identity resolution both work on the raw record.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindActiveByID(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	err := r.db.WithContext(ctx).Where("id = ? AND active = ?", id, true).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) ListActive(ctx context.Context, page int) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("name").
		Offset((page - 1) * PerPage).
		Limit(PerPage).
		Find(&users).Error
	return users, err
}

func (r *UserRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Where("active = ?", true).Count(&count).Error
	return count, err
}

func (r *UserRepository) Create(ctx context.Context, u *models.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) Save(ctx context.Context, u *models.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}
