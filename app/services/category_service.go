package services

import (
	"context"
	"errors"

	"lostandfound/app/apperr"
	"lostandfound/app/db"
	"lostandfound/app/models"
	"lostandfound/app/repo"
	"lostandfound/app/slug"

	"gorm.io/gorm"
)

type CategoryService struct {
	categories *repo.CategoryRepository
}

func NewCategoryService(categories *repo.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

// CategoryUpdate carries the optional fields of a category edit. The
// parent is tri-state: untouched, reparented, or cleared.
type CategoryUpdate struct {
	Name        *string
	Parent      *uint
	ClearParent bool
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.categories.ListActive(ctx)
}

func (s *CategoryService) Get(ctx context.Context, id uint) (*models.Category, []uint, error) {
	c, err := s.categories.FindActiveByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, apperr.NotFound("Category does not exist")
	}
	if err != nil {
		return nil, nil, err
	}
	children, err := s.categories.ChildIDs(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return c, children, nil
}

func (s *CategoryService) Create(ctx context.Context, name string, parentID *uint) (*models.Category, error) {
	if name == "" {
		return nil, apperr.Validation("name is required")
	}
	if parentID != nil {
		if _, err := s.categories.FindActiveByID(ctx, *parentID); err != nil {
			return nil, apperr.Validation("parent category does not exist")
		}
	}
	sl, err := slug.Generate(name, models.SlugMaxLength, func(candidate string) (bool, error) {
		return s.categories.SlugExists(ctx, candidate)
	})
	if err != nil {
		return nil, err
	}
	c := &models.Category{Name: name, Slug: sl, ParentCategoryID: parentID}
	if err := s.categories.Create(ctx, c); err != nil {
		if db.IsUniqueViolation(err) {
			return nil, apperr.Conflict("A category with that slug already exists")
		}
		return nil, err
	}
	return c, nil
}

// Update renames or reparents a category. The slug is fixed at creation
// and survives renames.
func (s *CategoryService) Update(ctx context.Context, id uint, upd CategoryUpdate) (*models.Category, error) {
	c, _, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if upd.Name != nil {
		if *upd.Name == "" {
			return nil, apperr.Validation("name must not be empty")
		}
		c.Name = *upd.Name
	}
	if upd.ClearParent {
		c.ParentCategoryID = nil
	} else if upd.Parent != nil {
		if *upd.Parent == id {
			return nil, apperr.Validation("a category cannot be its own parent")
		}
		if _, err := s.categories.FindActiveByID(ctx, *upd.Parent); err != nil {
			return nil, apperr.Validation("parent category does not exist")
		}
		c.ParentCategoryID = upd.Parent
	}
	if err := s.categories.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CategoryService) Delete(ctx context.Context, id uint) error {
	c, _, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	c.Active = false
	return s.categories.Save(ctx, c)
}
