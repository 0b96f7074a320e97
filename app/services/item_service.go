package services

import (
	"context"
	"errors"
	"io"

	"lostandfound/app/apperr"
	"lostandfound/app/authctx"
	"lostandfound/app/db"
	"lostandfound/app/imaging"
	"lostandfound/app/models"
	"lostandfound/app/repo"
	"lostandfound/app/slug"
	"lostandfound/app/storage"

	"gorm.io/gorm"
)

type ItemService struct {
	items      *repo.ItemRepository
	images     *repo.ItemImageRepository
	categories *repo.CategoryRepository
	files      *storage.Images
}

func NewItemService(items *repo.ItemRepository, images *repo.ItemImageRepository, categories *repo.CategoryRepository, files *storage.Images) *ItemService {
	return &ItemService{items: items, images: images, categories: categories, files: files}
}

// ItemUpdate carries the optional fields of an item edit. Category and
// looking_for_reason are tri-state so an explicit null clears them.
type ItemUpdate struct {
	Name            *string
	Description     *string
	Reason          *string
	Category        *uint
	ClearCategory   bool
	LookingFor      *string
	ClearLookingFor bool
}

func (s *ItemService) List(ctx context.Context, page int, filter repo.ItemFilter) ([]models.Item, error) {
	return s.items.ListActive(ctx, page, filter)
}

func (s *ItemService) Get(ctx context.Context, id uint) (*models.Item, error) {
	it, err := s.items.FindActiveByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Item does not exist")
	}
	return it, err
}

func (s *ItemService) Create(ctx context.Context, name, description string, categoryID *uint, reason string, lookingFor *string) (*models.Item, error) {
	if name == "" || description == "" {
		return nil, apperr.Validation("name and description are required")
	}
	if !models.ValidReason(reason) {
		return nil, apperr.Validation("The reason provided does not exist")
	}
	if lookingFor != nil && !models.ValidLookingForReason(*lookingFor) {
		return nil, apperr.Validation("The looking_for_reason provided does not exist")
	}
	if categoryID != nil {
		if _, err := s.categories.FindActiveByID(ctx, *categoryID); err != nil {
			return nil, apperr.Validation("category does not exist")
		}
	}

	sl, err := slug.Generate(name, models.SlugMaxLength, func(candidate string) (bool, error) {
		return s.items.SlugExists(ctx, candidate)
	})
	if err != nil {
		return nil, err
	}
	it := &models.Item{
		Name:             name,
		Slug:             sl,
		Description:      description,
		CategoryID:       categoryID,
		Reason:           reason,
		LookingForReason: lookingFor,
	}
	if err := s.items.Create(ctx, it); err != nil {
		switch {
		case db.IsCheckViolation(err):
			return nil, apperr.Validation("looking_for_reason is required when reason is looking_for")
		case db.IsUniqueViolation(err):
			return nil, apperr.Conflict("An item with that slug already exists")
		}
		return nil, err
	}
	return it, nil
}

func (s *ItemService) Update(ctx context.Context, actor *authctx.Identity, id uint, upd ItemUpdate) (*models.Item, error) {
	it, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(actor, it); err != nil {
		return nil, err
	}
	if upd.Name != nil {
		if *upd.Name == "" {
			return nil, apperr.Validation("name must not be empty")
		}
		it.Name = *upd.Name
	}
	if upd.Description != nil {
		it.Description = *upd.Description
	}
	if upd.Reason != nil {
		if !models.ValidReason(*upd.Reason) {
			return nil, apperr.Validation("The reason provided does not exist")
		}
		it.Reason = *upd.Reason
	}
	if upd.ClearCategory {
		it.CategoryID = nil
	} else if upd.Category != nil {
		if _, err := s.categories.FindActiveByID(ctx, *upd.Category); err != nil {
			return nil, apperr.Validation("category does not exist")
		}
		it.CategoryID = upd.Category
	}
	if upd.ClearLookingFor {
		it.LookingForReason = nil
	} else if upd.LookingFor != nil {
		if !models.ValidLookingForReason(*upd.LookingFor) {
			return nil, apperr.Validation("The looking_for_reason provided does not exist")
		}
		it.LookingForReason = upd.LookingFor
	}
	if err := s.items.Save(ctx, it); err != nil {
		if db.IsCheckViolation(err) {
			return nil, apperr.Validation("looking_for_reason is required when reason is looking_for")
		}
		return nil, err
	}
	return it, nil
}

// Delete soft-deletes an item and its image records.
func (s *ItemService) Delete(ctx context.Context, actor *authctx.Identity, id uint) error {
	it, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authorize(actor, it); err != nil {
		return err
	}
	it.Active = false
	if err := s.items.Save(ctx, it); err != nil {
		return err
	}
	images, err := s.images.ListActiveByItem(ctx, id)
	if err != nil {
		return err
	}
	for i := range images {
		images[i].Active = false
		if err := s.images.Save(ctx, &images[i]); err != nil {
			return err
		}
	}
	return nil
}

// AddImage normalizes the upload, stores the file and records it against
// the item.
func (s *ItemService) AddImage(ctx context.Context, actor *authctx.Identity, itemID uint, r io.Reader) (*models.ItemImage, error) {
	it, err := s.Get(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(actor, it); err != nil {
		return nil, err
	}
	data, err := imaging.Normalize(r)
	if err != nil {
		return nil, apperr.Validation(err.Error())
	}
	name, err := s.files.Save(data)
	if err != nil {
		return nil, err
	}
	img := &models.ItemImage{Image: name, ItemID: itemID}
	if err := s.images.Create(ctx, img); err != nil {
		return nil, err
	}
	return img, nil
}

func (s *ItemService) ListImages(ctx context.Context, itemID uint) ([]models.ItemImage, error) {
	if _, err := s.Get(ctx, itemID); err != nil {
		return nil, err
	}
	return s.images.ListActiveByItem(ctx, itemID)
}

func (s *ItemService) DeleteImage(ctx context.Context, actor *authctx.Identity, itemID, imageID uint) error {
	it, err := s.Get(ctx, itemID)
	if err != nil {
		return err
	}
	if err := s.authorize(actor, it); err != nil {
		return err
	}
	img, err := s.images.FindActiveByID(ctx, imageID)
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && img.ItemID != itemID) {
		return apperr.NotFound("Image does not exist")
	}
	if err != nil {
		return err
	}
	img.Active = false
	return s.images.Save(ctx, img)
}

// ImagePath resolves a stored image file for serving.
func (s *ItemService) ImagePath(name string) (string, error) {
	p, err := s.files.Path(name)
	if err != nil {
		return "", apperr.NotFound("Image does not exist")
	}
	return p, nil
}

// authorize permits admins and the item's creator.
func (s *ItemService) authorize(actor *authctx.Identity, it *models.Item) error {
	if actor == nil {
		return apperr.Unauthorized("authentication required")
	}
	if actor.Role == models.RoleAdmin {
		return nil
	}
	if it.CreatedByID != nil && *it.CreatedByID == actor.UserID {
		return nil
	}
	return apperr.Forbidden("User has no permission for action")
}
