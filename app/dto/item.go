package dto

import (
	"time"

	"lostandfound/app/models"
)

type ItemResponse struct {
	ID               uint      `json:"id"`
	Name             string    `json:"name"`
	Slug             string    `json:"slug"`
	Description      string    `json:"description"`
	CategoryID       *uint     `json:"category_id"`
	Reason           string    `json:"reason"`
	LookingForReason *string   `json:"looking_for_reason"`
	Active           bool      `json:"active"`
	CreatedOn        time.Time `json:"created_on"`
	UpdatedOn        time.Time `json:"updated_on"`
	CreatedByID      *uint     `json:"created_by_id"`
	UpdatedByID      *uint     `json:"updated_by_id"`
}

func NewItemResponse(it *models.Item) ItemResponse {
	return ItemResponse{
		ID:               it.ID,
		Name:             it.Name,
		Slug:             it.Slug,
		Description:      it.Description,
		CategoryID:       it.CategoryID,
		Reason:           it.Reason,
		LookingForReason: it.LookingForReason,
		Active:           it.Active,
		CreatedOn:        it.CreatedOn,
		UpdatedOn:        it.UpdatedOn,
		CreatedByID:      it.CreatedByID,
		UpdatedByID:      it.UpdatedByID,
	}
}

func NewItemListResponse(items []models.Item) []ItemResponse {
	out := make([]ItemResponse, len(items))
	for i := range items {
		out[i] = NewItemResponse(&items[i])
	}
	return out
}

type CreateItemRequest struct {
	Name             string  `json:"name"`
	Description      string  `json:"description"`
	CategoryID       *uint   `json:"category_id"`
	Reason           string  `json:"reason"`
	LookingForReason *string `json:"looking_for_reason"`
}

type UpdateItemRequest struct {
	Name             *string   `json:"name"`
	Description      *string   `json:"description"`
	Reason           *string   `json:"reason"`
	CategoryID       OptUint   `json:"category_id"`
	LookingForReason OptString `json:"looking_for_reason"`
}

type ItemImageResponse struct {
	ID        uint      `json:"id"`
	ItemID    uint      `json:"item_id"`
	Image     string    `json:"image"`
	URL       string    `json:"url"`
	CreatedOn time.Time `json:"created_on"`
}

func NewItemImageResponse(img *models.ItemImage) ItemImageResponse {
	return ItemImageResponse{
		ID:        img.ID,
		ItemID:    img.ItemID,
		Image:     img.Image,
		URL:       "/images/" + img.Image,
		CreatedOn: img.CreatedOn,
	}
}

func NewItemImageListResponse(images []models.ItemImage) []ItemImageResponse {
	out := make([]ItemImageResponse, len(images))
	for i := range images {
		out[i] = NewItemImageResponse(&images[i])
	}
	return out
}
