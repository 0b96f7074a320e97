package dto

import (
	"time"

	"lostandfound/app/models"
)

type CategoryResponse struct {
	ID               uint      `json:"id"`
	Name             string    `json:"name"`
	Slug             string    `json:"slug"`
	ParentCategoryID *uint     `json:"parent_category_id"`
	ChildCategories  []uint    `json:"child_categories,omitempty"`
	Active           bool      `json:"active"`
	CreatedOn        time.Time `json:"created_on"`
	UpdatedOn        time.Time `json:"updated_on"`
	CreatedByID      *uint     `json:"created_by_id"`
	UpdatedByID      *uint     `json:"updated_by_id"`
}

func NewCategoryResponse(c *models.Category) CategoryResponse {
	return CategoryResponse{
		ID:               c.ID,
		Name:             c.Name,
		Slug:             c.Slug,
		ParentCategoryID: c.ParentCategoryID,
		Active:           c.Active,
		CreatedOn:        c.CreatedOn,
		UpdatedOn:        c.UpdatedOn,
		CreatedByID:      c.CreatedByID,
		UpdatedByID:      c.UpdatedByID,
	}
}

func NewCategoryListResponse(categories []models.Category) []CategoryResponse {
	out := make([]CategoryResponse, len(categories))
	for i := range categories {
		out[i] = NewCategoryResponse(&categories[i])
	}
	return out
}

type CreateCategoryRequest struct {
	Name             string `json:"name"`
	ParentCategoryID *uint  `json:"parent_category_id"`
}

type UpdateCategoryRequest struct {
	Name             *string `json:"name"`
	ParentCategoryID OptUint `json:"parent_category_id"`
}
