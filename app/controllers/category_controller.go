package controllers

import (
	"encoding/json"
	"net/http"

	"lostandfound/app/apperr"
	"lostandfound/app/dto"
	"lostandfound/app/services"
)

type CategoryController struct {
	Categories *services.CategoryService
}

func NewCategoryController(categories *services.CategoryService) *CategoryController {
	return &CategoryController{Categories: categories}
}

func (c *CategoryController) List(w http.ResponseWriter, r *http.Request) {
	categories, err := c.Categories.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewCategoryListResponse(categories))
}

func (c *CategoryController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idPathValue(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	cat, children, err := c.Categories.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	resp := dto.NewCategoryResponse(cat)
	resp.ChildCategories = children
	writeJSON(w, http.StatusOK, resp)
}

func (c *CategoryController) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperr.Validation("invalid request body"))
		return
	}
	cat, err := c.Categories.Create(r.Context(), req.Name, req.ParentCategoryID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.NewCategoryResponse(cat))
}

func (c *CategoryController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idPathValue(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req dto.UpdateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperr.Validation("invalid request body"))
		return
	}
	upd := services.CategoryUpdate{Name: req.Name}
	if req.ParentCategoryID.Set {
		if req.ParentCategoryID.Value == nil {
			upd.ClearParent = true
		} else {
			upd.Parent = req.ParentCategoryID.Value
		}
	}
	cat, err := c.Categories.Update(r.Context(), id, upd)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewCategoryResponse(cat))
}

func (c *CategoryController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idPathValue(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := c.Categories.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "Category deleted"})
}
