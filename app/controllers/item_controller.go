package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"lostandfound/app/apperr"
	"lostandfound/app/authctx"
	"lostandfound/app/dto"
	"lostandfound/app/repo"
	"lostandfound/app/services"
)

// maxUploadBytes bounds item image uploads before decoding.
const maxUploadBytes = 10 << 20

type ItemController struct {
	Items *services.ItemService
}

func NewItemController(items *services.ItemService) *ItemController {
	return &ItemController{Items: items}
}

func (c *ItemController) List(w http.ResponseWriter, r *http.Request) {
	filter := repo.ItemFilter{Reason: r.URL.Query().Get("reason")}
	if raw := r.URL.Query().Get("category_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			filter.CategoryID = uint(id)
		}
	}
	items, err := c.Items.List(r.Context(), pageParam(r), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewItemListResponse(items))
}

func (c *ItemController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idPathValue(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	it, err := c.Items.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewItemResponse(it))
}

func (c *ItemController) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperr.Validation("invalid request body"))
		return
	}
	it, err := c.Items.Create(r.Context(), req.Name, req.Description, req.CategoryID, req.Reason, req.LookingForReason)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.NewItemResponse(it))
}

func (c *ItemController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idPathValue(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req dto.UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperr.Validation("invalid request body"))
		return
	}
	upd := services.ItemUpdate{
		Name:        req.Name,
		Description: req.Description,
		Reason:      req.Reason,
	}
	if req.CategoryID.Set {
		if req.CategoryID.Value == nil {
			upd.ClearCategory = true
		} else {
			upd.Category = req.CategoryID.Value
		}
	}
	if req.LookingForReason.Set {
		if req.LookingForReason.Value == nil {
			upd.ClearLookingFor = true
		} else {
			upd.LookingFor = req.LookingForReason.Value
		}
	}
	actor := authctx.IdentityFrom(r.Context())
	it, err := c.Items.Update(r.Context(), actor, id, upd)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewItemResponse(it))
}

func (c *ItemController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idPathValue(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	actor := authctx.IdentityFrom(r.Context())
	if err := c.Items.Delete(r.Context(), actor, id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "Item deleted"})
}

func (c *ItemController) UploadImage(w http.ResponseWriter, r *http.Request) {
	id, err := idPathValue(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, _, err := r.FormFile("image")
	if err != nil {
		writeError(w, apperr.Validation("image file is required"))
		return
	}
	defer file.Close()

	actor := authctx.IdentityFrom(r.Context())
	img, err := c.Items.AddImage(r.Context(), actor, id, file)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.NewItemImageResponse(img))
}

func (c *ItemController) ListImages(w http.ResponseWriter, r *http.Request) {
	id, err := idPathValue(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	images, err := c.Items.ListImages(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewItemImageListResponse(images))
}

func (c *ItemController) DeleteImage(w http.ResponseWriter, r *http.Request) {
	itemID, err := idPathValue(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	imageID, err := idPathValue(r, "imageID")
	if err != nil {
		writeError(w, err)
		return
	}
	actor := authctx.IdentityFrom(r.Context())
	if err := c.Items.DeleteImage(r.Context(), actor, itemID, imageID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "Image deleted"})
}

// ServeImage streams a stored image file.
func (c *ItemController) ServeImage(w http.ResponseWriter, r *http.Request) {
	path, err := c.Items.ImagePath(r.PathValue("file"))
	if err != nil {
		writeError(w, err)
		return
	}
	http.ServeFile(w, r, path)
}
