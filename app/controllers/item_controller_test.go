package controllers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lostandfound/app/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createItem(t *testing.T, h http.Handler, token string, req dto.CreateItemRequest) dto.ItemResponse {
	t.Helper()
	rec := doJSON(t, h, http.MethodPost, "/items", token, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var resp dto.ItemResponse
	decode(t, rec, &resp)
	return resp
}

func TestItem_CreateAndGet(t *testing.T) {
	app := newTestApp(t)
	registerUser(t, app.Router, "", "Ada", "ada@example.com", "secret", "regular")
	ada := login(t, app.Router, "ada@example.com", "secret")

	it := createItem(t, app.Router, ada.AccessToken, dto.CreateItemRequest{
		Name: "Black Umbrella", Description: "Left at the station", Reason: "found",
	})
	assert.True(t, strings.HasPrefix(it.Slug, "black-umbrella-"), it.Slug)
	require.NotNil(t, it.CreatedByID)
	assert.Equal(t, ada.User.ID, *it.CreatedByID)

	// reads are public
	rec := doJSON(t, app.Router, http.MethodGet, fmt.Sprintf("/items/%d", it.ID), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got dto.ItemResponse
	decode(t, rec, &got)
	assert.Equal(t, "Black Umbrella", got.Name)

	rec = doJSON(t, app.Router, http.MethodGet, "/items", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []dto.ItemResponse
	decode(t, rec, &list)
	assert.Len(t, list, 1)
}

func TestItem_CreateRequiresAuth(t *testing.T) {
	app := newTestApp(t)

	rec := doJSON(t, app.Router, http.MethodPost, "/items", "", dto.CreateItemRequest{
		Name: "Umbrella", Description: "d", Reason: "found",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestItem_Validation(t *testing.T) {
	app := newTestApp(t)
	registerUser(t, app.Router, "", "Ada", "ada@example.com", "secret", "regular")
	ada := login(t, app.Router, "ada@example.com", "secret")

	rec := doJSON(t, app.Router, http.MethodPost, "/items", ada.AccessToken, dto.CreateItemRequest{
		Name: "Umbrella", Description: "d", Reason: "looking_for",
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var msg dto.MessageResponse
	decode(t, rec, &msg)
	assert.Equal(t, "looking_for_reason is required when reason is looking_for", msg.Message)

	rec = doJSON(t, app.Router, http.MethodPost, "/items", ada.AccessToken, dto.CreateItemRequest{
		Name: "Umbrella", Description: "d", Reason: "misplaced",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	lost := "lost"
	rec = doJSON(t, app.Router, http.MethodPost, "/items", ada.AccessToken, dto.CreateItemRequest{
		Name: "Umbrella", Description: "d", Reason: "looking_for", LookingForReason: &lost,
	})
	assert.Equal(t, http.StatusCreated, rec.Code)

	// a found item may record how it went missing
	stolen := "stolen"
	rec = doJSON(t, app.Router, http.MethodPost, "/items", ada.AccessToken, dto.CreateItemRequest{
		Name: "Phone", Description: "d", Reason: "found", LookingForReason: &stolen,
	})
	assert.Equal(t, http.StatusCreated, rec.Code)

	missing := uint(9999)
	rec = doJSON(t, app.Router, http.MethodPost, "/items", ada.AccessToken, dto.CreateItemRequest{
		Name: "Keys", Description: "d", Reason: "found", CategoryID: &missing,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestItem_ListFilters(t *testing.T) {
	app := newTestApp(t)
	admin := login(t, app.Router, adminEmail, adminPassword)
	cat := createCategory(t, app.Router, admin.AccessToken, "Electronics", nil)

	lost := "lost"
	createItem(t, app.Router, admin.AccessToken, dto.CreateItemRequest{
		Name: "Phone", Description: "d", Reason: "found", CategoryID: &cat.ID,
	})
	createItem(t, app.Router, admin.AccessToken, dto.CreateItemRequest{
		Name: "Keys", Description: "d", Reason: "looking_for", LookingForReason: &lost,
	})

	rec := doJSON(t, app.Router, http.MethodGet, "/items?reason=found", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []dto.ItemResponse
	decode(t, rec, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "Phone", list[0].Name)

	rec = doJSON(t, app.Router, http.MethodGet, fmt.Sprintf("/items?category_id=%d", cat.ID), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list = nil
	decode(t, rec, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "Phone", list[0].Name)
}

func TestItem_UpdateOwnership(t *testing.T) {
	app := newTestApp(t)
	registerUser(t, app.Router, "", "Ada", "ada@example.com", "secret", "regular")
	registerUser(t, app.Router, "", "Bob", "bob@example.com", "secret", "regular")
	ada := login(t, app.Router, "ada@example.com", "secret")
	bob := login(t, app.Router, "bob@example.com", "secret")
	admin := login(t, app.Router, adminEmail, adminPassword)

	it := createItem(t, app.Router, ada.AccessToken, dto.CreateItemRequest{
		Name: "Umbrella", Description: "d", Reason: "found",
	})
	path := fmt.Sprintf("/items/%d", it.ID)

	rec := doJSON(t, app.Router, http.MethodPut, path, bob.AccessToken, map[string]any{"name": "Stolen edit"})
	require.Equal(t, http.StatusForbidden, rec.Code)
	var msg dto.MessageResponse
	decode(t, rec, &msg)
	assert.Equal(t, "User has no permission for action", msg.Message)

	rec = doJSON(t, app.Router, http.MethodPut, path, ada.AccessToken, map[string]any{"name": "Red Umbrella"})
	require.Equal(t, http.StatusOK, rec.Code)
	var got dto.ItemResponse
	decode(t, rec, &got)
	assert.Equal(t, "Red Umbrella", got.Name)
	assert.Equal(t, it.Slug, got.Slug)

	// admins may edit anything
	rec = doJSON(t, app.Router, http.MethodPut, path, admin.AccessToken, map[string]any{"description": "updated"})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestItem_UpdateCannotClearRequiredReason(t *testing.T) {
	app := newTestApp(t)
	registerUser(t, app.Router, "", "Ada", "ada@example.com", "secret", "regular")
	ada := login(t, app.Router, "ada@example.com", "secret")

	lost := "lost"
	it := createItem(t, app.Router, ada.AccessToken, dto.CreateItemRequest{
		Name: "Keys", Description: "d", Reason: "looking_for", LookingForReason: &lost,
	})

	rec := doJSON(t, app.Router, http.MethodPut, fmt.Sprintf("/items/%d", it.ID), ada.AccessToken,
		map[string]any{"looking_for_reason": nil})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestItem_Delete(t *testing.T) {
	app := newTestApp(t)
	registerUser(t, app.Router, "", "Ada", "ada@example.com", "secret", "regular")
	registerUser(t, app.Router, "", "Bob", "bob@example.com", "secret", "regular")
	ada := login(t, app.Router, "ada@example.com", "secret")
	bob := login(t, app.Router, "bob@example.com", "secret")

	it := createItem(t, app.Router, ada.AccessToken, dto.CreateItemRequest{
		Name: "Umbrella", Description: "d", Reason: "found",
	})
	path := fmt.Sprintf("/items/%d", it.ID)

	rec := doJSON(t, app.Router, http.MethodDelete, path, bob.AccessToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doJSON(t, app.Router, http.MethodDelete, path, ada.AccessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, app.Router, http.MethodGet, path, "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestItem_Images(t *testing.T) {
	app := newTestApp(t)
	registerUser(t, app.Router, "", "Ada", "ada@example.com", "secret", "regular")
	registerUser(t, app.Router, "", "Bob", "bob@example.com", "secret", "regular")
	ada := login(t, app.Router, "ada@example.com", "secret")
	bob := login(t, app.Router, "bob@example.com", "secret")

	it := createItem(t, app.Router, ada.AccessToken, dto.CreateItemRequest{
		Name: "Umbrella", Description: "d", Reason: "found",
	})

	// only the creator or an admin may attach images
	rec := uploadImage(t, app.Router, bob.AccessToken, it.ID, pngBytes(t, 64, 64))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = uploadImage(t, app.Router, ada.AccessToken, it.ID, pngBytes(t, 64, 64))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var img dto.ItemImageResponse
	decode(t, rec, &img)
	assert.True(t, strings.HasSuffix(img.Image, ".jpg"), img.Image)
	assert.Equal(t, "/images/"+img.Image, img.URL)

	req := httptest.NewRequest(http.MethodGet, img.URL, nil)
	fileRec := httptest.NewRecorder()
	app.Router.ServeHTTP(fileRec, req)
	require.Equal(t, http.StatusOK, fileRec.Code)
	assert.Equal(t, "image/jpeg", http.DetectContentType(fileRec.Body.Bytes()))

	rec = doJSON(t, app.Router, http.MethodGet, fmt.Sprintf("/items/%d/images", it.ID), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []dto.ItemImageResponse
	decode(t, rec, &list)
	require.Len(t, list, 1)

	rec = doJSON(t, app.Router, http.MethodDelete, fmt.Sprintf("/items/%d/images/%d", it.ID, img.ID), ada.AccessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, app.Router, http.MethodGet, fmt.Sprintf("/items/%d/images", it.ID), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list = nil
	decode(t, rec, &list)
	assert.Empty(t, list)

	rec = doJSON(t, app.Router, http.MethodDelete, fmt.Sprintf("/items/%d/images/%d", it.ID, img.ID), ada.AccessToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestItem_RejectsNonImageUpload(t *testing.T) {
	app := newTestApp(t)
	registerUser(t, app.Router, "", "Ada", "ada@example.com", "secret", "regular")
	ada := login(t, app.Router, "ada@example.com", "secret")

	it := createItem(t, app.Router, ada.AccessToken, dto.CreateItemRequest{
		Name: "Umbrella", Description: "d", Reason: "found",
	})

	rec := uploadImage(t, app.Router, ada.AccessToken, it.ID, []byte("plain text payload"))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
