package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lostandfound/app/dto"
	"lostandfound/config"
	"lostandfound/initialize"

	"github.com/stretchr/testify/require"
)

const (
	adminEmail    = "admin@example.com"
	adminPassword = "admin-pass"
)

// newTestApp assembles the full application against a private in-memory
// database and a throwaway image directory.
func newTestApp(t *testing.T) *initialize.App {
	return newTestAppWithBlacklist(t, true)
}

func newTestAppWithBlacklist(t *testing.T, blacklistEnabled bool) *initialize.App {
	t.Helper()
	cfg := &config.Config{
		ListenAddr: "127.0.0.1:0",
		SecretKey:  "test-secret",
		JWT: config.JWT{
			Secret:           "test-jwt-secret",
			AccessExpMin:     15,
			RefreshExpDays:   30,
			BlacklistEnabled: blacklistEnabled,
		},
		DB:     config.DB{File: fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))},
		Images: config.ImageStore{Path: t.TempDir()},
		Admin:  config.Admin{Email: adminEmail, Name: "Admin", Password: adminPassword},
	}
	app, err := initialize.New(cfg)
	require.NoError(t, err)
	return app
}

func doJSON(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rdr)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(out))
}

func login(t *testing.T, h http.Handler, email, password string) dto.LoginResponse {
	t.Helper()
	rec := doJSON(t, h, http.MethodPost, "/auth/login", "", dto.LoginRequest{Email: email, Password: password})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp dto.LoginResponse
	decode(t, rec, &resp)
	return resp
}

func registerUser(t *testing.T, h http.Handler, token, name, email, password, role string) dto.UserResponse {
	t.Helper()
	rec := doJSON(t, h, http.MethodPost, "/users", token, dto.RegisterRequest{
		Name: name, Email: email, Password: password, Role: role,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var resp dto.UserResponse
	decode(t, rec, &resp)
	return resp
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 64, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func uploadImage(t *testing.T, h http.Handler, token string, itemID uint, data []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("image", "upload.png")
	require.NoError(t, err)
	_, err = fw.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/items/%d/images", itemID), &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}
