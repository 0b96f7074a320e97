package router

import (
	"net/http"

	"lostandfound/app/controllers"
	"lostandfound/app/middleware"
)

// NewRouter wires every endpoint with its authorization requirement.
func NewRouter(authCtrl *controllers.AuthController, userCtrl *controllers.UserController, catCtrl *controllers.CategoryController, itemCtrl *controllers.ItemController, mw *middleware.Auth) http.Handler {
	mux := http.NewServeMux()

	// auth
	mux.Handle("POST /auth/login", http.HandlerFunc(authCtrl.Login))
	mux.Handle("POST /auth/refresh", mw.RequireRefresh(http.HandlerFunc(authCtrl.Refresh)))
	mux.Handle("DELETE /auth/logout", mw.RequireAuth(http.HandlerFunc(authCtrl.Logout)))

	// users
	mux.Handle("GET /users", mw.RequireAdmin(http.HandlerFunc(userCtrl.List)))
	mux.Handle("GET /users/data", mw.RequireAdmin(http.HandlerFunc(userCtrl.Data)))
	mux.Handle("GET /users/{id}", mw.RequireAdmin(http.HandlerFunc(userCtrl.Get)))
	mux.Handle("PUT /users/{id}", mw.RequireAdmin(http.HandlerFunc(userCtrl.Update)))
	mux.Handle("PUT /users/{id}/change-password", mw.RequireAuth(http.HandlerFunc(userCtrl.ChangePassword)))
	mux.Handle("POST /users", mw.OptionalAuth(http.HandlerFunc(userCtrl.Register)))
	mux.Handle("DELETE /users/{id}", mw.RequireAdmin(http.HandlerFunc(userCtrl.Delete)))

	// categories
	mux.Handle("GET /categories", http.HandlerFunc(catCtrl.List))
	mux.Handle("GET /categories/{id}", http.HandlerFunc(catCtrl.Get))
	mux.Handle("POST /categories", mw.RequireAdmin(http.HandlerFunc(catCtrl.Create)))
	mux.Handle("PUT /categories/{id}", mw.RequireAdmin(http.HandlerFunc(catCtrl.Update)))
	mux.Handle("DELETE /categories/{id}", mw.RequireAdmin(http.HandlerFunc(catCtrl.Delete)))

	// items
	mux.Handle("GET /items", http.HandlerFunc(itemCtrl.List))
	mux.Handle("GET /items/{id}", http.HandlerFunc(itemCtrl.Get))
	mux.Handle("POST /items", mw.RequireAuth(http.HandlerFunc(itemCtrl.Create)))
	mux.Handle("PUT /items/{id}", mw.RequireAuth(http.HandlerFunc(itemCtrl.Update)))
	mux.Handle("DELETE /items/{id}", mw.RequireAuth(http.HandlerFunc(itemCtrl.Delete)))

	// item images
	mux.Handle("POST /items/{id}/images", mw.RequireAuth(http.HandlerFunc(itemCtrl.UploadImage)))
	mux.Handle("GET /items/{id}/images", http.HandlerFunc(itemCtrl.ListImages))
	mux.Handle("DELETE /items/{id}/images/{imageID}", mw.RequireAuth(http.HandlerFunc(itemCtrl.DeleteImage)))
	mux.Handle("GET /images/{file}", http.HandlerFunc(itemCtrl.ServeImage))

	return mux
}
