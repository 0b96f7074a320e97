package initialize

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"lostandfound/app/controllers"
	"lostandfound/app/db"
	jwtutil "lostandfound/app/jwt"
	"lostandfound/app/middleware"
	"lostandfound/app/models"
	"lostandfound/app/repo"
	"lostandfound/app/services"
	"lostandfound/app/storage"
	"lostandfound/app/tokenstore"
	"lostandfound/config"
	"lostandfound/global"
	"lostandfound/router"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type App struct {
	Cfg        *config.Config
	DB         *gorm.DB
	Router     http.Handler
	Users      *services.UserService
	Auth       *services.AuthService
	Categories *services.CategoryService
	Items      *services.ItemService
}

// Build loads the config file at configPath (plus environment) and
// assembles the application.
func Build(configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	return New(cfg)
}

// New assembles the application from an already loaded config.
func New(cfg *config.Config) (*App, error) {
	global.Config = cfg

	gdb, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	global.Mdb = gdb

	if err := gdb.AutoMigrate(&models.User{}, &models.Category{}, &models.Item{}, &models.ItemImage{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	// Token state: redis when configured, otherwise a single-process
	// in-memory store.
	var store tokenstore.Store
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		global.Rdb = rdb
		store = tokenstore.NewRedis(rdb, time.Duration(cfg.JWT.RefreshExpDays)*24*time.Hour)
	} else {
		store = tokenstore.NewMemory()
	}

	signer := &jwtutil.Signer{
		Secret:     []byte(cfg.JWT.Secret),
		Issuer:     "lostandfound",
		AccessExp:  time.Duration(cfg.JWT.AccessExpMin) * time.Minute,
		RefreshExp: time.Duration(cfg.JWT.RefreshExpDays) * 24 * time.Hour,
	}

	files, err := storage.NewImages(cfg.Images.Path)
	if err != nil {
		return nil, err
	}

	userRepo := repo.NewUserRepository(gdb)
	categoryRepo := repo.NewCategoryRepository(gdb)
	itemRepo := repo.NewItemRepository(gdb)
	imageRepo := repo.NewItemImageRepository(gdb)

	authSvc := services.NewAuthService(userRepo, signer, store)
	userSvc := services.NewUserService(userRepo, authSvc)
	categorySvc := services.NewCategoryService(categoryRepo)
	itemSvc := services.NewItemService(itemRepo, imageRepo, categoryRepo, files)

	if cfg.Admin.Email != "" && cfg.Admin.Password != "" {
		name := cfg.Admin.Name
		if name == "" {
			name = "Administrator"
		}
		if err := userSvc.EnsureAdmin(context.Background(), name, cfg.Admin.Email, cfg.Admin.Password); err != nil {
			global.Logger.Warn().Err(err).Msg("admin seed failed")
		}
	}

	mw := &middleware.Auth{
		Signer:           signer,
		Users:            userRepo,
		Store:            store,
		BlacklistEnabled: cfg.JWT.BlacklistEnabled,
	}

	authCtrl := controllers.NewAuthController(authSvc)
	userCtrl := controllers.NewUserController(userSvc)
	categoryCtrl := controllers.NewCategoryController(categorySvc)
	itemCtrl := controllers.NewItemController(itemSvc)

	h := router.NewRouter(authCtrl, userCtrl, categoryCtrl, itemCtrl, mw)
	h = middleware.Logging(h)

	return &App{
		Cfg:        cfg,
		DB:         gdb,
		Router:     h,
		Users:      userSvc,
		Auth:       authSvc,
		Categories: categorySvc,
		Items:      itemSvc,
	}, nil
}
