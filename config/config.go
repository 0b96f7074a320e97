package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type JWT struct {
	Secret           string
	AccessExpMin     int
	RefreshExpDays   int
	BlacklistEnabled bool
}

type DB struct {
	File     string
	MySQLDSN string
}

type Redis struct {
	Addr     string
	Password string
	DB       int
}

type Admin struct {
	Email    string
	Name     string
	Password string
}

type Config struct {
	ListenAddr string
	SecretKey  string
	JWT        JWT
	DB         DB
	Redis      Redis
	Images     ImageStore
	Admin      Admin
}

type ImageStore struct {
	Path string
}

// required maps config keys to the environment variables that must be set
// (or present in the config file) for the process to start.
var required = map[string]string{
	"secret_key":            "SECRET_KEY",
	"jwt.secret":            "JWT_SECRET_KEY",
	"jwt.blacklist_enabled": "JWT_BLACKLIST_ENABLED",
	"db.file":               "DB_FILE",
	"images.path":           "IMAGES_PATH",
}

// Load reads the optional yaml file at path, overlays environment
// variables and validates required keys. A missing required key is a
// startup failure.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("listen_addr", "127.0.0.1:8000")
	v.SetDefault("jwt.access_exp_min", 15)
	v.SetDefault("jwt.refresh_exp_days", 30)
	v.SetDefault("redis.db", 0)

	for key, env := range required {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", env, err)
		}
	}
	_ = v.BindEnv("listen_addr", "LISTEN_ADDR")
	_ = v.BindEnv("jwt.access_exp_min", "JWT_ACCESS_EXP_MIN")
	_ = v.BindEnv("jwt.refresh_exp_days", "JWT_REFRESH_EXP_DAYS")
	_ = v.BindEnv("db.mysql_dsn", "MYSQL_DSN")
	_ = v.BindEnv("redis.addr", "REDIS_ADDR")
	_ = v.BindEnv("redis.password", "REDIS_PASSWORD")
	_ = v.BindEnv("redis.db", "REDIS_DB")
	_ = v.BindEnv("admin.email", "ADMIN_EMAIL")
	_ = v.BindEnv("admin.name", "ADMIN_NAME")
	_ = v.BindEnv("admin.password", "ADMIN_PASSWORD")

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var missing []string
	for key, env := range required {
		if !v.IsSet(key) || v.GetString(key) == "" {
			missing = append(missing, env)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required config: %s", strings.Join(missing, ", "))
	}

	cfg := &Config{
		ListenAddr: v.GetString("listen_addr"),
		SecretKey:  v.GetString("secret_key"),
		DB: DB{
			File:     v.GetString("db.file"),
			MySQLDSN: v.GetString("db.mysql_dsn"),
		},
		Redis: Redis{
			Addr:     v.GetString("redis.addr"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Images: ImageStore{Path: v.GetString("images.path")},
		Admin: Admin{
			Email:    v.GetString("admin.email"),
			Name:     v.GetString("admin.name"),
			Password: v.GetString("admin.password"),
		},
	}
	cfg.JWT.Secret = v.GetString("jwt.secret")
	cfg.JWT.BlacklistEnabled = v.GetBool("jwt.blacklist_enabled")
	cfg.JWT.AccessExpMin = v.GetInt("jwt.access_exp_min")
	if cfg.JWT.AccessExpMin <= 0 {
		cfg.JWT.AccessExpMin = 15
	}
	cfg.JWT.RefreshExpDays = v.GetInt("jwt.refresh_exp_days")
	if cfg.JWT.RefreshExpDays <= 0 {
		cfg.JWT.RefreshExpDays = 30
	}
	return cfg, nil
}
