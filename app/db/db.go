package db

import (
	"lostandfound/config"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	_ "modernc.org/sqlite"
)

// Connect opens the sqlite database file unless a mysql DSN is
// configured. The sqlite dialector runs on the pure-Go modernc driver so
// the binary stays cgo-free.
func Connect(cfg config.DB) (*gorm.DB, error) {
	if cfg.MySQLDSN != "" {
		return gorm.Open(mysql.Open(cfg.MySQLDSN), &gorm.Config{})
	}
	dial := sqlite.Dialector{DriverName: "sqlite", DSN: cfg.File}
	return gorm.Open(dial, &gorm.Config{})
}
