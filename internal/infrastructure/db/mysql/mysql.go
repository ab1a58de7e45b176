package mysql

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	maxIdleConns    = 10
	maxOpenConns    = 100
	connMaxLifetime = time.Hour
)

// Config captures the minimal settings required to establish a MySQL
// connection.
type Config struct {
	DSN string
}

// Connect opens a GORM MySQL handle, applies pool settings, and verifies
// connectivity with a ping. TranslateError is enabled so duplicate-key
// violations surface as gorm.ErrDuplicatedKey regardless of driver.
func Connect(cfg Config) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("mysql open: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("mysql handle: %w", err)
	}
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("mysql ping: %w", err)
	}

	return db, nil
}

// Migrate creates or updates the accounts table, including the unique index
// on email that backs duplicate detection.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&accountModel{}); err != nil {
		return fmt.Errorf("migrate accounts: %w", err)
	}
	return nil
}
