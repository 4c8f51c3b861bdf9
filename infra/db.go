package infra

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func SetupDB(cfg *Config) *gorm.DB {
	gormConfig := &gorm.Config{TranslateError: true}

	// DB_NAMEが設定されている場合はPostgreSQLを使用
	if cfg.DBName != "" {
		sslmode := "disable"
		if cfg.Env == "prod" {
			sslmode = "require"
		}

		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s connect_timeout=10",
			cfg.DBHost,
			cfg.DBUser,
			cfg.DBPassword,
			cfg.DBName,
			cfg.DBPort,
			sslmode,
		)

		db, err := gorm.Open(postgres.Open(dsn), gormConfig)
		if err != nil {
			panic("Failed to connect to database")
		}
		zap.S().Infof("Setup postgres database: host=%s, dbname=%s", cfg.DBHost, cfg.DBName)
		return db
	}

	return SetupMemoryDB()
}

// SetupMemoryDB opens an in-memory SQLite database. The pool is pinned to a
// single connection, since every new connection would see an empty database.
func SetupMemoryDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		panic("Failed to connect to database")
	}
	sqlDB, err := db.DB()
	if err != nil {
		panic("Failed to connect to database")
	}
	sqlDB.SetMaxOpenConns(1)
	zap.S().Info("Setup sqlite database (in-memory)")
	return db
}

func CloseDB(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		zap.S().Warnf("Failed to close database: %v", err)
	}
}
