package main

import (
	"ecommerce-backend/infra"
	"ecommerce-backend/models"
)

func main() {
	_ = infra.Initialize()
	cfg := infra.LoadConfig()
	infra.SetupLogger(cfg.Logger)

	if cfg.UsesMongo() {
		panic("MONGO_URI is set; migrations only apply to the relational backend")
	}

	db := infra.SetupDB(cfg)
	defer infra.CloseDB(db)

	if err := db.AutoMigrate(&models.User{}, &models.Product{}); err != nil {
		panic("Failed to migrate database")
	}
}
