package main

import (
	"log"

	"github.com/abarhail/abarhail-api/config"
	_ "github.com/abarhail/abarhail-api/docs"
	"github.com/abarhail/abarhail-api/internal/news"
	"github.com/abarhail/abarhail-api/internal/pictures"
	"github.com/abarhail/abarhail-api/internal/products"
	"github.com/abarhail/abarhail-api/internal/slides"
	"github.com/abarhail/abarhail-api/internal/social"
	"github.com/abarhail/abarhail-api/routes"
)

// @title Abar Hail REST API
// @version 1.0
// @description Content management backend for the Abar Hail website.
// @host localhost:8080
// @BasePath /api/v1
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	err := config.DB.AutoMigrate(
		&news.News{}, &social.Post{}, &slides.Slide{},
		&pictures.Picture{}, &products.Product{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("AutoMigrate successful")

	r := routes.SetupRoutes(cfg, config.DB)

	log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
