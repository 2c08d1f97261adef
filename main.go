package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"

	"github.com/arpitmittal98/shopsight/catalog"
	"github.com/arpitmittal98/shopsight/config"
	"github.com/arpitmittal98/shopsight/database"
	"github.com/arpitmittal98/shopsight/handlers"
	"github.com/arpitmittal98/shopsight/llm"
	"github.com/arpitmittal98/shopsight/routes"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config.Load()

	var store *catalog.Store
	var err error

	if config.AppConfig.DatabaseURL != "" {
		database.Connect(config.AppConfig.DatabaseURL)
		defer database.Close()

		store, err = catalog.LoadFromPostgres(context.Background(), database.GetDB())
		if err != nil {
			log.Fatalf("❌ [CATALOG] Failed to load catalog from Postgres: %v", err)
		}
	} else {
		log.Println("⚠️ [CATALOG] DATABASE_URL not set, loading catalog from CSV")
		store, err = catalog.LoadFromCSV(config.AppConfig.CatalogCSV)
		if err != nil {
			log.Fatalf("❌ [CATALOG] Failed to load catalog from %s: %v", config.AppConfig.CatalogCSV, err)
		}
	}
	log.Printf("📦 [CATALOG] Loaded %d products", store.Count())

	ai := llm.NewService(config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
	if ai.Available() {
		log.Println("🤖 [LLM] Gemini service enabled")
	} else {
		log.Println("⚠️ [LLM] GEMINI_API_KEY not set, using rule-based fallbacks")
	}

	handlers.Setup(store, ai)

	app := fiber.New()
	app.Use(cors.New())

	routes.SetupRoutes(app)

	log.Printf("🚀 [SERVER] ShopSight API listening on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
