package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/Reshma22M/Flexa-ChatBot/internal/catalog"
	"github.com/Reshma22M/Flexa-ChatBot/internal/config"
	"github.com/Reshma22M/Flexa-ChatBot/internal/database"
	"github.com/Reshma22M/Flexa-ChatBot/internal/ml"
	"github.com/Reshma22M/Flexa-ChatBot/internal/repository"
	"github.com/Reshma22M/Flexa-ChatBot/internal/routes"
	"github.com/Reshma22M/Flexa-ChatBot/internal/session"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Load the trained plan model and the workout catalog. Either failing
	// makes the whole recommendation engine unusable, so both are fatal.
	predictor, err := ml.Load(cfg.ModelPath)
	if err != nil {
		log.Fatalf("Failed to load plan model: %v", err)
	}
	workouts, err := catalog.Load(cfg.WorkoutsPath)
	if err != nil {
		log.Fatalf("Failed to load workout catalog: %v", err)
	}

	// 3. Pick the session store: Postgres when DB_URL is set, otherwise
	// process memory.
	var store session.Store = session.NewMemoryStore(cfg.MaxSessions)
	if cfg.DBUrl != "" {
		if err := database.ConnectDB(cfg.DBUrl); err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer database.CloseDB()
		store = repository.NewChatSessionRepository(database.DB)
	}

	// 4. Setup Fiber
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.CORSOrigins}))
	app.Use(logger.New())
	app.Use(recover.New())

	// Routes
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})
	routes.RegisterRoutes(app, store, predictor, workouts)

	// 5. Start Server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
