package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/sefazor/bored-backend/internal/config"
	"github.com/sefazor/bored-backend/internal/handler"
	"github.com/sefazor/bored-backend/internal/middleware"
	"github.com/sefazor/bored-backend/internal/repository"
	"github.com/sefazor/bored-backend/internal/service"
	"github.com/sefazor/bored-backend/pkg/boredapi"
	"github.com/sefazor/bored-backend/pkg/database"
	"github.com/sefazor/bored-backend/pkg/logger"
	"github.com/sefazor/bored-backend/pkg/utils"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := config.LoadConfig()

	zapLogger := logger.New(cfg.Env)
	defer zapLogger.Sync()

	// Initialize database
	db := database.NewDatabase(cfg.DatabaseURL)

	// Run migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	activityRepo := repository.NewActivityRepository(db)

	// Suggestion source client
	boredClient := boredapi.NewClient(cfg.BoredAPIURL)

	// Services
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, zapLogger)
	userService := service.NewUserService(userRepo, zapLogger)
	activityService := service.NewActivityService(activityRepo, zapLogger)

	validator := utils.NewValidator()

	// Handlers
	authHandler := handler.NewAuthHandler(authService, validator)
	userHandler := handler.NewUserHandler(userService)
	activityHandler := handler.NewActivityHandler(activityService, validator)
	suggestionHandler := handler.NewSuggestionHandler(boredClient)

	// Router
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, DELETE",
	}))
	app.Use(fiberlogger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	authRequired := middleware.AuthMiddleware(cfg.JWTSecret, userRepo)

	// Public routes
	app.Post("/signup", authHandler.Signup)
	app.Post("/login", authHandler.Login)
	app.Get("/logout", authHandler.Logout)
	app.Get("/api/activity", suggestionHandler.Random)

	// Protected routes
	user := app.Group("/user", authRequired)
	user.Get("/:id", userHandler.GetProfile)
	user.Get("/:id/activity", activityHandler.ListActivities)
	user.Get("/:id/ignored", activityHandler.ListIgnored)
	user.Post("/delete", userHandler.DeleteAccount)

	activity := app.Group("/activity", authRequired)
	activity.Post("/save", activityHandler.SaveActivity)
	activity.Post("/ignore", activityHandler.IgnoreActivity)
	activity.Patch("/:id/complete", activityHandler.CompleteActivity)

	zapLogger.Infow("starting server", "port", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
