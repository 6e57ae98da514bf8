package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"agazian/config"
	authController "agazian/controllers/auth"
	courseController "agazian/controllers/course"
	progressController "agazian/controllers/progress"
	"agazian/database"
	authRoutes "agazian/routers/authRoutes"
	courseRoutes "agazian/routers/courseRoutes"
	progressRoutes "agazian/routers/progressRoutes"
	supportRoutes "agazian/routers/supportRoutes"
	"agazian/services"
	"agazian/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()

	db, err := database.Connect(config.AppConfig)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	progression := services.NewProgressionService(db)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app, authController.New(db))
	courses := courseController.New(db, progression)
	courseRoutes.SetupCourseRoutes(app, courses)
	courseRoutes.SetupAdminCourseRoutes(app, courses)
	progressRoutes.SetupProgressRoutes(app, progressController.New(progression))
	supportRoutes.SetupSupportRoutes(app)

	reconciler := utils.StartProgressReconciler(progression)

	// Shut down cleanly on SIGINT/SIGTERM so the sweep never runs mid-teardown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		log.Println("Shutting down...")
		reconciler.Stop()
		if err := app.Shutdown(); err != nil {
			log.Printf("Error during shutdown: %v", err)
		}
	}()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	if err := app.Listen(":" + config.AppConfig.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
