package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"coursetrack/config"
	"coursetrack/database"
	assignmentRoutes "coursetrack/routers/assignmentRoutes"
	courseRoutes "coursetrack/routers/courseRoutes"
	"coursetrack/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// setupApp wires middleware and routes onto a fresh Fiber app.
func setupApp() *fiber.App {
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Health check
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Courses API is running")
	})

	courseRoutes.SetupCourseRoutes(app)
	assignmentRoutes.SetupAssignmentRoutes(app)

	return app
}

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := setupApp()

	reminder := utils.StartReminderScheduler()

	go func() {
		log.Printf("Server is running on port %s", config.AppConfig.Port)
		if err := app.Listen(":" + config.AppConfig.Port); err != nil {
			log.Fatalf("Server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	if reminder != nil {
		reminder.Stop()
	}
	if err := app.Shutdown(); err != nil {
		log.Printf("Error shutting down server: %v", err)
	}
	database.Close()
}
