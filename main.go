package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"anchored/config"
	"anchored/controllers"
	"anchored/routes"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	config.ConnectDB()

	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024, // uploads: calendars, vault documents, chat images
	})
	app.Static("/uploads", "./public/uploads")

	routes.Setup(app)

	cr := cron.New()
	if _, err := cr.AddFunc("@daily", controllers.ExpireSubscriptions); err != nil {
		log.Fatalf("cron setup failed: %v", err)
	}
	cr.Start()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Fatal(app.Listen(":" + port))
}
