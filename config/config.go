package config

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"anchored/models"
)

// DB is the shared database handle, set once at startup.
var DB *gorm.DB

// ConnectDB opens the Postgres connection from DATABASE_URL and migrates the schema.
func ConnectDB() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("cannot connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Family{},
		&models.FamilyInvitation{},
		&models.Calendar{},
		&models.Event{},
		&models.Chore{},
		&models.PantryItem{},
		&models.GroceryItem{},
		&models.Recipe{},
		&models.RecipeIngredient{},
		&models.Devotion{},
		&models.Document{},
		&models.BudgetEntry{},
		&models.Payment{},
		&models.Subscription{},
		&models.ChatMessage{},
	); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	DB = db
}
