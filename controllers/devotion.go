package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"anchored/config"
	"anchored/models"
)

type DevotionInput struct {
	Title   string `json:"title"`
	Passage string `json:"passage"`
	Body    string `json:"body"`
	Date    string `json:"date"` // "2006-01-02"
}

// CreateDevotion schedules a devotion entry for a day.
func CreateDevotion(c *fiber.Ctx) error {
	user, err := currentFamilyMember(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var input DevotionInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if input.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Title is required"})
	}

	day, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid date, expected YYYY-MM-DD"})
	}

	devotion := models.Devotion{
		FamilyID:  user.FamilyID,
		Title:     input.Title,
		Passage:   input.Passage,
		Body:      input.Body,
		Date:      day,
		CreatedBy: user.ID,
	}
	if err := config.DB.Create(&devotion).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save devotion"})
	}

	return c.JSON(fiber.Map{"devotion": devotion})
}

// GetDevotions returns the family's devotions, newest first.
func GetDevotions(c *fiber.Ctx) error {
	user, err := currentFamilyMember(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var devotions []models.Devotion
	if err := config.DB.
		Where("family_id = ?", user.FamilyID).
		Order("date DESC").
		Find(&devotions).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load devotions"})
	}

	return c.JSON(devotions)
}

// GetTodayDevotion returns the devotion scheduled for today, if any.
func GetTodayDevotion(c *fiber.Ctx) error {
	user, err := currentFamilyMember(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)

	var devotion models.Devotion
	if err := config.DB.
		Where("family_id = ? AND date >= ? AND date < ?", user.FamilyID, today, today.AddDate(0, 0, 1)).
		First(&devotion).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No devotion scheduled for today"})
	}

	return c.JSON(fiber.Map{"devotion": devotion})
}

// DeleteDevotion removes a devotion entry.
func DeleteDevotion(c *fiber.Ctx) error {
	user, err := currentFamilyMember(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var devotion models.Devotion
	if err := config.DB.First(&devotion, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Devotion not found"})
	}
	if devotion.FamilyID != user.FamilyID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "No access to this devotion"})
	}

	config.DB.Delete(&devotion)
	return c.JSON(fiber.Map{"message": "Devotion deleted"})
}
