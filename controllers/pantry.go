package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"anchored/config"
	"anchored/models"
)

type PantryItemInput struct {
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	Unit      string  `json:"unit"`
	ExpiresAt string  `json:"expires_at"` // RFC 3339, optional
}

// GetPantryItems returns the family's pantry, soonest-expiring first.
func GetPantryItems(c *fiber.Ctx) error {
	user, err := currentFamilyMember(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var items []models.PantryItem
	if err := config.DB.
		Where("family_id = ?", user.FamilyID).
		Order("expires_at ASC NULLS LAST").
		Find(&items).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load pantry"})
	}

	return c.JSON(items)
}

// CreatePantryItem adds an item to the pantry.
func CreatePantryItem(c *fiber.Ctx) error {
	user, err := currentFamilyMember(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var input PantryItemInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if input.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name is required"})
	}

	item := models.PantryItem{
		FamilyID: user.FamilyID,
		Name:     input.Name,
		Quantity: input.Quantity,
		Unit:     input.Unit,
	}
	if input.ExpiresAt != "" {
		exp, err := time.Parse(time.RFC3339, input.ExpiresAt)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid expires_at format"})
		}
		item.ExpiresAt = &exp
	}

	if err := config.DB.Create(&item).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save pantry item"})
	}

	return c.JSON(fiber.Map{"item": item})
}

// UpdatePantryItem edits an item (quantity adjustments mostly).
func UpdatePantryItem(c *fiber.Ctx) error {
	user, err := currentFamilyMember(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var item models.PantryItem
	if err := config.DB.First(&item, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Pantry item not found"})
	}
	if item.FamilyID != user.FamilyID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "No access to this item"})
	}

	var input PantryItemInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	item.Name = input.Name
	item.Quantity = input.Quantity
	item.Unit = input.Unit
	if input.ExpiresAt != "" {
		exp, err := time.Parse(time.RFC3339, input.ExpiresAt)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid expires_at format"})
		}
		item.ExpiresAt = &exp
	} else {
		item.ExpiresAt = nil
	}

	if err := config.DB.Save(&item).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update pantry item"})
	}

	return c.JSON(fiber.Map{"item": item})
}

// DeletePantryItem removes an item from the pantry.
func DeletePantryItem(c *fiber.Ctx) error {
	user, err := currentFamilyMember(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var item models.PantryItem
	if err := config.DB.First(&item, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Pantry item not found"})
	}
	if item.FamilyID != user.FamilyID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "No access to this item"})
	}

	config.DB.Delete(&item)
	return c.JSON(fiber.Map{"message": "Pantry item deleted"})
}
