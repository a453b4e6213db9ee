package controllers

import (
	"github.com/gofiber/fiber/v2"

	"anchored/config"
	"anchored/models"
)

type GroceryItemInput struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
}

// GetGroceryList returns the family's grocery list, unpurchased first.
func GetGroceryList(c *fiber.Ctx) error {
	user, err := currentFamilyMember(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var items []models.GroceryItem
	if err := config.DB.
		Where("family_id = ?", user.FamilyID).
		Order("purchased ASC, created_at ASC").
		Find(&items).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load grocery list"})
	}

	return c.JSON(items)
}

// CreateGroceryItem adds an item to the grocery list.
func CreateGroceryItem(c *fiber.Ctx) error {
	user, err := currentFamilyMember(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var input GroceryItemInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if input.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name is required"})
	}

	item := models.GroceryItem{
		FamilyID: user.FamilyID,
		Name:     input.Name,
		Quantity: input.Quantity,
		AddedBy:  user.ID,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save grocery item"})
	}

	return c.JSON(fiber.Map{"item": item})
}

// ToggleGroceryItem flips the purchased flag.
func ToggleGroceryItem(c *fiber.Ctx) error {
	user, err := currentFamilyMember(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var item models.GroceryItem
	if err := config.DB.First(&item, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Grocery item not found"})
	}
	if item.FamilyID != user.FamilyID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "No access to this item"})
	}

	item.Purchased = !item.Purchased
	if err := config.DB.Save(&item).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update grocery item"})
	}

	return c.JSON(fiber.Map{"item": item})
}

// DeleteGroceryItem removes an item from the list.
func DeleteGroceryItem(c *fiber.Ctx) error {
	user, err := currentFamilyMember(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var item models.GroceryItem
	if err := config.DB.First(&item, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Grocery item not found"})
	}
	if item.FamilyID != user.FamilyID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "No access to this item"})
	}

	config.DB.Delete(&item)
	return c.JSON(fiber.Map{"message": "Grocery item deleted"})
}
