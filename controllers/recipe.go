package controllers

import (
	"github.com/gofiber/fiber/v2"

	"anchored/config"
	"anchored/models"
)

/* ---------- JSON structures (Recipe) ---------- */

type RecipeIngredientInput struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
}

type RecipeInput struct {
	Title        string                  `json:"title"`
	Instructions string                  `json:"instructions"`
	Ingredients  []RecipeIngredientInput `json:"ingredients"`
}

/* ---------- Handlers (Recipe) ---------- */

// CreateRecipe stores a recipe with its ingredient list.
func CreateRecipe(c *fiber.Ctx) error {
	user, err := currentFamilyMember(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var input RecipeInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if input.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Title is required"})
	}

	recipe := models.Recipe{
		FamilyID:     user.FamilyID,
		Title:        input.Title,
		Instructions: input.Instructions,
		CreatedBy:    user.ID,
	}
	for _, ing := range input.Ingredients {
		if ing.Name == "" {
			continue
		}
		recipe.Ingredients = append(recipe.Ingredients, models.RecipeIngredient{
			Name:     ing.Name,
			Quantity: ing.Quantity,
		})
	}

	if err := config.DB.Create(&recipe).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save recipe"})
	}

	return c.JSON(fiber.Map{"recipe": recipe})
}

// GetRecipes returns all family recipes with ingredients.
func GetRecipes(c *fiber.Ctx) error {
	user, err := currentFamilyMember(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var recipes []models.Recipe
	if err := config.DB.
		Preload("Ingredients").
		Where("family_id = ?", user.FamilyID).
		Order("title ASC").
		Find(&recipes).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load recipes"})
	}

	return c.JSON(recipes)
}

// GetRecipe returns a single recipe.
func GetRecipe(c *fiber.Ctx) error {
	user, err := currentFamilyMember(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var recipe models.Recipe
	if err := config.DB.Preload("Ingredients").First(&recipe, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Recipe not found"})
	}
	if recipe.FamilyID != user.FamilyID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "No access to this recipe"})
	}

	return c.JSON(fiber.Map{"recipe": recipe})
}

// DeleteRecipe removes a recipe and its ingredients.
func DeleteRecipe(c *fiber.Ctx) error {
	user, err := currentFamilyMember(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var recipe models.Recipe
	if err := config.DB.First(&recipe, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Recipe not found"})
	}
	if recipe.FamilyID != user.FamilyID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "No access to this recipe"})
	}

	config.DB.Where("recipe_id = ?", recipe.ID).Delete(&models.RecipeIngredient{})
	config.DB.Delete(&recipe)

	return c.JSON(fiber.Map{"message": "Recipe deleted"})
}

// AddRecipeToGroceryList copies a recipe's ingredients onto the grocery list.
func AddRecipeToGroceryList(c *fiber.Ctx) error {
	user, err := currentFamilyMember(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var recipe models.Recipe
	if err := config.DB.Preload("Ingredients").First(&recipe, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Recipe not found"})
	}
	if recipe.FamilyID != user.FamilyID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "No access to this recipe"})
	}

	added := 0
	for _, ing := range recipe.Ingredients {
		item := models.GroceryItem{
			FamilyID: user.FamilyID,
			Name:     ing.Name,
			Quantity: ing.Quantity,
			AddedBy:  user.ID,
			RecipeID: &recipe.ID,
		}
		if err := config.DB.Create(&item).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update grocery list"})
		}
		added++
	}

	return c.JSON(fiber.Map{"message": "Ingredients added to grocery list", "added": added})
}
