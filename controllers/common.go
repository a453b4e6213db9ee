package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"anchored/config"
	"anchored/models"
)

// currentUser resolves the authenticated user from the JWT claims the
// middleware stored on the request. Done once per request; handlers never
// rely on hardcoded ids.
func currentUser(c *fiber.Ctx) (models.User, error) {
	claims, ok := c.Locals("user").(jwt.MapClaims)
	if !ok {
		return models.User{}, errors.New("missing JWT claims")
	}
	idFloat, ok := claims["user_id"].(float64)
	if !ok {
		return models.User{}, errors.New("invalid user_id claim")
	}

	var user models.User
	if err := config.DB.First(&user, uint(idFloat)).Error; err != nil {
		return models.User{}, errors.New("user not found")
	}
	return user, nil
}

// currentFamilyMember is currentUser plus the requirement that the user
// belongs to a family.
func currentFamilyMember(c *fiber.Ctx) (models.User, error) {
	user, err := currentUser(c)
	if err != nil {
		return models.User{}, err
	}
	if user.FamilyID == 0 {
		return models.User{}, errors.New("user has no family")
	}
	return user, nil
}
