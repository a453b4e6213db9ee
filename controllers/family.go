package controllers

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"anchored/config"
	"anchored/mail"
	"anchored/models"
)

// CreateFamilyInput is the body for creating a family.
type CreateFamilyInput struct {
	Name string `json:"name"`
}

// CreateFamily creates a new family together with its default calendar and
// attaches the current user to it.
func CreateFamily(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	if user.FamilyID != 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "You already belong to a family"})
	}

	var input CreateFamilyInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	family := models.Family{
		Name:      input.Name,
		OwnerID:   user.ID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := config.DB.Create(&family).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create family"})
	}

	// Every family gets a default calendar right away.
	calendar := models.Calendar{
		FamilyID:  family.ID,
		Title:     "",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := config.DB.Create(&calendar).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create family calendar"})
	}

	user.FamilyID = family.ID
	user.Role = "owner"
	config.DB.Save(&user)

	return c.JSON(fiber.Map{"family": family})
}

// InviteInput is the body for inviting a family member.
type InviteInput struct {
	Email string `json:"email"`
}

// InviteMember creates an invitation for the given email and mails the link.
func InviteMember(c *fiber.Ctx) error {
	inviter, err := currentFamilyMember(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var input InviteInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	// The invitee must already have an account.
	var invitee models.User
	if err := config.DB.Where("email = ?", input.Email).First(&invitee).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No user with this email"})
	}
	if invitee.FamilyID != 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "User already belongs to a family"})
	}

	inviteToken := uuid.New().String()

	invitation := models.FamilyInvitation{
		FamilyID:  inviter.FamilyID,
		Email:     invitee.Email,
		Token:     inviteToken,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := config.DB.Create(&invitation).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create invitation"})
	}

	inviteLink := os.Getenv("CLIENT_URL") + "/dashboard/family/invite/" + inviteToken
	mailService := mail.NewMailService()
	if err := mailService.SendFamilyInviteMail(invitee.Email, inviteLink); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to send invitation"})
	}

	return c.JSON(fiber.Map{"message": "Invitation sent"})
}

// AcceptInvitation attaches the invited user to the family and removes the
// invitation.
func AcceptInvitation(c *fiber.Ctx) error {
	token := c.Params("token")

	var invitation models.FamilyInvitation
	if err := config.DB.Where("token = ?", token).First(&invitation).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid invitation token"})
	}

	var user models.User
	if err := config.DB.Where("email = ?", invitation.Email).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	user.FamilyID = invitation.FamilyID
	config.DB.Save(&user)

	config.DB.Delete(&invitation)

	return c.JSON(fiber.Map{"message": "Invitation accepted. You have joined the family."})
}

// GetFamilyDetails returns the family record and its members.
func GetFamilyDetails(c *fiber.Ctx) error {
	user, err := currentFamilyMember(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var family models.Family
	if err := config.DB.First(&family, user.FamilyID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Family not found"})
	}

	var members []models.User
	if err := config.DB.Where("family_id = ?", user.FamilyID).Find(&members).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load family members"})
	}

	return c.JSON(fiber.Map{
		"family":  family,
		"members": members,
	})
}
