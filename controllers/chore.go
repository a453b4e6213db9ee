package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/teambition/rrule-go"

	"anchored/config"
	"anchored/models"
)

/* ---------- JSON structures (Chore) ---------- */

type ChoreInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	AssignedTo  *uint  `json:"assigned_to"`
	RRule       string `json:"rrule"`
	DueAt       string `json:"due_at"` // RFC 3339, optional
}

/* ---------- Handlers (Chore) ---------- */

// CreateChore adds a chore to the family list. An RRULE makes it recurring.
func CreateChore(c *fiber.Ctx) error {
	user, err := currentFamilyMember(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var input ChoreInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if input.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Title is required"})
	}

	if input.RRule != "" {
		if _, err := rrule.StrToRRule(input.RRule); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid recurrence rule"})
		}
	}

	chore := models.Chore{
		FamilyID:    user.FamilyID,
		Title:       input.Title,
		Description: input.Description,
		AssignedTo:  input.AssignedTo,
		RRule:       input.RRule,
		CreatedBy:   user.ID,
	}
	if input.DueAt != "" {
		due, err := time.Parse(time.RFC3339, input.DueAt)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid due_at format"})
		}
		chore.DueAt = &due
	}

	if err := config.DB.Create(&chore).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save chore"})
	}

	return c.JSON(fiber.Map{"chore": chore})
}

// GetChores returns the family's chores, pending first.
func GetChores(c *fiber.Ctx) error {
	user, err := currentFamilyMember(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var chores []models.Chore
	if err := config.DB.
		Where("family_id = ?", user.FamilyID).
		Order("is_done ASC, due_at ASC").
		Find(&chores).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load chores"})
	}

	return c.JSON(chores)
}

// UpdateChore edits title, description, assignee, recurrence or due date.
func UpdateChore(c *fiber.Ctx) error {
	user, err := currentFamilyMember(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var chore models.Chore
	if err := config.DB.First(&chore, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Chore not found"})
	}
	if chore.FamilyID != user.FamilyID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "No access to this chore"})
	}

	var input ChoreInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if input.RRule != "" {
		if _, err := rrule.StrToRRule(input.RRule); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid recurrence rule"})
		}
	}

	chore.Title = input.Title
	chore.Description = input.Description
	chore.AssignedTo = input.AssignedTo
	chore.RRule = input.RRule
	if input.DueAt != "" {
		due, err := time.Parse(time.RFC3339, input.DueAt)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid due_at format"})
		}
		chore.DueAt = &due
	} else {
		chore.DueAt = nil
	}

	if err := config.DB.Save(&chore).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update chore"})
	}

	return c.JSON(fiber.Map{"chore": chore})
}

// CompleteChore marks a chore done.
func CompleteChore(c *fiber.Ctx) error {
	user, err := currentFamilyMember(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var chore models.Chore
	if err := config.DB.First(&chore, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Chore not found"})
	}
	if chore.FamilyID != user.FamilyID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "No access to this chore"})
	}

	chore.IsDone = true
	if err := config.DB.Save(&chore).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update chore"})
	}

	return c.JSON(fiber.Map{"message": "Chore completed", "chore": chore})
}

// DeleteChore removes a chore.
func DeleteChore(c *fiber.Ctx) error {
	user, err := currentFamilyMember(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var chore models.Chore
	if err := config.DB.First(&chore, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Chore not found"})
	}
	if chore.FamilyID != user.FamilyID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "No access to this chore"})
	}

	config.DB.Delete(&chore)
	return c.JSON(fiber.Map{"message": "Chore deleted"})
}

// GetChoreOccurrences expands a recurring chore into occurrences for a
// month: /chores/:id/occurrences?month=X&year=Y.
func GetChoreOccurrences(c *fiber.Ctx) error {
	user, err := currentFamilyMember(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var chore models.Chore
	if err := config.DB.First(&chore, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Chore not found"})
	}
	if chore.FamilyID != user.FamilyID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "No access to this chore"})
	}

	month := c.QueryInt("month", 0)
	year := c.QueryInt("year", 0)
	if month < 1 || month > 12 || year < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Valid month and year are required"})
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	dtstart := chore.CreatedAt
	if chore.DueAt != nil {
		dtstart = *chore.DueAt
	}

	occurrences, err := choreOccurrences(chore.RRule, dtstart, from, to)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid recurrence rule"})
	}

	return c.JSON(fiber.Map{"chore": chore, "occurrences": occurrences})
}

// choreOccurrences expands an RRULE anchored at dtstart into the half-open
// window [from, to). A chore without a rule occurs once, at dtstart, if that
// falls inside the window.
func choreOccurrences(rule string, dtstart, from, to time.Time) ([]time.Time, error) {
	if rule == "" {
		if !dtstart.Before(from) && dtstart.Before(to) {
			return []time.Time{dtstart}, nil
		}
		return []time.Time{}, nil
	}

	r, err := rrule.StrToRRule(rule)
	if err != nil {
		return nil, err
	}
	r.DTStart(dtstart)

	occ := r.Between(from, to.Add(-time.Nanosecond), true)
	if occ == nil {
		occ = []time.Time{}
	}
	return occ, nil
}
