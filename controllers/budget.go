package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"anchored/config"
	"anchored/models"
)

type BudgetEntryInput struct {
	Kind       string `json:"kind"` // "income" or "expense"
	Category   string `json:"category"`
	Amount     int64  `json:"amount"` // minor currency units
	Note       string `json:"note"`
	OccurredAt string `json:"occurred_at"` // RFC 3339
}

// CreateBudgetEntry records an income or expense.
func CreateBudgetEntry(c *fiber.Ctx) error {
	user, err := currentFamilyMember(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var input BudgetEntryInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if input.Kind != "income" && input.Kind != "expense" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Kind must be income or expense"})
	}
	if input.Amount <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Amount must be positive"})
	}

	occurredAt := time.Now()
	if input.OccurredAt != "" {
		occurredAt, err = time.Parse(time.RFC3339, input.OccurredAt)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid occurred_at format"})
		}
	}

	entry := models.BudgetEntry{
		FamilyID:   user.FamilyID,
		Kind:       input.Kind,
		Category:   input.Category,
		Amount:     input.Amount,
		Note:       input.Note,
		OccurredAt: occurredAt,
		CreatedBy:  user.ID,
	}
	if err := config.DB.Create(&entry).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save budget entry"})
	}

	return c.JSON(fiber.Map{"entry": entry})
}

// GetBudgetEntries returns the family's entries for a month.
func GetBudgetEntries(c *fiber.Ctx) error {
	user, err := currentFamilyMember(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	month := c.QueryInt("month", 0)
	year := c.QueryInt("year", 0)
	if month < 1 || month > 12 || year < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Valid month and year are required"})
	}

	startDate := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	endDate := startDate.AddDate(0, 1, 0)

	var entries []models.BudgetEntry
	if err := config.DB.
		Where("family_id = ? AND occurred_at >= ? AND occurred_at < ?",
			user.FamilyID, startDate, endDate).
		Order("occurred_at DESC").
		Find(&entries).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load budget entries"})
	}

	return c.JSON(entries)
}

// GetBudgetSummary totals a month's entries by kind and category.
func GetBudgetSummary(c *fiber.Ctx) error {
	user, err := currentFamilyMember(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	month := c.QueryInt("month", 0)
	year := c.QueryInt("year", 0)
	if month < 1 || month > 12 || year < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Valid month and year are required"})
	}

	startDate := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	endDate := startDate.AddDate(0, 1, 0)

	var entries []models.BudgetEntry
	if err := config.DB.
		Where("family_id = ? AND occurred_at >= ? AND occurred_at < ?",
			user.FamilyID, startDate, endDate).
		Find(&entries).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load budget entries"})
	}

	summary := summarizeBudget(entries)
	return c.JSON(summary)
}

// DeleteBudgetEntry removes an entry.
func DeleteBudgetEntry(c *fiber.Ctx) error {
	user, err := currentFamilyMember(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var entry models.BudgetEntry
	if err := config.DB.First(&entry, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Budget entry not found"})
	}
	if entry.FamilyID != user.FamilyID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "No access to this entry"})
	}

	config.DB.Delete(&entry)
	return c.JSON(fiber.Map{"message": "Budget entry deleted"})
}

// BudgetSummary is the month roll-up returned by GetBudgetSummary.
type BudgetSummary struct {
	Income     int64            `json:"income"`
	Expenses   int64            `json:"expenses"`
	Balance    int64            `json:"balance"`
	ByCategory map[string]int64 `json:"by_category"` // expenses only, signed positive
}

func summarizeBudget(entries []models.BudgetEntry) BudgetSummary {
	summary := BudgetSummary{ByCategory: make(map[string]int64)}
	for _, e := range entries {
		switch e.Kind {
		case "income":
			summary.Income += e.Amount
		case "expense":
			summary.Expenses += e.Amount
			category := e.Category
			if category == "" {
				category = "uncategorized"
			}
			summary.ByCategory[category] += e.Amount
		}
	}
	summary.Balance = summary.Income - summary.Expenses
	return summary
}
