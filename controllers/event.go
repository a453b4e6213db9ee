package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"anchored/config"
	"anchored/models"
)

/* ---------- JSON structures (Event) ---------- */

// CreateEventInput is the body for creating a new event.
type CreateEventInput struct {
	CalendarID  uint   `json:"calendar_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Color       string `json:"color"`
}

// UpdateEventInput is the body for updating an existing event.
type UpdateEventInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Color       string `json:"color"`
}

/* ---------- Handlers (Event) ---------- */

// CreateEvent creates a new event in one of the family's calendars.
func CreateEvent(c *fiber.Ctx) error {
	user, err := currentFamilyMember(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var input CreateEventInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	// The calendar must exist and belong to the user's family.
	var cal models.Calendar
	if err := config.DB.First(&cal, input.CalendarID).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Calendar not found"})
	}
	if cal.FamilyID != user.FamilyID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "No access to this calendar"})
	}

	start, err := time.Parse(time.RFC3339, input.StartTime)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid start_time format"})
	}
	end, err := time.Parse(time.RFC3339, input.EndTime)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid end_time format"})
	}

	event := models.Event{
		CalendarID:  input.CalendarID,
		FamilyID:    user.FamilyID,
		Title:       input.Title,
		Description: input.Description,
		Location:    input.Location,
		StartTime:   start,
		EndTime:     end,
		CreatedBy:   user.ID,
		IsCompleted: false,
	}
	if input.Color != "" {
		event.Color = &input.Color
	}

	if err := config.DB.Create(&event).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save event"})
	}

	return c.JSON(fiber.Map{"event": event})
}

// UpdateEvent changes an existing event (time window, color, etc.).
func UpdateEvent(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	eventID := c.Params("id")
	var event models.Event
	if err := config.DB.First(&event, eventID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Event not found"})
	}

	if user.FamilyID != event.FamilyID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "No access to this event"})
	}

	var input UpdateEventInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	start, err := time.Parse(time.RFC3339, input.StartTime)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid start_time format"})
	}
	end, err := time.Parse(time.RFC3339, input.EndTime)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid end_time format"})
	}

	event.Title = input.Title
	event.Description = input.Description
	event.Location = input.Location
	event.StartTime = start
	event.EndTime = end

	if input.Color == "" {
		event.Color = nil
	} else {
		event.Color = &input.Color
	}

	if err := config.DB.Save(&event).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update event"})
	}

	return c.JSON(fiber.Map{"event": event})
}

// GetAllEvents returns every event of the family.
func GetAllEvents(c *fiber.Ctx) error {
	user, err := currentFamilyMember(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var events []models.Event
	if err := config.DB.
		Where("family_id = ?", user.FamilyID).
		Order("start_time ASC").
		Find(&events).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load events"})
	}

	return c.JSON(events)
}

// GetEventsForMonth handles /events?month=X&year=Y.
func GetEventsForMonth(c *fiber.Ctx) error {
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

	var events []models.Event
	if err := config.DB.
		Where("family_id = ? AND start_time >= ? AND start_time < ?",
			user.FamilyID, startDate, endDate).
		Order("start_time ASC").
		Find(&events).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load events"})
	}

	return c.JSON(events)
}

// CompleteEvent marks an event as done.
func CompleteEvent(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	eventID := c.Params("id")
	var event models.Event
	if err := config.DB.First(&event, eventID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Event not found"})
	}

	if user.FamilyID == 0 || user.FamilyID != event.FamilyID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "No access to this event"})
	}

	event.IsCompleted = true
	if err := config.DB.Save(&event).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update event"})
	}

	return c.JSON(fiber.Map{"message": "Event completed", "event": event})
}

// CreateExtraCalendarInput is the body for adding a calendar.
type CreateExtraCalendarInput struct {
	Title string `json:"title"`
}

// CreateExtraCalendar creates an additional calendar in the family.
func CreateExtraCalendar(c *fiber.Ctx) error {
	user, err := currentFamilyMember(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var input CreateExtraCalendarInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	cal := models.Calendar{
		FamilyID: user.FamilyID,
		Title:    input.Title,
	}
	if err := config.DB.Create(&cal).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create calendar"})
	}

	return c.JSON(fiber.Map{"calendar": cal})
}

// GetCalendarsList returns every calendar of the family.
func GetCalendarsList(c *fiber.Ctx) error {
	user, err := currentFamilyMember(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var cals []models.Calendar
	if err := config.DB.Where("family_id = ?", user.FamilyID).Find(&cals).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load calendars"})
	}

	return c.JSON(cals)
}

// GetEventsForCalendar returns one calendar's events for a month.
func GetEventsForCalendar(c *fiber.Ctx) error {
	user, err := currentFamilyMember(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	calendarID := c.Params("calendar_id")
	var cal models.Calendar
	if err := config.DB.First(&cal, calendarID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Calendar not found"})
	}
	if cal.FamilyID != user.FamilyID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "No access to this calendar"})
	}

	month := c.QueryInt("month", 0)
	year := c.QueryInt("year", 0)
	if month < 1 || month > 12 || year < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Valid month and year are required"})
	}

	startDate := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	endDate := startDate.AddDate(0, 1, 0)

	var events []models.Event
	if err := config.DB.
		Where("calendar_id = ? AND start_time >= ? AND start_time < ?", cal.ID, startDate, endDate).
		Order("start_time ASC").
		Find(&events).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load events"})
	}

	return c.JSON(events)
}
