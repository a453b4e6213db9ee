package controllers

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"anchored/calimport"
	"anchored/config"
	"anchored/models"
)

// fetchUserAgent identifies us to remote calendar hosts.
const fetchUserAgent = "AnchoredCalendarImport/1.0"

var importClient = &http.Client{Timeout: 15 * time.Second}

/* ---------- Handlers (Calendar import) ---------- */

// ImportCalendarFile parses an uploaded .ics or .csv file into draft events.
// The drafts are returned for preview; nothing is persisted here.
func ImportCalendarFile(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing file upload"})
	}

	var format calimport.Format
	switch strings.ToLower(filepath.Ext(fileHeader.Filename)) {
	case ".ics":
		format = calimport.FormatICal
	case ".csv":
		format = calimport.FormatCSV
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unsupported file format. Upload a .ics or .csv file."})
	}

	f, err := fileHeader.Open()
	if err != nil {
		log.Printf("calendar import: open upload failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to read uploaded file"})
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		log.Printf("calendar import: read upload failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to read uploaded file"})
	}

	events := calimport.Parse(string(raw), format)

	return c.JSON(fiber.Map{
		"success": true,
		"events":  events,
		"message": fmt.Sprintf("Successfully parsed %d events", len(events)),
	})
}

// ImportURLInput is the body for importing from a remote URL.
type ImportURLInput struct {
	URL string `json:"url"`
}

// ImportCalendarURL fetches a remote calendar and parses it into draft
// events. The format is detected from the response content type, the URL
// suffix, or the body itself.
func ImportCalendarURL(c *fiber.Ctx) error {
	var input ImportURLInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	parsed, err := url.ParseRequestURI(input.URL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid URL"})
	}

	req, err := http.NewRequestWithContext(c.Context(), http.MethodGet, input.URL, nil)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid URL"})
	}
	req.Header.Set("User-Agent", fetchUserAgent)

	resp, err := importClient.Do(req)
	if err != nil {
		log.Printf("calendar import: fetch %s failed: %v", input.URL, err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to fetch calendar URL"})
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Surface the remote status to the caller.
		return c.Status(resp.StatusCode).JSON(fiber.Map{"error": "Remote server returned " + resp.Status})
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("calendar import: read response from %s failed: %v", input.URL, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to read calendar data"})
	}

	format, ok := calimport.DetectFormat(parsed.Path, resp.Header.Get("Content-Type"), string(raw))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unsupported file format. The URL must serve iCalendar (.ics) or CSV data."})
	}

	events := calimport.Parse(string(raw), format)

	return c.JSON(fiber.Map{
		"success": true,
		"events":  events,
		"message": fmt.Sprintf("Successfully parsed %d events", len(events)),
	})
}

// BulkEventsInput is the body for persisting previously previewed drafts.
type BulkEventsInput struct {
	CalendarID uint                   `json:"calendar_id"`
	Events     []calimport.DraftEvent `json:"events"`
}

// BulkCreateEvents persists accepted draft events into one of the family's
// calendars. Drafts missing a title or start are skipped, matching the
// parser's own behavior.
func BulkCreateEvents(c *fiber.Ctx) error {
	user, err := currentFamilyMember(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var input BulkEventsInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	// Resolve the target calendar; default family calendar when unset.
	var cal models.Calendar
	if input.CalendarID != 0 {
		if err := config.DB.First(&cal, input.CalendarID).Error; err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Calendar not found"})
		}
		if cal.FamilyID != user.FamilyID {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "No access to this calendar"})
		}
	} else {
		if err := config.DB.Where("family_id = ?", user.FamilyID).Order("id ASC").First(&cal).Error; err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Family has no calendar"})
		}
	}

	imported := 0
	for _, draft := range input.Events {
		if draft.Title == "" || draft.Start == "" {
			continue
		}

		start, err := time.Parse(time.RFC3339, draft.Start)
		if err != nil {
			continue
		}
		end, err := time.Parse(time.RFC3339, draft.End)
		if err != nil {
			end = start
		}

		event := models.Event{
			CalendarID:  cal.ID,
			FamilyID:    user.FamilyID,
			Title:       draft.Title,
			Description: draft.Description,
			Location:    draft.Location,
			StartTime:   start,
			EndTime:     end,
			CreatedBy:   user.ID,
		}
		if err := config.DB.Create(&event).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save imported events"})
		}
		imported++
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"imported": imported,
		"message":  fmt.Sprintf("Imported %d events", imported),
	})
}
