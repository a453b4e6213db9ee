package controllers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"anchored/middleware"
)

func newImportApp() *fiber.App {
	app := fiber.New()
	app.Post("/api/calendar/import/file", ImportCalendarFile)
	app.Post("/api/calendar/import/url", ImportCalendarURL)
	app.Post("/api/calendar/events/bulk", middleware.JWTProtected(), BulkCreateEvents)
	return app
}

func multipartUpload(t *testing.T, fieldName, fileName, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile(fieldName, fileName)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write([]byte(content)); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	w.Close()
	return &buf, w.FormDataContentType()
}

type importResponse struct {
	Success bool `json:"success"`
	Events  []struct {
		Title string `json:"title"`
		Start string `json:"start"`
		End   string `json:"end"`
	} `json:"events"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

func decodeImportResponse(t *testing.T, resp *http.Response) importResponse {
	t.Helper()
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var out importResponse
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("decode body %q: %v", body, err)
	}
	return out
}

func TestImportFileUnsupportedExtension(t *testing.T) {
	app := newImportApp()

	buf, contentType := multipartUpload(t, "file", "schedule.txt", "whatever")
	req := httptest.NewRequest(http.MethodPost, "/api/calendar/import/file", buf)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}

	out := decodeImportResponse(t, resp)
	if !strings.Contains(out.Error, ".ics") || !strings.Contains(out.Error, ".csv") {
		t.Errorf("error should name the supported formats, got %q", out.Error)
	}
}

func TestImportFileMissingUpload(t *testing.T) {
	app := newImportApp()

	req := httptest.NewRequest(http.MethodPost, "/api/calendar/import/file", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestImportFileICS(t *testing.T) {
	app := newImportApp()

	ics := "BEGIN:VCALENDAR\nVERSION:2.0\nBEGIN:VEVENT\nUID:1\nSUMMARY:Dentist\nDTSTART:20231225T143000Z\nEND:VEVENT\nEND:VCALENDAR"
	buf, contentType := multipartUpload(t, "file", "holidays.ics", ics)
	req := httptest.NewRequest(http.MethodPost, "/api/calendar/import/file", buf)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	out := decodeImportResponse(t, resp)
	if !out.Success {
		t.Error("success = false, want true")
	}
	if len(out.Events) != 1 {
		t.Fatalf("got %d events, want 1", len(out.Events))
	}
	if out.Events[0].Title != "Dentist" {
		t.Errorf("title = %q, want %q", out.Events[0].Title, "Dentist")
	}
	if out.Events[0].Start != "2023-12-25T14:30:00.000Z" {
		t.Errorf("start = %q, want %q", out.Events[0].Start, "2023-12-25T14:30:00.000Z")
	}
	if out.Message != "Successfully parsed 1 events" {
		t.Errorf("message = %q", out.Message)
	}
}

func TestImportFileCSVWithMalformedRow(t *testing.T) {
	app := newImportApp()

	csvData := "title,start\nGood,2025-01-10T09:00:00Z\nshort\n"
	buf, contentType := multipartUpload(t, "file", "events.csv", csvData)
	req := httptest.NewRequest(http.MethodPost, "/api/calendar/import/file", buf)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	out := decodeImportResponse(t, resp)
	if len(out.Events) != 1 {
		t.Fatalf("got %d events, want 1", len(out.Events))
	}
	if out.Events[0].End != out.Events[0].Start {
		t.Errorf("end = %q, want start %q", out.Events[0].End, out.Events[0].Start)
	}
}

func TestImportURLInvalid(t *testing.T) {
	app := newImportApp()

	for _, body := range []string{`{"url":"not a url"}`, `{"url":"ftp://example.com/a.ics"}`, `{}`} {
		req := httptest.NewRequest(http.MethodPost, "/api/calendar/import/url", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want 400", body, resp.StatusCode)
		}
	}
}

func TestImportURLFetchesAndParses(t *testing.T) {
	remote := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != fetchUserAgent {
			t.Errorf("User-Agent = %q, want %q", r.Header.Get("User-Agent"), fetchUserAgent)
		}
		w.Header().Set("Content-Type", "text/calendar")
		io.WriteString(w, "BEGIN:VCALENDAR\nVERSION:2.0\nBEGIN:VEVENT\nUID:1\nSUMMARY:Remote\nDTSTART:20240101T100000Z\nEND:VEVENT\nEND:VCALENDAR")
	}))
	defer remote.Close()

	app := newImportApp()

	req := httptest.NewRequest(http.MethodPost, "/api/calendar/import/url", strings.NewReader(`{"url":"`+remote.URL+`"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	out := decodeImportResponse(t, resp)
	if len(out.Events) != 1 || out.Events[0].Title != "Remote" {
		t.Errorf("unexpected events: %+v", out.Events)
	}
}

func TestImportURLPropagatesRemoteStatus(t *testing.T) {
	remote := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer remote.Close()

	app := newImportApp()

	req := httptest.NewRequest(http.MethodPost, "/api/calendar/import/url", strings.NewReader(`{"url":"`+remote.URL+`/feed.ics"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestImportURLUnsupportedContent(t *testing.T) {
	remote := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		io.WriteString(w, "hello there")
	}))
	defer remote.Close()

	app := newImportApp()

	req := httptest.NewRequest(http.MethodPost, "/api/calendar/import/url", strings.NewReader(`{"url":"`+remote.URL+`"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestBulkCreateEventsRequiresAuth(t *testing.T) {
	app := newImportApp()

	req := httptest.NewRequest(http.MethodPost, "/api/calendar/events/bulk", strings.NewReader(`{"events":[]}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/calendar/events/bulk", strings.NewReader(`{"events":[]}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer not-a-real-token")

	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}
