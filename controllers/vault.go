package controllers

import (
	"log"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"anchored/config"
	"anchored/models"
)

const vaultDir = "./public/uploads"

/* ---------- Handlers (Document vault) ---------- */

// UploadDocument stores an uploaded file on disk under a generated name and
// records it for the family.
func UploadDocument(c *fiber.Ctx) error {
	user, err := currentFamilyMember(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing file upload"})
	}

	if err := os.MkdirAll(vaultDir, 0755); err != nil {
		log.Printf("vault: mkdir failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to store document"})
	}

	storedName := uuid.New().String() + filepath.Ext(fileHeader.Filename)
	storedPath := filepath.Join(vaultDir, storedName)
	if err := c.SaveFile(fileHeader, storedPath); err != nil {
		log.Printf("vault: save failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to store document"})
	}

	doc := models.Document{
		FamilyID:   user.FamilyID,
		Title:      c.FormValue("title", fileHeader.Filename),
		FileName:   fileHeader.Filename,
		StoredPath: storedPath,
		Size:       fileHeader.Size,
		UploadedBy: user.ID,
	}
	if err := config.DB.Create(&doc).Error; err != nil {
		os.Remove(storedPath)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to store document"})
	}

	return c.JSON(fiber.Map{"document": doc})
}

// GetDocuments lists the family's documents.
func GetDocuments(c *fiber.Ctx) error {
	user, err := currentFamilyMember(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var docs []models.Document
	if err := config.DB.
		Where("family_id = ?", user.FamilyID).
		Order("created_at DESC").
		Find(&docs).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load documents"})
	}

	return c.JSON(docs)
}

// DownloadDocument streams a stored document back to a family member.
func DownloadDocument(c *fiber.Ctx) error {
	user, err := currentFamilyMember(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var doc models.Document
	if err := config.DB.First(&doc, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Document not found"})
	}
	if doc.FamilyID != user.FamilyID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "No access to this document"})
	}

	return c.Download(doc.StoredPath, doc.FileName)
}

// DeleteDocument removes the record and the file on disk.
func DeleteDocument(c *fiber.Ctx) error {
	user, err := currentFamilyMember(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var doc models.Document
	if err := config.DB.First(&doc, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Document not found"})
	}
	if doc.FamilyID != user.FamilyID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "No access to this document"})
	}

	if err := config.DB.Delete(&doc).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete document"})
	}
	if err := os.Remove(doc.StoredPath); err != nil && !os.IsNotExist(err) {
		log.Printf("vault: remove %s failed: %v", doc.StoredPath, err)
	}

	return c.JSON(fiber.Map{"message": "Document deleted"})
}
