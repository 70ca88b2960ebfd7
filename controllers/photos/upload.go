package photos

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"akshu/helpers"
	"akshu/middlewares"
	"akshu/models"
)

// Upload proxies the file to object storage under a per-user folder and
// records the returned URL and public id.
func (h *Handler) Upload(c *fiber.Ctx) error {
	if h.storage == nil {
		return helpers.JSONErrorStatus(c, fiber.StatusServiceUnavailable, "Photo storage is not configured.")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return helpers.JSONError(c, "No file part.")
	}
	if fileHeader.Filename == "" {
		return helpers.JSONError(c, "No selected file.")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return helpers.JSONError(c, "Could not read file.")
	}
	defer file.Close()

	userID := middlewares.UserID(c)
	folder := middlewares.Username(c)

	result, err := h.storage.Upload(c.Context(), file, folder)
	if err != nil {
		log.Printf("[PHOTOS] ❌ Upload error for user %d: %v", userID, err)
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "Upload failed.")
	}

	photo := models.Photo{
		UserID:   userID,
		URL:      result.SecureURL,
		PublicID: result.PublicID,
		Filename: fileHeader.Filename,
		Location: c.FormValue("location"),
	}
	if err := h.db.Create(&photo).Error; err != nil {
		log.Printf("[PHOTOS] ❌ Failed to save photo record: %v", err)
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "Upload failed.")
	}

	return helpers.JSONSuccess(c, "File uploaded successfully.", fiber.Map{
		"url": result.SecureURL,
	})
}
