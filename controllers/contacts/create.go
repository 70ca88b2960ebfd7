package contacts

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"akshu/helpers"
	"akshu/middlewares"
	"akshu/models"
)

type CreateRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

func (h *Handler) Create(c *fiber.Ctx) error {
	var req CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Phone = strings.TrimSpace(req.Phone)
	if req.Name == "" || req.Phone == "" {
		return helpers.JSONError(c, "Name and Phone are required.")
	}

	contact := models.Contact{
		UserID: middlewares.UserID(c),
		Name:   req.Name,
		Phone:  req.Phone,
		Email:  req.Email,
		Source: "manual",
	}
	if err := h.db.Create(&contact).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "Failed to save contact.")
	}

	return helpers.JSONSuccess(c, "Contact added successfully.", fiber.Map{
		"contact_id": contact.ID,
	})
}
