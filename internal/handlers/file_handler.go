package handlers

import (
	"errors"

	"github.com/devfolio/portfolio-backend/internal/dto"
	"github.com/devfolio/portfolio-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type FileHandler struct {
	service *services.UploadService
}

func NewFileHandler(service *services.UploadService) *FileHandler {
	return &FileHandler{service: service}
}

func (h *FileHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "No file provided",
		})
	}

	folder := c.FormValue("folder", "misc")

	path, err := h.service.Save(file, folder)
	if err != nil {
		if errors.Is(err, services.ErrFileTooLarge) {
			return c.Status(fiber.StatusRequestEntityTooLarge).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "File uploaded successfully",
		"path":    path,
	})
}

func (h *FileHandler) Delete(c *fiber.Ctx) error {
	var req struct {
		Path string `json:"path"`
	}
	if err := c.BodyParser(&req); err != nil || req.Path == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := h.service.Delete(req.Path); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete file",
		})
	}
	return c.JSON(fiber.Map{"message": "File deleted successfully"})
}
