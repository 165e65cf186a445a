package handlers

import (
	"errors"

	"github.com/devfolio/portfolio-backend/internal/dto"
	"github.com/devfolio/portfolio-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ExperienceHandler struct {
	service     *services.ExperienceService
	authService *services.AuthService
}

func NewExperienceHandler(service *services.ExperienceService, authService *services.AuthService) *ExperienceHandler {
	return &ExperienceHandler{service: service, authService: authService}
}

func (h *ExperienceHandler) List(c *fiber.Ctx) error {
	publicOnly := !isAuthenticated(c, h.authService)
	experiences, err := h.service.List(publicOnly)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch experiences",
		})
	}
	return c.JSON(fiber.Map{"data": experiences})
}

func (h *ExperienceHandler) Create(c *fiber.Ctx) error {
	var req dto.ExperienceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	experience, err := h.service.Create(&req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(experience)
}

func (h *ExperienceHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	var req dto.ExperienceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	experience, err := h.service.Update(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Experience not found",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.JSON(experience)
}

func (h *ExperienceHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Experience not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete experience",
		})
	}
	return c.JSON(fiber.Map{"message": "Experience deleted successfully"})
}
