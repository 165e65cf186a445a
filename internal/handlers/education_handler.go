package handlers

import (
	"errors"

	"github.com/devfolio/portfolio-backend/internal/dto"
	"github.com/devfolio/portfolio-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type EducationHandler struct {
	service     *services.EducationService
	authService *services.AuthService
}

func NewEducationHandler(service *services.EducationService, authService *services.AuthService) *EducationHandler {
	return &EducationHandler{service: service, authService: authService}
}

func (h *EducationHandler) List(c *fiber.Ctx) error {
	publicOnly := !isAuthenticated(c, h.authService)
	educations, err := h.service.List(publicOnly)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch educations",
		})
	}
	return c.JSON(fiber.Map{"data": educations})
}

func (h *EducationHandler) Create(c *fiber.Ctx) error {
	var req dto.EducationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	education, err := h.service.Create(&req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(education)
}

func (h *EducationHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	var req dto.EducationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	education, err := h.service.Update(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Education not found",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.JSON(education)
}

func (h *EducationHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Education not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete education",
		})
	}
	return c.JSON(fiber.Map{"message": "Education deleted successfully"})
}
