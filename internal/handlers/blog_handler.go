package handlers

import (
	"errors"

	"github.com/devfolio/portfolio-backend/internal/dto"
	"github.com/devfolio/portfolio-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type BlogHandler struct {
	service     *services.BlogService
	authService *services.AuthService
}

func NewBlogHandler(service *services.BlogService, authService *services.AuthService) *BlogHandler {
	return &BlogHandler{service: service, authService: authService}
}

func (h *BlogHandler) List(c *fiber.Ctx) error {
	publicOnly := !isAuthenticated(c, h.authService)
	blogs, err := h.service.List(publicOnly)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch blogs",
		})
	}
	return c.JSON(fiber.Map{"data": blogs})
}

func (h *BlogHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	blog, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Blog not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch blog",
		})
	}
	return c.JSON(fiber.Map{"data": blog})
}

func (h *BlogHandler) GetBySlug(c *fiber.Ctx) error {
	blog, err := h.service.GetBySlug(c.Params("slug"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Blog not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch blog",
		})
	}
	return c.JSON(fiber.Map{"data": blog})
}

func (h *BlogHandler) Create(c *fiber.Ctx) error {
	var req dto.BlogRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	blog, err := h.service.Create(&req)
	if err != nil {
		if errors.Is(err, services.ErrSlugTaken) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(blog)
}

func (h *BlogHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	var req dto.BlogRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	blog, err := h.service.Update(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Blog not found",
			})
		case errors.Is(err, services.ErrSlugTaken):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		default:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
	}
	return c.JSON(blog)
}

func (h *BlogHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Blog not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete blog",
		})
	}
	return c.JSON(fiber.Map{"message": "Blog deleted successfully"})
}

// --- Tags ---

func (h *BlogHandler) ListTags(c *fiber.Ctx) error {
	tags, err := h.service.ListTags()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch tags",
		})
	}
	return c.JSON(fiber.Map{"data": tags})
}

func (h *BlogHandler) CreateTag(c *fiber.Ctx) error {
	var req dto.BlogTagRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	tag, err := h.service.CreateTag(&req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(tag)
}

func (h *BlogHandler) UpdateTag(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	var req dto.BlogTagRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	tag, err := h.service.UpdateTag(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Tag not found",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.JSON(tag)
}

func (h *BlogHandler) DeleteTag(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteTag(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Tag not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete tag",
		})
	}
	return c.JSON(fiber.Map{"message": "Tag deleted successfully"})
}
