package server

import (
	"autoscheduler/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetCategories handles GET /api/categories
func (s *Server) GetCategories(c *fiber.Ctx) error {
	categories, err := s.categoryService.List(c.UserContext(), c.Locals("userID").(uint))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(categories)
}

// CreateCategory handles POST /api/categories
func (s *Server) CreateCategory(c *fiber.Ctx) error {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	category, err := s.categoryService.Create(c.UserContext(), service.CreateCategoryInput{
		UserID: c.Locals("userID").(uint),
		Name:   req.Name,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}
