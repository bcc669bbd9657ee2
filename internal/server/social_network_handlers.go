package server

import (
	"autoscheduler/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetSocialNetworks handles GET /api/social-networks
func (s *Server) GetSocialNetworks(c *fiber.Ctx) error {
	networks, err := s.networkService.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(networks)
}

// CreateSocialNetwork handles POST /api/social-networks (admin only)
func (s *Server) CreateSocialNetwork(c *fiber.Ctx) error {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	network, err := s.networkService.Create(c.UserContext(), service.CreateSocialNetworkInput{
		UserID: c.Locals("userID").(uint),
		Name:   req.Name,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(network)
}
