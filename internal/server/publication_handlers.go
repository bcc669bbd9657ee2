package server

import (
	"autoscheduler/internal/models"
	"autoscheduler/internal/service"

	"github.com/gofiber/fiber/v2"
)

// publicationResponse adds the list-view summary to a publication.
type publicationResponse struct {
	models.Publication
	Summary string `json:"summary"`
}

// GetPublications handles GET /api/publications
func (s *Server) GetPublications(c *fiber.Ctx) error {
	page := parsePagination(c, 20)

	publications, err := s.publicationService.List(c.UserContext(), c.Locals("userID").(uint), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}

	out := make([]publicationResponse, 0, len(publications))
	for i := range publications {
		out = append(out, publicationResponse{
			Publication: publications[i],
			Summary:     publications[i].Summary(),
		})
	}
	return c.JSON(out)
}

// CreatePublication handles POST /api/publications
func (s *Server) CreatePublication(c *fiber.Ctx) error {
	var req struct {
		Content         string `json:"content"`
		SocialNetworkID uint   `json:"social_network_id"`
		CategoryID      *uint  `json:"category_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	publication, err := s.publicationService.Create(c.UserContext(), service.CreatePublicationInput{
		UserID:          c.Locals("userID").(uint),
		SocialNetworkID: req.SocialNetworkID,
		CategoryID:      req.CategoryID,
		Content:         req.Content,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(publication)
}

// GetPublicationForm handles GET /api/publications/form
func (s *Server) GetPublicationForm(c *fiber.Ctx) error {
	form, err := s.publicationService.Form(c.UserContext(), c.Locals("userID").(uint))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(form)
}
