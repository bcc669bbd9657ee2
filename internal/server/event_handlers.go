package server

import (
	"autoscheduler/internal/models"
	"autoscheduler/internal/service"

	"github.com/gofiber/fiber/v2"
)

const defaultOccurrenceLimit = 10

// CreateEvent handles POST /api/events. It answers 201 when a new event was
// created and 200 when an identical event already existed.
func (s *Server) CreateEvent(c *fiber.Ctx) error {
	var req struct {
		SocialNetworkID uint `json:"social_network_id"`
		CategoryID      uint `json:"category_id"`
		Weekday         *int `json:"weekday"`
		Hour            *int `json:"hour"`
		Minute          *int `json:"minute"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	if err := requireSlotFields(req.Weekday, req.Hour, req.Minute); err != nil {
		return respondError(c, err)
	}

	event, created, err := s.eventService.GetOrCreateEvent(c.UserContext(), service.GetOrCreateEventInput{
		UserID:          c.Locals("userID").(uint),
		SocialNetworkID: req.SocialNetworkID,
		CategoryID:      req.CategoryID,
		Weekday:         *req.Weekday,
		Hour:            *req.Hour,
		Minute:          *req.Minute,
	})
	if err != nil {
		return respondError(c, err)
	}

	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(event)
}

// requireSlotFields rejects a body that omits any part of the weekly slot, so
// a missing value never defaults to Monday at 00:00.
func requireSlotFields(weekday, hour, minute *int) error {
	switch {
	case weekday == nil:
		return models.NewFieldError("weekday", "This field is required")
	case hour == nil:
		return models.NewFieldError("hour", "This field is required")
	case minute == nil:
		return models.NewFieldError("minute", "This field is required")
	}
	return nil
}

// GetEvents handles GET /api/events
func (s *Server) GetEvents(c *fiber.Ctx) error {
	page := parsePagination(c, 20)

	events, err := s.eventService.List(c.UserContext(), c.Locals("userID").(uint), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(events)
}

// GetEvent handles GET /api/events/:id
func (s *Server) GetEvent(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	event, err := s.eventService.Get(c.UserContext(), c.Locals("userID").(uint), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(event)
}

// GetEventOccurrences handles GET /api/events/:id/occurrences?limit=N
func (s *Server) GetEventOccurrences(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	limit := c.QueryInt("limit", defaultOccurrenceLimit)
	if limit <= 0 || limit > maxPaginationLimit {
		limit = defaultOccurrenceLimit
	}

	times, err := s.eventService.Occurrences(c.UserContext(), c.Locals("userID").(uint), id, limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"event_id":    id,
		"occurrences": times,
	})
}

// GetEventForm handles GET /api/events/form
func (s *Server) GetEventForm(c *fiber.Ctx) error {
	form, err := s.eventService.Form(c.UserContext(), c.Locals("userID").(uint))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(form)
}

