package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"autoscheduler/internal/middleware"
	"autoscheduler/internal/models"
	"autoscheduler/internal/observability"
	"autoscheduler/internal/repository"
	"autoscheduler/internal/schedule"

	"go.opentelemetry.io/otel/attribute"
)

const errForeignCategory = "You must choose a category you own"

// EventService creates recurring publish events and expands their schedules.
type EventService struct {
	networks   repository.SocialNetworkRepository
	categories repository.CategoryRepository
	events     repository.EventRepository
	store      repository.ScheduleStore
	policy     DefaultNetworkPolicy
	now        func() time.Time
}

// GetOrCreateEventInput identifies a weekly slot for one network and category.
type GetOrCreateEventInput struct {
	UserID          uint
	SocialNetworkID uint
	CategoryID      uint
	Weekday         int
	Hour            int
	Minute          int
}

// EventFormInitial holds the preselected values of the event form.
type EventFormInitial struct {
	Hour            int   `json:"hour"`
	Minute          int   `json:"minute"`
	SocialNetworkID *uint `json:"social_network_id"`
}

// EventForm carries the choices and initial values of the event form.
type EventForm struct {
	Weekdays       []schedule.WeekdayChoice `json:"weekdays"`
	Hours          []int                    `json:"hours"`
	Minutes        []int                    `json:"minutes"`
	SocialNetworks []models.SocialNetwork   `json:"social_networks"`
	Categories     []models.Category        `json:"categories"`
	Initial        EventFormInitial         `json:"initial"`
}

// NewEventService wires the event service. A nil clock means time.Now.
func NewEventService(
	networks repository.SocialNetworkRepository,
	categories repository.CategoryRepository,
	events repository.EventRepository,
	store repository.ScheduleStore,
	policy DefaultNetworkPolicy,
	clock func() time.Time,
) *EventService {
	if clock == nil {
		clock = time.Now
	}
	return &EventService{
		networks:   networks,
		categories: categories,
		events:     events,
		store:      store,
		policy:     policy,
		now:        clock,
	}
}

// GetOrCreateEvent finds or creates the recurrence rule for the slot and then
// the publish event starting now and ending one year later. Both writes share
// one transaction. The bool reports whether the event was newly created.
func (s *EventService) GetOrCreateEvent(ctx context.Context, in GetOrCreateEventInput) (event *models.PublishEvent, created bool, err error) {
	ctx, span := observability.StartSpan(ctx, "EventService.GetOrCreateEvent",
		attribute.Int("schedule.weekday", in.Weekday),
		attribute.Int("schedule.hour", in.Hour),
		attribute.Int("schedule.minute", in.Minute),
	)
	defer func() { observability.EndSpan(span, err) }()

	if err := schedule.ValidateSlot(in.Weekday, in.Hour, in.Minute); err != nil {
		return nil, false, models.NewValidationError(strings.TrimPrefix(err.Error(), schedule.ErrInvalidSlot.Error()+": "))
	}

	network, err := s.networks.GetByID(ctx, in.SocialNetworkID)
	if err != nil {
		return nil, false, err
	}
	category, err := s.categories.GetByID(ctx, in.CategoryID)
	if err != nil {
		return nil, false, err
	}
	if !category.OwnedBy(in.UserID) {
		return nil, false, models.NewFieldError("category", errForeignCategory)
	}

	desc := schedule.Describe(in.Weekday, in.Hour, in.Minute, network.Name)
	start := s.now().UTC().Truncate(time.Microsecond)

	err = s.store.WithinTransaction(ctx, func(rules repository.RuleRepository, events repository.EventRepository) error {
		rule, err := rules.FindOrCreateByName(ctx, &models.RecurrenceRule{
			Name:        desc.RuleName,
			Description: desc.RuleDescription,
			Frequency:   desc.Frequency,
			Params:      desc.Params,
		})
		if err != nil {
			return err
		}

		event, created, err = events.FindOrCreate(ctx, &models.PublishEvent{
			Title:           desc.Title,
			Start:           start,
			End:             schedule.NextYear(start),
			RuleID:          rule.ID,
			CategoryID:      category.ID,
			SocialNetworkID: network.ID,
			CreatorID:       in.UserID,
		})
		if err != nil {
			return err
		}
		event.Rule = rule
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	outcome := "existing"
	if created {
		outcome = "created"
	}
	observability.EventUpserts.WithLabelValues(outcome).Inc()
	middleware.Logger.InfoContext(ctx, "publish event resolved",
		slog.Uint64("event_id", uint64(event.ID)),
		slog.Uint64("rule_id", uint64(event.RuleID)),
		slog.String("outcome", outcome),
	)

	event.SocialNetwork = network
	event.Category = category
	return event, created, nil
}

// List returns the events created by userID, newest first.
func (s *EventService) List(ctx context.Context, userID uint, limit, offset int) ([]models.PublishEvent, error) {
	return s.events.ListByCreator(ctx, userID, limit, offset)
}

// Get returns one of userID's events.
func (s *EventService) Get(ctx context.Context, userID, eventID uint) (*models.PublishEvent, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.CreatorID != userID {
		return nil, models.NewForbiddenError("You are not allowed to view this event")
	}
	return event, nil
}

// Occurrences lists the upcoming posting times of an event, from now until
// the event ends, capped at limit.
func (s *EventService) Occurrences(ctx context.Context, userID, eventID uint, limit int) ([]time.Time, error) {
	event, err := s.Get(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}
	if event.Rule == nil {
		return nil, models.NewInternalError(fmt.Errorf("publish event %d has no recurrence rule", event.ID))
	}

	now := s.now().UTC()
	if now.Before(event.Start) {
		now = event.Start
	}
	if now.After(event.End) {
		return []time.Time{}, nil
	}

	times, err := schedule.Occurrences(event.Rule.Frequency, event.Rule.Params, event.Start, event.End, schedule.Window{
		Start: now,
		End:   event.End,
		Limit: limit,
	})
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return times, nil
}

// Form builds the event form for userID: slot choices, the rounded current
// time and the default social network.
func (s *EventService) Form(ctx context.Context, userID uint) (*EventForm, error) {
	networks, err := s.networks.List(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := s.categories.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	hour, minute := schedule.RoundClock(s.now())
	return &EventForm{
		Weekdays:       schedule.WeekdayChoices(),
		Hours:          schedule.HourChoices(),
		Minutes:        schedule.MinuteChoices(),
		SocialNetworks: networks,
		Categories:     categories,
		Initial: EventFormInitial{
			Hour:            hour,
			Minute:          minute,
			SocialNetworkID: s.policy.resolveID(networks),
		},
	}, nil
}
