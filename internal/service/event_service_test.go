package service

import (
	"context"
	"testing"
	"time"

	"autoscheduler/internal/models"
	"autoscheduler/internal/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	ownerID = uint(1)
	otherID = uint(2)
)

// fixedClock is Friday 2026-10-16 09:27 UTC.
func fixedClock() time.Time {
	return time.Date(2026, 10, 16, 9, 27, 0, 0, time.UTC)
}

type eventHarness struct {
	svc     *EventService
	store   *storeStub
	rules   []*models.RecurrenceRule
	events  []*models.PublishEvent
	network models.SocialNetwork
}

func newEventHarness(policy DefaultNetworkPolicy) *eventHarness {
	h := &eventHarness{network: models.SocialNetwork{ID: 10, Name: "Twitter"}}

	rules := &ruleRepoStub{findOrCreateFn: func(_ context.Context, r *models.RecurrenceRule) (*models.RecurrenceRule, error) {
		for _, existing := range h.rules {
			if existing.Name == r.Name {
				return existing, nil
			}
		}
		created := *r
		created.ID = uint(len(h.rules) + 1)
		h.rules = append(h.rules, &created)
		return &created, nil
	}}
	events := &eventRepoStub{
		findOrCreateFn: func(_ context.Context, e *models.PublishEvent) (*models.PublishEvent, bool, error) {
			for _, existing := range h.events {
				if existing.Title == e.Title && existing.Start.Equal(e.Start) && existing.RuleID == e.RuleID &&
					existing.CategoryID == e.CategoryID && existing.SocialNetworkID == e.SocialNetworkID &&
					existing.CreatorID == e.CreatorID {
					return existing, false, nil
				}
			}
			created := *e
			created.ID = uint(len(h.events) + 1)
			h.events = append(h.events, &created)
			return &created, true, nil
		},
	}
	h.store = &storeStub{rules: rules, events: events}

	h.svc = NewEventService(
		networksOf(h.network),
		categoriesOf(
			models.Category{ID: 20, Name: "News", CreatedByID: ownerID},
			models.Category{ID: 21, Name: "Theirs", CreatedByID: otherID},
		),
		events,
		h.store,
		policy,
		fixedClock,
	)
	return h
}

func mondayInput() GetOrCreateEventInput {
	return GetOrCreateEventInput{
		UserID:          ownerID,
		SocialNetworkID: 10,
		CategoryID:      20,
		Weekday:         0,
		Hour:            14,
		Minute:          10,
	}
}

func TestEventService_GetOrCreateEvent_Creates(t *testing.T) {
	h := newEventHarness(DefaultNetworkPolicy{})

	event, created, err := h.svc.GetOrCreateEvent(context.Background(), mondayInput())
	require.NoError(t, err)
	assert.True(t, created)

	assert.Equal(t, "Twitter post every Monday at 14:10", event.Title)
	assert.True(t, fixedClock().Equal(event.Start))
	assert.True(t, time.Date(2027, 10, 16, 9, 27, 0, 0, time.UTC).Equal(event.End))
	assert.Equal(t, ownerID, event.CreatorID)
	assert.Equal(t, uint(20), event.CategoryID)
	assert.Equal(t, uint(10), event.SocialNetworkID)

	require.NotNil(t, event.Rule)
	assert.Equal(t, "Every monday at 14:10", event.Rule.Name)
	assert.Equal(t, "Event occurring every Monday at 14:10", event.Rule.Description)
	assert.Equal(t, schedule.FrequencyWeekly, event.Rule.Frequency)
	assert.Equal(t, "byweekday:0;byhour:14;byminute:10", event.Rule.Params)
	assert.Equal(t, 1, h.store.calls)
}

func TestEventService_GetOrCreateEvent_ReusesRuleAndEvent(t *testing.T) {
	h := newEventHarness(DefaultNetworkPolicy{})
	ctx := context.Background()

	first, created, err := h.svc.GetOrCreateEvent(ctx, mondayInput())
	require.NoError(t, err)
	require.True(t, created)

	second, created, err := h.svc.GetOrCreateEvent(ctx, mondayInput())
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.RuleID, second.RuleID)
	assert.Len(t, h.rules, 1)
}

func TestEventService_GetOrCreateEvent_RejectsForeignCategory(t *testing.T) {
	h := newEventHarness(DefaultNetworkPolicy{})

	in := mondayInput()
	in.CategoryID = 21
	_, _, err := h.svc.GetOrCreateEvent(context.Background(), in)
	require.Error(t, err)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeValidation, appErr.Code)
	assert.Equal(t, "category", appErr.Field)
	assert.Equal(t, "You must choose a category you own", appErr.Message)

	assert.Zero(t, h.store.calls, "nothing may be persisted")
	assert.Empty(t, h.rules)
	assert.Empty(t, h.events)
}

func TestEventService_GetOrCreateEvent_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *GetOrCreateEventInput)
		code   string
	}{
		{"weekday out of range", func(in *GetOrCreateEventInput) { in.Weekday = 7 }, models.CodeValidation},
		{"hour out of range", func(in *GetOrCreateEventInput) { in.Hour = 24 }, models.CodeValidation},
		{"minute off grid", func(in *GetOrCreateEventInput) { in.Minute = 15 }, models.CodeValidation},
		{"unknown network", func(in *GetOrCreateEventInput) { in.SocialNetworkID = 99 }, models.CodeNotFound},
		{"unknown category", func(in *GetOrCreateEventInput) { in.CategoryID = 99 }, models.CodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newEventHarness(DefaultNetworkPolicy{})
			in := mondayInput()
			tt.mutate(&in)

			_, _, err := h.svc.GetOrCreateEvent(context.Background(), in)
			require.Error(t, err)
			assert.Equal(t, tt.code, models.ErrorCode(err))
			assert.Zero(t, h.store.calls)
		})
	}
}

func TestEventService_Form(t *testing.T) {
	h := newEventHarness(DefaultNetworkPolicy{UseSingle: true})

	form, err := h.svc.Form(context.Background(), ownerID)
	require.NoError(t, err)

	assert.Len(t, form.Weekdays, 7)
	assert.Len(t, form.Hours, 24)
	assert.Equal(t, []int{0, 10, 20, 30, 40, 50}, form.Minutes)
	require.Len(t, form.Categories, 1)
	assert.Equal(t, "News", form.Categories[0].Name)

	// 09:27 rounds to 09:30.
	assert.Equal(t, 9, form.Initial.Hour)
	assert.Equal(t, 30, form.Initial.Minute)
	require.NotNil(t, form.Initial.SocialNetworkID)
	assert.Equal(t, uint(10), *form.Initial.SocialNetworkID)
}

func TestEventService_Occurrences(t *testing.T) {
	h := newEventHarness(DefaultNetworkPolicy{})
	ctx := context.Background()

	event, _, err := h.svc.GetOrCreateEvent(ctx, mondayInput())
	require.NoError(t, err)

	h.svc.events = &eventRepoStub{getByIDFn: func(_ context.Context, id uint) (*models.PublishEvent, error) {
		if id != event.ID {
			return nil, models.NewNotFoundError("Publish event", id)
		}
		return event, nil
	}}

	times, err := h.svc.Occurrences(ctx, ownerID, event.ID, 5)
	require.NoError(t, err)
	require.Len(t, times, 5)
	assert.True(t, time.Date(2026, 10, 19, 14, 10, 0, 0, time.UTC).Equal(times[0]))
	for _, ts := range times {
		assert.Equal(t, time.Monday, ts.Weekday())
		assert.Equal(t, 14, ts.Hour())
		assert.Equal(t, 10, ts.Minute())
		assert.False(t, ts.After(event.End))
	}

	_, err = h.svc.Occurrences(ctx, otherID, event.ID, 5)
	assert.Equal(t, models.CodeForbidden, models.ErrorCode(err))

	_, err = h.svc.Occurrences(ctx, ownerID, 999, 5)
	assert.Equal(t, models.CodeNotFound, models.ErrorCode(err))
}
