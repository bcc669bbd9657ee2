package service

import (
	"context"

	"autoscheduler/internal/models"
	"autoscheduler/internal/repository"
)

// networkRepoStub is a stub for repository.SocialNetworkRepository.
type networkRepoStub struct {
	listFn        func(context.Context) ([]models.SocialNetwork, error)
	getByIDFn     func(context.Context, uint) (*models.SocialNetwork, error)
	getByNameFn   func(context.Context, string) (*models.SocialNetwork, error)
	createFn      func(context.Context, *models.SocialNetwork) error
	ensureNamesFn func(context.Context, []string) error
}

func (s *networkRepoStub) List(ctx context.Context) ([]models.SocialNetwork, error) {
	return s.listFn(ctx)
}
func (s *networkRepoStub) GetByID(ctx context.Context, id uint) (*models.SocialNetwork, error) {
	return s.getByIDFn(ctx, id)
}
func (s *networkRepoStub) GetByName(ctx context.Context, name string) (*models.SocialNetwork, error) {
	return s.getByNameFn(ctx, name)
}
func (s *networkRepoStub) Create(ctx context.Context, n *models.SocialNetwork) error {
	return s.createFn(ctx, n)
}
func (s *networkRepoStub) EnsureNames(ctx context.Context, names []string) error {
	return s.ensureNamesFn(ctx, names)
}

func networksOf(networks ...models.SocialNetwork) *networkRepoStub {
	return &networkRepoStub{
		listFn: func(context.Context) ([]models.SocialNetwork, error) { return networks, nil },
		getByIDFn: func(_ context.Context, id uint) (*models.SocialNetwork, error) {
			for i := range networks {
				if networks[i].ID == id {
					return &networks[i], nil
				}
			}
			return nil, models.NewNotFoundError("Social network", id)
		},
		createFn: func(_ context.Context, n *models.SocialNetwork) error {
			n.ID = uint(len(networks) + 1)
			return nil
		},
	}
}

// categoryRepoStub is a stub for repository.CategoryRepository.
type categoryRepoStub struct {
	createFn      func(context.Context, *models.Category) error
	getByIDFn     func(context.Context, uint) (*models.Category, error)
	listByOwnerFn func(context.Context, uint) ([]models.Category, error)
}

func (s *categoryRepoStub) Create(ctx context.Context, c *models.Category) error {
	return s.createFn(ctx, c)
}
func (s *categoryRepoStub) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	return s.getByIDFn(ctx, id)
}
func (s *categoryRepoStub) ListByOwner(ctx context.Context, userID uint) ([]models.Category, error) {
	return s.listByOwnerFn(ctx, userID)
}

func categoriesOf(categories ...models.Category) *categoryRepoStub {
	return &categoryRepoStub{
		createFn: func(_ context.Context, c *models.Category) error {
			c.ID = 100
			return nil
		},
		getByIDFn: func(_ context.Context, id uint) (*models.Category, error) {
			for i := range categories {
				if categories[i].ID == id {
					return &categories[i], nil
				}
			}
			return nil, models.NewNotFoundError("Category", id)
		},
		listByOwnerFn: func(_ context.Context, userID uint) ([]models.Category, error) {
			var owned []models.Category
			for _, c := range categories {
				if c.CreatedByID == userID {
					owned = append(owned, c)
				}
			}
			return owned, nil
		},
	}
}

// ruleRepoStub is a stub for repository.RuleRepository.
type ruleRepoStub struct {
	findOrCreateFn func(context.Context, *models.RecurrenceRule) (*models.RecurrenceRule, error)
}

func (s *ruleRepoStub) FindOrCreateByName(ctx context.Context, r *models.RecurrenceRule) (*models.RecurrenceRule, error) {
	return s.findOrCreateFn(ctx, r)
}
func (s *ruleRepoStub) GetByID(context.Context, uint) (*models.RecurrenceRule, error) {
	return nil, models.NewNotFoundError("Recurrence rule", 0)
}

// eventRepoStub is a stub for repository.EventRepository.
type eventRepoStub struct {
	findOrCreateFn  func(context.Context, *models.PublishEvent) (*models.PublishEvent, bool, error)
	getByIDFn       func(context.Context, uint) (*models.PublishEvent, error)
	listByCreatorFn func(context.Context, uint, int, int) ([]models.PublishEvent, error)
}

func (s *eventRepoStub) FindOrCreate(ctx context.Context, e *models.PublishEvent) (*models.PublishEvent, bool, error) {
	return s.findOrCreateFn(ctx, e)
}
func (s *eventRepoStub) GetByID(ctx context.Context, id uint) (*models.PublishEvent, error) {
	return s.getByIDFn(ctx, id)
}
func (s *eventRepoStub) ListByCreator(ctx context.Context, creatorID uint, limit, offset int) ([]models.PublishEvent, error) {
	return s.listByCreatorFn(ctx, creatorID, limit, offset)
}

// storeStub runs fn directly against the given stubs and records the call.
type storeStub struct {
	rules  repository.RuleRepository
	events repository.EventRepository
	calls  int
}

func (s *storeStub) WithinTransaction(_ context.Context, fn func(repository.RuleRepository, repository.EventRepository) error) error {
	s.calls++
	return fn(s.rules, s.events)
}
