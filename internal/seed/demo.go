package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"autoscheduler/internal/middleware"
	"autoscheduler/internal/models"
	"autoscheduler/internal/repository"
	"autoscheduler/internal/schedule"
	"autoscheduler/internal/service"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DemoPassword is the password of every demo user.
const DemoPassword = "Autoscheduler!2026"

var errNoNetworks = errors.New("no social networks available")

// Options configure demo seeding.
type Options struct {
	NumUsers            int
	CategoriesPerUser   int
	PublicationsPerUser int
	EventsPerUser       int
	ShouldClean         bool
	// Seed makes the fake data reproducible; 0 picks a random seed.
	Seed                int64
	BcryptCost          int
}

// Result summarises what Demo created.
type Result struct {
	Users        []models.User
	Categories   int
	Publications int
	Events       int
}

func (o Options) withDefaults() Options {
	if o.NumUsers <= 0 {
		o.NumUsers = 5
	}
	if o.CategoriesPerUser <= 0 {
		o.CategoriesPerUser = 3
	}
	if o.PublicationsPerUser < 0 {
		o.PublicationsPerUser = 0
	}
	if o.EventsPerUser < 0 {
		o.EventsPerUser = 0
	}
	if o.BcryptCost == 0 {
		o.BcryptCost = bcrypt.DefaultCost
	}
	return o
}

// Demo fills the database with fake users, categories, publications and
// recurring publish events. The first user is an admin. Events go through
// the event service so they share recurrence rules exactly like API traffic.
func Demo(ctx context.Context, db *gorm.DB, opts Options) (*Result, error) {
	opts = opts.withDefaults()
	faker := gofakeit.New(opts.Seed)

	if opts.ShouldClean {
		if err := ClearAll(ctx, db); err != nil {
			return nil, err
		}
	}

	networkRepo := repository.NewSocialNetworkRepository(db)
	if err := SocialNetworks(ctx, networkRepo, nil); err != nil {
		return nil, err
	}
	networks, err := networkRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(networks) == 0 {
		return nil, errNoNetworks
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), opts.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash demo password: %w", err)
	}

	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	publicationRepo := repository.NewPublicationRepository(db)
	events := service.NewEventService(
		networkRepo,
		categoryRepo,
		repository.NewEventRepository(db),
		repository.NewScheduleStore(db),
		service.DefaultNetworkPolicy{},
		nil,
	)

	res := &Result{}
	for i := 0; i < opts.NumUsers; i++ {
		username := fmt.Sprintf("%s_%d", sanitizeUsername(faker.Username()), i+1)
		user := models.User{
			Username: username,
			Email:    strings.ToLower(username) + "@example.com",
			Password: string(hash),
			IsAdmin:  i == 0,
		}
		if err := userRepo.Create(ctx, &user); err != nil {
			return nil, fmt.Errorf("create demo user: %w", err)
		}
		res.Users = append(res.Users, user)

		var categories []models.Category
		for j := 0; j < opts.CategoriesPerUser; j++ {
			category := models.Category{
				Name:        upperFirst(faker.Adjective()) + " " + faker.Noun(),
				CreatedByID: user.ID,
			}
			if err := categoryRepo.Create(ctx, &category); err != nil {
				return nil, fmt.Errorf("create demo category: %w", err)
			}
			categories = append(categories, category)
		}
		res.Categories += len(categories)

		for j := 0; j < opts.PublicationsPerUser; j++ {
			categoryID := categories[faker.Number(0, len(categories)-1)].ID
			publication := models.Publication{
				AuthorID:        user.ID,
				SocialNetworkID: networks[faker.Number(0, len(networks)-1)].ID,
				CategoryID:      &categoryID,
				Content:         faker.Paragraph(1, 3, 12, " "),
			}
			if err := publicationRepo.Create(ctx, &publication); err != nil {
				return nil, fmt.Errorf("create demo publication: %w", err)
			}
			res.Publications++
		}

		for j := 0; j < opts.EventsPerUser; j++ {
			minutes := schedule.MinuteChoices()
			_, created, err := events.GetOrCreateEvent(ctx, service.GetOrCreateEventInput{
				UserID:          user.ID,
				SocialNetworkID: networks[faker.Number(0, len(networks)-1)].ID,
				CategoryID:      categories[faker.Number(0, len(categories)-1)].ID,
				Weekday:         faker.Number(0, 6),
				Hour:            faker.Number(7, 21),
				Minute:          minutes[faker.Number(0, len(minutes)-1)],
			})
			if err != nil {
				return nil, fmt.Errorf("create demo event: %w", err)
			}
			if created {
				res.Events++
			}
		}
	}

	middleware.Logger.InfoContext(ctx, "demo data seeded",
		slog.Int("users", len(res.Users)),
		slog.Int("categories", res.Categories),
		slog.Int("publications", res.Publications),
		slog.Int("events", res.Events),
	)
	return res, nil
}

// ClearAll removes all rows except social networks, children first.
func ClearAll(ctx context.Context, db *gorm.DB) error {
	tables := []any{
		&models.PublishEvent{},
		&models.RecurrenceRule{},
		&models.Publication{},
		&models.Category{},
		&models.User{},
	}
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range tables {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(model).Error; err != nil {
				return fmt.Errorf("clear %T: %w", model, err)
			}
		}
		return nil
	})
}

func sanitizeUsername(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r < 128 && (r == '_' || r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "user"
	}
	return b.String()
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
