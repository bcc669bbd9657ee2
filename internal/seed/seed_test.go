package seed

import (
	"context"
	"os"
	"testing"

	"autoscheduler/internal/database"
	"autoscheduler/internal/models"
	"autoscheduler/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	os.Setenv("APP_ENV", "test")
	os.Exit(m.Run())
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, database.ApplySchema(context.Background(), db))
	return db
}

func TestSocialNetworks_Idempotent(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewSocialNetworkRepository(db)
	ctx := context.Background()

	require.NoError(t, SocialNetworks(ctx, repo, nil))
	require.NoError(t, SocialNetworks(ctx, repo, []string{"Twitter", "Mastodon"}))
	require.NoError(t, SocialNetworks(ctx, repo, []string{"Mastodon"}))

	networks, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, networks, 2)
	assert.Equal(t, "Mastodon", networks[0].Name)
	assert.Equal(t, "Twitter", networks[1].Name)
}

func TestDemo(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	res, err := Demo(ctx, db, Options{
		NumUsers:            3,
		CategoriesPerUser:   2,
		PublicationsPerUser: 2,
		EventsPerUser:       4,
		Seed:                42,
		BcryptCost:          bcrypt.MinCost,
	})
	require.NoError(t, err)
	require.Len(t, res.Users, 3)
	assert.True(t, res.Users[0].IsAdmin)
	assert.False(t, res.Users[1].IsAdmin)
	assert.Equal(t, 6, res.Categories)
	assert.Equal(t, 6, res.Publications)
	assert.Positive(t, res.Events)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(res.Users[1].Password), []byte(DemoPassword)))

	var events []models.PublishEvent
	require.NoError(t, db.Preload("Rule").Preload("Category").Find(&events).Error)
	assert.Len(t, events, res.Events)
	for _, ev := range events {
		require.NotNil(t, ev.Rule)
		require.NotNil(t, ev.Category)
		assert.Equal(t, ev.CreatorID, ev.Category.CreatedByID, "events only use the creator's categories")
	}

	var rules int64
	require.NoError(t, db.Model(&models.RecurrenceRule{}).Count(&rules).Error)
	assert.LessOrEqual(t, int(rules), res.Events)
}

func TestDemo_Clean(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	opts := Options{NumUsers: 2, EventsPerUser: 1, Seed: 7, BcryptCost: bcrypt.MinCost}

	_, err := Demo(ctx, db, opts)
	require.NoError(t, err)

	opts.ShouldClean = true
	_, err = Demo(ctx, db, opts)
	require.NoError(t, err)

	var users int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	assert.EqualValues(t, 2, users)

	var networks int64
	require.NoError(t, db.Model(&models.SocialNetwork{}).Count(&networks).Error)
	assert.EqualValues(t, 1, networks)
}

func TestSanitizeUsername(t *testing.T) {
	assert.Equal(t, "Jo_hn99", sanitizeUsername("Jo_hn99"))
	assert.Equal(t, "abc", sanitizeUsername("a.b-c"))
	assert.Equal(t, "user", sanitizeUsername("--"))
}
