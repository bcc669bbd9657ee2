package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"autoscheduler/internal/config"
	"autoscheduler/internal/database"
	"autoscheduler/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "test-secret-key-12345678901234567890123456789012"

func TestMain(m *testing.M) {
	os.Setenv("APP_ENV", "test")
	os.Exit(m.Run())
}

// fridayMorning is Friday 2026-10-16 09:27 UTC.
func fridayMorning() time.Time {
	return time.Date(2026, 10, 16, 9, 27, 0, 0, time.UTC)
}

type testEnv struct {
	t        *testing.T
	db       *gorm.DB
	srv      *Server
	owner    models.User
	other    models.User
	admin    models.User
	twitter  models.SocialNetwork
	category models.Category
}

func newTestEnv(t *testing.T, mutate ...func(*config.Config)) *testEnv {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, database.ApplySchema(context.Background(), db))

	cfg := &config.Config{JWTSecret: testSecret, Env: "test", Port: "0"}
	for _, fn := range mutate {
		fn(cfg)
	}

	e := &testEnv{
		t:       t,
		db:      db,
		srv:     newServer(cfg, db, nil, fridayMorning),
		owner:   models.User{Username: "owner", Email: "owner@example.com", Password: "x"},
		other:   models.User{Username: "other", Email: "other@example.com", Password: "x"},
		admin:   models.User{Username: "admin", Email: "admin@example.com", Password: "x", IsAdmin: true},
		twitter: models.SocialNetwork{Name: "Twitter"},
	}
	require.NoError(t, db.Create(&e.owner).Error)
	require.NoError(t, db.Create(&e.other).Error)
	require.NoError(t, db.Create(&e.admin).Error)
	require.NoError(t, db.Create(&e.twitter).Error)
	e.category = models.Category{Name: "News", CreatedByID: e.owner.ID}
	require.NoError(t, db.Create(&e.category).Error)
	return e
}

func (e *testEnv) token(user models.User) string {
	e.t.Helper()
	token, err := e.srv.generateToken(user.ID, user.Username)
	require.NoError(e.t, err)
	return token
}

// do sends a request as user (anonymous when user is nil) and returns the
// status and raw body.
func (e *testEnv) do(method, path string, user *models.User, body any) (int, []byte) {
	e.t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(e.t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if user != nil {
		req.Header.Set("Authorization", "Bearer "+e.token(*user))
	}

	resp, err := e.srv.App().Test(req, -1)
	require.NoError(e.t, err)
	defer func() { _ = resp.Body.Close() }()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(e.t, err)
	return resp.StatusCode, raw
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v), string(raw))
	return v
}

