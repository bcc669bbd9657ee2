package server

import (
	"net/http"
	"strings"
	"testing"

	"autoscheduler/internal/config"
	"autoscheduler/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSocialNetworks(t *testing.T) {
	e := newTestEnv(t)

	status, raw := e.do(http.MethodGet, "/api/social-networks", nil, nil)
	require.Equal(t, http.StatusOK, status)
	networks := decode[[]models.SocialNetwork](t, raw)
	require.Len(t, networks, 1)
	assert.Equal(t, "Twitter", networks[0].Name)

	status, _ = e.do(http.MethodPost, "/api/social-networks", &e.owner, map[string]string{"name": "Mastodon"})
	assert.Equal(t, http.StatusForbidden, status)

	status, raw = e.do(http.MethodPost, "/api/social-networks", &e.admin, map[string]string{"name": "Mastodon"})
	require.Equal(t, http.StatusCreated, status, string(raw))

	status, raw = e.do(http.MethodPost, "/api/social-networks", &e.admin, map[string]string{"name": "Mastodon"})
	assert.Equal(t, http.StatusConflict, status, string(raw))

	status, raw = e.do(http.MethodGet, "/api/social-networks", nil, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decode[[]models.SocialNetwork](t, raw), 2)
}

func TestSocialNetworks_EmptyListIsArray(t *testing.T) {
	e := newTestEnv(t)
	require.NoError(t, e.db.Unscoped().Delete(&models.SocialNetwork{}, e.twitter.ID).Error)

	status, raw := e.do(http.MethodGet, "/api/social-networks", nil, nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, "[]", string(raw))
}

func TestCategories(t *testing.T) {
	e := newTestEnv(t)

	status, raw := e.do(http.MethodPost, "/api/categories", &e.other, map[string]string{"name": "Deals"})
	require.Equal(t, http.StatusCreated, status, string(raw))

	status, raw = e.do(http.MethodPost, "/api/categories", &e.other, map[string]string{"name": " "})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "name", decode[models.ErrorResponse](t, raw).Field)

	status, raw = e.do(http.MethodGet, "/api/categories", &e.other, nil)
	require.Equal(t, http.StatusOK, status)
	categories := decode[[]models.Category](t, raw)
	require.Len(t, categories, 1)
	assert.Equal(t, "Deals", categories[0].Name)
}

func TestPublications(t *testing.T) {
	e := newTestEnv(t)

	status, raw := e.do(http.MethodPost, "/api/publications", &e.owner, map[string]any{
		"content":           strings.Repeat("word ", 30),
		"social_network_id": e.twitter.ID,
		"category_id":       e.category.ID,
	})
	require.Equal(t, http.StatusCreated, status, string(raw))

	status, raw = e.do(http.MethodPost, "/api/publications", &e.other, map[string]any{
		"content":           "hello",
		"social_network_id": e.twitter.ID,
		"category_id":       e.category.ID,
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "category", decode[models.ErrorResponse](t, raw).Field)

	status, raw = e.do(http.MethodGet, "/api/publications?limit=5", &e.owner, nil)
	require.Equal(t, http.StatusOK, status)
	list := decode[[]struct {
		ID      uint   `json:"id"`
		Summary string `json:"summary"`
	}](t, raw)
	require.Len(t, list, 1)
	assert.Equal(t, 89, len([]rune(list[0].Summary)))
	assert.True(t, strings.HasSuffix(list[0].Summary, "…"))
}

func TestPublicationForm_NamedDefault(t *testing.T) {
	e := newTestEnv(t, func(cfg *config.Config) { cfg.DefaultSocialNetwork = "twitter" })

	status, raw := e.do(http.MethodGet, "/api/publications/form", &e.owner, nil)
	require.Equal(t, http.StatusOK, status)
	form := decode[struct {
		InitialSocialNetworkID *uint `json:"initial_social_network_id"`
	}](t, raw)
	require.NotNil(t, form.InitialSocialNetworkID)
	assert.Equal(t, e.twitter.ID, *form.InitialSocialNetworkID)
}

func TestHealth(t *testing.T) {
	e := newTestEnv(t)

	status, _ := e.do(http.MethodGet, "/health/live", nil, nil)
	assert.Equal(t, http.StatusOK, status)

	status, raw := e.do(http.MethodGet, "/health/ready", nil, nil)
	require.Equal(t, http.StatusOK, status)
	body := decode[struct {
		Status string            `json:"status"`
		Checks map[string]string `json:"checks"`
	}](t, raw)
	assert.Equal(t, "degraded", body.Status)
	assert.Equal(t, "healthy", body.Checks["database"])
	assert.Equal(t, "unavailable", body.Checks["redis"])
}

func TestHumanizeParam(t *testing.T) {
	assert.Equal(t, "ID", humanizeParam("id"))
	assert.Equal(t, "event ID", humanizeParam("eventId"))
	assert.Equal(t, "social network ID", humanizeParam("socialNetworkId"))
	assert.Equal(t, "slug", humanizeParam("slug"))
}
