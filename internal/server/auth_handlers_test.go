package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"autoscheduler/internal/config"
	"autoscheduler/internal/middleware"
	"autoscheduler/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestSignup(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]string
		mockSetup      func(m *MockUserRepository)
		expectedStatus int
	}{
		{
			name: "Success",
			body: map[string]string{"username": "planner", "email": "Planner@Example.com", "password": "Sup3rSecret!pass"},
			mockSetup: func(m *MockUserRepository) {
				m.On("GetByEmail", mock.Anything, "planner@example.com").Return(nil, nil)
				m.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
					return u.Username == "planner" && bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("Sup3rSecret!pass")) == nil
				})).Run(func(args mock.Arguments) {
					args.Get(1).(*models.User).ID = 7
				}).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Missing Fields",
			body:           map[string]string{"username": "planner"},
			mockSetup:      func(*MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Weak Password",
			body:           map[string]string{"username": "planner", "email": "planner@example.com", "password": "short"},
			mockSetup:      func(*MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Existing User",
			body: map[string]string{"username": "planner", "email": "planner@example.com", "password": "Sup3rSecret!pass"},
			mockSetup: func(m *MockUserRepository) {
				m.On("GetByEmail", mock.Anything, "planner@example.com").Return(&models.User{ID: 1}, nil)
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.mockSetup(mockRepo)
			s := &Server{config: &config.Config{JWTSecret: testSecret}, userRepo: mockRepo}
			app := fiber.New()
			app.Post("/signup", s.Signup)

			resp := postJSON(t, app, "/signup", tt.body)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.expectedStatus == http.StatusCreated {
				var body struct {
					Token string      `json:"token"`
					User  models.User `json:"user"`
				}
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
				userID, err := middleware.ParseUserToken(body.Token, testSecret)
				require.NoError(t, err)
				assert.Equal(t, uint(7), userID)
				assert.Equal(t, "planner@example.com", body.User.Email)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("Sup3rSecret!pass"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := &models.User{ID: 3, Username: "planner", Email: "planner@example.com", Password: string(hash)}

	tests := []struct {
		name           string
		body           map[string]string
		user           *models.User
		expectedStatus int
	}{
		{"Success", map[string]string{"email": "planner@example.com", "password": "Sup3rSecret!pass"}, stored, http.StatusOK},
		{"Wrong Password", map[string]string{"email": "planner@example.com", "password": "nope"}, stored, http.StatusUnauthorized},
		{"Unknown User", map[string]string{"email": "planner@example.com", "password": "Sup3rSecret!pass"}, nil, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			mockRepo.On("GetByEmail", mock.Anything, "planner@example.com").Return(tt.user, nil)
			s := &Server{config: &config.Config{JWTSecret: testSecret}, userRepo: mockRepo}
			app := fiber.New()
			app.Post("/login", s.Login)

			resp := postJSON(t, app, "/login", tt.body)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestGenerateToken_RequiresSecret(t *testing.T) {
	s := &Server{config: &config.Config{}}
	_, err := s.generateToken(1, "planner")
	assert.Error(t, err)
}
