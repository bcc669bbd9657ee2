package service

import (
	"context"
	"strings"

	"autoscheduler/internal/models"
	"autoscheduler/internal/repository"
	"autoscheduler/internal/validation"
)

// SocialNetworkService lists networks and lets admins register new ones.
type SocialNetworkService struct {
	repo    repository.SocialNetworkRepository
	isAdmin func(ctx context.Context, userID uint) (bool, error)
}

// CreateSocialNetworkInput is the payload for registering a network.
type CreateSocialNetworkInput struct {
	UserID uint
	Name   string
}

func NewSocialNetworkService(
	repo repository.SocialNetworkRepository,
	isAdmin func(ctx context.Context, userID uint) (bool, error),
) *SocialNetworkService {
	return &SocialNetworkService{repo: repo, isAdmin: isAdmin}
}

func (s *SocialNetworkService) List(ctx context.Context) ([]models.SocialNetwork, error) {
	return s.repo.List(ctx)
}

func (s *SocialNetworkService) Create(ctx context.Context, in CreateSocialNetworkInput) (*models.SocialNetwork, error) {
	admin, err := s.isAdmin(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if !admin {
		return nil, models.NewForbiddenError("Admin access required")
	}

	name := strings.TrimSpace(in.Name)
	if err := validation.ValidateName(name); err != nil {
		return nil, models.NewFieldError("name", err.Error())
	}

	network := &models.SocialNetwork{Name: name}
	if err := s.repo.Create(ctx, network); err != nil {
		return nil, err
	}
	return network, nil
}
