package service

import (
	"context"
	"strings"

	"autoscheduler/internal/models"
	"autoscheduler/internal/repository"
	"autoscheduler/internal/validation"
)

type PublicationService struct {
	publications repository.PublicationRepository
	networks     repository.SocialNetworkRepository
	categories   repository.CategoryRepository
	policy       DefaultNetworkPolicy
}

type CreatePublicationInput struct {
	UserID          uint
	SocialNetworkID uint
	CategoryID      *uint
	Content         string
}

// PublicationForm carries the choices and initial values of the publication form.
type PublicationForm struct {
	SocialNetworks         []models.SocialNetwork `json:"social_networks"`
	Categories             []models.Category      `json:"categories"`
	InitialSocialNetworkID *uint                  `json:"initial_social_network_id"`
}

func NewPublicationService(
	publications repository.PublicationRepository,
	networks repository.SocialNetworkRepository,
	categories repository.CategoryRepository,
	policy DefaultNetworkPolicy,
) *PublicationService {
	return &PublicationService{
		publications: publications,
		networks:     networks,
		categories:   categories,
		policy:       policy,
	}
}

func (s *PublicationService) Create(ctx context.Context, in CreatePublicationInput) (*models.Publication, error) {
	content := strings.TrimSpace(in.Content)
	if err := validation.ValidateContent(content); err != nil {
		return nil, models.NewFieldError("content", err.Error())
	}
	if in.SocialNetworkID == 0 {
		return nil, models.NewFieldError("social_network", "Social network is required")
	}

	if _, err := s.networks.GetByID(ctx, in.SocialNetworkID); err != nil {
		return nil, err
	}
	if in.CategoryID != nil {
		category, err := s.categories.GetByID(ctx, *in.CategoryID)
		if err != nil {
			return nil, err
		}
		if !category.OwnedBy(in.UserID) {
			return nil, models.NewFieldError("category", errForeignCategory)
		}
	}

	publication := &models.Publication{
		AuthorID:        in.UserID,
		SocialNetworkID: in.SocialNetworkID,
		CategoryID:      in.CategoryID,
		Content:         content,
	}
	if err := s.publications.Create(ctx, publication); err != nil {
		return nil, err
	}
	return publication, nil
}

func (s *PublicationService) List(ctx context.Context, userID uint, limit, offset int) ([]models.Publication, error) {
	return s.publications.ListByAuthor(ctx, userID, limit, offset)
}

// Form builds the publication form for userID with the default network preselected.
func (s *PublicationService) Form(ctx context.Context, userID uint) (*PublicationForm, error) {
	networks, err := s.networks.List(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := s.categories.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &PublicationForm{
		SocialNetworks:         networks,
		Categories:             categories,
		InitialSocialNetworkID: s.policy.resolveID(networks),
	}, nil
}
