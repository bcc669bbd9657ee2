package service

import (
	"context"
	"strings"

	"autoscheduler/internal/models"
	"autoscheduler/internal/repository"
	"autoscheduler/internal/validation"
)

type CategoryService struct {
	repo repository.CategoryRepository
}

type CreateCategoryInput struct {
	UserID uint
	Name   string
}

func NewCategoryService(repo repository.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) Create(ctx context.Context, in CreateCategoryInput) (*models.Category, error) {
	name := strings.TrimSpace(in.Name)
	if err := validation.ValidateName(name); err != nil {
		return nil, models.NewFieldError("name", err.Error())
	}

	category := &models.Category{Name: name, CreatedByID: in.UserID}
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// List returns the categories created by userID.
func (s *CategoryService) List(ctx context.Context, userID uint) ([]models.Category, error) {
	return s.repo.ListByOwner(ctx, userID)
}
