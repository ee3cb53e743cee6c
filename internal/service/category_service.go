package service

import (
	"context"
	"errors"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"
	"trivia-api/internal/repository"

	"go.uber.org/zap"
)

// CategoryPatch is a decoded PATCH body. BodyPresent is false when no JSON body was sent.
type CategoryPatch struct {
	BodyPresent bool
	Type        *string
}

// CreateCategoryResult reports the id of the stored category and whether it was newly inserted.
type CreateCategoryResult struct {
	ID      int64
	Created bool
}

// CategoryService defines the interface for category operations
type CategoryService interface {
	ListCategories(ctx context.Context) ([]dto.CategoryResponse, error)
	GetCategory(ctx context.Context, id int64) (*dto.CategoryResponse, error)
	// CreateCategory returns the existing id when a category of the same type (ignoring case) exists.
	CreateCategory(ctx context.Context, req *dto.CategoryRequest) (*CreateCategoryResult, error)
	UpdateCategory(ctx context.Context, id int64, patch CategoryPatch) (int64, error)
	DeleteCategory(ctx context.Context, id int64) (int64, error)
}

type categoryService struct {
	repo    domain.CategoryRepository
	catalog *CategoryCatalog
}

// NewCategoryService creates a new instance of categoryService
func NewCategoryService(repo domain.CategoryRepository, catalog *CategoryCatalog) CategoryService {
	return &categoryService{repo: repo, catalog: catalog}
}

func (s *categoryService) ListCategories(ctx context.Context) ([]dto.CategoryResponse, error) {
	categories, err := s.catalog.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, domain.NewNotFoundError("no categories")
	}
	return dto.NewCategoryResponses(categories), nil
}

func (s *categoryService) GetCategory(ctx context.Context, id int64) (*dto.CategoryResponse, error) {
	category, err := s.mustGet(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewCategoryResponse(category)
	return &resp, nil
}

func (s *categoryService) CreateCategory(ctx context.Context, req *dto.CategoryRequest) (*CreateCategoryResult, error) {
	if req == nil || req.Type == nil {
		return nil, domain.NewUnprocessableError("category type is required")
	}
	// Oracle stores '' as NULL and type is NOT NULL
	if *req.Type == "" {
		return nil, domain.NewUnprocessableError("category type must not be empty")
	}

	existing, err := s.repo.FindCategoryByType(ctx, *req.Type)
	if err != nil {
		return nil, domain.NewInternalError("failed to look up category", err)
	}
	if existing != nil {
		return &CreateCategoryResult{ID: existing.ID, Created: false}, nil
	}

	category := domain.NewCategory(*req.Type)
	if err := s.repo.SaveCategory(ctx, category); err != nil {
		return nil, domain.NewInternalError("failed to save category", err)
	}
	s.catalog.Invalidate(ctx)

	logger.Get().Info("Category created", zap.Int64("id", category.ID), zap.String("type", category.Type))
	return &CreateCategoryResult{ID: category.ID, Created: true}, nil
}

// UpdateCategory checks existence before validating the body.
func (s *categoryService) UpdateCategory(ctx context.Context, id int64, patch CategoryPatch) (int64, error) {
	category, err := s.mustGet(ctx, id)
	if err != nil {
		return 0, err
	}
	if !patch.BodyPresent {
		return 0, domain.NewBadRequestError("request body is required")
	}
	if patch.Type == nil {
		return 0, domain.NewUnprocessableError("category type is required")
	}
	if *patch.Type == "" {
		return 0, domain.NewUnprocessableError("category type must not be empty")
	}

	category.Type = *patch.Type
	if err := s.repo.UpdateCategory(ctx, category); err != nil {
		if errors.Is(err, repository.ErrNoRowsAffected) {
			return 0, domain.NewCategoryNotFoundError(id)
		}
		return 0, domain.NewInternalError("failed to update category", err)
	}
	s.catalog.Invalidate(ctx)
	return category.ID, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, id int64) (int64, error) {
	if _, err := s.mustGet(ctx, id); err != nil {
		return 0, err
	}
	if err := s.repo.DeleteCategory(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNoRowsAffected) {
			return 0, domain.NewCategoryNotFoundError(id)
		}
		return 0, domain.NewInternalError("failed to delete category", err)
	}
	s.catalog.Invalidate(ctx)
	return id, nil
}

func (s *categoryService) mustGet(ctx context.Context, id int64) (*domain.Category, error) {
	category, err := s.repo.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("failed to get category", err)
	}
	if category == nil {
		return nil, domain.NewCategoryNotFoundError(id)
	}
	return category, nil
}
