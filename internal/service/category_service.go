package service

import (
	"context"
	"fmt"
	"time"

	"github.com/everydukan/deals-cms/internal/model"
)

// CategoryRepositoryInterface defines the interface for category data access.
type CategoryRepositoryInterface interface {
	Insert(ctx context.Context, category *model.Category) error
	GetByID(ctx context.Context, id string) (*model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
	Update(ctx context.Context, category *model.Category) (*model.Category, error)
	Delete(ctx context.Context, id string) error
}

// CategoryService provides business logic for category operations.
type CategoryService struct {
	repo CategoryRepositoryInterface
}

func NewCategoryService(repo CategoryRepositoryInterface) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) Create(ctx context.Context, req *model.CategoryRequest) (*model.Category, error) {
	if req == nil {
		return nil, ErrInvalidRequest
	}

	now := time.Now().UTC()
	category := &model.Category{
		Title:     req.Title,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Insert(ctx, category); err != nil {
		return nil, fmt.Errorf("insert category: %w", err)
	}
	return category, nil
}

func (s *CategoryService) Get(ctx context.Context, id string) (*model.Category, error) {
	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}

func (s *CategoryService) List(ctx context.Context) ([]model.Category, error) {
	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (s *CategoryService) Update(ctx context.Context, id string, req *model.CategoryRequest) (*model.Category, error) {
	if req == nil {
		return nil, ErrInvalidRequest
	}

	updated, err := s.repo.Update(ctx, &model.Category{
		ID:        id,
		Title:     req.Title,
		UpdatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	return updated, nil
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
