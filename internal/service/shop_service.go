package service

import (
	"context"
	"fmt"
	"time"

	"github.com/everydukan/deals-cms/internal/model"
)

// ShopRepositoryInterface defines the interface for shop data access.
type ShopRepositoryInterface interface {
	Insert(ctx context.Context, shop *model.Shop) error
	GetByID(ctx context.Context, id string) (*model.Shop, error)
	List(ctx context.Context, q model.PageQuery) ([]model.Shop, int64, error)
	Update(ctx context.Context, shop *model.Shop) (*model.Shop, error)
	Delete(ctx context.Context, id string) error
}

// ShopService provides business logic for shop operations.
type ShopService struct {
	repo ShopRepositoryInterface
}

// NewShopService creates a new ShopService with the given repository.
func NewShopService(repo ShopRepositoryInterface) *ShopService {
	return &ShopService{repo: repo}
}

func (s *ShopService) Create(ctx context.Context, req *model.ShopRequest) (*model.Shop, error) {
	if req == nil {
		return nil, ErrInvalidRequest
	}

	now := time.Now().UTC()
	shop := shopFromRequest(req)
	shop.CreatedAt = now
	shop.UpdatedAt = now

	if err := s.repo.Insert(ctx, shop); err != nil {
		return nil, fmt.Errorf("insert shop: %w", err)
	}
	return shop, nil
}

// Get retrieves a shop by id.
// Returns ErrShopNotFound if the shop doesn't exist.
func (s *ShopService) Get(ctx context.Context, id string) (*model.Shop, error) {
	shop, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get shop: %w", err)
	}
	if shop == nil {
		return nil, ErrShopNotFound
	}
	return shop, nil
}

// List returns one page of shops together with the page metadata.
func (s *ShopService) List(ctx context.Context, q model.PageQuery) (*model.Page[model.Shop], error) {
	q = q.Normalize()

	shops, total, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list shops: %w", err)
	}

	return &model.Page[model.Shop]{
		Items:      shops,
		Pagination: model.NewPagination(q, total),
	}, nil
}

func (s *ShopService) Update(ctx context.Context, id string, req *model.ShopRequest) (*model.Shop, error) {
	if req == nil {
		return nil, ErrInvalidRequest
	}

	shop := shopFromRequest(req)
	shop.ID = id
	shop.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, shop)
	if err != nil {
		return nil, fmt.Errorf("update shop: %w", err)
	}
	return updated, nil
}

func (s *ShopService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete shop: %w", err)
	}
	return nil
}

func shopFromRequest(req *model.ShopRequest) *model.Shop {
	categories := req.Category
	if categories == nil {
		categories = []string{}
	}
	return &model.Shop{
		Title:    req.Title,
		Logo:     req.Logo,
		URL:      req.URL,
		Category: categories,
	}
}
