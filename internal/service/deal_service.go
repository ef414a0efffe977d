package service

import (
	"context"
	"fmt"
	"time"

	"github.com/everydukan/deals-cms/internal/model"
)

// DealRepositoryInterface defines the interface for deal data access.
type DealRepositoryInterface interface {
	Insert(ctx context.Context, deal *model.Deal) error
	GetByID(ctx context.Context, id string) (*model.Deal, error)
	List(ctx context.Context, filter model.DealFilter) ([]model.Deal, int64, error)
	Update(ctx context.Context, deal *model.Deal) (*model.Deal, error)
	Delete(ctx context.Context, id string) error
	DeactivateExpired(ctx context.Context, now time.Time) (int64, error)
}

// DealService provides business logic for deal operations.
type DealService struct {
	repo DealRepositoryInterface
	now  func() time.Time
}

// NewDealService creates a new DealService with the given repository.
func NewDealService(repo DealRepositoryInterface) *DealService {
	return &DealService{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// Create stores a new deal. IsActive defaults to true and StartDate to now.
// Returns ErrInvalidRequest if a price is missing.
func (s *DealService) Create(ctx context.Context, req *model.DealRequest) (*model.Deal, error) {
	now := s.now()
	deal, err := dealFromRequest(req, now)
	if err != nil {
		return nil, err
	}
	deal.CreatedAt = now
	deal.UpdatedAt = now

	if err := s.repo.Insert(ctx, deal); err != nil {
		return nil, fmt.Errorf("insert deal: %w", err)
	}
	return deal, nil
}

// Get retrieves a deal by id.
// Returns ErrDealNotFound if the deal doesn't exist.
func (s *DealService) Get(ctx context.Context, id string) (*model.Deal, error) {
	deal, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get deal: %w", err)
	}
	if deal == nil {
		return nil, ErrDealNotFound
	}
	return deal, nil
}

// List returns one page of deals matching filter.
// An unknown SortBy falls back to createdAt.
func (s *DealService) List(ctx context.Context, filter model.DealFilter) (*model.Page[model.Deal], error) {
	filter.PageQuery = filter.PageQuery.Normalize()
	if !model.IsDealSortField(filter.SortBy) {
		filter.SortBy = model.DealSortCreatedAt
	}

	deals, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list deals: %w", err)
	}

	return &model.Page[model.Deal]{
		Items:      deals,
		Pagination: model.NewPagination(filter.PageQuery, total),
	}, nil
}

// Update replaces the mutable fields of an existing deal.
func (s *DealService) Update(ctx context.Context, id string, req *model.DealRequest) (*model.Deal, error) {
	now := s.now()
	deal, err := dealFromRequest(req, now)
	if err != nil {
		return nil, err
	}
	deal.ID = id
	deal.UpdatedAt = now

	updated, err := s.repo.Update(ctx, deal)
	if err != nil {
		return nil, fmt.Errorf("update deal: %w", err)
	}
	return updated, nil
}

func (s *DealService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete deal: %w", err)
	}
	return nil
}

// DeactivateExpired flips isActive to false on every active deal whose
// end date has passed and returns how many were changed.
func (s *DealService) DeactivateExpired(ctx context.Context) (int64, error) {
	n, err := s.repo.DeactivateExpired(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("deactivate expired deals: %w", err)
	}
	return n, nil
}

func dealFromRequest(req *model.DealRequest, now time.Time) (*model.Deal, error) {
	if req == nil || req.OriginalPrice == nil || req.DiscountedPrice == nil || req.EndDate == nil {
		return nil, ErrInvalidRequest
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	start := now
	if req.StartDate != nil {
		start = req.StartDate.UTC()
	}

	return &model.Deal{
		ImageURL:        req.ImageURL,
		Title:           req.Title,
		Subtitle:        req.Subtitle,
		OriginalPrice:   *req.OriginalPrice,
		DiscountedPrice: *req.DiscountedPrice,
		ShopURL:         req.ShopURL,
		IsActive:        active,
		StartDate:       start,
		EndDate:         req.EndDate.UTC(),
	}, nil
}
