package service

import (
	"context"
	"fmt"
	"time"

	"github.com/everydukan/deals-cms/internal/model"
)

// BannerRepositoryInterface defines the interface for banner data access.
type BannerRepositoryInterface interface {
	Insert(ctx context.Context, banner *model.Banner) error
	GetByID(ctx context.Context, id string) (*model.Banner, error)
	List(ctx context.Context, active *bool) ([]model.Banner, error)
	Update(ctx context.Context, banner *model.Banner) (*model.Banner, error)
	Delete(ctx context.Context, id string) error
}

// BannerService provides business logic for banner operations.
type BannerService struct {
	repo BannerRepositoryInterface
}

// NewBannerService creates a new BannerService with the given repository.
func NewBannerService(repo BannerRepositoryInterface) *BannerService {
	return &BannerService{repo: repo}
}

// Create stores a new banner. IsActive defaults to true.
func (s *BannerService) Create(ctx context.Context, req *model.BannerRequest) (*model.Banner, error) {
	if req == nil {
		return nil, ErrInvalidRequest
	}

	now := time.Now().UTC()
	banner := bannerFromRequest(req)
	banner.CreatedAt = now
	banner.UpdatedAt = now

	if err := s.repo.Insert(ctx, banner); err != nil {
		return nil, fmt.Errorf("insert banner: %w", err)
	}
	return banner, nil
}

// Get retrieves a banner by id.
// Returns ErrBannerNotFound if the banner doesn't exist.
func (s *BannerService) Get(ctx context.Context, id string) (*model.Banner, error) {
	banner, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get banner: %w", err)
	}
	if banner == nil {
		return nil, ErrBannerNotFound
	}
	return banner, nil
}

// List returns all banners, optionally only those with the given active flag.
func (s *BannerService) List(ctx context.Context, active *bool) ([]model.Banner, error) {
	banners, err := s.repo.List(ctx, active)
	if err != nil {
		return nil, fmt.Errorf("list banners: %w", err)
	}
	return banners, nil
}

// Update replaces the mutable fields of an existing banner.
func (s *BannerService) Update(ctx context.Context, id string, req *model.BannerRequest) (*model.Banner, error) {
	if req == nil {
		return nil, ErrInvalidRequest
	}

	banner := bannerFromRequest(req)
	banner.ID = id
	banner.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, banner)
	if err != nil {
		return nil, fmt.Errorf("update banner: %w", err)
	}
	return updated, nil
}

// Delete removes a banner. Returns ErrBannerNotFound if it doesn't exist.
func (s *BannerService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete banner: %w", err)
	}
	return nil
}

func bannerFromRequest(req *model.BannerRequest) *model.Banner {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return &model.Banner{
		Title:        req.Title,
		BannerImage:  req.BannerImage,
		IsActive:     active,
		LinkForClick: req.LinkForClick,
	}
}
