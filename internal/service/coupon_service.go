package service

import (
	"context"
	"fmt"
	"time"

	"github.com/everydukan/deals-cms/internal/model"
)

// CouponRepositoryInterface defines the interface for coupon data access.
type CouponRepositoryInterface interface {
	Insert(ctx context.Context, coupon *model.Coupon) error
	GetByID(ctx context.Context, id string) (*model.Coupon, error)
	List(ctx context.Context) ([]model.Coupon, error)
	Update(ctx context.Context, coupon *model.Coupon) (*model.Coupon, error)
	Delete(ctx context.Context, id string) error
}

// CouponService provides business logic for coupon operations.
type CouponService struct {
	repo CouponRepositoryInterface
}

// NewCouponService creates a new CouponService with the given repository.
func NewCouponService(repo CouponRepositoryInterface) *CouponService {
	return &CouponService{repo: repo}
}

// Create creates a new coupon from the request.
// Returns ErrInvalidRequest if request data is nil.
func (s *CouponService) Create(ctx context.Context, req *model.CouponRequest) (*model.Coupon, error) {
	// Defense-in-depth: check for nil pointer even though handler validates
	if req == nil {
		return nil, ErrInvalidRequest
	}

	now := time.Now().UTC()
	coupon := couponFromRequest(req)
	coupon.CreatedAt = now
	coupon.UpdatedAt = now

	if err := s.repo.Insert(ctx, coupon); err != nil {
		return nil, fmt.Errorf("insert coupon: %w", err)
	}
	return coupon, nil
}

// Get retrieves a coupon by id.
// Returns ErrCouponNotFound if the coupon doesn't exist.
func (s *CouponService) Get(ctx context.Context, id string) (*model.Coupon, error) {
	coupon, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get coupon: %w", err)
	}
	if coupon == nil {
		return nil, ErrCouponNotFound
	}
	return coupon, nil
}

func (s *CouponService) List(ctx context.Context) ([]model.Coupon, error) {
	coupons, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list coupons: %w", err)
	}
	return coupons, nil
}

// Update replaces the mutable fields of an existing coupon.
// Returns ErrCouponNotFound if the coupon doesn't exist.
func (s *CouponService) Update(ctx context.Context, id string, req *model.CouponRequest) (*model.Coupon, error) {
	if req == nil {
		return nil, ErrInvalidRequest
	}

	coupon := couponFromRequest(req)
	coupon.ID = id
	coupon.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, coupon)
	if err != nil {
		return nil, fmt.Errorf("update coupon: %w", err)
	}
	return updated, nil
}

func (s *CouponService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete coupon: %w", err)
	}
	return nil
}

func couponFromRequest(req *model.CouponRequest) *model.Coupon {
	terms := req.Terms
	if terms == nil {
		terms = []string{}
	}
	return &model.Coupon{
		Title:           req.Title,
		MerchantName:    req.MerchantName,
		MerchantLogo:    req.MerchantLogo,
		ClickURL:        req.ClickURL,
		CouponCode:      req.CouponCode,
		Description:     req.Description,
		ExpirationDate:  req.ExpirationDate,
		Discount:        req.Discount,
		Category:        req.Category,
		BackgroundColor: req.BackgroundColor,
		AccentColor:     req.AccentColor,
		Terms:           terms,
	}
}
