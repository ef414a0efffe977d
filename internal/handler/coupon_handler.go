package handler

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/everydukan/deals-cms/internal/model"
)

// CouponServiceInterface defines the interface for coupon business logic.
type CouponServiceInterface interface {
	Create(ctx context.Context, req *model.CouponRequest) (*model.Coupon, error)
	Get(ctx context.Context, id string) (*model.Coupon, error)
	List(ctx context.Context) ([]model.Coupon, error)
	Update(ctx context.Context, id string, req *model.CouponRequest) (*model.Coupon, error)
	Delete(ctx context.Context, id string) error
}

// CouponHandler handles HTTP requests for coupon operations.
type CouponHandler struct {
	service   CouponServiceInterface
	validator *validator.Validate
}

// NewCouponHandler creates a new CouponHandler with the given service and validator.
func NewCouponHandler(svc CouponServiceInterface, v *validator.Validate) *CouponHandler {
	return &CouponHandler{service: svc, validator: v}
}

// Create handles POST /api/coupons requests to create a new coupon.
func (h *CouponHandler) Create(c *fiber.Ctx) error {
	var req model.CouponRequest
	if msg := decodeBody(c, h.validator, &req); msg != "" {
		return badRequest(c, msg)
	}

	coupon, err := h.service.Create(c.Context(), &req)
	if err != nil {
		return respondError(c, err, "failed to create coupon")
	}

	log.Info().
		Str("coupon_id", coupon.ID).
		Str("merchant_name", coupon.MerchantName).
		Msg("coupon created")
	return respondData(c, fiber.StatusCreated, coupon)
}

func (h *CouponHandler) List(c *fiber.Ctx) error {
	coupons, err := h.service.List(c.Context())
	if err != nil {
		return respondError(c, err, "failed to list coupons")
	}
	return respondData(c, fiber.StatusOK, coupons)
}

// Get handles GET /api/coupons/:id requests to retrieve coupon details.
func (h *CouponHandler) Get(c *fiber.Ctx) error {
	coupon, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err, "failed to get coupon")
	}
	return respondData(c, fiber.StatusOK, coupon)
}

func (h *CouponHandler) Update(c *fiber.Ctx) error {
	var req model.CouponRequest
	if msg := decodeBody(c, h.validator, &req); msg != "" {
		return badRequest(c, msg)
	}

	coupon, err := h.service.Update(c.Context(), c.Params("id"), &req)
	if err != nil {
		return respondError(c, err, "failed to update coupon")
	}

	log.Info().Str("coupon_id", coupon.ID).Msg("coupon updated")
	return respondData(c, fiber.StatusOK, coupon)
}

func (h *CouponHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.Delete(c.Context(), id); err != nil {
		return respondError(c, err, "failed to delete coupon")
	}

	log.Info().Str("coupon_id", id).Msg("coupon deleted")
	return respondDeleted(c, "coupon")
}
