package handler

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/everydukan/deals-cms/internal/model"
)

// DealServiceInterface defines the interface for deal business logic.
type DealServiceInterface interface {
	Create(ctx context.Context, req *model.DealRequest) (*model.Deal, error)
	Get(ctx context.Context, id string) (*model.Deal, error)
	List(ctx context.Context, filter model.DealFilter) (*model.Page[model.Deal], error)
	Update(ctx context.Context, id string, req *model.DealRequest) (*model.Deal, error)
	Delete(ctx context.Context, id string) error
}

// DealHandler handles HTTP requests for deal operations.
type DealHandler struct {
	service   DealServiceInterface
	validator *validator.Validate
}

// NewDealHandler creates a new DealHandler with the given service and validator.
func NewDealHandler(svc DealServiceInterface, v *validator.Validate) *DealHandler {
	return &DealHandler{service: svc, validator: v}
}

func (h *DealHandler) Create(c *fiber.Ctx) error {
	var req model.DealRequest
	if msg := decodeBody(c, h.validator, &req); msg != "" {
		return badRequest(c, msg)
	}

	deal, err := h.service.Create(c.Context(), &req)
	if err != nil {
		return respondError(c, err, "failed to create deal")
	}

	log.Info().
		Str("deal_id", deal.ID).
		Str("discounted_price", deal.DiscountedPrice.String()).
		Time("end_date", deal.EndDate).
		Msg("deal created")
	return respondData(c, fiber.StatusCreated, deal)
}

// List handles GET /api/deals.
// Query: page, limit, search, sortBy, sortOrder (asc|desc, default desc), isActive.
func (h *DealHandler) List(c *fiber.Ctx) error {
	filter, msg := dealFilter(c)
	if msg != "" {
		return badRequest(c, msg)
	}

	page, err := h.service.List(c.Context(), filter)
	if err != nil {
		return respondError(c, err, "failed to list deals")
	}
	return respondPage(c, page)
}

func dealFilter(c *fiber.Ctx) (model.DealFilter, string) {
	filter := model.DealFilter{
		PageQuery: pageQuery(c),
		Search:    strings.TrimSpace(c.Query("search")),
		SortBy:    c.Query("sortBy", model.DealSortCreatedAt),
		SortDesc:  true,
	}

	if !model.IsDealSortField(filter.SortBy) {
		return filter, "invalid request: sortBy must be one of [createdAt updatedAt title originalPrice discountedPrice startDate endDate]"
	}

	switch strings.ToLower(c.Query("sortOrder")) {
	case "", "desc":
	case "asc":
		filter.SortDesc = false
	default:
		return filter, "invalid request: sortOrder must be one of [asc desc]"
	}

	active, ok := optionalBool(c, "isActive")
	if !ok {
		return filter, "invalid request: isActive must be true or false"
	}
	filter.IsActive = active
	return filter, ""
}

func (h *DealHandler) Get(c *fiber.Ctx) error {
	deal, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err, "failed to get deal")
	}
	return respondData(c, fiber.StatusOK, deal)
}

func (h *DealHandler) Update(c *fiber.Ctx) error {
	var req model.DealRequest
	if msg := decodeBody(c, h.validator, &req); msg != "" {
		return badRequest(c, msg)
	}

	deal, err := h.service.Update(c.Context(), c.Params("id"), &req)
	if err != nil {
		return respondError(c, err, "failed to update deal")
	}

	log.Info().Str("deal_id", deal.ID).Msg("deal updated")
	return respondData(c, fiber.StatusOK, deal)
}

func (h *DealHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.Delete(c.Context(), id); err != nil {
		return respondError(c, err, "failed to delete deal")
	}

	log.Info().Str("deal_id", id).Msg("deal deleted")
	return respondDeleted(c, "deal")
}
