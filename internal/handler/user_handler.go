package handler

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/everydukan/deals-cms/internal/model"
)

type UserServiceInterface interface {
	Create(ctx context.Context, req *model.CreateUserRequest) (*model.User, error)
	Get(ctx context.Context, id string) (*model.User, error)
}

// UserHandler registers app users for push notifications.
type UserHandler struct {
	service   UserServiceInterface
	validator *validator.Validate
}

func NewUserHandler(svc UserServiceInterface, v *validator.Validate) *UserHandler {
	return &UserHandler{service: svc, validator: v}
}

func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req model.CreateUserRequest
	if msg := decodeBody(c, h.validator, &req); msg != "" {
		return badRequest(c, msg)
	}

	user, err := h.service.Create(c.Context(), &req)
	if err != nil {
		return respondError(c, err, "failed to create user")
	}

	log.Info().Str("user_id", user.ID).Msg("user created")
	return respondData(c, fiber.StatusCreated, user)
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	user, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err, "failed to get user")
	}
	return respondData(c, fiber.StatusOK, user)
}
