package handler

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/everydukan/deals-cms/internal/model"
	"github.com/everydukan/deals-cms/internal/service"
)

// notFoundErrors map to 404, badRequestErrors to 400. The sentinel text is
// the response message.
var (
	notFoundErrors = []error{
		service.ErrBannerNotFound,
		service.ErrShopNotFound,
		service.ErrCategoryNotFound,
		service.ErrCouponNotFound,
		service.ErrDealNotFound,
		service.ErrComponentNotFound,
		service.ErrUserNotFound,
	}
	badRequestErrors = []error{
		service.ErrInvalidID,
		service.ErrInvalidRequest,
		service.ErrInvalidReorder,
		service.ErrIncompleteReorder,
	}
)

// respondError writes the status and message for err. Unknown errors are
// logged and reported as a bare 500.
func respondError(c *fiber.Ctx, err error, msg string) error {
	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": target.Error()})
		}
	}
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return badRequest(c, target.Error())
		}
	}

	log.Error().
		Err(err).
		Interface("request_id", c.Locals("requestid")).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Str("id", c.Params("id")).
		Msg(msg)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

func respondData(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(fiber.Map{"data": data})
}

func respondPage[T any](c *fiber.Ctx, page *model.Page[T]) error {
	items := page.Items
	if items == nil {
		items = []T{}
	}
	return c.JSON(fiber.Map{
		"data":       items,
		"pagination": page.Pagination,
	})
}

func respondDeleted(c *fiber.Ctx, entity string) error {
	return c.JSON(fiber.Map{"message": entity + " deleted successfully"})
}

// decodeBody parses and validates the JSON body into req. A non-empty
// result is the message to reject the request with.
func decodeBody(c *fiber.Ctx, v *validator.Validate, req any) string {
	if err := c.BodyParser(req); err != nil {
		return "invalid request body"
	}
	if err := v.Struct(req); err != nil {
		return formatValidationError(err)
	}
	return ""
}

// formatValidationError reports the first failed rule as
// "invalid request: <field> <reason>". Field names are the JSON paths.
func formatValidationError(err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) || len(ve) == 0 {
		return "invalid request"
	}

	fe := ve[0]
	field := fe.Namespace()
	if _, rest, ok := strings.Cut(field, "."); ok {
		field = rest
	}
	param := fe.Param()

	var reason string
	switch fe.Tag() {
	case "required":
		reason = "is required"
	case "notblank":
		reason = "cannot be whitespace only"
	case "max":
		reason = "exceeds maximum length of " + param
	case "min":
		reason = "must contain at least " + param + " item(s)"
	case "gte":
		reason = "must be at least " + param
	case "url", "http_url":
		reason = "must be a valid URL"
	case "oneof":
		reason = "must be one of [" + param + "]"
	case "ltefield":
		reason = "must not exceed " + param
	case "gtfield":
		reason = "must be after " + param
	default:
		reason = "is invalid"
	}
	return "invalid request: " + field + " " + reason
}

// pageQuery reads ?page and ?limit. Missing or non-numeric values fall
// back to the defaults; Normalize clamps the rest.
func pageQuery(c *fiber.Ctx) model.PageQuery {
	return model.PageQuery{
		Page:  c.QueryInt("page", model.DefaultPage),
		Limit: c.QueryInt("limit", model.DefaultLimit),
	}.Normalize()
}

// optionalBool reads a true/false query flag. Absent yields nil.
func optionalBool(c *fiber.Ctx, key string) (*bool, bool) {
	raw := c.Query(key)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, false
	}
	return &v, true
}
