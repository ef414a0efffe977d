package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/everydukan/deals-cms/internal/model"
)

// New creates a new validator instance with custom validations registered.
// This ensures consistent validation across the application and tests.
func New() *validator.Validate {
	v := validator.New()

	// Report fields by their JSON names so error messages match the payload
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	// Register custom "notblank" validator - rejects whitespace-only strings
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		str, ok := fl.Field().Interface().(string)
		if !ok {
			return true // Not a string, let other validators handle it
		}
		return strings.TrimSpace(str) != ""
	})

	// Prices are decimals; numeric tags such as gte compare their float value
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})

	v.RegisterStructValidation(componentRequestValidation, model.ComponentRequest{})
	v.RegisterStructValidation(dealRequestValidation, model.DealRequest{})

	return v
}

// componentRequestValidation enforces the payload each component type needs.
func componentRequestValidation(sl validator.StructLevel) {
	req := sl.Current().Interface().(model.ComponentRequest)

	switch req.Type {
	case model.ComponentReusableBanner:
		if len(req.Banners) == 0 {
			sl.ReportError(req.Banners, "banners", "Banners", "required", "")
		}
	case model.ComponentBannerCard:
		if req.ImageURL == "" {
			sl.ReportError(req.ImageURL, "imageUrl", "ImageURL", "required", "")
		}
		if req.ClickURL == "" {
			sl.ReportError(req.ClickURL, "clickUrl", "ClickURL", "required", "")
		}
		if strings.TrimSpace(req.ButtonText) == "" {
			sl.ReportError(req.ButtonText, "buttonText", "ButtonText", "required", "")
		}
	case model.ComponentBrandCard:
		if len(req.Brands) == 0 {
			sl.ReportError(req.Brands, "brands", "Brands", "required", "")
		}
	}
}

func dealRequestValidation(sl validator.StructLevel) {
	req := sl.Current().Interface().(model.DealRequest)

	if req.OriginalPrice != nil && req.DiscountedPrice != nil &&
		req.DiscountedPrice.GreaterThan(*req.OriginalPrice) {
		sl.ReportError(req.DiscountedPrice, "discountedPrice", "DiscountedPrice", "ltefield", "originalPrice")
	}
	if req.StartDate != nil && req.EndDate != nil && !req.EndDate.After(*req.StartDate) {
		sl.ReportError(req.EndDate, "endDate", "EndDate", "gtfield", "startDate")
	}
}
