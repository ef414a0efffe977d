package model

import "time"

// Coupon represents a merchant coupon shown on the marketing site.
// ExpirationDate is kept as the free-form string the dashboard submits.
type Coupon struct {
	ID              string    `json:"id" bson:"-"`
	Title           string    `json:"title" bson:"title"`
	MerchantName    string    `json:"merchantName" bson:"merchantName"`
	MerchantLogo    string    `json:"merchantLogo" bson:"merchantLogo"`
	ClickURL        string    `json:"clickUrl,omitempty" bson:"clickurl,omitempty"`
	CouponCode      string    `json:"couponCode" bson:"couponCode"`
	Description     string    `json:"description" bson:"description"`
	ExpirationDate  string    `json:"expirationDate" bson:"expirationDate"`
	Discount        string    `json:"discount" bson:"discount"`
	Category        string    `json:"category" bson:"category"`
	BackgroundColor string    `json:"backgroundColor" bson:"backgroundColor"`
	AccentColor     string    `json:"accentColor" bson:"accentColor"`
	Terms           []string  `json:"terms" bson:"terms"`
	CreatedAt       time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt" bson:"updatedAt"`
}

// CouponRequest is the DTO for creating or replacing a coupon
type CouponRequest struct {
	Title           string   `json:"title" validate:"required,notblank,max=255"`
	MerchantName    string   `json:"merchantName" validate:"required,notblank,max=255"`
	MerchantLogo    string   `json:"merchantLogo" validate:"required,notblank"`
	ClickURL        string   `json:"clickUrl" validate:"omitempty,url"`
	CouponCode      string   `json:"couponCode" validate:"required,notblank,max=100"`
	Description     string   `json:"description" validate:"max=2000"`
	ExpirationDate  string   `json:"expirationDate" validate:"required,notblank"`
	Discount        string   `json:"discount" validate:"required,notblank,max=100"`
	Category        string   `json:"category" validate:"max=255"`
	BackgroundColor string   `json:"backgroundColor" validate:"required,notblank,max=32"`
	AccentColor     string   `json:"accentColor" validate:"required,notblank,max=32"`
	Terms           []string `json:"terms" validate:"omitempty,dive,notblank"`
}
