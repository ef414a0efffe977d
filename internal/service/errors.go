package service

import "errors"

var (
	// ErrBannerNotFound is returned when a banner cannot be found
	ErrBannerNotFound = errors.New("banner not found")

	// ErrShopNotFound is returned when a shop cannot be found
	ErrShopNotFound = errors.New("shop not found")

	// ErrCategoryNotFound is returned when a category cannot be found
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCouponNotFound is returned when a coupon cannot be found
	ErrCouponNotFound = errors.New("coupon not found")

	// ErrDealNotFound is returned when a deal cannot be found
	ErrDealNotFound = errors.New("deal not found")

	// ErrComponentNotFound is returned when a component cannot be found
	ErrComponentNotFound = errors.New("component not found")

	// ErrUserNotFound is returned when a user cannot be found
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidID is returned when a document id is malformed for the store in use
	ErrInvalidID = errors.New("invalid id")

	// ErrInvalidRequest is returned when request data is invalid or incomplete
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInvalidReorder is returned when the submitted orders are not a permutation of 0..n-1
	// or an id appears more than once
	ErrInvalidReorder = errors.New("invalid reorder: orders must be unique and contiguous from 0")

	// ErrIncompleteReorder is returned when a reorder does not name every component
	ErrIncompleteReorder = errors.New("invalid reorder: every component must be included")
)
