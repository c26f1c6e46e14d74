package apperrors

import "errors"

// Validation errors are surfaced to the caller before any write happens.
var (
	ErrEmptyCustomerName = errors.New("customer name is required")
	ErrEmptyOrder        = errors.New("order must contain at least one item")
	ErrInvalidQuantity   = errors.New("quantity must be at least 1")
	ErrInvalidUnitPrice  = errors.New("unit price must be 0 or more")
	ErrEmptyItemName     = errors.New("item name is required")
	ErrInvalidMenuItemID = errors.New("invalid menu item id")
	ErrInvalidOrderID    = errors.New("invalid order id")
	ErrInvalidLimit      = errors.New("invalid limit")
)

// Not-found signals let callers distinguish "no such row" from failure.
var (
	ErrOrderNotFound = errors.New("order not found")
)

// ErrInvalidTransition is returned in strict status flow mode when the
// requested transition is not allowed by the status graph.
var ErrInvalidTransition = errors.New("status transition not allowed")
