package services

import "errors"

var (
	ErrNotFound              = errors.New("not found")
	ErrForbidden             = errors.New("forbidden")
	ErrDeadlinePassed        = errors.New("order deadline has passed")
	ErrMenuItemArchived      = errors.New("menu item is no longer active")
	ErrInvalidServeDate      = errors.New("serve date must be a valid YYYY-MM-DD date")
	ErrDeadlineAfterServeDay = errors.New("order deadline must fall before the end of the serve day")
	ErrNegativePrice         = errors.New("price must be a non-negative amount")
	ErrInvalidShift          = errors.New("shift must be morning, afternoon, or night")
	ErrInvalidStatus         = errors.New("status must be created, updated, or confirmed")
	ErrEmailTaken            = errors.New("email already registered")
	ErrInvalidCredentials    = errors.New("invalid email or password")
)
