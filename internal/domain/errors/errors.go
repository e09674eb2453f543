package errors

import "errors"

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("store api rejected credentials")
	ErrInvalidResponse    = errors.New("invalid store api response")
	ErrInvalidMonth       = errors.New("invalid month")
	ErrNoOrdersSelected   = errors.New("no orders selected")
	ErrNothingToMove      = errors.New("no completed orders to move")
	ErrNothingMoved       = errors.New("no orders were moved")
	ErrInvalidProduct     = errors.New("invalid product")
)
