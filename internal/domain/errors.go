package domain

import "errors"

var (
	ErrStoreNotFound     = errors.New("store not found")
	ErrStoreNotOwned     = errors.New("store does not belong to user")
	ErrStoreNotPublished = errors.New("store is not published")
	ErrDuplicateDomain   = errors.New("domain name already taken")
	ErrInvalidDomain     = errors.New("invalid domain name")
	ErrProductNotFound   = errors.New("product not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidStatus     = errors.New("invalid status transition")
	ErrInvalidContent    = errors.New("content must be a JSON object")
	ErrValidation        = errors.New("validation failed")
)
