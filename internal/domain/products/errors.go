package products

import "errors"

// Policy rejections the user can act on, plus store-level sentinels the API
// layer branches on with errors.Is.
var (
	ErrInvalidInput    = errors.New("invalid creation input")
	ErrUserNotFound    = errors.New("user not found")
	ErrQuotaExceeded   = errors.New("product limit reached")
	ErrProductNotFound = errors.New("product not found")
	ErrNotOwner        = errors.New("product owned by another user")
)
