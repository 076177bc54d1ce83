package cart

import "errors"

var (
	ErrInvalidMoney  = errors.New("invalid money amount")
	ErrInvalidItem   = errors.New("invalid cart item")
	ErrInvalidCartID = errors.New("invalid cart id")
	ErrItemNotFound  = errors.New("cart item not found")
	ErrStoreFailure  = errors.New("cart store failure")
)
