package dealership

import "errors"

var (
	ErrShopNotFound = errors.New("dealership not found")
)
