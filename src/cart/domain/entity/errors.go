package entity

import "errors"

var (
	ErrProductIDRequired = errors.New("product_id is required")
	ErrProductNotFound   = errors.New("product not found in catalog and no product data provided")
	ErrInvalidPrice      = errors.New("price must be greater than or equal to 0")
)
