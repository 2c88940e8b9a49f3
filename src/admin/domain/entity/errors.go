package entity

import "errors"

var (
	ErrDateRequired = errors.New("date query parameter is required (format: YYYY-MM-DD)")
	ErrInvalidDate  = errors.New("invalid date format, expected YYYY-MM-DD")
)
