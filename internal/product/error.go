package product

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrEmptyKeyword    = errors.New("search keyword is required")
	ErrNoFieldsToSet   = errors.New("no fields to update")
)
