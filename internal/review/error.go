package review

import "errors"

var (
	// -- Validation & Input --
	ErrInvalidReviewValue = errors.New("review value must be between 1 and 5")

	// -- Resource State --
	ErrAlreadyReviewed  = errors.New("you already reviewed this product")
	ErrPurchaseRequired = errors.New("you need to purchase the product to review it")
)
