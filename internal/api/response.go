package api

import (
	"errors"
	"net/http"

	"shopora-be/internal/address"
	"shopora-be/internal/cart"
	"shopora-be/internal/feature"
	"shopora-be/internal/logger"
	"shopora-be/internal/order"
	"shopora-be/internal/product"
	"shopora-be/internal/review"
	"shopora-be/internal/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondData wraps a payload in the standard envelope.
func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

// respondMessage is for endpoints whose result is just an acknowledgement.
func respondMessage(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{
		"success": true,
		"message": msg,
	})
}

func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		logger.FromCtx(c.Request.Context()).Error("request failed",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		msg = "Some error occured"
	}
	c.JSON(status, gin.H{
		"success": false,
		"message": msg,
	})
}

// statusFor translates domain sentinels into HTTP status codes. Unknown
// errors fall through to 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, cart.ErrInvalidQuantity),
		errors.Is(err, review.ErrInvalidReviewValue),
		errors.Is(err, product.ErrEmptyKeyword),
		errors.Is(err, product.ErrNoFieldsToSet),
		errors.Is(err, order.ErrEmptyOrder),
		errors.Is(err, feature.ErrEmptyImage):
		return http.StatusBadRequest

	case errors.Is(err, user.ErrInvalidCredentials):
		return http.StatusUnauthorized

	case errors.Is(err, review.ErrPurchaseRequired):
		return http.StatusForbidden

	case errors.Is(err, user.ErrUserNotFound),
		errors.Is(err, product.ErrProductNotFound),
		errors.Is(err, cart.ErrProductNotFound),
		errors.Is(err, cart.ErrCartItemNotFound),
		errors.Is(err, address.ErrAddressNotFound),
		errors.Is(err, order.ErrOrderNotFound):
		return http.StatusNotFound

	case errors.Is(err, user.ErrEmailExists),
		errors.Is(err, review.ErrAlreadyReviewed):
		return http.StatusConflict

	case errors.Is(err, order.ErrPaymentGateway):
		return http.StatusBadGateway

	default:
		return http.StatusInternalServerError
	}
}
