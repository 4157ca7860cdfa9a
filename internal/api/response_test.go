package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"shopora-be/internal/cart"
	"shopora-be/internal/order"
	"shopora-be/internal/product"
	"shopora-be/internal/review"
	"shopora-be/internal/user"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{cart.ErrInvalidQuantity, http.StatusBadRequest},
		{product.ErrEmptyKeyword, http.StatusBadRequest},
		{user.ErrInvalidCredentials, http.StatusUnauthorized},
		{review.ErrPurchaseRequired, http.StatusForbidden},
		{product.ErrProductNotFound, http.StatusNotFound},
		{order.ErrOrderNotFound, http.StatusNotFound},
		{user.ErrEmailExists, http.StatusConflict},
		{review.ErrAlreadyReviewed, http.StatusConflict},
		{order.ErrPaymentGateway, http.StatusBadGateway},
		{fmt.Errorf("%w: provider said no", order.ErrPaymentGateway), http.StatusBadGateway},
		{errors.New("something else"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.status, statusFor(tc.err), "error: %v", tc.err)
	}
}
