package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	cartapp "github.com/kvellan/gamestore/internal/cart/app"
	catalogapp "github.com/kvellan/gamestore/internal/catalog/app"
	checkoutapp "github.com/kvellan/gamestore/internal/checkout/app"
	orderapp "github.com/kvellan/gamestore/internal/order/app"
)

// ErrUnauthenticated is what handlers return when a route needs a
// logged-in user and the request has none.
var ErrUnauthenticated = errors.New("not authenticated")

// Error writes the JSON error body for a service failure.
func Error(c *gin.Context, err error) {
	status, code := httpStatus(err)
	c.JSON(status, gin.H{"error": code, "message": err.Error()})
}

func httpStatus(err error) (int, string) {
	switch {
	case errors.Is(err, catalogapp.ErrNotFound),
		errors.Is(err, cartapp.ErrGameNotFound):
		return http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, catalogapp.ErrInvalidInput),
		errors.Is(err, orderapp.ErrInvalidOrder),
		errors.Is(err, cartapp.ErrNoSession),
		errors.Is(err, cartapp.ErrInvalidOwner):
		return http.StatusBadRequest, "INVALID_ARGUMENT"
	case errors.Is(err, ErrUnauthenticated),
		errors.Is(err, cartapp.ErrNotAuthenticated),
		errors.Is(err, checkoutapp.ErrAnonymousCheckout):
		return http.StatusUnauthorized, "UNAUTHENTICATED"
	case errors.Is(err, checkoutapp.ErrEmptyCart):
		return http.StatusConflict, "FAILED_PRECONDITION"
	case errors.Is(err, cartapp.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, "UNAVAILABLE"
	default:
		return http.StatusInternalServerError, "INTERNAL"
	}
}
