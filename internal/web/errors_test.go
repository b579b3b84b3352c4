package web

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	cartapp "github.com/kvellan/gamestore/internal/cart/app"
	catalogapp "github.com/kvellan/gamestore/internal/catalog/app"
	checkoutapp "github.com/kvellan/gamestore/internal/checkout/app"
)

func TestHTTPStatus(t *testing.T) {
	t.Run("catalog not found -> 404", func(t *testing.T) {
		gotStatus, gotCode := httpStatus(catalogapp.ErrNotFound)
		if gotStatus != http.StatusNotFound || gotCode != "NOT_FOUND" {
			t.Fatalf("got (%d,%s)", gotStatus, gotCode)
		}
	})

	t.Run("wrapped game not found -> 404", func(t *testing.T) {
		err := fmt.Errorf("%w: abc", cartapp.ErrGameNotFound)
		gotStatus, gotCode := httpStatus(err)
		if gotStatus != http.StatusNotFound || gotCode != "NOT_FOUND" {
			t.Fatalf("got (%d,%s)", gotStatus, gotCode)
		}
	})

	t.Run("invalid input -> 400", func(t *testing.T) {
		gotStatus, gotCode := httpStatus(catalogapp.ErrInvalidInput)
		if gotStatus != http.StatusBadRequest || gotCode != "INVALID_ARGUMENT" {
			t.Fatalf("got (%d,%s)", gotStatus, gotCode)
		}
	})

	t.Run("invalid owner -> 400", func(t *testing.T) {
		err := fmt.Errorf("%w: bogus", cartapp.ErrInvalidOwner)
		gotStatus, gotCode := httpStatus(err)
		if gotStatus != http.StatusBadRequest || gotCode != "INVALID_ARGUMENT" {
			t.Fatalf("got (%d,%s)", gotStatus, gotCode)
		}
	})

	t.Run("missing identity -> 401", func(t *testing.T) {
		gotStatus, gotCode := httpStatus(ErrUnauthenticated)
		if gotStatus != http.StatusUnauthorized || gotCode != "UNAUTHENTICATED" {
			t.Fatalf("got (%d,%s)", gotStatus, gotCode)
		}
	})

	t.Run("anonymous checkout -> 401", func(t *testing.T) {
		gotStatus, gotCode := httpStatus(checkoutapp.ErrAnonymousCheckout)
		if gotStatus != http.StatusUnauthorized || gotCode != "UNAUTHENTICATED" {
			t.Fatalf("got (%d,%s)", gotStatus, gotCode)
		}
	})

	t.Run("empty cart -> 409", func(t *testing.T) {
		gotStatus, gotCode := httpStatus(checkoutapp.ErrEmptyCart)
		if gotStatus != http.StatusConflict || gotCode != "FAILED_PRECONDITION" {
			t.Fatalf("got (%d,%s)", gotStatus, gotCode)
		}
	})

	t.Run("store unavailable -> 503", func(t *testing.T) {
		err := fmt.Errorf("%w: redis gone", cartapp.ErrStoreUnavailable)
		gotStatus, gotCode := httpStatus(err)
		if gotStatus != http.StatusServiceUnavailable || gotCode != "UNAVAILABLE" {
			t.Fatalf("got (%d,%s)", gotStatus, gotCode)
		}
	})

	t.Run("unknown error -> 500", func(t *testing.T) {
		gotStatus, gotCode := httpStatus(errors.New("boom"))
		if gotStatus != http.StatusInternalServerError || gotCode != "INTERNAL" {
			t.Fatalf("got (%d,%s)", gotStatus, gotCode)
		}
	})
}
