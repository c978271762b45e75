package handlers

import (
	"errors"
	"net/http"

	"github.com/shopmitra/shopmitra/app/configs"
	"github.com/shopmitra/shopmitra/app/services"
	"github.com/unrolled/render"
)

// respondError maps service failures onto the HTTP surface. Validation and
// not-found errors are safe to show verbatim; upstream and internal failures
// are logged in full and returned as generic messages.
func respondError(rnd *render.Render, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrCartEmpty),
		errors.Is(err, services.ErrInvalidAmount),
		errors.Is(err, services.ErrOrderTransition),
		errors.Is(err, services.ErrGatewayInvalidRequest):
		_ = rnd.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})

	case errors.Is(err, services.ErrEmailTaken):
		_ = rnd.JSON(w, http.StatusConflict, map[string]string{"error": err.Error()})

	case errors.Is(err, services.ErrProductNotFound),
		errors.Is(err, services.ErrCartItemMissing),
		errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrAddressNotFound),
		errors.Is(err, services.ErrCategoryNotFound),
		errors.Is(err, services.ErrUserNotFound):
		_ = rnd.JSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})

	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrTokenInvalid):
		_ = rnd.JSON(w, http.StatusUnauthorized, map[string]string{"error": err.Error()})

	case errors.Is(err, services.ErrPaymentNotCaptured):
		_ = rnd.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})

	case errors.Is(err, services.ErrPaymentVerification):
		_ = rnd.JSON(w, http.StatusBadRequest, map[string]string{
			"error": "payment verification failed. Please retry or contact support.",
		})

	case errors.Is(err, services.ErrGatewayCredentials):
		configs.Logger.Error().Err(err).Msg("gateway credentials rejected")
		_ = rnd.JSON(w, http.StatusBadGateway, map[string]string{"error": "payment gateway error"})

	case errors.Is(err, services.ErrGatewayUnavailable):
		configs.Logger.Error().Err(err).Msg("gateway unavailable")
		_ = rnd.JSON(w, http.StatusServiceUnavailable, map[string]string{"error": "payment gateway unavailable, please retry"})

	default:
		configs.Logger.Error().Err(err).Msg("unhandled error")
		_ = rnd.JSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}

func respondValidation(rnd *render.Render, w http.ResponseWriter, message string) {
	_ = rnd.JSON(w, http.StatusBadRequest, map[string]string{"error": message})
}
