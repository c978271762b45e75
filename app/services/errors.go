package services

import "errors"

// Sentinel errors let the handler layer pick the HTTP shape without parsing
// message strings.
var (
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrProductNotFound = errors.New("product not found")
	ErrCartEmpty       = errors.New("cart is empty")
	ErrCartItemMissing = errors.New("cart item not found")

	ErrOrderNotFound    = errors.New("order not found")
	ErrAddressNotFound  = errors.New("address not found")
	ErrOrderTransition  = errors.New("invalid order status transition")
	ErrCategoryNotFound = errors.New("category not found")

	ErrInvalidAmount = errors.New("payment amount must be a positive integer")
	// ErrPaymentVerification is intentionally generic: verification failures
	// (missing gateway records, id mismatch) must not leak detail to the
	// client. Specifics go to the server log only.
	ErrPaymentVerification = errors.New("payment verification failed")
	ErrPaymentNotCaptured  = errors.New("payment not captured")

	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTokenInvalid       = errors.New("token is invalid or expired")
)
