package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")

	// Authentication errors
	ErrTokenExpired  = errors.New("token expired")
	ErrTokenInvalid  = errors.New("invalid token")
	ErrInvalidFormat = errors.New("invalid token format")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")
)

// User errors
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

// Class errors
var (
	ErrClassNotFound = errors.New("class not found")
)

// Cart errors
var (
	ErrCartItemNotFound        = errors.New("selected class not found")
	ErrCartItemAlreadySelected = errors.New("class already selected")
)

// Payment errors
var (
	ErrPaymentGateway = errors.New("payment gateway error")
)
