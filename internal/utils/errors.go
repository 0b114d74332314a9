package utils

import "errors"

// Common application errors used across services.
var (
	ErrInvalidCredentials   = errors.New("INVALID_CREDENTIALS")
	ErrNamePriceRequired    = errors.New("NAME_PRICE_REQUIRED")
	ErrInvalidCategory      = errors.New("INVALID_CATEGORY")
	ErrProductNotFound      = errors.New("PRODUCT_NOT_FOUND")
	ErrConfirmationRequired = errors.New("CONFIRMATION_REQUIRED")
	ErrInvalidSelection     = errors.New("INVALID_SELECTION")
	ErrSelectionIncomplete  = errors.New("SELECTION_INCOMPLETE")
	ErrInvalidToken         = errors.New("INVALID_TOKEN")
)
