package domain

import "errors"

// Domain errors
var (
	ErrNotFound            = errors.New("resource not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrUserNotFound        = errors.New("user not found")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrBudgetNotFound      = errors.New("budget not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrCategoryNameTaken   = errors.New("category name already in use")
	ErrBudgetExists        = errors.New("budget already exists for this category")
	ErrEmailTaken          = errors.New("email already in use")
	ErrNameRequired        = errors.New("name is required")
	ErrNameTooLong         = errors.New("name exceeds maximum length")
	ErrUsernameRequired    = errors.New("username is required")
	ErrEmailRequired       = errors.New("email is required")
	ErrAmountNotPositive   = errors.New("amount must be greater than zero")
	ErrSpentNegative       = errors.New("spent must not be negative")
	ErrDescriptionRequired = errors.New("description is required")
	ErrDateRequired        = errors.New("date is required")
)

// Validation constants
const (
	MaxCategoryNameLength = 100
	MaxUsernameLength     = 100
	MaxEmailLength        = 255
)
