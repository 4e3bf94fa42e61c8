package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that the caller could not be authenticated.
var ErrUnauthorized = errors.New("unauthorized")

// ErrConfigLoad indicates that startup data (baseline rates or accounts) is missing or malformed.
var ErrConfigLoad = errors.New("failed to load startup data")

// ErrPersistenceWrite indicates that the account collection could not be written to storage.
var ErrPersistenceWrite = errors.New("failed to persist accounts")

// Rate and conversion input errors. Each one is also an ErrValidation so handlers
// can map the whole family to a 400 with a single errors.Is check.
var (
	ErrUnknownCurrency     = fmt.Errorf("%w: unknown currency", ErrValidation)
	ErrInvalidAmount       = fmt.Errorf("%w: amount must be a finite positive number", ErrValidation)
	ErrInvalidRate         = fmt.Errorf("%w: rate must be a finite positive number", ErrValidation)
	ErrInvalidCurrencyCode = fmt.Errorf("%w: invalid currency code", ErrValidation)
	ErrProtectedCurrency   = fmt.Errorf("%w: pivot currency cannot be changed or removed", ErrValidation)
	ErrDuplicateCurrency   = fmt.Errorf("%w: currency already exists", ErrDuplicate)
)
