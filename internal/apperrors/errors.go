package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrIntegrity indicates that an invariant the ledger relies on did not hold
// after a store operation (e.g. an idempotency-key re-read found no row).
var ErrIntegrity = errors.New("ledger integrity error")
