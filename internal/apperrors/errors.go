package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrUnsupportedCurrency indicates a currency code outside the supported display set.
var ErrUnsupportedCurrency = errors.New("unsupported currency")

// ErrUpstream indicates that an external data provider answered with a failure status
// or an unusable payload.
var ErrUpstream = errors.New("upstream provider error")
