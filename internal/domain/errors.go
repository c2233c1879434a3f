package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation. Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrInvalidStartDate is returned when a trip's start date is in the past at
// creation time. It matches errors.Is checks for both itself and ErrValidation.
var ErrInvalidStartDate = fmt.Errorf("%w: invalid trip start date", ErrValidation)

// ErrInvalidEndDate is returned when a trip's end date is before its start
// date. It matches errors.Is checks for both itself and ErrValidation.
var ErrInvalidEndDate = fmt.Errorf("%w: invalid trip end date", ErrValidation)
