package service

import (
	"errors"
	"fmt"

	"github.com/jspsoluciones/raffle-backend/internal/model"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrAlreadyResolved = errors.New("request already resolved")
	ErrInvalidRange    = errors.New("invalid range")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrEmptySelection  = errors.New("no numbers selected")
)

// NumberUnavailableError reports the first number of a selection that is
// missing from the ledger or no longer available.
type NumberUnavailableError struct {
	Number int
}

func (e *NumberUnavailableError) Error() string {
	return fmt.Sprintf("number %d is not available", e.Number)
}

// InvalidTransitionError reports a number whose current status forbids the
// attempted ledger transition.
type InvalidTransitionError struct {
	Number int
	Status model.NumberStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("number %d cannot transition from status %q", e.Number, e.Status)
}
