package handler

import (
	"errors"
	"net/http"

	"github.com/jspsoluciones/raffle-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type errorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error errorPayload `json:"error"`
}

func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{
		Error: errorPayload{
			Code:    code,
			Message: message,
		},
	}
}

// respondServiceError maps service errors onto the error envelope. Unknown
// errors surface as 500 without leaking storage details.
func respondServiceError(c echo.Context, err error) error {
	var unavailable *service.NumberUnavailableError
	var transition *service.InvalidTransitionError
	switch {
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", err.Error()))
	case errors.Is(err, service.ErrAlreadyResolved):
		return c.JSON(http.StatusConflict, NewErrorResponse("already_resolved", err.Error()))
	case errors.As(err, &unavailable):
		return c.JSON(http.StatusConflict, NewErrorResponse("number_unavailable", unavailable.Error()))
	case errors.As(err, &transition):
		return c.JSON(http.StatusConflict, NewErrorResponse("invalid_transition", transition.Error()))
	case errors.Is(err, service.ErrInvalidRange),
		errors.Is(err, service.ErrInvalidArgument),
		errors.Is(err, service.ErrEmptySelection):
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", err.Error()))
	default:
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "unexpected error"))
	}
}
