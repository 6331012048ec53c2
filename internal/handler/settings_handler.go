package handler

import (
	"io"
	"net/http"
	"time"

	"github.com/jspsoluciones/raffle-backend/internal/model"
	"github.com/jspsoluciones/raffle-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type SettingsHandler struct {
	svc service.SettingsService
}

func NewSettingsHandler(svc service.SettingsService) *SettingsHandler {
	return &SettingsHandler{svc: svc}
}

type SettingsResponse struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	ImageURL       string   `json:"imageUrl"`
	PricePerNumber int64    `json:"pricePerNumber"`
	WinningNumber  *int     `json:"winningNumber"`
	PaymentMethods []string `json:"paymentMethods"`
	UpdatedAt      string   `json:"updatedAt"`
}

func toSettingsResponse(s *model.RaffleSettings) SettingsResponse {
	return SettingsResponse{
		Title:          s.Title,
		Description:    s.Description,
		ImageURL:       s.ImageURL,
		PricePerNumber: s.PricePerNumber,
		WinningNumber:  s.WinningNumber,
		PaymentMethods: s.PaymentMethods,
		UpdatedAt:      s.UpdatedAt.Format(time.RFC3339),
	}
}

func (h *SettingsHandler) Get(c echo.Context) error {
	s, err := h.svc.Get(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch settings"))
	}
	return c.JSON(http.StatusOK, toSettingsResponse(s))
}

func (h *SettingsHandler) Update(c echo.Context) error {
	var body struct {
		Title          *string  `json:"title"`
		Description    *string  `json:"description"`
		ImageURL       *string  `json:"imageUrl"`
		PricePerNumber *int64   `json:"pricePerNumber"`
		WinningNumber  *int     `json:"winningNumber"`
		ClearWinner    bool     `json:"clearWinner"`
		PaymentMethods []string `json:"paymentMethods"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid body"))
	}
	s, err := h.svc.Update(c.Request().Context(), service.SettingsUpdate{
		Title:          body.Title,
		Description:    body.Description,
		ImageURL:       body.ImageURL,
		PricePerNumber: body.PricePerNumber,
		WinningNumber:  body.WinningNumber,
		ClearWinner:    body.ClearWinner,
		PaymentMethods: body.PaymentMethods,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toSettingsResponse(s))
}

// UploadImage accepts the raw image body, stores it in the bucket and saves
// the resulting public URL into settings.
func (h *SettingsHandler) UploadImage(c echo.Context) error {
	contentType := c.Request().Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	data, err := io.ReadAll(io.LimitReader(c.Request().Body, 10<<20))
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "failed to read body"))
	}
	s, err := h.svc.UploadImage(c.Request().Context(), data, contentType)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toSettingsResponse(s))
}
