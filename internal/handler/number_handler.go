package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/jspsoluciones/raffle-backend/internal/model"
	"github.com/jspsoluciones/raffle-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type NumberHandler struct {
	ledger service.LedgerService
}

func NewNumberHandler(ledger service.LedgerService) *NumberHandler {
	return &NumberHandler{ledger: ledger}
}

type NumberResponse struct {
	Number    int     `json:"number"`
	Status    string  `json:"status"`
	SellerID  *string `json:"sellerId"`
	BuyerID   *string `json:"buyerId"`
	UpdatedAt string  `json:"updatedAt"`
}

func toNumberResponse(n *model.RaffleNumber) NumberResponse {
	return NumberResponse{
		Number:    n.Number,
		Status:    string(n.Status),
		SellerID:  n.SellerID,
		BuyerID:   n.BuyerID,
		UpdatedAt: n.UpdatedAt.Format(time.RFC3339),
	}
}

// List serves the storefront grid.
func (h *NumberHandler) List(c echo.Context) error {
	numbers, err := h.ledger.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch numbers"))
	}
	resp := make([]NumberResponse, 0, len(numbers))
	for i := range numbers {
		resp = append(resp, toNumberResponse(&numbers[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *NumberHandler) Get(c echo.Context) error {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "number must be an integer"))
	}
	row, err := h.ledger.Get(c.Request().Context(), number)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toNumberResponse(row))
}

func (h *NumberHandler) AssignSeller(c echo.Context) error {
	var body struct {
		Numbers  []int  `json:"numbers"`
		SellerID string `json:"sellerId"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid body"))
	}
	if err := h.ledger.AssignSeller(c.Request().Context(), body.Numbers, body.SellerID); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]int{"assigned": len(body.Numbers)})
}

func (h *NumberHandler) AssignRange(c echo.Context) error {
	var body struct {
		Start    int    `json:"start"`
		End      int    `json:"end"`
		SellerID string `json:"sellerId"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid body"))
	}
	count, err := h.ledger.AssignRange(c.Request().Context(), body.Start, body.End, body.SellerID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]int64{"assigned": count})
}
