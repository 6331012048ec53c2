package handler

import (
	"net/http"

	"github.com/jspsoluciones/raffle-backend/internal/authctx"
	"github.com/jspsoluciones/raffle-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type SaleHandler struct {
	svc service.SaleService
}

func NewSaleHandler(svc service.SaleService) *SaleHandler {
	return &SaleHandler{svc: svc}
}

// Register records a direct sale. The sale is attributed to the seller in
// the body when given, otherwise to the authenticated viewer.
func (h *SaleHandler) Register(c echo.Context) error {
	var body struct {
		Buyer    BuyerPayload `json:"buyer"`
		Numbers  []int        `json:"numbers"`
		SellerID string       `json:"sellerId"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid body"))
	}
	sellerID := body.SellerID
	if sellerID == "" {
		if viewer, ok := authctx.ViewerFrom(c.Request().Context()); ok {
			sellerID = viewer.ID
		}
	}
	buyer, err := h.svc.Register(c.Request().Context(), body.Buyer.toInput(), body.Numbers, sellerID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, toBuyerResponse(buyer))
}
