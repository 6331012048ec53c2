package handler

import (
	"net/http"

	"github.com/jspsoluciones/raffle-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type StatsHandler struct {
	svc service.StatsService
}

func NewStatsHandler(svc service.StatsService) *StatsHandler {
	return &StatsHandler{svc: svc}
}

type PaymentMethodStatResponse struct {
	PaymentMethod string `json:"paymentMethod"`
	Count         int64  `json:"count"`
}

type SellerStatResponse struct {
	SellerID string `json:"sellerId"`
	Name     string `json:"name"`
	Color    string `json:"color"`
	Assigned int64  `json:"assigned"`
	Sold     int64  `json:"sold"`
}

type SummaryResponse struct {
	Total           int64                       `json:"total"`
	Sold            int64                       `json:"sold"`
	Processing      int64                       `json:"processing"`
	Available       int64                       `json:"available"`
	PercentSold     float64                     `json:"percentSold"`
	Revenue         int64                       `json:"revenue"`
	ByPaymentMethod []PaymentMethodStatResponse `json:"byPaymentMethod"`
	BySeller        []SellerStatResponse        `json:"bySeller"`
}

func (h *StatsHandler) Summary(c echo.Context) error {
	sum, err := h.svc.Summary(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to compute stats"))
	}
	resp := SummaryResponse{
		Total:           sum.Total,
		Sold:            sum.Sold,
		Processing:      sum.Processing,
		Available:       sum.Available,
		PercentSold:     sum.PercentSold,
		Revenue:         sum.Revenue,
		ByPaymentMethod: make([]PaymentMethodStatResponse, 0, len(sum.ByPaymentMethod)),
		BySeller:        make([]SellerStatResponse, 0, len(sum.BySeller)),
	}
	for _, m := range sum.ByPaymentMethod {
		resp.ByPaymentMethod = append(resp.ByPaymentMethod, PaymentMethodStatResponse{
			PaymentMethod: m.PaymentMethod,
			Count:         m.Count,
		})
	}
	for _, s := range sum.BySeller {
		resp.BySeller = append(resp.BySeller, SellerStatResponse{
			SellerID: s.SellerID,
			Name:     s.Name,
			Color:    s.Color,
			Assigned: s.Assigned,
			Sold:     s.Sold,
		})
	}
	return c.JSON(http.StatusOK, resp)
}
