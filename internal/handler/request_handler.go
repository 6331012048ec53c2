package handler

import (
	"net/http"
	"time"

	"github.com/jspsoluciones/raffle-backend/internal/authctx"
	"github.com/jspsoluciones/raffle-backend/internal/model"
	"github.com/jspsoluciones/raffle-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type RequestHandler struct {
	svc service.RequestService
}

func NewRequestHandler(svc service.RequestService) *RequestHandler {
	return &RequestHandler{svc: svc}
}

type BuyerPayload struct {
	Name          string  `json:"name"`
	Phone         string  `json:"phone"`
	Email         *string `json:"email"`
	PaymentMethod string  `json:"paymentMethod"`
	PaymentProof  *string `json:"paymentProof"`
	Notes         *string `json:"notes"`
}

func (p BuyerPayload) toInput() service.BuyerInput {
	return service.BuyerInput{
		Name:          p.Name,
		Phone:         p.Phone,
		Email:         p.Email,
		PaymentMethod: p.PaymentMethod,
		PaymentProof:  p.PaymentProof,
		Notes:         p.Notes,
	}
}

type BuyerResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Phone         string  `json:"phone"`
	Email         *string `json:"email"`
	PaymentMethod string  `json:"paymentMethod"`
	PaymentProof  *string `json:"paymentProof"`
	Notes         *string `json:"notes"`
	CreatedAt     string  `json:"createdAt"`
}

func toBuyerResponse(b *model.Buyer) BuyerResponse {
	return BuyerResponse{
		ID:            b.ID,
		Name:          b.Name,
		Phone:         b.Phone,
		Email:         b.Email,
		PaymentMethod: b.PaymentMethod,
		PaymentProof:  b.PaymentProof,
		Notes:         b.Notes,
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
	}
}

type RequestResponse struct {
	ID        string        `json:"id"`
	Buyer     BuyerResponse `json:"buyer"`
	Numbers   []int         `json:"numbers"`
	Status    string        `json:"status"`
	CreatedAt string        `json:"createdAt"`
}

func toRequestResponse(r *model.RaffleRequest) RequestResponse {
	return RequestResponse{
		ID:        r.ID,
		Buyer:     toBuyerResponse(&r.Buyer),
		Numbers:   r.NumberList(),
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
	}
}

// Create is the public storefront submission: buyer info plus the selected
// numbers.
func (h *RequestHandler) Create(c echo.Context) error {
	var body struct {
		Buyer   BuyerPayload `json:"buyer"`
		Numbers []int        `json:"numbers"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid body"))
	}
	req, err := h.svc.Create(c.Request().Context(), body.Buyer.toInput(), body.Numbers)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, toRequestResponse(req))
}

// List scopes results to the viewer: admins see everything, operators only
// requests touching their assigned numbers.
func (h *RequestHandler) List(c echo.Context) error {
	viewer, ok := authctx.ViewerFrom(c.Request().Context())
	if !ok {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "missing viewer"))
	}
	list, err := h.svc.ListForViewer(c.Request().Context(), viewer.Role, viewer.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch requests"))
	}
	resp := make([]RequestResponse, 0, len(list))
	for i := range list {
		resp = append(resp, toRequestResponse(&list[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *RequestHandler) Approve(c echo.Context) error {
	req, err := h.svc.Approve(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toRequestResponse(req))
}

func (h *RequestHandler) Reject(c echo.Context) error {
	req, err := h.svc.Reject(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toRequestResponse(req))
}
