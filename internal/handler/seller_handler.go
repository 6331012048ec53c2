package handler

import (
	"net/http"

	"github.com/jspsoluciones/raffle-backend/internal/repository"
	"github.com/labstack/echo/v4"
)

type SellerHandler struct {
	profileRepo repository.ProfileRepository
}

func NewSellerHandler(profileRepo repository.ProfileRepository) *SellerHandler {
	return &SellerHandler{profileRepo: profileRepo}
}

type SellerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Role  string `json:"role"`
}

func (h *SellerHandler) List(c echo.Context) error {
	profiles, err := h.profileRepo.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch sellers"))
	}
	resp := make([]SellerResponse, 0, len(profiles))
	for _, p := range profiles {
		resp = append(resp, SellerResponse{
			ID:    p.ID,
			Name:  p.Name,
			Color: p.Color,
			Role:  string(p.Role),
		})
	}
	return c.JSON(http.StatusOK, resp)
}
