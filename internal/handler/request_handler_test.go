package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jspsoluciones/raffle-backend/internal/model"
	"github.com/jspsoluciones/raffle-backend/internal/repository"
	"github.com/jspsoluciones/raffle-backend/internal/service"
	"github.com/jspsoluciones/raffle-backend/internal/testutil"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestAPI(t *testing.T) (*echo.Echo, *gorm.DB) {
	t.Helper()
	db := testutil.NewTestDB(t)
	testutil.SeedNumbers(t, db, 10)

	notify := service.NewNotificationService(repository.NewNotificationRepository(db))
	h := NewRequestHandler(service.NewRequestService(db, notify))

	e := echo.New()
	e.POST("/api/requests", h.Create)
	e.POST("/api/requests/:id/approve", h.Approve)
	e.POST("/api/requests/:id/reject", h.Reject)
	return e, db
}

func postJSON(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCreateAndApproveRequestHTTP(t *testing.T) {
	e, db := newTestAPI(t)

	rec := postJSON(e, "/api/requests", `{"buyer":{"name":"Ana","phone":"3001234567","paymentMethod":"PSE"},"numbers":[3,4]}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created RequestResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "pending", created.Status)
	assert.ElementsMatch(t, []int{3, 4}, created.Numbers)
	assert.Equal(t, "Ana", created.Buyer.Name)

	rec = postJSON(e, "/api/requests/"+created.ID+"/approve", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var approved RequestResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &approved))
	assert.Equal(t, "approved", approved.Status)

	var row model.RaffleNumber
	require.NoError(t, db.First(&row, "number = ?", 3).Error)
	assert.Equal(t, model.NumberStatusSold, row.Status)

	// second resolution is a conflict
	rec = postJSON(e, "/api/requests/"+created.ID+"/reject", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "already_resolved")
}

func TestCreateRequestConflictHTTP(t *testing.T) {
	e, _ := newTestAPI(t)

	rec := postJSON(e, "/api/requests", `{"buyer":{"name":"Ana","phone":"300"},"numbers":[5]}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(e, "/api/requests", `{"buyer":{"name":"Luis","phone":"301"},"numbers":[5,6]}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "number_unavailable")

	rec = postJSON(e, "/api/requests", `{"buyer":{"name":"Luis","phone":"301"},"numbers":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postJSON(e, "/api/requests/nope/approve", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
