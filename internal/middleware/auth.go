package middleware

import (
	"context"
	"net/http"
	"strings"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/jspsoluciones/raffle-backend/internal/authctx"
	"github.com/jspsoluciones/raffle-backend/internal/model"
	"github.com/jspsoluciones/raffle-backend/internal/repository"
	"github.com/labstack/echo/v4"
)

type AuthMiddleware struct {
	authClient  *auth.Client
	profileRepo repository.ProfileRepository
}

func NewAuthMiddleware(ctx context.Context, projectID string, profileRepo repository.ProfileRepository) (*AuthMiddleware, error) {
	if projectID == "" {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "FIREBASE_PROJECT_ID is not set")
	}
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID})
	if err != nil {
		return nil, err
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, err
	}
	return &AuthMiddleware{authClient: client, profileRepo: profileRepo}, nil
}

// RequireAuth verifies the bearer token and resolves the uid to a staff
// profile; authenticated users without a profile row are rejected.
func (m *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authz := c.Request().Header.Get("Authorization")
		if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		}
		tokenStr := strings.TrimPrefix(authz, "Bearer ")
		token, err := m.authClient.VerifyIDToken(c.Request().Context(), tokenStr)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid_token"})
		}
		profile, err := m.profileRepo.FindByID(c.Request().Context(), token.UID)
		if err != nil {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "no_profile"})
		}
		viewer := authctx.Viewer{ID: profile.ID, Role: profile.Role}
		ctx := authctx.WithViewer(c.Request().Context(), viewer)
		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}

// RequireAdmin runs after RequireAuth and rejects non-admin viewers.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		viewer, ok := authctx.ViewerFrom(c.Request().Context())
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		}
		if viewer.Role != model.RoleAdmin {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "admin_only"})
		}
		return next(c)
	}
}

func (m *AuthMiddleware) Client() *auth.Client {
	return m.authClient
}
