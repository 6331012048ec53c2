package server

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/jspsoluciones/raffle-backend/internal/config"
	"github.com/jspsoluciones/raffle-backend/internal/handler"
	appmw "github.com/jspsoluciones/raffle-backend/internal/middleware"
	"github.com/jspsoluciones/raffle-backend/internal/repository"
	"github.com/jspsoluciones/raffle-backend/internal/service"
	"github.com/jspsoluciones/raffle-backend/internal/storage"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

type Server struct {
	e     *echo.Echo
	sha   string
	build string
}

func New(db *gorm.DB, cfg *config.Config, sha, buildTime string) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		AllowOriginFunc: func(origin string) (bool, error) {
			low := strings.ToLower(origin)
			if strings.HasPrefix(low, "http://localhost:") || strings.HasPrefix(low, "http://127.0.0.1:") ||
				strings.HasPrefix(low, "https://localhost:") || strings.HasPrefix(low, "https://127.0.0.1:") {
				return true, nil
			}
			u, err := url.Parse(origin)
			if err != nil {
				return false, nil
			}
			if u.Scheme != "http" && u.Scheme != "https" {
				return false, nil
			}
			host := u.Hostname()
			if strings.HasSuffix(host, "vercel.app") {
				return true, nil
			}
			return false, nil
		},
	}))

	numberRepo := repository.NewNumberRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	notifySvc := service.NewNotificationService(notificationRepo)
	ledgerSvc := service.NewLedgerService(db)
	requestSvc := service.NewRequestService(db, notifySvc)
	saleSvc := service.NewSaleService(db, notifySvc)
	statsSvc := service.NewStatsService(numberRepo, settingsRepo, profileRepo)

	var uploader *storage.Uploader
	if cfg.StorageBucket != "" {
		up, err := storage.NewUploader(context.Background(), cfg.StorageBucket, cfg.GoogleCredentialsFile)
		if err != nil {
			log.Printf("storage uploader init failed; image upload disabled: %v", err)
		} else {
			uploader = up
		}
	}
	settingsSvc := service.NewSettingsService(settingsRepo, uploader)

	numberHandler := handler.NewNumberHandler(ledgerSvc)
	requestHandler := handler.NewRequestHandler(requestSvc)
	saleHandler := handler.NewSaleHandler(saleSvc)
	settingsHandler := handler.NewSettingsHandler(settingsSvc)
	sellerHandler := handler.NewSellerHandler(profileRepo)
	statsHandler := handler.NewStatsHandler(statsSvc)
	notificationHandler := handler.NewNotificationHandler(notifySvc)

	var authMw *appmw.AuthMiddleware
	if cfg.FirebaseProjectID != "" {
		mw, err := appmw.NewAuthMiddleware(context.Background(), cfg.FirebaseProjectID, profileRepo)
		if err != nil {
			log.Printf("firebase auth init failed; running without auth: %v", err)
		} else {
			authMw = mw
		}
	}

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"ok":         "true",
			"git_sha":    sha,
			"build_time": buildTime,
		})
	})

	api := e.Group("/api")
	api.GET("/numbers", numberHandler.List)
	api.GET("/numbers/:number", numberHandler.Get)
	api.GET("/settings", settingsHandler.Get)
	api.POST("/requests", requestHandler.Create)

	if authMw != nil {
		api.GET("/requests", requestHandler.List, authMw.RequireAuth)
		api.POST("/requests/:id/approve", requestHandler.Approve, authMw.RequireAuth)
		api.POST("/requests/:id/reject", requestHandler.Reject, authMw.RequireAuth)
		api.POST("/sales", saleHandler.Register, authMw.RequireAuth)
		api.POST("/numbers/assign", numberHandler.AssignSeller, authMw.RequireAuth)
		api.POST("/numbers/assign-range", numberHandler.AssignRange, authMw.RequireAuth)
		api.GET("/sellers", sellerHandler.List, authMw.RequireAuth)
		api.GET("/stats", statsHandler.Summary, authMw.RequireAuth)
		api.GET("/notifications", notificationHandler.List, authMw.RequireAuth)
		api.POST("/notifications/read", notificationHandler.MarkAllRead, authMw.RequireAuth)
		api.PUT("/settings", settingsHandler.Update, authMw.RequireAuth, authMw.RequireAdmin)
		api.POST("/settings/image", settingsHandler.UploadImage, authMw.RequireAuth, authMw.RequireAdmin)
	} else {
		api.GET("/requests", requestHandler.List)
		api.POST("/requests/:id/approve", requestHandler.Approve)
		api.POST("/requests/:id/reject", requestHandler.Reject)
		api.POST("/sales", saleHandler.Register)
		api.POST("/numbers/assign", numberHandler.AssignSeller)
		api.POST("/numbers/assign-range", numberHandler.AssignRange)
		api.GET("/sellers", sellerHandler.List)
		api.GET("/stats", statsHandler.Summary)
		api.GET("/notifications", notificationHandler.List)
		api.POST("/notifications/read", notificationHandler.MarkAllRead)
		api.PUT("/settings", settingsHandler.Update)
		api.POST("/settings/image", settingsHandler.UploadImage)
	}

	return &Server{e: e, sha: sha, build: buildTime}
}

func (s *Server) Start(addr string) error {
	return s.e.Start(addr)
}
