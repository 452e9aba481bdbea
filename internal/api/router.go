package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/gestiondocumental/document-system/docs"
	"github.com/gestiondocumental/document-system/internal/api/handler"
	"github.com/gestiondocumental/document-system/internal/api/middleware"
	"github.com/gestiondocumental/document-system/internal/core/service"
	"github.com/gestiondocumental/document-system/internal/infrastructure/config"
	"github.com/gestiondocumental/document-system/internal/infrastructure/db/jsonfile"
	"github.com/gestiondocumental/document-system/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(store *jsonfile.Store, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("gestiondocs"))

	// --- Dependencies ---
	docRepo := jsonfile.NewDocumentRepository(store)
	userRepo := jsonfile.NewUserRepository(store)

	docService := service.NewDocumentService(docRepo, log)
	userService := service.NewUserService(userRepo, log)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL, log)

	authHandler := handler.NewAuthHandler(authService)
	docHandler := handler.NewDocumentHandler(docService)
	userHandler := handler.NewUserHandler(userService)

	// Available for deployments that gate the API behind a token. The
	// default routes stay open.
	authMiddleware := middleware.Auth(cfg.JWTSecret)
	_ = authMiddleware

	// --- Auth routes ---
	e.POST("/api/auth/authenticate", authHandler.Authenticate)

	// --- Document routes ---
	e.GET("/api/documents", docHandler.List)
	e.POST("/api/documents", docHandler.Create)
	e.PUT("/api/documents/:id", docHandler.Update)
	e.DELETE("/api/documents/:id", docHandler.Delete)

	// --- User routes ---
	e.GET("/api/users", userHandler.List)
	e.POST("/api/users", userHandler.Create)
	e.PUT("/api/users/:id", userHandler.Update)
	e.DELETE("/api/users/:id", userHandler.Delete)

	// --- Operational surface ---
	healthHandler := handlers.NewHealthHandler()
	readinessHandler := handlers.NewReadinessHandler(store.Dir())

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
