package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/trailatlas/trails-api/internal/api/handler"
	"github.com/trailatlas/trails-api/internal/api/middleware"
	"github.com/trailatlas/trails-api/internal/core/cache"
	"github.com/trailatlas/trails-api/internal/core/ports"
	"github.com/trailatlas/trails-api/internal/core/service"
	mongostore "github.com/trailatlas/trails-api/internal/infrastructure/db/mongo"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The query cache is constructed by the caller and shared for the process
// lifetime.
func NewRouter(db *mongo.Database, provider ports.RouteProvider, queryCache *cache.QueryCache, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	// --- Dependencies ---
	userRepo := mongostore.NewUserRepository(db)
	accounts := service.NewAccountService(userRepo, log)
	routes := service.NewRouteService(provider, queryCache, log)

	accountHandler := handler.NewAccountHandler(accounts)
	profileHandler := handler.NewProfileHandler(accounts)
	trackHandler := handler.NewTrackHandler(routes)
	authRequired := middleware.TokenAuth(accounts)

	// --- Account routes ---
	e.POST("/signup", accountHandler.Signup)
	e.POST("/signin", accountHandler.Signin)

	// --- Authenticated routes ---
	e.GET("/profile", profileHandler.Get, authRequired)
	e.POST("/profile", profileHandler.Update, authRequired)
	e.POST("/favorite", profileHandler.AddFavorite, authRequired)
	e.DELETE("/favorite", profileHandler.RemoveFavorite, authRequired)

	// --- Track search (public) ---
	e.GET("/tracks", trackHandler.Search)
	e.GET("/tracks/:id", trackHandler.GetByID)

	// --- Observability ---
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	return e
}
