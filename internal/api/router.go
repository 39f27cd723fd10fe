package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/fintrack/finance-system/docs" // swagger docs registration

	"github.com/fintrack/finance-system/internal/api/handler"
	"github.com/fintrack/finance-system/internal/api/middleware"
	"github.com/fintrack/finance-system/internal/core/ports"
)

// Dependencies carries everything the router needs wired in.
type Dependencies struct {
	Auth         ports.AuthService
	Transactions ports.TransactionService
	Goals        ports.GoalService
	Store        ports.KVStore
	JWTSecret    string
	Logger       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("finance"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	transactionHandler := handler.NewTransactionHandler(deps.Transactions)
	categoryHandler := handler.NewCategoryHandler(deps.Transactions)
	goalHandler := handler.NewGoalHandler(deps.Goals)
	authMiddleware := middleware.Auth(deps.JWTSecret)

	// --- Auth routes ---
	e.POST("/v1/auth/register", authHandler.Register)
	e.POST("/v1/auth/login", authHandler.Login)
	e.POST("/v1/auth/logout", authHandler.Logout)
	e.GET("/v1/session", authHandler.Session)

	// --- Categories (public: backs the picker before anything is recorded) ---
	e.GET("/v1/categories", categoryHandler.List)

	// --- Ledger routes (bearer token required) ---
	e.POST("/v1/transactions", transactionHandler.Create, authMiddleware)
	e.GET("/v1/transactions", transactionHandler.List, authMiddleware)
	e.GET("/v1/summary", transactionHandler.Summary, authMiddleware)
	e.GET("/v1/breakdown", transactionHandler.Breakdown, authMiddleware)
	e.POST("/v1/goals", goalHandler.Create, authMiddleware)
	e.GET("/v1/goals", goalHandler.List, authMiddleware)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Store)

	e.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – is the store up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
