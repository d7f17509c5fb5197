package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/boipoka/storefront/docs"
	"github.com/boipoka/storefront/internal/api/handler"
	"github.com/boipoka/storefront/internal/api/middleware"
	"github.com/boipoka/storefront/internal/core/service"
	redisdb "github.com/boipoka/storefront/internal/infrastructure/db/redis"
	"github.com/boipoka/storefront/internal/pkg/config"
	"github.com/boipoka/storefront/internal/store"
	"github.com/boipoka/storefront/internal/upstream"
	"github.com/boipoka/storefront/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, rdb *redis.Client, sessions *store.Store) *echo.Echo {
	log := logger.Get()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("storefront"))

	// --- Dependencies ---
	client := upstream.New(upstream.Config{
		BaseURL: cfg.Upstream.BaseURL,
		Timeout: cfg.Upstream.Timeout,
	}, log)

	accountService := service.NewAccountService(upstream.NewAccountGateway(client), cfg.JWTSecret, cfg.SessionTTL, log)
	catalogService := service.NewCatalogService(upstream.NewCatalogGateway(client))
	blogService := service.NewBlogService(upstream.NewBlogGateway(client))
	cartService := service.NewCartService(upstream.NewCartGateway(client), log)
	checkoutService := service.NewCheckoutService(
		upstream.NewCartGateway(client),
		upstream.NewCheckoutGateway(client),
		redisdb.NewReplayStore(rdb),
		log,
	)
	libraryService := service.NewLibraryService(upstream.NewLibraryGateway(client), log)

	accountHandler := handler.NewAccountHandler(accountService, sessions)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	blogHandler := handler.NewBlogHandler(blogService)
	cartHandler := handler.NewCartHandler(cartService)
	checkoutHandler := handler.NewCheckoutHandler(checkoutService)
	libraryHandler := handler.NewLibraryHandler(libraryService)

	// --- Public routes ---
	e.GET("/books", catalogHandler.ListBooks)
	e.GET("/books/:slug", catalogHandler.GetBook)
	e.GET("/blog", blogHandler.ListPosts)
	e.GET("/blog/:id", blogHandler.GetPost)

	e.POST("/auth/login", accountHandler.Login)
	e.POST("/auth/register", accountHandler.Register)
	e.POST("/auth/verify-email", accountHandler.VerifyEmail)
	e.POST("/auth/resend-code", accountHandler.ResendCode)
	e.POST("/auth/forgot-password", accountHandler.ForgotPassword)
	e.POST("/auth/reset-password", accountHandler.ResetPassword)

	// --- Session-scoped routes ---
	authed := e.Group("", middleware.Session(cfg.JWTSecret, sessions))

	authed.POST("/auth/logout", accountHandler.Logout)
	authed.GET("/auth/session", accountHandler.SessionInfo)
	authed.GET("/me", accountHandler.Me)
	authed.PATCH("/me", accountHandler.UpdateMe)
	authed.GET("/me/addresses", accountHandler.ListAddresses)
	authed.POST("/me/addresses", accountHandler.CreateAddress)
	authed.PUT("/me/addresses/:id", accountHandler.UpdateAddress)
	authed.DELETE("/me/addresses/:id", accountHandler.DeleteAddress)

	authed.GET("/cart", cartHandler.Get)
	authed.POST("/cart/items", cartHandler.AddItem)
	authed.PATCH("/cart/items/:id", cartHandler.UpdateItem)
	authed.DELETE("/cart/items/:id", cartHandler.RemoveItem)

	authed.POST("/checkout/coupon", checkoutHandler.ApplyCoupon)
	authed.POST("/checkout", checkoutHandler.Checkout)

	authed.GET("/library", libraryHandler.List)
	authed.POST("/library/:id/download-link", libraryHandler.DownloadLink)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
