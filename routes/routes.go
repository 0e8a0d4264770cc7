package routes

import (
	"net/http"
	"path/filepath"
	"strings"

	"fitmanager-backend/config"
	"fitmanager-backend/controllers"
	"fitmanager-backend/services"
	"fitmanager-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Deps is everything the router needs. Metrics may be nil.
type Deps struct {
	Config   *config.Config
	Services *services.Services
	Auth     *utils.Authenticator
	Logger   *zap.Logger
	Metrics  *config.Metrics
}

func SetupRouter(d Deps) *gin.Engine {
	utils.RegisterValidation()

	r := gin.New()
	// ClientIP keys the rate limiter; forwarded headers only count from configured proxies
	if err := r.SetTrustedProxies(d.Config.Server.TrustedProxies); err != nil {
		d.Logger.Error("Invalid trusted proxies, trusting none", zap.Error(err))
		_ = r.SetTrustedProxies(nil)
	}
	r.Use(gin.Recovery())
	r.Use(cors.New(corsConfig(d.Config.Server.CORSOrigins)))
	r.Use(config.PerformanceLogger(d.Logger, d.Config.Server.SlowRequestThreshold))
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware())
		r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}

	customerController := controllers.NewCustomerController(d.Services.Customers, d.Logger)
	packageController := controllers.NewPackageController(d.Services.Packages, d.Logger)
	customerPackageController := controllers.NewCustomerPackageController(d.Services.CustomerPackages, d.Logger)
	appointmentController := controllers.NewAppointmentController(d.Services.Appointments, d.Logger)
	paymentController := controllers.NewPaymentController(d.Services.Payments, d.Logger)
	dashboardController := controllers.NewDashboardController(d.Services.Dashboard, d.Logger)

	r.GET("/api/", controllers.Root)

	api := r.Group("/api")
	if rl := d.Config.RateLimit; rl.RPS > 0 {
		api.Use(utils.NewRateLimiter(rl.RPS, rl.Burst).Middleware())
	}
	api.Use(d.Auth.AuthMiddleware())
	{
		// Customer routes
		customers := api.Group("/customers")
		{
			customers.POST("", customerController.Create)
			customers.GET("", customerController.List)
			customers.GET("/:id", customerController.Get)
			customers.PUT("/:id", customerController.Update)
			customers.DELETE("/:id", customerController.Delete)
		}

		// Package routes
		packages := api.Group("/packages")
		{
			packages.POST("", packageController.Create)
			packages.GET("", packageController.List)
			packages.GET("/:id", packageController.Get)
			packages.PUT("/:id", packageController.Update)
			packages.DELETE("/:id", packageController.Delete)
		}

		// Customer package routes
		customerPackages := api.Group("/customer-packages")
		{
			customerPackages.POST("", customerPackageController.Create)
			customerPackages.GET("", customerPackageController.List)
			customerPackages.GET("/customer/:customerId", customerPackageController.ListByCustomer)
			customerPackages.GET("/:id", customerPackageController.Get)
			customerPackages.PUT("/:id", customerPackageController.Update)
			customerPackages.DELETE("/:id", customerPackageController.Delete)
		}

		// Appointment routes
		appointments := api.Group("/appointments")
		{
			appointments.POST("", appointmentController.Create)
			appointments.GET("", appointmentController.List)
			appointments.GET("/date/:date", appointmentController.ListByDate)
			appointments.GET("/:id", appointmentController.Get)
			appointments.PUT("/:id", appointmentController.Update)
			appointments.DELETE("/:id", appointmentController.Delete)
		}

		// Payment routes
		payments := api.Group("/payments")
		{
			payments.POST("", paymentController.Create)
			payments.GET("", paymentController.List)
			payments.GET("/customer-package/:customerPackageId", paymentController.ListByCustomerPackage)
			payments.GET("/:id", paymentController.Get)
			payments.PUT("/:id", paymentController.Update)
			payments.DELETE("/:id", paymentController.Delete)
		}

		// Dashboard routes
		api.GET("/dashboard/stats", dashboardController.GetStats)

		if d.Auth.TokensEnabled() {
			authController := controllers.NewAuthController(d.Auth, d.Logger)
			api.POST("/auth/token", authController.IssueToken)
		}
	}

	setupFrontend(r, d.Config.Server.StaticDir)

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
	}
	for _, origin := range origins {
		if origin == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}

// setupFrontend serves a built single page app from dir. Unknown paths under
// /api always get a JSON 404.
func setupFrontend(r *gin.Engine, dir string) {
	if dir != "" {
		r.Static("/static", filepath.Join(dir, "static"))
	}
	index := filepath.Join(dir, "index.html")

	r.NoRoute(func(c *gin.Context) {
		path := c.Request.URL.Path
		if dir == "" || c.Request.Method != http.MethodGet || path == "/api" || strings.HasPrefix(path, "/api/") {
			utils.RespondWithError(c, http.StatusNotFound, "Not found")
			return
		}
		c.File(index)
	})
}
