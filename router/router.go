package router

import (
	"fmt"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"resell-dashboard/controllers/api"
	"resell-dashboard/controllers/health"
	"resell-dashboard/controllers/pages"
	"resell-dashboard/inout"
	"resell-dashboard/middleware"
	"resell-dashboard/model"
	"resell-dashboard/pkg/config"
	"resell-dashboard/pkg/jwt"
	"resell-dashboard/pkg/monitoring"
	"resell-dashboard/pkg/session"
	"resell-dashboard/redis"
	"resell-dashboard/services"
	"resell-dashboard/web"
)

// Deps are the process-wide handles the routes are built from.
type Deps struct {
	Config   *config.Config
	Log      *zap.Logger
	DB       *gorm.DB
	Redis    *goredis.Client // nil when redis is disabled
	Services *services.Service
	Sessions sessions.Store
}

// New 初始化路由
func New(d Deps) (*gin.Engine, error) {
	inout.SetupValidator()

	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)

	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(d.Log))
	r.Use(middleware.SecureHeaders())
	r.Use(middleware.RequestLogger(d.Log))
	r.Use(middleware.Performance(d.Log, middleware.DefaultPerformanceConfig()))
	r.Use(monitoring.PrometheusMiddleware())

	if d.Config.Security.EnableRateLimit {
		if d.Redis != nil {
			limiter := redis.NewRateLimiter(d.Redis, "ratelimit", d.Config.Security.RateLimit, time.Minute)
			r.Use(middleware.SharedRateLimit(limiter, d.Log))
		} else {
			r.Use(middleware.RateLimit(d.Config.Security.RateLimit))
		}
	}

	hc := health.NewHealthController(d.DB, d.Redis, model.DefaultAppVersion)
	r.GET("/health", hc.CheckHealth)
	r.GET("/health/live", hc.CheckLiveness)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.Use(session.Middleware(d.Config.Session.Name, d.Sessions))

	auth := d.Config.Auth
	pc := pages.New(d.Services, d.Log, pages.Auth{PasswordHash: auth.PasswordHash})

	var tokens *jwt.Manager
	if auth.Enabled() {
		tokens = jwt.NewManager(auth.JWTSigningKey, auth.JWTIssuer, auth.JWTExpiry)
	}
	ac := api.New(d.Services, d.Log, auth.PasswordHash, tokens)

	r.GET("/login", pc.LoginForm)
	r.POST("/login", pc.Login)
	r.POST("/logout", pc.Logout)
	r.POST("/api/token", ac.Token)

	apiGroup := r.Group("/api")
	if tokens != nil {
		apiGroup.Use(middleware.RequireToken(tokens))
	}
	{
		apiGroup.GET("/dashboard", ac.Dashboard)
		apiGroup.GET("/system", hc.GetSystemInfo)
	}

	app := r.Group("")
	if auth.Enabled() {
		app.Use(middleware.RequireLogin())
	}
	{
		app.GET("/", pc.Dashboard)

		app.GET("/inventory", pc.Inventory)
		app.GET("/inventory/add", pc.AddInventoryForm)
		app.POST("/inventory/add", pc.AddInventory)
		app.GET("/inventory/edit/:id", pc.EditInventoryForm)
		app.POST("/inventory/edit/:id", pc.EditInventory)
		app.POST("/inventory/delete/:id", pc.DeleteInventory)
		app.GET("/inventory/export", pc.ExportInventory)

		app.GET("/sales", pc.Sales)
		app.GET("/sales/add", pc.AddSaleForm)
		app.POST("/sales/add", pc.AddSale)
		app.GET("/sales/edit/:id", pc.EditSaleForm)
		app.POST("/sales/edit/:id", pc.EditSale)
		app.POST("/sales/delete/:id", pc.DeleteSale)
		app.GET("/sales/export", pc.ExportSales)

		app.GET("/shipping", pc.Shipping)
		app.POST("/shipping/add", pc.AddShipment)
		app.POST("/shipping/update/:id", pc.UpdateShipment)
		app.POST("/shipping/delete/:id", pc.DeleteShipment)

		app.GET("/returns", pc.Returns)
		app.GET("/returns/add", pc.AddReturnForm)
		app.POST("/returns/add", pc.AddReturn)
		app.POST("/returns/update/:id", pc.UpdateReturn)
		app.POST("/returns/delete/:id", pc.DeleteReturn)

		app.GET("/tasks", pc.Tasks)
		app.POST("/tasks/add", pc.AddTask)
		app.POST("/tasks/update/:id", pc.UpdateTask)
		app.POST("/tasks/delete/:id", pc.DeleteTask)

		app.GET("/settings", pc.Settings)
		app.POST("/settings/update", pc.UpdateSettings)
	}

	return r, nil
}
