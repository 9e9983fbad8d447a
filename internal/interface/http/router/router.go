// Package router 注册HTTP路由和全局中间件
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/xiebiao/lanchonete/internal/infrastructure/config"
	"github.com/xiebiao/lanchonete/internal/interface/http/handler"
	"github.com/xiebiao/lanchonete/internal/interface/http/middleware"
	apperrors "github.com/xiebiao/lanchonete/pkg/errors"
	"github.com/xiebiao/lanchonete/pkg/response"
)

// Handlers 所有HTTP处理器
type Handlers struct {
	User    *handler.UserHandler
	Sale    *handler.SaleHandler
	Catalog *handler.CatalogHandler
	Report  *handler.ReportHandler
}

// New 创建Gin引擎
// 中间件顺序：Recovery → Tracing → Logger → Metrics → CORS，Logger需要Tracing写入的trace_id
func New(cfg *config.Config, logger *zap.Logger, h Handlers, auth *middleware.AuthMiddleware) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.Tracing(),
		middleware.Logger(logger),
		middleware.Metrics(),
		middleware.CORS(cfg.CORS),
	)

	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{"message": "pong", "status": "healthy"})
	})
	if cfg.Metrics.Enabled {
		r.GET(cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}
	// 生产环境不暴露接口文档
	if cfg.Server.Mode != "release" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
	r.NoRoute(func(c *gin.Context) {
		response.ErrorWithCode(c, apperrors.ErrCodeNotFound, "Endpoint não encontrado.")
	})

	v1 := r.Group("/api/v1")

	users := v1.Group("/users")
	{
		users.POST("/register", h.User.Register)
		users.POST("/login", h.User.Login)
		users.POST("/logout", auth.RequireAuth(), h.User.Logout)
		users.PUT("/:id/role", auth.RequireAuth(), auth.RequireAdmin(), h.User.AssignRole)
	}

	menu := v1.Group("/menu-products")
	{
		menu.GET("", auth.OptionalAuth(), h.Catalog.ListMenu)
		menu.POST("", auth.RequireAuth(), auth.RequireStaff(), h.Catalog.CreateProduct)
		menu.DELETE("/:id", auth.RequireAuth(), auth.RequireStaff(), h.Catalog.DeleteProduct)
	}

	stock := v1.Group("/stock/items", auth.RequireAuth(), auth.RequireStaff())
	{
		stock.POST("", h.Catalog.CreateStockItem)
		stock.POST("/:id/restock", h.Catalog.Restock)
		stock.GET("/:id/movements", h.Catalog.ListMovements)
	}

	// 下单允许匿名（柜台），其余订单操作都需要登录
	v1.POST("/sales", auth.OptionalAuth(), h.Sale.Create)
	sales := v1.Group("/sales", auth.RequireAuth())
	{
		sales.GET("/active", auth.RequireStaff(), h.Sale.ListActive)
		sales.GET("/:id", h.Sale.Get)
		sales.PUT("/:id", auth.RequireStaff(), h.Sale.UpdateStatus)
		sales.PATCH("/:id", auth.RequireStaff(), h.Sale.UpdateStatus)
		sales.DELETE("/:id", auth.RequireStaff(), h.Sale.Delete)
		sales.POST("/:id/confirm-payment", h.Sale.ConfirmPayment)
	}
	v1.GET("/my-orders", auth.RequireAuth(), h.Sale.ListMine)

	reports := v1.Group("/reports", auth.RequireAuth(), auth.RequireStaff())
	{
		reports.GET("/sales", h.Report.Sales)
		reports.GET("/product-profitability", h.Report.Profitability)
	}

	return r
}
