// Package rest — HTTP-транспорт поверх use case-слоя.
// Хендлеры не знают про репозитории и кэш: всё через интерфейсы ports.
package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/Gunvolt24/riskgate/internal/ports"
	"github.com/Gunvolt24/riskgate/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

type Handler struct {
	users     ports.UserUseCase
	products  ports.ProductUseCase
	customers ports.CustomerValidationUseCase
	log       ports.Logger
	timeout   time.Duration // 0 — без ограничения на обработку запроса
}

func NewHandler(
	users ports.UserUseCase,
	products ports.ProductUseCase,
	customers ports.CustomerValidationUseCase,
	log ports.Logger,
	timeout time.Duration,
) *Handler {
	return &Handler{users: users, products: products, customers: customers, log: log, timeout: timeout}
}

// NewRouter — собирает маршруты; otelServiceName != "" включает otelgin.
func NewRouter(h *Handler, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(httpx.RequestIDMiddleware())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestLogger(h.log))

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	users := r.Group("/users")
	{
		users.POST("", h.createUser)
		users.GET("", h.listActiveUsers)
		users.GET("/:id", h.getUserByID)
		users.PATCH("/:id/status", h.changeUserStatus)
		users.DELETE("/:id", h.deleteUser)
	}

	products := r.Group("/products")
	{
		products.POST("", h.createProduct)
		products.GET("", h.listProductsByCategory)
		products.GET("/active", h.listActiveProducts)
		products.GET("/:id", h.getProductByID)
		products.PATCH("/:id/stock", h.updateProductStock)
		products.DELETE("/:id", h.deleteProduct)
	}

	customers := r.Group("/customers")
	{
		customers.GET("/:id", h.getCustomerInfo)
		customers.GET("/:id/can-operate", h.customerCanOperate)
		customers.GET("/:id/risk-level", h.customerRiskLevel)
		customers.GET("/:id/validation", h.customerValidation)
		customers.GET("/:id/summary", h.customerSummary)
	}

	return r
}

// reqCtx — контекст запроса с таймаутом обработки (если задан).
func (h *Handler) reqCtx(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return c.Request.Context(), func() {}
	}
	return context.WithTimeout(c.Request.Context(), h.timeout)
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

func notFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"error": msg})
}

func internalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
