package handler

import (
	"net/http"

	"fueleu_compliance/internal/app/handler/api"
	"fueleu_compliance/internal/app/handler/middleware"
	"fueleu_compliance/internal/app/metrics"
	"fueleu_compliance/internal/app/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Handler struct {
	Service              *service.Service
	RouteAPIHandler      *api.RouteHandler
	ComplianceAPIHandler *api.ComplianceHandler
	BankingAPIHandler    *api.BankingHandler
	PoolAPIHandler       *api.PoolHandler
}

func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Service:              svc,
		RouteAPIHandler:      &api.RouteHandler{Service: svc},
		ComplianceAPIHandler: &api.ComplianceHandler{Service: svc},
		BankingAPIHandler:    &api.BankingHandler{Service: svc},
		PoolAPIHandler:       &api.PoolHandler{Service: svc},
	}
}

func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.Use(middleware.RequestID(), middleware.RequestLogger(), middleware.Metrics())

	router.GET("/health", h.Health)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Домен маршрутов
	routes := router.Group("/routes")
	{
		routes.GET("", h.RouteAPIHandler.GetRoutesAPI)
		routes.GET("/comparison", h.RouteAPIHandler.GetComparisonAPI)
		routes.POST("/:id/baseline", h.RouteAPIHandler.SetBaselineAPI)
	}

	// Домен баланса
	compliance := router.Group("/compliance")
	{
		compliance.GET("/cb", h.ComplianceAPIHandler.GetCBAPI)
		compliance.POST("/cb/compute", h.ComplianceAPIHandler.ComputeCBAPI)
		compliance.GET("/adjusted-cb", h.ComplianceAPIHandler.GetAdjustedCBAPI)
	}

	// Домен банка (статья 20)
	banking := router.Group("/banking")
	{
		banking.GET("/records", h.BankingAPIHandler.GetBankRecordsAPI)
		banking.POST("/bank", h.BankingAPIHandler.BankAPI)
		banking.POST("/bank-all", h.BankingAPIHandler.BankAllAPI)
		banking.POST("/apply", h.BankingAPIHandler.ApplyAPI)
	}

	// Домен пулов (статья 21)
	pools := router.Group("/pools")
	{
		pools.POST("", h.PoolAPIHandler.CreatePoolAPI)
		pools.GET("/:id", h.PoolAPIHandler.GetPoolAPI)
	}
}

// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} object "status: string"
// @Router /health [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}
