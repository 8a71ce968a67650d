package api

import (
	"context"
	"net/http"

	"fueleu_compliance/internal/app/service"

	"github.com/gin-gonic/gin"
)

type ComplianceHandler struct {
	Service interface {
		GetOrComputeCB(ctx context.Context, shipID string, year int) (service.CBResult, error)
		ComputeCB(ctx context.Context, shipID string, year int) (service.CBResult, error)
		GetAdjustedCB(ctx context.Context, shipID string, year int) (service.AdjustedCB, error)
	}
}

type shipYearRequest struct {
	ShipID string `json:"shipId" binding:"required"`
	Year   int    `json:"year" binding:"required,gt=0"`
}

// GetCBAPI - GET /compliance/cb - баланс, считается при первом запросе

// @Summary Get compliance balance
// @Description Cached base CB of a ship for a year; computed from routes on first access
// @Tags compliance
// @Produce json
// @Param shipId query string true "Ship ID"
// @Param year query int true "Year"
// @Success 200 {object} service.CBResult
// @Failure 400 {object} object "error: string"
// @Failure 404 {object} object "error: string"
// @Router /compliance/cb [get]
func (h *ComplianceHandler) GetCBAPI(c *gin.Context) {
	shipID, year, ok := shipYearQuery(c)
	if !ok {
		return
	}

	cb, err := h.Service.GetOrComputeCB(c.Request.Context(), shipID, year)
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, cb)
}

// ComputeCBAPI - POST /compliance/cb/compute - пересчёт баланса

// @Summary Recompute compliance balance
// @Description Recompute the base CB from routes and overwrite the cached value
// @Tags compliance
// @Accept json
// @Produce json
// @Param request body object{shipId=string,year=int} true "Ship and year"
// @Success 200 {object} service.CBResult
// @Failure 400 {object} object "error: string"
// @Failure 404 {object} object "error: string"
// @Router /compliance/cb/compute [post]
func (h *ComplianceHandler) ComputeCBAPI(c *gin.Context) {
	var req shipYearRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	cb, err := h.Service.ComputeCB(c.Request.Context(), req.ShipID, req.Year)
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, cb)
}

// GetAdjustedCBAPI - GET /compliance/adjusted-cb - баланс с учётом банка

// @Summary Get adjusted compliance balance
// @Description Base CB plus the net banked amount; the figure used for pooling
// @Tags compliance
// @Produce json
// @Param shipId query string true "Ship ID"
// @Param year query int true "Year"
// @Success 200 {object} service.AdjustedCB
// @Failure 400 {object} object "error: string"
// @Failure 404 {object} object "error: string"
// @Router /compliance/adjusted-cb [get]
func (h *ComplianceHandler) GetAdjustedCBAPI(c *gin.Context) {
	shipID, year, ok := shipYearQuery(c)
	if !ok {
		return
	}

	adjusted, err := h.Service.GetAdjustedCB(c.Request.Context(), shipID, year)
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, adjusted)
}
