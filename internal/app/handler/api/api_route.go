package api

import (
	"context"
	"net/http"
	"strconv"

	"fueleu_compliance/internal/app/ds"
	"fueleu_compliance/internal/app/service"

	"github.com/gin-gonic/gin"
)

type RouteHandler struct {
	Service interface {
		ListRoutes(ctx context.Context, filter ds.RouteFilter) ([]ds.Route, error)
		CompareRoutes(ctx context.Context) ([]service.RouteComparison, error)
		SetBaseline(ctx context.Context, id int) (ds.Route, error)
	}
}

// GetRoutesAPI - GET /routes - список маршрутов с фильтрацией

// @Summary List routes
// @Description Retrieve routes, optionally filtered by vessel type, fuel type and year
// @Tags routes
// @Produce json
// @Param vesselType query string false "Vessel type"
// @Param fuelType query string false "Fuel type"
// @Param year query int false "Year"
// @Success 200 {array} ds.Route
// @Failure 400 {object} object "error: string"
// @Failure 500 {object} object "error: string"
// @Router /routes [get]
func (h *RouteHandler) GetRoutesAPI(c *gin.Context) {
	filter := ds.RouteFilter{
		VesselType: c.Query("vesselType"),
		FuelType:   c.Query("fuelType"),
	}

	if yearStr := c.Query("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid year",
			})
			return
		}
		filter.Year = &year
	}

	routes, err := h.Service.ListRoutes(c.Request.Context(), filter)
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, routes)
}

// GetComparisonAPI - GET /routes/comparison - сравнение с базовым маршрутом

// @Summary Compare routes against the baseline
// @Description Percent difference of GHG intensity against the baseline route and compliance balance of every route
// @Tags routes
// @Produce json
// @Success 200 {array} service.RouteComparison
// @Failure 404 {object} object "error: string"
// @Failure 500 {object} object "error: string"
// @Router /routes/comparison [get]
func (h *RouteHandler) GetComparisonAPI(c *gin.Context) {
	comparison, err := h.Service.CompareRoutes(c.Request.Context())
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, comparison)
}

// SetBaselineAPI - POST /routes/:id/baseline - назначить базовый маршрут

// @Summary Set the baseline route
// @Description Make the route the single baseline used for comparison
// @Tags routes
// @Produce json
// @Param id path int true "Route ID"
// @Success 200 {object} object "message: string, data: ds.Route"
// @Failure 400 {object} object "error: string"
// @Failure 404 {object} object "error: string"
// @Router /routes/{id}/baseline [post]
func (h *RouteHandler) SetBaselineAPI(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid route ID",
		})
		return
	}

	route, err := h.Service.SetBaseline(c.Request.Context(), id)
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Route " + strconv.Itoa(id) + " set as baseline.",
		"data":    route,
	})
}
