package api

import (
	"context"
	"net/http"
	"strconv"

	"fueleu_compliance/internal/app/ds"
	"fueleu_compliance/internal/app/service"

	"github.com/gin-gonic/gin"
)

type PoolHandler struct {
	Service interface {
		CreatePool(ctx context.Context, year int, shipIDs []string) (service.PoolResult, error)
		GetPool(ctx context.Context, id int) (ds.Pool, error)
	}
}

type poolRequest struct {
	Year    int `json:"year" binding:"required,gt=0"`
	Members []struct {
		ShipID string `json:"shipId" binding:"required"`
	} `json:"members" binding:"required,min=1,dive"`
}

// CreatePoolAPI - POST /pools - создать пул

// @Summary Create a pool
// @Description Pool the adjusted compliance balances of the members (Article 21)
// @Tags pools
// @Accept json
// @Produce json
// @Param request body object{year=int,members=[]object{shipId=string}} true "Pool members"
// @Success 200 {object} service.PoolResult
// @Failure 400 {object} object "error: string"
// @Failure 404 {object} object "error: string"
// @Failure 422 {object} object "error: string"
// @Router /pools [post]
func (h *PoolHandler) CreatePoolAPI(c *gin.Context) {
	var req poolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "year and members (array of {shipId}) are required",
		})
		return
	}

	shipIDs := make([]string, 0, len(req.Members))
	for _, m := range req.Members {
		shipIDs = append(shipIDs, m.ShipID)
	}

	result, err := h.Service.CreatePool(c.Request.Context(), req.Year, shipIDs)
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetPoolAPI - GET /pools/:id - один пул с участниками

// @Summary Get a pool
// @Description Retrieve a created pool with its members
// @Tags pools
// @Produce json
// @Param id path int true "Pool ID"
// @Success 200 {object} ds.Pool
// @Failure 400 {object} object "error: string"
// @Failure 404 {object} object "error: string"
// @Router /pools/{id} [get]
func (h *PoolHandler) GetPoolAPI(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid pool ID",
		})
		return
	}

	pool, err := h.Service.GetPool(c.Request.Context(), id)
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, pool)
}
