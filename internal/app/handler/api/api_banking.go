package api

import (
	"context"
	"net/http"

	"fueleu_compliance/internal/app/ds"
	"fueleu_compliance/internal/app/service"

	"github.com/gin-gonic/gin"
)

type BankingHandler struct {
	Service interface {
		BankRecords(ctx context.Context, shipID string, year int) ([]ds.BankEntry, error)
		Bank(ctx context.Context, shipID string, year int, amount float64) (service.BankResult, error)
		BankAll(ctx context.Context, shipID string, year int) (service.BankResult, error)
		Apply(ctx context.Context, shipID string, year int, amount float64) (service.ApplyResult, error)
	}
}

type amountRequest struct {
	ShipID string  `json:"shipId" binding:"required"`
	Year   int     `json:"year" binding:"required,gt=0"`
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// GetBankRecordsAPI - GET /banking/records - записи банка

// @Summary List bank ledger entries
// @Description Signed ledger entries of a ship for a year: positive banked, negative applied
// @Tags banking
// @Produce json
// @Param shipId query string true "Ship ID"
// @Param year query int true "Year"
// @Success 200 {array} ds.BankEntry
// @Failure 400 {object} object "error: string"
// @Router /banking/records [get]
func (h *BankingHandler) GetBankRecordsAPI(c *gin.Context) {
	shipID, year, ok := shipYearQuery(c)
	if !ok {
		return
	}

	records, err := h.Service.BankRecords(c.Request.Context(), shipID, year)
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}

// BankAPI - POST /banking/bank - отложить профицит

// @Summary Bank surplus
// @Description Bank part of the positive compliance balance (Article 20)
// @Tags banking
// @Accept json
// @Produce json
// @Param request body object{shipId=string,year=int,amount=number} true "Amount to bank"
// @Success 200 {object} service.BankResult
// @Failure 400 {object} object "error: string"
// @Failure 404 {object} object "error: string"
// @Failure 422 {object} object "error: string"
// @Router /banking/bank [post]
func (h *BankingHandler) BankAPI(c *gin.Context) {
	var req amountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	result, err := h.Service.Bank(c.Request.Context(), req.ShipID, req.Year, req.Amount)
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// BankAllAPI - POST /banking/bank-all - отложить весь доступный профицит

// @Summary Bank all available surplus
// @Description Bank the whole unbanked part of the positive compliance balance
// @Tags banking
// @Accept json
// @Produce json
// @Param request body object{shipId=string,year=int} true "Ship and year"
// @Success 200 {object} service.BankResult
// @Failure 400 {object} object "error: string"
// @Failure 404 {object} object "error: string"
// @Failure 422 {object} object "error: string"
// @Router /banking/bank-all [post]
func (h *BankingHandler) BankAllAPI(c *gin.Context) {
	var req shipYearRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	result, err := h.Service.BankAll(c.Request.Context(), req.ShipID, req.Year)
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ApplyAPI - POST /banking/apply - применить отложенный профицит

// @Summary Apply banked surplus
// @Description Consume banked surplus and raise the recognised compliance balance
// @Tags banking
// @Accept json
// @Produce json
// @Param request body object{shipId=string,year=int,amount=number} true "Amount to apply"
// @Success 200 {object} service.ApplyResult
// @Failure 400 {object} object "error: string"
// @Failure 404 {object} object "error: string"
// @Failure 422 {object} object "error: string"
// @Router /banking/apply [post]
func (h *BankingHandler) ApplyAPI(c *gin.Context) {
	var req amountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	result, err := h.Service.Apply(c.Request.Context(), req.ShipID, req.Year, req.Amount)
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
