package api

import (
	"net/http"
	"strconv"
	"strings"

	"fueleu_compliance/internal/app/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// errorResponse maps a service error kind onto an HTTP status.
func errorResponse(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch service.KindOf(err) {
	case service.KindValidation:
		status = http.StatusBadRequest
	case service.KindNotFound:
		status = http.StatusNotFound
	case service.KindPrecondition:
		status = http.StatusUnprocessableEntity
	}

	entry := logrus.WithFields(logrus.Fields{
		"path":   c.FullPath(),
		"status": status,
	})
	if status == http.StatusInternalServerError {
		entry.Error(err.Error())
	} else {
		entry.Info(err.Error())
	}

	c.JSON(status, gin.H{
		"error": err.Error(),
	})
}

// shipYearQuery читает обязательные shipId и year из query-параметров
func shipYearQuery(c *gin.Context) (string, int, bool) {
	shipID := strings.TrimSpace(c.Query("shipId"))
	year, err := strconv.Atoi(c.Query("year"))
	if shipID == "" || err != nil || year <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "shipId and year are required",
		})
		return "", 0, false
	}
	return shipID, year, true
}
