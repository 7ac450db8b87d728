// controllers/history.go
package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"brando-backend/config"
	"brando-backend/documents"
	"brando-backend/services"
	"brando-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetHistory lists the user's invoices, newest first, narrowed by the
// optional q / startDate / endDate query parameters.
func GetHistory(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	q := strings.TrimSpace(c.Query("q"))
	startDate := strings.TrimSpace(c.Query("startDate"))
	endDate := strings.TrimSpace(c.Query("endDate"))

	records, err := services.NewHistoryService(config.DB).List(user.Username, q, startDate, endDate)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load history")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": records,
		"count": len(records),
	})
}

// ExportHistory downloads the full history as CSV or XLSX.
func ExportHistory(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	format := strings.ToLower(c.DefaultQuery("format", "csv"))
	records, err := services.NewHistoryService(config.DB).List(user.Username, "", "", "")
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load history")
		return
	}

	stamp := time.Now().Format(utils.FileStampLayout)
	filename := fmt.Sprintf("%s_history_%s", user.Username, stamp)

	switch format {
	case "xlsx":
		data, err := documents.HistoryXLSX(records)
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to render export")
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename+".xlsx"))
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
	case "csv":
		data, err := documents.HistoryCSV(records)
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to render export")
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename+".csv"))
		c.Data(http.StatusOK, "text/csv", data)
	default:
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown format")
	}
}
