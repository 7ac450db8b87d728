// controllers/dashboard.go
package controllers

import (
	"net/http"
	"os"

	"brando-backend/config"
	"brando-backend/models"
	"brando-backend/services"
	"brando-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetDashboardOverview backs the landing screen: how many bills this user
// has issued, what number comes next and whether a logo will be printed.
func GetDashboardOverview(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	historyCount, err := services.NewHistoryService(config.DB).Count(user.Username)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}

	var loadSheetCount int64
	config.DB.Model(&models.LoadSheet{}).Where("username = ?", user.Username).Count(&loadSheetCount)

	var recent []models.Invoice
	config.DB.Where("username = ?", user.Username).
		Order("created_at DESC").
		Limit(5).
		Find(&recent)

	hasLogo := false
	if _, err := os.Stat(config.LogoPath()); err == nil {
		hasLogo = true
	}

	c.JSON(http.StatusOK, gin.H{
		"historyCount":   historyCount,
		"loadSheetCount": loadSheetCount,
		"nextNumber":     user.NextNumber,
		"hasLogo":        hasLogo,
		"recentInvoices": recent,
	})
}
