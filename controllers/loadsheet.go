// controllers/loadsheet.go
package controllers

import (
	"errors"
	"net/http"
	"strings"

	"brando-backend/config"
	"brando-backend/services"
	"brando-backend/utils"

	"github.com/gin-gonic/gin"
)

type CreateLoadSheetInput struct {
	InvoiceNos []string `json:"invoiceNos" binding:"required,min=1"`
}

// CreateLoadSheet batches the selected invoices into a new load sheet with
// its three generated files.
func CreateLoadSheet(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var input CreateLoadSheetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Please select at least one invoice for the load sheet.")
		return
	}

	batch, err := services.NewLoadSheetService(config.DB).Create(user.ID, user.Username, input.InvoiceNos)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDuplicateInvoiceInBatch):
			utils.RespondWithError(c, http.StatusConflict, err.Error())
		case errors.Is(err, services.ErrNoMatchingInvoices):
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate load sheet")
		}
		return
	}

	c.JSON(http.StatusCreated, batch)
}

// GetLoadSheets lists the user's batches newest first, pruning expired ones
// on the way.
func GetLoadSheets(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	batches, err := services.NewLoadSheetService(config.DB).List(user.Username)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load load sheets")
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": batches})
}

// DownloadLoadSheet serves one generated file of a batch as an attachment.
func DownloadLoadSheet(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	batchID := c.Param("id")
	format := strings.ToLower(c.Param("format"))

	path, filename, err := services.NewLoadSheetService(config.DB).Download(user.Username, batchID, format)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrLoadSheetNotFound):
			utils.RespondWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, services.ErrUnknownFormat):
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to resolve load sheet")
		}
		return
	}

	c.FileAttachment(path, filename)
}
