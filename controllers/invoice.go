// controllers/invoice.go
package controllers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"brando-backend/config"
	"brando-backend/documents"
	"brando-backend/models"
	"brando-backend/services"
	"brando-backend/utils"

	"github.com/gin-gonic/gin"
)

type LineItemInput struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

// GenerateInvoiceInput defines the expected JSON structure for creating an invoice
type GenerateInvoiceInput struct {
	CustomerName    string          `json:"customerName"`
	CustomerAddress string          `json:"customerAddress"`
	InvoiceNo       string          `json:"invoiceNo"` // optional manual number
	PhonePrimary    string          `json:"phonePrimary" binding:"required"`
	PhoneSecondary  string          `json:"phoneSecondary"`
	Items           []LineItemInput `json:"items" binding:"required"`
}

// GenerateInvoice issues a number, renders the PDF, stores the history
// record and answers with the persisted summary.
func GenerateInvoice(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var input GenerateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	phonePrimary := strings.TrimSpace(input.PhonePrimary)
	if !utils.ValidatePrimaryPhone(phonePrimary) {
		utils.RespondWithError(c, http.StatusBadRequest,
			"Primary phone must be exactly 11 digits and start with 03 (e.g., 03XXXXXXXXX).")
		return
	}

	// Rows where both fields are blank are filler from the form, not items
	var items []models.LineItem
	for _, it := range input.Items {
		if strings.TrimSpace(it.Name) == "" && strings.TrimSpace(it.Price) == "" {
			continue
		}
		items = append(items, models.LineItem{Name: strings.TrimSpace(it.Name), Price: it.Price})
	}
	if len(items) == 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Please add at least one product.")
		return
	}

	numbering := services.NewNumberingService(config.DB)
	invoiceNo, err := numbering.Issue(user.Username, strings.TrimSpace(input.InvoiceNo))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to issue invoice number")
		return
	}

	meta := documents.InvoiceMeta{
		InvoiceNo:       invoiceNo,
		Date:            utils.HumanNow(),
		CustomerName:    strings.TrimSpace(input.CustomerName),
		CustomerAddress: strings.TrimSpace(input.CustomerAddress),
		PhonePrimary:    phonePrimary,
		PhoneSecondary:  strings.TrimSpace(input.PhoneSecondary),
	}

	pdfBytes, err := documents.RenderInvoicePDF(config.CompanyName(), meta, items, config.LogoPath(), "PKR")
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to render invoice PDF")
		return
	}

	if err := os.MkdirAll(config.DataDir(), 0o755); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to prepare storage")
		return
	}
	pdfPath := filepath.Join(config.DataDir(), fmt.Sprintf("%s_%s.pdf", user.Username, invoiceNo))
	if err := os.WriteFile(pdfPath, pdfBytes, 0o644); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to store invoice PDF")
		return
	}

	record := models.Invoice{
		UserID:          user.ID,
		Username:        user.Username,
		InvoiceNo:       invoiceNo,
		CustomerName:    meta.CustomerName,
		CustomerAddress: meta.CustomerAddress,
		PhonePrimary:    meta.PhonePrimary,
		PhoneSecondary:  meta.PhoneSecondary,
		Total:           documents.ItemsTotal(items),
		CreatedAt:       meta.Date,
	}
	if err := services.NewHistoryService(config.DB).Append(&record); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to record invoice")
		return
	}

	go services.NewNotifyService().SendInvoiceSMS(
		config.CompanyName(), record.PhonePrimary, record.InvoiceNo, record.Total.StringFixed(2))

	c.JSON(http.StatusCreated, record)
}

// ServeInvoicePDF streams a previously generated bill inline.
func ServeInvoicePDF(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	invoiceNo := c.Param("invoiceNo")
	pdfPath := filepath.Join(config.DataDir(), fmt.Sprintf("%s_%s.pdf", user.Username, invoiceNo))
	if _, err := os.Stat(pdfPath); err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", invoiceNo+".pdf"))
	c.Header("Cache-Control", "no-store")
	c.File(pdfPath)
}
