// services/loadsheet_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"brando-backend/config"
	"brando-backend/documents"
	"brando-backend/models"
	"brando-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RetentionDays is how long generated load sheet files are kept.
const RetentionDays = 7

// LoadSheetService creates, lists, serves and prunes batch exports.
type LoadSheetService struct {
	db      *gorm.DB
	history *HistoryService
}

func NewLoadSheetService(db *gorm.DB) *LoadSheetService {
	return &LoadSheetService{db: db, history: NewHistoryService(db)}
}

// Create resolves the selected invoice numbers to history rows, renders the
// three formats and persists the batch. An invoice number may belong to at
// most one batch per user, checked against the union of all prior batches.
func (s *LoadSheetService) Create(userID uuid.UUID, username string, invoiceNos []string) (*models.LoadSheet, error) {
	var prior []models.LoadSheet
	if err := s.db.Where("username = ?", username).Find(&prior).Error; err != nil {
		return nil, err
	}
	selected := map[string]bool{}
	for _, no := range invoiceNos {
		selected[no] = true
	}
	for _, batch := range prior {
		for _, no := range batch.InvoiceNos {
			if selected[no] {
				return nil, ErrDuplicateInvoiceInBatch
			}
		}
	}

	rows, err := s.history.Selected(username, invoiceNos)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoMatchingInvoices
	}

	files, err := documents.RenderLoadSheet(config.CompanyName(), username, rows)
	if err != nil {
		return nil, err
	}

	dir := config.LoadSheetDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	baseName := fmt.Sprintf("%s_loadsheet_%s", username, time.Now().Format(utils.FileStampLayout))

	batch := models.LoadSheet{
		ID:        baseName,
		UserID:    userID,
		Username:  username,
		CreatedAt: utils.HumanNow(),
		PDFPath:   filepath.Join(dir, baseName+".pdf"),
		CSVPath:   filepath.Join(dir, baseName+".csv"),
		XLSXPath:  filepath.Join(dir, baseName+".xlsx"),
	}
	for _, r := range rows {
		batch.InvoiceNos = append(batch.InvoiceNos, r.InvoiceNo)
	}

	// Artifacts are rendered fully in memory and land in one write each,
	// so a half-written file is never served.
	if err := os.WriteFile(batch.PDFPath, files.PDF, 0o644); err != nil {
		return nil, err
	}
	if err := os.WriteFile(batch.CSVPath, files.CSV, 0o644); err != nil {
		return nil, err
	}
	if err := os.WriteFile(batch.XLSXPath, files.XLSX, 0o644); err != nil {
		return nil, err
	}

	if err := s.db.Create(&batch).Error; err != nil {
		return nil, err
	}
	return &batch, nil
}

// List prunes expired batches for the user, then returns the remainder
// sorted by creation time descending.
func (s *LoadSheetService) List(username string) ([]models.LoadSheet, error) {
	if err := s.Prune(username); err != nil {
		return nil, err
	}
	var batches []models.LoadSheet
	err := s.db.Where("username = ?", username).
		Order("created_at DESC").
		Find(&batches).Error
	return batches, err
}

// Download resolves a batch file path for serving.
func (s *LoadSheetService) Download(username, batchID, format string) (path, filename string, err error) {
	var batch models.LoadSheet
	if err := s.db.First(&batch, "username = ? AND id = ?", username, batchID).Error; err != nil {
		return "", "", ErrLoadSheetNotFound
	}
	switch format {
	case "pdf":
		return batch.PDFPath, batch.ID + ".pdf", nil
	case "csv":
		return batch.CSVPath, batch.ID + ".csv", nil
	case "xlsx":
		return batch.XLSXPath, batch.ID + ".xlsx", nil
	}
	return "", "", ErrUnknownFormat
}

// Prune drops batches older than RetentionDays whole days and removes their
// generated files best-effort; a file that cannot be deleted is ignored.
func (s *LoadSheetService) Prune(username string) error {
	var batches []models.LoadSheet
	if err := s.db.Where("username = ?", username).Find(&batches).Error; err != nil {
		return err
	}

	now := time.Now()
	for _, batch := range batches {
		created, err := time.Parse(utils.TimestampLayout, batch.CreatedAt)
		if err != nil {
			created = now
		}
		if utils.DaysBetween(created, now) <= RetentionDays {
			continue
		}
		for _, p := range []string{batch.PDFPath, batch.CSVPath, batch.XLSXPath} {
			if p != "" {
				_ = os.Remove(p)
			}
		}
		if err := s.db.Delete(&models.LoadSheet{}, "id = ?", batch.ID).Error; err != nil {
			return err
		}
	}
	return nil
}

// PruneAll sweeps every user; used by the nightly scheduler.
func (s *LoadSheetService) PruneAll() {
	var usernames []string
	if err := s.db.Model(&models.LoadSheet{}).Distinct("username").Pluck("username", &usernames).Error; err != nil {
		log.Printf("Load sheet sweep failed to list users: %v", err)
		return
	}
	for _, username := range usernames {
		if err := s.Prune(username); err != nil {
			log.Printf("Load sheet sweep failed for %s: %v", username, err)
		}
	}
}
