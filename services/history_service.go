// services/history_service.go
package services

import (
	"strings"
	"time"

	"brando-backend/models"
	"brando-backend/utils"

	"gorm.io/gorm"
)

// HistoryService is the append-only per-user invoice log.
type HistoryService struct {
	db *gorm.DB
}

func NewHistoryService(db *gorm.DB) *HistoryService {
	return &HistoryService{db: db}
}

func (s *HistoryService) Append(record *models.Invoice) error {
	return s.db.Create(record).Error
}

// List returns the user's history sorted by creation time descending,
// narrowed by an optional free-text query and an inclusive day-granularity
// date range (YYYY-MM-DD on both ends).
func (s *HistoryService) List(username, query, startDate, endDate string) ([]models.Invoice, error) {
	var records []models.Invoice
	if err := s.db.Where("username = ?", username).
		Order("created_at DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}

	filtered := records[:0]
	for _, r := range records {
		if !matchesQuery(r, query) {
			continue
		}
		if !inDateRange(r.CreatedAt, startDate, endDate) {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered, nil
}

// Selected returns the records whose invoice number is in nos, in store order.
func (s *HistoryService) Selected(username string, nos []string) ([]models.Invoice, error) {
	var records []models.Invoice
	err := s.db.Where("username = ? AND invoice_no IN ?", username, nos).
		Order("created_at ASC").
		Find(&records).Error
	return records, err
}

func (s *HistoryService) Count(username string) (int64, error) {
	var n int64
	err := s.db.Model(&models.Invoice{}).Where("username = ?", username).Count(&n).Error
	return n, err
}

// matchesQuery does a case-insensitive substring match across invoice
// number, customer name, address and both phone fields.
func matchesQuery(r models.Invoice, query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	blob := strings.ToLower(strings.Join([]string{
		r.InvoiceNo, r.CustomerName, r.CustomerAddress,
		r.PhonePrimary, r.PhoneSecondary,
	}, " "))
	return strings.Contains(blob, query)
}

// inDateRange applies the inclusive [startDate 00:00:00, endDate 23:59:59]
// window. A record timestamp that does not parse passes every filter (fail
// open, preserved deliberately); a bound that does not parse is ignored.
func inDateRange(createdAt, startDate, endDate string) bool {
	if startDate == "" && endDate == "" {
		return true
	}
	ts, err := time.Parse(utils.TimestampLayout, createdAt)
	if err != nil {
		return true
	}
	if startDate != "" {
		if lower, err := time.Parse("2006-01-02", startDate); err == nil {
			if ts.Before(utils.BeginningOfDay(lower)) {
				return false
			}
		}
	}
	if endDate != "" {
		if upper, err := time.Parse("2006-01-02", endDate); err == nil {
			if ts.After(utils.EndOfDay(upper)) {
				return false
			}
		}
	}
	return true
}
