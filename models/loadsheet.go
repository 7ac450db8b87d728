package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
)

// LoadSheet is one generated batch export. The ID doubles as the base name
// of the three artifact files ({username}_loadsheet_{stamp}).
type LoadSheet struct {
	ID     string    `gorm:"primary_key" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"-"`

	Username   string     `gorm:"index;not null" json:"-"`
	InvoiceNos StringList `gorm:"type:jsonb;not null;default:'[]'" json:"invoiceNos"`

	PDFPath  string `json:"-"`
	CSVPath  string `json:"-"`
	XLSXPath string `json:"-"`

	// Same second-precision string form as Invoice.CreatedAt.
	CreatedAt string `gorm:"index;not null" json:"createdAt"`
}

// Custom JSONB type for the invoice number list
type StringList []string

func (s StringList) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *StringList) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, s)
}
