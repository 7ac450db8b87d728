package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Invoice is one history record: the persisted summary of a generated bill.
// Records are immutable once written; only the aggregate total survives,
// individual line items exist only while the PDF is rendered.
type Invoice struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"-"`

	InvoiceNo       string `gorm:"index;not null" json:"invoiceNo"`
	Username        string `gorm:"index;not null" json:"-"`
	CustomerName    string `json:"customerName"`
	CustomerAddress string `json:"customerAddress"`
	PhonePrimary    string `gorm:"not null" json:"phonePrimary"`
	PhoneSecondary  string `json:"phoneSecondary"`

	Total decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total"`

	// CreatedAt keeps the original "2006-01-02 15:04:05" string form so that
	// range filtering stays fail-open for unparsable values and daily
	// aggregation can truncate to the first ten characters.
	CreatedAt string `gorm:"index;not null" json:"createdAt"`
}

func (i *Invoice) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return
}

// LineItem is a transient invoice line: it is rendered into the PDF and
// summed into Invoice.Total but never persisted on its own. Price arrives
// as the raw form value; non-numeric input coerces to zero.
type LineItem struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}
