// services/numbering_service.go
package services

import (
	"errors"
	"strconv"

	"brando-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NumberingService issues per-user sequential invoice numbers.
type NumberingService struct {
	db *gorm.DB
}

func NewNumberingService(db *gorm.DB) *NumberingService {
	return &NumberingService{db: db}
}

// Issue returns the invoice number for a new bill. A non-empty manual
// override is returned verbatim and leaves the counter untouched; no
// uniqueness check is applied to manual numbers (accepted behavior, see
// DESIGN.md). Otherwise the user's counter value is returned and the
// counter advances by one. The read-increment-write runs under a row
// lock so concurrent requests for the same user cannot share a number.
func (s *NumberingService) Issue(username, manual string) (string, error) {
	if manual != "" {
		return manual, nil
	}

	var issued int
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&user, "username = ?", username).Error; err != nil {
			return err
		}

		issued = user.NextNumber
		if issued <= 0 {
			issued = models.DefaultStartNumber
		}
		return tx.Model(&models.User{}).Where("id = ?", user.ID).
			Update("next_number", issued+1).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Should not happen for an authenticated request; fall back
			// to the default without persisting anything.
			return strconv.Itoa(models.DefaultStartNumber), nil
		}
		return "", err
	}

	return strconv.Itoa(issued), nil
}
