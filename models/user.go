package models

import (
	"time"

	"brando-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultStartNumber is the counter a fresh account starts from; the first
// auto-issued invoice for that account carries this number.
const DefaultStartNumber = 1000

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"`

	// NextNumber is the next automatic invoice number for this user.
	NextNumber int  `gorm:"not null;default:1000" json:"nextNumber"`
	IsAdmin    bool `gorm:"default:false" json:"isAdmin"`
	IsActive   bool `gorm:"default:true" json:"isActive"`

	LastLogin *time.Time `json:"lastLogin"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Initialize UUID and hash the plaintext password before creating
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	hashed, err := utils.HashPassword(u.PasswordHash)
	if err != nil {
		return err
	}
	u.PasswordHash = hashed
	return
}
