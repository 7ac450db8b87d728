// services/user_service.go
package services

import (
	"errors"
	"log"
	"strings"

	"brando-backend/models"
	"brando-backend/utils"

	"gorm.io/gorm"
)

// UserService owns account administration and the first-run bootstrap.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Bootstrap creates the default administrator on an empty install so the
// first operator can log in and create real accounts.
func (s *UserService) Bootstrap() error {
	var count int64
	if err := s.db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	admin := models.User{
		Name:         "Administrator",
		Username:     "admin",
		PasswordHash: "admin123", // hashed by the BeforeCreate hook
		NextNumber:   models.DefaultStartNumber,
		IsAdmin:      true,
		IsActive:     true,
	}
	if err := s.db.Create(&admin).Error; err != nil {
		return err
	}
	log.Println("Bootstrapped default admin account")
	return nil
}

type CreateUserInput struct {
	Name        string
	Username    string
	Password    string
	StartNumber int
	IsAdmin     bool
}

// Create adds an account. Usernames are unique case-insensitively, and the
// starting counter may not equal any other user's current counter so that
// auto-issued numbers do not overlap across accounts from day one.
func (s *UserService) Create(input CreateUserInput) (*models.User, error) {
	if input.StartNumber <= 0 {
		input.StartNumber = models.DefaultStartNumber
	}

	var existing []models.User
	if err := s.db.Find(&existing).Error; err != nil {
		return nil, err
	}
	for _, u := range existing {
		if strings.EqualFold(u.Username, input.Username) {
			return nil, ErrDuplicateUsername
		}
		if u.NextNumber == input.StartNumber {
			return nil, ErrStartNumberTaken
		}
	}

	user := models.User{
		Name:         input.Name,
		Username:     input.Username,
		PasswordHash: input.Password, // hashed by the BeforeCreate hook
		NextNumber:   input.StartNumber,
		IsAdmin:      input.IsAdmin,
		IsActive:     true,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

type UpdateUserInput struct {
	Name        *string
	StartNumber *int
	NewPassword *string
	IsAdmin     *bool
	IsActive    *bool
}

// Update edits an account in place. If the change would leave the system
// with no administrator, the admin flag is forced back on and the rest of
// the update still goes through.
func (s *UserService) Update(username string, input UpdateUserInput) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if input.Name != nil && strings.TrimSpace(*input.Name) != "" {
		user.Name = strings.TrimSpace(*input.Name)
	}
	if input.StartNumber != nil && *input.StartNumber > 0 {
		user.NextNumber = *input.StartNumber
	}
	if input.NewPassword != nil && strings.TrimSpace(*input.NewPassword) != "" {
		hashed, err := utils.HashPassword(strings.TrimSpace(*input.NewPassword))
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hashed
	}
	if input.IsAdmin != nil {
		user.IsAdmin = *input.IsAdmin
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	if !user.IsAdmin {
		var admins int64
		if err := s.db.Model(&models.User{}).
			Where("is_admin = ? AND username <> ?", true, username).
			Count(&admins).Error; err != nil {
			return nil, err
		}
		if admins == 0 {
			// Demoting the last admin is auto-corrected, not rejected.
			user.IsAdmin = true
		}
	}

	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Delete removes an account, refusing to delete the calling admin or the
// last remaining administrator.
func (s *UserService) Delete(username, actor string) error {
	if username == actor {
		return ErrCannotDeleteSelf
	}

	var user models.User
	if err := s.db.First(&user, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if user.IsAdmin {
		var admins int64
		if err := s.db.Model(&models.User{}).Where("is_admin = ?", true).Count(&admins).Error; err != nil {
			return err
		}
		if admins <= 1 {
			return ErrCannotDeleteLastAdmin
		}
	}

	return s.db.Delete(&user).Error
}

func (s *UserService) List() ([]models.User, error) {
	var users []models.User
	err := s.db.Order("username ASC").Find(&users).Error
	return users, err
}
