// controllers/admin.go
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

// CreateUserInput defines the expected JSON structure for creating an account
type CreateUserInput struct {
	Name        string `json:"name" binding:"required"`
	Username    string `json:"username" binding:"required"`
	Password    string `json:"password" binding:"required"`
	StartNumber int    `json:"startNumber"`
	IsAdmin     bool   `json:"isAdmin"`
}

// UpdateUserInput defines the expected JSON structure for editing an account
type UpdateUserInput struct {
	Name        *string `json:"name"`
	StartNumber *int    `json:"startNumber"`
	NewPassword *string `json:"newPassword"`
	IsAdmin     *bool   `json:"isAdmin"`
	IsActive    *bool   `json:"isActive"`
}

// GetUsers lists every account for the admin screen.
func GetUsers(c *gin.Context) {
	users, err := services.NewUserService(config.DB).List()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load users")
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

func CreateUser(c *gin.Context) {
	var input CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "All fields except 'is admin' are required.")
		return
	}

	user, err := services.NewUserService(config.DB).Create(services.CreateUserInput{
		Name:        strings.TrimSpace(input.Name),
		Username:    strings.TrimSpace(input.Username),
		Password:    strings.TrimSpace(input.Password),
		StartNumber: input.StartNumber,
		IsAdmin:     input.IsAdmin,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDuplicateUsername), errors.Is(err, services.ErrStartNumberTaken):
			utils.RespondWithError(c, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create user")
		}
		return
	}

	c.JSON(http.StatusCreated, user)
}

func UpdateUser(c *gin.Context) {
	username := c.Param("username")

	var input UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	user, err := services.NewUserService(config.DB).Update(username, services.UpdateUserInput{
		Name:        input.Name,
		StartNumber: input.StartNumber,
		NewPassword: input.NewPassword,
		IsAdmin:     input.IsAdmin,
		IsActive:    input.IsActive,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			utils.RespondWithError(c, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update user")
		}
		return
	}

	c.JSON(http.StatusOK, user)
}

func DeleteUser(c *gin.Context) {
	username := c.Param("username")
	actor := c.GetString("username")

	err := services.NewUserService(config.DB).Delete(username, actor)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			utils.RespondWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, services.ErrCannotDeleteSelf), errors.Is(err, services.ErrCannotDeleteLastAdmin):
			utils.RespondWithError(c, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete user")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User removed"})
}
