// controllers/profile.go
package controllers

import (
	"net/http"
	"strings"

	"brando-backend/config"
	"brando-backend/utils"

	"github.com/gin-gonic/gin"
)

func GetProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"name":       user.Name,
		"username":   user.Username,
		"isAdmin":    user.IsAdmin,
		"isActive":   user.IsActive,
		"nextNumber": user.NextNumber,
		"lastLogin":  user.LastLogin,
	})
}

type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

// ChangePassword lets an operator rotate their own password.
func ChangePassword(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var input ChangePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.CheckPasswordHash(input.CurrentPassword, user.PasswordHash) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Current password is incorrect")
		return
	}

	hashed, err := utils.HashPassword(strings.TrimSpace(input.NewPassword))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update password")
		return
	}

	if err := config.DB.Model(user).Update("password_hash", hashed).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update password")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}
