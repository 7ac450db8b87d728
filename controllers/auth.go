// controllers/auth.go
package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"brando-backend/config"
	"brando-backend/models"
	"brando-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func Login(c *gin.Context) {
	var input LoginInput

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	username := strings.TrimSpace(input.Username)

	var user models.User
	result := config.DB.Where("username = ?", username).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusUnauthorized, "Invalid username or password")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if !utils.CheckPasswordHash(strings.TrimSpace(input.Password), user.PasswordHash) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	if !user.IsActive {
		utils.RespondWithError(c, http.StatusForbidden, "This account is disabled. Contact an admin.")
		return
	}

	token, err := utils.GenerateToken(user.Username, user.IsAdmin)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	now := time.Now()
	config.DB.Model(&user).Update("last_login", &now)

	maxAge := utils.TokenExpiryHours() * 3600
	c.SetCookie("token", token, maxAge, "/", "", true, true)

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"name":     user.Name,
			"isAdmin":  user.IsAdmin,
		},
	})
}

func Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", true, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func Me(c *gin.Context) {
	username, exists := c.Get("username")
	if !exists {
		utils.RespondWithError(c, http.StatusInternalServerError, "Username not found in context")
		return
	}

	var user models.User
	if err := config.DB.First(&user, "username = ?", username).Error; err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":         user.ID,
			"username":   user.Username,
			"name":       user.Name,
			"isAdmin":    user.IsAdmin,
			"isActive":   user.IsActive,
			"nextNumber": user.NextNumber,
		},
	})
}

// currentUser loads the authenticated account for handlers that need the
// full record, not just the token claims.
func currentUser(c *gin.Context) (*models.User, bool) {
	username, exists := c.Get("username")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Username not found in context")
		return nil, false
	}

	var user models.User
	if err := config.DB.First(&user, "username = ?", username).Error; err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return nil, false
	}
	return &user, true
}
