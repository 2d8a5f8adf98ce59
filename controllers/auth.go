package controllers

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"carlach-backend/config"
	"carlach-backend/utils"

	"github.com/gin-gonic/gin"
)

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates the staff account configured at process start and
// issues a bearer token for the dashboard routes.
func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	cfg := config.AppConfig
	if cfg.AdminPassword == "" {
		utils.RespondWithError(c, http.StatusInternalServerError, "Staff login is not configured")
		return
	}

	if !credentialsMatch(strings.TrimSpace(input.Username), input.Password, cfg) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := utils.GenerateToken(cfg.AdminUsername)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  gin.H{"username": cfg.AdminUsername},
	})
}

// credentialsMatch accepts either a bcrypt hash or a plain value in
// ADMIN_PASSWORD; plain values are compared in constant time.
func credentialsMatch(username, password string, cfg config.Config) bool {
	if subtle.ConstantTimeCompare([]byte(username), []byte(cfg.AdminUsername)) != 1 {
		return false
	}
	if strings.HasPrefix(cfg.AdminPassword, "$2") {
		return utils.CheckPasswordHash(password, cfg.AdminPassword)
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(cfg.AdminPassword)) == 1
}

// Me returns the authenticated staff identity.
func Me(c *gin.Context) {
	username, exists := c.Get("username")
	if !exists {
		utils.RespondWithError(c, http.StatusInternalServerError, "Username not found in context")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{"username": username},
	})
}
