// File: handlers/admin.go
package handlers

import (
	"net/http"

	"maggamhub/services/admin"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler exposes the admin login endpoint.
type AdminHandler struct {
	Auth admin.AuthService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(auth admin.AuthService) *AdminHandler {
	return &AdminHandler{Auth: auth}
}

// LoginHandler verifies the admin password and issues a session token.
// A successful login invalidates any previously issued token.
func (ah *AdminHandler) LoginHandler(c *gin.Context) {
	var input struct {
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false})
		return
	}

	token, err := ah.Auth.Login(c.Request.Context(), input.Password)
	if err == admin.ErrUnauthorized {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false})
		return
	}
	if err != nil {
		zap.L().Error("Failed to issue admin token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}
