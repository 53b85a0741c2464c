package handlers

import (
	"net/http"
	"time"

	"rangely/utils"

	"github.com/gin-gonic/gin"
)

// AdminLoginHandler exchanges the configured admin key for a short-lived
// admin JWT used by the rule set management endpoints.
func AdminLoginHandler(c *gin.Context) {
	var input struct {
		Key string `json:"key" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := utils.VerifyAdminKey(input.Key); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	token, err := utils.GenerateToken("admin", "admin", 12*time.Hour)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue admin token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
