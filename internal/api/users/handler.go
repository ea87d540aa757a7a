package users

import (
	"net/http"

	"product-studio/database"
	"product-studio/internal/domain/plans"
	"product-studio/internal/domain/users"
	"product-studio/pkg/logger"

	"github.com/gin-gonic/gin"
)

func GetCurrentUser(c *gin.Context) {
	email := c.GetString("email")
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var user users.User
	if err := database.DB.Where("email = ?", email).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, BuildMeResponse(user))
}

// POST /upgrade-request
// Upgrading is a manual, human-reviewed step: log the request for the
// operator and acknowledge. No payment processor is involved.
func RequestUpgrade(c *gin.Context) {
	email := c.GetString("email")
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var user users.User
	if err := database.DB.Where("email = ?", email).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if plans.Normalize(user.Plan) == plans.PlanPaid {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Account is already on the paid plan"})
		return
	}

	log := logger.Get()
	log.Info().Str("email", email).Uint("user_id", user.ID).Msg("manual upgrade requested")

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Upgrade request received. We'll confirm by email shortly.",
	})
}
