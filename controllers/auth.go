package controllers

import (
	"net/http"

	"fitmanager-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthController struct {
	auth   *utils.Authenticator
	logger *zap.Logger
}

func NewAuthController(auth *utils.Authenticator, logger *zap.Logger) *AuthController {
	return &AuthController{auth: auth, logger: logger}
}

// IssueToken exchanges the Basic credentials already checked by the access
// gate for a bearer token.
func (h *AuthController) IssueToken(c *gin.Context) {
	username := c.GetString(utils.UsernameKey)

	token, expiresAt, err := h.auth.GenerateToken(username)
	if err != nil {
		h.logger.Error("Failed to generate token", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      token,
		"token_type": "Bearer",
		"expires_at": expiresAt.UTC(),
	})
}
