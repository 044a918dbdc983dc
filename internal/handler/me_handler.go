package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"refearn/internal/middleware"
	"refearn/internal/repository"
	"refearn/internal/service"
)

type MeHandler struct {
	wallet *service.WalletService
	logger *zap.SugaredLogger
}

func NewMeHandler(wallet *service.WalletService, logger *zap.SugaredLogger) *MeHandler {
	return &MeHandler{wallet: wallet, logger: logger}
}

// Me returns the authenticated user with their wallet view: balance, transaction
// history and withdrawal requests.
func (h *MeHandler) Me(c *gin.Context) {
	userID := middleware.GetUserID(c)
	ov, err := h.wallet.Overview(userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		h.logger.Errorw("wallet overview failed", "user", userID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user": ov.User.Public(),
		"wallet": gin.H{
			"balance":      ov.User.Earnings,
			"transactions": ov.Transactions,
		},
		"withdraws": ov.Withdraws,
	})
}
