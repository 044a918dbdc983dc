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

type WithdrawalHandler struct {
	wallet *service.WalletService
	logger *zap.SugaredLogger
}

func NewWithdrawalHandler(wallet *service.WalletService, logger *zap.SugaredLogger) *WithdrawalHandler {
	return &WithdrawalHandler{wallet: wallet, logger: logger}
}

type WithdrawRequest struct {
	Amount  float64 `json:"amount"`
	Method  string  `json:"method"`
	Details string  `json:"details"`
}

// Create debits the balance immediately and records a pending withdrawal.
func (h *WithdrawalHandler) Create(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid amount"})
		return
	}
	w, err := h.wallet.Withdraw(userID, req.Amount, req.Method, req.Details)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidAmount), errors.Is(err, service.ErrInsufficientBalance):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, repository.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		default:
			h.logger.Errorw("withdraw failed", "user", userID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "withdrawal failed"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "withdraw": w})
}
