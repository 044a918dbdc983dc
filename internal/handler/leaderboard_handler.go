package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"refearn/internal/service"
)

type LeaderboardHandler struct {
	svc    *service.LeaderboardService
	logger *zap.SugaredLogger
}

func NewLeaderboardHandler(svc *service.LeaderboardService, logger *zap.SugaredLogger) *LeaderboardHandler {
	return &LeaderboardHandler{svc: svc, logger: logger}
}

func (h *LeaderboardHandler) Get(c *gin.Context) {
	lb, err := h.svc.Compute()
	if err != nil {
		h.logger.Errorw("leaderboard compute failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load leaderboard"})
		return
	}
	c.JSON(http.StatusOK, lb)
}
