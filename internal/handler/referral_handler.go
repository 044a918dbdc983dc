package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"refearn/internal/middleware"
	"refearn/internal/repository"
)

type ReferralHandler struct {
	users repository.UserRepository
}

func NewReferralHandler(users repository.UserRepository) *ReferralHandler {
	return &ReferralHandler{users: users}
}

// Link returns the user's shareable referral link, absolute against the request
// origin (honouring proxy forwarding headers).
func (h *ReferralHandler) Link(c *gin.Context) {
	userID := middleware.GetUserID(c)
	u, err := h.users.GetByID(userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not build referral link"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"link": requestOrigin(c) + "/r/" + u.ReferralCode})
}

// Redirect maps a referral code into the SPA's register deep link.
func (h *ReferralHandler) Redirect(c *gin.Context) {
	code := c.Param("code")
	c.Redirect(http.StatusFound, "/index.html#register?ref="+url.QueryEscape(code))
}

func requestOrigin(c *gin.Context) string {
	proto := c.GetHeader("X-Forwarded-Proto")
	if proto == "" {
		proto = "http"
	}
	host := c.GetHeader("X-Forwarded-Host")
	if host == "" {
		host = c.Request.Host
	}
	return proto + "://" + host
}
