package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"refearn/config"
	"refearn/internal/handler"
	"refearn/internal/metrics"
	"refearn/internal/middleware"
	"refearn/internal/repository"
	"refearn/internal/service"
)

// Setup wires repositories, services and handlers into the HTTP surface.
func Setup(cfg *config.Config, repos *repository.Repositories, logger *zap.Logger) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.RateLimit(middleware.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window)))

	m := metrics.New()
	r.Use(m.Middleware())

	sugar := logger.Sugar()

	referralSvc := service.NewReferralService(repos, cfg.Referral.Bonus, sugar)
	authSvc := service.NewAuthService(cfg, repos.Users, referralSvc)
	walletSvc := service.NewWalletService(repos, sugar)
	leaderboardSvc := service.NewLeaderboardService(repos.Users)

	authHandler := handler.NewAuthHandler(authSvc, sugar)
	meHandler := handler.NewMeHandler(walletSvc, sugar)
	referralHandler := handler.NewReferralHandler(repos.Users)
	withdrawalHandler := handler.NewWithdrawalHandler(walletSvc, sugar)
	leaderboardHandler := handler.NewLeaderboardHandler(leaderboardSvc, sugar)

	authMw := middleware.AuthRequired(&cfg.JWT)

	api := r.Group("/api")
	{
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)
		api.GET("/me", authMw, meHandler.Me)
		api.GET("/referral/link", authMw, referralHandler.Link)
		api.GET("/leaderboard", leaderboardHandler.Get)
		api.POST("/withdraw", authMw, withdrawalHandler.Create)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})
	}

	r.GET("/r/:code", referralHandler.Redirect)
	r.GET("/metrics", gin.WrapH(m.Handler()))

	if cfg.Server.PublicDir != "" {
		r.NoRoute(gin.WrapH(http.FileServer(http.Dir(cfg.Server.PublicDir))))
	}

	return r
}
