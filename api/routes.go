package api

import (
	"net/http"
	"time"

	limits "github.com/gin-contrib/size"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	timeout "github.com/vearne/gin-timeout"

	"github.com/sitepress/sitepress-backend/models"
	"github.com/sitepress/sitepress-backend/usecases"
	"github.com/sitepress/sitepress-backend/utils"
)

const (
	maxJsonBodySize = 1 * 1024 * 1024 // 1MB
	// room for the multipart envelope around the image
	maxUploadBodySize = models.MaxImageUploadSize + 64*1024
)

func timeoutMiddleware(duration time.Duration) gin.HandlerFunc {
	return timeout.Timeout(
		timeout.WithTimeout(duration),
		timeout.WithErrorHttpCode(http.StatusRequestTimeout),
		timeout.WithDefaultMsg(`{"error": "request timeout"}`),
	)
}

func addRoutes(r *gin.Engine, conf Configuration, uc usecases.Usecases, auth utils.Authentication) {
	tom := timeoutMiddleware(conf.DefaultTimeout)
	jsonLimit := limits.RequestSizeLimiter(maxJsonBodySize)
	// one budget per endpoint, so that reset requests do not eat into login attempts
	loginLimiter := newLoginRateLimiter(conf.LoginAttemptsPerMinute)
	resetLimiter := newLoginRateLimiter(conf.LoginAttemptsPerMinute)
	tokenLimiter := newLoginRateLimiter(conf.LoginAttemptsPerMinute)

	r.GET("/liveness", handleLivenessProbe(uc))
	if conf.EnablePrometheus {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	authRouter := r.Group("/auth", tom, jsonLimit)
	authRouter.POST("/login", loginLimiter.Middleware, handleLogin(uc, conf))
	authRouter.POST("/signup", handleSignup(uc, conf))
	authRouter.POST("/logout", handleLogout(conf))
	authRouter.GET("/session", handleGetSession(uc))
	authRouter.POST("/reset-password", resetLimiter.Middleware, handleResetPassword(uc))
	authRouter.POST("/update-password", handleUpdatePassword(uc))
	authRouter.POST("/token", tokenLimiter.Middleware, handleExchangeIdpToken(uc, conf))

	router := r.Group("/api", tom)

	router.GET("/blog", handleListBlogPosts(uc))
	router.GET("/blog/:id", handleGetBlogPost(uc))
	router.POST("/blog", auth.Middleware, jsonLimit, handleCreateBlogPost(uc))
	router.PUT("/blog/:id", auth.Middleware, jsonLimit, handleUpdateBlogPost(uc))
	router.DELETE("/blog/:id", auth.Middleware, handleDeleteBlogPost(uc))

	router.GET("/tags", handleListTags(uc))

	router.GET("/ads", handleListAds(uc))
	router.GET("/ads/:id", handleGetAd(uc))
	router.POST("/ads", auth.Middleware, jsonLimit, handleCreateAd(uc))
	router.PUT("/ads/:id", auth.Middleware, jsonLimit, handleUpdateAd(uc))
	router.DELETE("/ads/:id", auth.Middleware, handleDeleteAd(uc))

	router.POST("/uploads", auth.Middleware, limits.RequestSizeLimiter(maxUploadBodySize), handleUploadImage(uc))
	router.GET("/uploads/images/:key", handleGetImage(uc))
}
