package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sitepress/sitepress-backend/dto"
	"github.com/sitepress/sitepress-backend/models"
	"github.com/sitepress/sitepress-backend/usecases"
	"github.com/sitepress/sitepress-backend/utils"
)

func setSessionCookie(c *gin.Context, conf Configuration, session models.Session) {
	maxAge := int(time.Until(session.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(utils.SessionCookieName, session.Token, maxAge, "/", "", conf.secureCookies(), true)
}

func clearSessionCookie(c *gin.Context, conf Configuration) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(utils.SessionCookieName, "", -1, "/", "", conf.secureCookies(), true)
}

func handleLogin(uc usecases.Usecases, conf Configuration) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var data dto.LoginBody
		if err := c.ShouldBindJSON(&data); err != nil {
			presentBindingError(ctx, c, err)
			return
		}

		usecase := uc.NewSessionUsecase()
		session, err := usecase.Login(ctx, data.Email, data.Password)
		if presentError(ctx, c, err) {
			return
		}

		setSessionCookie(c, conf, session)
		c.JSON(http.StatusOK, dto.AdaptSessionDto(session))
	}
}

func handleSignup(uc usecases.Usecases, conf Configuration) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var data dto.SignupBody
		if err := c.ShouldBindJSON(&data); err != nil {
			presentBindingError(ctx, c, err)
			return
		}

		usecase := uc.NewSessionUsecase()
		session, err := usecase.Signup(ctx, data.Email, data.Password)
		if presentError(ctx, c, err) {
			return
		}

		setSessionCookie(c, conf, session)
		c.JSON(http.StatusCreated, dto.AdaptSessionDto(session))
	}
}

// Sessions are stateless tokens: signing out only drops the cookie.
func handleLogout(conf Configuration) func(c *gin.Context) {
	return func(c *gin.Context) {
		clearSessionCookie(c, conf)
		c.JSON(http.StatusOK, gin.H{"message": "signed out"})
	}
}

func handleGetSession(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		token, err := utils.SessionTokenFromRequest(c.Request)
		if presentError(ctx, c, err) {
			return
		}

		usecase := uc.NewSessionUsecase()
		session, err := usecase.GetSession(ctx, token)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, dto.AdaptSessionDto(session))
	}
}

func handleResetPassword(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var data dto.ResetPasswordBody
		if err := c.ShouldBindJSON(&data); err != nil {
			presentBindingError(ctx, c, err)
			return
		}

		usecase := uc.NewSessionUsecase()
		err := usecase.ResetPassword(ctx, data.Email)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "if this email belongs to an account, a reset link has been sent"})
	}
}

func handleUpdatePassword(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var data dto.UpdatePasswordBody
		if err := c.ShouldBindJSON(&data); err != nil {
			presentBindingError(ctx, c, err)
			return
		}

		usecase := uc.NewSessionUsecase()
		err := usecase.UpdatePassword(ctx, data.Token, data.Password)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "password updated"})
	}
}

func handleExchangeIdpToken(uc usecases.Usecases, conf Configuration) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var data dto.IdpTokenBody
		if err := c.ShouldBindJSON(&data); err != nil {
			presentBindingError(ctx, c, err)
			return
		}

		usecase := uc.NewSessionUsecase()
		session, err := usecase.ExchangeIdpToken(ctx, data.IdToken)
		if presentError(ctx, c, err) {
			return
		}

		setSessionCookie(c, conf, session)
		c.JSON(http.StatusOK, dto.AdaptSessionDto(session))
	}
}
