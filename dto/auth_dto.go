package dto

import (
	"time"

	"github.com/sitepress/sitepress-backend/models"
)

type LoginBody struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SignupBody struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

type ResetPasswordBody struct {
	Email string `json:"email" binding:"required,email"`
}

type UpdatePasswordBody struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

type IdpTokenBody struct {
	IdToken string `json:"id_token" binding:"required"`
}

type APIUser struct {
	Id    string `json:"id"`
	Email string `json:"email"`
}

type APISession struct {
	AccessToken string    `json:"access_token,omitempty"`
	TokenType   string    `json:"token_type,omitempty"`
	ExpiresAt   time.Time `json:"expires_at"`
	User        APIUser   `json:"user"`
}

func AdaptSessionDto(session models.Session) APISession {
	s := APISession{
		ExpiresAt: session.ExpiresAt,
		User: APIUser{
			Id:    string(session.Credentials.UserId),
			Email: session.Credentials.Email,
		},
	}
	if session.Token != "" {
		s.AccessToken = session.Token
		s.TokenType = "Bearer"
	}
	return s
}
