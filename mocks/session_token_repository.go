package mocks

import (
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/sitepress/sitepress-backend/models"
)

type SessionTokenRepository struct {
	mock.Mock
}

func (m *SessionTokenRepository) EncodeSessionToken(expirationTime time.Time, creds models.Credentials) (string, error) {
	args := m.Called(expirationTime, creds)
	return args.String(0), args.Error(1)
}

func (m *SessionTokenRepository) ValidateSessionToken(sessionToken string) (models.Session, error) {
	args := m.Called(sessionToken)
	return args.Get(0).(models.Session), args.Error(1)
}
