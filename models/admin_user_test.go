package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPasswordResetToken_IsUsable(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	used := now.Add(-time.Minute)

	assert.True(t, PasswordResetToken{ExpiresAt: now.Add(time.Minute)}.IsUsable(now))
	assert.False(t, PasswordResetToken{ExpiresAt: now}.IsUsable(now))
	assert.False(t, PasswordResetToken{ExpiresAt: now.Add(-time.Second)}.IsUsable(now))
	assert.False(t, PasswordResetToken{ExpiresAt: now.Add(time.Minute), UsedAt: &used}.IsUsable(now))
}

func TestAdminUser_RevokesSessionIssuedAt(t *testing.T) {
	issuedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	assert.False(t, AdminUser{}.RevokesSessionIssuedAt(issuedAt))

	before := issuedAt.Add(-time.Hour)
	assert.False(t, AdminUser{PasswordUpdatedAt: &before}.RevokesSessionIssuedAt(issuedAt))

	// a login in the same second as the change keeps its session
	sameSecond := issuedAt.Add(400 * time.Millisecond)
	assert.False(t, AdminUser{PasswordUpdatedAt: &sameSecond}.RevokesSessionIssuedAt(issuedAt))

	after := issuedAt.Add(time.Minute)
	assert.True(t, AdminUser{PasswordUpdatedAt: &after}.RevokesSessionIssuedAt(issuedAt))
}
