package models

import (
	"strings"
	"time"
)

type AdminUser struct {
	Id                UserId
	Email             string
	PasswordHash      *string
	CreatedAt         time.Time
	PasswordUpdatedAt *time.Time
}

func (u AdminUser) IntoCredentials() Credentials {
	return Credentials{
		UserId: u.Id,
		Email:  u.Email,
	}
}

// RevokesSessionIssuedAt reports whether a session issued at the given time predates
// the last password change. Token timestamps only carry whole seconds.
func (u AdminUser) RevokesSessionIssuedAt(issuedAt time.Time) bool {
	if u.PasswordUpdatedAt == nil {
		return false
	}
	return issuedAt.Before(u.PasswordUpdatedAt.Truncate(time.Second))
}

type CreateAdminUser struct {
	Email        string
	PasswordHash *string
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type PasswordResetToken struct {
	Id        string
	UserId    UserId
	TokenHash []byte
	ExpiresAt time.Time
	UsedAt    *time.Time
	CreatedAt time.Time
}

func (t PasswordResetToken) IsUsable(now time.Time) bool {
	return t.UsedAt == nil && now.Before(t.ExpiresAt)
}

// IdentityClaims is what an external identity provider asserts about the caller.
type IdentityClaims struct {
	Issuer        string
	Email         string
	EmailVerified bool
}
