package models

import "time"

type UserId string

// Credentials identify the admin behind a request. They are carried in the request
// context by the authentication middleware and embedded in session tokens.
type Credentials struct {
	UserId UserId
	Email  string
}

func (c Credentials) IsAuthenticated() bool {
	return c.UserId != ""
}

type Session struct {
	Credentials Credentials
	Token       string
	IssuedAt    time.Time
	ExpiresAt   time.Time
}
