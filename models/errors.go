package models

import (
	"github.com/cockroachdb/errors"
)

// Base errors, related to default API status codes
var (
	// BadParameterError is rendered with the http status code 400
	BadParameterError = errors.New("bad parameter")

	// UnAuthorizedError is rendered with the http status code 401
	UnAuthorizedError = errors.New("unauthorized")

	// ForbiddenError is rendered with the http status code 403
	ForbiddenError = errors.New("forbidden")

	// NotFoundError is rendered with the http status code 404
	NotFoundError = errors.New("not found")

	// ConflictError is rendered with the http status code 409
	ConflictError = errors.New("duplicate value")

	// TooManyRequestsError is rendered with the http status code 429
	TooManyRequestsError = errors.New("too many requests")
)

// Authentication related errors
var (
	ErrUnknownUser        = errors.Wrap(UnAuthorizedError, "unknown user")
	ErrInvalidCredentials = errors.Wrap(UnAuthorizedError, "invalid login credentials")
	ErrSignupDisabled     = errors.Wrap(ForbiddenError, "signup is disabled")
	ErrInvalidResetToken  = errors.Wrap(UnAuthorizedError, "invalid or expired password reset token")
	ErrEmailNotVerified   = errors.Wrap(UnAuthorizedError, "email not verified")
)

// DB related errors
var ErrIgnoreRollBackError = errors.New("ignore rollback error")

// Content related errors
var (
	ErrBlogPostNotFound  = errors.Wrap(NotFoundError, "blog post not found")
	ErrAdNotFound        = errors.Wrap(NotFoundError, "advertisement not found")
	ErrDuplicateSlug     = errors.Wrap(ConflictError, "a blog post with this slug already exists")
	ErrDuplicateEmail    = errors.Wrap(ConflictError, "a user with this email already exists")
	ErrUnsupportedUpload = errors.Wrap(BadParameterError, "only image uploads are supported")
)
