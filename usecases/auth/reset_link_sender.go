package auth

import (
	"context"
	"log/slog"

	"github.com/sitepress/sitepress-backend/utils"
)

type ResetLinkSender interface {
	SendResetLink(ctx context.Context, email, link string) error
}

// LogResetLinkSender writes the reset link to the logs. It is the sender used when
// no mail delivery is wired.
type LogResetLinkSender struct{}

func (LogResetLinkSender) SendResetLink(ctx context.Context, email, link string) error {
	utils.LoggerFromContext(ctx).InfoContext(ctx, "password reset requested",
		slog.String("email", email),
		slog.String("link", link))
	return nil
}
