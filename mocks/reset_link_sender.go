package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type ResetLinkSender struct {
	mock.Mock
}

func (m *ResetLinkSender) SendResetLink(ctx context.Context, email, link string) error {
	args := m.Called(ctx, email, link)
	return args.Error(0)
}
