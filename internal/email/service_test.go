package email

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinetech/api/internal/logging"
)

func newTestService() *Service {
	return NewService("127.0.0.1", "1", "noreply@cinetech.example", "secret", "Cinetech", logging.NewLogger(true))
}

func TestRenderVerificationCodeTemplate(t *testing.T) {
	svc := newTestService()

	body, err := svc.renderVerificationCodeTemplate("482910")
	require.NoError(t, err)

	assert.Contains(t, body, "482910")
	assert.Contains(t, body, "Welcome to Cinetech!")
	assert.Contains(t, body, "expire in 15 minutes")
}

func TestSendVerificationCodeUnreachableSMTP(t *testing.T) {
	svc := newTestService()

	err := svc.SendVerificationCode(context.Background(), "ellen@example.com", "482910")
	assert.Error(t, err)
}
