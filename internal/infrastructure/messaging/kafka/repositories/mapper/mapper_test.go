package mapper_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whiteelite/solana-gateway/internal/domain/entities"
	"github.com/whiteelite/solana-gateway/internal/infrastructure/messaging/kafka/repositories/mapper"
)

func TestMessageRoundTrip(t *testing.T) {
	event := entities.NewAuditEvent(entities.OperationSendSol, "sender")

	model, err := mapper.ToMessage(&event)
	require.NoError(t, err)
	assert.NotEmpty(t, model.Content)
	assert.NotEmpty(t, model.Hash)

	restored, err := mapper.FromMessage[entities.AuditEvent](model)
	require.NoError(t, err)
	assert.Equal(t, event.ID, restored.ID)
	assert.Equal(t, event.Operation, restored.Operation)
	assert.Equal(t, event.Detail, restored.Detail)
}
