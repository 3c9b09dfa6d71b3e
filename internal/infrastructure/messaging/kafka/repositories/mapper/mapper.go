package mapper

import (
	"encoding/base64"

	json "github.com/goccy/go-json"

	"github.com/google/uuid"
	"github.com/whiteelite/solana-gateway/internal/infrastructure/messaging/kafka/repositories/models"
	shared "github.com/whiteelite/solana-gateway/pkg/shared/domain/entities"
)

// ToMessage wraps a domain entity into the wire model.
func ToMessage[T shared.Entity](entity *T) (*models.Message, error) {
	serialized, err := json.Marshal(entity)
	if err != nil {
		return nil, err
	}

	hash := base64.StdEncoding.EncodeToString(serialized)

	return &models.Message{
		ID:      uuid.New(),
		Content: string(serialized),
		Hash:    hash,
	}, nil
}

// FromMessage restores a domain entity from the wire model.
func FromMessage[T shared.Entity](message *models.Message) (*T, error) {
	entity := new(T)
	if err := json.Unmarshal([]byte(message.Content), entity); err != nil {
		return nil, err
	}

	return entity, nil
}
