package repository

import (
	"context"
	"sync"

	json "github.com/goccy/go-json"

	kafka "github.com/segmentio/kafka-go"
	mapper "github.com/whiteelite/solana-gateway/internal/infrastructure/messaging/kafka/repositories/mapper"
	shared "github.com/whiteelite/solana-gateway/pkg/shared/domain/entities"
)

// StartProducer drains bucket and writes each entity to Kafka until ctx is
// cancelled. Failures go to errors without stopping the worker; errors is
// closed when the worker exits.
func StartProducer[T shared.Entity](
	ctx context.Context,
	wg *sync.WaitGroup,
	writer *kafka.Writer,
	bucket <-chan *T,
	errors chan<- error,
) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			close(errors)
			return
		case request, ok := <-bucket:
			if !ok {
				close(errors)
				return
			}

			model, err := mapper.ToMessage(request)
			if err != nil {
				errors <- err
				continue
			}

			serialized, err := json.Marshal(model)
			if err != nil {
				errors <- err
				continue
			}
			err = writer.WriteMessages(ctx, kafka.Message{
				Key:   []byte(model.Hash),
				Value: serialized,
			})
			if err != nil {
				errors <- err
				continue
			}
		}
	}
}
