package repository

import (
	"context"
	"errors"
	"sync"

	kafka "github.com/segmentio/kafka-go"
	"github.com/whiteelite/solana-gateway/internal/domain/entities"
	domainrepos "github.com/whiteelite/solana-gateway/internal/domain/repositories"
)

// KafkaAuditTrailParams implements repositories.MessageQueueParams and
// provides configuration for initializing KafkaAuditTrail.
type KafkaAuditTrailParams struct {
	// Required
	Brokers []string
	Topic   string

	// Optional
	BufSize int
}

func (p KafkaAuditTrailParams) Get() map[string]any {
	return map[string]any{
		"brokers": p.Brokers,
		"topic":   p.Topic,
		"buffer":  p.BufSize,
	}
}

// KafkaAuditTrail is the producer-only queue carrying operation audit
// events. Nothing in this service reads the topic back; consumption is a
// downstream concern.
type KafkaAuditTrail struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     *sync.WaitGroup

	writer *kafka.Writer

	// External facing channel (event based)
	toProduce chan entities.AuditEvent

	// Internal bridge for the generic producer worker
	bucket chan *entities.AuditEvent
	errors chan error
}

// InitializeKafkaAuditTrail creates a KafkaAuditTrail using params.
func InitializeKafkaAuditTrail(params domainrepos.MessageQueueParams) domainrepos.MessageQueueProducer[entities.AuditEvent] {
	typed, _ := params.(KafkaAuditTrailParams)

	if typed.BufSize <= 0 {
		typed.BufSize = 1024
	}

	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(typed.Brokers...),
		Topic:        typed.Topic,
		RequiredAcks: kafka.RequireAll,
		Balancer:     &kafka.LeastBytes{},
	}

	q := &KafkaAuditTrail{
		ctx:       ctx,
		cancel:    cancel,
		wg:        wg,
		writer:    writer,
		toProduce: make(chan entities.AuditEvent, typed.BufSize),
		bucket:    make(chan *entities.AuditEvent, typed.BufSize),
		errors:    make(chan error, 16),
	}

	q.startWorkers()
	return q
}

func (q *KafkaAuditTrail) startWorkers() {
	q.wg.Add(1)
	go StartProducer(q.ctx, q.wg, q.writer, q.bucket, q.errors)

	// Bridge external toProduce -> bucket (*AuditEvent)
	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		for {
			select {
			case <-q.ctx.Done():
				return
			case e, ok := <-q.toProduce:
				if !ok {
					return
				}
				event := e
				q.bucket <- &event
			}
		}
	}()
}

// ToProduceBuffered exposes the buffered producer channel of events.
func (q *KafkaAuditTrail) ToProduceBuffered() chan<- entities.AuditEvent {
	return q.toProduce
}

// Errors exposes producer failures for logging.
func (q *KafkaAuditTrail) Errors() <-chan error {
	return q.errors
}

// Close stops workers and closes resources.
func (q *KafkaAuditTrail) Close() {
	if q.cancel != nil {
		q.cancel()
	}
	if q.writer != nil {
		_ = q.writer.Close()
	}
	q.wg.Wait()
}

// Compile-time assertion to ensure interface conformance
var _ domainrepos.MessageQueueProducer[entities.AuditEvent] = (*KafkaAuditTrail)(nil)

// ValidateKafkaParams ensures required params are set.
func ValidateKafkaParams(p KafkaAuditTrailParams) error {
	if len(p.Brokers) == 0 {
		return errors.New("kafka brokers are required")
	}
	if p.Topic == "" {
		return errors.New("kafka topic is required")
	}
	return nil
}
