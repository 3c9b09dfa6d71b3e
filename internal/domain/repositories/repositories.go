package repositories

// MessageQueueParams carries implementation-specific configuration for
// initializing a message queue.
type MessageQueueParams interface {
	Get() map[string]any
}

// MessageQueueProducer is the write side of a queue. Sends are buffered;
// a full buffer is the caller's signal to drop rather than block.
type MessageQueueProducer[T any] interface {
	ToProduceBuffered() chan<- T
	Errors() <-chan error
	Close()
}
