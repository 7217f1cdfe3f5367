package kafka

import (
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/TemirB/shop-dashboard/internal/config"
)

// NewReader builds a consumer-group reader for the order topic. Offsets are
// committed explicitly by the Consumer.
func NewReader(cfg config.Kafka) *kafkago.Reader {
	return kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        cfg.Brokers,
		Topic:          cfg.Topic,
		GroupID:        cfg.Group,
		StartOffset:    kafkago.FirstOffset,
		MinBytes:       1,
		MaxBytes:       10e6,
		MaxWait:        time.Second,
		CommitInterval: 0,
	})
}

// NewWriter builds a producer for the order topic, balancing by key.
func NewWriter(cfg config.Kafka) *kafkago.Writer {
	return &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireOne,
		BatchTimeout: 10 * time.Millisecond,
	}
}
