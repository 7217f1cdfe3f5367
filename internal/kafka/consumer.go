package kafka

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/TemirB/shop-dashboard/internal/observability"
)

type MessageHandler interface {
	Handle(ctx context.Context, msg kafkago.Message) error
}

type Reader interface {
	Config() kafkago.ReaderConfig
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

type Consumer struct {
	handler MessageHandler
	reader  Reader
	zlogger *zap.Logger
	metrics observability.Metrics

	workerPoolSize int
	jobs           chan jobItem

	idleBackoff  time.Duration
	errorBackoff time.Duration
}

type jobItem struct {
	msg    kafkago.Message
	result chan error
}

func NewConsumer(handler MessageHandler, reader Reader, workers int, metrics observability.Metrics, logger *zap.Logger) *Consumer {
	if workers <= 0 {
		workers = 1
	}
	if metrics == nil {
		metrics = observability.NewNoop()
	}
	return &Consumer{
		handler:        handler,
		reader:         reader,
		zlogger:        logger,
		metrics:        metrics,
		workerPoolSize: workers,
		jobs:           make(chan jobItem, workers*2),
		idleBackoff:    10 * time.Second,
		errorBackoff:   200 * time.Millisecond,
	}
}

// Start fetches until ctx is done. It returns after every worker has exited.
func (c *Consumer) Start(ctx context.Context) {
	rc := c.reader.Config()
	c.zlogger.Info("Starting Kafka consumer",
		zap.Strings("brokers", rc.Brokers),
		zap.String("group", rc.GroupID),
		zap.String("topic", rc.Topic),
		zap.Int("workers", c.workerPoolSize),
	)

	var wg sync.WaitGroup
	for i := 0; i < c.workerPoolSize; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			c.worker(ctx, id)
		}(i)
	}
	defer wg.Wait()

	// Each message is handed to a worker and its result awaited before the
	// next fetch, so offsets are committed in the order they were received.
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return
			}
			if isBenignFetchTimeout(err) {
				c.zlogger.Debug("Fetch timeout (idle), backing off", zap.Error(err))
				sleepWithContext(ctx, c.idleBackoff)
				continue
			}

			c.zlogger.Warn("FetchMessage error, backing off", zap.Error(err))
			sleepWithContext(ctx, c.errorBackoff)
			continue
		}

		done := make(chan error, 1)
		select {
		case c.jobs <- jobItem{msg: msg, result: done}:
		case <-ctx.Done():
			return
		}

		var procErr error
		select {
		case procErr = <-done:
		case <-ctx.Done():
			return
		}

		if procErr != nil {
			c.zlogger.Error("Handler failed; message will not be committed", zap.Error(procErr),
				zap.String("topic", msg.Topic), zap.Int("partition", msg.Partition), zap.Int64("offset", msg.Offset))
			sleepWithContext(ctx, c.errorBackoff)
			continue
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			c.zlogger.Warn(
				"Commit failed",
				zap.Error(err),
				zap.String("topic", msg.Topic),
				zap.Int("partition", msg.Partition),
				zap.Int64("offset", msg.Offset),
			)
			sleepWithContext(ctx, c.errorBackoff)
			continue
		}
		c.zlogger.Debug("Message committed",
			zap.String("topic", msg.Topic), zap.Int("partition", msg.Partition), zap.Int64("offset", msg.Offset))
	}
}

func (c *Consumer) worker(ctx context.Context, id int) {
	logger := c.zlogger.With(zap.Int("worker", id))

	for {
		select {
		case <-ctx.Done():
			return
		case it := <-c.jobs:
			if it.result == nil {
				continue
			}

			msg := it.msg
			start := time.Now()

			err := c.handler.Handle(ctx, msg)

			elapsed := time.Since(start)
			c.metrics.ObserveKafka(float64(elapsed.Microseconds())/1000.0, err == nil)
			if err != nil {
				logger.Error("Message handling failed",
					zap.Error(err),
					zap.String("topic", msg.Topic),
					zap.Int("partition", msg.Partition),
					zap.Int64("offset", msg.Offset),
					zap.Duration("elapsed", elapsed),
				)
				it.result <- err
				continue
			}

			logger.Debug("Message handled",
				zap.String("topic", msg.Topic),
				zap.Int("partition", msg.Partition),
				zap.Int64("offset", msg.Offset),
				zap.Int("key_bytes", len(msg.Key)),
				zap.Int("value_bytes", len(msg.Value)),
				zap.Duration("elapsed", elapsed),
			)
			it.result <- nil
		}
	}
}

func sleepWithContext(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

func isBenignFetchTimeout(err error) bool {
	s := err.Error()
	return strings.Contains(s, "Request Timed Out") ||
		strings.Contains(s, "no messages received from kafka within the allocated time")
}
