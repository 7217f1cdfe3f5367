package handler

import (
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/TemirB/shop-dashboard/internal/cache"
	"github.com/TemirB/shop-dashboard/internal/config"
	"github.com/TemirB/shop-dashboard/internal/domain"
	"github.com/TemirB/shop-dashboard/internal/pkg/retry"
)

var (
	ErrPlaceOrder  = errors.New("place order failed")
	ErrCircuitOpen = errors.New("circuit breaker open")
)

//go:generate mockgen -source internal/application/handler/handler.go -destination=internal/application/handler/handler_mock_test.go -package=handler

type Service interface {
	PlaceOrder(ctx context.Context, in domain.NewOrder) (*domain.Order, error)
}

type brk interface {
	Allow() error
	Success()
	Failure()
}

// Handler places orders arriving on the order stream.
type Handler struct {
	service     Service
	breaker     brk
	logger      *zap.Logger
	retryPolicy config.Retry
}

func NewHandler(service Service, brk brk, retryPolicy config.Retry, logger *zap.Logger) *Handler {
	return &Handler{
		service:     service,
		breaker:     brk,
		logger:      logger,
		retryPolicy: retryPolicy,
	}
}

// Handle is called by the consumer for a single message. A nil return
// commits the offset.
//
// Messages that can never succeed (bad json, failed validation, unknown
// product) are logged and committed so they do not block the partition.
// So is an order that was stored but failed afterwards (stock update or
// cache invalidation): redelivery would place it twice.
func (h *Handler) Handle(ctx context.Context, message kafkago.Message) error {
	if err := h.breaker.Allow(); err != nil {
		h.logger.Warn("Circuit breaker is open",
			zap.Error(err),
			zap.Int("partition", message.Partition),
			zap.Int64("offset", message.Offset),
		)
		return fmt.Errorf("%w: %v", ErrCircuitOpen, err)
	}

	var in domain.NewOrder
	if err := json.Unmarshal(message.Value, &in); err != nil {
		h.logger.Warn("Dropping message with bad json",
			zap.Error(err),
			zap.Int("partition", message.Partition),
			zap.Int64("offset", message.Offset),
		)
		return nil
	}

	var order *domain.Order
	err := retry.Do(ctx, h.retryPolicy, func() error {
		var err error
		order, err = h.service.PlaceOrder(ctx, in)
		if isStored(err) || errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrNotFound) {
			return retry.Permanent(err)
		}
		return err
	})

	switch {
	case err == nil:
	case isStored(err):
		h.logger.Error("Order stored but not completed",
			zap.String("user", in.User),
			zap.Error(err),
			zap.Int("partition", message.Partition),
			zap.Int64("offset", message.Offset),
		)
		h.breaker.Failure()
		return nil
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrNotFound):
		h.logger.Warn("Dropping rejected order",
			zap.String("user", in.User),
			zap.Error(err),
			zap.Int("partition", message.Partition),
			zap.Int64("offset", message.Offset),
		)
		h.breaker.Success()
		return nil
	default:
		h.logger.Error("Place order failed after retries",
			zap.String("user", in.User),
			zap.Error(err),
			zap.Int("partition", message.Partition),
			zap.Int64("offset", message.Offset),
		)
		h.breaker.Failure()
		return fmt.Errorf("%w: %v", ErrPlaceOrder, err)
	}

	h.breaker.Success()
	h.logger.Info("Successfully placed order from stream",
		zap.String("order_id", order.ID),
		zap.String("user", order.User),
		zap.Int("partition", message.Partition),
		zap.Int64("offset", message.Offset),
		zap.Int("key_bytes", len(message.Key)),
		zap.Int("value_bytes", len(message.Value)),
	)
	return nil
}

// isStored reports whether err happened after the order row was written.
func isStored(err error) bool {
	return errors.Is(err, domain.ErrOrderStored) || errors.Is(err, cache.ErrInvalidation)
}
