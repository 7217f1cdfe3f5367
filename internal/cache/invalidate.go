package cache

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/TemirB/shop-dashboard/internal/observability"
)

// ErrInvalidation marks a failed invalidation. The write that triggered it
// has already been committed.
var ErrInvalidation = errors.New("invalidate cache")

// Event describes what a write touched. Each flag selects a group of keys.
type Event struct {
	Order      bool
	Product    bool
	Admin      bool
	UserID     string
	OrderID    string
	ProductIDs []string
}

// Keys lists every cache key the event invalidates.
func (e Event) Keys() []string {
	var keys []string
	if e.Product {
		keys = append(keys, KeyLatestProducts, KeyCategories, KeyAllProducts)
		for _, id := range e.ProductIDs {
			if id != "" {
				keys = append(keys, ProductKey(id))
			}
		}
	}
	if e.Order {
		keys = append(keys, KeyAllOrders)
		if e.UserID != "" {
			keys = append(keys, MyOrdersKey(e.UserID))
		}
		if e.OrderID != "" {
			keys = append(keys, OrderKey(e.OrderID))
		}
	}
	if e.Admin {
		keys = append(keys, AdminKeys...)
	}
	return keys
}

// Invalidator drops cached views after a write. It is called synchronously
// by the write path before the write is acknowledged.
type Invalidator struct {
	loader  *Loader
	logger  *zap.Logger
	metrics observability.Metrics
}

func NewInvalidator(loader *Loader, logger *zap.Logger, metrics observability.Metrics) *Invalidator {
	if metrics == nil {
		metrics = observability.NewNoop()
	}
	return &Invalidator{
		loader:  loader,
		logger:  logger,
		metrics: metrics,
	}
}

func (i *Invalidator) Invalidate(ctx context.Context, e Event) error {
	keys := e.Keys()
	if len(keys) == 0 {
		return nil
	}
	if err := i.loader.Evict(ctx, keys...); err != nil {
		i.logger.Error("Cache invalidation failed",
			zap.Strings("keys", keys),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %w", ErrInvalidation, err)
	}

	i.metrics.ObserveInvalidation(len(keys))
	i.logger.Debug("Cache invalidated", zap.Strings("keys", keys))
	return nil
}
