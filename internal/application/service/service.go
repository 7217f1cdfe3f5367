// Package service implements the shop's use cases. Reads go through the
// read-through cache; every write invalidates the views it affects before
// returning, and an invalidation failure fails the write.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/TemirB/shop-dashboard/internal/cache"
	"github.com/TemirB/shop-dashboard/internal/domain"
	"github.com/TemirB/shop-dashboard/internal/observability"
)

//go:generate mockgen -source internal/application/service/service.go -destination=internal/application/service/service_mock_test.go -package=service

type Invalidator interface {
	Invalidate(ctx context.Context, e cache.Event) error
}

const defaultPerPage = 8

type Service struct {
	orders   domain.OrderRepository
	products domain.ProductRepository
	users    domain.UserRepository
	coupons  domain.CouponRepository

	loader      *cache.Loader
	invalidator Invalidator
	validate    *validator.Validate
	perPage     int

	logger  *zap.Logger
	metrics observability.Metrics
}

func NewService(
	store *domain.Store,
	loader *cache.Loader,
	invalidator Invalidator,
	perPage int,
	logger *zap.Logger,
	metrics observability.Metrics,
) *Service {
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	if metrics == nil {
		metrics = observability.NewNoop()
	}
	return &Service{
		orders:      store.Orders,
		products:    store.Products,
		users:       store.Users,
		coupons:     store.Coupons,
		loader:      loader,
		invalidator: invalidator,
		validate:    validator.New(),
		perPage:     perPage,
		logger:      logger,
		metrics:     metrics,
	}
}

func (s *Service) check(v any) error {
	if err := s.validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return fmt.Errorf("%w: %s", domain.ErrValidation, verrs.Error())
		}
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	return nil
}

// invalidate is the last step of every write. The write itself has already
// been committed when it fails, so the error is logged with the entity.
func (s *Service) invalidate(ctx context.Context, e cache.Event, entity, id string) error {
	if err := s.invalidator.Invalidate(ctx, e); err != nil {
		s.logger.Error("Write committed but cache invalidation failed",
			zap.String("entity", entity),
			zap.String("id", id),
			zap.Error(err),
		)
		return err
	}
	return nil
}
