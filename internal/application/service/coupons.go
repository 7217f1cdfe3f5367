package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/TemirB/shop-dashboard/internal/domain"
)

func (s *Service) NewCoupon(ctx context.Context, in domain.NewCoupon) (*domain.Coupon, error) {
	if err := s.check(in); err != nil {
		return nil, err
	}
	c := &domain.Coupon{Code: in.Code, Amount: in.Amount}
	if err := s.coupons.Create(ctx, c); err != nil {
		return nil, err
	}
	s.logger.Info("Coupon created", zap.String("code", c.Code))
	return c, nil
}

// Discount returns the amount of the coupon with the given code.
func (s *Service) Discount(ctx context.Context, code string) (float64, error) {
	c, err := s.coupons.GetByCode(ctx, code)
	if errors.Is(err, domain.ErrNotFound) {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidCoupon, code)
	}
	if err != nil {
		return 0, err
	}
	return c.Amount, nil
}

func (s *Service) Coupons(ctx context.Context) ([]domain.Coupon, error) {
	coupons, err := s.coupons.List(ctx)
	return nonNil(coupons), err
}

func (s *Service) DeleteCoupon(ctx context.Context, id string) (*domain.Coupon, error) {
	c, err := s.coupons.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Coupon deleted", zap.String("code", c.Code))
	return c, nil
}
