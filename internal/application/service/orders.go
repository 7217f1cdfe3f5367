package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/TemirB/shop-dashboard/internal/cache"
	"github.com/TemirB/shop-dashboard/internal/domain"
)

// PlaceOrder stores a new order, takes the ordered quantities out of stock
// and drops every view the order touches.
func (s *Service) PlaceOrder(ctx context.Context, in domain.NewOrder) (*domain.Order, error) {
	o, _, err := s.PlaceOrderWithStats(ctx, in)
	return o, err
}

func (s *Service) PlaceOrderWithStats(ctx context.Context, in domain.NewOrder) (*domain.Order, WriteStats, error) {
	var st WriteStats

	if err := s.check(in); err != nil {
		return nil, st, err
	}
	for _, it := range in.OrderItems {
		if _, err := s.products.GetByID(ctx, it.ProductID); err != nil {
			return nil, st, err
		}
	}

	status := in.Status
	if status == "" {
		status = domain.StatusProcessing
	}
	order := &domain.Order{
		ShippingInfo:    in.ShippingInfo,
		User:            in.User,
		Subtotal:        in.Subtotal,
		Tax:             in.Tax,
		ShippingCharges: in.ShippingCharges,
		Discount:        in.Discount,
		Total:           in.Total,
		Status:          status,
		OrderItems:      in.OrderItems,
	}

	t0 := time.Now()
	if err := s.orders.Create(ctx, order); err != nil {
		s.logger.Error("Error while creating order in db",
			zap.String("user", in.User),
			zap.Error(err),
		)
		return nil, st, err
	}
	// From here on the order exists: every exit drops the views it touches.
	event := cache.Event{
		Order:      true,
		Product:    true,
		Admin:      true,
		UserID:     order.User,
		OrderID:    order.ID,
		ProductIDs: order.ProductIDs(),
	}
	for _, it := range order.OrderItems {
		if err := s.products.AdjustStock(ctx, it.ProductID, -it.Quantity); err != nil {
			s.logger.Error("Error while reducing stock",
				zap.String("order_id", order.ID),
				zap.String("product_id", it.ProductID),
				zap.Error(err),
			)
			err = fmt.Errorf("%w: order %s: reduce stock of %s: %v", domain.ErrOrderStored, order.ID, it.ProductID, err)
			if invErr := s.invalidate(ctx, event, "order", order.ID); invErr != nil {
				err = errors.Join(err, invErr)
			}
			return nil, st, err
		}
	}
	st.DBWriteMs = convertToMs(t0)

	if err := s.invalidate(ctx, event, "order", order.ID); err != nil {
		return nil, st, err
	}

	s.metrics.ObserveWrite("order", st.DBWriteMs)
	s.logger.Info("Order placed",
		zap.String("order_id", order.ID),
		zap.String("user", order.User),
		zap.Int("items", len(order.OrderItems)),
		zap.Float64("db_write_ms", st.DBWriteMs),
	)
	return order, st, nil
}

func (s *Service) MyOrders(ctx context.Context, userID string) ([]domain.Order, cache.LookupStats, error) {
	if userID == "" {
		return nil, cache.LookupStats{}, fmt.Errorf("%w: user id is required", domain.ErrValidation)
	}
	return cache.Load(ctx, s.loader, cache.MyOrdersKey(userID), func(ctx context.Context) ([]domain.Order, error) {
		orders, err := s.orders.Find(ctx, domain.OrderFilter{User: userID}, domain.FindOptions{})
		return nonNil(orders), err
	})
}

func (s *Service) AllOrders(ctx context.Context) ([]domain.Order, cache.LookupStats, error) {
	return cache.Load(ctx, s.loader, cache.KeyAllOrders, func(ctx context.Context) ([]domain.Order, error) {
		orders, err := s.orders.Find(ctx, domain.OrderFilter{}, domain.FindOptions{})
		return nonNil(orders), err
	})
}

func (s *Service) Order(ctx context.Context, id string) (*domain.Order, cache.LookupStats, error) {
	return cache.Load(ctx, s.loader, cache.OrderKey(id), func(ctx context.Context) (*domain.Order, error) {
		return s.orders.GetByID(ctx, id)
	})
}

// ProcessOrder moves an order one step along Processing, Shipped, Delivered.
func (s *Service) ProcessOrder(ctx context.Context, id string) (*domain.Order, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	t0 := time.Now()
	order.Status = order.Status.Next()
	if err := s.orders.UpdateStatus(ctx, id, order.Status); err != nil {
		return nil, err
	}
	s.metrics.ObserveWrite("order", convertToMs(t0))

	if err := s.invalidate(ctx, cache.Event{
		Order:   true,
		Admin:   true,
		UserID:  order.User,
		OrderID: order.ID,
	}, "order", id); err != nil {
		return nil, err
	}

	s.logger.Info("Order processed",
		zap.String("order_id", id),
		zap.String("status", string(order.Status)),
	)
	return order, nil
}

func (s *Service) DeleteOrder(ctx context.Context, id string) error {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return err
	}

	t0 := time.Now()
	if err := s.orders.Delete(ctx, id); err != nil {
		return err
	}
	s.metrics.ObserveWrite("order", convertToMs(t0))

	if err := s.invalidate(ctx, cache.Event{
		Order:   true,
		Admin:   true,
		UserID:  order.User,
		OrderID: order.ID,
	}, "order", id); err != nil {
		return err
	}

	s.logger.Info("Order deleted", zap.String("order_id", id))
	return nil
}
