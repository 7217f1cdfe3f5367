// Package dashboard computes the four admin reports. Each report is served
// read-through from the cache under a fixed key; a miss fans out every query
// the report needs, joins them and reduces the results.
package dashboard

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/TemirB/shop-dashboard/internal/cache"
	"github.com/TemirB/shop-dashboard/internal/domain"
)

//go:generate mockgen -source internal/application/dashboard/dashboard.go -destination=internal/application/dashboard/dashboard_mock_test.go -package=dashboard

type OrderReader interface {
	Find(ctx context.Context, f domain.OrderFilter, opts domain.FindOptions) ([]domain.Order, error)
	Count(ctx context.Context, f domain.OrderFilter) (int64, error)
}

type ProductReader interface {
	Find(ctx context.Context, f domain.ProductFilter, opts domain.FindOptions) ([]domain.Product, error)
	Count(ctx context.Context, f domain.ProductFilter) (int64, error)
	DistinctCategories(ctx context.Context) ([]string, error)
}

type UserReader interface {
	Find(ctx context.Context, f domain.UserFilter, opts domain.FindOptions) ([]domain.User, error)
	Count(ctx context.Context, f domain.UserFilter) (int64, error)
}

const latestTransactions = 4

type Dashboard struct {
	orders   OrderReader
	products ProductReader
	users    UserReader
	loader   *cache.Loader
	logger   *zap.Logger
	now      func() time.Time
}

type Option func(*Dashboard)

// WithClock replaces time.Now as the reference point of every window.
func WithClock(now func() time.Time) Option {
	return func(d *Dashboard) { d.now = now }
}

func New(orders OrderReader, products ProductReader, users UserReader, loader *cache.Loader, logger *zap.Logger, opts ...Option) *Dashboard {
	d := &Dashboard{
		orders:   orders,
		products: products,
		users:    users,
		loader:   loader,
		logger:   logger,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Dashboard) Stats(ctx context.Context) (domain.DashboardStats, cache.LookupStats, error) {
	return cache.Load(ctx, d.loader, cache.KeyAdminStats, d.computeStats)
}

func (d *Dashboard) Pie(ctx context.Context) (domain.PieChartData, cache.LookupStats, error) {
	return cache.Load(ctx, d.loader, cache.KeyAdminPieChart, d.computePie)
}

func (d *Dashboard) Bar(ctx context.Context) (domain.BarChartData, cache.LookupStats, error) {
	return cache.Load(ctx, d.loader, cache.KeyAdminBarChart, d.computeBar)
}

func (d *Dashboard) Line(ctx context.Context) (domain.LineChartData, cache.LookupStats, error) {
	return cache.Load(ctx, d.loader, cache.KeyAdminLineChart, d.computeLine)
}

// Warm fills the cache with all four reports. A failing report does not stop
// the others; the failures are logged and returned joined.
func (d *Dashboard) Warm(ctx context.Context) error {
	reports := []struct {
		key string
		run func(context.Context) error
	}{
		{cache.KeyAdminStats, func(ctx context.Context) error { _, _, err := d.Stats(ctx); return err }},
		{cache.KeyAdminPieChart, func(ctx context.Context) error { _, _, err := d.Pie(ctx); return err }},
		{cache.KeyAdminBarChart, func(ctx context.Context) error { _, _, err := d.Bar(ctx); return err }},
		{cache.KeyAdminLineChart, func(ctx context.Context) error { _, _, err := d.Line(ctx); return err }},
	}

	var errs []error
	for _, r := range reports {
		if err := r.run(ctx); err != nil {
			d.logger.Warn("Dashboard warm-up failed", zap.String("report", r.key), zap.Error(err))
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
