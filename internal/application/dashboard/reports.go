package dashboard

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/TemirB/shop-dashboard/internal/analytics"
	"github.com/TemirB/shop-dashboard/internal/domain"
)

const (
	halfYear = 6
	fullYear = 12

	// Age group upper bounds, exclusive.
	teenAge  = 20
	adultAge = 40
)

var (
	all         = domain.FindOptions{}
	latestFirst = domain.FindOptions{SortBy: domain.SortByCreatedAt, Order: domain.SortDesc, Limit: latestTransactions}

	orderTotal = func(o domain.Order) float64 { return o.Total }
	orderDisc  = func(o domain.Order) float64 { return o.Discount }
	orderTax   = func(o domain.Order) float64 { return o.Tax }
	orderShip  = func(o domain.Order) float64 { return o.ShippingCharges }
)

func (d *Dashboard) computeStats(ctx context.Context) (domain.DashboardStats, error) {
	w := windowsAt(d.now())

	var (
		thisMonthOrders, lastMonthOrders     []domain.Order
		thisMonthProducts, lastMonthProducts int64
		thisMonthUsers, lastMonthUsers       int64
		lastSixMonthOrders, allOrders        []domain.Order
		productCount, userCount, femaleCount int64
		categories                           []string
		latest                               []domain.Order
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		thisMonthOrders, err = d.orders.Find(gctx, domain.OrderFilter{Created: w.thisMonth}, all)
		return err
	})
	g.Go(func() (err error) {
		lastMonthOrders, err = d.orders.Find(gctx, domain.OrderFilter{Created: w.lastMonth}, all)
		return err
	})
	g.Go(func() (err error) {
		thisMonthProducts, err = d.products.Count(gctx, domain.ProductFilter{Created: w.thisMonth})
		return err
	})
	g.Go(func() (err error) {
		lastMonthProducts, err = d.products.Count(gctx, domain.ProductFilter{Created: w.lastMonth})
		return err
	})
	g.Go(func() (err error) {
		thisMonthUsers, err = d.users.Count(gctx, domain.UserFilter{Created: w.thisMonth})
		return err
	})
	g.Go(func() (err error) {
		lastMonthUsers, err = d.users.Count(gctx, domain.UserFilter{Created: w.lastMonth})
		return err
	})
	g.Go(func() (err error) {
		lastSixMonthOrders, err = d.orders.Find(gctx, domain.OrderFilter{Created: w.sixMonths}, all)
		return err
	})
	g.Go(func() (err error) {
		productCount, err = d.products.Count(gctx, domain.ProductFilter{})
		return err
	})
	g.Go(func() (err error) {
		userCount, err = d.users.Count(gctx, domain.UserFilter{})
		return err
	})
	g.Go(func() (err error) {
		allOrders, err = d.orders.Find(gctx, domain.OrderFilter{}, all)
		return err
	})
	g.Go(func() (err error) {
		categories, err = d.products.DistinctCategories(gctx)
		return err
	})
	g.Go(func() (err error) {
		femaleCount, err = d.users.Count(gctx, domain.UserFilter{Gender: domain.GenderFemale})
		return err
	})
	g.Go(func() (err error) {
		latest, err = d.orders.Find(gctx, domain.OrderFilter{}, latestFirst)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.DashboardStats{}, err
	}

	shares, err := d.categoryShares(ctx, categories, productCount)
	if err != nil {
		return domain.DashboardStats{}, err
	}

	thisMonthRevenue := analytics.Sum(thisMonthOrders, orderTotal)
	lastMonthRevenue := analytics.Sum(lastMonthOrders, orderTotal)

	transactions := make([]domain.Transaction, 0, len(latest))
	for _, o := range latest {
		transactions = append(transactions, domain.Transaction{
			ID:       o.ID,
			Discount: o.Discount,
			Amount:   o.Total,
			Quantity: len(o.OrderItems),
			Status:   o.Status,
		})
	}

	stats := domain.DashboardStats{
		CategoriesCount: shares,
		ChangePercent: domain.ChangePercent{
			Revenue: analytics.CalculatePercentage(thisMonthRevenue, lastMonthRevenue),
			Product: analytics.CalculatePercentage(float64(thisMonthProducts), float64(lastMonthProducts)),
			User:    analytics.CalculatePercentage(float64(thisMonthUsers), float64(lastMonthUsers)),
			Order:   analytics.CalculatePercentage(float64(len(thisMonthOrders)), float64(len(lastMonthOrders))),
		},
		Count: domain.Counts{
			User:    userCount,
			Product: productCount,
			Order:   int64(len(allOrders)),
			Revenue: analytics.Sum(allOrders, orderTotal),
		},
		Chart: domain.StatsChart{
			Order:   analytics.BucketByMonth(halfYear, w.now, lastSixMonthOrders, nil),
			Revenue: analytics.BucketByMonth(halfYear, w.now, lastSixMonthOrders, orderTotal),
		},
		UserRatio: domain.UserRatio{
			Male:   userCount - femaleCount,
			Female: femaleCount,
		},
		LatestTransaction: transactions,
	}

	d.logger.Debug("Dashboard stats computed",
		zap.Int64("orders", stats.Count.Order),
		zap.Int("categories", len(categories)),
	)
	return stats, nil
}

func (d *Dashboard) computePie(ctx context.Context) (domain.PieChartData, error) {
	now := d.now()

	var (
		processing, shipped, delivered int64
		categories                     []string
		productCount, outOfStockCount  int64
		allOrders                      []domain.Order
		allUsers                       []domain.User
		adminCount, customerCount      int64
	)

	zero := 0
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		processing, err = d.orders.Count(gctx, domain.OrderFilter{Status: domain.StatusProcessing})
		return err
	})
	g.Go(func() (err error) {
		shipped, err = d.orders.Count(gctx, domain.OrderFilter{Status: domain.StatusShipped})
		return err
	})
	g.Go(func() (err error) {
		delivered, err = d.orders.Count(gctx, domain.OrderFilter{Status: domain.StatusDelivered})
		return err
	})
	g.Go(func() (err error) {
		categories, err = d.products.DistinctCategories(gctx)
		return err
	})
	g.Go(func() (err error) {
		productCount, err = d.products.Count(gctx, domain.ProductFilter{})
		return err
	})
	g.Go(func() (err error) {
		outOfStockCount, err = d.products.Count(gctx, domain.ProductFilter{Stock: &zero})
		return err
	})
	g.Go(func() (err error) {
		allOrders, err = d.orders.Find(gctx, domain.OrderFilter{}, all)
		return err
	})
	g.Go(func() (err error) {
		allUsers, err = d.users.Find(gctx, domain.UserFilter{}, all)
		return err
	})
	g.Go(func() (err error) {
		adminCount, err = d.users.Count(gctx, domain.UserFilter{Role: domain.RoleAdmin})
		return err
	})
	g.Go(func() (err error) {
		customerCount, err = d.users.Count(gctx, domain.UserFilter{Role: domain.RoleUser})
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.PieChartData{}, err
	}

	shares, err := d.categoryShares(ctx, categories, productCount)
	if err != nil {
		return domain.PieChartData{}, err
	}

	gross := analytics.Sum(allOrders, orderTotal)
	discount := analytics.Sum(allOrders, orderDisc)
	productionCost := analytics.Sum(allOrders, orderShip)
	burnt := analytics.Sum(allOrders, orderTax)
	net, marketing := analytics.NetMargin(gross, discount, productionCost, burnt)

	var ages domain.UsersAgeGroup
	for _, u := range allUsers {
		switch age := u.Age(now); {
		case age < teenAge:
			ages.Teen++
		case age < adultAge:
			ages.Adult++
		default:
			ages.Old++
		}
	}

	return domain.PieChartData{
		OrderFullfillment: domain.OrderFulfillment{
			Processing: processing,
			Shipped:    shipped,
			Delivered:  delivered,
		},
		ProductCategories: shares,
		StockAvailability: domain.StockAvailability{
			InStock:    productCount - outOfStockCount,
			OutOfStock: outOfStockCount,
		},
		RevenueDistribution: domain.RevenueDistribution{
			NetMargin:      net,
			Discount:       discount,
			ProductionCost: productionCost,
			Burnt:          burnt,
			MarketingCost:  marketing,
		},
		AdminCustomer: domain.AdminCustomer{
			Admin:    adminCount,
			Customer: customerCount,
		},
		UsersAgeGroup: ages,
	}, nil
}

func (d *Dashboard) computeBar(ctx context.Context) (domain.BarChartData, error) {
	w := windowsAt(d.now())

	var (
		products []domain.Product
		users    []domain.User
		orders   []domain.Order
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		products, err = d.products.Find(gctx, domain.ProductFilter{Created: w.sixMonths}, all)
		return err
	})
	g.Go(func() (err error) {
		users, err = d.users.Find(gctx, domain.UserFilter{Created: w.sixMonths}, all)
		return err
	})
	g.Go(func() (err error) {
		orders, err = d.orders.Find(gctx, domain.OrderFilter{Created: w.year}, all)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.BarChartData{}, err
	}

	return domain.BarChartData{
		Products: analytics.BucketByMonth(halfYear, w.now, products, nil),
		Users:    analytics.BucketByMonth(halfYear, w.now, users, nil),
		Orders:   analytics.BucketByMonth(fullYear, w.now, orders, nil),
	}, nil
}

func (d *Dashboard) computeLine(ctx context.Context) (domain.LineChartData, error) {
	w := windowsAt(d.now())

	var (
		products []domain.Product
		users    []domain.User
		orders   []domain.Order
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		products, err = d.products.Find(gctx, domain.ProductFilter{Created: w.year}, all)
		return err
	})
	g.Go(func() (err error) {
		users, err = d.users.Find(gctx, domain.UserFilter{Created: w.year}, all)
		return err
	})
	g.Go(func() (err error) {
		orders, err = d.orders.Find(gctx, domain.OrderFilter{Created: w.year}, all)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.LineChartData{}, err
	}

	return domain.LineChartData{
		Products: analytics.BucketByMonth(fullYear, w.now, products, nil),
		Users:    analytics.BucketByMonth(fullYear, w.now, users, nil),
		Discount: analytics.BucketByMonth(fullYear, w.now, orders, orderDisc),
		Revenue:  analytics.BucketByMonth(fullYear, w.now, orders, orderTotal),
	}, nil
}

// categoryShares counts products per category concurrently and converts the
// counts to shares of total.
func (d *Dashboard) categoryShares(ctx context.Context, categories []string, total int64) ([]domain.CategoryShare, error) {
	counts := make([]int64, len(categories))
	g, gctx := errgroup.WithContext(ctx)
	for i, c := range categories {
		i, c := i, c
		g.Go(func() (err error) {
			counts[i], err = d.products.Count(gctx, domain.ProductFilter{Category: c})
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	shares := analytics.CategoryShare(categories, counts, total)
	out := make([]domain.CategoryShare, len(shares))
	for i, s := range shares {
		out[i] = s
	}
	return out, nil
}
