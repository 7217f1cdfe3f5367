package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/TemirB/shop-dashboard/internal/cache"
	"github.com/TemirB/shop-dashboard/internal/domain"
)

const latestProducts = 5

// ProductQuery is the storefront search. Zero values are ignored.
type ProductQuery struct {
	Search   string
	Category string
	MaxPrice *float64
	// Sort orders by price; SortNone keeps the store order.
	Sort domain.SortOrder
	Page int
}

type ProductPage struct {
	Products  []domain.Product `json:"products"`
	TotalPage int              `json:"totalPage"`
}

func (s *Service) NewProduct(ctx context.Context, in domain.NewProduct) (*domain.Product, error) {
	if err := s.check(in); err != nil {
		return nil, err
	}

	p := &domain.Product{
		Name:     in.Name,
		Photo:    in.Photo,
		Price:    in.Price,
		Stock:    in.Stock,
		Category: strings.ToLower(in.Category),
	}

	t0 := time.Now()
	if err := s.products.Create(ctx, p); err != nil {
		return nil, err
	}
	s.metrics.ObserveWrite("product", convertToMs(t0))

	if err := s.invalidate(ctx, cache.Event{Product: true, Admin: true, ProductIDs: []string{p.ID}}, "product", p.ID); err != nil {
		return nil, err
	}

	s.logger.Info("Product created", zap.String("product_id", p.ID), zap.String("category", p.Category))
	return p, nil
}

func (s *Service) LatestProducts(ctx context.Context) ([]domain.Product, cache.LookupStats, error) {
	return cache.Load(ctx, s.loader, cache.KeyLatestProducts, func(ctx context.Context) ([]domain.Product, error) {
		products, err := s.products.Find(ctx, domain.ProductFilter{}, domain.FindOptions{
			SortBy: domain.SortByCreatedAt,
			Order:  domain.SortDesc,
			Limit:  latestProducts,
		})
		return nonNil(products), err
	})
}

func (s *Service) Categories(ctx context.Context) ([]string, cache.LookupStats, error) {
	return cache.Load(ctx, s.loader, cache.KeyCategories, func(ctx context.Context) ([]string, error) {
		categories, err := s.products.DistinctCategories(ctx)
		return nonNil(categories), err
	})
}

func (s *Service) AdminProducts(ctx context.Context) ([]domain.Product, cache.LookupStats, error) {
	return cache.Load(ctx, s.loader, cache.KeyAllProducts, func(ctx context.Context) ([]domain.Product, error) {
		products, err := s.products.Find(ctx, domain.ProductFilter{}, domain.FindOptions{})
		return nonNil(products), err
	})
}

func (s *Service) Product(ctx context.Context, id string) (*domain.Product, cache.LookupStats, error) {
	return cache.Load(ctx, s.loader, cache.ProductKey(id), func(ctx context.Context) (*domain.Product, error) {
		return s.products.GetByID(ctx, id)
	})
}

// SearchProducts returns one page of matching products and the page count.
// Search results are not cached.
func (s *Service) SearchProducts(ctx context.Context, q ProductQuery) (ProductPage, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	filter := domain.ProductFilter{
		Search:   q.Search,
		Category: q.Category,
		MaxPrice: q.MaxPrice,
	}
	opts := domain.FindOptions{
		Limit: s.perPage,
		Skip:  s.perPage * (page - 1),
	}
	if q.Sort != domain.SortNone {
		opts.SortBy = domain.SortByPrice
		opts.Order = q.Sort
	}

	var (
		products []domain.Product
		total    int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		products, err = s.products.Find(gctx, filter, opts)
		return err
	})
	g.Go(func() (err error) {
		total, err = s.products.Count(gctx, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		return ProductPage{}, err
	}

	return ProductPage{
		Products:  nonNil(products),
		TotalPage: int((total + int64(s.perPage) - 1) / int64(s.perPage)),
	}, nil
}

func (s *Service) UpdateProduct(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error) {
	if err := s.check(patch); err != nil {
		return nil, err
	}
	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(p)
	p.Category = strings.ToLower(p.Category)

	t0 := time.Now()
	if err := s.products.Update(ctx, p); err != nil {
		return nil, err
	}
	s.metrics.ObserveWrite("product", convertToMs(t0))

	if err := s.invalidate(ctx, cache.Event{Product: true, Admin: true, ProductIDs: []string{id}}, "product", id); err != nil {
		return nil, err
	}

	s.logger.Info("Product updated", zap.String("product_id", id))
	return p, nil
}

func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	t0 := time.Now()
	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}
	s.metrics.ObserveWrite("product", convertToMs(t0))

	if err := s.invalidate(ctx, cache.Event{Product: true, Admin: true, ProductIDs: []string{id}}, "product", id); err != nil {
		return err
	}

	s.logger.Info("Product deleted", zap.String("product_id", id))
	return nil
}
