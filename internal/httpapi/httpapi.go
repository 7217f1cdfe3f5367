// Package httpapi serves the shop's REST surface under /api/v1.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/TemirB/shop-dashboard/internal/application/service"
	"github.com/TemirB/shop-dashboard/internal/cache"
	"github.com/TemirB/shop-dashboard/internal/domain"
	"github.com/TemirB/shop-dashboard/internal/observability"
)

//go:generate mockgen -source internal/httpapi/httpapi.go -destination=internal/httpapi/httpapi_mock_test.go -package=httpapi

type Shop interface {
	NewUser(ctx context.Context, in domain.NewUser) (*domain.User, bool, error)
	Users(ctx context.Context) ([]domain.User, error)
	User(ctx context.Context, id string) (*domain.User, error)
	DeleteUser(ctx context.Context, id string) error

	NewProduct(ctx context.Context, in domain.NewProduct) (*domain.Product, error)
	LatestProducts(ctx context.Context) ([]domain.Product, cache.LookupStats, error)
	Categories(ctx context.Context) ([]string, cache.LookupStats, error)
	AdminProducts(ctx context.Context) ([]domain.Product, cache.LookupStats, error)
	SearchProducts(ctx context.Context, q service.ProductQuery) (service.ProductPage, error)
	Product(ctx context.Context, id string) (*domain.Product, cache.LookupStats, error)
	UpdateProduct(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error

	PlaceOrderWithStats(ctx context.Context, in domain.NewOrder) (*domain.Order, service.WriteStats, error)
	MyOrders(ctx context.Context, userID string) ([]domain.Order, cache.LookupStats, error)
	AllOrders(ctx context.Context) ([]domain.Order, cache.LookupStats, error)
	Order(ctx context.Context, id string) (*domain.Order, cache.LookupStats, error)
	ProcessOrder(ctx context.Context, id string) (*domain.Order, error)
	DeleteOrder(ctx context.Context, id string) error

	NewCoupon(ctx context.Context, in domain.NewCoupon) (*domain.Coupon, error)
	Discount(ctx context.Context, code string) (float64, error)
	Coupons(ctx context.Context) ([]domain.Coupon, error)
	DeleteCoupon(ctx context.Context, id string) (*domain.Coupon, error)
}

type Reports interface {
	Stats(ctx context.Context) (domain.DashboardStats, cache.LookupStats, error)
	Pie(ctx context.Context) (domain.PieChartData, cache.LookupStats, error)
	Bar(ctx context.Context) (domain.BarChartData, cache.LookupStats, error)
	Line(ctx context.Context) (domain.LineChartData, cache.LookupStats, error)
}

type Server struct {
	shop     Shop
	reports  Reports
	router   chi.Router
	validate *validator.Validate
	logger   *zap.Logger
	metrics  observability.Metrics
}

type Option func(*Server)

// WithMetricsHandler mounts h at /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) {
		s.router.Method(http.MethodGet, "/metrics", h)
	}
}

func New(shop Shop, reports Reports, logger *zap.Logger, metrics observability.Metrics, opts ...Option) *Server {
	if metrics == nil {
		metrics = observability.NewNoop()
	}
	s := &Server{
		shop:     shop,
		reports:  reports,
		router:   chi.NewRouter(),
		validate: validator.New(),
		logger:   logger,
		metrics:  metrics,
	}
	s.routes()
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Server) routes() {
	r := s.router
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(s.logger))
	r.Use(middleware.Recoverer)
	r.Use(ServerTimingApp(s.metrics))

	r.Get("/healthz", s.health)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/user", func(r chi.Router) {
			r.Post("/new", s.newUser)
			r.Get("/all", s.listUsers)
			r.Get("/{id}", s.getUser)
			r.Delete("/{id}", s.deleteUser)
		})

		r.Route("/product", func(r chi.Router) {
			r.Post("/new", s.newProduct)
			r.Get("/latest", s.latestProducts)
			r.Get("/categories", s.categories)
			r.Get("/admin-products", s.adminProducts)
			r.Get("/all", s.searchProducts)
			r.Get("/{id}", s.getProduct)
			r.Put("/{id}", s.updateProduct)
			r.Delete("/{id}", s.deleteProduct)
		})

		r.Route("/order", func(r chi.Router) {
			r.Post("/new", s.newOrder)
			r.Get("/my", s.myOrders)
			r.Get("/all", s.allOrders)
			r.Get("/{id}", s.getOrder)
			r.Put("/{id}", s.processOrder)
			r.Delete("/{id}", s.deleteOrder)
		})

		r.Route("/payment", func(r chi.Router) {
			r.Get("/discount", s.discount)
			r.Post("/coupon/new", s.newCoupon)
			r.Get("/coupon/all", s.listCoupons)
			r.Delete("/coupon/{id}", s.deleteCoupon)
		})

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/stats", s.dashboardStats)
			r.Get("/pie", s.dashboardPie)
			r.Get("/bar", s.dashboardBar)
			r.Get("/line", s.dashboardLine)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, http.StatusNotFound, false, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, http.StatusMethodNotAllowed, false, "Method not allowed")
	})
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, envelope{"status": "ok"})
}

// ListenAndServe serves until ctx is done, then drains in-flight requests.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Handler() http.Handler { return s.router }
