package main

import (
	"context"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/TemirB/shop-dashboard/internal/domain"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

type Stats struct {
	Running   bool  `json:"is_running"`
	TotalSent int64 `json:"total_sent"`
	Failed    int64 `json:"failed"`
}

// Generator publishes random new-order messages at a fixed rate.
type Generator struct {
	writer  messageWriter
	next    func() domain.NewOrder
	logger  *zap.Logger
	mu      sync.Mutex
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	running atomic.Bool
	sent    atomic.Int64
	failed  atomic.Int64
}

func NewGenerator(w messageWriter, next func() domain.NewOrder, logger *zap.Logger) *Generator {
	return &Generator{writer: w, next: next, logger: logger}
}

// Start runs for duration at rate messages per second. It reports false when
// a run is already in progress.
func (g *Generator) Start(rate int, duration time.Duration) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.running.CompareAndSwap(false, true) {
		return false
	}
	g.sent.Store(0)
	g.failed.Store(0)

	ctx, cancel := context.WithTimeout(context.Background(), duration)
	g.cancel = cancel

	g.logger.Info("Starting load", zap.Int("rate", rate), zap.Duration("duration", duration))

	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		defer g.running.Store(false)
		defer cancel()

		ticker := time.NewTicker(time.Second / time.Duration(rate))
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				g.publish(ctx)
			case <-ctx.Done():
				g.logger.Info("Load finished",
					zap.Int64("sent", g.sent.Load()),
					zap.Int64("failed", g.failed.Load()),
				)
				return
			}
		}
	}()
	return true
}

func (g *Generator) publish(ctx context.Context) {
	order := g.next()
	value, err := json.Marshal(order)
	if err != nil {
		g.logger.Error("Error marshaling order", zap.Error(err))
		g.failed.Add(1)
		return
	}

	err = g.writer.WriteMessages(ctx, kafkago.Message{
		Key:   []byte(uuid.NewString()),
		Value: value,
		Time:  time.Now(),
	})
	if err != nil {
		if ctx.Err() == nil {
			g.logger.Warn("Error sending order to kafka", zap.Error(err))
		}
		g.failed.Add(1)
		return
	}
	g.sent.Add(1)
}

func (g *Generator) Stop() {
	g.mu.Lock()
	cancel := g.cancel
	g.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	g.wg.Wait()
}

func (g *Generator) Stats() Stats {
	return Stats{
		Running:   g.running.Load(),
		TotalSent: g.sent.Load(),
		Failed:    g.failed.Load(),
	}
}

func (g *Generator) Close() {
	g.Stop()
	if err := g.writer.Close(); err != nil {
		g.logger.Warn("Error closing kafka writer", zap.Error(err))
	}
}

var cities = []struct{ city, state string }{
	{"Springfield", "IL"},
	{"Austin", "TX"},
	{"Portland", "OR"},
	{"Denver", "CO"},
}

// newOrderFactory returns a source of valid orders over the given product and
// user ids.
func newOrderFactory(products, users []string) func() domain.NewOrder {
	var mu sync.Mutex
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	return func() domain.NewOrder {
		mu.Lock()
		defer mu.Unlock()

		items := make([]domain.OrderItem, 1+r.Intn(3))
		var subtotal float64
		for i := range items {
			price := float64(50 + r.Intn(950))
			qty := 1 + r.Intn(3)
			items[i] = domain.OrderItem{
				Name:      "Load test item",
				ProductID: products[r.Intn(len(products))],
				Price:     price,
				Quantity:  qty,
			}
			subtotal += price * float64(qty)
		}

		tax := float64(int(subtotal * 0.18))
		shipping := 200.0
		if subtotal > 1000 {
			shipping = 0
		}
		discount := float64(r.Intn(int(subtotal/10) + 1))
		loc := cities[r.Intn(len(cities))]

		return domain.NewOrder{
			ShippingInfo: domain.ShippingInfo{
				Address: "Load test street",
				City:    loc.city,
				State:   loc.state,
				Pincode: 10000 + r.Intn(89999),
				Country: "US",
			},
			User:            users[r.Intn(len(users))],
			Subtotal:        subtotal,
			Tax:             tax,
			ShippingCharges: shipping,
			Discount:        discount,
			Total:           subtotal + tax + shipping - discount,
			OrderItems:      items,
		}
	}
}
