// Package memory is a process-local store used for development, demos and
// tests. It honours the same filter semantics as the postgres and mongo
// stores.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/TemirB/shop-dashboard/internal/domain"
)

// New returns an empty store.
func New() *domain.Store {
	return &domain.Store{
		Orders:   &Orders{byID: map[string]domain.Order{}, now: time.Now},
		Products: &Products{byID: map[string]domain.Product{}, now: time.Now},
		Users:    &Users{byID: map[string]domain.User{}, now: time.Now},
		Coupons:  &Coupons{byID: map[string]domain.Coupon{}},
		Close:    func(context.Context) error { return nil },
	}
}

type Orders struct {
	mu   sync.RWMutex
	byID map[string]domain.Order
	now  func() time.Time
}

func (r *Orders) Create(_ context.Context, o *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if _, ok := r.byID[o.ID]; ok {
		return fmt.Errorf("order %s: %w", o.ID, domain.ErrDuplicate)
	}
	stamp(&o.CreatedAt, &o.UpdatedAt, r.now())
	r.byID[o.ID] = cloneOrder(*o)
	return nil
}

func (r *Orders) GetByID(_ context.Context, id string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("order %s: %w", id, domain.ErrNotFound)
	}
	o = cloneOrder(o)
	return &o, nil
}

func (r *Orders) UpdateStatus(_ context.Context, id string, status domain.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.byID[id]
	if !ok {
		return fmt.Errorf("order %s: %w", id, domain.ErrNotFound)
	}
	o.Status = status
	o.UpdatedAt = r.now()
	r.byID[id] = o
	return nil
}

func (r *Orders) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return fmt.Errorf("order %s: %w", id, domain.ErrNotFound)
	}
	delete(r.byID, id)
	return nil
}

func (r *Orders) Find(_ context.Context, f domain.OrderFilter, opts domain.FindOptions) ([]domain.Order, error) {
	r.mu.RLock()
	out := make([]domain.Order, 0, len(r.byID))
	for _, o := range r.byID {
		if matchOrder(o, f) {
			out = append(out, cloneOrder(o))
		}
	}
	r.mu.RUnlock()

	sortBy(out, opts, func(o domain.Order) float64 { return o.Total }, domain.Order.Created, func(o domain.Order) string { return o.ID })
	return page(out, opts), nil
}

func (r *Orders) Count(_ context.Context, f domain.OrderFilter) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var n int64
	for _, o := range r.byID {
		if matchOrder(o, f) {
			n++
		}
	}
	return n, nil
}

func matchOrder(o domain.Order, f domain.OrderFilter) bool {
	if !f.Created.Contains(o.CreatedAt) {
		return false
	}
	if f.Status != "" && o.Status != f.Status {
		return false
	}
	if f.User != "" && o.User != f.User {
		return false
	}
	return true
}

func cloneOrder(o domain.Order) domain.Order {
	o.OrderItems = append([]domain.OrderItem(nil), o.OrderItems...)
	return o
}

type Products struct {
	mu   sync.RWMutex
	byID map[string]domain.Product
	now  func() time.Time
}

func (r *Products) Create(_ context.Context, p *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if _, ok := r.byID[p.ID]; ok {
		return fmt.Errorf("product %s: %w", p.ID, domain.ErrDuplicate)
	}
	stamp(&p.CreatedAt, &p.UpdatedAt, r.now())
	r.byID[p.ID] = *p
	return nil
}

func (r *Products) GetByID(_ context.Context, id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("product %s: %w", id, domain.ErrNotFound)
	}
	return &p, nil
}

func (r *Products) Update(_ context.Context, p *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	old, ok := r.byID[p.ID]
	if !ok {
		return fmt.Errorf("product %s: %w", p.ID, domain.ErrNotFound)
	}
	p.CreatedAt = old.CreatedAt
	p.UpdatedAt = r.now()
	r.byID[p.ID] = *p
	return nil
}

func (r *Products) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return fmt.Errorf("product %s: %w", id, domain.ErrNotFound)
	}
	delete(r.byID, id)
	return nil
}

// AdjustStock adds delta to the stock. Stock is allowed to go negative.
func (r *Products) AdjustStock(_ context.Context, id string, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byID[id]
	if !ok {
		return fmt.Errorf("product %s: %w", id, domain.ErrNotFound)
	}
	p.Stock += delta
	p.UpdatedAt = r.now()
	r.byID[id] = p
	return nil
}

func (r *Products) Find(_ context.Context, f domain.ProductFilter, opts domain.FindOptions) ([]domain.Product, error) {
	r.mu.RLock()
	out := make([]domain.Product, 0, len(r.byID))
	for _, p := range r.byID {
		if matchProduct(p, f) {
			out = append(out, p)
		}
	}
	r.mu.RUnlock()

	sortBy(out, opts, func(p domain.Product) float64 { return p.Price }, domain.Product.Created, func(p domain.Product) string { return p.ID })
	return page(out, opts), nil
}

func (r *Products) Count(_ context.Context, f domain.ProductFilter) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var n int64
	for _, p := range r.byID {
		if matchProduct(p, f) {
			n++
		}
	}
	return n, nil
}

// DistinctCategories returns every category in ascending order.
func (r *Products) DistinctCategories(_ context.Context) ([]string, error) {
	r.mu.RLock()
	seen := map[string]struct{}{}
	for _, p := range r.byID {
		seen[p.Category] = struct{}{}
	}
	r.mu.RUnlock()

	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out, nil
}

func matchProduct(p domain.Product, f domain.ProductFilter) bool {
	if !f.Created.Contains(p.CreatedAt) {
		return false
	}
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Search)) {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.Stock != nil && p.Stock != *f.Stock {
		return false
	}
	return true
}

type Users struct {
	mu   sync.RWMutex
	byID map[string]domain.User
	now  func() time.Time
}

func (r *Users) Create(_ context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if _, ok := r.byID[u.ID]; ok {
		return fmt.Errorf("user %s: %w", u.ID, domain.ErrDuplicate)
	}
	stamp(&u.CreatedAt, &u.UpdatedAt, r.now())
	r.byID[u.ID] = *u
	return nil
}

func (r *Users) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return &u, nil
}

func (r *Users) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	delete(r.byID, id)
	return nil
}

func (r *Users) Find(_ context.Context, f domain.UserFilter, opts domain.FindOptions) ([]domain.User, error) {
	r.mu.RLock()
	out := make([]domain.User, 0, len(r.byID))
	for _, u := range r.byID {
		if matchUser(u, f) {
			out = append(out, u)
		}
	}
	r.mu.RUnlock()

	sortBy(out, opts, nil, domain.User.Created, func(u domain.User) string { return u.ID })
	return page(out, opts), nil
}

func (r *Users) Count(_ context.Context, f domain.UserFilter) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var n int64
	for _, u := range r.byID {
		if matchUser(u, f) {
			n++
		}
	}
	return n, nil
}

func matchUser(u domain.User, f domain.UserFilter) bool {
	if !f.Created.Contains(u.CreatedAt) {
		return false
	}
	if f.Gender != "" && u.Gender != f.Gender {
		return false
	}
	if f.Role != "" && u.Role != f.Role {
		return false
	}
	return true
}

type Coupons struct {
	mu   sync.RWMutex
	byID map[string]domain.Coupon
}

func (r *Coupons) Create(_ context.Context, c *domain.Coupon) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byID {
		if existing.Code == c.Code {
			return fmt.Errorf("coupon %s: %w", c.Code, domain.ErrDuplicate)
		}
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	r.byID[c.ID] = *c
	return nil
}

func (r *Coupons) GetByCode(_ context.Context, code string) (*domain.Coupon, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.byID {
		if c.Code == code {
			return &c, nil
		}
	}
	return nil, fmt.Errorf("coupon %s: %w", code, domain.ErrNotFound)
}

func (r *Coupons) List(_ context.Context) ([]domain.Coupon, error) {
	r.mu.RLock()
	out := make([]domain.Coupon, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, c)
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (r *Coupons) Delete(_ context.Context, id string) (*domain.Coupon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("coupon %s: %w", id, domain.ErrNotFound)
	}
	delete(r.byID, id)
	return &c, nil
}

func stamp(created, updated *time.Time, now time.Time) {
	if created.IsZero() {
		*created = now
	}
	if updated.IsZero() {
		*updated = *created
	}
}

// sortBy orders items by opts. Without an explicit order items are sorted by
// id so that results are stable across calls.
func sortBy[T any](items []T, opts domain.FindOptions, price func(T) float64, created func(T) time.Time, id func(T) string) {
	less := func(i, j int) bool { return id(items[i]) < id(items[j]) }
	if opts.Order != domain.SortNone {
		desc := opts.Order == domain.SortDesc
		switch {
		case opts.SortBy == domain.SortByPrice && price != nil:
			less = func(i, j int) bool {
				a, b := price(items[i]), price(items[j])
				if a == b {
					return id(items[i]) < id(items[j])
				}
				return (a < b) != desc
			}
		default:
			less = func(i, j int) bool {
				a, b := created(items[i]), created(items[j])
				if a.Equal(b) {
					return id(items[i]) < id(items[j])
				}
				return a.Before(b) != desc
			}
		}
	}
	sort.SliceStable(items, less)
}

func page[T any](items []T, opts domain.FindOptions) []T {
	if opts.Skip > 0 {
		if opts.Skip >= len(items) {
			return items[:0]
		}
		items = items[opts.Skip:]
	}
	if opts.Limit > 0 && opts.Limit < len(items) {
		items = items[:opts.Limit]
	}
	return items
}
