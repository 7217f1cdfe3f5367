// Package postgres implements the repositories on top of a pgx pool.
// Monetary order columns are nullable and read through COALESCE, so a
// missing amount counts as zero in every report.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/TemirB/shop-dashboard/internal/domain"
)

var (
	productSort = map[string]string{domain.SortByCreatedAt: "created_at", domain.SortByPrice: "price"}
	createdSort = map[string]string{domain.SortByCreatedAt: "created_at"}
)

// New builds a store over pool. Closing the store closes the pool.
func New(pool *pgxpool.Pool, t Tables) *domain.Store {
	return &domain.Store{
		Orders:   &Orders{pool: pool, table: t.qt(t.Orders)},
		Products: &Products{pool: pool, table: t.qt(t.Products)},
		Users:    &Users{pool: pool, table: t.qt(t.Users)},
		Coupons:  &Coupons{pool: pool, table: t.qt(t.Coupons)},
		Close: func(context.Context) error {
			pool.Close()
			return nil
		},
	}
}

func mapErr(err error, what, id string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", what, id, domain.ErrNotFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return fmt.Errorf("%s %s: %w", what, id, domain.ErrDuplicate)
	}
	return fmt.Errorf("%s %s: %w", what, id, err)
}

func affected(tag pgconn.CommandTag, what, id string) error {
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", what, id, domain.ErrNotFound)
	}
	return nil
}

func stamp(created, updated *time.Time) {
	if created.IsZero() {
		*created = time.Now().UTC()
	}
	if updated.IsZero() {
		*updated = *created
	}
}

type Orders struct {
	pool  *pgxpool.Pool
	table string
}

const orderColumns = `id, user_id, shipping_info,
	COALESCE(subtotal, 0), COALESCE(tax, 0), COALESCE(shipping_charges, 0),
	COALESCE(discount, 0), COALESCE(total, 0),
	status, order_items, created_at, updated_at`

func scanOrder(row pgx.Row) (domain.Order, error) {
	var o domain.Order
	err := row.Scan(&o.ID, &o.User, &o.ShippingInfo,
		&o.Subtotal, &o.Tax, &o.ShippingCharges, &o.Discount, &o.Total,
		&o.Status, &o.OrderItems, &o.CreatedAt, &o.UpdatedAt)
	return o, err
}

func (r *Orders) Create(ctx context.Context, o *domain.Order) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	stamp(&o.CreatedAt, &o.UpdatedAt)
	_, err := r.pool.Exec(ctx, fmt.Sprintf(`
		INSERT INTO %s (id, user_id, shipping_info, subtotal, tax, shipping_charges,
		  discount, total, status, order_items, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`, r.table),
		o.ID, o.User, o.ShippingInfo, o.Subtotal, o.Tax, o.ShippingCharges,
		o.Discount, o.Total, string(o.Status), o.OrderItems, o.CreatedAt, o.UpdatedAt,
	)
	return mapErr(err, "order", o.ID)
}

func (r *Orders) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	o, err := scanOrder(r.pool.QueryRow(ctx, fmt.Sprintf(`SELECT %s FROM %s WHERE id=$1`, orderColumns, r.table), id))
	if err != nil {
		return nil, mapErr(err, "order", id)
	}
	return &o, nil
}

func (r *Orders) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	tag, err := r.pool.Exec(ctx, fmt.Sprintf(`UPDATE %s SET status=$2, updated_at=now() WHERE id=$1`, r.table), id, string(status))
	if err != nil {
		return mapErr(err, "order", id)
	}
	return affected(tag, "order", id)
}

func (r *Orders) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id=$1`, r.table), id)
	if err != nil {
		return mapErr(err, "order", id)
	}
	return affected(tag, "order", id)
}

func (r *Orders) Find(ctx context.Context, f domain.OrderFilter, opts domain.FindOptions) ([]domain.Order, error) {
	w := orderFilter(f)
	q := fmt.Sprintf(`SELECT %s FROM %s`, orderColumns, r.table) + w.sql() + w.options(opts, createdSort)

	rows, err := r.pool.Query(ctx, q, w.args...)
	if err != nil {
		return nil, fmt.Errorf("find orders: %w", err)
	}
	defer rows.Close()

	var out []domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *Orders) Count(ctx context.Context, f domain.OrderFilter) (int64, error) {
	w := orderFilter(f)
	var n int64
	if err := r.pool.QueryRow(ctx, fmt.Sprintf(`SELECT count(*) FROM %s`, r.table)+w.sql(), w.args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return n, nil
}

type Products struct {
	pool  *pgxpool.Pool
	table string
}

const productColumns = `id, name, photo, price, stock, category, created_at, updated_at`

func scanProduct(row pgx.Row) (domain.Product, error) {
	var p domain.Product
	err := row.Scan(&p.ID, &p.Name, &p.Photo, &p.Price, &p.Stock, &p.Category, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *Products) Create(ctx context.Context, p *domain.Product) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	stamp(&p.CreatedAt, &p.UpdatedAt)
	_, err := r.pool.Exec(ctx, fmt.Sprintf(`
		INSERT INTO %s (%s) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`, r.table, productColumns),
		p.ID, p.Name, p.Photo, p.Price, p.Stock, p.Category, p.CreatedAt, p.UpdatedAt,
	)
	return mapErr(err, "product", p.ID)
}

func (r *Products) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	p, err := scanProduct(r.pool.QueryRow(ctx, fmt.Sprintf(`SELECT %s FROM %s WHERE id=$1`, productColumns, r.table), id))
	if err != nil {
		return nil, mapErr(err, "product", id)
	}
	return &p, nil
}

func (r *Products) Update(ctx context.Context, p *domain.Product) error {
	err := r.pool.QueryRow(ctx, fmt.Sprintf(`
		UPDATE %s SET name=$2, photo=$3, price=$4, stock=$5, category=$6, updated_at=now()
		WHERE id=$1
		RETURNING created_at, updated_at
	`, r.table),
		p.ID, p.Name, p.Photo, p.Price, p.Stock, p.Category,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	return mapErr(err, "product", p.ID)
}

func (r *Products) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id=$1`, r.table), id)
	if err != nil {
		return mapErr(err, "product", id)
	}
	return affected(tag, "product", id)
}

// AdjustStock adds delta to the stock. Stock is allowed to go negative.
func (r *Products) AdjustStock(ctx context.Context, id string, delta int) error {
	tag, err := r.pool.Exec(ctx, fmt.Sprintf(`UPDATE %s SET stock = stock + $2, updated_at = now() WHERE id=$1`, r.table), id, delta)
	if err != nil {
		return mapErr(err, "product", id)
	}
	return affected(tag, "product", id)
}

func (r *Products) Find(ctx context.Context, f domain.ProductFilter, opts domain.FindOptions) ([]domain.Product, error) {
	w := productFilter(f)
	q := fmt.Sprintf(`SELECT %s FROM %s`, productColumns, r.table) + w.sql() + w.options(opts, productSort)

	rows, err := r.pool.Query(ctx, q, w.args...)
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	defer rows.Close()

	var out []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *Products) Count(ctx context.Context, f domain.ProductFilter) (int64, error) {
	w := productFilter(f)
	var n int64
	if err := r.pool.QueryRow(ctx, fmt.Sprintf(`SELECT count(*) FROM %s`, r.table)+w.sql(), w.args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

func (r *Products) DistinctCategories(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, fmt.Sprintf(`SELECT DISTINCT category FROM %s ORDER BY category`, r.table))
	if err != nil {
		return nil, fmt.Errorf("distinct categories: %w", err)
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

type Users struct {
	pool  *pgxpool.Pool
	table string
}

const userColumns = `id, name, email, photo, role, gender, dob, created_at, updated_at`

func scanUser(row pgx.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Photo, &u.Role, &u.Gender, &u.DOB, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

func (r *Users) Create(ctx context.Context, u *domain.User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	stamp(&u.CreatedAt, &u.UpdatedAt)
	_, err := r.pool.Exec(ctx, fmt.Sprintf(`
		INSERT INTO %s (%s) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`, r.table, userColumns),
		u.ID, u.Name, u.Email, u.Photo, string(u.Role), string(u.Gender), u.DOB, u.CreatedAt, u.UpdatedAt,
	)
	return mapErr(err, "user", u.ID)
}

func (r *Users) GetByID(ctx context.Context, id string) (*domain.User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx, fmt.Sprintf(`SELECT %s FROM %s WHERE id=$1`, userColumns, r.table), id))
	if err != nil {
		return nil, mapErr(err, "user", id)
	}
	return &u, nil
}

func (r *Users) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id=$1`, r.table), id)
	if err != nil {
		return mapErr(err, "user", id)
	}
	return affected(tag, "user", id)
}

func (r *Users) Find(ctx context.Context, f domain.UserFilter, opts domain.FindOptions) ([]domain.User, error) {
	w := userFilter(f)
	q := fmt.Sprintf(`SELECT %s FROM %s`, userColumns, r.table) + w.sql() + w.options(opts, createdSort)

	rows, err := r.pool.Query(ctx, q, w.args...)
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	defer rows.Close()

	var out []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *Users) Count(ctx context.Context, f domain.UserFilter) (int64, error) {
	w := userFilter(f)
	var n int64
	if err := r.pool.QueryRow(ctx, fmt.Sprintf(`SELECT count(*) FROM %s`, r.table)+w.sql(), w.args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

type Coupons struct {
	pool  *pgxpool.Pool
	table string
}

func (r *Coupons) Create(ctx context.Context, c *domain.Coupon) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	_, err := r.pool.Exec(ctx, fmt.Sprintf(`INSERT INTO %s (id, code, amount) VALUES ($1,$2,$3)`, r.table), c.ID, c.Code, c.Amount)
	return mapErr(err, "coupon", c.Code)
}

func (r *Coupons) GetByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	var c domain.Coupon
	err := r.pool.QueryRow(ctx, fmt.Sprintf(`SELECT id, code, amount FROM %s WHERE code=$1`, r.table), code).
		Scan(&c.ID, &c.Code, &c.Amount)
	if err != nil {
		return nil, mapErr(err, "coupon", code)
	}
	return &c, nil
}

func (r *Coupons) List(ctx context.Context) ([]domain.Coupon, error) {
	rows, err := r.pool.Query(ctx, fmt.Sprintf(`SELECT id, code, amount FROM %s ORDER BY code`, r.table))
	if err != nil {
		return nil, fmt.Errorf("list coupons: %w", err)
	}
	return pgx.CollectRows(rows, pgx.RowToStructByPos[domain.Coupon])
}

func (r *Coupons) Delete(ctx context.Context, id string) (*domain.Coupon, error) {
	var c domain.Coupon
	err := r.pool.QueryRow(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id=$1 RETURNING id, code, amount`, r.table), id).
		Scan(&c.ID, &c.Code, &c.Amount)
	if err != nil {
		return nil, mapErr(err, "coupon", id)
	}
	return &c, nil
}
