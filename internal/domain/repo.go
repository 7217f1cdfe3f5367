package domain

import (
	"context"
)

type OrderRepository interface {
	Create(ctx context.Context, order *Order) error
	GetByID(ctx context.Context, id string) (*Order, error)
	UpdateStatus(ctx context.Context, id string, status OrderStatus) error
	Delete(ctx context.Context, id string) error
	Find(ctx context.Context, f OrderFilter, opts FindOptions) ([]Order, error)
	Count(ctx context.Context, f OrderFilter) (int64, error)
}

type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	GetByID(ctx context.Context, id string) (*Product, error)
	Update(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id string) error
	AdjustStock(ctx context.Context, id string, delta int) error
	Find(ctx context.Context, f ProductFilter, opts FindOptions) ([]Product, error)
	Count(ctx context.Context, f ProductFilter) (int64, error)
	DistinctCategories(ctx context.Context) ([]string, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	Delete(ctx context.Context, id string) error
	Find(ctx context.Context, f UserFilter, opts FindOptions) ([]User, error)
	Count(ctx context.Context, f UserFilter) (int64, error)
}

type CouponRepository interface {
	Create(ctx context.Context, coupon *Coupon) error
	GetByCode(ctx context.Context, code string) (*Coupon, error)
	List(ctx context.Context) ([]Coupon, error)
	Delete(ctx context.Context, id string) (*Coupon, error)
}

// Store bundles the repositories of one persistence backend.
type Store struct {
	Orders   OrderRepository
	Products ProductRepository
	Users    UserRepository
	Coupons  CouponRepository
	Close    func(ctx context.Context) error
}
