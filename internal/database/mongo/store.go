// Package mongo implements the repositories on MongoDB collections. Documents
// use string ids so that they match the ids produced by the other stores.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/TemirB/shop-dashboard/internal/domain"
)

const (
	collOrders   = "orders"
	collProducts = "products"
	collUsers    = "users"
	collCoupons  = "coupons"
)

// New builds a store over db. Closing the store disconnects client.
func New(client *mongo.Client, db *mongo.Database) *domain.Store {
	return &domain.Store{
		Orders:   &Orders{coll: db.Collection(collOrders)},
		Products: &Products{coll: db.Collection(collProducts)},
		Users:    &Users{coll: db.Collection(collUsers)},
		Coupons:  &Coupons{coll: db.Collection(collCoupons)},
		Close:    client.Disconnect,
	}
}

func mapErr(err error, what, id string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("%s %s: %w", what, id, domain.ErrNotFound)
	}
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%s %s: %w", what, id, domain.ErrDuplicate)
	}
	return fmt.Errorf("%s %s: %w", what, id, err)
}

func stamp(created, updated *time.Time) {
	if created.IsZero() {
		*created = time.Now().UTC()
	}
	if updated.IsZero() {
		*updated = *created
	}
}

func findAll[T any](ctx context.Context, coll *mongo.Collection, filter bson.M, opts domain.FindOptions) ([]T, error) {
	cur, err := coll.Find(ctx, filter, findOptions(opts))
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", coll.Name(), err)
	}
	var out []T
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", coll.Name(), err)
	}
	return out, nil
}

func deleteOne(ctx context.Context, coll *mongo.Collection, what, id string) error {
	res, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return mapErr(err, what, id)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%s %s: %w", what, id, domain.ErrNotFound)
	}
	return nil
}

type Orders struct {
	coll *mongo.Collection
}

func (r *Orders) Create(ctx context.Context, o *domain.Order) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	stamp(&o.CreatedAt, &o.UpdatedAt)
	_, err := r.coll.InsertOne(ctx, o)
	return mapErr(err, "order", o.ID)
}

func (r *Orders) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	var o domain.Order
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&o); err != nil {
		return nil, mapErr(err, "order", id)
	}
	return &o, nil
}

func (r *Orders) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	res, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": bson.M{"status": string(status), "updatedAt": time.Now().UTC()}})
	if err != nil {
		return mapErr(err, "order", id)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("order %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *Orders) Delete(ctx context.Context, id string) error {
	return deleteOne(ctx, r.coll, "order", id)
}

func (r *Orders) Find(ctx context.Context, f domain.OrderFilter, opts domain.FindOptions) ([]domain.Order, error) {
	return findAll[domain.Order](ctx, r.coll, orderFilter(f), opts)
}

func (r *Orders) Count(ctx context.Context, f domain.OrderFilter) (int64, error) {
	return r.coll.CountDocuments(ctx, orderFilter(f))
}

type Products struct {
	coll *mongo.Collection
}

func (r *Products) Create(ctx context.Context, p *domain.Product) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	stamp(&p.CreatedAt, &p.UpdatedAt)
	_, err := r.coll.InsertOne(ctx, p)
	return mapErr(err, "product", p.ID)
}

func (r *Products) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	var p domain.Product
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		return nil, mapErr(err, "product", id)
	}
	return &p, nil
}

func (r *Products) Update(ctx context.Context, p *domain.Product) error {
	p.UpdatedAt = time.Now().UTC()
	var updated domain.Product
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": p.ID}, bson.M{"$set": bson.M{
		"name":      p.Name,
		"photo":     p.Photo,
		"price":     p.Price,
		"stock":     p.Stock,
		"category":  p.Category,
		"updatedAt": p.UpdatedAt,
	}}, options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&updated)
	if err != nil {
		return mapErr(err, "product", p.ID)
	}
	*p = updated
	return nil
}

func (r *Products) Delete(ctx context.Context, id string) error {
	return deleteOne(ctx, r.coll, "product", id)
}

// AdjustStock adds delta to the stock. Stock is allowed to go negative.
func (r *Products) AdjustStock(ctx context.Context, id string, delta int) error {
	res, err := r.coll.UpdateByID(ctx, id, bson.M{
		"$inc": bson.M{"stock": delta},
		"$set": bson.M{"updatedAt": time.Now().UTC()},
	})
	if err != nil {
		return mapErr(err, "product", id)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("product %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *Products) Find(ctx context.Context, f domain.ProductFilter, opts domain.FindOptions) ([]domain.Product, error) {
	return findAll[domain.Product](ctx, r.coll, productFilter(f), opts)
}

func (r *Products) Count(ctx context.Context, f domain.ProductFilter) (int64, error) {
	return r.coll.CountDocuments(ctx, productFilter(f))
}

func (r *Products) DistinctCategories(ctx context.Context) ([]string, error) {
	raw, err := r.coll.Distinct(ctx, "category", bson.M{})
	if err != nil {
		return nil, fmt.Errorf("distinct categories: %w", err)
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out, nil
}

type Users struct {
	coll *mongo.Collection
}

func (r *Users) Create(ctx context.Context, u *domain.User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	stamp(&u.CreatedAt, &u.UpdatedAt)
	_, err := r.coll.InsertOne(ctx, u)
	return mapErr(err, "user", u.ID)
}

func (r *Users) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var u domain.User
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return nil, mapErr(err, "user", id)
	}
	return &u, nil
}

func (r *Users) Delete(ctx context.Context, id string) error {
	return deleteOne(ctx, r.coll, "user", id)
}

func (r *Users) Find(ctx context.Context, f domain.UserFilter, opts domain.FindOptions) ([]domain.User, error) {
	return findAll[domain.User](ctx, r.coll, userFilter(f), opts)
}

func (r *Users) Count(ctx context.Context, f domain.UserFilter) (int64, error) {
	return r.coll.CountDocuments(ctx, userFilter(f))
}

type Coupons struct {
	coll *mongo.Collection
}

func (r *Coupons) Create(ctx context.Context, c *domain.Coupon) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	_, err := r.coll.InsertOne(ctx, c)
	return mapErr(err, "coupon", c.Code)
}

func (r *Coupons) GetByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	var c domain.Coupon
	if err := r.coll.FindOne(ctx, bson.M{"code": code}).Decode(&c); err != nil {
		return nil, mapErr(err, "coupon", code)
	}
	return &c, nil
}

func (r *Coupons) List(ctx context.Context) ([]domain.Coupon, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "code", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list coupons: %w", err)
	}
	var out []domain.Coupon
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode coupons: %w", err)
	}
	return out, nil
}

func (r *Coupons) Delete(ctx context.Context, id string) (*domain.Coupon, error) {
	var c domain.Coupon
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		return nil, mapErr(err, "coupon", id)
	}
	return &c, nil
}
