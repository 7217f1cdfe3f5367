package mongo

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/TemirB/shop-dashboard/internal/domain"
)

func created(f bson.M, r domain.TimeRange) {
	if r.IsZero() {
		return
	}
	rng := bson.M{}
	if !r.From.IsZero() {
		rng["$gte"] = r.From
	}
	if !r.To.IsZero() {
		rng["$lte"] = r.To
	}
	f["createdAt"] = rng
}

func orderFilter(of domain.OrderFilter) bson.M {
	f := bson.M{}
	created(f, of.Created)
	if of.Status != "" {
		f["status"] = string(of.Status)
	}
	if of.User != "" {
		f["user"] = of.User
	}
	return f
}

func productFilter(pf domain.ProductFilter) bson.M {
	f := bson.M{}
	created(f, pf.Created)
	if pf.Category != "" {
		f["category"] = pf.Category
	}
	if pf.Search != "" {
		f["name"] = primitive.Regex{Pattern: regexp.QuoteMeta(pf.Search), Options: "i"}
	}
	if pf.MaxPrice != nil {
		f["price"] = bson.M{"$lte": *pf.MaxPrice}
	}
	if pf.Stock != nil {
		f["stock"] = *pf.Stock
	}
	return f
}

func userFilter(uf domain.UserFilter) bson.M {
	f := bson.M{}
	created(f, uf.Created)
	if uf.Gender != "" {
		f["gender"] = string(uf.Gender)
	}
	if uf.Role != "" {
		f["role"] = string(uf.Role)
	}
	return f
}

var sortFields = map[string]string{
	domain.SortByCreatedAt: "createdAt",
	domain.SortByPrice:     "price",
}

func findOptions(opts domain.FindOptions) *options.FindOptions {
	fo := options.Find()
	sort := bson.D{{Key: "_id", Value: 1}}
	if field, ok := sortFields[opts.SortBy]; ok && opts.Order != domain.SortNone {
		dir := 1
		if opts.Order == domain.SortDesc {
			dir = -1
		}
		sort = append(bson.D{{Key: field, Value: dir}}, sort...)
	}
	fo.SetSort(sort)
	if opts.Limit > 0 {
		fo.SetLimit(int64(opts.Limit))
	}
	if opts.Skip > 0 {
		fo.SetSkip(int64(opts.Skip))
	}
	return fo
}
