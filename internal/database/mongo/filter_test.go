package mongo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/TemirB/shop-dashboard/internal/domain"
)

func TestProductFilter(t *testing.T) {
	from := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)
	maxPrice := 250.0
	zero := 0

	got := productFilter(domain.ProductFilter{
		Created:  domain.TimeRange{From: from},
		Category: "camera",
		Search:   "eos (r)",
		MaxPrice: &maxPrice,
		Stock:    &zero,
	})

	require.Equal(t, bson.M{
		"createdAt": bson.M{"$gte": from},
		"category":  "camera",
		"name":      primitive.Regex{Pattern: `eos \(r\)`, Options: "i"},
		"price":     bson.M{"$lte": 250.0},
		"stock":     0,
	}, got)

	require.Empty(t, productFilter(domain.ProductFilter{}))
}

func TestOrderAndUserFilter(t *testing.T) {
	from := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.May, 31, 0, 0, 0, 0, time.UTC)

	require.Equal(t, bson.M{
		"createdAt": bson.M{"$gte": from, "$lte": to},
		"status":    "Delivered",
		"user":      "u1",
	}, orderFilter(domain.OrderFilter{
		Created: domain.TimeRange{From: from, To: to},
		Status:  domain.StatusDelivered,
		User:    "u1",
	}))

	require.Equal(t, bson.M{"gender": "female", "role": "admin"},
		userFilter(domain.UserFilter{Gender: domain.GenderFemale, Role: domain.RoleAdmin}))
}

func TestFindOptions(t *testing.T) {
	tests := []struct {
		name  string
		opts  domain.FindOptions
		sort  bson.D
		limit *int64
		skip  *int64
	}{
		{
			name: "default sort by id",
			sort: bson.D{{Key: "_id", Value: 1}},
		},
		{
			name:  "latest first",
			opts:  domain.FindOptions{SortBy: domain.SortByCreatedAt, Order: domain.SortDesc, Limit: 4},
			sort:  bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: 1}},
			limit: ptr(int64(4)),
		},
		{
			name:  "price ascending page",
			opts:  domain.FindOptions{SortBy: domain.SortByPrice, Order: domain.SortAsc, Limit: 8, Skip: 8},
			sort:  bson.D{{Key: "price", Value: 1}, {Key: "_id", Value: 1}},
			limit: ptr(int64(8)),
			skip:  ptr(int64(8)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fo := findOptions(tt.opts)
			require.Equal(t, tt.sort, fo.Sort)
			require.Equal(t, tt.limit, fo.Limit)
			require.Equal(t, tt.skip, fo.Skip)
		})
	}
}

func ptr[T any](v T) *T { return &v }
