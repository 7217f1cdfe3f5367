package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/TemirB/shop-dashboard/internal/domain"
)

func TestProductFilter(t *testing.T) {
	from := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.April, 30, 0, 0, 0, 0, time.UTC)
	maxPrice := 500.0
	zero := 0

	tests := []struct {
		name         string
		filter       domain.ProductFilter
		opts         domain.FindOptions
		expectedSQL  string
		expectedArgs []any
	}{
		{
			name:        "empty",
			expectedSQL: " ORDER BY id",
		},
		{
			name:         "search escapes wildcards",
			filter:       domain.ProductFilter{Search: "50%_off"},
			expectedSQL:  ` WHERE name ILIKE $1 ORDER BY id`,
			expectedArgs: []any{`%50\%\_off%`},
		},
		{
			name: "every condition with paging",
			filter: domain.ProductFilter{
				Created:  domain.TimeRange{From: from, To: to},
				Category: "camera",
				MaxPrice: &maxPrice,
				Stock:    &zero,
			},
			opts: domain.FindOptions{SortBy: domain.SortByPrice, Order: domain.SortDesc, Limit: 8, Skip: 16},
			expectedSQL: " WHERE created_at >= $1 AND created_at <= $2 AND category = $3 AND price <= $4 AND stock = $5" +
				" ORDER BY price DESC, id LIMIT $6 OFFSET $7",
			expectedArgs: []any{from, to, "camera", 500.0, 0, 8, 16},
		},
		{
			name:         "unknown sort column falls back to id",
			opts:         domain.FindOptions{SortBy: "name; DROP TABLE", Order: domain.SortAsc, Limit: 5},
			expectedSQL:  " ORDER BY id LIMIT $1",
			expectedArgs: []any{5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := productFilter(tt.filter)
			got := w.sql() + w.options(tt.opts, productSort)
			require.Equal(t, tt.expectedSQL, got)
			require.Equal(t, tt.expectedArgs, w.args)
		})
	}
}

func TestOrderAndUserFilter(t *testing.T) {
	from := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)

	w := orderFilter(domain.OrderFilter{Created: domain.TimeRange{From: from}, Status: domain.StatusShipped, User: "u1"})
	require.Equal(t, " WHERE created_at >= $1 AND status = $2 AND user_id = $3", w.sql())
	require.Equal(t, []any{from, "Shipped", "u1"}, w.args)

	w = userFilter(domain.UserFilter{Gender: domain.GenderFemale, Role: domain.RoleAdmin})
	require.Equal(t, " WHERE gender = $1 AND role = $2", w.sql())
	require.Equal(t, " ORDER BY created_at DESC, id LIMIT $3", w.options(domain.FindOptions{
		SortBy: domain.SortByCreatedAt, Order: domain.SortDesc, Limit: 4,
	}, createdSort))
}
