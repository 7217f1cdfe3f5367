package domain

import "time"

// TimeRange is an inclusive created-at window. A zero bound is open.
type TimeRange struct {
	From time.Time
	To   time.Time
}

func (r TimeRange) IsZero() bool { return r.From.IsZero() && r.To.IsZero() }

func (r TimeRange) Contains(t time.Time) bool {
	if !r.From.IsZero() && t.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && t.After(r.To) {
		return false
	}
	return true
}

type OrderFilter struct {
	Created TimeRange
	Status  OrderStatus
	User    string
}

type ProductFilter struct {
	Created  TimeRange
	Category string
	// Search is a case-insensitive substring of the product name.
	Search   string
	MaxPrice *float64
	Stock    *int
}

type UserFilter struct {
	Created TimeRange
	Gender  Gender
	Role    Role
}

type SortOrder int

const (
	SortNone SortOrder = iota
	SortAsc
	SortDesc
)

const (
	SortByCreatedAt = "createdAt"
	SortByPrice     = "price"
)

type FindOptions struct {
	SortBy string
	Order  SortOrder
	Limit  int
	Skip   int
}
