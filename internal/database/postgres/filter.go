package postgres

import (
	"fmt"
	"strings"

	"github.com/TemirB/shop-dashboard/internal/domain"
)

// where accumulates AND-ed conditions with positional arguments.
type where struct {
	conds []string
	args  []any
}

// add appends cond, whose single %d verb becomes the placeholder index.
func (w *where) add(cond string, arg any) {
	w.args = append(w.args, arg)
	w.conds = append(w.conds, fmt.Sprintf(cond, len(w.args)))
}

func (w *where) sql() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

func (w *where) created(r domain.TimeRange) {
	if !r.From.IsZero() {
		w.add("created_at >= $%d", r.From)
	}
	if !r.To.IsZero() {
		w.add("created_at <= $%d", r.To)
	}
}

func orderFilter(f domain.OrderFilter) *where {
	w := &where{}
	w.created(f.Created)
	if f.Status != "" {
		w.add("status = $%d", string(f.Status))
	}
	if f.User != "" {
		w.add("user_id = $%d", f.User)
	}
	return w
}

func productFilter(f domain.ProductFilter) *where {
	w := &where{}
	w.created(f.Created)
	if f.Category != "" {
		w.add("category = $%d", f.Category)
	}
	if f.Search != "" {
		w.add("name ILIKE $%d", "%"+escapeLike(f.Search)+"%")
	}
	if f.MaxPrice != nil {
		w.add("price <= $%d", *f.MaxPrice)
	}
	if f.Stock != nil {
		w.add("stock = $%d", *f.Stock)
	}
	return w
}

func userFilter(f domain.UserFilter) *where {
	w := &where{}
	w.created(f.Created)
	if f.Gender != "" {
		w.add("gender = $%d", string(f.Gender))
	}
	if f.Role != "" {
		w.add("role = $%d", string(f.Role))
	}
	return w
}

// options renders ORDER BY, LIMIT and OFFSET. Only columns named in
// sortable are accepted; anything else sorts by id.
func (w *where) options(opts domain.FindOptions, sortable map[string]string) string {
	var b strings.Builder
	col, ok := sortable[opts.SortBy]
	switch {
	case opts.Order == domain.SortNone || !ok:
		b.WriteString(" ORDER BY id")
	case opts.Order == domain.SortDesc:
		fmt.Fprintf(&b, " ORDER BY %s DESC, id", col)
	default:
		fmt.Fprintf(&b, " ORDER BY %s ASC, id", col)
	}
	if opts.Limit > 0 {
		w.args = append(w.args, opts.Limit)
		fmt.Fprintf(&b, " LIMIT $%d", len(w.args))
	}
	if opts.Skip > 0 {
		w.args = append(w.args, opts.Skip)
		fmt.Fprintf(&b, " OFFSET $%d", len(w.args))
	}
	return b.String()
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`).Replace(s)
}
