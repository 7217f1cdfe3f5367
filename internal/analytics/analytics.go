// Package analytics holds the pure reductions behind the admin dashboard:
// month-over-month change, month bucketing and category shares.
package analytics

import (
	"math"
	"time"
)

// MarketingRate is the share of gross income booked as marketing cost.
const MarketingRate = 0.30

// CalculatePercentage returns the month-over-month change of current against
// previous, rounded to a whole percent. A zero baseline counts every unit of
// current as 100%.
func CalculatePercentage(current, previous float64) float64 {
	if previous == 0 {
		return current * 100
	}
	return math.Round((current - previous) / previous * 100)
}

// Dated is anything bucketed by creation month.
type Dated interface {
	Created() time.Time
}

// BucketByMonth spreads items over length slots, oldest first, by the
// month-of-year distance between now and the item's creation time. Items
// outside the window are dropped. Only the month is compared, so an item
// created twelve months ago lands in the current slot.
//
// value selects the amount added per item; nil counts items.
func BucketByMonth[T Dated](length int, now time.Time, items []T, value func(T) float64) []float64 {
	if length < 0 {
		length = 0
	}
	data := make([]float64, length)
	for _, it := range items {
		diff := MonthDiff(now, it.Created())
		if diff >= length {
			continue
		}
		if value != nil {
			data[length-diff-1] += value(it)
		} else {
			data[length-diff-1]++
		}
	}
	return data
}

// MonthDiff is (now.month - t.month + 12) % 12.
func MonthDiff(now, t time.Time) int {
	return (int(now.Month()) - int(t.Month()) + 12) % 12
}

// Share is round(count/total*100); an empty total yields 0.
func Share(count, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(count) / float64(total) * 100)
}

// CategoryShare maps each category to its rounded share of total. Shares
// are rounded independently and need not sum to 100.
func CategoryShare(categories []string, counts []int64, total int64) []map[string]float64 {
	out := make([]map[string]float64, 0, len(categories))
	for i, c := range categories {
		var n int64
		if i < len(counts) {
			n = counts[i]
		}
		out = append(out, map[string]float64{c: Share(n, total)})
	}
	return out
}

// Sum adds value over items.
func Sum[T any](items []T, value func(T) float64) float64 {
	var total float64
	for _, it := range items {
		total += value(it)
	}
	return total
}

// NetMargin subtracts every cost line from gross income. Marketing is a
// fixed share of gross, rounded to a whole unit.
func NetMargin(gross, discount, productionCost, tax float64) (net, marketing float64) {
	marketing = math.Round(gross * MarketingRate)
	net = gross - discount - marketing - productionCost - tax
	return net, marketing
}
