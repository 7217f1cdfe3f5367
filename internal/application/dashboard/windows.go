package dashboard

import (
	"time"

	"github.com/TemirB/shop-dashboard/internal/domain"
)

type windows struct {
	now       time.Time
	thisMonth domain.TimeRange
	lastMonth domain.TimeRange
	sixMonths domain.TimeRange
	year      domain.TimeRange
}

// windowsAt derives the report windows from now. The previous month ends
// one nanosecond before the current month starts, so its last day counts.
func windowsAt(now time.Time) windows {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return windows{
		now:       now,
		thisMonth: domain.TimeRange{From: monthStart, To: now},
		lastMonth: domain.TimeRange{From: monthStart.AddDate(0, -1, 0), To: monthStart.Add(-time.Nanosecond)},
		sixMonths: domain.TimeRange{From: now.AddDate(0, -6, 0), To: now},
		year:      domain.TimeRange{From: now.AddDate(0, -12, 0), To: now},
	}
}
