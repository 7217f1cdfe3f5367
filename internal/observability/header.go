package observability

import (
	"fmt"
	"net/http"
)

const (
	HeaderServerTiming = "Server-Timing"
	HeaderSource       = "X-Source"
	HeaderCacheTime    = "X-Cache-Time"
	HeaderDBTime       = "X-DB-Time"
)

// AppendServerTiming adds one Server-Timing metric. Non-positive durations
// and empty descriptions are left out; a metric with neither is skipped.
func AppendServerTiming(w http.ResponseWriter, name string, durMs float64, desc string) {
	entry := name
	if durMs > 0 {
		entry += fmt.Sprintf(";dur=%.2f", durMs)
	}
	if desc != "" {
		entry += fmt.Sprintf(";desc=%q", desc)
	}
	if entry == name {
		return
	}
	w.Header().Add(HeaderServerTiming, entry)
}

// SetIfPos sets key to ms with two decimals when ms is positive.
func SetIfPos(w http.ResponseWriter, key string, ms float64) {
	if ms <= 0 {
		return
	}
	w.Header().Set(key, fmt.Sprintf("%.2f", ms))
}

// WriteLookupHeaders reports where a read-through value came from and how
// long each tier took.
func WriteLookupHeaders(w http.ResponseWriter, source string, cacheMs, dbMs float64) {
	AppendServerTiming(w, "cache", cacheMs, "")
	AppendServerTiming(w, "db", dbMs, "")
	AppendServerTiming(w, "source", 0, source)
	w.Header().Set(HeaderSource, source)
	SetIfPos(w, HeaderCacheTime, cacheMs)
	SetIfPos(w, HeaderDBTime, dbMs)
}
