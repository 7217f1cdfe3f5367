package service

import "time"

// WriteStats reports how long the store write of a mutation took.
type WriteStats struct {
	DBWriteMs float64
}

func convertToMs(t time.Time) float64 {
	return float64(time.Since(t).Microseconds()) / 1000.0
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
