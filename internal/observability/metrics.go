package observability

type Metrics interface {
	ObserveLookup(family, source string, cacheMs, dbMs float64)
	ObserveWrite(entity string, dbWriteMs float64)
	ObserveHTTP(method, route string, status int, durMs float64)
	ObserveKafka(processMs float64, ok bool)
	ObserveInvalidation(keys int)
	IncCacheHit()
	IncCacheMiss()
}

type Noop struct{}

func NewNoop() Noop { return Noop{} }

func (Noop) ObserveLookup(string, string, float64, float64) {}
func (Noop) ObserveWrite(string, float64)                   {}
func (Noop) ObserveHTTP(string, string, int, float64)       {}
func (Noop) ObserveKafka(float64, bool)                     {}
func (Noop) ObserveInvalidation(int)                        {}
func (Noop) IncCacheHit()                                   {}
func (Noop) IncCacheMiss()                                  {}
