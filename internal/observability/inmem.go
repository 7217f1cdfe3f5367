package observability

import "sync"

type observe struct {
	Kind    string
	Family  string
	Source  string
	Entity  string
	Method  string
	Route   string
	Status  int
	Keys    int
	OK      bool
	CacheMs float64
	DbMs    float64
	Dur     float64
}

// Inmem keeps the last max observations and hit/miss totals. Used in
// development and tests instead of a Prometheus registry.
type Inmem struct {
	mu     sync.Mutex
	last   []*observe
	max    int
	totals struct {
		cacheHits, cacheMiss, invalidated int
	}
}

func NewInmem(max int) *Inmem {
	return &Inmem{
		max: max,
	}
}

func (m *Inmem) push(v *observe) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.last = append(m.last, v)
	if len(m.last) > m.max {
		m.last = m.last[1:]
	}
}

func (m *Inmem) ObserveLookup(family, source string, cacheMs, dbMs float64) {
	m.push(&observe{Kind: "lookup", Family: family, Source: source, CacheMs: cacheMs, DbMs: dbMs})
}

func (m *Inmem) ObserveWrite(entity string, dbWriteMs float64) {
	m.push(&observe{Kind: "write", Entity: entity, DbMs: dbWriteMs})
}

func (m *Inmem) ObserveHTTP(method, route string, status int, durMs float64) {
	m.push(&observe{Kind: "http", Method: method, Route: route, Status: status, Dur: durMs})
}

func (m *Inmem) ObserveKafka(processMs float64, ok bool) {
	m.push(&observe{Kind: "kafka", Dur: processMs, OK: ok})
}

func (m *Inmem) ObserveInvalidation(keys int) {
	m.mu.Lock()
	m.totals.invalidated += keys
	m.mu.Unlock()
	m.push(&observe{Kind: "invalidation", Keys: keys})
}

func (m *Inmem) IncCacheHit() {
	m.mu.Lock()
	m.totals.cacheHits++
	m.mu.Unlock()
}
func (m *Inmem) IncCacheMiss() {
	m.mu.Lock()
	m.totals.cacheMiss++
	m.mu.Unlock()
}

// Totals returns hit, miss and invalidated-key counters.
func (m *Inmem) Totals() (hits, misses, invalidated int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.totals.cacheHits, m.totals.cacheMiss, m.totals.invalidated
}
