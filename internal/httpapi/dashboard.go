package httpapi

import "net/http"

func (s *Server) dashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, st, err := s.reports.Stats(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeLookup(w, st, "stats", stats)
}

func (s *Server) dashboardPie(w http.ResponseWriter, r *http.Request) {
	charts, st, err := s.reports.Pie(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeLookup(w, st, "charts", charts)
}

func (s *Server) dashboardBar(w http.ResponseWriter, r *http.Request) {
	charts, st, err := s.reports.Bar(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeLookup(w, st, "charts", charts)
}

func (s *Server) dashboardLine(w http.ResponseWriter, r *http.Request) {
	charts, st, err := s.reports.Line(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeLookup(w, st, "charts", charts)
}
