package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/TemirB/shop-dashboard/internal/domain"
	"github.com/TemirB/shop-dashboard/internal/observability"
)

func (s *Server) newOrder(w http.ResponseWriter, r *http.Request) {
	var in domain.NewOrder
	if err := decode(r, &in); err != nil {
		s.writeError(w, r, err)
		return
	}

	_, st, err := s.shop.PlaceOrderWithStats(r.Context(), in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	observability.AppendServerTiming(w, "db_write", st.DBWriteMs, "")
	writeMessage(w, http.StatusCreated, true, "Order Placed Successfully")
}

func (s *Server) myOrders(w http.ResponseWriter, r *http.Request) {
	orders, st, err := s.shop.MyOrders(r.Context(), r.URL.Query().Get("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeLookup(w, st, "orders", orders)
}

func (s *Server) allOrders(w http.ResponseWriter, r *http.Request) {
	orders, st, err := s.shop.AllOrders(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeLookup(w, st, "orders", orders)
}

func (s *Server) getOrder(w http.ResponseWriter, r *http.Request) {
	order, st, err := s.shop.Order(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeLookup(w, st, "order", order)
}

func (s *Server) processOrder(w http.ResponseWriter, r *http.Request) {
	if _, err := s.shop.ProcessOrder(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, true, "Order Processed Successfully")
}

func (s *Server) deleteOrder(w http.ResponseWriter, r *http.Request) {
	if err := s.shop.DeleteOrder(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, true, "Order Deleted Successfully")
}
