package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/TemirB/shop-dashboard/internal/domain"
)

func (s *Server) newCoupon(w http.ResponseWriter, r *http.Request) {
	var in domain.NewCoupon
	if err := decode(r, &in); err != nil {
		s.writeError(w, r, err)
		return
	}

	c, err := s.shop.NewCoupon(r.Context(), in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusCreated, true, "Coupon "+c.Code+" Created Successfully")
}

func (s *Server) discount(w http.ResponseWriter, r *http.Request) {
	amount, err := s.shop.Discount(r.Context(), r.URL.Query().Get("code"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeOK(w, "discount", amount)
}

func (s *Server) listCoupons(w http.ResponseWriter, r *http.Request) {
	coupons, err := s.shop.Coupons(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeOK(w, "coupons", coupons)
}

func (s *Server) deleteCoupon(w http.ResponseWriter, r *http.Request) {
	c, err := s.shop.DeleteCoupon(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, true, "Coupon "+c.Code+" Deleted Successfully")
}
