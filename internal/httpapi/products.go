package httpapi

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/TemirB/shop-dashboard/internal/application/service"
	"github.com/TemirB/shop-dashboard/internal/domain"
)

type searchRequest struct {
	Search   string   `validate:"max=100"`
	Category string   `validate:"max=50"`
	Sort     string   `validate:"omitempty,oneof=asc desc"`
	Price    *float64 `validate:"omitempty,gt=0"`
	Page     int      `validate:"gte=0"`
}

func parseSearch(r *http.Request) (searchRequest, error) {
	q := r.URL.Query()
	req := searchRequest{
		Search:   q.Get("search"),
		Category: q.Get("category"),
		Sort:     q.Get("sort"),
	}
	if v := q.Get("price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return req, fmt.Errorf("%w: price %q is not a number", domain.ErrValidation, v)
		}
		req.Price = &price
	}
	if v := q.Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil {
			return req, fmt.Errorf("%w: page %q is not a number", domain.ErrValidation, v)
		}
		req.Page = page
	}
	return req, nil
}

func (req searchRequest) query() service.ProductQuery {
	q := service.ProductQuery{
		Search:   req.Search,
		Category: req.Category,
		MaxPrice: req.Price,
		Page:     req.Page,
	}
	switch req.Sort {
	case "asc":
		q.Sort = domain.SortAsc
	case "desc":
		q.Sort = domain.SortDesc
	}
	return q
}

func (s *Server) newProduct(w http.ResponseWriter, r *http.Request) {
	var in domain.NewProduct
	if err := decode(r, &in); err != nil {
		s.writeError(w, r, err)
		return
	}

	if _, err := s.shop.NewProduct(r.Context(), in); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusCreated, true, "Product Created Successfully")
}

func (s *Server) latestProducts(w http.ResponseWriter, r *http.Request) {
	products, st, err := s.shop.LatestProducts(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeLookup(w, st, "products", products)
}

func (s *Server) categories(w http.ResponseWriter, r *http.Request) {
	categories, st, err := s.shop.Categories(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeLookup(w, st, "categories", categories)
}

func (s *Server) adminProducts(w http.ResponseWriter, r *http.Request) {
	products, st, err := s.shop.AdminProducts(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeLookup(w, st, "products", products)
}

func (s *Server) searchProducts(w http.ResponseWriter, r *http.Request) {
	req, err := parseSearch(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.check(req); err != nil {
		s.writeError(w, r, err)
		return
	}

	page, err := s.shop.SearchProducts(r.Context(), req.query())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{
		"success":   true,
		"products":  page.Products,
		"totalPage": page.TotalPage,
	})
}

func (s *Server) getProduct(w http.ResponseWriter, r *http.Request) {
	product, st, err := s.shop.Product(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeLookup(w, st, "product", product)
}

func (s *Server) updateProduct(w http.ResponseWriter, r *http.Request) {
	var patch domain.ProductPatch
	if err := decode(r, &patch); err != nil {
		s.writeError(w, r, err)
		return
	}

	if _, err := s.shop.UpdateProduct(r.Context(), chi.URLParam(r, "id"), patch); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, true, "Product Updated Successfully")
}

func (s *Server) deleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := s.shop.DeleteProduct(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, true, "Product Deleted Successfully")
}
