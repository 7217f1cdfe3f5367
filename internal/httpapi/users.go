package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/TemirB/shop-dashboard/internal/domain"
)

type newUserRequest struct {
	ID     string `json:"_id" validate:"required"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Photo  string `json:"photo"`
	Gender string `json:"gender"`
	DOB    string `json:"dob"`
}

var dobLayouts = []string{"2006-01-02", time.RFC3339}

func (req newUserRequest) toDomain() (domain.NewUser, error) {
	in := domain.NewUser{
		ID:     req.ID,
		Name:   req.Name,
		Email:  req.Email,
		Photo:  req.Photo,
		Gender: domain.Gender(req.Gender),
	}
	if req.DOB == "" {
		return in, nil
	}
	for _, layout := range dobLayouts {
		if t, err := time.Parse(layout, req.DOB); err == nil {
			in.DOB = t
			return in, nil
		}
	}
	return in, fmt.Errorf("%w: dob %q is not a date", domain.ErrValidation, req.DOB)
}

func (s *Server) newUser(w http.ResponseWriter, r *http.Request) {
	var req newUserRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.check(req); err != nil {
		s.writeError(w, r, err)
		return
	}
	in, err := req.toDomain()
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	user, created, err := s.shop.NewUser(r.Context(), in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeMessage(w, status, true, "Welcome, "+user.Name)
}

func (s *Server) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.shop.Users(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeOK(w, "users", users)
}

func (s *Server) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := s.shop.User(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeOK(w, "user", user)
}

func (s *Server) deleteUser(w http.ResponseWriter, r *http.Request) {
	if err := s.shop.DeleteUser(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, true, "User Deleted Successfully")
}
