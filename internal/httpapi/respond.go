package httpapi

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/TemirB/shop-dashboard/internal/cache"
	"github.com/TemirB/shop-dashboard/internal/domain"
	"github.com/TemirB/shop-dashboard/internal/observability"
)

const maxBodyBytes = 1 << 20

var errUnsupportedMedia = errors.New("content type must be application/json")

type envelope map[string]any

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, success bool, msg string) {
	writeJSON(w, status, envelope{"success": success, "message": msg})
}

func writeOK(w http.ResponseWriter, key string, v any) {
	writeJSON(w, http.StatusOK, envelope{"success": true, key: v})
}

func writeLookup(w http.ResponseWriter, st cache.LookupStats, key string, v any) {
	observability.WriteLookupHeaders(w, string(st.Source), st.CacheMs, st.DBMs)
	writeOK(w, key, v)
}

// writeError maps domain errors onto status codes. Anything unrecognised is
// a 500 and its text is not sent to the client.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		status = http.StatusInternalServerError
		msg    = "Internal Server Error"
	)
	switch {
	case errors.Is(err, errUnsupportedMedia):
		status, msg = http.StatusUnsupportedMediaType, err.Error()
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrInvalidCoupon):
		status, msg = http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrNotFound):
		status, msg = http.StatusNotFound, err.Error()
	case errors.Is(err, domain.ErrDuplicate):
		status, msg = http.StatusConflict, err.Error()
	}

	if status >= http.StatusInternalServerError {
		s.logger.Error("Request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}
	writeMessage(w, status, false, msg)
}

// decode reads a single JSON object into dst. Unknown fields are rejected.
func decode(r *http.Request, dst any) error {
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if ct != "application/json" {
		return errUnsupportedMedia
	}

	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: bad json: %v", domain.ErrValidation, err)
	}
	return nil
}

func (s *Server) check(v any) error {
	if err := s.validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return fmt.Errorf("%w: %s", domain.ErrValidation, verrs.Error())
		}
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	return nil
}
