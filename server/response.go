package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/katalvlaran/igris/core"
	"github.com/katalvlaran/igris/topology"
	"go.uber.org/zap"
)

// Error codes reported in the envelope.
const (
	CodeInvalidParameter    = "INVALID_PARAMETER"
	CodeParameterOutOfRange = "PARAMETER_OUT_OF_RANGE"
	CodeNodeNotFound        = "NODE_NOT_FOUND"
	CodeInternal            = "INTERNAL_ERROR"
)

// Envelope wraps every JSON response.
type Envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
	Meta    *Meta      `json:"meta,omitempty"`
}

// ErrorInfo describes a failed request.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Meta carries request correlation data.
type Meta struct {
	RequestID    string `json:"request_id,omitempty"`
	GenerationID string `json:"generation_id,omitempty"`
	Seed         *int64 `json:"seed,omitempty"`
}

func (s *Server) respondJSON(w http.ResponseWriter, r *http.Request, status int, data any, meta *Meta) {
	if meta == nil {
		meta = &Meta{}
	}
	meta.RequestID = middleware.GetReqID(r.Context())
	s.write(w, status, Envelope{Success: true, Data: data, Meta: meta})
}

// respondError maps err onto a status code and envelope code.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := http.StatusInternalServerError, CodeInternal
	switch {
	case errors.Is(err, topology.ErrInvalidParameter):
		status, code = http.StatusBadRequest, CodeInvalidParameter
	case errors.Is(err, topology.ErrParameterOutOfRange):
		status, code = http.StatusBadRequest, CodeParameterOutOfRange
	case errors.Is(err, core.ErrNodeNotFound):
		status, code = http.StatusNotFound, CodeNodeNotFound
	}

	msg := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
		msg = "internal error"
	}

	s.write(w, status, Envelope{
		Error: &ErrorInfo{Code: code, Message: msg},
		Meta:  &Meta{RequestID: middleware.GetReqID(r.Context())},
	})
}

func (s *Server) write(w http.ResponseWriter, status int, body Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Warn("encode response", zap.Error(err))
	}
}
