package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/driftcli/drift/pkg/errors"
	"github.com/driftcli/drift/pkg/history"
	"github.com/driftcli/drift/pkg/observability"
	"github.com/driftcli/drift/pkg/route"
)

// routeRequest is the body for /v1/distance and /v1/tokens.
type routeRequest struct {
	Route string `json:"route"`
}

// distanceResponse is the result of a successful calculation.
type distanceResponse struct {
	Route      string        `json:"route"`
	Tokens     []route.Token `json:"tokens"`
	Horizontal float64       `json:"horizontal"`
	Vertical   float64       `json:"vertical"`
	Distance   float64       `json:"distance"`
}

// tokensResponse is the result of tokenizing without calculating.
type tokensResponse struct {
	Route  string        `json:"route"`
	Tokens []route.Token `json:"tokens"`
}

// errorResponse carries a machine-readable rejection.
type errorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleDistance(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRouteRequest(w, r)
	if !ok {
		return
	}

	tokens, err := route.Tokenize(req.Route)
	observability.Route().OnTokenize(r.Context(), req.Route, len(tokens), err)
	if err != nil {
		writeError(w, err)
		return
	}

	d, err := route.Displace(tokens)
	observability.Route().OnCompute(r.Context(), len(tokens), d.Distance(), err)
	if err != nil {
		writeError(w, err)
		return
	}

	s.record(r, route.Encode(tokens), d)

	writeJSON(w, http.StatusOK, distanceResponse{
		Route:      req.Route,
		Tokens:     tokens,
		Horizontal: d.Horizontal,
		Vertical:   d.Vertical,
		Distance:   d.Distance(),
	})
}

func (s *Server) handleTokens(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRouteRequest(w, r)
	if !ok {
		return
	}

	tokens, err := route.Tokenize(req.Route)
	observability.Route().OnTokenize(r.Context(), req.Route, len(tokens), err)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tokensResponse{Route: req.Route, Tokens: tokens})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, errors.New(errors.ErrCodeNotFound, "history is not enabled"))
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, errors.New(errors.ErrCodeInvalidInput, "invalid limit %q", v))
			return
		}
		limit = n
	}

	entries, err := s.store.List(r.Context(), limit)
	observability.Store().OnList(r.Context(), "server", len(entries), err)
	if err != nil {
		writeError(w, err)
		return
	}
	if entries == nil {
		entries = []history.Entry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleClearHistory(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, errors.New(errors.ErrCodeNotFound, "history is not enabled"))
		return
	}
	if err := s.store.Clear(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// record saves a calculation to history. Store failures are logged, never
// surfaced: history must not fail the calculation it records.
func (s *Server) record(r *http.Request, routeStr string, d route.Displacement) {
	if s.store == nil {
		return
	}
	err := s.store.Put(r.Context(), history.NewEntry(routeStr, d))
	observability.Store().OnPut(r.Context(), "server", err)
	if err != nil {
		s.logger.Warn("recording history entry", "err", err)
	}
}

func decodeRouteRequest(w http.ResponseWriter, r *http.Request) (routeRequest, bool) {
	var req routeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decoding request body"))
		return req, false
	}
	return req, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), errorResponse{
		Code:  string(errors.GetCode(err)),
		Error: errors.UserMessage(err),
	})
}

// statusFor maps error codes onto HTTP statuses.
func statusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeEmptyInput,
		errors.ErrCodeInvalidCharacter,
		errors.ErrCodeMissingMagnitude,
		errors.ErrCodeDanglingMagnitude,
		errors.ErrCodeMagnitudeParse,
		errors.ErrCodeInvalidInput,
		errors.ErrCodeInvalidFormat:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
