package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"realuseragent/pkg/logging/logging"
	"realuseragent/pkg/useragent"
)

// Picker is the part of *useragent.Agent the HTTP handlers use.
type Picker interface {
	Random(ctx context.Context, filter useragent.Filter, refresh bool) (string, bool, error)
	UserAgent(ctx context.Context, name string, filter useragent.Filter, refresh bool) (string, bool, error)
	Collect(ctx context.Context, category, name, orderBy string, refresh bool) ([]useragent.Record, error)
}

// UserAgentHandler serves random user agents and raw catalog records.
type UserAgentHandler struct {
	Agent Picker
}

func NewUserAgentHandler(agent Picker) *UserAgentHandler {
	return &UserAgentHandler{Agent: agent}
}

type userAgentResponse struct {
	UserAgent string `json:"user_agent"`
}

type browserInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Random handles GET /v1/random. name is kebab-cased like /v1/browsers/{name}.
func (h *UserAgentHandler) Random(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	refresh, ok := h.refreshParam(w, r)
	if !ok {
		return
	}

	filter := useragent.Filter{
		Category:        q.Get("category"),
		Name:            useragent.KebabCase(q.Get("name")),
		OrderBy:         q.Get("order_by"),
		SoftwareVersion: q.Get("software_version"),
		OperatingSystem: q.Get("operating_system"),
		HardwareType:    q.Get("hardware_type"),
	}

	start := time.Now()
	ua, found, err := h.Agent.Random(r.Context(), filter, refresh)
	h.respondPick(w, r, ua, found, err, start,
		zap.String("name", filter.Name),
		zap.String("category", filter.Category),
	)
}

// Browser handles GET /v1/browsers/{name}; name may be camel or kebab case.
func (h *UserAgentHandler) Browser(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	name := chi.URLParam(r, "name")

	refresh, ok := h.refreshParam(w, r)
	if !ok {
		return
	}

	filter := useragent.Filter{
		SoftwareVersion: q.Get("software_version"),
		OperatingSystem: q.Get("operating_system"),
		HardwareType:    q.Get("hardware_type"),
	}

	start := time.Now()
	ua, found, err := h.Agent.UserAgent(r.Context(), name, filter, refresh)
	h.respondPick(w, r, ua, found, err, start, zap.String("name", name))
}

// Browsers handles GET /v1/browsers.
func (h *UserAgentHandler) Browsers(w http.ResponseWriter, r *http.Request) {
	out := make([]browserInfo, 0, len(useragent.KnownBrowsers))
	for _, id := range useragent.KnownBrowsers {
		out = append(out, browserInfo{ID: id, Name: useragent.KebabCase(id)})
	}
	writeJSON(w, http.StatusOK, out)
}

// Records handles GET /v1/records/{category}/{name}.
func (h *UserAgentHandler) Records(w http.ResponseWriter, r *http.Request) {
	logger := logging.L(r.Context())
	category := chi.URLParam(r, "category")
	name := chi.URLParam(r, "name")

	refresh, ok := h.refreshParam(w, r)
	if !ok {
		return
	}

	start := time.Now()
	records, err := h.Agent.Collect(r.Context(), category, name, r.URL.Query().Get("order_by"), refresh)
	if err != nil {
		h.respondError(w, r, err, zap.String("category", category), zap.String("name", name))
		return
	}

	logger.Info("records_served",
		zap.String("category", category),
		zap.String("name", name),
		zap.Bool("refresh", refresh),
		zap.Int("records", len(records)),
		zap.Duration("total_latency", time.Since(start)),
	)

	writeJSON(w, http.StatusOK, records)
}

func (h *UserAgentHandler) respondPick(
	w http.ResponseWriter,
	r *http.Request,
	ua string,
	found bool,
	err error,
	start time.Time,
	fields ...zap.Field,
) {
	if err != nil {
		h.respondError(w, r, err, fields...)
		return
	}

	logging.L(r.Context()).Info("user_agent_pick",
		append(fields,
			zap.Bool("found", found),
			zap.Duration("total_latency", time.Since(start)),
		)...,
	)

	if !found {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "no_user_agent"})
		return
	}
	writeJSON(w, http.StatusOK, userAgentResponse{UserAgent: ua})
}

// respondError logs an upstream failure; the core leaves logging to callers.
func (h *UserAgentHandler) respondError(w http.ResponseWriter, r *http.Request, err error, fields ...zap.Field) {
	logger := logging.L(r.Context())

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		logger.Warn("catalog request timed out", append(fields, zap.Error(err))...)
		writeJSON(w, http.StatusGatewayTimeout, errorResponse{Error: "gateway_timeout"})
		return
	}

	logger.Error("catalog request failed", append(fields, zap.Error(err))...)
	writeJSON(w, http.StatusBadGateway, errorResponse{Error: "upstream_error"})
}

func (h *UserAgentHandler) refreshParam(w http.ResponseWriter, r *http.Request) (bool, bool) {
	raw := r.URL.Query().Get("refresh")
	if raw == "" {
		return false, true
	}
	refresh, err := strconv.ParseBool(raw)
	if err != nil {
		logging.L(r.Context()).Warn("invalid refresh parameter", zap.String("refresh", raw))
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid_refresh"})
		return false, false
	}
	return refresh, true
}

// writeJSON is a small helper to send JSON responses consistently.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
