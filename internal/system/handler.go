package system

import (
	"context"
	"net/http"
	"time"

	"jumatrek/internal/migrations/mongo/validators"
	httputil "jumatrek/pkg/http"
	"jumatrek/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

const (
	RunningMessage = "Juma Trek API is running"

	maxCollections = 20
	maxErrorLength = 80
	readyTimeout   = 2 * time.Second
)

// Database is the part of the store the probes need. store.Gateway satisfies it.
type Database interface {
	Ping(ctx context.Context) error
	CollectionNames(ctx context.Context) ([]string, error)
	DatabaseName() string
}

type Options struct {
	DatabaseURLSet bool
	AdminOpenMode  bool
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
}

// DiagnosticsResponse is the GET /test body. The endpoint answers 200 even
// when the database is unreachable.
type DiagnosticsResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      *string  `json:"database_url"`
	DatabaseName     *string  `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
	AdminOpenMode    bool     `json:"admin_open_mode"`
}

type SystemHandler struct {
	db   Database
	opts Options
	log  *logger.Logger
}

// NewSystemHandler accepts a nil db; /test then reports it as uninitialized.
func NewSystemHandler(db Database, opts Options, log *logger.Logger) *SystemHandler {
	return &SystemHandler{db: db, opts: opts, log: log}
}

func (h *SystemHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/", h.Root)
	router.GET("/test", h.Diagnostics)
	router.GET("/schema", h.Schema)
	router.GET("/health", h.Health)
	router.GET("/ready", h.Ready)
}

func (h *SystemHandler) Root(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	httputil.WriteOK(w, httputil.MessageResponse{Message: RunningMessage})
}

func (h *SystemHandler) Diagnostics(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	httputil.WriteOK(w, h.diagnose(r.Context()))
}

func (h *SystemHandler) diagnose(ctx context.Context) DiagnosticsResponse {
	resp := DiagnosticsResponse{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
		AdminOpenMode:    h.opts.AdminOpenMode,
	}

	if h.db == nil {
		resp.Database = "⚠️ Available but not initialized"
		return resp
	}

	urlState := "❌ Not Set"
	if h.opts.DatabaseURLSet {
		urlState = "✅ Set"
	}
	name := h.db.DatabaseName()
	resp.DatabaseURL = &urlState
	resp.DatabaseName = &name

	if err := h.db.Ping(ctx); err != nil {
		h.log.Warn("Diagnostics ping failed", "error", err)
		resp.Database = "❌ Error: " + truncate(err.Error())
		return resp
	}

	resp.Database = "✅ Available"
	resp.ConnectionStatus = "Connected"

	names, err := h.db.CollectionNames(ctx)
	if err != nil {
		h.log.Warn("Diagnostics failed to list collections", "error", err)
		resp.Database = "⚠️ Connected but Error: " + truncate(err.Error())
		return resp
	}
	if len(names) > maxCollections {
		names = names[:maxCollections]
	}
	if names != nil {
		resp.Collections = names
	}
	resp.Database = "✅ Connected & Working"
	return resp
}

func (h *SystemHandler) Schema(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	httputil.WriteOK(w, validators.Schemas())
}

func (h *SystemHandler) Health(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	httputil.WriteOK(w, HealthResponse{Status: "ok"})
}

func (h *SystemHandler) Ready(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if h.db == nil {
		httputil.WriteJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable", Database: "uninitialized"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.log.Error("Database health check failed", "error", err, "path", r.URL.Path)
		httputil.WriteJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable", Database: "error"})
		return
	}
	httputil.WriteOK(w, HealthResponse{Status: "ready", Database: "ok"})
}

func truncate(s string) string {
	r := []rune(s)
	if len(r) <= maxErrorLength {
		return s
	}
	return string(r[:maxErrorLength])
}
