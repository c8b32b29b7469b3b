package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"lexiflow/internal/webutil"
)

// Pinger は疎通確認できる依存先です (*sql.DB が満たす)。
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthStatus struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
}

type HealthHandler struct {
	db      Pinger
	version string
	logger  *slog.Logger
}

func NewHealthHandler(db Pinger, version string, logger *slog.Logger) *HealthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthHandler{db: db, version: version, logger: logger}
}

func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "HealthCheck"))

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		logger.Error("Database health check failed", slog.Any("error", err))
		webutil.RespondWithJSON(w, http.StatusServiceUnavailable, webutil.Failure("Service is unhealthy"), logger)
		return
	}

	status := HealthStatus{
		Status:    "Healthy",
		Timestamp: time.Now().UTC(),
		Version:   h.version,
		Services:  map[string]string{"database": "Healthy"},
	}
	webutil.RespondWithJSON(w, http.StatusOK, webutil.OK("Service is healthy", status), logger)
}
