package health

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/mager/libex/dashboard"
)

// HealthHandler is an http.Handler reporting whether the server is up and
// the feature tables loaded.
type HealthHandler struct {
	log    *zap.SugaredLogger
	tables *dashboard.Tables
}

func (*HealthHandler) Pattern() string {
	return "/health"
}

// NewHealthHandler builds a new HealthHandler.
func NewHealthHandler(log *zap.SugaredLogger, tables *dashboard.Tables) *HealthHandler {
	return &HealthHandler{
		log:    log,
		tables: tables,
	}
}

type Response struct {
	Server  bool `json:"server"`
	Artists int  `json:"artists"`
	Albums  int  `json:"albums"`
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var resp Response

	h.log.Info("health check")

	resp.Server = true
	resp.Artists = len(h.tables.Artists)
	resp.Albums = len(h.tables.Albums)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
