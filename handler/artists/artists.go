package artists

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/mager/libex/dashboard"
)

// GetArtistsHandler is an http.Handler
type GetArtistsHandler struct {
	log    *zap.SugaredLogger
	tables *dashboard.Tables
}

func (*GetArtistsHandler) Pattern() string {
	return "/api/artists"
}

// NewGetArtistsHandler builds a new GetArtistsHandler.
func NewGetArtistsHandler(log *zap.SugaredLogger, tables *dashboard.Tables) *GetArtistsHandler {
	return &GetArtistsHandler{
		log:    log,
		tables: tables,
	}
}

// Get the artist feature table
// @Summary Get the artist feature table
// @Description Get every artist feature row plus the cluster, decade, and column lists for the control widgets
// @Tags Artists
// @Produce json
// @Success 200 {object} dashboard.Tables
// @Router /api/artists [get]
func (h *GetArtistsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.tables)
}
