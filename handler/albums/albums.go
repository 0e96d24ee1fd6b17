package albums

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/mager/libex/dashboard"
)

// GetAlbumsHandler is an http.Handler
type GetAlbumsHandler struct {
	log    *zap.SugaredLogger
	tables *dashboard.Tables
}

func (*GetAlbumsHandler) Pattern() string {
	return "/api/albums"
}

// NewGetAlbumsHandler builds a new GetAlbumsHandler.
func NewGetAlbumsHandler(log *zap.SugaredLogger, tables *dashboard.Tables) *GetAlbumsHandler {
	return &GetAlbumsHandler{
		log:    log,
		tables: tables,
	}
}

// Get the filtered album view
// @Summary Get the filtered album view
// @Description Render the album scatter for the given artist/cluster/decade selection and axis choices
// @Tags Albums
// @Produce json
// @Param artists query string false "comma-separated artist URIs"
// @Param clusters query string false "comma-separated genre cluster labels"
// @Param decades query string false "comma-separated decades"
// @Param x query string false "x axis column"
// @Param y query string false "y axis column"
// @Param color query string false "color column"
// @Success 200 {object} dashboard.View
// @Router /api/albums [get]
func (h *GetAlbumsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	sel := dashboard.Selection{
		Artists:  splitParam(q.Get("artists")),
		Clusters: splitParam(q.Get("clusters")),
		Decades:  splitParam(q.Get("decades")),
	}
	axes := dashboard.Axes{
		X:     q.Get("x"),
		Y:     q.Get("y"),
		Color: q.Get("color"),
	}

	view := h.tables.Render(sel, axes)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(view)
}

func splitParam(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
