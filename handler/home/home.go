package home

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/mager/libex/dashboard"
)

// HomeHandler serves the interactive dashboard page.
type HomeHandler struct {
	log    *zap.SugaredLogger
	tables *dashboard.Tables
}

func (*HomeHandler) Pattern() string {
	return "/"
}

// NewHomeHandler builds a new HomeHandler.
func NewHomeHandler(log *zap.SugaredLogger, tables *dashboard.Tables) *HomeHandler {
	return &HomeHandler{
		log:    log,
		tables: tables,
	}
}

func (h *HomeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := dashboard.WritePage(w, h.tables); err != nil {
		h.log.Errorw("Error rendering dashboard page", "error", err)
		http.Error(w, "render error", http.StatusInternalServerError)
	}
}
