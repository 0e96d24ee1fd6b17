package live

import (
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/mager/libex/dashboard"
)

// selectionEvent is one widget-change message from the dashboard page.
type selectionEvent struct {
	Artists  []string `json:"artists"`
	Clusters []string `json:"clusters"`
	Decades  []string `json:"decades"`
	X        string   `json:"x"`
	Y        string   `json:"y"`
	Color    string   `json:"color"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// The dashboard only ever runs against its own backend.
		return true
	},
}

// LiveHandler handles WebSocket connections from the dashboard page. Each
// selection event is answered with one freshly rendered album view; a new
// event simply supersedes the previous one since rendering is stateless.
type LiveHandler struct {
	log    *zap.SugaredLogger
	tables *dashboard.Tables
}

func (*LiveHandler) Pattern() string {
	return "/ws"
}

// NewLiveHandler builds a new LiveHandler.
func NewLiveHandler(log *zap.SugaredLogger, tables *dashboard.Tables) *LiveHandler {
	return &LiveHandler{
		log:    log,
		tables: tables,
	}
}

func (h *LiveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Errorw("Error upgrading connection to WebSocket", "error", err)
		return
	}
	defer conn.Close()

	h.log.Info("WebSocket client connected")

	for {
		var ev selectionEvent
		if err := conn.ReadJSON(&ev); err != nil {
			// Client closed the page.
			return
		}

		view := h.tables.Render(
			dashboard.Selection{
				Artists:  ev.Artists,
				Clusters: ev.Clusters,
				Decades:  ev.Decades,
			},
			dashboard.Axes{X: ev.X, Y: ev.Y, Color: ev.Color},
		)

		if err := conn.WriteJSON(view); err != nil {
			h.log.Errorw("Error sending WebSocket message", "error", err)
			return
		}
	}
}
