package live

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"

	"github.com/mager/libex/dashboard"
	"github.com/mager/libex/libex"
	"github.com/mager/libex/logger"
)

func ptr(v float64) *float64 { return &v }

func TestLiveHandlerRendersOnSelection(t *testing.T) {
	log, _ := logger.NewTestLogger()
	tables := dashboard.Prepare(
		[]libex.ArtistFeature{
			{URI: "A", GenreCluster: "indie rock"},
			{URI: "B", GenreCluster: "techno"},
		},
		[]libex.AlbumFeature{
			{URI: "al-1", ArtistURI: "A", ReleaseDate: "1994", Valence: ptr(0.2)},
			{URI: "al-2", ArtistURI: "B", ReleaseDate: "2004", Valence: ptr(0.4)},
		},
	)

	srv := httptest.NewServer(NewLiveHandler(log, tables))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	if err := conn.WriteJSON(selectionEvent{Artists: []string{"A"}}); err != nil {
		t.Fatal(err)
	}

	var view dashboard.View
	if err := conn.ReadJSON(&view); err != nil {
		t.Fatal(err)
	}

	if len(view.Points) != 1 || view.Points[0].URI != "al-1" {
		t.Errorf("want only artist A's album, got %+v", view.Points)
	}

	// A second event supersedes the first.
	if err := conn.WriteJSON(selectionEvent{}); err != nil {
		t.Fatal(err)
	}
	if err := conn.ReadJSON(&view); err != nil {
		t.Fatal(err)
	}
	if len(view.Points) != 2 {
		t.Errorf("want all albums for an empty selection, got %d", len(view.Points))
	}
}
