package albums

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mager/libex/dashboard"
	"github.com/mager/libex/libex"
	"github.com/mager/libex/logger"
)

func ptr(v float64) *float64 { return &v }

func testTables() *dashboard.Tables {
	artists := []libex.ArtistFeature{
		{URI: "A", GenreCluster: "indie rock"},
		{URI: "B", GenreCluster: "techno"},
	}
	albums := []libex.AlbumFeature{
		{URI: "al-1", ArtistURI: "A", ReleaseDate: "1994", Valence: ptr(0.2)},
		{URI: "al-2", ArtistURI: "A", ReleaseDate: "2004", Valence: ptr(0.4)},
		{URI: "al-3", ArtistURI: "B", ReleaseDate: "1999", Valence: ptr(0.6)},
	}
	return dashboard.Prepare(artists, albums)
}

func get(t *testing.T, target string) dashboard.View {
	t.Helper()

	log, _ := logger.NewTestLogger()
	handler := NewGetAlbumsHandler(log, testTables())

	req, err := http.NewRequest(http.MethodGet, target, nil)
	if err != nil {
		t.Fatal(err)
	}

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("handler returned wrong status code: got %v want %v",
			rr.Code, http.StatusOK)
	}

	var view dashboard.View
	if err := json.Unmarshal(rr.Body.Bytes(), &view); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	return view
}

func TestGetAlbumsNoFilter(t *testing.T) {
	view := get(t, "/api/albums")

	if len(view.Points) != 3 {
		t.Errorf("want all albums with no filter, got %d", len(view.Points))
	}
	if view.X != "valence" || view.Y != "popularity" || view.Color != "loudness" {
		t.Errorf("want default axes, got %s/%s/%s", view.X, view.Y, view.Color)
	}
}

func TestGetAlbumsFiltered(t *testing.T) {
	view := get(t, "/api/albums?artists=A&decades=1990")

	if len(view.Points) != 1 {
		t.Fatalf("want one album for artist A in the 1990s, got %d", len(view.Points))
	}
	if view.Points[0].URI != "al-1" {
		t.Errorf("wrong album: %s", view.Points[0].URI)
	}
}

func TestGetAlbumsAxes(t *testing.T) {
	view := get(t, "/api/albums?x=year&y=valence&color=valence")

	if view.X != "year" || view.Y != "valence" {
		t.Errorf("axes not applied: %s/%s", view.X, view.Y)
	}
	for _, p := range view.Points {
		if p.X < 1900 || p.X > 2100 {
			t.Errorf("year axis value out of range: %v", p.X)
		}
	}
}
