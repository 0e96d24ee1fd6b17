package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mager/libex/dashboard"
	"github.com/mager/libex/libex"
	"github.com/mager/libex/logger"
)

func TestHealthHandler(t *testing.T) {
	log, _ := logger.NewTestLogger()
	tables := dashboard.Prepare(
		[]libex.ArtistFeature{{URI: "A", GenreCluster: "rock"}},
		[]libex.AlbumFeature{{URI: "al", ArtistURI: "A", ReleaseDate: "2001"}},
	)
	handler := NewHealthHandler(log, tables)

	req, err := http.NewRequest(http.MethodGet, "/health", nil)
	if err != nil {
		t.Fatal(err)
	}

	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v",
			status, http.StatusOK)
	}

	// Check the response body
	var resp Response
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Errorf("failed to unmarshal response: %v", err)
	}

	if !resp.Server {
		t.Error("handler reported server down")
	}
	if resp.Artists != 1 || resp.Albums != 1 {
		t.Errorf("handler returned wrong table sizes: %+v", resp)
	}
}
