package snapshot

import (
	"bytes"
	"os"
	"testing"

	"github.com/mager/libex/libex"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	store := New(t.TempDir())

	in := []libex.Artist{
		{URI: "spotify:artist:a", Name: "A", Genres: []string{"rock"}},
		{URI: "spotify:artist:b", Name: "B"},
	}
	if err := store.Save(Artists, in); err != nil {
		t.Fatal(err)
	}

	var out []libex.Artist
	if err := store.Load(Artists, &out); err != nil {
		t.Fatal(err)
	}

	if len(out) != 2 || out[0].URI != in[0].URI || out[1].Name != "B" {
		t.Errorf("round trip mismatch: got %+v", out)
	}
}

func TestSnapshotsAreCompactJSON(t *testing.T) {
	store := New(t.TempDir())

	if err := store.Save(Albums, []libex.Album{{URI: "x"}}); err != nil {
		t.Fatal(err)
	}

	b, err := os.ReadFile(store.Path(Albums))
	if err != nil {
		t.Fatal(err)
	}
	if bytes.ContainsRune(b, '\n') {
		t.Error("snapshot contains newlines; want a single-line document")
	}
}

func TestSaveReplacesWholesale(t *testing.T) {
	store := New(t.TempDir())

	if err := store.Save(Artists, []libex.Artist{{URI: "a"}, {URI: "b"}}); err != nil {
		t.Fatal(err)
	}
	if err := store.Save(Artists, []libex.Artist{{URI: "c"}}); err != nil {
		t.Fatal(err)
	}

	var out []libex.Artist
	if err := store.Load(Artists, &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0].URI != "c" {
		t.Errorf("want only the second run's rows, got %+v", out)
	}
}

func TestLoadMissingDataset(t *testing.T) {
	store := New(t.TempDir())

	var out []libex.Artist
	if err := store.Load(Artists, &out); err == nil {
		t.Error("want error for missing dataset")
	}
}
