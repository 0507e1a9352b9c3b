package store

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLikes_MissingFileIsEmpty(t *testing.T) {
	l := OpenLikes(filepath.Join(t.TempDir(), LikesFile), nil)
	if got := l.Load(); len(got) != 0 {
		t.Fatalf("expected empty set, got %v", got)
	}
	if l.Contains("a") {
		t.Fatalf("empty set must not contain ids")
	}
}

func TestLikes_MalformedFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), LikesFile)
	for _, body := range []string{"not-json", `{"a":1}`, `[1,2]`, ""} {
		if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
			t.Fatalf("write failed: %v", err)
		}
		l := OpenLikes(path, nil)
		if got := l.Load(); len(got) != 0 {
			t.Fatalf("body %q: expected empty set, got %v", body, got)
		}
	}
}

func TestLikes_TogglePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", LikesFile)
	l := OpenLikes(path, nil)

	if err := l.Toggle("b", true); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if err := l.Toggle("a", true); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if string(data) != `["a","b"]` {
		t.Fatalf("unexpected file contents: %s", data)
	}

	reopened := OpenLikes(path, nil)
	if !reopened.Contains("a") || !reopened.Contains("b") {
		t.Fatalf("expected liked ids after reopen")
	}

	if err := reopened.Toggle("a", false); err != nil {
		t.Fatalf("untoggle failed: %v", err)
	}
	if OpenLikes(path, nil).Contains("a") {
		t.Fatalf("unliked id must be removed from disk")
	}
}

func TestLikes_LoadIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), LikesFile)
	if err := os.WriteFile(path, []byte(`["x","y"]`), 0o600); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	l := OpenLikes(path, nil)
	first := l.Load()
	second := l.Load()
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("load not idempotent: %v vs %v", first, second)
	}
	delete(first, "x")
	if !l.Contains("x") {
		t.Fatalf("returned set must be a copy")
	}
}

func TestLikes_ToggleRoundTripRestoresMembership(t *testing.T) {
	l := OpenLikes(filepath.Join(t.TempDir(), LikesFile), nil)
	before := l.Contains("c1")
	if err := l.Toggle("c1", true); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if err := l.Toggle("c1", false); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if l.Contains("c1") != before {
		t.Fatalf("round trip changed membership")
	}
}
