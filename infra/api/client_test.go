package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/CrestNiraj12/terminalconfess/app"
	"github.com/CrestNiraj12/terminalconfess/domain"
)

type staticToken string

func (s staticToken) AccessToken() (string, error) {
	if s == "" {
		return "", domain.ErrNoSession
	}
	return string(s), nil
}

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/", staticToken("tok"))
}

const feedBody = `{"confessions":[
  {"_id":"c1","content":"first","createdAt":"2026-03-01T11:00:00.000Z","likes":["u1","u2"],"comments":[{"text":"x"}],"shares":3,
   "author":{"_id":"a1","username":"owl","displayName":"Owl","profilePicture":"🦉"}},
  {"_id":"c2","content":"second","createdAt":"garbage","likes":[],"comments":[],"author":"a2"},
  {"_id":"c3","content":"third","createdAt":"2026-03-01T10:00:00Z","likes":[{"user":"u1"}],"author":null}
]}`

func TestFeedService_FetchRecentMapsEntries(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/feed" || r.Method != http.MethodGet {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("missing bearer token: %q", got)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Errorf("missing request id")
		}
		io.WriteString(w, feedBody)
	})
	svc := NewFeedService(client)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	got, err := svc.FetchRecent(context.Background())
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
	first := got[0]
	if first.ID != "c1" || first.Likes != 2 || first.Comments != 1 || first.Shares != 3 {
		t.Fatalf("unexpected mapping: %+v", first)
	}
	if first.Author == nil || first.Author.ID != "a1" || first.Author.DisplayName != "Owl" {
		t.Fatalf("unexpected author: %+v", first.Author)
	}
	if !first.CreatedAt.Equal(now.Add(-time.Hour)) {
		t.Fatalf("unexpected createdAt: %v", first.CreatedAt)
	}
	if !got[1].CreatedAt.Equal(now) {
		t.Fatalf("unparseable timestamp should fall back to now: %v", got[1].CreatedAt)
	}
	if got[1].Author == nil || got[1].Author.ID != "a2" {
		t.Fatalf("bare author id should map to author: %+v", got[1].Author)
	}
	if got[2].Author != nil || got[2].Likes != 1 {
		t.Fatalf("null author should stay nil: %+v", got[2])
	}
}

func TestFeedService_TrendingPath(t *testing.T) {
	var path string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		io.WriteString(w, `{"confessions":[]}`)
	})
	got, err := NewFeedService(client).FetchTrending(context.Background())
	if err != nil || len(got) != 0 {
		t.Fatalf("unexpected result %v %v", got, err)
	}
	if path != "/api/feed/trending" {
		t.Fatalf("unexpected path %q", path)
	}
}

func TestFeedService_ToggleLikeSendsUserID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/feed/c1/like" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type %q", ct)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body["userId"] != "u1" {
			t.Errorf("unexpected body %v %v", body, err)
		}
		io.WriteString(w, `{"liked":true}`)
	})
	liked, err := NewFeedService(client).ToggleLike(context.Background(), "c1", "u1")
	if err != nil || !liked {
		t.Fatalf("unexpected like result %v %v", liked, err)
	}
}

func TestClient_NonSuccessStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, `{"message":"database down"}`)
	})
	_, err := NewFeedService(client).FetchRecent(context.Background())
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if se.Status != 500 || se.Message() != "database down" {
		t.Fatalf("unexpected status error: %+v", se)
	}
	if errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("500 must not map to unauthorized")
	}
	if got := UserMessage(err, "fallback"); got != "database down" {
		t.Fatalf("unexpected user message %q", got)
	}
}

func TestClient_UnauthorizedMapsToDomainError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	_, err := NewFeedService(client).ToggleLike(context.Background(), "c1", "u1")
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestClient_MissingTokenFailsBeforeRequest(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true }))
	defer srv.Close()
	client := NewClient(srv.URL, staticToken(""))
	_, err := NewFeedService(client).FetchRecent(context.Background())
	if !errors.Is(err, domain.ErrNoSession) || called {
		t.Fatalf("expected no-session error before request, got %v (called=%v)", err, called)
	}
}

func TestAuthService_LoginIsPublic(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/onboarding/login" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "" {
			t.Errorf("login must not send a bearer token")
		}
		var req app.LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Email != "o@x.io" {
			t.Errorf("unexpected email %q", req.Email)
		}
		io.WriteString(w, `{"token":"new-token","user":{"_id":"u9","username":"owl","isOnboarded":false}}`)
	})
	sess, err := NewAuthService(client).Login(context.Background(), app.LoginRequest{Email: "o@x.io", Password: "secret1"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if sess.Token != "new-token" || sess.User == nil || sess.User.ID != "u9" || sess.User.IsOnboarded {
		t.Fatalf("unexpected session %+v %+v", sess, sess.User)
	}
}

func TestAuthService_RegisterWithoutTokenFails(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"user":{"id":"u1"}}`)
	})
	_, err := NewAuthService(client).Register(context.Background(), app.RegisterRequest{})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestOnboardingService_CompleteProfile(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/onboarding/complete-profile/u1" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var upd app.ProfileUpdate
		_ = json.NewDecoder(r.Body).Decode(&upd)
		if upd.Bio != "hi" || len(upd.Interests) != 1 {
			t.Errorf("unexpected update %+v", upd)
		}
		io.WriteString(w, `{"user":{"id":"u1","bio":"hi","isOnboarded":true}}`)
	})
	u, err := NewOnboardingService(client).CompleteProfile(context.Background(), "u1", app.ProfileUpdate{Bio: "hi", Interests: []string{"🎵 Music"}})
	if err != nil || !u.IsOnboarded || u.Bio != "hi" {
		t.Fatalf("unexpected user %+v %v", u, err)
	}
}

func TestPostService_CreateRejectsEmpty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("empty confession must not reach the backend")
	})
	if err := NewPostService(client).Create(context.Background(), "  \n", "u1"); !errors.Is(err, domain.ErrEmptyConfession) {
		t.Fatalf("expected ErrEmptyConfession, got %v", err)
	}
}

func TestPostService_Create(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if r.URL.Path != "/api/post" || body["content"] != "hello" || body["author"] != "u1" {
			t.Errorf("unexpected request %s %v", r.URL.Path, body)
		}
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"confession":{}}`)
	})
	if err := NewPostService(client).Create(context.Background(), " hello ", "u1"); err != nil {
		t.Fatalf("create failed: %v", err)
	}
}

func TestProfileService_StatsAndConfessions(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/stats"):
			io.WriteString(w, `{"stats":{"confessionCount":4,"likeCount":9,"commentCount":2,"followerCount":1}}`)
		case strings.HasSuffix(r.URL.Path, "/confessions"):
			io.WriteString(w, feedBody)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	svc := NewProfileService(client)
	stats, err := svc.Stats(context.Background(), "u1")
	if err != nil || stats.Confessions != 4 || stats.Likes != 9 || stats.Followers != 1 {
		t.Fatalf("unexpected stats %+v %v", stats, err)
	}
	list, err := svc.Confessions(context.Background(), "u1")
	if err != nil || len(list) != 3 {
		t.Fatalf("unexpected confessions %v %v", list, err)
	}
}
