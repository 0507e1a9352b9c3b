package domain

import (
	"errors"
	"testing"
)

func TestSession_RequireUser(t *testing.T) {
	cases := []struct {
		name string
		s    Session
		ok   bool
	}{
		{name: "empty", s: Session{}},
		{name: "token only", s: Session{Token: "t"}},
		{name: "user without id", s: Session{Token: "t", User: &User{}}},
		{name: "user only", s: Session{User: &User{ID: "u1"}}},
		{name: "complete", s: Session{Token: "t", User: &User{ID: "u1"}}, ok: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			u, err := tc.s.RequireUser()
			if tc.ok {
				if err != nil || u == nil {
					t.Fatalf("expected user, got %v %v", u, err)
				}
				return
			}
			if !errors.Is(err, ErrNoSession) {
				t.Fatalf("expected ErrNoSession, got %v", err)
			}
		})
	}
}

func TestAuthor_NameAndAvatarFallbacks(t *testing.T) {
	var missing *Author
	if got := missing.Name("Anonymous"); got != "Anonymous" {
		t.Fatalf("nil author name: %q", got)
	}
	if got := missing.Avatar("A"); got != "A" {
		t.Fatalf("nil author avatar: %q", got)
	}

	a := &Author{Username: "night_owl"}
	if got := a.Name("User"); got != "night_owl" {
		t.Fatalf("username fallback: %q", got)
	}
	if got := a.Avatar("U"); got != "N" {
		t.Fatalf("initial avatar: %q", got)
	}

	a.DisplayName = "owl"
	a.ProfilePicture = "🦉"
	if got := a.Name("User"); got != "owl" {
		t.Fatalf("display name: %q", got)
	}
	if got := a.Avatar("U"); got != "🦉" {
		t.Fatalf("emoji avatar: %q", got)
	}

	a.ProfilePicture = "avatar.png"
	if got := a.Avatar("U"); got != "O" {
		t.Fatalf("file name pictures should fall back to initial: %q", got)
	}
}

func TestConfession_IsOwnedBy(t *testing.T) {
	c := Confession{Author: &Author{ID: "u1"}}
	if !c.IsOwnedBy("u1") || c.IsOwnedBy("u2") || c.IsOwnedBy("") {
		t.Fatalf("unexpected ownership result")
	}
	if (Confession{}).IsOwnedBy("u1") {
		t.Fatalf("missing author must not be owned")
	}
}
