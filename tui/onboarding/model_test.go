package onboarding

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/terminalconfess/app"
	"github.com/CrestNiraj12/terminalconfess/domain"
)

type stubOnboarder struct {
	got app.ProfileUpdate
	err error
}

func (s *stubOnboarder) CompleteOnboarding(_ context.Context, upd app.ProfileUpdate) (domain.User, error) {
	s.got = upd
	if s.err != nil {
		return domain.User{}, s.err
	}
	return domain.User{ID: "u1", Bio: upd.Bio, IsOnboarded: true}, nil
}

func keyType(m Model, t tea.KeyType) (Model, tea.Cmd) {
	return m.Update(tea.KeyMsg{Type: t})
}

func runes(m Model, s string) Model {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func TestWizard_CollectsAllSteps(t *testing.T) {
	svc := &stubOnboarder{}
	m := New(context.Background(), svc)

	m = runes(m, "night owl")
	m, _ = keyType(m, tea.KeyEnter)
	if m.step != stepInterests {
		t.Fatalf("expected interests step, got %d", m.step)
	}
	m = runes(m, " ")
	m = runes(m, "j")
	m = runes(m, "j")
	m = runes(m, " ")
	m, _ = keyType(m, tea.KeyEnter)
	m = runes(m, "🦉")
	m, cmd := keyType(m, tea.KeyEnter)
	if cmd == nil || !m.busy {
		t.Fatalf("expected submit on last step")
	}

	done, ok := cmd().(DoneMsg)
	if !ok || !done.User.IsOnboarded {
		t.Fatalf("unexpected result %+v", done)
	}
	want := []string{"💻 Coding", "🏔 Travel"}
	if svc.got.Bio != "night owl" || svc.got.ProfilePicture != "🦉" || strings.Join(svc.got.Interests, ",") != strings.Join(want, ",") {
		t.Fatalf("unexpected update %+v", svc.got)
	}
}

func TestWizard_BackStepsAndStopsAtBio(t *testing.T) {
	m := New(context.Background(), &stubOnboarder{})
	m, _ = keyType(m, tea.KeyEnter)
	m, _ = keyType(m, tea.KeyEsc)
	m, _ = keyType(m, tea.KeyEsc)
	if m.step != stepBio {
		t.Fatalf("expected bio step, got %d", m.step)
	}
}

func TestWizard_ShowsFailure(t *testing.T) {
	m := New(context.Background(), &stubOnboarder{err: errors.New("boom")})
	m, _ = keyType(m, tea.KeyEnter)
	m, _ = keyType(m, tea.KeyEnter)
	m, cmd := keyType(m, tea.KeyEnter)
	m, _ = m.Update(cmd())
	if m.busy || !strings.Contains(m.View(), "Couldn't save your profile") {
		t.Fatalf("expected failure message:\n%s", m.View())
	}
}
