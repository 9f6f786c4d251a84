package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/lingoquest/lingo/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func TestPush(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPop(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "first" {
		t.Errorf("expected active 'first', got %q", r.Active().Title())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
}

func TestReplace(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Replace(s2)

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after replace, got %d", r.Depth())
	}
	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on replaced screen")
	}
}

func TestReplaceScreenMsg(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Update(ReplaceScreenMsg{Screen: s2})

	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run via ReplaceScreenMsg")
	}
}

func TestReplacePreservesStackDepth(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)

	s3 := &stubScreen{title: "third"}
	r.Replace(s3)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "third" {
		t.Errorf("expected active 'third', got %q", r.Active().Title())
	}
}

func TestResetScreenMsg(t *testing.T) {
	r := New(&stubScreen{title: "first"})
	r.Push(&stubScreen{title: "second"})
	r.Push(&stubScreen{title: "third"})

	home := &stubScreen{title: "home"}
	r.Update(ResetScreenMsg{Screen: home})

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after reset, got %d", r.Depth())
	}
	if r.Active().Title() != "home" {
		t.Errorf("expected active 'home', got %q", r.Active().Title())
	}
	if !home.initRan {
		t.Error("expected Init() to run via ResetScreenMsg")
	}
}

// inboxScreen keeps every message it receives.
type inboxScreen struct {
	stubScreen
	got []tea.Msg
}

func (s *inboxScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.got = append(s.got, msg)
	return s, nil
}

type replyMsg struct {
	to screen.Screen
}

func (m replyMsg) Recipient() screen.Screen { return m.to }

func TestAddressedMessageReachesBuriedScreen(t *testing.T) {
	quiz := &inboxScreen{stubScreen: stubScreen{title: "quiz"}}
	maps := &inboxScreen{stubScreen: stubScreen{title: "maps"}}
	r := New(quiz)
	r.Push(maps)

	r.Update(replyMsg{to: quiz})
	if len(quiz.got) != 1 {
		t.Fatalf("expected the buried screen to get the reply, got %d messages", len(quiz.got))
	}
	if len(maps.got) != 0 {
		t.Fatalf("expected the active screen to get nothing, got %d messages", len(maps.got))
	}

	r.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if len(maps.got) != 1 || len(quiz.got) != 1 {
		t.Fatal("expected plain messages to go to the active screen only")
	}
}

func TestAddressedMessageForClosedScreenIsDropped(t *testing.T) {
	home := &inboxScreen{stubScreen: stubScreen{title: "home"}}
	history := &inboxScreen{stubScreen: stubScreen{title: "history"}}
	r := New(home)
	r.Push(history)
	r.Pop()

	if cmd := r.Update(replyMsg{to: history}); cmd != nil {
		t.Fatal("expected no command")
	}
	if len(home.got) != 0 || len(history.got) != 0 {
		t.Fatal("expected the reply to be dropped")
	}
}
