package router

import (
	"github.com/lingoquest/lingo/internal/screen"

	tea "charm.land/bubbletea/v2"
)

// PushScreenMsg requests the router to push a new screen onto the stack.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg requests the router to pop the current screen off the stack.
type PopScreenMsg struct{}

// ReplaceScreenMsg requests the router to swap the top screen in place.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// ResetScreenMsg requests the router to drop the whole stack and start over
// from a single screen.
type ResetScreenMsg struct {
	Screen screen.Screen
}

// Page routes. A route may carry a query, e.g. "language?lang=Spanish".
const (
	IndexRoute    = "index"
	LanguageRoute = "language"
	ContactRoute  = "contact"
	MapsRoute     = "language-maps"
	HelpRoute     = "help"
	HistoryRoute  = "history"
)

// NavigateMsg asks the application to load the page at URL. The router
// does not resolve it itself. With Reset the page replaces the whole stack
// instead of being pushed.
type NavigateMsg struct {
	URL   string
	Reset bool
}

// Navigate returns a command that pushes the page at url.
func Navigate(url string) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{URL: url} }
}

// NavigateReset returns a command that makes the page at url the only one
// on the stack.
func NavigateReset(url string) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{URL: url, Reset: true} }
}

// Router manages a stack of screens.
type Router struct {
	stack []screen.Screen
}

// New creates a new Router with the given initial screen.
func New(initial screen.Screen) *Router {
	return &Router{
		stack: []screen.Screen{initial},
	}
}

// Push adds a screen on top of the stack and calls its Init().
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop removes the top screen. No-op if stack depth would become 0.
func (r *Router) Pop() tea.Cmd {
	if len(r.stack) <= 1 {
		return nil
	}
	r.stack = r.stack[:len(r.stack)-1]
	return nil
}

// Replace swaps the top screen for s and calls its Init().
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	if len(r.stack) == 0 {
		r.stack = []screen.Screen{s}
	} else {
		r.stack[len(r.stack)-1] = s
	}
	return s.Init()
}

// Reset clears the stack down to s and calls its Init().
func (r *Router) Reset(s screen.Screen) tea.Cmd {
	r.stack = []screen.Screen{s}
	return s.Init()
}

// Active returns the top screen on the stack.
func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

// Depth returns the number of screens on the stack.
func (r *Router) Depth() int {
	return len(r.stack)
}

// Update handles navigation messages, delivers screen.Addressed messages to
// their recipient and forwards everything else to the active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	case ResetScreenMsg:
		return r.Reset(msg.Screen)
	}

	if a, ok := msg.(screen.Addressed); ok {
		return r.deliver(a.Recipient(), msg)
	}

	active := r.Active()
	if active == nil {
		return nil
	}

	updated, cmd := active.Update(msg)
	r.stack[len(r.stack)-1] = updated
	return cmd
}

// deliver hands msg to target if it is still on the stack.
func (r *Router) deliver(target screen.Screen, msg tea.Msg) tea.Cmd {
	for i := len(r.stack) - 1; i >= 0; i-- {
		if r.stack[i] != target {
			continue
		}
		updated, cmd := target.Update(msg)
		r.stack[i] = updated
		return cmd
	}
	return nil
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	active := r.Active()
	if active == nil {
		return ""
	}
	return active.View(width, height)
}
