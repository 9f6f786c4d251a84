package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/lingoquest/lingo/internal/appearance"
	"github.com/lingoquest/lingo/internal/pages"
	"github.com/lingoquest/lingo/internal/router"
	"github.com/lingoquest/lingo/internal/screen"
	"github.com/lingoquest/lingo/internal/screens/quiz"
	"github.com/lingoquest/lingo/internal/screens/welcome"
	"github.com/lingoquest/lingo/internal/store"
	"github.com/lingoquest/lingo/internal/ui/layout"
	"github.com/lingoquest/lingo/internal/ui/theme"
)

const settingsTimeout = 2 * time.Second

// Options configures the TUI.
type Options struct {
	// Store persists the theme and quiz attempts. Nil keeps both in memory
	// for the lifetime of the process.
	Store *store.Store

	Logger *zap.Logger

	// Tutor explains missed quiz answers. Nil disables explanations.
	Tutor quiz.Explainer

	// InitialRoute is the first page, "index" when empty.
	InitialRoute string

	// Splash shows the welcome animation before the first page.
	Splash bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	pages  *pages.Controller
	theme  *appearance.Controller
	logger *zap.Logger
	width  int
	height int
}

// newAppModel wires the page controller and theme from opts and loads the
// persisted theme.
func newAppModel(ctx context.Context, opts Options) AppModel {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var kv appearance.KV = appearance.NewMemoryKV()
	var pageOpts []pages.Option
	if opts.Store != nil {
		kv = opts.Store.Settings()
		pageOpts = append(pageOpts,
			pages.WithRecorder(opts.Store.Attempts()),
			pages.WithHistory(opts.Store.Attempts()),
		)
	}
	if opts.Tutor != nil {
		pageOpts = append(pageOpts, pages.WithExplainer(opts.Tutor))
	}

	themeCtl := appearance.NewController(kv)
	if err := themeCtl.Load(ctx); err != nil {
		logger.Warn("theme preference unavailable, using light", zap.Error(err))
	}
	theme.Apply(themeCtl.IsDark())

	ctl := pages.New(logger, pageOpts...)

	route := opts.InitialRoute
	if route == "" {
		route = router.IndexRoute
	}

	var first screen.Screen
	if opts.Splash {
		first = welcome.New(func() screen.Screen { return ctl.Load(route) })
	} else {
		first = ctl.Load(route)
	}

	return AppModel{
		router: router.New(first),
		pages:  ctl,
		theme:  themeCtl,
		logger: logger,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case router.NavigateMsg:
		page := m.pages.Load(msg.URL)
		if msg.Reset {
			return m, m.router.Reset(page)
		}
		return m, m.router.Push(page)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+t":
			m.toggleTheme()
			return m, nil
		case "f1":
			return m, m.router.Reset(m.pages.Load(router.IndexRoute))
		case "f2":
			return m, router.Navigate(router.MapsRoute)
		case "f3":
			return m, router.Navigate(router.ContactRoute)
		case "f4":
			return m, router.Navigate(router.HelpRoute)
		case "f5":
			return m, router.Navigate(router.HistoryRoute)
		case "esc":
			if !m.overlayActive() {
				if m.router.Depth() > 1 {
					return m, func() tea.Msg { return router.PopScreenMsg{} }
				}
				return m, nil
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) overlayActive() bool {
	o, ok := m.router.Active().(screen.OverlayProvider)
	return ok && o.OverlayActive()
}

// toggleTheme flips the palette right away; a failed save is only logged.
func (m AppModel) toggleTheme() {
	ctx, cancel := context.WithTimeout(context.Background(), settingsTimeout)
	defer cancel()

	mode, err := m.theme.Toggle(ctx)
	theme.Apply(m.theme.IsDark())
	if err != nil {
		m.logger.Warn("persist theme", zap.String("mode", string(mode)), zap.Error(err))
		return
	}
	m.logger.Debug("theme toggled", zap.String("mode", string(mode)))
}

func (m AppModel) footerHints() []layout.KeyHint {
	if p, ok := m.router.Active().(screen.KeyHintProvider); ok {
		return append(p.KeyHints(), layout.KeyHint{Key: "Ctrl+T", Description: "Theme"})
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+T", Description: "Theme"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "F1-F5", Description: "Pages"},
		{Key: "Ctrl+T", Description: "Theme"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render draws header, active page and footer. It returns "" until the
// first WindowSizeMsg arrives.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.theme.IsDark(), m.width)
	footer := layout.RenderFooter(m.footerHints(), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(newAppModel(ctx, opts), tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
