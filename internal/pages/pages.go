// Package pages resolves route URLs such as "language?lang=Spanish" into
// screens. Every route resolves; unknown ones get a not-found page.
package pages

import (
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/lingoquest/lingo/internal/router"
	"github.com/lingoquest/lingo/internal/screen"
	"github.com/lingoquest/lingo/internal/screens/contact"
	"github.com/lingoquest/lingo/internal/screens/help"
	"github.com/lingoquest/lingo/internal/screens/history"
	"github.com/lingoquest/lingo/internal/screens/home"
	"github.com/lingoquest/lingo/internal/screens/maps"
	"github.com/lingoquest/lingo/internal/screens/placeholder"
	"github.com/lingoquest/lingo/internal/screens/quiz"
)

// Features lists the page sections a path gets.
type Features struct {
	Cards         bool
	Quiz          bool
	Form          bool
	MapPreview    bool
	SupportButton bool
}

// FeaturesFor applies the section gating rules to a normalized path.
func FeaturesFor(path string) Features {
	return Features{
		Cards:         path == router.IndexRoute,
		Quiz:          path == router.LanguageRoute,
		Form:          path == router.ContactRoute,
		MapPreview:    strings.Contains(path, router.MapsRoute),
		SupportButton: strings.Contains(path, router.HelpRoute),
	}
}

// Controller builds pages. The zero value is not usable; call New.
type Controller struct {
	logger    *zap.Logger
	recorder  quiz.Recorder
	explainer quiz.Explainer
	history   history.Source
}

// Option configures a Controller.
type Option func(*Controller)

// WithRecorder stores quiz attempts through r.
func WithRecorder(r quiz.Recorder) Option {
	return func(c *Controller) { c.recorder = r }
}

// WithExplainer enables tutor explanations on quiz pages.
func WithExplainer(e quiz.Explainer) Option {
	return func(c *Controller) { c.explainer = e }
}

// WithHistory lists past attempts from h on the history page.
func WithHistory(h history.Source) Option {
	return func(c *Controller) { c.history = h }
}

// New creates a page controller.
func New(logger *zap.Logger, opts ...Option) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Controller{logger: logger.Named("pages")}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Normalize strips a leading slash and a ".html" suffix. An empty path is
// the index.
func Normalize(path string) string {
	path = strings.TrimPrefix(path, "/")
	path = strings.TrimSuffix(path, ".html")
	if path == "" {
		return router.IndexRoute
	}
	return path
}

// Load builds the screen for rawURL.
func (c *Controller) Load(rawURL string) screen.Screen {
	u, err := url.Parse(rawURL)
	if err != nil {
		c.logger.Warn("unparseable route", zap.String("url", rawURL), zap.Error(err))
		return placeholder.NotFound(rawURL)
	}

	path := Normalize(u.Path)
	f := FeaturesFor(path)
	c.logger.Debug("loading page", zap.String("path", path), zap.Any("features", f))

	switch {
	case f.Cards:
		return home.New(c.logger)
	case f.Quiz:
		return quiz.New(u.Query().Get("lang"), c.recorder, c.explainer, c.logger)
	case f.Form:
		return contact.New(c.logger)
	case path == router.MapsRoute:
		return maps.New(f.MapPreview)
	case path == router.HelpRoute:
		return help.New(f.SupportButton)
	case path == router.HistoryRoute:
		return history.New(c.history)
	}

	c.logger.Info("page not found", zap.String("path", path))
	return placeholder.NotFound(path)
}
