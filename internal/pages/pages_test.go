package pages

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	score "github.com/lingoquest/lingo/internal/quiz"
	"github.com/lingoquest/lingo/internal/router"
	"github.com/lingoquest/lingo/internal/screens/contact"
	"github.com/lingoquest/lingo/internal/screens/help"
	"github.com/lingoquest/lingo/internal/screens/history"
	"github.com/lingoquest/lingo/internal/screens/home"
	"github.com/lingoquest/lingo/internal/screens/maps"
	"github.com/lingoquest/lingo/internal/screens/placeholder"
	"github.com/lingoquest/lingo/internal/screens/quiz"
	"github.com/lingoquest/lingo/internal/tutor"
)

type nopExplainer struct{}

func (nopExplainer) Explain(context.Context, string, []score.Miss) ([]tutor.Explanation, error) {
	return nil, nil
}

func TestNormalize(t *testing.T) {
	tests := map[string]string{
		"":                    router.IndexRoute,
		"/":                   router.IndexRoute,
		"index.html":          router.IndexRoute,
		"/language-maps.html": router.MapsRoute,
		"help":                router.HelpRoute,
	}
	for in, want := range tests {
		assert.Equal(t, want, Normalize(in), in)
	}
}

func TestFeaturesFor(t *testing.T) {
	tests := []struct {
		path string
		want Features
	}{
		{router.IndexRoute, Features{Cards: true}},
		{router.LanguageRoute, Features{Quiz: true}},
		{router.ContactRoute, Features{Form: true}},
		{router.MapsRoute, Features{MapPreview: true}},
		{router.HelpRoute, Features{SupportButton: true}},
		{router.HistoryRoute, Features{}},
		{"pricing", Features{}},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, FeaturesFor(tt.path))
		})
	}
}

func TestLoad(t *testing.T) {
	c := New(nil, WithExplainer(nopExplainer{}))

	assert.IsType(t, &home.HomeScreen{}, c.Load("index"))
	assert.IsType(t, &home.HomeScreen{}, c.Load(""))
	assert.IsType(t, &contact.ContactScreen{}, c.Load("contact"))
	assert.IsType(t, &maps.MapsScreen{}, c.Load("language-maps"))
	assert.IsType(t, &help.HelpScreen{}, c.Load("help.html"))
	assert.IsType(t, &history.HistoryScreen{}, c.Load("history"))

	q, ok := c.Load(home.LanguageURL("Spanish")).(*quiz.QuizScreen)
	require.True(t, ok)
	assert.True(t, q.HasQuiz())
}

func TestLoad_LanguageFallbacks(t *testing.T) {
	c := New(nil)
	for _, raw := range []string{"language", "language?lang=French", "language?lang=spanish"} {
		q, ok := c.Load(raw).(*quiz.QuizScreen)
		require.True(t, ok, raw)
		assert.False(t, q.HasQuiz(), raw)
		assert.Contains(t, q.View(100, 30), quiz.NoLanguageMessage)
	}
}

func TestLoad_NotFound(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	c := New(zap.New(core))

	nf, ok := c.Load("pricing").(*placeholder.NotFoundScreen)
	require.True(t, ok)
	assert.Equal(t, "pricing", nf.Route())
	assert.Equal(t, 1, logs.FilterMessage("page not found").Len())

	_, ok = c.Load("%zz").(*placeholder.NotFoundScreen)
	assert.True(t, ok)
}

func TestLoad_MapsPreviewEnabled(t *testing.T) {
	m := New(nil).Load("/language-maps.html").(*maps.MapsScreen)
	assert.True(t, m.OpenPreview())
	assert.True(t, m.OverlayActive())
}
