package llm

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestMockProvider_Script(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(goodReply), Usage: Usage{InputTokens: 10, OutputTokens: 5}},
		MockResponse{Err: &ErrRateLimit{Err: errors.New("slow down")}},
	)

	resp, err := mock.Generate(t.Context(), explainRequest())
	require.NoError(t, err)
	assert.JSONEq(t, goodReply, string(resp.Content))
	assert.Equal(t, 10, resp.Usage.InputTokens)
	assert.Equal(t, mockModel, resp.Model)

	_, err = mock.Generate(t.Context(), Request{})
	var rl *ErrRateLimit
	assert.ErrorAs(t, err, &rl)

	_, err = mock.Generate(t.Context(), Request{})
	var unavail *ErrProviderUnavailable
	require.ErrorAs(t, err, &unavail)
	assert.ErrorIs(t, err, errMockExhausted)

	reqs := mock.Requests()
	require.Len(t, reqs, 3)
	assert.Equal(t, tutorSystem, reqs[0].System)
	assert.Equal(t, explainSchema, reqs[0].Schema)
}

func TestPurpose(t *testing.T) {
	assert.Equal(t, PurposeUnlabelled, PurposeFrom(t.Context()))
	assert.Equal(t, PurposeExplain, PurposeFrom(WithPurpose(t.Context(), PurposeExplain)))
	assert.Equal(t, PurposeCheck, PurposeFrom(WithPurpose(t.Context(), PurposeCheck)))
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"anthropic without key", Config{Provider: ProviderAnthropic}, true},
		{"anthropic with key", Config{Provider: ProviderAnthropic, Anthropic: ProviderConfig{APIKey: "sk-test"}}, false},
		{"openai without key", Config{Provider: ProviderOpenAI}, true},
		{"openai with key", Config{Provider: ProviderOpenAI, OpenAI: ProviderConfig{APIKey: "sk-test"}}, false},
		{"openrouter without key", Config{Provider: ProviderOpenRouter}, true},
		{"gemini with key", Config{Provider: ProviderGemini, Gemini: ProviderConfig{APIKey: "g-test"}}, false},
		{"mock needs no key", Config{Provider: ProviderMock}, false},
		{"tutor disabled", Config{}, true},
		{"unknown provider", Config{Provider: "deepl"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_Discover(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "sk-openai")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")
	t.Setenv("OPENROUTER_API_KEY", "")

	cfg := DefaultConfig()
	require.True(t, cfg.Discover())
	assert.Equal(t, ProviderOpenAI, cfg.Provider)
	assert.Equal(t, "sk-openai", cfg.OpenAI.APIKey)
	assert.Empty(t, cfg.Anthropic.APIKey)

	explicit := DefaultConfig()
	explicit.Provider = ProviderMock
	assert.True(t, explicit.Discover())
	assert.Equal(t, ProviderMock, explicit.Provider)
}

func TestConfig_DiscoverNothing(t *testing.T) {
	for _, k := range []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(k, "")
	}
	cfg := DefaultConfig()
	assert.False(t, cfg.Discover())
	assert.False(t, cfg.Enabled())
}

func TestNewProvider(t *testing.T) {
	p, err := NewProvider(t.Context(), Config{Provider: ProviderMock}, nil)
	require.NoError(t, err)
	assert.Equal(t, mockModel, p.ModelID())

	_, err = NewProvider(t.Context(), Config{Provider: ProviderAnthropic}, nil)
	assert.ErrorContains(t, err, "LINGO_LLM_ANTHROPIC_API_KEY")

	p, err = NewProvider(t.Context(), Config{Provider: ProviderOpenAI, OpenAI: ProviderConfig{APIKey: "sk-test", Model: "gpt-4o-mini"}}, nil)
	require.NoError(t, err)
	assert.IsType(t, &RetryProvider{}, p)
	assert.Equal(t, "gpt-4o-mini", p.ModelID())
}

func TestEstimateCost(t *testing.T) {
	cost, ok := EstimateCost("gpt-4o-mini", Usage{InputTokens: 1_000_000, OutputTokens: 1_000_000})
	require.True(t, ok)
	assert.InDelta(t, 0.75, cost, 0.001)

	_, ok = EstimateCost("no-such-model", Usage{})
	assert.False(t, ok)
}

func TestLoggingProvider(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(goodReply), Usage: Usage{InputTokens: 3, OutputTokens: 4}},
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
	)
	p := WithLogging(mock, zap.New(core))
	ctx := WithPurpose(t.Context(), PurposeExplain)

	_, err := p.Generate(ctx, explainRequest())
	require.NoError(t, err)
	_, err = p.Generate(ctx, Request{})
	require.Error(t, err)

	ok := logs.FilterMessage("llm request").All()
	require.Len(t, ok, 1)
	fields := ok[0].ContextMap()
	assert.Equal(t, string(PurposeExplain), fields["purpose"])
	assert.Equal(t, explainSchema.Name, fields["schema"])
	assert.Equal(t, int64(3), fields["input_tokens"])

	assert.Equal(t, 1, logs.FilterMessage("llm request failed").Len())
}
