package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lingoquest/lingo/internal/llm"
)

// clearVendorKeys keeps the developer's own API keys out of Discover.
func clearVendorKeys(t *testing.T) {
	t.Helper()
	for _, k := range []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(k, "")
	}
}

func TestLoadFrom_Defaults(t *testing.T) {
	clearVendorKeys(t)
	cfg, err := LoadFrom(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.DB.Path)
	assert.Equal(t, 30*time.Second, cfg.LLMSettings.Timeout)

	_, err = cfg.TelegramToken()
	assert.ErrorIs(t, err, ErrMissingToken)
	assert.False(t, cfg.LLM().Enabled())
}

func TestLoadFrom_File(t *testing.T) {
	clearVendorKeys(t)
	dir := t.TempDir()
	yaml := `env: production
db:
  path: /var/lib/lingo/lingo.db
llm:
  provider: openai
  timeout: 5s
  openai:
    api_key: sk-file
    model: gpt-4.1-mini
telegram:
  token: "123:abc"
  debug: true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "/var/lib/lingo/lingo.db", cfg.DB.Path)
	tok, err := cfg.TelegramToken()
	require.NoError(t, err)
	assert.Equal(t, "123:abc", tok)
	assert.True(t, cfg.Telegram.Debug)

	lc := cfg.LLM()
	assert.Equal(t, llm.ProviderOpenAI, lc.Provider)
	assert.Equal(t, "sk-file", lc.OpenAI.APIKey)
	assert.Equal(t, "gpt-4.1-mini", lc.OpenAI.Model)
	assert.Equal(t, 5*time.Second, lc.Timeout)
	assert.Equal(t, llm.DefaultConfig().Gemini.Model, lc.Gemini.Model)
	assert.NoError(t, lc.Validate())
}

func TestLoadFrom_EnvOverridesFile(t *testing.T) {
	clearVendorKeys(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("db:\n  path: from-file.db\n"), 0o600))

	t.Setenv("LINGO_DB_PATH", "from-env.db")
	t.Setenv("LINGO_LLM_PROVIDER", "gemini")
	t.Setenv("LINGO_LLM_GEMINI_API_KEY", "g-key")

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)
	assert.Equal(t, "from-env.db", cfg.DB.Path)

	lc := cfg.LLM()
	assert.Equal(t, llm.ProviderGemini, lc.Provider)
	assert.Equal(t, "g-key", lc.Gemini.APIKey)
}

func TestLoadFrom_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("env: [unclosed"), 0o600))

	_, err := LoadFrom(dir)
	assert.Error(t, err)
}

func TestLLM_DiscoversVendorKey(t *testing.T) {
	clearVendorKeys(t)
	t.Setenv("ANTHROPIC_API_KEY", "a-key")

	cfg, err := LoadFrom(t.TempDir())
	require.NoError(t, err)

	lc := cfg.LLM()
	assert.Equal(t, llm.ProviderAnthropic, lc.Provider)
	assert.Equal(t, "a-key", lc.Anthropic.APIKey)
}

func TestLoadDotEnv(t *testing.T) {
	assert.NoError(t, loadDotEnv(filepath.Join(t.TempDir(), "missing.env")))

	t.Setenv("LINGO_TELEGRAM_TOKEN", "")
	require.NoError(t, os.Unsetenv("LINGO_TELEGRAM_TOKEN"))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("LINGO_TELEGRAM_TOKEN=from-dotenv\n"), 0o600))
	require.NoError(t, loadDotEnv(path))

	cfg, err := LoadFrom(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.Telegram.Token)
}
