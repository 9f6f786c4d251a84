package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/lingoquest/lingo/internal/llm"
)

// ErrMissingToken is returned when the Telegram front end is started
// without a bot token.
var ErrMissingToken = errors.New("telegram token is not configured (set LINGO_TELEGRAM_TOKEN)")

// EnvPrefix is prepended to every environment variable, so "db.path" is
// read from LINGO_DB_PATH.
const EnvPrefix = "LINGO"

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env         string   `mapstructure:"env"` // development or production
	Log         Log      `mapstructure:"log"`
	DB          DB       `mapstructure:"db"`
	LLMSettings LLM      `mapstructure:"llm"`
	Telegram    Telegram `mapstructure:"telegram"`
}

// Log configures the zap logger.
type Log struct {
	File  string `mapstructure:"file"`  // empty means the default state-dir file
	Level string `mapstructure:"level"` // debug, info, warn, error
}

// DB configures the SQLite store.
type DB struct {
	Path string `mapstructure:"path"` // empty means the default data-dir file
}

// LLM configures the tutor backend.
type LLM struct {
	Provider   string        `mapstructure:"provider"`
	Timeout    time.Duration `mapstructure:"timeout"`
	Anthropic  Provider      `mapstructure:"anthropic"`
	OpenAI     Provider      `mapstructure:"openai"`
	Gemini     Provider      `mapstructure:"gemini"`
	OpenRouter Provider      `mapstructure:"openrouter"`
}

// Provider holds the settings of one LLM backend.
type Provider struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"`
}

// Telegram configures the bot front end.
type Telegram struct {
	Token string `mapstructure:"token"`
	Debug bool   `mapstructure:"debug"`
}

// IsProduction reports whether Env selects production logging.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// TelegramToken returns the bot token if it is configured.
func (c *Config) TelegramToken() (string, error) {
	if c.Telegram.Token == "" {
		return "", ErrMissingToken
	}
	return c.Telegram.Token, nil
}

// LLM adapts the llm section to llm.Config. Unset fields keep the package
// defaults; without an explicit provider the vendors' own API key variables
// are checked in turn.
func (c *Config) LLM() llm.Config {
	out := llm.DefaultConfig()
	out.Provider = c.LLMSettings.Provider
	if c.LLMSettings.Timeout > 0 {
		out.Timeout = c.LLMSettings.Timeout
	}
	merge(&out.Anthropic, c.LLMSettings.Anthropic)
	merge(&out.OpenAI, c.LLMSettings.OpenAI)
	merge(&out.Gemini, c.LLMSettings.Gemini)
	merge(&out.OpenRouter, c.LLMSettings.OpenRouter)
	out.Discover()
	return out
}

func merge(dst *llm.ProviderConfig, src Provider) {
	if src.APIKey != "" {
		dst.APIKey = src.APIKey
	}
	if src.Model != "" {
		dst.Model = src.Model
	}
	if src.BaseURL != "" {
		dst.BaseURL = src.BaseURL
	}
}

// Load reads .env from the working directory if present, then
// configuration from ./config, the user config directory and the
// environment.
func Load() (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}
	return LoadFrom(defaultConfigPaths()...)
}

// LoadFrom reads config.yaml from the first of paths that has one, then
// applies environment overrides.
func LoadFrom(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetDefault("env", "development")
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("db.path", "")
	v.SetDefault("llm.provider", "")
	v.SetDefault("llm.timeout", "30s")
	for _, name := range []string{llm.ProviderAnthropic, llm.ProviderOpenAI, llm.ProviderGemini, llm.ProviderOpenRouter} {
		v.SetDefault("llm."+name+".api_key", "")
		v.SetDefault("llm."+name+".model", "")
		v.SetDefault("llm."+name+".base_url", "")
	}
	v.SetDefault("telegram.token", "")
	v.SetDefault("telegram.debug", false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	return &cfg, nil
}

func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func defaultConfigPaths() []string {
	paths := []string{"./config"}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "lingo"))
	}
	return paths
}
