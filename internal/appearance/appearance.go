package appearance

import (
	"context"
	"fmt"
	"sync"
)

// Key is the settings key the theme is persisted under.
const Key = "theme"

// Mode is the visual theme.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// KV is the durable key-value store the preference lives in.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Controller tracks the dark-mode flag and persists it.
type Controller struct {
	kv   KV
	dark bool
}

// NewController returns a controller in light mode. Call Load to pick up the
// persisted preference.
func NewController(kv KV) *Controller {
	return &Controller{kv: kv}
}

// Load applies dark mode iff "dark" is stored. It never writes.
func (c *Controller) Load(ctx context.Context) error {
	v, ok, err := c.kv.Get(ctx, Key)
	if err != nil {
		return fmt.Errorf("load theme: %w", err)
	}
	c.dark = ok && v == string(Dark)
	return nil
}

// Toggle flips dark mode and persists the resulting mode. The visual state
// flips even when persisting fails.
func (c *Controller) Toggle(ctx context.Context) (Mode, error) {
	c.dark = !c.dark
	m := c.Mode()
	if err := c.kv.Set(ctx, Key, string(m)); err != nil {
		return m, fmt.Errorf("save theme: %w", err)
	}
	return m, nil
}

// Mode returns the current mode.
func (c *Controller) Mode() Mode {
	if c.dark {
		return Dark
	}
	return Light
}

// IsDark reports whether dark mode is on.
func (c *Controller) IsDark() bool {
	return c.dark
}

// MemoryKV is an in-process KV, used when no database is available.
type MemoryKV struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{values: make(map[string]string)}
}

func (m *MemoryKV) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryKV) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}
