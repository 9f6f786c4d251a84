package appearance

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingKV counts writes so tests can assert Load never persists.
type recordingKV struct {
	*MemoryKV
	sets   int
	getErr error
	setErr error
}

func newRecordingKV() *recordingKV {
	return &recordingKV{MemoryKV: NewMemoryKV()}
}

func (r *recordingKV) Get(ctx context.Context, key string) (string, bool, error) {
	if r.getErr != nil {
		return "", false, r.getErr
	}
	return r.MemoryKV.Get(ctx, key)
}

func (r *recordingKV) Set(ctx context.Context, key, value string) error {
	r.sets++
	if r.setErr != nil {
		return r.setErr
	}
	return r.MemoryKV.Set(ctx, key, value)
}

func TestLoad_AbsentMeansLightAndNoWrite(t *testing.T) {
	kv := newRecordingKV()
	c := NewController(kv)

	require.NoError(t, c.Load(context.Background()))
	assert.False(t, c.IsDark())
	assert.Equal(t, Light, c.Mode())
	assert.Zero(t, kv.sets)
}

func TestLoad_Dark(t *testing.T) {
	kv := newRecordingKV()
	_ = kv.MemoryKV.Set(context.Background(), Key, "dark")
	c := NewController(kv)

	require.NoError(t, c.Load(context.Background()))
	assert.True(t, c.IsDark())
	assert.Zero(t, kv.sets)
}

func TestLoad_UnknownValueIsLight(t *testing.T) {
	kv := newRecordingKV()
	_ = kv.MemoryKV.Set(context.Background(), Key, "solarized")
	c := NewController(kv)

	require.NoError(t, c.Load(context.Background()))
	assert.False(t, c.IsDark())
}

func TestToggleTwiceRestoresState(t *testing.T) {
	ctx := context.Background()
	for _, start := range []Mode{Light, Dark} {
		kv := newRecordingKV()
		_ = kv.MemoryKV.Set(ctx, Key, string(start))
		c := NewController(kv)
		require.NoError(t, c.Load(ctx))

		m, err := c.Toggle(ctx)
		require.NoError(t, err)
		assert.NotEqual(t, start, m)

		m, err = c.Toggle(ctx)
		require.NoError(t, err)
		assert.Equal(t, start, m)
		assert.Equal(t, start, c.Mode())

		v, ok, _ := kv.Get(ctx, Key)
		assert.True(t, ok)
		assert.Equal(t, string(start), v)
	}
}

func TestTogglePersists(t *testing.T) {
	ctx := context.Background()
	kv := newRecordingKV()
	c := NewController(kv)

	m, err := c.Toggle(ctx)
	require.NoError(t, err)
	assert.Equal(t, Dark, m)

	v, _, _ := kv.Get(ctx, Key)
	assert.Equal(t, "dark", v)
	assert.Equal(t, 1, kv.sets)
}

func TestToggleSaveError(t *testing.T) {
	kv := newRecordingKV()
	kv.setErr = errors.New("disk full")
	c := NewController(kv)

	m, err := c.Toggle(context.Background())
	require.Error(t, err)
	assert.Equal(t, Dark, m)
	assert.True(t, c.IsDark())
}

func TestLoadError(t *testing.T) {
	kv := newRecordingKV()
	kv.getErr = errors.New("locked")
	c := NewController(kv)

	assert.Error(t, c.Load(context.Background()))
	assert.False(t, c.IsDark())
}
