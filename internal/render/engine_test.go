package render

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseType(t *testing.T) {
	cases := []struct {
		name string
		want Type
	}{
		{"hiwave", HiWave},
		{"HiWave", HiWave},
		{"WEBKIT", WebKit},
		{"blink", Blink},
		{"gecko", Gecko},
	}
	for _, tc := range cases {
		got, err := ParseType(tc.name)
		require.NoError(t, err, tc.name)
		assert.Equal(t, tc.want, got)
	}

	_, err := ParseType("servo")
	assert.Error(t, err)
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "hiwave", HiWave.String())
	assert.Equal(t, "webkit", WebKit.String())
	assert.Equal(t, "blink", Blink.String())
	assert.Equal(t, "gecko", Gecko.String())
}

func TestNewHiWave(t *testing.T) {
	e, err := New(HiWave)
	require.NoError(t, err)
	require.NotNil(t, e)

	require.NoError(t, e.ParseMarkup("<html><body><p>hi</p></body></html>"))
	require.NoError(t, e.ComputeLayout(1280, 720))
	require.NoError(t, e.Paint())
	assert.Greater(t, e.MemoryUsage(), uint64(0))
}

func TestNewUnavailableBaselines(t *testing.T) {
	_, err := New(Blink)
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = New(Gecko)
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = New(WebKit)
	if runtime.GOOS == "darwin" {
		assert.NoError(t, err)
	} else {
		assert.ErrorIs(t, err, ErrUnavailable)
	}
}

func TestHiWavePhaseOrdering(t *testing.T) {
	e, err := newHiWaveEngine()
	require.NoError(t, err)

	assert.Error(t, e.ParseMarkup("   "))
	require.NoError(t, e.ParseMarkup("<div><span>x</span></div>"))
	assert.Error(t, e.ComputeLayout(0, 600))
	assert.Error(t, e.Paint()) // no successful layout yet
	require.NoError(t, e.ComputeLayout(800, 600))
	assert.NoError(t, e.Paint())
}

func TestHiWaveCountsElements(t *testing.T) {
	e, err := newHiWaveEngine()
	require.NoError(t, err)

	require.NoError(t, e.ParseMarkup("<!DOCTYPE html><html><body><p>a</p><p>b</p></body></html>"))
	assert.Equal(t, 4, e.elements) // html, body, p, p
	assert.Equal(t, 3, e.depth)
}
