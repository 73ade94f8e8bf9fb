package terrain

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatHeight(t *testing.T) {
	f := Flat(12.5)
	assert.Equal(t, float32(12.5), f.Height(-1e6, 42))
}

func TestGridBilinear(t *testing.T) {
	g := NewGrid(2, 2, 10)
	g.Set(0, 0, 0)
	g.Set(1, 0, 10)
	g.Set(0, 1, 20)
	g.Set(1, 1, 30)

	assert.InDelta(t, 0, g.Height(0, 0), 1e-6)
	assert.InDelta(t, 10, g.Height(10, 0), 1e-6)
	assert.InDelta(t, 5, g.Height(5, 0), 1e-6)
	assert.InDelta(t, 15, g.Height(5, 5), 1e-6)
	assert.InDelta(t, 30, g.Height(10, 10), 1e-6)
}

func TestGridClampsOutsideExtent(t *testing.T) {
	g := NewGrid(3, 3, 1)
	for i := range g.Cells() {
		g.Cells()[i] = float32(i)
	}
	assert.Equal(t, g.At(0, 0), g.Height(-100, -100))
	assert.Equal(t, g.At(2, 2), g.Height(100, 100))
	assert.Equal(t, g.At(2, 0), g.Height(100, -5))
}

func TestGridCenterAndExtent(t *testing.T) {
	g := NewGrid(5, 3, 2)
	g.Center()
	minX, minY, maxX, maxY := g.Extent()
	assert.Equal(t, float32(-4), minX)
	assert.Equal(t, float32(-2), minY)
	assert.Equal(t, float32(4), maxX)
	assert.Equal(t, float32(2), maxY)
}

func TestGridSetIgnoresOutOfRange(t *testing.T) {
	g := NewGrid(2, 2, 1)
	g.Set(5, 5, 9)
	g.Set(-1, 0, 9)
	lo, hi := g.Range()
	assert.Equal(t, float32(0), lo)
	assert.Equal(t, float32(0), hi)
}

func TestLoadDEM(t *testing.T) {
	src := "3 2\n1 2 3\n4 5 6\n"
	g, err := LoadDEM(strings.NewReader(src), 500)
	require.NoError(t, err)

	assert.Equal(t, 3, g.W)
	assert.Equal(t, 2, g.H)
	assert.Equal(t, float32(500), g.CellSize)
	assert.Equal(t, float32(-500), g.OriginX)
	assert.Equal(t, float32(-250), g.OriginY)
	assert.Equal(t, float32(5), g.At(1, 1))
	assert.InDelta(t, 5, g.Height(0, 250), 1e-6)
}

func TestLoadDEMErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "empty", src: ""},
		{name: "bad header", src: "x 2"},
		{name: "too small", src: "1 4 1 2 3 4"},
		{name: "truncated", src: "2 2 1 2 3"},
		{name: "bad sample", src: "2 2 1 2 three 4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadDEM(strings.NewReader(tt.src), 1)
			require.Error(t, err)
		})
	}

	_, err := LoadDEM(strings.NewReader("2 2 1 2 3"), 1)
	assert.True(t, errors.Is(err, ErrTruncated))
}

func TestLoadDEMFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "landscape.dem")
	require.NoError(t, os.WriteFile(path, []byte("2 2\n0 0\n0 100\n"), 0o644))

	g, err := LoadDEMFile(path, 100)
	require.NoError(t, err)
	assert.InDelta(t, 25, g.Height(0, 0), 1e-4)

	_, err = LoadDEMFile(filepath.Join(dir, "missing.dem"), 100)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open terrain")
}

func TestGenerateRaisesVolcano(t *testing.T) {
	volcano := Volcano{X: -3000, Y: 1000, Peak: 900, Radius: 4000}
	g := Generate(64, 64, 250, 7, DefaultHills(), volcano)

	lo, hi := g.Range()
	assert.Less(t, lo, hi)
	assert.Greater(t, g.Height(volcano.X, volcano.Y), float32(800))
	assert.Less(t, g.Height(6000, -6000), float32(400))
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(16, 16, 100, 3, DefaultHills(), Volcano{})
	b := Generate(16, 16, 100, 3, DefaultHills(), Volcano{})
	c := Generate(16, 16, 100, 4, DefaultHills(), Volcano{})
	assert.Equal(t, a.Cells(), b.Cells())
	assert.NotEqual(t, a.Cells(), c.Cells())
}
