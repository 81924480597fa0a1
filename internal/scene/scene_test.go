package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_ProducesFrame(t *testing.T) {
	sc := New()
	sc.Advance(0.5)

	img, err := sc.Render(64, 64)
	require.NoError(t, err)
	require.Equal(t, 64, img.Bounds().Dx())
	require.Equal(t, 64, img.Bounds().Dy())

	// Something besides the clear color must have been drawn.
	drawn := 0
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] != clearColor[0] || img.Pix[i+1] != clearColor[1] || img.Pix[i+2] != clearColor[2] {
			drawn++
		}
	}
	assert.Greater(t, drawn, 0)
}

func TestRender_RebuildsStreamsEachFrame(t *testing.T) {
	sc := New()

	sc.Advance(0)
	a, err := sc.Render(48, 48)
	require.NoError(t, err)

	sc.Advance(0.3)
	b, err := sc.Render(48, 48)
	require.NoError(t, err)

	// A different pose renders a different frame.
	assert.NotEqual(t, a.Pix, b.Pix)
}

func TestRender_TessellationWithinBudget(t *testing.T) {
	sc := New()
	sc.Stacks = 60
	sc.Slices = 120
	sc.Advance(0.1)

	// 60×120 cells emit 43200 triangle vertices, still under the 1 MiB cap.
	_, err := sc.Render(32, 32)
	assert.NoError(t, err)

	sc.Stacks = 80
	_, err = sc.Render(32, 32)
	assert.Error(t, err, "80×120 cells overflow the stream budget")
}
