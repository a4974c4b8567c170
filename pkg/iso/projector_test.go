package iso

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/isoterrain/pkg/math"
)

func TestProjectOriginMapsToTranslation(t *testing.T) {
	tests := []struct {
		s, tx, ty float32
	}{
		{10, 0, 0},
		{20, 900, 500},
		{30, -120.5, 64.25},
	}

	for _, tt := range tests {
		p := New(tt.s, tt.tx, tt.ty)
		got := p.Project(0, 0, 0)
		assert.Equal(t, math.Vec2{X: tt.tx, Y: tt.ty}, got)
	}
}

func TestProjectFormula(t *testing.T) {
	p := New(20, 100, 50)

	// screenX = s*x - s*z + tx, screenY = 0.5s*x + 2s*(e*-0.2) + 0.5s*z + ty
	got := p.Project(3, 10, 1)
	assert.InDelta(t, 20*3-20*1+100, got.X, 1e-4)
	assert.InDelta(t, 10*3+40*(10*-0.2)+10*1+50, got.Y, 1e-4)
}

func TestHigherGroundDrawsUp(t *testing.T) {
	p := New(20, 0, 0)
	low := p.Project(4, 0, 4)
	high := p.Project(4, 50, 4)

	assert.Equal(t, low.X, high.X)
	assert.Less(t, high.Y, low.Y)
}

func TestForCanvas(t *testing.T) {
	p := ForCanvas(20, 1800, 1000)
	tx, ty := p.Translation()

	assert.Equal(t, float32(20), p.Scale())
	assert.Equal(t, float32(900), tx)
	assert.Equal(t, float32(500), ty)
	assert.Equal(t, math.Isometric(20, 900, 500), p.Matrix())
}
