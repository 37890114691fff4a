package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPRNGRange(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)

	for i := 0; i < 1000; i++ {
		v := a.Range(400, 601)
		assert.GreaterOrEqual(t, v, 400.0)
		assert.Less(t, v, 601.0)
		assert.Equal(t, v, b.Range(400, 601), "same seed must give same sequence")
	}

	v := a.Range(10, -10)
	assert.GreaterOrEqual(t, v, -10.0)
	assert.Less(t, v, 10.0)
}

func TestWrapCoord(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want float64
	}{
		{"inside", 50, 50},
		{"left of zero", -0.5, 99},
		{"past edge", 100.5, 1},
		{"on edge", 100, 100},
		{"on zero", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WrapCoord(tt.v, 100))
		})
	}
}

func TestInBounds(t *testing.T) {
	assert.True(t, InBounds(0, 0, 10, 10))
	assert.True(t, InBounds(10, 10, 10, 10))
	assert.False(t, InBounds(-1, 5, 10, 10))
	assert.False(t, InBounds(5, 11, 10, 10))
}

func TestFrameClock(t *testing.T) {
	base := time.Unix(1000, 0)
	now := base
	rate := 0.0
	c := newFrameClock(func() time.Time { return now }, func() float64 { return rate }, 60)

	now = base.Add(250 * time.Millisecond)
	assert.Equal(t, 250.0, c.ElapsedMillis())

	t.Run("nominal rate until measured", func(t *testing.T) {
		assert.Equal(t, 60.0, c.FrameRate())
		rate = 144
		assert.Equal(t, 144.0, c.FrameRate())
	})

	t.Run("pause freezes elapsed time", func(t *testing.T) {
		c.Pause()
		assert.True(t, c.Paused())
		now = base.Add(1250 * time.Millisecond)
		assert.Equal(t, 250.0, c.ElapsedMillis())

		c.Resume()
		now = base.Add(1300 * time.Millisecond)
		assert.Equal(t, 300.0, c.ElapsedMillis())
	})
}

func TestManualClock(t *testing.T) {
	c := NewManualClock(50)
	c.Advance(10)
	c.Advance(5)
	assert.Equal(t, 15.0, c.ElapsedMillis())
	assert.Equal(t, 0.02, c.Delta())
	c.Set(3)
	assert.Equal(t, 3.0, c.ElapsedMillis())
}
