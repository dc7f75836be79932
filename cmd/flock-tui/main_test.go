package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/flock"
)

func TestHeadingGlyph(t *testing.T) {
	tests := []struct {
		heading float64
		want    rune
	}{
		{0, '→'},
		{20, '→'},
		{45, '↘'},
		{90, '↓'},
		{180, '←'},
		{-180, '←'},
		{-90, '↑'},
		{-45, '↗'},
		{-30, '↗'},
		{160, '←'},
	}
	for _, tt := range tests {
		assert.Equal(t, string(tt.want), string(headingGlyph(tt.heading)), "heading %v", tt.heading)
	}
}

func TestWorldCellMapping(t *testing.T) {
	cfg := flock.DefaultConfig() // 1000x1000

	col, row, ok := worldToCell(999, 0, 100, 50, cfg)
	assert.True(t, ok)
	assert.Equal(t, 99, col)
	assert.Equal(t, 0, row)

	_, _, ok = worldToCell(1000, 10, 100, 50, cfg)
	assert.False(t, ok)
	_, _, ok = worldToCell(-1, 10, 100, 50, cfg)
	assert.False(t, ok)

	x, y := cellToWorld(10, 5, 100, 50, cfg)
	assert.InDelta(t, 105, x, 1e-9)
	assert.InDelta(t, 110, y, 1e-9)

	col, row, ok = worldToCell(x, y, 100, 50, cfg)
	assert.True(t, ok)
	assert.Equal(t, 10, col)
	assert.Equal(t, 5, row)
}
