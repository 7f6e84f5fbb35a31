package geometry_test

import (
	"testing"

	"github.com/katalvlaran/regionpart/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectangle_Corners(t *testing.T) {
	r := geometry.Rectangle{X: 2, Y: 3, W: 4, H: 5}
	assert.Equal(t, 2, r.Left())
	assert.Equal(t, 3, r.Bottom())
	assert.Equal(t, 6, r.Right())
	assert.Equal(t, 8, r.Top())
}

func TestRectangle_Center_TruncatesDivision(t *testing.T) {
	r := geometry.Rectangle{X: 0, Y: 0, W: 5, H: 3}
	assert.Equal(t, geometry.Point{X: 2, Y: 1}, r.Center())
}

func TestRectangle_Contains_HalfOpen(t *testing.T) {
	r := geometry.Rectangle{X: 0, Y: 0, W: 2, H: 2}
	assert.True(t, r.Contains(geometry.Point{X: 0, Y: 0}))
	assert.True(t, r.Contains(geometry.Point{X: 1, Y: 1}))
	assert.False(t, r.Contains(geometry.Point{X: 2, Y: 0}), "right edge is exclusive")
	assert.False(t, r.Contains(geometry.Point{X: 0, Y: 2}), "top edge is exclusive")
	assert.False(t, r.Contains(geometry.Point{X: -1, Y: 0}))
}

func TestRectangle_Encapsulate_GrowsLowerBound(t *testing.T) {
	r := geometry.Rectangle{X: 5, Y: 5, W: 2, H: 2}
	r.Encapsulate(geometry.Point{X: 1, Y: 1})
	assert.Equal(t, geometry.Rectangle{X: 1, Y: 1, W: 6, H: 6}, r)
	assert.True(t, r.Contains(geometry.Point{X: 1, Y: 1}))
}

func TestRectangle_Encapsulate_GrowsUpperBoundByOne(t *testing.T) {
	// Upper bound is exclusive, so admitting point (3, 0) into a 1x1 rect at
	// the origin must grow W to 4 (Right() becomes 4, one past the point).
	r := geometry.Rectangle{X: 0, Y: 0, W: 1, H: 1}
	r.Encapsulate(geometry.Point{X: 3, Y: 0})
	assert.Equal(t, 4, r.Right())
	assert.True(t, r.Contains(geometry.Point{X: 3, Y: 0}))
}

func TestRectangle_Encapsulate_RoundTrip(t *testing.T) {
	// Property: encapsulating a point then testing containment always succeeds,
	// regardless of where the point lies relative to the starting rectangle.
	pts := []geometry.Point{{X: 10, Y: 10}, {X: -5, Y: -5}, {X: 0, Y: 100}, {X: 100, Y: 0}}
	for _, p := range pts {
		r := geometry.Rectangle{X: 0, Y: 0, W: 1, H: 1}
		r.Encapsulate(p)
		assert.Truef(t, r.Contains(p), "Encapsulate(%v) must leave rectangle containing it", p)
	}
}

func TestEncapsulateAll_Empty(t *testing.T) {
	_, ok := geometry.EncapsulateAll(nil)
	assert.False(t, ok)
}

func TestEncapsulateAll_SeedsAtFirstPoint(t *testing.T) {
	rect, ok := geometry.EncapsulateAll([]geometry.Point{{X: 4, Y: 4}})
	require.True(t, ok)
	assert.Equal(t, geometry.Rectangle{X: 4, Y: 4, W: 0, H: 0}, rect)
}

func TestEncapsulateAll_ContainsEveryPoint(t *testing.T) {
	pts := []geometry.Point{{0, 0}, {10, 0}, {0, 10}, {10, 10}, {5, 5}}
	rect, ok := geometry.EncapsulateAll(pts)
	require.True(t, ok)
	for _, p := range pts {
		assert.Truef(t, rect.Contains(p), "bounds must contain %v", p)
	}
}
