package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec3_Distance(t *testing.T) {
	a := NewVec3(0, 0, 0)
	b := NewVec3(3, 4, 12)

	assert.Equal(t, 169.0, a.DistanceSquared(b))
	assert.Equal(t, 13.0, a.Distance(b))
	assert.Equal(t, a.Distance(b), b.Distance(a), "distance must be symmetric")
}

func TestVec3_Add(t *testing.T) {
	got := NewVec3(100, -50, 10).Add(NewVec3(1200, 0, 0))
	assert.Equal(t, Vec3{X: 1300, Y: -50, Z: 10}, got)
}
