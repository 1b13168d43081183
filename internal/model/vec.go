package model

import "math"

// Vec3 представляет позицию в мировых единицах (unreal units).
// Value type, передаётся по значению.
type Vec3 struct {
	X float64
	Y float64
	Z float64
}

// NewVec3 создаёт Vec3 с указанными координатами.
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the component-wise sum.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// DistanceSquared возвращает квадрат расстояния до другой точки (без sqrt).
func (v Vec3) DistanceSquared(o Vec3) float64 {
	dx := v.X - o.X
	dy := v.Y - o.Y
	dz := v.Z - o.Z
	return dx*dx + dy*dy + dz*dz
}

// Distance returns the 3D Euclidean distance to another point.
func (v Vec3) Distance(o Vec3) float64 {
	return math.Sqrt(v.DistanceSquared(o))
}
