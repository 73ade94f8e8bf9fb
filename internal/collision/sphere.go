// Package collision provides the sphere intersection predicates shared by the
// aircraft and lava bomb checks.
package collision

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Epsilon is the float32 machine epsilon (2^-23).
var Epsilon = math.Nextafter32(1, 2) - 1

// LessOrEqual reports a <= b, treating values closer than Epsilon as equal.
func LessOrEqual(a, b float32) bool {
	return a < b || float32(math.Abs(float64(a-b))) < Epsilon
}

// Distance returns the Euclidean distance between p and q.
func Distance(p, q mgl32.Vec3) float32 {
	return p.Sub(q).Len()
}

// SpherePoint reports whether point lies inside or on the sphere of the given
// center and radius.
func SpherePoint(center mgl32.Vec3, radius float32, point mgl32.Vec3) bool {
	return LessOrEqual(Distance(point, center), radius)
}

// SphereSphere reports whether two spheres touch or overlap.
func SphereSphere(center1 mgl32.Vec3, radius1 float32, center2 mgl32.Vec3, radius2 float32) bool {
	return LessOrEqual(Distance(center1, center2), radius1+radius2)
}
