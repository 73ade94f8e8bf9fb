package render

import (
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// FieldOfView is the vertical field of view in degrees.
	FieldOfView = 90
	Near        = 1
	Far         = 100000
)

// World2OpenGL turns the z-up world frame into the y-up, -z-forward frame the
// projection expects: (x, y, z) maps to (x, z, -y).
var World2OpenGL = mgl32.HomogRotate3DX(mgl32.DegToRad(-90))

// InverseCamera returns the world-to-camera transform for a camera at
// position with the given orientation. The orientation must be a pure
// rotation, so its transpose is its inverse.
func InverseCamera(position mgl32.Vec3, rotation mgl32.Mat4) mgl32.Mat4 {
	return rotation.Transpose().Mul4(mgl32.Translate3D(-position.X(), -position.Y(), -position.Z()))
}

// ViewMatrix places an object at objectPosition in the view of the camera.
func ViewMatrix(cameraPosition mgl32.Vec3, cameraRotation mgl32.Mat4, objectPosition mgl32.Vec3) mgl32.Mat4 {
	return World2OpenGL.
		Mul4(InverseCamera(cameraPosition, cameraRotation)).
		Mul4(mgl32.Translate3D(objectPosition.X(), objectPosition.Y(), objectPosition.Z()))
}

// Projection returns the perspective matrix for a viewport of the given size.
func Projection(width, height int) mgl32.Mat4 {
	aspect := float32(1)
	if height > 0 {
		aspect = float32(width) / float32(height)
	}
	return mgl32.Perspective(mgl32.DegToRad(FieldOfView), aspect, Near, Far)
}

// Camera projects world points onto a width x height screen with y growing
// downwards.
type Camera struct {
	Position      mgl32.Vec3
	Width, Height int

	viewProj mgl32.Mat4
	view     mgl32.Mat4
}

// NewCamera builds a camera at position looking along the rotated forward axis.
func NewCamera(position mgl32.Vec3, rotation mgl32.Mat4, width, height int) Camera {
	view := World2OpenGL.Mul4(InverseCamera(position, rotation))
	return Camera{
		Position: position,
		Width:    width,
		Height:   height,
		view:     view,
		viewProj: Projection(width, height).Mul4(view),
	}
}

// Depth returns the distance of p in front of the camera. Points behind the
// camera have a negative depth.
func (c Camera) Depth(p mgl32.Vec3) float32 {
	return -c.view.Mul4x1(p.Vec4(1)).Z()
}

// Project maps p to screen coordinates. ok is false when p lies outside the
// view volume.
func (c Camera) Project(p mgl32.Vec3) (x, y float32, ok bool) {
	clip := c.viewProj.Mul4x1(p.Vec4(1))
	w := clip.W()
	if w <= 0 {
		return 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / w)
	if ndc.Z() < -1 || ndc.Z() > 1 {
		return 0, 0, false
	}
	x = (ndc.X() + 1) / 2 * float32(c.Width)
	y = (1 - ndc.Y()) / 2 * float32(c.Height)
	return x, y, true
}

// ScreenRadius approximates the on-screen radius of a sphere of the given
// world radius at depth.
func (c Camera) ScreenRadius(radius, depth float32) float32 {
	if depth <= 0 {
		return 0
	}
	// With a 90 degree field of view the half height spans depth world units.
	return radius / depth * float32(c.Height) / 2
}
