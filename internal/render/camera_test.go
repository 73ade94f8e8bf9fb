package render

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorld2OpenGLAxes(t *testing.T) {
	forward := World2OpenGL.Mul4x1(mgl32.Vec4{0, 1, 0, 0}).Vec3()
	up := World2OpenGL.Mul4x1(mgl32.Vec4{0, 0, 1, 0}).Vec3()
	right := World2OpenGL.Mul4x1(mgl32.Vec4{1, 0, 0, 0}).Vec3()

	assert.True(t, forward.ApproxEqualThreshold(mgl32.Vec3{0, 0, -1}, 1e-6))
	assert.True(t, up.ApproxEqualThreshold(mgl32.Vec3{0, 1, 0}, 1e-6))
	assert.True(t, right.ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, 1e-6))
}

func TestInverseCameraUndoesPose(t *testing.T) {
	pos := mgl32.Vec3{100, -250, 1500}
	rot := mgl32.HomogRotate3DZ(0.4).Mul4(mgl32.HomogRotate3DX(-0.2))
	camera := mgl32.Translate3D(pos.X(), pos.Y(), pos.Z()).Mul4(rot)

	product := InverseCamera(pos, rot).Mul4(camera)

	assert.True(t, product.ApproxEqualThreshold(mgl32.Ident4(), 1e-4))
}

func TestViewMatrixPlacesObjectInCameraFrame(t *testing.T) {
	view := ViewMatrix(mgl32.Vec3{0, 0, 1000}, mgl32.Ident4(), mgl32.Vec3{0, 500, 1000})
	origin := view.Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()

	assert.True(t, origin.ApproxEqualThreshold(mgl32.Vec3{0, 0, -500}, 1e-3))
}

func TestCameraProject(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{0, 0, 1000}, mgl32.Ident4(), 800, 600)

	x, y, ok := cam.Project(mgl32.Vec3{0, 500, 1000})
	require.True(t, ok)
	assert.InDelta(t, 400, x, 1e-2)
	assert.InDelta(t, 300, y, 1e-2)

	_, y, ok = cam.Project(mgl32.Vec3{0, 500, 1100})
	require.True(t, ok)
	assert.Less(t, y, float32(300))

	x, _, ok = cam.Project(mgl32.Vec3{100, 500, 1000})
	require.True(t, ok)
	assert.Greater(t, x, float32(400))

	_, _, ok = cam.Project(mgl32.Vec3{0, -500, 1000})
	assert.False(t, ok)

	_, _, ok = cam.Project(mgl32.Vec3{0, Far * 2, 1000})
	assert.False(t, ok)
}

func TestCameraFollowsRotation(t *testing.T) {
	// Yawed 90 degrees left the nose points along -x.
	cam := NewCamera(mgl32.Vec3{}, mgl32.HomogRotate3DZ(mgl32.DegToRad(90)), 640, 480)

	x, y, ok := cam.Project(mgl32.Vec3{-300, 0, 0})
	require.True(t, ok)
	assert.InDelta(t, 320, x, 1e-2)
	assert.InDelta(t, 240, y, 1e-2)
	assert.InDelta(t, 300, cam.Depth(mgl32.Vec3{-300, 0, 0}), 1e-3)
	assert.Negative(t, cam.Depth(mgl32.Vec3{300, 0, 0}))
}

func TestScreenRadius(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{}, mgl32.Ident4(), 640, 480)
	assert.InDelta(t, 24, cam.ScreenRadius(100, 1000), 1e-4)
	assert.Zero(t, cam.ScreenRadius(100, 0))
}
