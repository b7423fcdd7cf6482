package geom

import "github.com/go-gl/mathgl/mgl32"

// Projection is a perspective camera with a vertical field of view in degrees.
type Projection struct {
	FOV    float32
	Aspect float32
	Near   float32
	Far    float32
}

// Matrix returns the perspective projection matrix.
func (p Projection) Matrix() mgl32.Mat4 {
	aspect := p.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	return mgl32.Perspective(mgl32.DegToRad(p.FOV), aspect, p.Near, p.Far)
}

// View returns the look-at matrix for a camera at eye aiming at target.
// When eye and target coincide the camera looks down -Z.
func View(eye, target, up mgl32.Vec3) mgl32.Mat4 {
	if eye.ApproxEqual(target) {
		target = eye.Sub(mgl32.Vec3{0, 0, 1})
	}
	if up == (mgl32.Vec3{}) {
		up = mgl32.Vec3{0, 1, 0}
	}
	dir := target.Sub(eye).Normalize()
	if abs32(dir.Dot(up.Normalize())) > 0.9999 {
		up = mgl32.Vec3{0, 0, 1}
	}
	return mgl32.LookAtV(eye, target, up)
}

// ScreenPoint is a projected vertex in pixel space.
type ScreenPoint struct {
	X, Y float32
	// W is the clip-space w, i.e. the distance along the view direction.
	W float32
	// NDCZ is the normalized device depth in [-1, 1] when visible.
	NDCZ float32
}

// ProjectToScreen maps a world-space point through viewProj to pixels on a
// width x height target. ok is false when the point is behind the near plane.
func ProjectToScreen(viewProj mgl32.Mat4, p mgl32.Vec3, width, height float32, near float32) (ScreenPoint, bool) {
	clip := viewProj.Mul4x1(p.Vec4(1))
	if clip.W() < near {
		return ScreenPoint{W: clip.W()}, false
	}
	ndcX := clip.X() / clip.W()
	ndcY := clip.Y() / clip.W()
	return ScreenPoint{
		X:    (ndcX + 1) / 2 * width,
		Y:    (1 - ndcY) / 2 * height,
		W:    clip.W(),
		NDCZ: clip.Z() / clip.W(),
	}, true
}

// FrontFacing reports whether the screen-space triangle a, b, c winds
// counter-clockwise as seen by the viewer. Screen y grows downwards.
func FrontFacing(a, b, c ScreenPoint) bool {
	area := (b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)
	return area < 0
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
