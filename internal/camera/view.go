package camera

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// View is a perspective camera bound to a viewport. Screen coordinates are
// pixels with the origin at the top-left corner and y growing downward.
type View struct {
	Camera rl.Camera3D
	Width  float32
	Height float32

	forward, right, up rl.Vector3
	tanHalfFovy        float32
}

// NewView derives the camera basis once; a View is immutable afterwards.
func NewView(cam rl.Camera3D, width, height float32) *View {
	v := &View{Camera: cam, Width: width, Height: height}

	v.forward = rl.Vector3Normalize(rl.Vector3Subtract(cam.Target, cam.Position))
	v.right = rl.Vector3Normalize(rl.Vector3CrossProduct(v.forward, cam.Up))
	v.up = rl.Vector3CrossProduct(v.right, v.forward)
	v.tanHalfFovy = float32(math.Tan(float64(cam.Fovy*rl.Deg2rad) / 2))
	return v
}

func (v *View) Position() rl.Vector3 {
	return v.Camera.Position
}

func (v *View) Forward() rl.Vector3 {
	return v.forward
}

func (v *View) ScreenCenter() rl.Vector2 {
	return rl.Vector2{X: v.Width / 2, Y: v.Height / 2}
}

func (v *View) aspect() float32 {
	if v.Height == 0 {
		return 1
	}
	return v.Width / v.Height
}

// WorldToScreen projects point into pixel coordinates. depth is the distance
// along the view direction; when it is <= 0 the point is behind the camera
// and the returned screen position is meaningless.
func (v *View) WorldToScreen(point rl.Vector3) (rl.Vector2, float32) {
	rel := rl.Vector3Subtract(point, v.Camera.Position)
	depth := rl.Vector3DotProduct(rel, v.forward)
	if depth <= 0 {
		return rl.Vector2{}, depth
	}

	ndcX := rl.Vector3DotProduct(rel, v.right) / (depth * v.tanHalfFovy * v.aspect())
	ndcY := rl.Vector3DotProduct(rel, v.up) / (depth * v.tanHalfFovy)

	return rl.Vector2{
		X: (ndcX + 1) / 2 * v.Width,
		Y: (1 - ndcY) / 2 * v.Height,
	}, depth
}

// ScreenToWorldRay returns the ray from the camera through a pixel.
// A zero-sized viewport yields the forward ray.
func (v *View) ScreenToWorldRay(screen rl.Vector2) rl.Ray {
	if v.Width == 0 || v.Height == 0 {
		return rl.Ray{Position: v.Camera.Position, Direction: v.forward}
	}
	ndcX := 2*screen.X/v.Width - 1
	ndcY := 1 - 2*screen.Y/v.Height

	dir := v.forward
	dir = rl.Vector3Add(dir, rl.Vector3Scale(v.right, ndcX*v.tanHalfFovy*v.aspect()))
	dir = rl.Vector3Add(dir, rl.Vector3Scale(v.up, ndcY*v.tanHalfFovy))

	return rl.Ray{
		Position:  v.Camera.Position,
		Direction: rl.Vector3Normalize(dir),
	}
}
