package camera

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// FPSCamera is a yaw/pitch camera. Input handling lives with the caller;
// this type only keeps orientation and derives the raylib camera from it.
type FPSCamera struct {
	Position rl.Vector3
	Yaw      float32 // degrees, 0 looks down +X, 90 looks down +Z
	Pitch    float32 // degrees, clamped to [-89, 89]
	Fovy     float32 // vertical field of view in degrees
}

func New(pos rl.Vector3) *FPSCamera {
	return &FPSCamera{
		Position: pos,
		Yaw:      -90.0,
		Pitch:    0,
		Fovy:     60,
	}
}

// Look adds a yaw/pitch delta in degrees and clamps pitch.
func (c *FPSCamera) Look(deltaYaw, deltaPitch float32) {
	c.Yaw += deltaYaw
	c.Pitch += deltaPitch

	// Clamp pitch
	if c.Pitch > 89 {
		c.Pitch = 89
	}
	if c.Pitch < -89 {
		c.Pitch = -89
	}
}

// LookAt points the camera at target.
func (c *FPSCamera) LookAt(target rl.Vector3) {
	d := rl.Vector3Subtract(target, c.Position)
	horizontal := math.Sqrt(float64(d.X*d.X + d.Z*d.Z))
	c.Yaw = float32(math.Atan2(float64(d.Z), float64(d.X)) * 180 / math.Pi)
	c.Pitch = 0
	c.Look(0, float32(math.Atan2(float64(d.Y), horizontal)*180/math.Pi))
}

// Forward returns the unit look direction.
func (c *FPSCamera) Forward() rl.Vector3 {
	yawRad := float64(c.Yaw) * math.Pi / 180
	pitchRad := float64(c.Pitch) * math.Pi / 180
	return rl.Vector3{
		X: float32(math.Cos(yawRad) * math.Cos(pitchRad)),
		Y: float32(math.Sin(pitchRad)),
		Z: float32(math.Sin(yawRad) * math.Cos(pitchRad)),
	}
}

func (c *FPSCamera) GetRaylibCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   c.Position,
		Target:     rl.Vector3Add(c.Position, c.Forward()),
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.Fovy,
		Projection: rl.CameraPerspective,
	}
}
