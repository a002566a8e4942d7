package hardware

import (
	"context"
	"fmt"
)

// Pose is the rover's best-guess position and heading in the world frame.
// X and Y are in millimetres; Heading is in degrees, 0 along the +x axis,
// increasing anticlockwise (towards +y).
type Pose struct {
	X, Y    float64
	Heading float64
}

func (p Pose) String() string {
	return fmt.Sprintf("X: %d, Y: %d, Hdg: %d", int(p.X), int(p.Y), int(p.Heading))
}

// PoseSource reports the current pose estimate.  Reads the current best
// guess from cache; safe to call at any time.
type PoseSource interface {
	CurrentPose() Pose
}

// Drive is the motor-board abstraction.  Rotate and Travel start a motion
// and return immediately; the board runs it to completion on its own.
// Positive angles are anticlockwise, positive distances are forwards.
type Drive interface {
	Rotate(angleDegrees float64)
	Travel(distanceMM float64)
	Stop()
	IsMoving() bool
}

// Sensors are the polled obstacle inputs.  Both are debounced by the
// adapter and never block.
type Sensors interface {
	// ObstacleAhead reports whether the forward rangefinder sees
	// something closer than the configured threshold.
	ObstacleAhead() bool
	// CollisionDetected reports whether a bumper switch is pressed.
	CollisionDetected() bool
}

type Interface interface {
	PoseSource
	Drive
	Sensors

	// StopRequested reports whether the operator stop button is held.
	StopRequested() bool

	PlaySound(path string)

	Start(ctx context.Context)
	Shutdown()
}
