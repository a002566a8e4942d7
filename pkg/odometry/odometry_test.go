package odometry

import (
	"math"
	"testing"

	"github.com/redrover-team/redrover/go-controller/pkg/hardware"
)

type fakeWheels struct {
	left, right float64
}

func (w *fakeWheels) WheelDistances() (float64, float64, error) {
	return w.left, w.right, nil
}

func expectPose(t *testing.T, got hardware.Pose, x, y, heading float64) {
	t.Helper()
	if math.Abs(got.X-x) > 0.5 || math.Abs(got.Y-y) > 0.5 || math.Abs(got.Heading-heading) > 0.5 {
		t.Errorf("pose = %+v, expected (%v, %v, %v)", got, x, y, heading)
	}
}

func TestStraightLine(t *testing.T) {
	w := &fakeWheels{}
	p := New(w, 160)
	p.CurrentPose() // prime the odometers

	w.left, w.right = 1000, 1000
	expectPose(t, p.CurrentPose(), 1000, 0, 0)

	w.left, w.right = 1500, 1500
	expectPose(t, p.CurrentPose(), 1500, 0, 0)
}

func TestTurnInPlace(t *testing.T) {
	w := &fakeWheels{}
	p := New(w, 160)
	p.CurrentPose()

	// Quarter turn anticlockwise: right wheel forward, left back, each
	// by (pi/2 * trackWidth / 2).
	arc := math.Pi / 2 * 160 / 2
	w.left, w.right = -arc, arc
	expectPose(t, p.CurrentPose(), 0, 0, 90)
}

func TestDriveThenTurnThenDrive(t *testing.T) {
	w := &fakeWheels{}
	p := New(w, 160)
	p.CurrentPose()

	w.left, w.right = 1000, 1000
	p.CurrentPose()

	arc := math.Pi / 2 * 160 / 2
	w.left -= arc
	w.right += arc
	p.CurrentPose()

	w.left += 500
	w.right += 500
	expectPose(t, p.CurrentPose(), 1000, 500, 90)
}

func TestSetPoseRebases(t *testing.T) {
	w := &fakeWheels{left: 123, right: 456}
	p := New(w, 160)
	p.SetPose(hardware.Pose{X: 100, Y: 200, Heading: 45})
	expectPose(t, p.CurrentPose(), 100, 200, 45)
}
