package hardware

import (
	"math"
	"testing"
	"time"
)

func waitUntilStopped(t *testing.T, d *Dummy) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for d.IsMoving() {
		if time.Now().After(deadline) {
			t.Fatal("dummy still moving after 2s")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestDummyRotate(t *testing.T) {
	d := NewDummy()
	d.Rotate(9)
	waitUntilStopped(t, d)
	if hdg := d.CurrentPose().Heading; math.Abs(hdg-9) > 1e-6 {
		t.Errorf("heading = %v, expected 9", hdg)
	}
}

func TestDummyTravel(t *testing.T) {
	d := NewDummy()
	d.SetPose(Pose{Heading: 90})
	d.Travel(20)
	waitUntilStopped(t, d)
	p := d.CurrentPose()
	if math.Abs(p.Y-20) > 1e-6 || math.Abs(p.X) > 1e-6 {
		t.Errorf("pose = %+v, expected (0, 20)", p)
	}
}

func TestDummyStopFreezesMidMotion(t *testing.T) {
	d := NewDummy()
	d.Travel(1000)
	time.Sleep(100 * time.Millisecond)
	d.Stop()
	if d.IsMoving() {
		t.Error("still moving after Stop")
	}
	p := d.CurrentPose()
	if p.X <= 0 || p.X >= 1000 {
		t.Errorf("expected a partial travel, got %+v", p)
	}
	// Pose must not drift once stopped.
	time.Sleep(50 * time.Millisecond)
	if d.CurrentPose() != p {
		t.Errorf("pose drifted after Stop: %+v -> %+v", p, d.CurrentPose())
	}
}

func TestDummySensorFlags(t *testing.T) {
	d := NewDummy()
	if d.ObstacleAhead() || d.CollisionDetected() || d.StopRequested() {
		t.Error("sensors tripped on a fresh dummy")
	}
	d.SetObstacle(true)
	d.SetCollision(true)
	d.SetStopRequested(true)
	if !d.ObstacleAhead() || !d.CollisionDetected() || !d.StopRequested() {
		t.Error("sensor flags not reflected")
	}
}
