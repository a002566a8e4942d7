package hardware

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"
)

const (
	dummyRotateSpeed = 90  // degrees per second
	dummyTravelSpeed = 200 // mm per second
)

type dummyKind int

const (
	dummyIdle dummyKind = iota
	dummyRotating
	dummyTravelling
)

// Dummy is an in-memory rover for off-robot development and tests.  It
// runs rotate/travel commands over simulated time so that IsMoving and
// CurrentPose behave like the real board's cached state.
type Dummy struct {
	mu   sync.Mutex
	pose Pose

	kind      dummyKind
	amount    float64
	startPose Pose
	start     time.Time
	duration  time.Duration

	obstacle  bool
	collision bool
	stopReq   bool
}

func NewDummy() *Dummy {
	return &Dummy{}
}

func (d *Dummy) Start(ctx context.Context) {
	fmt.Println("DHW: Start")
}

func (d *Dummy) Shutdown() {
	fmt.Println("DHW: Shutdown")
	d.Stop()
}

func (d *Dummy) Rotate(angleDegrees float64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.advance()
	d.begin(dummyRotating, angleDegrees, math.Abs(angleDegrees)/dummyRotateSpeed)
}

func (d *Dummy) Travel(distanceMM float64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.advance()
	d.begin(dummyTravelling, distanceMM, math.Abs(distanceMM)/dummyTravelSpeed)
}

func (d *Dummy) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.advance()
	d.kind = dummyIdle
}

func (d *Dummy) IsMoving() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.advance()
	return d.kind != dummyIdle
}

func (d *Dummy) CurrentPose() Pose {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.advance()
	return d.pose
}

func (d *Dummy) ObstacleAhead() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.obstacle
}

func (d *Dummy) CollisionDetected() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.collision
}

func (d *Dummy) StopRequested() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.stopReq
}

func (d *Dummy) PlaySound(path string) {
	fmt.Printf("DHW: PlaySound path=%v\n", path)
}

// SetPose teleports the simulated rover; any motion in progress is dropped.
func (d *Dummy) SetPose(p Pose) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.kind = dummyIdle
	d.pose = p
}

func (d *Dummy) SetObstacle(v bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.obstacle = v
}

func (d *Dummy) SetCollision(v bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.collision = v
}

func (d *Dummy) SetStopRequested(v bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopReq = v
}

func (d *Dummy) begin(kind dummyKind, amount, seconds float64) {
	d.kind = kind
	d.amount = amount
	d.startPose = d.pose
	d.start = time.Now()
	d.duration = time.Duration(seconds * float64(time.Second))
}

// advance applies progress of the in-flight motion up to now.  Must be
// called with the lock held.
func (d *Dummy) advance() {
	if d.kind == dummyIdle {
		return
	}
	frac := 1.0
	if d.duration > 0 {
		frac = float64(time.Since(d.start)) / float64(d.duration)
		if frac > 1 {
			frac = 1
		}
	}
	switch d.kind {
	case dummyRotating:
		d.pose.Heading = d.startPose.Heading + d.amount*frac
	case dummyTravelling:
		dist := d.amount * frac
		hdg := d.startPose.Heading * math.Pi / 180
		d.pose.X = d.startPose.X + dist*math.Cos(hdg)
		d.pose.Y = d.startPose.Y + dist*math.Sin(hdg)
	}
	if frac >= 1 {
		d.kind = dummyIdle
	}
}

var _ Interface = (*Dummy)(nil)
