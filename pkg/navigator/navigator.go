package navigator

import (
	"context"
	"fmt"
	"math"

	"github.com/redrover-team/redrover/go-controller/pkg/angle"
	"github.com/redrover-team/redrover/go-controller/pkg/hardware"
	"github.com/redrover-team/redrover/go-controller/pkg/motion"
	"github.com/redrover-team/redrover/go-controller/pkg/waypoint"
)

// Navigator turns target points into rotate-then-travel primitives and
// works through the waypoint queue.  It owns the queue; the pose source
// and supervisor are shared collaborators owned by the composition root.
type Navigator struct {
	pose  hardware.PoseSource
	sup   *motion.Supervisor
	queue waypoint.Queue

	onArrival func()
}

func New(pose hardware.PoseSource, sup *motion.Supervisor) *Navigator {
	return &Navigator{
		pose: pose,
		sup:  sup,
	}
}

// SetArrivalFunc registers the mission controller's callback, invoked
// synchronously each time a waypoint is popped from the queue.
func (n *Navigator) SetArrivalFunc(f func()) {
	n.onArrival = f
}

// MoveTo rotates towards (x, y) and then travels the straight-line
// distance.  Returns false as soon as either primitive is interrupted;
// the travel is never attempted if the rotation didn't complete.
func (n *Navigator) MoveTo(ctx context.Context, x, y float64) bool {
	p := n.pose.CurrentPose()
	bearing := angle.Delta(p.Heading, angle.ToTarget(x-p.X, y-p.Y))
	distance := math.Hypot(x-p.X, y-p.Y)
	if x == p.X && y == p.Y {
		bearing = 0
	}

	if n.sup.Run(ctx, motion.Rotate(bearing)) != motion.Completed {
		return false
	}
	return n.sup.Run(ctx, motion.Travel(distance)) == motion.Completed
}

// SetHeading rotates to an absolute world-frame heading, taking the
// shorter way round (the issued rotation is never more than 180 degrees).
func (n *Navigator) SetHeading(ctx context.Context, targetHeading float64) bool {
	p := n.pose.CurrentPose()
	delta := angle.Delta(p.Heading, targetHeading)
	return n.sup.Run(ctx, motion.Rotate(delta)) == motion.Completed
}

// RotateBy rotates relative to the current heading.
func (n *Navigator) RotateBy(ctx context.Context, delta float64) bool {
	return n.sup.Run(ctx, motion.Rotate(delta)) == motion.Completed
}

// FollowPath visits the queued waypoints in order.  A waypoint is only
// popped once reached; on interruption the queue, including the waypoint
// being approached, is left as-is so the mission controller can retry.
// Returns true once the queue is empty.
func (n *Navigator) FollowPath(ctx context.Context) bool {
	for {
		wp, ok := n.queue.Peek()
		if !ok {
			return true
		}
		if !n.MoveTo(ctx, wp.X, wp.Y) {
			return false
		}
		n.queue.Pop()
		fmt.Printf("Nav: reached waypoint (%.0f, %.0f), %d to go\n", wp.X, wp.Y, n.queue.Len())
		if n.onArrival != nil {
			n.onArrival()
		}
	}
}

func (n *Navigator) AddWaypoint(x, y float64) {
	n.queue.Add(waypoint.Waypoint{X: x, Y: y})
}

func (n *Navigator) ClearPath() {
	n.queue.Clear()
}

// Remaining returns a copy of the not-yet-reached waypoints in order.
func (n *Navigator) Remaining() []waypoint.Waypoint {
	return n.queue.Remaining()
}

func (n *Navigator) X() float64 {
	return n.pose.CurrentPose().X
}

func (n *Navigator) Y() float64 {
	return n.pose.CurrentPose().Y
}

func (n *Navigator) Heading() float64 {
	return n.pose.CurrentPose().Heading
}

func (n *Navigator) String() string {
	return n.pose.CurrentPose().String()
}
