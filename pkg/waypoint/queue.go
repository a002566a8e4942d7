package waypoint

// Waypoint is a single target point in the world frame, in millimetres.
type Waypoint struct {
	X, Y float64
}

// Queue is an ordered list of waypoints, consumed front-to-back.  The
// front entry is only removed once the navigator confirms the rover
// reached it.  Single-owner; callers needing cross-goroutine access must
// synchronize externally.
type Queue struct {
	points []Waypoint
}

func (q *Queue) Add(wp Waypoint) {
	q.points = append(q.points, wp)
}

func (q *Queue) Peek() (Waypoint, bool) {
	if len(q.points) == 0 {
		return Waypoint{}, false
	}
	return q.points[0], true
}

func (q *Queue) Pop() (Waypoint, bool) {
	if len(q.points) == 0 {
		return Waypoint{}, false
	}
	wp := q.points[0]
	q.points = q.points[1:]
	return wp, true
}

func (q *Queue) Clear() {
	q.points = nil
}

func (q *Queue) Len() int {
	return len(q.points)
}

// Remaining returns a copy of the queued waypoints in order.
func (q *Queue) Remaining() []Waypoint {
	out := make([]Waypoint, len(q.points))
	copy(out, q.points)
	return out
}
