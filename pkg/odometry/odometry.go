package odometry

import (
	"fmt"
	"math"
	"sync"

	"github.com/redrover-team/redrover/go-controller/pkg/hardware"
)

// WheelSource reports accumulated per-wheel travel in millimetres.
type WheelSource interface {
	WheelDistances() (left, right float64, err error)
}

// Provider dead-reckons the rover pose from the wheel odometers of a
// differential-drive chassis.  The estimate is integrated lazily on each
// CurrentPose call, so the caller's poll cadence sets the resolution.
type Provider struct {
	wheels     WheelSource
	trackWidth float64

	mu           sync.Mutex
	pose         hardware.Pose
	lastL, lastR float64
	primed       bool
}

func New(wheels WheelSource, trackWidthMM float64) *Provider {
	return &Provider{
		wheels:     wheels,
		trackWidth: trackWidthMM,
	}
}

// SetPose re-bases the estimate, e.g. when the rover is placed at a known
// arena position before a run.
func (p *Provider) SetPose(pose hardware.Pose) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pose = pose
	p.primed = false
}

func (p *Provider) CurrentPose() hardware.Pose {
	p.mu.Lock()
	defer p.mu.Unlock()

	l, r, err := p.wheels.WheelDistances()
	if err != nil {
		fmt.Println("Odometry: failed to read wheels:", err)
		return p.pose
	}
	if !p.primed {
		p.lastL, p.lastR = l, r
		p.primed = true
		return p.pose
	}

	dl := l - p.lastL
	dr := r - p.lastR
	p.lastL, p.lastR = l, r

	dist := (dl + dr) / 2
	dTheta := (dr - dl) / p.trackWidth // radians, anticlockwise positive

	// Integrate along the chord at the mid-step heading.
	midHeading := p.pose.Heading*math.Pi/180 + dTheta/2
	p.pose.X += dist * math.Cos(midHeading)
	p.pose.Y += dist * math.Sin(midHeading)
	p.pose.Heading += dTheta * 180 / math.Pi

	return p.pose
}

var _ hardware.PoseSource = (*Provider)(nil)
