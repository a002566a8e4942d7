package motion

import (
	"context"
	"fmt"
	"time"

	"github.com/redrover-team/redrover/go-controller/pkg/hardware"
)

const DefaultPollInterval = 10 * time.Millisecond

type Kind int

const (
	KindRotate Kind = iota
	KindTravel
)

func (k Kind) String() string {
	if k == KindRotate {
		return "rotate"
	}
	return "travel"
}

// Primitive is one atomic motion command for the drive board: a rotation
// in degrees (anticlockwise positive) or a travel in mm (forwards
// positive).
type Primitive struct {
	Kind   Kind
	Amount float64
}

func Rotate(angleDegrees float64) Primitive {
	return Primitive{Kind: KindRotate, Amount: angleDegrees}
}

func Travel(distanceMM float64) Primitive {
	return Primitive{Kind: KindTravel, Amount: distanceMM}
}

type Outcome int

const (
	Completed Outcome = iota
	Interrupted
)

func (o Outcome) String() string {
	if o == Completed {
		return "completed"
	}
	return "interrupted"
}

// Supervisor runs one primitive at a time, polling the sensors at a fixed
// interval while the board reports that it is moving.
type Supervisor struct {
	drive        hardware.Drive
	sensors      hardware.Sensors
	pollInterval time.Duration
	abortCheck   func() bool
}

type Option func(*Supervisor)

func WithPollInterval(d time.Duration) Option {
	return func(s *Supervisor) { s.pollInterval = d }
}

// WithAbortCheck adds an operator-stop input (e.g. the e-stop button) to
// the interrupt predicate for both primitive kinds.
func WithAbortCheck(f func() bool) Option {
	return func(s *Supervisor) { s.abortCheck = f }
}

func New(drive hardware.Drive, sensors hardware.Sensors, opts ...Option) *Supervisor {
	s := &Supervisor{
		drive:        drive,
		sensors:      sensors,
		pollInterval: DefaultPollInterval,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Run issues the primitive and polls until the board stops moving or an
// interrupt condition trips.  Rotations are only interrupted by the
// bumper; travels only by the forward rangefinder.  On interrupt the board
// is told to stop, once, before returning.
//
// There is no timeout: a board that never drops its moving flag keeps Run
// polling until the context is cancelled.
func (s *Supervisor) Run(ctx context.Context, p Primitive) Outcome {
	switch p.Kind {
	case KindRotate:
		s.drive.Rotate(p.Amount)
	case KindTravel:
		s.drive.Travel(p.Amount)
	}

	for {
		time.Sleep(s.pollInterval)
		if reason := s.tripped(ctx, p.Kind); reason != "" {
			s.drive.Stop()
			fmt.Printf("Motion: %v %.1f interrupted (%s)\n", p.Kind, p.Amount, reason)
			return Interrupted
		}
		if !s.drive.IsMoving() {
			return Completed
		}
	}
}

func (s *Supervisor) tripped(ctx context.Context, k Kind) string {
	if ctx.Err() != nil {
		return "cancelled"
	}
	if s.abortCheck != nil && s.abortCheck() {
		return "operator stop"
	}
	switch k {
	case KindRotate:
		if s.sensors.CollisionDetected() {
			return "collision"
		}
	case KindTravel:
		if s.sensors.ObstacleAhead() {
			return "obstacle ahead"
		}
	}
	return ""
}
