package waypointmode

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redrover-team/redrover/go-controller/pkg/config"
	"github.com/redrover-team/redrover/go-controller/pkg/hardware"
	"github.com/redrover-team/redrover/go-controller/pkg/motion"
	"github.com/redrover-team/redrover/go-controller/pkg/navigator"
	"github.com/redrover-team/redrover/go-controller/pkg/pathtrace"
)

const poseSampleInterval = 100 * time.Millisecond

// Mode runs a waypoint mission: it seeds the navigator with the
// configured path, follows it once, and records the travelled trail.
// An interrupted run leaves the un-reached waypoints queued so the
// operator can clear the obstruction and start again.
type Mode struct {
	hw  hardware.Interface
	cfg config.Config
	nav *navigator.Navigator

	cancel context.CancelFunc
	stopWG sync.WaitGroup

	running        bool
	cancelSequence context.CancelFunc
	sequenceWG     sync.WaitGroup
}

func New(hw hardware.Interface, cfg config.Config) *Mode {
	sup := motion.New(hw, hw,
		motion.WithPollInterval(time.Duration(cfg.PollIntervalMS)*time.Millisecond),
		motion.WithAbortCheck(hw.StopRequested),
	)
	m := &Mode{
		hw:  hw,
		cfg: cfg,
		nav: navigator.New(hw, sup),
	}
	for _, wp := range cfg.Waypoints {
		m.nav.AddWaypoint(wp.X, wp.Y)
	}
	return m
}

// Navigator exposes the mission controller's handle on the path, e.g. to
// queue further waypoints between runs.
func (m *Mode) Navigator() *navigator.Navigator {
	return m.nav
}

func (m *Mode) Name() string {
	return "Waypoint mode"
}

func (m *Mode) StartupSound() string {
	return m.cfg.StartSound
}

func (m *Mode) Start(ctx context.Context) {
	m.stopWG.Add(1)
	var loopCtx context.Context
	loopCtx, m.cancel = context.WithCancel(ctx)
	go m.loop(loopCtx)
}

func (m *Mode) Stop() {
	m.cancel()
	m.stopWG.Wait()
}

func (m *Mode) loop(ctx context.Context) {
	defer m.stopWG.Done()
	defer m.stopSequence()

	m.startSequence(ctx)
	<-ctx.Done()
}

func (m *Mode) startSequence(ctx context.Context) {
	if m.running {
		m.log("Already running")
		return
	}
	m.log("Starting sequence...")
	m.running = true

	var seqCtx context.Context
	seqCtx, m.cancelSequence = context.WithCancel(ctx)
	m.sequenceWG.Add(1)
	go m.runSequence(seqCtx)
}

func (m *Mode) stopSequence() {
	if !m.running {
		return
	}
	m.log("Stopping sequence...")
	m.cancelSequence()
	m.sequenceWG.Wait()
	m.running = false
	m.hw.Stop()
	m.log("Stopped sequence")
}

func (m *Mode) runSequence(ctx context.Context) {
	defer m.sequenceWG.Done()
	defer m.log("Exiting sequence loop")
	defer m.hw.Stop()

	trace := pathtrace.New(m.nav.Remaining())
	sampleCtx, stopSampling := context.WithCancel(ctx)
	defer stopSampling()
	go m.samplePoses(sampleCtx, trace)

	m.nav.SetArrivalFunc(func() {
		m.log("Arrived: %v", m.nav)
		m.hw.PlaySound(m.cfg.ArrivalSound)
	})

	m.hw.PlaySound(m.cfg.ReadySound)
	m.log("Following %d waypoints from %v", len(m.nav.Remaining()), m.nav)
	startTime := time.Now()

	if m.nav.FollowPath(ctx) {
		m.log("Run completed in %v", time.Since(startTime))
	} else {
		m.hw.PlaySound(m.cfg.BlockedSound)
		m.log("Run interrupted after %v at %v; %d waypoints left",
			time.Since(startTime), m.nav, len(m.nav.Remaining()))
	}

	stopSampling()
	if m.cfg.TracePNG != "" {
		if err := trace.SavePNG(m.cfg.TracePNG); err != nil {
			m.log("Failed to save path trace: %v", err)
		} else {
			m.log("Path trace saved to %v", m.cfg.TracePNG)
		}
	}
}

func (m *Mode) samplePoses(ctx context.Context, trace *pathtrace.Trace) {
	ticker := time.NewTicker(poseSampleInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			trace.Record(m.hw.CurrentPose())
		}
	}
}

func (m *Mode) log(f string, args ...any) {
	fmt.Println(m.Name() + ": " + fmt.Sprintf(f, args...))
}
