package waypointmode

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/redrover-team/redrover/go-controller/pkg/config"
	"github.com/redrover-team/redrover/go-controller/pkg/hardware"
)

func testConfig(t *testing.T, waypoints ...config.Point) config.Config {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "none.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	cfg.PollIntervalMS = 1
	cfg.TracePNG = filepath.Join(t.TempDir(), "trace.png")
	cfg.Waypoints = waypoints
	return cfg
}

func TestShortMissionCompletes(t *testing.T) {
	cfg := testConfig(t, config.Point{X: 20, Y: 0}, config.Point{X: 20, Y: 20})
	hw := hardware.NewDummy()
	m := New(hw, cfg)

	m.Start(context.Background())
	defer m.Stop()

	// The trace PNG is written when the sequence finishes.
	deadline := time.Now().Add(10 * time.Second)
	for {
		if _, err := os.Stat(cfg.TracePNG); err == nil {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("mission did not finish in time")
		}
		time.Sleep(10 * time.Millisecond)
	}

	m.Stop()
	if remaining := m.Navigator().Remaining(); len(remaining) != 0 {
		t.Errorf("expected all waypoints consumed, got %v", remaining)
	}
}

func TestStopInterruptsRunAndKeepsQueue(t *testing.T) {
	// A waypoint 5m away takes far longer than this test runs for.
	cfg := testConfig(t, config.Point{X: 5000, Y: 0})
	hw := hardware.NewDummy()
	m := New(hw, cfg)

	m.Start(context.Background())
	time.Sleep(100 * time.Millisecond)
	m.Stop()

	if remaining := m.Navigator().Remaining(); len(remaining) != 1 {
		t.Errorf("expected the unreached waypoint to stay queued, got %v", remaining)
	}
	if hw.IsMoving() {
		t.Error("rover still moving after Stop")
	}
}
