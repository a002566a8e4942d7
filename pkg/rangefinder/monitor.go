package rangefinder

import (
	"context"
	"fmt"
	"sync/atomic"
)

// Monitor samples the sensor continuously and caches the latest reading
// so that ObstacleAhead never blocks the motion poll loop.  Two
// consecutive readings under the threshold are required before an
// obstacle is reported, which debounces single glitched measurements.
type Monitor struct {
	sensor      Interface
	thresholdMM int

	latestMM     int64 // atomic
	belowStreak  int64 // atomic
	debounceHits int64
}

func NewMonitor(sensor Interface, thresholdMM int) *Monitor {
	m := &Monitor{
		sensor:       sensor,
		thresholdMM:  thresholdMM,
		debounceHits: 2,
	}
	atomic.StoreInt64(&m.latestMM, RangeTooFar)
	return m
}

// Start begins continuous sampling; returns once the sensor is streaming.
func (m *Monitor) Start(ctx context.Context) error {
	if err := m.sensor.StartContinuousMeasurements(); err != nil {
		return err
	}
	go m.loop(ctx)
	return nil
}

func (m *Monitor) loop(ctx context.Context) {
	defer fmt.Println("Rangefinder monitor exited")
	for ctx.Err() == nil {
		mm, err := m.sensor.GetNextContinuousMeasurement()
		if err != nil {
			// Treat a failed read like an out-of-range one; the
			// bumper still guards against actual contact.
			mm = RangeTooFar
		}
		atomic.StoreInt64(&m.latestMM, int64(mm))
		if mm < m.thresholdMM {
			atomic.AddInt64(&m.belowStreak, 1)
		} else {
			atomic.StoreInt64(&m.belowStreak, 0)
		}
	}
}

// LatestMM returns the most recent range reading.
func (m *Monitor) LatestMM() int {
	return int(atomic.LoadInt64(&m.latestMM))
}

func (m *Monitor) ObstacleAhead() bool {
	return atomic.LoadInt64(&m.belowStreak) >= m.debounceHits
}
