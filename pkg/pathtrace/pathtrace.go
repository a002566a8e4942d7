package pathtrace

import (
	"math"
	"sync"

	"github.com/fogleman/gg"

	"github.com/redrover-team/redrover/go-controller/pkg/hardware"
	"github.com/redrover-team/redrover/go-controller/pkg/waypoint"
)

const (
	imageSize = 800
	marginMM  = 200
)

// Trace collects the planned waypoints and the travelled pose trail for a
// run, and renders them to a PNG afterwards for eyeballing how close the
// rover stayed to the plan.
type Trace struct {
	mu      sync.Mutex
	planned []waypoint.Waypoint
	trail   []hardware.Pose
}

func New(planned []waypoint.Waypoint) *Trace {
	return &Trace{planned: planned}
}

// Record appends a pose sample to the trail.
func (t *Trace) Record(p hardware.Pose) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.trail = append(t.trail, p)
}

// SavePNG renders the plan (grey, circles at each waypoint) and the
// trail (red) into a square image at path.
func (t *Trace) SavePNG(path string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	minX, minY, maxX, maxY := t.bounds()
	scale := float64(imageSize) / math.Max(maxX-minX, maxY-minY)
	toPx := func(x, y float64) (float64, float64) {
		// Flip y so +y in the world frame is up in the image.
		return (x - minX) * scale, float64(imageSize) - (y-minY)*scale
	}

	dc := gg.NewContext(imageSize, imageSize)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	dc.SetRGB(0.6, 0.6, 0.6)
	dc.SetLineWidth(2)
	for i, wp := range t.planned {
		x, y := toPx(wp.X, wp.Y)
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.Stroke()
	for _, wp := range t.planned {
		x, y := toPx(wp.X, wp.Y)
		dc.DrawCircle(x, y, 6)
		dc.Stroke()
	}

	dc.SetRGB(0.8, 0.1, 0.1)
	dc.SetLineWidth(2)
	for i, p := range t.trail {
		x, y := toPx(p.X, p.Y)
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.Stroke()

	if len(t.trail) > 0 {
		x, y := toPx(t.trail[0].X, t.trail[0].Y)
		dc.SetRGB(0.1, 0.5, 0.1)
		dc.DrawCircle(x, y, 8)
		dc.Fill()
	}

	return dc.SavePNG(path)
}

func (t *Trace) bounds() (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	take := func(x, y float64) {
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
	}
	for _, wp := range t.planned {
		take(wp.X, wp.Y)
	}
	for _, p := range t.trail {
		take(p.X, p.Y)
	}
	if math.IsInf(minX, 1) {
		take(0, 0)
	}
	return minX - marginMM, minY - marginMM, maxX + marginMM, maxY + marginMM
}
