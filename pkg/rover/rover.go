package rover

import (
	"context"
	"fmt"

	"periph.io/x/periph/host"

	"github.com/redrover-team/redrover/go-controller/pkg/bumper"
	"github.com/redrover-team/redrover/go-controller/pkg/config"
	"github.com/redrover-team/redrover/go-controller/pkg/drive"
	"github.com/redrover-team/redrover/go-controller/pkg/hardware"
	"github.com/redrover-team/redrover/go-controller/pkg/odometry"
	"github.com/redrover-team/redrover/go-controller/pkg/rangefinder"
	"github.com/redrover-team/redrover/go-controller/pkg/sound"
)

// Rover assembles the real hardware adapters behind hardware.Interface:
// the I2C motor board, wheel-odometry pose estimation, the forward
// rangefinder, the bumper and e-stop switches, and the speaker.
type Rover struct {
	board    *drive.Board
	odo      *odometry.Provider
	tof      rangefinder.Interface
	obstacle *rangefinder.Monitor
	bumperSw *bumper.Switch
	estopSw  *bumper.Switch
	player   *sound.Player
}

func New(cfg config.Config) (*Rover, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("periph host init: %v", err)
	}

	board, err := drive.New(cfg.I2CDevice, cfg.DriveAddr)
	if err != nil {
		return nil, fmt.Errorf("motor board: %v", err)
	}

	tof, err := rangefinder.New(cfg.I2CDevice, cfg.RangeAddr)
	if err != nil {
		return nil, fmt.Errorf("rangefinder: %v", err)
	}

	bumperSw, err := bumper.New(cfg.BumperPin)
	if err != nil {
		return nil, fmt.Errorf("bumper: %v", err)
	}
	estopSw, err := bumper.New(cfg.EStopPin)
	if err != nil {
		return nil, fmt.Errorf("e-stop: %v", err)
	}

	return &Rover{
		board:    board,
		odo:      odometry.New(board, cfg.TrackWidthMM),
		tof:      tof,
		obstacle: rangefinder.NewMonitor(tof, cfg.ObstacleThresholdMM),
		bumperSw: bumperSw,
		estopSw:  estopSw,
		player:   sound.NewPlayer(),
	}, nil
}

func (r *Rover) Start(ctx context.Context) {
	if err := r.obstacle.Start(ctx); err != nil {
		fmt.Println("Failed to start rangefinder monitor:", err)
	}
}

func (r *Rover) Shutdown() {
	fmt.Println("Zeroing motors for shut down")
	r.board.Stop()
	_ = r.board.Close()
	_ = r.tof.Close()
}

func (r *Rover) CurrentPose() hardware.Pose { return r.odo.CurrentPose() }

// SetPose re-bases the odometry, e.g. at a known start position.
func (r *Rover) SetPose(p hardware.Pose) { r.odo.SetPose(p) }

func (r *Rover) Rotate(angleDegrees float64) { r.board.Rotate(angleDegrees) }
func (r *Rover) Travel(distanceMM float64)   { r.board.Travel(distanceMM) }
func (r *Rover) Stop()                       { r.board.Stop() }
func (r *Rover) IsMoving() bool              { return r.board.IsMoving() }

func (r *Rover) ObstacleAhead() bool     { return r.obstacle.ObstacleAhead() }
func (r *Rover) CollisionDetected() bool { return r.bumperSw.Pressed() }
func (r *Rover) StopRequested() bool     { return r.estopSw.Pressed() }

func (r *Rover) PlaySound(path string) { r.player.Play(path) }

var _ hardware.Interface = (*Rover)(nil)
