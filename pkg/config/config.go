package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	yaml "gopkg.in/yaml.v2"
)

// Point is a waypoint entry in the config file, in millimetres.
type Point struct {
	X float64
	Y float64
}

// Config is the rover's startup configuration.  Zero values are filled in
// by Load from the defaults below.
type Config struct {
	// Motion supervision.
	PollIntervalMS      int
	ObstacleThresholdMM int

	// Chassis geometry for dead reckoning.
	TrackWidthMM float64

	// Hardware device paths / addresses.
	I2CDevice string
	DriveAddr int
	RangeAddr int
	BumperPin string
	EStopPin  string

	// Sound cues.
	StartSound   string
	ReadySound   string
	ArrivalSound string
	BlockedSound string

	// Where to write the post-run path trace, empty to disable.
	TracePNG string

	// Initial mission.
	Waypoints []Point
}

var defaults = Config{
	PollIntervalMS:      10,
	ObstacleThresholdMM: 250,
	TrackWidthMM:        160,
	I2CDevice:           "/dev/i2c-1",
	DriveAddr:           0x42,
	RangeAddr:           0x29,
	BumperPin:           "GPIO23",
	EStopPin:            "GPIO24",
	StartSound:          "/sounds/redroverstart.wav",
	ReadySound:          "/sounds/ready.wav",
	ArrivalSound:        "/sounds/waypoint.wav",
	BlockedSound:        "/sounds/blocked.wav",
	TracePNG:            "/tmp/path-trace.png",
}

// Load reads the YAML config and fills unset fields from the defaults.
// A missing file is not an error; the defaults are returned.
func Load(path string) (Config, error) {
	cfg := defaults
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		fmt.Println("No config file at", path, "- using defaults")
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	var fromFile Config
	if err := yaml.Unmarshal(raw, &fromFile); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %v", path, err)
	}
	merge(&cfg, fromFile)
	return cfg, nil
}

// SaveInUse writes the effective config next to the original, so the
// values a run actually used are on record.
func (c Config) SaveInUse(origPath string) error {
	out, err := yaml.Marshal(&c)
	if err != nil {
		return err
	}
	ext := filepath.Ext(origPath)
	inUse := strings.TrimSuffix(origPath, ext) + "-in-use" + ext
	return os.WriteFile(inUse, out, 0666)
}

func merge(dst *Config, src Config) {
	if src.PollIntervalMS != 0 {
		dst.PollIntervalMS = src.PollIntervalMS
	}
	if src.ObstacleThresholdMM != 0 {
		dst.ObstacleThresholdMM = src.ObstacleThresholdMM
	}
	if src.TrackWidthMM != 0 {
		dst.TrackWidthMM = src.TrackWidthMM
	}
	if src.I2CDevice != "" {
		dst.I2CDevice = src.I2CDevice
	}
	if src.DriveAddr != 0 {
		dst.DriveAddr = src.DriveAddr
	}
	if src.RangeAddr != 0 {
		dst.RangeAddr = src.RangeAddr
	}
	if src.BumperPin != "" {
		dst.BumperPin = src.BumperPin
	}
	if src.EStopPin != "" {
		dst.EStopPin = src.EStopPin
	}
	if src.StartSound != "" {
		dst.StartSound = src.StartSound
	}
	if src.ReadySound != "" {
		dst.ReadySound = src.ReadySound
	}
	if src.ArrivalSound != "" {
		dst.ArrivalSound = src.ArrivalSound
	}
	if src.BlockedSound != "" {
		dst.BlockedSound = src.BlockedSound
	}
	if src.TracePNG != "" {
		dst.TracePNG = src.TracePNG
	}
	if len(src.Waypoints) > 0 {
		dst.Waypoints = src.Waypoints
	}
}
