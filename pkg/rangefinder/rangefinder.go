package rangefinder

import (
	"encoding/binary"
	"errors"
	"time"

	"golang.org/x/exp/io/i2c"
)

// VL53L0X time-of-flight rangefinder, driven over plain register I2C.
const (
	DefaultAddr = 0x29

	regSysrangeStart         = 0x00
	regSystemInterruptClear  = 0x0B
	regResultInterruptStatus = 0x13
	regResultRangeStatus     = 0x14
	regResultRangeMM         = 0x1E // uint16, big endian

	startContinuousBackToBack = 0x02

	// RangeTooFar is returned when the measurement was invalid, which
	// typically means the surface was out of range.
	RangeTooFar = 2001
)

var (
	ErrMeasurementFailed = errors.New("measurement failed")
	ErrNotReady          = errors.New("no measurement ready")
)

type Interface interface {
	StartContinuousMeasurements() error
	GetNextContinuousMeasurement() (int, error)
	Close() error
}

type TOFSensor struct {
	dev *i2c.Device
}

func New(device string, addr int) (Interface, error) {
	dev, err := i2c.Open(&i2c.Devfs{Dev: device}, addr)
	if err != nil {
		return nil, err
	}
	return &TOFSensor{dev: dev}, nil
}

func (s *TOFSensor) StartContinuousMeasurements() error {
	return s.dev.WriteReg(regSysrangeStart, []byte{startContinuousBackToBack})
}

// GetNextContinuousMeasurement blocks (up to a second) for the next
// reading and returns its range in mm, or RangeTooFar for an
// out-of-range measurement.
func (s *TOFSensor) GetNextContinuousMeasurement() (int, error) {
	start := time.Now()
	var status [1]byte
	for {
		if err := s.dev.ReadReg(regResultInterruptStatus, status[:]); err != nil {
			return 0, ErrMeasurementFailed
		}
		if status[0]&0x07 != 0 {
			break
		}
		time.Sleep(100 * time.Microsecond)
		if time.Since(start) > time.Second {
			return 0, ErrNotReady
		}
	}

	var rangeStatus [1]byte
	if err := s.dev.ReadReg(regResultRangeStatus, rangeStatus[:]); err != nil {
		return 0, ErrMeasurementFailed
	}
	var raw [2]byte
	if err := s.dev.ReadReg(regResultRangeMM, raw[:]); err != nil {
		return 0, ErrMeasurementFailed
	}
	if err := s.dev.WriteReg(regSystemInterruptClear, []byte{0x01}); err != nil {
		return 0, ErrMeasurementFailed
	}

	// Device range status lives in bits 3-6; zero means a valid range.
	if (rangeStatus[0]>>3)&0x0F != 0 {
		return RangeTooFar, nil
	}
	return int(binary.BigEndian.Uint16(raw[:])), nil
}

func (s *TOFSensor) Close() error {
	return s.dev.Close()
}
