package drive

import (
	"encoding/binary"
	"fmt"
	"time"

	"golang.org/x/exp/io/i2c"
)

// Register map of the motor board firmware.  Motion commands take a
// signed 16-bit argument: tenths of a degree for rotations, millimetres
// for travels.  The firmware ramps the motors and clears the moving bit
// when the move is done.
const (
	DefaultAddr = 0x42

	RegCommand   = 20
	RegStatus    = 23
	RegOdomLeft  = 24 // int32, millimetres, signed
	RegOdomRight = 28

	CmdStop   = 0
	CmdRotate = 1
	CmdTravel = 2

	statusMovingBit = 0x01
)

// Board drives the I2C motor board.  Methods match the hardware.Drive
// shape: they never return an error, I2C hiccups are retried and logged
// here so the motion layer above only sees sensor-level outcomes.
type Board struct {
	device string
	addr   int
	dev    *i2c.Device
}

func New(device string, addr int) (*Board, error) {
	dev, err := i2c.Open(&i2c.Devfs{Dev: device}, addr)
	if err != nil {
		return nil, err
	}
	b := &Board{
		device: device,
		addr:   addr,
		dev:    dev,
	}
	// Make sure the board is idle before handing it out.
	b.Stop()
	return b, nil
}

func (b *Board) Close() error {
	return b.dev.Close()
}

func (b *Board) Rotate(angleDegrees float64) {
	b.command(CmdRotate, clampInt16(angleDegrees*10))
}

func (b *Board) Travel(distanceMM float64) {
	b.command(CmdTravel, clampInt16(distanceMM))
}

func (b *Board) Stop() {
	b.command(CmdStop, 0)
}

func (b *Board) IsMoving() bool {
	var buf [1]byte
	if err := b.readWithRetries(RegStatus, buf[:]); err != nil {
		// Assume still moving so the supervisor keeps watching rather
		// than declaring a phantom arrival.
		fmt.Println("Drive: failed to read status:", err)
		return true
	}
	return buf[0]&statusMovingBit != 0
}

// WheelDistances returns the accumulated odometer readings for the left
// and right wheels, in millimetres.
func (b *Board) WheelDistances() (left, right float64, err error) {
	var buf [8]byte
	if err := b.readWithRetries(RegOdomLeft, buf[:]); err != nil {
		return 0, 0, err
	}
	l := int32(binary.BigEndian.Uint32(buf[0:4]))
	r := int32(binary.BigEndian.Uint32(buf[4:8]))
	return float64(l), float64(r), nil
}

func (b *Board) command(cmd byte, arg int16) {
	data := []byte{cmd, byte(arg >> 8), byte(arg)}
	var err error
	for tries := 0; tries < 20; tries++ {
		err = b.dev.WriteReg(RegCommand, data)
		if err == nil {
			if tries > 0 {
				fmt.Println("Drive: command accepted after retries")
			}
			return
		}
		fmt.Println("Drive: failed to write command:", err)
		time.Sleep(1 * time.Millisecond)
		b.reopen()
	}
	// Same last resort as losing the motor board entirely: nothing we
	// can do from here.
	panic(fmt.Errorf("drive board unreachable: %v", err))
}

func (b *Board) readWithRetries(reg byte, buf []byte) error {
	var err error
	for tries := 0; tries < 3; tries++ {
		err = b.dev.ReadReg(reg, buf)
		if err == nil {
			return nil
		}
		time.Sleep(1 * time.Millisecond)
		b.reopen()
	}
	return err
}

func (b *Board) reopen() {
	_ = b.dev.Close()
	dev, err := i2c.Open(&i2c.Devfs{Dev: b.device}, b.addr)
	if err != nil {
		return
	}
	b.dev = dev
}

func clampInt16(v float64) int16 {
	if v > 32767 {
		return 32767
	}
	if v < -32767 {
		// Clamp for symmetry to avoid overflow when the firmware
		// negates.
		return -32767
	}
	return int16(v)
}
