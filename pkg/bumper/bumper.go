package bumper

import (
	"fmt"

	"periph.io/x/periph/conn/gpio"
	"periph.io/x/periph/conn/gpio/gpioreg"
)

// Switch is a normally-open contact switch wired active-low between a
// GPIO pin and ground: the front bumper and the operator's stop button
// are both one of these.  The caller must have run host.Init first.
type Switch struct {
	name string
	pin  gpio.PinIO
}

func New(pinName string) (*Switch, error) {
	pin := gpioreg.ByName(pinName)
	if pin == nil {
		return nil, fmt.Errorf("no GPIO pin named %q", pinName)
	}
	if err := pin.In(gpio.PullUp, gpio.NoEdge); err != nil {
		return nil, err
	}
	return &Switch{name: pinName, pin: pin}, nil
}

// Pressed reports whether the switch is currently closed.
func (s *Switch) Pressed() bool {
	return s.pin.Read() == gpio.Low
}

func (s *Switch) String() string {
	return "switch on " + s.name
}
