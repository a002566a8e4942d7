package main

import (
	"fmt"
	"os"

	"github.com/redrover-team/redrover/go-controller/pkg/rangefinder"
)

func main() {
	device := "/dev/i2c-1"
	if len(os.Args) > 1 {
		device = os.Args[1]
	}

	tof, err := rangefinder.New(device, rangefinder.DefaultAddr)
	if err != nil {
		fmt.Println("Failed to open sensor ", err)
		os.Exit(1)
	}
	defer func() {
		_ = tof.Close()
	}()

	err = tof.StartContinuousMeasurements()
	if err != nil {
		fmt.Println("Failed to start continuous measurements", err)
		os.Exit(1)
	}

	for {
		mm, err := tof.GetNextContinuousMeasurement()
		if err != nil {
			fmt.Println("Measurement failed:", err)
			continue
		}
		if mm == rangefinder.RangeTooFar {
			fmt.Println("<out of range>")
		} else {
			fmt.Printf("%dmm\n", mm)
		}
	}
}
