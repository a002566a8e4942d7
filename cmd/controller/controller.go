package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/redrover-team/redrover/go-controller/pkg/config"
	"github.com/redrover-team/redrover/go-controller/pkg/hardware"
	"github.com/redrover-team/redrover/go-controller/pkg/rover"
	"github.com/redrover-team/redrover/go-controller/pkg/waypointmode"
)

func main() {
	configPath := flag.String("config", "/cfg/rover.yaml", "path to the rover config file")
	dummy := flag.Bool("dummy", false, "use the simulated rover instead of real hardware")
	flag.Parse()

	fmt.Println("---- Red Rover ----")
	fmt.Println("GOMAXPROCS", runtime.GOMAXPROCS(0))

	// Our global context, we cancel it to trigger shutdown.
	ctx, cancel := context.WithCancel(context.Background())
	registerSignalHandlers(cancel)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}
	if err := cfg.SaveInUse(*configPath); err != nil {
		fmt.Println("Failed to save in-use config:", err)
	}

	var hw hardware.Interface
	if *dummy {
		hw = hardware.NewDummy()
	} else {
		r, err := rover.New(cfg)
		if err != nil {
			log.Fatal("Failed to initialise hardware: ", err)
		}
		hw = r
	}
	defer func() {
		hw.Shutdown()
		time.Sleep(100 * time.Millisecond)
	}()
	hw.Start(ctx)

	mode := waypointmode.New(hw, cfg)
	fmt.Printf("----- %s -----\n", mode.Name())
	hw.PlaySound(mode.StartupSound())
	mode.Start(ctx)

	watchdog := time.NewTicker(5 * time.Second)
	defer watchdog.Stop()
	for {
		select {
		case <-ctx.Done():
			fmt.Println("Context done, stopping mode and shutting down")
			mode.Stop()
			return
		case <-watchdog.C:
			fmt.Println("Main loop still running;", mode.Navigator())
		}
	}
}

func registerSignalHandlers(cancelFunc context.CancelFunc) {
	// Hook Ctrl-C to cause shut down.
	signals := make(chan os.Signal, 2)
	signal.Notify(signals, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		s := <-signals
		log.Println("Signal: ", s)
		cancelFunc()
		time.Sleep(2 * time.Second)
		os.Exit(0)
	}()
}
