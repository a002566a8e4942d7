package sound

import (
	"fmt"
	"os"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

// Player plays WAV cues through the speaker from a background worker.
// Play never blocks; a cue requested while another is still queued
// replaces it, since stale cues are worse than dropped ones.
type Player struct {
	queue chan string
}

func NewPlayer() *Player {
	p := &Player{queue: make(chan string, 1)}
	go p.loop()
	return p
}

// Play queues a WAV file for playback.
func (p *Player) Play(path string) {
	for {
		select {
		case p.queue <- path:
			return
		default:
		}
		select {
		case <-p.queue:
		default:
		}
	}
}

func (p *Player) loop() {
	defer func() {
		recover()
		for s := range p.queue {
			fmt.Println("Unable to play", s)
		}
	}()

	sampleRate := beep.SampleRate(44100)
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/5)); err != nil {
		fmt.Println("Failed to open speaker", err)
		for s := range p.queue {
			fmt.Println("Unable to play", s)
		}
	}

	var ctrl *beep.Ctrl
	var s beep.StreamSeekCloser
	for path := range p.queue {
		if ctrl != nil {
			speaker.Lock()
			ctrl.Paused = true
			ctrl.Streamer = nil
			speaker.Unlock()
			ctrl = nil
		}
		if s != nil {
			s.Close()
		}

		f, err := os.Open(path)
		if err != nil {
			fmt.Println("Failed to open sound", err)
			continue
		}
		s, _, err = wav.Decode(f)
		if err != nil {
			fmt.Println("Failed to decode sound", err)
			continue
		}
		ctrl = &beep.Ctrl{Streamer: s}
		speaker.Play(ctrl)
	}
}
