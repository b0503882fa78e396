// Package audio plays the short tone used to signal a gate crossing.
package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// SampleRate of the generated tone.
const SampleRate = beep.SampleRate(44100)

// Chime is a sine tone played through the system speaker. A chime whose
// speaker failed to initialize stays silent.
type Chime struct {
	freq     float64
	duration time.Duration
	ready    bool
}

// NewChime creates a chime of the given frequency and duration.
func NewChime(freq float64, duration time.Duration) *Chime {
	return &Chime{freq: freq, duration: duration}
}

// Init opens the speaker with a 100ms buffer.
func (c *Chime) Init() error {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}
	c.ready = true
	return nil
}

// Stream returns the tone as a finite streamer.
func (c *Chime) Stream() (beep.Streamer, error) {
	sine, err := generators.SineTone(SampleRate, c.freq)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tone: %w", err)
	}
	return beep.Take(SampleRate.N(c.duration), sine), nil
}

// Play starts the tone without blocking.
func (c *Chime) Play() {
	if !c.ready {
		return
	}
	s, err := c.Stream()
	if err != nil {
		return
	}
	speaker.Play(s)
}

// Close releases the speaker.
func (c *Chime) Close() {
	if c.ready {
		speaker.Close()
		c.ready = false
	}
}
