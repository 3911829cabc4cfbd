// Package device opens the system speaker. It is the only package that needs
// a working audio backend, so tests elsewhere never initialize one.
package device

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// bufferLatency is how much audio the speaker buffers ahead.
const bufferLatency = time.Second / 10

// Speaker plays streamers on the system audio device.
type Speaker struct {
	rate beep.SampleRate
}

// Open initializes the speaker at the given sample rate.
func Open(rate beep.SampleRate) (*Speaker, error) {
	if err := speaker.Init(rate, rate.N(bufferLatency)); err != nil {
		return nil, fmt.Errorf("audio device: %w", err)
	}
	return &Speaker{rate: rate}, nil
}

// Play mixes s into the speaker output.
func (s *Speaker) Play(st beep.Streamer) {
	speaker.Play(st)
}

// SampleRate returns the rate the speaker was opened at.
func (s *Speaker) SampleRate() beep.SampleRate {
	return s.rate
}

// Close stops playback and releases the device.
func (s *Speaker) Close() {
	speaker.Clear()
	speaker.Close()
}
