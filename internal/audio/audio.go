// Package audio decodes the fire sound and plays it through an Output.
// Nothing here touches the sound device; see the device subpackage for that.
package audio

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/vorbis"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/starshot/internal/assets"
)

// resampleQuality is passed to beep.Resample when the sound's rate differs
// from the output's.
const resampleQuality = 4

// Output is where decoded sounds are sent.
type Output interface {
	Play(s beep.Streamer)
	SampleRate() beep.SampleRate
}

// Decode fully decodes a sound into memory so it can be replayed any number
// of times, including overlapping.
func Decode(s assets.Sound) (*beep.Buffer, error) {
	var (
		stream beep.StreamSeekCloser
		format beep.Format
		err    error
	)
	switch s.Ext() {
	case "wav":
		stream, format, err = wav.Decode(bytes.NewReader(s.Data))
	case "ogg":
		stream, format, err = vorbis.Decode(io.NopCloser(bytes.NewReader(s.Data)))
	default:
		return nil, fmt.Errorf("audio: unsupported sound format %q (%s)", s.Ext(), s.Name)
	}
	if err != nil {
		return nil, fmt.Errorf("audio: cannot decode %s: %w", s.Name, err)
	}
	defer stream.Close()

	buf := beep.NewBuffer(format)
	buf.Append(stream)
	if err := stream.Err(); err != nil {
		return nil, fmt.Errorf("audio: cannot decode %s: %w", s.Name, err)
	}
	if buf.Len() == 0 {
		return nil, fmt.Errorf("audio: %s has no samples", s.Name)
	}
	return buf, nil
}

// Effect is a short sound played start to finish on every trigger.
// Overlapping plays mix on the output.
type Effect struct {
	buf    *beep.Buffer
	out    Output
	volume float64
}

// NewEffect binds a decoded buffer to an output. volume is a linear gain.
func NewEffect(buf *beep.Buffer, out Output, volume float64) *Effect {
	return &Effect{buf: buf, out: out, volume: volume}
}

// Play starts one playback and returns immediately.
func (e *Effect) Play() {
	var s beep.Streamer = e.buf.Streamer(0, e.buf.Len())
	if rate := e.out.SampleRate(); rate != e.buf.Format().SampleRate {
		s = beep.Resample(resampleQuality, e.buf.Format().SampleRate, rate, s)
	}
	e.out.Play(newVolume(s, e.volume))
}

// Silent is an effect that does nothing, used when no sound device is available.
type Silent struct{}

// Play does nothing.
func (Silent) Play() {}

// newVolume wraps s in a volume control.
// math.Log2(0) is -Inf, so 0 volume becomes silence.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
