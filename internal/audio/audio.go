// Package audio implements the tone output of the host using beep.
package audio

import (
	"errors"
	"fmt"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// SampleRate is the output sample rate of the speaker.
const SampleRate = beep.SampleRate(44100)

// bufferTime is the speaker buffer length, it bounds the latency of
// starting and stopping the tone.
const bufferTime = time.Second / 30

// ErrInvalidTone is returned for a tone that can not be played.
var ErrInvalidTone = errors.New("invalid tone")

// Config contains the tone settings.
type Config struct {
	Frequency float64 // Hz
	Volume    float64 // amplitude between 0 and 1
}

// Speaker plays a square wave tone that is switched on and off by the host.
type Speaker struct {
	ctrl *beep.Ctrl
}

// New initializes the audio device and starts the paused tone.
func New(cfg Config) (*Speaker, error) {
	tone, err := SquareWave(SampleRate, cfg)
	if err != nil {
		return nil, err
	}

	if err := speaker.Init(SampleRate, SampleRate.N(bufferTime)); err != nil {
		return nil, fmt.Errorf("initializing speaker: %w", err)
	}

	s := &Speaker{
		ctrl: &beep.Ctrl{Streamer: tone, Paused: true},
	}
	speaker.Play(s.ctrl)
	return s, nil
}

// StartSound unpauses the tone.
func (s *Speaker) StartSound() {
	s.setPaused(false)
}

// StopSound pauses the tone.
func (s *Speaker) StopSound() {
	s.setPaused(true)
}

// Close removes the tone from the speaker.
func (s *Speaker) Close() error {
	s.setPaused(true)
	speaker.Clear()
	return nil
}

func (s *Speaker) setPaused(paused bool) {
	speaker.Lock()
	s.ctrl.Paused = paused
	speaker.Unlock()
}

// SquareWave returns an endless square wave streamer for the tone.
func SquareWave(sampleRate beep.SampleRate, cfg Config) (beep.Streamer, error) {
	if cfg.Frequency <= 0 || float64(sampleRate) < 2*cfg.Frequency {
		return nil, fmt.Errorf("%w: frequency %g Hz", ErrInvalidTone, cfg.Frequency)
	}
	if cfg.Volume < 0 || cfg.Volume > 1 {
		return nil, fmt.Errorf("%w: volume %g", ErrInvalidTone, cfg.Volume)
	}

	period := float64(sampleRate) / cfg.Frequency
	var position float64

	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			value := cfg.Volume
			if position >= period/2 {
				value = -cfg.Volume
			}
			samples[i][0] = value
			samples[i][1] = value

			position++
			if position >= period {
				position -= period
			}
		}
		return len(samples), true
	}), nil
}
