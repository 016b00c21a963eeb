// Package audio synthesizes the game's sound clips and mixes them for
// playback through the system speaker.
package audio

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// SampleRate is the rate every clip is rendered at.
const SampleRate = beep.SampleRate(44100)

// ErrEmptyClip is returned when a clip spec has no audible length.
var ErrEmptyClip = errors.New("audio: clip has no notes")

// Wave selects the oscillator shape of a clip.
type Wave string

const (
	WaveSine     Wave = "sine"
	WaveSquare   Wave = "square"
	WaveTriangle Wave = "triangle"
	WaveSaw      Wave = "saw"
	WaveNoise    Wave = "noise"
)

// Note is one step of a clip. A zero frequency is a rest.
type Note struct {
	Freq     float64       `yaml:"freq"`
	Duration time.Duration `yaml:"duration"`
	Volume   float64       `yaml:"volume"` // 0 means full volume
}

// ClipSpec describes a synthesized clip.
type ClipSpec struct {
	Wave    Wave          `yaml:"wave"`
	Gain    float64       `yaml:"gain"` // Linear gain, 0 means 1
	Attack  time.Duration `yaml:"attack"`
	Release time.Duration `yaml:"release"`
	Notes   []Note        `yaml:"notes"`
}

// Duration returns the total length of the clip.
func (s ClipSpec) Duration() time.Duration {
	var d time.Duration
	for _, n := range s.Notes {
		d += n.Duration
	}
	return d
}

// Synthesize renders a clip spec into a sample buffer.
func Synthesize(spec ClipSpec, sr beep.SampleRate) (*beep.Buffer, error) {
	if spec.Duration() <= 0 {
		return nil, ErrEmptyClip
	}

	parts := make([]beep.Streamer, 0, len(spec.Notes))
	for i, n := range spec.Notes {
		samples := sr.N(n.Duration)
		if samples <= 0 {
			continue
		}
		if n.Freq <= 0 {
			parts = append(parts, beep.Silence(samples))
			continue
		}

		tone, err := oscillator(spec.Wave, sr, n.Freq, int64(i))
		if err != nil {
			return nil, fmt.Errorf("audio: note %d: %w", i, err)
		}
		shaped := newEnvelope(beep.Take(samples, tone), samples, sr.N(spec.Attack), sr.N(spec.Release))
		parts = append(parts, gain(shaped, noteGain(spec.Gain, n.Volume)))
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2})
	buf.Append(beep.Seq(parts...))
	return buf, nil
}

// oscillator returns an endless tone of the given wave shape.
func oscillator(wave Wave, sr beep.SampleRate, freq float64, seed int64) (beep.Streamer, error) {
	switch wave {
	case WaveSine, "":
		return generators.SineTone(sr, freq)
	case WaveSquare:
		return generators.SquareTone(sr, freq)
	case WaveTriangle:
		return generators.TriangleTone(sr, freq)
	case WaveSaw:
		return generators.SawtoothTone(sr, freq)
	case WaveNoise:
		return &noise{rng: rand.New(rand.NewPCG(uint64(seed), uint64(freq)))}, nil
	default:
		return nil, fmt.Errorf("unknown wave %q", wave)
	}
}

func noteGain(clip, note float64) float64 {
	if clip == 0 {
		clip = 1
	}
	if note == 0 {
		note = 1
	}
	return clip * note
}

// gain scales a stream by a linear factor.
func gain(s beep.Streamer, factor float64) beep.Streamer {
	if factor <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(factor), Silent: false}
}

// noise is deterministic white noise.
type noise struct {
	rng *rand.Rand
}

func (n *noise) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		v := n.rng.Float64()*2 - 1
		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

func (n *noise) Err() error { return nil }

// envelope applies a linear attack and release to a stream of known length.
type envelope struct {
	streamer beep.Streamer
	pos      int
	total    int
	attack   int
	release  int
}

func newEnvelope(s beep.Streamer, total, attack, release int) *envelope {
	// Attack and release share the note when they do not fit.
	if attack+release > total {
		attack = total / 2
		release = total - attack
	}
	return &envelope{streamer: s, total: total, attack: attack, release: release}
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		v := e.level()
		samples[i][0] *= v
		samples[i][1] *= v
		e.pos++
	}
	return n, ok
}

func (e *envelope) level() float64 {
	switch {
	case e.attack > 0 && e.pos < e.attack:
		return float64(e.pos) / float64(e.attack)
	case e.release > 0 && e.pos >= e.total-e.release:
		return float64(e.total-e.pos) / float64(e.release)
	default:
		return 1
	}
}

func (e *envelope) Err() error { return e.streamer.Err() }
