package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

// Mixer plays named clips. Every clip has a single playhead, so playing a
// clip again resumes it instead of stacking a second copy.
// A Mixer works without an audio device; Open attaches it to the speaker.
type Mixer struct {
	mu        sync.Mutex
	mixer     *beep.Mixer
	master    *effects.Volume
	voices    map[string]*voice
	speakerOn bool
	logger    *log.Logger
}

// NewMixer creates a silent-until-opened mixer.
func NewMixer(logger *log.Logger) *Mixer {
	if logger == nil {
		logger = log.Default()
	}
	mx := &beep.Mixer{}
	return &Mixer{
		mixer:  mx,
		master: &effects.Volume{Streamer: mx, Base: 2, Volume: 0, Silent: false},
		voices: make(map[string]*voice),
		logger: logger,
	}
}

// Open initializes the speaker and starts streaming the mix.
// A failure leaves the mixer usable but silent.
func (m *Mixer) Open() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.speakerOn {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		m.logger.Warn("audio unavailable, continuing without sound", "err", err)
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(m.master)
	m.speakerOn = true
	return nil
}

// Close stops playback and releases the speaker.
func (m *Mixer) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.speakerOn {
		return
	}
	speaker.Clear()
	speaker.Close()
	m.speakerOn = false
}

// Add registers a clip under a name, replacing any previous clip.
func (m *Mixer) Add(name string, buf *beep.Buffer) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v := &voice{seeker: buf.Streamer(0, buf.Len())}
	ctrl := &beep.Ctrl{Streamer: v, Paused: true}
	v.ctrl = ctrl

	m.lock()
	if old, ok := m.voices[name]; ok {
		old.ctrl.Streamer = nil // drained controls leave the mixer
	}
	m.voices[name] = v
	m.mixer.Add(ctrl)
	m.unlock()
}

// Has reports whether a clip is registered.
func (m *Mixer) Has(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.voices[name]
	return ok
}

// Play starts or resumes a clip. A clip that ran to its end restarts.
// Unknown clips are ignored.
func (m *Mixer) Play(name string) {
	m.with(name, func(v *voice) {
		if v.done {
			v.rewind()
		}
		v.ctrl.Paused = false
	})
}

// Pause stops a clip, keeping its position.
func (m *Mixer) Pause(name string) {
	m.with(name, func(v *voice) {
		v.ctrl.Paused = true
	})
}

// Rewind moves a clip back to its start without changing play state.
func (m *Mixer) Rewind(name string) {
	m.with(name, func(v *voice) {
		v.rewind()
	})
}

// SetLoop controls whether a clip restarts when it reaches its end.
func (m *Mixer) SetLoop(name string, loop bool) {
	m.with(name, func(v *voice) {
		v.loop = loop
	})
}

// Playing reports whether a clip is currently producing sound.
func (m *Mixer) Playing(name string) bool {
	playing := false
	m.with(name, func(v *voice) {
		playing = !v.ctrl.Paused && !v.done
	})
	return playing
}

// Position returns the playhead of a clip in samples.
func (m *Mixer) Position(name string) int {
	pos := 0
	m.with(name, func(v *voice) {
		pos = v.seeker.Position()
	})
	return pos
}

// SetMuted silences or restores every clip.
func (m *Mixer) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lock()
	m.master.Silent = muted
	m.unlock()
}

// Muted reports whether output is silenced.
func (m *Mixer) Muted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lock()
	defer m.unlock()
	return m.master.Silent
}

// Streamer returns the master output, for tests and offline rendering.
func (m *Mixer) Streamer() beep.Streamer {
	return m.master
}

func (m *Mixer) with(name string, fn func(v *voice)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.voices[name]
	if !ok {
		return
	}
	m.lock()
	fn(v)
	m.unlock()
}

// lock guards streamer state against the speaker goroutine.
func (m *Mixer) lock() {
	if m.speakerOn {
		speaker.Lock()
	}
}

func (m *Mixer) unlock() {
	if m.speakerOn {
		speaker.Unlock()
	}
}

// voice is the playhead of one clip. It never drains so the mixer keeps it.
type voice struct {
	seeker beep.StreamSeeker
	ctrl   *beep.Ctrl
	loop   bool
	done   bool
}

func (v *voice) rewind() {
	_ = v.seeker.Seek(0)
	v.done = false
}

func (v *voice) Stream(samples [][2]float64) (int, bool) {
	filled := 0
	for filled < len(samples) && !v.done {
		n, ok := v.seeker.Stream(samples[filled:])
		filled += n
		if ok && n > 0 {
			continue
		}
		if v.loop && v.seeker.Len() > 0 {
			_ = v.seeker.Seek(0)
			continue
		}
		v.done = true
	}
	for i := filled; i < len(samples); i++ {
		samples[i] = [2]float64{}
	}
	return len(samples), true
}

func (v *voice) Err() error { return v.seeker.Err() }
