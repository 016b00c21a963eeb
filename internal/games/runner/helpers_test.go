package runner

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// fakeAssets reports ready and resolves every image to nil.
type fakeAssets struct {
	ready bool
}

func (f fakeAssets) Bitmap(string) core.Bitmap { return nil }
func (f fakeAssets) Ready() bool               { return f.ready }

// soundLog records every call made to the sound player.
type soundLog struct {
	calls []string
}

func (s *soundLog) Play(name string)   { s.calls = append(s.calls, "play "+name) }
func (s *soundLog) Pause(name string)  { s.calls = append(s.calls, "pause "+name) }
func (s *soundLog) Rewind(name string) { s.calls = append(s.calls, "rewind "+name) }
func (s *soundLog) SetLoop(name string, loop bool) {
	if loop {
		s.calls = append(s.calls, "loop "+name)
	} else {
		s.calls = append(s.calls, "noloop "+name)
	}
}

func (s *soundLog) count(call string) int {
	n := 0
	for _, c := range s.calls {
		if c == call {
			n++
		}
	}
	return n
}

func testConfig() config.RunnerConfig {
	return config.DefaultRunnerConfig()
}

func newTestGame(t *testing.T) (*Game, *soundLog) {
	t.Helper()
	sound := &soundLog{}
	g := New(fakeAssets{ready: true}, sound, testConfig(), WithLogger(log.New(io.Discard)))
	return g, sound
}

func newTestWorld(seed int64) *World {
	return NewWorld(testConfig(), nil, seed)
}

func jumpFrame() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	return in
}

// jumpEvery holds jump for the first few ticks of every period.
func jumpEvery(period, hold int) func(tick int) bool {
	return func(tick int) bool {
		return tick%period < hold
	}
}
