package assets

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-runner/internal/audio"
	"github.com/vovakirdan/tui-runner/internal/core"
)

var (
	// ErrUnknownAsset is returned for names the manifest does not list.
	ErrUnknownAsset = errors.New("assets: unknown asset")
	// ErrNotLoaded is returned for assets that have not finished loading.
	ErrNotLoaded = errors.New("assets: asset not loaded")
)

// loadWorkers bounds concurrent asset loads.
const loadWorkers = 4

// Library holds the loaded assets and reports loading progress.
type Library struct {
	manifest Manifest
	logger   *log.Logger

	mu     sync.RWMutex
	images map[string]*Image
	clips  map[string]*beep.Buffer
	loaded int

	notifyMu    sync.Mutex
	onProgress  func(loaded, total int)
	onAllLoaded func()
	done        chan struct{}
	doneOnce    sync.Once
}

// Option configures a Library.
type Option func(*Library)

// WithLogger sets the logger used for load diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(l *Library) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// OnProgress registers a callback fired once per asset as it finishes loading.
func OnProgress(fn func(loaded, total int)) Option {
	return func(l *Library) { l.onProgress = fn }
}

// OnAllLoaded registers a callback fired exactly once when every asset is loaded.
func OnAllLoaded(fn func()) Option {
	return func(l *Library) { l.onAllLoaded = fn }
}

// NewLibrary creates an empty library for a manifest.
func NewLibrary(m Manifest, opts ...Option) *Library {
	l := &Library{
		manifest: m,
		logger:   log.Default(),
		images:   make(map[string]*Image, len(m.Images)),
		clips:    make(map[string]*beep.Buffer, len(m.Clips)),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadAll loads every asset in the manifest concurrently. Assets already
// loaded are skipped. The first failure cancels the remaining loads.
func (l *Library) LoadAll(ctx context.Context) error {
	if l.Total() == 0 {
		l.finish()
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(loadWorkers)

	for _, name := range sortedKeys(l.manifest.Images) {
		spec := l.manifest.Images[name]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if l.hasImage(name) {
				return nil
			}
			img, err := NewImage(name, spec)
			if err != nil {
				return err
			}
			l.storeImage(name, img)
			return nil
		})
	}

	for _, name := range sortedKeys(l.manifest.Clips) {
		spec := l.manifest.Clips[name]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if l.hasClip(name) {
				return nil
			}
			buf, err := audio.Synthesize(spec, audio.SampleRate)
			if err != nil {
				return fmt.Errorf("assets: clip %q: %w", name, err)
			}
			l.storeClip(name, buf)
			return nil
		})
	}

	return g.Wait()
}

// Total returns the number of assets in the manifest.
func (l *Library) Total() int {
	return l.manifest.Size()
}

// Loaded returns how many assets have finished loading.
func (l *Library) Loaded() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.loaded
}

// Ready reports whether every asset has loaded.
func (l *Library) Ready() bool {
	select {
	case <-l.done:
		return true
	default:
		return false
	}
}

// Done is closed once every asset has loaded.
func (l *Library) Done() <-chan struct{} {
	return l.done
}

// Image returns a loaded image.
func (l *Library) Image(name string) (*Image, error) {
	if _, ok := l.manifest.Images[name]; !ok {
		return nil, fmt.Errorf("%w: image %q", ErrUnknownAsset, name)
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	img, ok := l.images[name]
	if !ok {
		return nil, fmt.Errorf("%w: image %q", ErrNotLoaded, name)
	}
	return img, nil
}

// Bitmap returns a loaded image as a core.Bitmap, or nil when it is
// unknown or not loaded yet. Drawing a nil bitmap is a no-op.
func (l *Library) Bitmap(name string) core.Bitmap {
	img, err := l.Image(name)
	if err != nil {
		return nil
	}
	return img
}

// Clip returns a loaded sound clip.
func (l *Library) Clip(name string) (*beep.Buffer, error) {
	if _, ok := l.manifest.Clips[name]; !ok {
		return nil, fmt.Errorf("%w: clip %q", ErrUnknownAsset, name)
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	buf, ok := l.clips[name]
	if !ok {
		return nil, fmt.Errorf("%w: clip %q", ErrNotLoaded, name)
	}
	return buf, nil
}

// ClipNames returns the names of all loaded clips in sorted order.
func (l *Library) ClipNames() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return sortedKeys(l.clips)
}

func (l *Library) hasImage(name string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.images[name]
	return ok
}

func (l *Library) hasClip(name string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.clips[name]
	return ok
}

func (l *Library) storeImage(name string, img *Image) {
	l.notifyMu.Lock()
	defer l.notifyMu.Unlock()

	l.mu.Lock()
	if _, ok := l.images[name]; ok {
		l.mu.Unlock()
		return
	}
	l.images[name] = img
	l.loaded++
	n := l.loaded
	l.mu.Unlock()

	l.logger.Debug("image loaded", "name", name, "progress", n, "total", l.Total())
	l.notify(n)
}

func (l *Library) storeClip(name string, buf *beep.Buffer) {
	l.notifyMu.Lock()
	defer l.notifyMu.Unlock()

	l.mu.Lock()
	if _, ok := l.clips[name]; ok {
		l.mu.Unlock()
		return
	}
	l.clips[name] = buf
	l.loaded++
	n := l.loaded
	l.mu.Unlock()

	l.logger.Debug("clip loaded", "name", name, "samples", buf.Len(), "progress", n, "total", l.Total())
	l.notify(n)
}

// notify must be called with notifyMu held so callbacks never interleave.
func (l *Library) notify(loaded int) {
	if l.onProgress != nil {
		l.onProgress(loaded, l.Total())
	}
	if loaded == l.Total() {
		l.finish()
	}
}

func (l *Library) finish() {
	l.doneOnce.Do(func() {
		close(l.done)
		l.logger.Debug("all assets loaded", "total", l.Total())
		if l.onAllLoaded != nil {
			l.onAllLoaded()
		}
	})
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
