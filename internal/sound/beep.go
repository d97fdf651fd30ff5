package sound

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Beep plays synthesized audio through the local speaker.
type Beep struct {
	mu    sync.Mutex
	mixer *beep.Mixer
	music *beep.Ctrl
	cache map[string][]float64
}

// NewBeep initializes the speaker and returns a player backed by it.
func NewBeep() (*Beep, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}

	b := &Beep{
		mixer: &beep.Mixer{},
		cache: make(map[string][]float64),
	}
	speaker.Play(b.mixer)
	return b, nil
}

// Load renders and caches the named cue without playing it.
func (b *Beep) Load(name string) error {
	_, err := b.cue(name)
	return err
}

// Play starts the named cue, rendering and caching its samples on first use.
func (b *Beep) Play(name string) error {
	buf, err := b.cue(name)
	if err != nil {
		return err
	}

	speaker.Lock()
	b.mixer.Add(&bufStreamer{buf: buf})
	speaker.Unlock()
	return nil
}

// cue returns the cached sample buffer for name, synthesizing it on demand.
func (b *Beep) cue(name string) ([]float64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if buf, ok := b.cache[name]; ok {
		return buf, nil
	}
	render, ok := cues[name]
	if !ok {
		return nil, fmt.Errorf("unknown sound %q", name)
	}
	buf := render()
	b.cache[name] = buf
	return buf, nil
}

// StartMusic begins the looping background theme, or resumes it if it was
// already started.
func (b *Beep) StartMusic() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.music != nil {
		speaker.Lock()
		b.music.Paused = false
		speaker.Unlock()
		return
	}

	ctrl := &beep.Ctrl{Streamer: newThemeStreamer()}
	b.music = ctrl
	speaker.Lock()
	b.mixer.Add(ctrl)
	speaker.Unlock()
}

// StopMusic ends the theme for good. Cues keep working.
func (b *Beep) StopMusic() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.music == nil {
		return
	}
	speaker.Lock()
	// A nil streamer drains immediately, so the mixer drops the ctrl
	b.music.Streamer = nil
	speaker.Unlock()
	b.music = nil
}

// Close stops all playback.
func (b *Beep) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.music = nil
	speaker.Clear()
}

// bufStreamer streams a mono sample buffer once, then reports drained.
type bufStreamer struct {
	buf []float64
	pos int
}

func (s *bufStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.buf) {
		return 0, false
	}
	for i := range samples {
		if s.pos >= len(s.buf) {
			return i, true
		}
		v := s.buf[s.pos]
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
	}
	return len(samples), true
}

func (s *bufStreamer) Err() error {
	return nil
}

// themeStreamer loops a pre-rendered melody forever. Looping internally keeps
// it a plain Streamer, which is all beep.Ctrl needs.
type themeStreamer struct {
	buf []float64
	pos int
}

func newThemeStreamer() *themeStreamer {
	return &themeStreamer{buf: renderTheme()}
}

func (s *themeStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		v := s.buf[s.pos]
		samples[i][0] = v
		samples[i][1] = v
		s.pos = (s.pos + 1) % len(s.buf)
	}
	return len(samples), true
}

func (s *themeStreamer) Err() error {
	return nil
}
