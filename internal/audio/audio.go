// Package audio plays the background music loop and short feedback cues.
// Sound is optional: every failure is logged and the game carries on.
package audio

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

const sampleRate = beep.SampleRate(44100)

// ErrUnsupported is returned for music files that are neither mp3 nor wav.
var ErrUnsupported = errors.New("audio: unsupported format")

// Player is what the game talks to.
type Player interface {
	PlayMusic(path string) error
	Cue(kind CueKind)
	Close()
}

// Options configures New.
type Options struct {
	Enabled bool
	Volume  float64 // 0.0 = silent, 1.0 = full
	Logger  *log.Logger
}

// New returns a speaker-backed player, or a silent one when audio is
// disabled or the output device cannot be opened.
func New(opts Options) Player {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	if !opts.Enabled {
		return Silent{}
	}

	sp := &Speaker{
		logger: logger,
		volume: opts.Volume,
		mixer:  &beep.Mixer{},
	}
	if err := sp.Init(); err != nil {
		logger.Warn("audio disabled", "err", err)
		return Silent{}
	}
	return sp
}

// Silent is a Player that does nothing.
type Silent struct{}

func (Silent) PlayMusic(string) error { return nil }

func (Silent) Cue(CueKind) {}

func (Silent) Close() {}

// Speaker plays through the system audio device.
type Speaker struct {
	mu          sync.Mutex
	logger      *log.Logger
	volume      float64
	mixer       *beep.Mixer
	music       *beep.Ctrl
	musicFile   beep.StreamSeekCloser
	initialized bool
}

// Init opens the audio device and starts the mixer.
func (s *Speaker) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}

	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// PlayMusic loops the mp3 or wav file at path, replacing any music already
// playing. An empty path stops the music.
func (s *Speaker) PlayMusic(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return nil
	}
	s.stopMusicLocked()
	if path == "" {
		return nil
	}

	stream, format, err := decodeFile(path)
	if err != nil {
		return err
	}

	var looped beep.Streamer = beep.Loop(-1, stream)
	if format.SampleRate != sampleRate {
		looped = beep.Resample(4, format.SampleRate, sampleRate, looped)
	}

	ctrl := &beep.Ctrl{Streamer: withVolume(looped, s.volume)}
	speaker.Lock()
	s.mixer.Add(ctrl)
	speaker.Unlock()

	s.music = ctrl
	s.musicFile = stream
	s.logger.Debug("music started", "path", path, "rate", format.SampleRate)
	return nil
}

func (s *Speaker) stopMusicLocked() {
	if s.music != nil {
		speaker.Lock()
		s.music.Paused = true
		s.music.Streamer = nil
		speaker.Unlock()
		s.music = nil
	}
	if s.musicFile != nil {
		s.musicFile.Close()
		s.musicFile = nil
	}
}

// Cue plays a short synthesized sound over the music.
func (s *Speaker) Cue(kind CueKind) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}

	st, err := cueStreamer(sampleRate, kind)
	if err != nil {
		s.logger.Debug("cue skipped", "cue", kind, "err", err)
		return
	}
	speaker.Lock()
	s.mixer.Add(withVolume(st, s.volume))
	speaker.Unlock()
}

// Close stops all sound and releases the device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	s.stopMusicLocked()

	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	s.initialized = false
}

// decodeFile opens an mp3 or wav file, chosen by extension.
func decodeFile(path string) (beep.StreamSeekCloser, beep.Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".mp3" && ext != ".wav" {
		return nil, beep.Format{}, fmt.Errorf("%w: %s", ErrUnsupported, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("audio: cannot open music: %w", err)
	}

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)
	if ext == ".mp3" {
		stream, format, err = mp3.Decode(f)
	} else {
		stream, format, err = wav.Decode(f)
	}
	if err != nil {
		f.Close()
		return nil, beep.Format{}, fmt.Errorf("audio: cannot decode %s: %w", path, err)
	}
	return stream, format, nil
}

// withVolume scales s by a linear volume in [0, 1].
func withVolume(s beep.Streamer, volume float64) beep.Streamer {
	if volume >= 1 {
		return s
	}
	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   math.Log2(math.Max(volume, 1e-6)),
		Silent:   volume <= 0,
	}
}
