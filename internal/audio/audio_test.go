package audio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/wav"
)

// drain streams s to the end and returns the number of samples produced.
func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for i := 0; i < 100000; i++ {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
	t.Fatal("streamer never ended")
	return total
}

func TestCueStreamersAreFinite(t *testing.T) {
	sr := beep.SampleRate(8000)
	for _, kind := range []CueKind{CueCorrect, CueDuplicate, CueWrong, CueGameOver} {
		t.Run(kind.String(), func(t *testing.T) {
			st, err := cueStreamer(sr, kind)
			if err != nil {
				t.Fatalf("cueStreamer() failed: %v", err)
			}

			expected := 0
			for _, n := range cues[kind] {
				expected += sr.N(n.dur)
			}
			if got := drain(t, st); got != expected {
				t.Errorf("cue produced %d samples, expected %d", got, expected)
			}
		})
	}
}

func TestCueDuration(t *testing.T) {
	if d := CueDuration(CueCorrect); d != 180*time.Millisecond {
		t.Errorf("CueDuration(correct) = %v", d)
	}
	if CueDuration(CueGameOver) <= CueDuration(CueWrong) {
		t.Error("game over cue should be the longest")
	}
	if CueDuration(CueKind(99)) != 0 {
		t.Error("unknown cue should be silent")
	}
}

func TestDecodeFileRejectsUnknownFormats(t *testing.T) {
	path := filepath.Join(t.TempDir(), "song.ogg")
	if err := os.WriteFile(path, []byte("not audio"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := decodeFile(path); !errors.Is(err, ErrUnsupported) {
		t.Errorf("decodeFile(.ogg) = %v, expected ErrUnsupported", err)
	}

	if _, _, err := decodeFile(filepath.Join(t.TempDir(), "missing.mp3")); err == nil {
		t.Error("missing file should fail")
	}
}

func TestDecodeFileWav(t *testing.T) {
	sr := beep.SampleRate(22050)
	path := filepath.Join(t.TempDir(), "tone.wav")

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	tone, err := generators.SineTone(sr, 440)
	if err != nil {
		t.Fatal(err)
	}
	format := beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2}
	if err := wav.Encode(f, beep.Take(sr.N(100*time.Millisecond), tone), format); err != nil {
		t.Fatalf("wav.Encode() failed: %v", err)
	}
	f.Close()

	stream, got, err := decodeFile(path)
	if err != nil {
		t.Fatalf("decodeFile() failed: %v", err)
	}
	defer stream.Close()

	if got.SampleRate != sr {
		t.Errorf("SampleRate = %v, expected %v", got.SampleRate, sr)
	}
	if stream.Len() != sr.N(100*time.Millisecond) {
		t.Errorf("Len() = %d, expected %d", stream.Len(), sr.N(100*time.Millisecond))
	}
}

func TestWithVolume(t *testing.T) {
	s := beep.Take(10, beep.Silence(10))
	if got := withVolume(s, 1); got != s {
		t.Error("full volume should not wrap the streamer")
	}

	v, ok := withVolume(s, 0).(*effects.Volume)
	if !ok || !v.Silent {
		t.Error("zero volume should be silent")
	}

	v, ok = withVolume(s, 0.5).(*effects.Volume)
	if !ok || v.Volume != -1 || v.Base != 2 {
		t.Errorf("half volume = %+v, expected base 2 volume -1", v)
	}
}

func TestNewDisabledIsSilent(t *testing.T) {
	p := New(Options{Enabled: false})
	if _, ok := p.(Silent); !ok {
		t.Fatalf("disabled audio should be Silent, got %T", p)
	}
	if err := p.PlayMusic("whatever.mp3"); err != nil {
		t.Errorf("Silent.PlayMusic() = %v", err)
	}
	p.Cue(CueWrong)
	p.Close()
}
