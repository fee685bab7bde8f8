package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

// CueKind names a feedback sound.
type CueKind int

const (
	CueCorrect CueKind = iota
	CueDuplicate
	CueWrong
	CueGameOver
)

func (k CueKind) String() string {
	switch k {
	case CueCorrect:
		return "correct"
	case CueDuplicate:
		return "duplicate"
	case CueWrong:
		return "wrong"
	case CueGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// note is one tone of a cue. A zero frequency is a rest.
type note struct {
	freq float64
	dur  time.Duration
}

var cues = map[CueKind][]note{
	CueCorrect:   {{660, 70 * time.Millisecond}, {880, 110 * time.Millisecond}},
	CueDuplicate: {{440, 90 * time.Millisecond}, {0, 40 * time.Millisecond}, {440, 90 * time.Millisecond}},
	CueWrong:     {{150, 220 * time.Millisecond}},
	CueGameOver:  {{523, 150 * time.Millisecond}, {392, 150 * time.Millisecond}, {262, 400 * time.Millisecond}},
}

// CueDuration returns how long a cue plays.
func CueDuration(kind CueKind) time.Duration {
	var d time.Duration
	for _, n := range cues[kind] {
		d += n.dur
	}
	return d
}

// cueStreamer synthesizes a cue as a finite sequence of sine tones.
func cueStreamer(sr beep.SampleRate, kind CueKind) (beep.Streamer, error) {
	notes := cues[kind]
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		if n.freq == 0 {
			parts = append(parts, beep.Silence(sr.N(n.dur)))
			continue
		}
		tone, err := generators.SineTone(sr, n.freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(sr.N(n.dur), tone))
	}
	return beep.Seq(parts...), nil
}
