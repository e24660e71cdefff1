package audio

import (
	"errors"
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// ErrUnknownSound indicates a sound id outside the catalog.
var ErrUnknownSound = errors.New("unknown sound")

// note is a sine tone, or a rest when freq is zero.
type note struct {
	freq   float64
	length time.Duration
}

func rest(length time.Duration) note {
	return note{length: length}
}

func repeat(times int, notes ...note) []note {
	out := make([]note, 0, times*len(notes))
	for i := 0; i < times; i++ {
		out = append(out, notes...)
	}
	return out
}

const ms = time.Millisecond

var alarms = map[string][]note{
	"track1": repeat(4, note{880, 120 * ms}, rest(80*ms), note{880, 120 * ms}, rest(300*ms)),
	"track2": {note{1000, 200 * ms}},
	"track3": {note{660, 150 * ms}, rest(50 * ms), note{990, 250 * ms}},
	"track4": repeat(3, note{1318.5, 400 * ms}, rest(150*ms)),
	"track5": {note{523.25, 100 * ms}, note{659.25, 100 * ms}, note{783.99, 220 * ms}},
	"track6": repeat(3, note{440, 90 * ms}, note{330, 90 * ms}, rest(60*ms)),
	"track7": {note{987.77, 80 * ms}, note{1318.51, 320 * ms}},
	"track8": {note{1046.5, 180 * ms}, note{784, 180 * ms}, note{1046.5, 360 * ms}},
	"track9": repeat(2, note{1200, 60 * ms}, rest(60*ms)),
}

// toneGain keeps stacked sines clear of clipping before the volume stage.
const toneGain = -0.6

// Synthesize renders the alarm id at sample rate sr.
func Synthesize(id string, sr beep.SampleRate) (beep.Streamer, error) {
	notes, ok := alarms[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSound, id)
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		samples := sr.N(n.length)
		if n.freq == 0 {
			parts = append(parts, generators.Silence(samples))
			continue
		}
		tone, err := generators.SineTone(sr, n.freq)
		if err != nil {
			return nil, fmt.Errorf("synthesize %s: %w", id, err)
		}
		parts = append(parts, beep.Take(samples, &effects.Gain{Streamer: tone, Gain: toneGain}))
	}
	return beep.Seq(parts...), nil
}

// Length returns the duration of the alarm id.
func Length(id string) time.Duration {
	var total time.Duration
	for _, n := range alarms[id] {
		total += n.length
	}
	return total
}
