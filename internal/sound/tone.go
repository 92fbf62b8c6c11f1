// Package sound plays the game's audio cues through the system audio
// device. Cues are short synthesized tones standing in for real
// samples.
package sound

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/elmarchena/pizzaloca/internal/domain"
)

const (
	sampleRate   = 24000
	channelCount = 1
)

// cueTones maps each cue to its oscillator settings.
var cueTones = map[domain.Cue]toneSpec{
	domain.CueDough:      {freq: 220, dur: 90 * time.Millisecond},
	domain.CueIngredient: {freq: 440, dur: 70 * time.Millisecond},
	domain.CueOven:       {freq: 330, dur: 200 * time.Millisecond},
	domain.CueSuccess:    {freq: 660, dur: 160 * time.Millisecond},
	domain.CueFail:       {freq: 150, dur: 250 * time.Millisecond},
	domain.CueCustomer:   {freq: 520, dur: 80 * time.Millisecond},
	domain.CueCash:       {freq: 880, dur: 120 * time.Millisecond},
}

type toneSpec struct {
	freq float64
	dur  time.Duration
}

// synthesize renders a sine tone as signed 16-bit little-endian mono
// PCM. A linear fade in and out over the first and last tenth avoids
// clicks at the buffer edges.
func synthesize(spec toneSpec) []byte {
	samples := int(float64(sampleRate) * spec.dur.Seconds())
	fade := samples / 10
	if fade < 1 {
		fade = 1
	}

	pcm := make([]byte, samples*2)
	for i := 0; i < samples; i++ {
		v := math.Sin(2 * math.Pi * spec.freq * float64(i) / sampleRate)

		env := 1.0
		if i < fade {
			env = float64(i) / float64(fade)
		} else if samples-1-i < fade {
			env = float64(samples-1-i) / float64(fade)
		}

		s := int16(v * env * 0.4 * math.MaxInt16)
		binary.LittleEndian.PutUint16(pcm[i*2:], uint16(s))
	}
	return pcm
}
