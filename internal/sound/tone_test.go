package sound

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/elmarchena/pizzaloca/internal/domain"
)

func TestSynthesizeLength(t *testing.T) {
	spec := toneSpec{freq: 440, dur: 100 * time.Millisecond}
	pcm := synthesize(spec)

	wantSamples := sampleRate / 10
	if len(pcm) != wantSamples*2 {
		t.Fatalf("pcm length = %d bytes, want %d", len(pcm), wantSamples*2)
	}
}

// The fade envelope keeps the buffer edges silent and the middle loud.
func TestSynthesizeEnvelope(t *testing.T) {
	pcm := synthesize(toneSpec{freq: 440, dur: 100 * time.Millisecond})
	samples := len(pcm) / 2

	first := int16(binary.LittleEndian.Uint16(pcm[0:2]))
	last := int16(binary.LittleEndian.Uint16(pcm[(samples-1)*2:]))
	if first != 0 || last != 0 {
		t.Errorf("edges not faded: first=%d last=%d", first, last)
	}

	peak := int16(0)
	for i := 0; i < samples; i++ {
		s := int16(binary.LittleEndian.Uint16(pcm[i*2:]))
		if s > peak {
			peak = s
		}
	}
	if peak < 1000 {
		t.Errorf("tone too quiet, peak=%d", peak)
	}
}

func TestEveryCueHasTone(t *testing.T) {
	cues := []domain.Cue{
		domain.CueDough, domain.CueIngredient, domain.CueOven,
		domain.CueSuccess, domain.CueFail, domain.CueCustomer, domain.CueCash,
	}
	for _, cue := range cues {
		if _, ok := cueTones[cue]; !ok {
			t.Errorf("cue %q has no tone", cue)
		}
	}
}
