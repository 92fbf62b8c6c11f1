package sound

import (
	"bytes"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/elmarchena/pizzaloca/internal/domain"
	"github.com/elmarchena/pizzaloca/internal/logger"
)

// Compile-time interface check.
var _ domain.Sound = (*Player)(nil)

// Player plays cues through oto. Playback is fire-and-forget; each cue
// runs on its own goroutine and game logic never waits on it.
type Player struct {
	ctx *oto.Context
	log *logger.Logger
	pcm map[domain.Cue][]byte
}

// NewPlayer creates an audio player. Initializes the system audio
// context and pre-renders every cue. Returns an error if the audio
// device is unavailable; callers fall back to NoOp.
func NewPlayer(log *logger.Logger) (*Player, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: channelCount,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, readyChan, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}
	<-readyChan

	pcm := make(map[domain.Cue][]byte, len(cueTones))
	for cue, spec := range cueTones {
		pcm[cue] = synthesize(spec)
	}

	log.Debug("audio player initialized (rate=%d, channels=%d, cues=%d)", sampleRate, channelCount, len(pcm))
	return &Player{ctx: ctx, log: log, pcm: pcm}, nil
}

// Play starts the cue's tone and returns immediately. Unknown cues are
// logged and dropped.
func (p *Player) Play(cue domain.Cue) {
	data, ok := p.pcm[cue]
	if !ok {
		p.log.Warn("no tone for cue %q", cue)
		return
	}

	go func() {
		player := p.ctx.NewPlayer(bytes.NewReader(data))
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		if err := player.Close(); err != nil {
			p.log.Error("closing cue player: %v", err)
		}
	}()
}
