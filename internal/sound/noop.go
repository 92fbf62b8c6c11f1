package sound

import (
	"github.com/elmarchena/pizzaloca/internal/domain"
	"github.com/elmarchena/pizzaloca/internal/logger"
)

// Compile-time interface check.
var _ domain.Sound = (*NoOp)(nil)

// NoOp is a sound sink that does nothing. Used with -no-sound and when
// the audio device fails to initialize.
type NoOp struct {
	log *logger.Logger
}

// NewNoOp creates a silent sound sink.
func NewNoOp(log *logger.Logger) *NoOp {
	return &NoOp{log: log}
}

// Play does nothing.
func (n *NoOp) Play(cue domain.Cue) {
	n.log.Debug("sound no-op: would play %q", cue)
}
