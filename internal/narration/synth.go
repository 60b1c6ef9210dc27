package narration

import "errors"

var (
	ErrUnsupported       = errors.New("speech synthesis not supported")
	ErrInvalidTransition = errors.New("invalid narration state transition")
	ErrEmptyScript       = errors.New("nothing to speak")
)

// Synthesizer is a speech output backend. Start begins speaking and returns a
// channel that receives exactly one value (nil on natural completion) and is
// then closed.
type Synthesizer interface {
	Supported() bool
	Start(script Script) (<-chan error, error)
	Pause() error
	Resume() error
	Stop() error
}

// NoopSynthesizer is used when no speech backend is available.
type NoopSynthesizer struct{}

func (NoopSynthesizer) Supported() bool                    { return false }
func (NoopSynthesizer) Start(Script) (<-chan error, error) { return nil, ErrUnsupported }
func (NoopSynthesizer) Pause() error                       { return ErrUnsupported }
func (NoopSynthesizer) Resume() error                      { return ErrUnsupported }
func (NoopSynthesizer) Stop() error                        { return nil }

var _ Synthesizer = NoopSynthesizer{}
