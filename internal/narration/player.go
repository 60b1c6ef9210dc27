package narration

import (
	"log/slog"
	"sync"
)

type State string

const (
	StateIdle     State = "idle"
	StateSpeaking State = "speaking"
	StatePaused   State = "paused"
)

// Player tracks narration state on top of a Synthesizer:
//
//	idle -> speaking -> paused -> speaking -> idle
//
// Stop returns to idle from any state, and so does the natural end of
// speech. Speak while speaking or paused restarts from the beginning.
type Player struct {
	synth    Synthesizer
	onChange func(State)

	mu    sync.Mutex
	state State
	gen   uint64
}

// NewPlayer creates an idle Player. onChange, if non-nil, is called with the
// new state after every transition, under the Player's lock, so it must not
// call back into the Player.
func NewPlayer(synth Synthesizer, onChange func(State)) *Player {
	return &Player{synth: synth, onChange: onChange, state: StateIdle}
}

func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Supported reports whether the underlying synthesizer can produce speech.
func (p *Player) Supported() bool { return p.synth.Supported() }

// Speak starts reading script aloud. It returns a channel that is closed once
// this utterance is over, whether it finished, failed or was stopped.
func (p *Player) Speak(script Script) (<-chan struct{}, error) {
	if !p.synth.Supported() {
		return nil, ErrUnsupported
	}
	if script.Text == "" {
		return nil, ErrEmptyScript
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != StateIdle {
		_ = p.synth.Stop()
	}
	p.gen++
	gen := p.gen

	result, err := p.synth.Start(script)
	if err != nil {
		p.setLocked(StateIdle)
		return nil, err
	}
	p.setLocked(StateSpeaking)

	finished := make(chan struct{})
	go p.await(gen, result, finished)
	return finished, nil
}

func (p *Player) await(gen uint64, result <-chan error, finished chan<- struct{}) {
	defer close(finished)
	err := <-result

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.gen != gen {
		return
	}
	if err != nil {
		slog.Warn("speech ended with error", "error", err)
	}
	p.setLocked(StateIdle)
}

func (p *Player) Pause() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != StateSpeaking {
		return ErrInvalidTransition
	}
	if err := p.synth.Pause(); err != nil {
		return err
	}
	p.setLocked(StatePaused)
	return nil
}

func (p *Player) Resume() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != StatePaused {
		return ErrInvalidTransition
	}
	if err := p.synth.Resume(); err != nil {
		return err
	}
	p.setLocked(StateSpeaking)
	return nil
}

// Stop cancels any utterance and returns to idle. Stopping an idle Player is
// a no-op.
func (p *Player) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == StateIdle {
		return nil
	}
	p.gen++
	err := p.synth.Stop()
	p.setLocked(StateIdle)
	return err
}

func (p *Player) setLocked(s State) {
	if p.state == s {
		return
	}
	p.state = s
	if p.onChange != nil {
		p.onChange(s)
	}
}
