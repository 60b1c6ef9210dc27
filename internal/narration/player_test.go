package narration_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/kiranshivaraju/symptomchecker/internal/narration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSynth finishes an utterance only when finish is called.
type fakeSynth struct {
	mu       sync.Mutex
	current  chan error
	started  []narration.Script
	pauses   int
	resumes  int
	stops    int
	startErr error
}

func (f *fakeSynth) Supported() bool { return true }

func (f *fakeSynth) Start(s narration.Script) (<-chan error, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.startErr != nil {
		return nil, f.startErr
	}
	f.started = append(f.started, s)
	f.current = make(chan error, 1)
	return f.current, nil
}

func (f *fakeSynth) Pause() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pauses++
	return nil
}

func (f *fakeSynth) Resume() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resumes++
	return nil
}

func (f *fakeSynth) Stop() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stops++
	if f.current != nil {
		f.current <- nil
		close(f.current)
		f.current = nil
	}
	return nil
}

func (f *fakeSynth) finish(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.current <- err
	close(f.current)
	f.current = nil
}

type stateLog struct {
	mu     sync.Mutex
	states []narration.State
}

func (l *stateLog) record(s narration.State) {
	l.mu.Lock()
	l.states = append(l.states, s)
	l.mu.Unlock()
}

func (l *stateLog) get() []narration.State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]narration.State(nil), l.states...)
}

func script() narration.Script {
	return narration.Script{Text: "Possible Condition: Flu", Voice: narration.VoiceFor("en")}
}

func waitClosed(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("utterance did not finish")
	}
}

func TestPlayer_FullCycle(t *testing.T) {
	synth := &fakeSynth{}
	log := &stateLog{}
	p := narration.NewPlayer(synth, log.record)
	assert.Equal(t, narration.StateIdle, p.State())

	done, err := p.Speak(script())
	require.NoError(t, err)
	assert.Equal(t, narration.StateSpeaking, p.State())

	require.NoError(t, p.Pause())
	assert.Equal(t, narration.StatePaused, p.State())

	require.NoError(t, p.Resume())
	assert.Equal(t, narration.StateSpeaking, p.State())

	synth.finish(nil)
	waitClosed(t, done)
	assert.Equal(t, narration.StateIdle, p.State())

	assert.Equal(t, []narration.State{
		narration.StateSpeaking, narration.StatePaused, narration.StateSpeaking, narration.StateIdle,
	}, log.get())
	assert.Equal(t, 1, synth.pauses)
	assert.Equal(t, 1, synth.resumes)
}

func TestPlayer_InvalidTransitions(t *testing.T) {
	p := narration.NewPlayer(&fakeSynth{}, nil)

	assert.ErrorIs(t, p.Pause(), narration.ErrInvalidTransition)
	assert.ErrorIs(t, p.Resume(), narration.ErrInvalidTransition)

	_, err := p.Speak(script())
	require.NoError(t, err)
	assert.ErrorIs(t, p.Resume(), narration.ErrInvalidTransition)

	require.NoError(t, p.Pause())
	assert.ErrorIs(t, p.Pause(), narration.ErrInvalidTransition)
}

func TestPlayer_StopFromAnyState(t *testing.T) {
	synth := &fakeSynth{}
	p := narration.NewPlayer(synth, nil)

	require.NoError(t, p.Stop())
	assert.Equal(t, narration.StateIdle, p.State())
	assert.Equal(t, 0, synth.stops)

	done, err := p.Speak(script())
	require.NoError(t, err)
	require.NoError(t, p.Stop())
	assert.Equal(t, narration.StateIdle, p.State())
	waitClosed(t, done)

	done, err = p.Speak(script())
	require.NoError(t, err)
	require.NoError(t, p.Pause())
	require.NoError(t, p.Stop())
	assert.Equal(t, narration.StateIdle, p.State())
	waitClosed(t, done)
}

func TestPlayer_SpeakRestartsCurrentUtterance(t *testing.T) {
	synth := &fakeSynth{}
	p := narration.NewPlayer(synth, nil)

	first, err := p.Speak(script())
	require.NoError(t, err)
	second, err := p.Speak(script())
	require.NoError(t, err)

	waitClosed(t, first)
	assert.Equal(t, narration.StateSpeaking, p.State())
	assert.Len(t, synth.started, 2)

	synth.finish(nil)
	waitClosed(t, second)
	assert.Equal(t, narration.StateIdle, p.State())
}

func TestPlayer_SynthErrorEndsInIdle(t *testing.T) {
	synth := &fakeSynth{}
	p := narration.NewPlayer(synth, nil)

	done, err := p.Speak(script())
	require.NoError(t, err)
	synth.finish(errors.New("audio device busy"))
	waitClosed(t, done)
	assert.Equal(t, narration.StateIdle, p.State())
}

func TestPlayer_StartFailure(t *testing.T) {
	synth := &fakeSynth{startErr: errors.New("boom")}
	p := narration.NewPlayer(synth, nil)

	_, err := p.Speak(script())
	require.Error(t, err)
	assert.Equal(t, narration.StateIdle, p.State())
}

func TestPlayer_EmptyScript(t *testing.T) {
	p := narration.NewPlayer(&fakeSynth{}, nil)
	_, err := p.Speak(narration.Script{})
	assert.ErrorIs(t, err, narration.ErrEmptyScript)
	assert.Equal(t, narration.StateIdle, p.State())
}

func TestPlayer_Unsupported(t *testing.T) {
	p := narration.NewPlayer(narration.NoopSynthesizer{}, nil)
	assert.False(t, p.Supported())

	_, err := p.Speak(script())
	assert.ErrorIs(t, err, narration.ErrUnsupported)
	assert.Equal(t, narration.StateIdle, p.State())
	assert.ErrorIs(t, p.Pause(), narration.ErrInvalidTransition)
	assert.NoError(t, p.Stop())
}
