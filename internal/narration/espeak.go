package narration

import (
	"errors"
	"fmt"
	"math"
	"os/exec"
	"strconv"
	"sync"
)

const (
	espeakBinary      = "espeak-ng"
	espeakDefaultWPM  = 175
	espeakPitchScale  = 50
	espeakVolumeScale = 100
)

// ESpeakSynthesizer speaks through the espeak-ng command line tool. Only one
// utterance runs at a time; Start replaces any utterance in progress.
type ESpeakSynthesizer struct {
	path string

	mu  sync.Mutex
	cmd *exec.Cmd
}

// NewESpeakSynthesizer looks up espeak-ng on PATH. When it is missing the
// returned synthesizer reports itself unsupported.
func NewESpeakSynthesizer() *ESpeakSynthesizer {
	path, err := exec.LookPath(espeakBinary)
	if err != nil {
		path = ""
	}
	return &ESpeakSynthesizer{path: path}
}

func (s *ESpeakSynthesizer) Supported() bool { return s.path != "" }

func (s *ESpeakSynthesizer) Start(script Script) (<-chan error, error) {
	if !s.Supported() {
		return nil, ErrUnsupported
	}
	if script.Text == "" {
		return nil, ErrEmptyScript
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.killLocked()

	cmd := exec.Command(s.path, espeakArgs(script)...)
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("starting %s: %w", espeakBinary, err)
	}
	s.cmd = cmd

	done := make(chan error, 1)
	go func() {
		err := cmd.Wait()
		s.mu.Lock()
		stopped := s.cmd != cmd
		if !stopped {
			s.cmd = nil
		}
		s.mu.Unlock()

		var exitErr *exec.ExitError
		if stopped && errors.As(err, &exitErr) {
			err = nil
		}
		done <- err
		close(done)
	}()
	return done, nil
}

func (s *ESpeakSynthesizer) Pause() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cmd == nil {
		return ErrInvalidTransition
	}
	return suspendProcess(s.cmd.Process)
}

func (s *ESpeakSynthesizer) Resume() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cmd == nil {
		return ErrInvalidTransition
	}
	return resumeProcess(s.cmd.Process)
}

func (s *ESpeakSynthesizer) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.killLocked()
	return nil
}

func (s *ESpeakSynthesizer) killLocked() {
	if s.cmd == nil {
		return
	}
	// A suspended process must be continued before it can act on the kill.
	_ = resumeProcess(s.cmd.Process)
	_ = s.cmd.Process.Kill()
	s.cmd = nil
}

// espeakArgs maps voice settings onto espeak-ng flags: rate scales the
// default 175 words per minute, pitch 1 maps to espeak's neutral 50 and
// volume 1 to amplitude 100.
func espeakArgs(script Script) []string {
	voice := "en-us"
	if script.Voice.Lang == "ar-SA" {
		voice = "ar"
	}
	wpm := int(math.Round(espeakDefaultWPM * script.Voice.Rate))
	pitch := int(math.Round(espeakPitchScale * script.Voice.Pitch))
	amp := int(math.Round(espeakVolumeScale * script.Voice.Volume))
	return []string{
		"-v", voice,
		"-s", strconv.Itoa(wpm),
		"-p", strconv.Itoa(clamp(pitch, 0, 99)),
		"-a", strconv.Itoa(clamp(amp, 0, 200)),
		"--", script.Text,
	}
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

var _ Synthesizer = (*ESpeakSynthesizer)(nil)
