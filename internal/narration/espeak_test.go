package narration

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEspeakArgs_English(t *testing.T) {
	args := espeakArgs(Script{Text: "hello", Voice: VoiceFor("en")})
	assert.Equal(t, []string{"-v", "en-us", "-s", "158", "-p", "50", "-a", "100", "--", "hello"}, args)
}

func TestEspeakArgs_Arabic(t *testing.T) {
	args := espeakArgs(Script{Text: "مرحبا", Voice: VoiceFor("ar")})
	assert.Equal(t, "ar", args[1])
}

func TestEspeakArgs_Clamps(t *testing.T) {
	args := espeakArgs(Script{Text: "x", Voice: Voice{Lang: "en-US", Rate: 1, Pitch: 3, Volume: 5}})
	assert.Equal(t, "99", args[5])
	assert.Equal(t, "200", args[7])
}

func TestESpeakSynthesizer_Unsupported(t *testing.T) {
	s := &ESpeakSynthesizer{}
	assert.False(t, s.Supported())
	_, err := s.Start(Script{Text: "hello"})
	assert.ErrorIs(t, err, ErrUnsupported)
	assert.ErrorIs(t, s.Pause(), ErrInvalidTransition)
	assert.NoError(t, s.Stop())
}

func TestNewESpeakSynthesizer_MatchesPath(t *testing.T) {
	_, err := exec.LookPath(espeakBinary)
	assert.Equal(t, err == nil, NewESpeakSynthesizer().Supported())
}
