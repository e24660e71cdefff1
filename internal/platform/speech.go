package platform

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrSpeechUnsupported indicates no speech synthesizer was found.
var ErrSpeechUnsupported = errors.New("speech synthesis unsupported")

// Speaker reads text aloud.
type Speaker interface {
	Speak(text string) error
}

// NewSpeaker returns the speech command available on the running OS.
func NewSpeaker() Speaker {
	return newSpeaker()
}

type commandSpeaker struct {
	name string
	args func(text string) []string
}

func (speaker commandSpeaker) Speak(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	output, err := exec.Command(speaker.name, speaker.args(text)...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("speak with %s: %w: %s", speaker.name, err, strings.TrimSpace(string(output)))
	}
	return nil
}

type silentSpeaker struct{}

func (silentSpeaker) Speak(string) error {
	return ErrSpeechUnsupported
}

func lookupSpeaker(candidates ...commandSpeaker) Speaker {
	for _, candidate := range candidates {
		if path, err := exec.LookPath(candidate.name); err == nil {
			candidate.name = path
			return candidate
		}
	}
	return silentSpeaker{}
}

func plainArgs(text string) []string {
	return []string{text}
}
