// Package audio plays completion alerts: synthesized alarm tones, a user
// supplied sound file or spoken text.
package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/vorbis"
	"github.com/gopxl/beep/wav"

	"studydash/internal/core/model"
	"studydash/internal/logging"
)

// SampleRate is the mixer rate used for synthesized tones.
const SampleRate beep.SampleRate = 44100

// MinVolume is the level in dB at and below which playback is muted.
const MinVolume = -40.0

// ErrUnsupportedFormat indicates a custom sound file beep cannot decode.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// Output receives ready-to-play streams.
type Output interface {
	Play(s beep.Streamer)
}

// Speech reads text aloud.
type Speech interface {
	Speak(text string) error
}

type speakerOutput struct{}

func (speakerOutput) Play(s beep.Streamer) {
	speaker.Play(s)
}

// Player implements model.Notifier.
type Player struct {
	mu         sync.Mutex
	output     Output
	rate       beep.SampleRate
	speech     Speech
	volume     float64
	customPath string
	custom     *beep.Buffer
}

// NewPlayer initialises the system speaker. When the audio device is
// unavailable the player still speaks text but plays no sounds.
func NewPlayer(speech Speech) *Player {
	var output Output = speakerOutput{}
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		logging.ErrorErr(logging.CatAudio, "audio disabled: speaker init failed", err)
		output = nil
	}
	return NewPlayerWithOutput(output, SampleRate, speech)
}

// NewPlayerWithOutput builds a player around an explicit output.
func NewPlayerWithOutput(output Output, rate beep.SampleRate, speech Speech) *Player {
	return &Player{output: output, rate: rate, speech: speech}
}

// Configure applies the volume and custom file from settings.
func (player *Player) Configure(settings model.Settings) {
	player.mu.Lock()
	defer player.mu.Unlock()
	player.volume = settings.Volume
	if settings.CustomSoundPath != player.customPath {
		player.customPath = settings.CustomSoundPath
		player.custom = nil
	}
}

// Notify plays soundID or speaks spokenText. It never blocks on playback.
func (player *Player) Notify(soundID, spokenText string) {
	switch soundID {
	case SoundNone, "":
		return
	case SoundTTS:
		player.speak(spokenText)
		return
	}

	stream, err := player.stream(soundID)
	if err != nil {
		logging.Warn(logging.CatAudio, "cannot play sound", "sound", soundID, "error", err)
		return
	}

	player.mu.Lock()
	defer player.mu.Unlock()
	if player.output == nil {
		return
	}
	player.output.Play(player.withVolumeLocked(stream))
}

func (player *Player) speak(text string) {
	if player.speech == nil {
		return
	}
	if strings.TrimSpace(text) == "" {
		text = model.DefaultSpokenText
	}
	go func() {
		if err := player.speech.Speak(text); err != nil {
			logging.Warn(logging.CatAudio, "speech failed", "error", err)
		}
	}()
}

func (player *Player) stream(soundID string) (beep.Streamer, error) {
	if soundID != SoundCustom {
		return Synthesize(soundID, player.rate)
	}

	player.mu.Lock()
	defer player.mu.Unlock()
	if player.custom == nil {
		if player.customPath == "" {
			return nil, fmt.Errorf("custom sound: no file configured")
		}
		buffer, err := LoadFile(player.customPath)
		if err != nil {
			return nil, err
		}
		player.custom = buffer
	}

	buffered := player.custom.Streamer(0, player.custom.Len())
	if rate := player.custom.Format().SampleRate; rate != player.rate {
		return beep.Resample(4, rate, player.rate, buffered), nil
	}
	return buffered, nil
}

func (player *Player) withVolumeLocked(stream beep.Streamer) beep.Streamer {
	return &effects.Volume{
		Streamer: stream,
		Base:     10,
		Volume:   player.volume / 20,
		Silent:   player.volume <= MinVolume,
	}
}

// LoadFile decodes an .ogg or .wav file fully into memory.
func LoadFile(path string) (*beep.Buffer, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sound %s: %w", path, err)
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ogg", ".oga":
		streamer, format, err = vorbis.Decode(file)
	case ".wav":
		streamer, format, err = wav.Decode(file)
	default:
		_ = file.Close()
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("decode sound %s: %w", path, err)
	}
	defer streamer.Close()

	buffer := beep.NewBuffer(format)
	buffer.Append(streamer)
	logging.Debug(logging.CatAudio, "custom sound loaded", "path", path, "samples", buffer.Len())
	return buffer, nil
}
