// Package speech plays vocabulary words aloud through a local synthesizer.
package speech

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
	"sync"
)

// ErrUnsupported is returned when no synthesizer is available.
var ErrUnsupported = errors.New("speech synthesis is not supported on this system")

// Speaker plays text aloud without blocking. done, when non-nil, is called
// once playback ends or is interrupted by Stop. An utterance replaced by a
// later Speak never calls its done.
type Speaker interface {
	Speak(text string, done func()) error
	Available() bool
}

// Config selects and tunes the synthesizer.
type Config struct {
	Enabled bool
	// Command overrides detection; one of espeak-ng, espeak, say, or a path
	// to one of them.
	Command string
	// Rate is relative to the synthesizer default (1.0).
	Rate float64
	// Voice is passed to espeak as -v.
	Voice string
}

const (
	defaultWordsPerMinute = 175
	defaultVoice          = "en-us"
)

// candidates are tried in order when Config.Command is empty.
var candidates = []string{"espeak-ng", "espeak", "say"}

// ExecSpeaker runs a synthesizer process per utterance. A new utterance
// cancels the one still playing.
type ExecSpeaker struct {
	path string
	args func(text string) []string

	command func(ctx context.Context, name string, args ...string) *exec.Cmd

	mu     sync.Mutex
	cancel context.CancelFunc
	gen    uint64
}

// NewExecSpeaker locates a synthesizer on PATH.
func NewExecSpeaker(cfg Config) (*ExecSpeaker, error) {
	return newExecSpeaker(cfg, exec.LookPath)
}

func newExecSpeaker(cfg Config, lookPath func(string) (string, error)) (*ExecSpeaker, error) {
	if !cfg.Enabled {
		return nil, ErrUnsupported
	}
	names := candidates
	if cfg.Command != "" {
		names = []string{cfg.Command}
	}
	for _, name := range names {
		path, err := lookPath(name)
		if err != nil {
			continue
		}
		return &ExecSpeaker{
			path:    path,
			args:    argsFor(name, cfg),
			command: exec.CommandContext,
		}, nil
	}
	return nil, fmt.Errorf("looking for %v: %w", names, ErrUnsupported)
}

func argsFor(name string, cfg Config) func(string) []string {
	rate := cfg.Rate
	if rate <= 0 {
		rate = 1
	}
	wpm := strconv.Itoa(int(defaultWordsPerMinute * rate))
	voice := cfg.Voice
	if voice == "" {
		voice = defaultVoice
	}

	switch filepath.Base(name) {
	case "say":
		return func(text string) []string { return []string{"-r", wpm, "--", text} }
	default:
		return func(text string) []string { return []string{"-v", voice, "-s", wpm, "--", text} }
	}
}

func (s *ExecSpeaker) Available() bool { return s != nil }

// Speak starts playback and returns immediately.
func (s *ExecSpeaker) Speak(text string, done func()) error {
	if s == nil {
		return ErrUnsupported
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.cancel = cancel
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	cmd := s.command(ctx, s.path, s.args(text)...)
	if err := cmd.Start(); err != nil {
		cancel()
		return fmt.Errorf("starting %s: %w", filepath.Base(s.path), err)
	}

	go func() {
		_ = cmd.Wait()
		cancel()
		s.mu.Lock()
		superseded := s.gen != gen
		s.mu.Unlock()
		if done != nil && !superseded {
			done()
		}
	}()
	return nil
}

// Stop interrupts the current utterance, if any.
func (s *ExecSpeaker) Stop() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// Unavailable is the Speaker used when no synthesizer could be found.
type Unavailable struct{}

func (Unavailable) Speak(string, func()) error { return ErrUnsupported }
func (Unavailable) Available() bool            { return false }

// New returns an ExecSpeaker, or Unavailable together with the reason.
func New(cfg Config) (Speaker, error) {
	sp, err := NewExecSpeaker(cfg)
	if err != nil {
		return Unavailable{}, err
	}
	return sp, nil
}
