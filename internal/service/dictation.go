package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"pinbook/internal/adapter"
	"pinbook/internal/logger"
)

// DictationState is the phase of the voice-input pipeline.
type DictationState string

const (
	DictationIdle        DictationState = "idle"
	DictationListening   DictationState = "listening"
	DictationTranscribed DictationState = "transcribed"
	DictationCleaning    DictationState = "cleaning"
)

// DictationService runs the voice note pipeline:
// idle → listening → transcribed → cleaning → idle, with every failure
// path landing back in idle. Capture stops when the recognizer finishes or
// the caller cancels ctx; a transcript captured before the stop still goes
// through cleanup.
type DictationService struct {
	recognizer adapter.SpeechRecognizer
	cleaner    adapter.TextCleaner

	mu    sync.Mutex
	state DictationState

	logger *logger.Logger
}

// NewDictationService constructs a DictationService.
func NewDictationService(recognizer adapter.SpeechRecognizer, cleaner adapter.TextCleaner, logger *logger.Logger) *DictationService {
	return &DictationService{
		recognizer: recognizer,
		cleaner:    cleaner,
		state:      DictationIdle,
		logger:     logger,
	}
}

// Available reports whether voice input can be offered at all. The UI hides
// the microphone control when this is false.
func (s *DictationService) Available() bool {
	return s.recognizer.Available()
}

// State returns the current pipeline phase.
func (s *DictationService) State() DictationState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *DictationService) setState(state DictationState) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

// Dictate runs one full capture-and-clean cycle and returns the text to
// append to the note. It blocks until the recognizer finishes or ctx is
// canceled; canceling with nothing captured returns ctx's error with the
// pipeline back in idle.
func (s *DictationService) Dictate(ctx context.Context) (string, error) {
	if !s.recognizer.Available() {
		return "", adapter.ErrSpeechUnsupported
	}

	s.setState(DictationListening)

	transcript, err := s.recognizer.Capture(ctx)
	if err != nil {
		s.setState(DictationIdle)
		return "", fmt.Errorf("capture: %w", err)
	}

	s.setState(DictationTranscribed)
	s.setState(DictationCleaning)

	// Clean is fail-open: on any cleanup failure the raw transcript comes
	// back unchanged.
	cleaned := s.cleaner.Clean(ctx, transcript)

	s.setState(DictationIdle)
	return cleaned, nil
}

// AppendNote merges dictated text into an existing note, separated by a
// newline when the note is non-empty.
func AppendNote(note, addition string) string {
	addition = strings.TrimSpace(addition)
	if addition == "" {
		return note
	}
	if strings.TrimSpace(note) == "" {
		return addition
	}
	return note + "\n" + addition
}
