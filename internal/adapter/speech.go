package adapter

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"pinbook/internal/config"
	"pinbook/internal/logger"
)

// commandRecognizer shells out to an external speech-to-text command. The
// command is expected to record from the microphone and print one partial
// transcript per stdout line until it exits.
type commandRecognizer struct {
	command []string

	logger *logger.Logger
}

// NewCommandRecognizer constructs a [SpeechRecognizer] that runs the
// configured external command. An empty command yields a recognizer that
// reports itself unavailable, which the UI surfaces by hiding the
// microphone control.
func NewCommandRecognizer(speechCfg config.ClientSpeech, logger *logger.Logger) SpeechRecognizer {
	return &commandRecognizer{
		command: strings.Fields(speechCfg.Command),
		logger:  logger,
	}
}

// Available implements [SpeechRecognizer]. The capability exists when a
// command is configured and its binary is on PATH.
func (r *commandRecognizer) Available() bool {
	if len(r.command) == 0 {
		return false
	}

	_, err := exec.LookPath(r.command[0])
	return err == nil
}

// Capture implements [SpeechRecognizer]. It runs the command to completion
// and joins its stdout lines with newlines, one line per partial result.
// Canceling ctx stops the recording; partial results captured before the
// stop are returned as the transcript.
func (r *commandRecognizer) Capture(ctx context.Context) (string, error) {
	if !r.Available() {
		return "", ErrSpeechUnsupported
	}

	log := r.logger.With().Str("func", "Capture").Logger()

	cmd := exec.CommandContext(ctx, r.command[0], r.command[1:]...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return "", fmt.Errorf("recognizer stdout pipe: %w", err)
	}
	if err = cmd.Start(); err != nil {
		return "", fmt.Errorf("recognizer start: %w", err)
	}

	var parts []string
	scanner := bufio.NewScanner(stdout)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			parts = append(parts, line)
		}
	}

	transcript := strings.Join(parts, "\n")

	if err = cmd.Wait(); err != nil {
		if ctx.Err() != nil {
			// Cancellation is the normal way to stop recording. Whatever was
			// captured before the stop is still the user's dictation.
			if transcript != "" {
				return transcript, nil
			}
			return "", ctx.Err()
		}
		if strings.Contains(strings.ToLower(stderr.String()), "permission") {
			return "", fmt.Errorf("%w: %s", ErrSpeechPermissionDenied, strings.TrimSpace(stderr.String()))
		}

		log.Warn().Err(err).Str("stderr", stderr.String()).Msg("recognizer exited with an error")
		return "", fmt.Errorf("recognizer exited: %w", err)
	}

	if transcript == "" {
		return "", ErrNoSpeech
	}

	return transcript, nil
}

// nopRecognizer is the recognizer used when speech input is disabled.
type nopRecognizer struct{}

// NewNopRecognizer returns a [SpeechRecognizer] that is never available.
func NewNopRecognizer() SpeechRecognizer {
	return nopRecognizer{}
}

func (nopRecognizer) Available() bool { return false }

func (nopRecognizer) Capture(context.Context) (string, error) {
	return "", ErrSpeechUnsupported
}
