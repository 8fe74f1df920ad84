// Package speech models the synthesis and recognition capabilities used for
// accessibility. Both are optional: an absent engine is a normal
// configuration, represented by Noop (synthesis) or a nil Recognizer.
package speech

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Default prosody for announcements.
const (
	DefaultRate  = 0.8
	DefaultPitch = 1.0
)

// Voice describes one synthesis voice offered by an engine.
type Voice struct {
	Lang string
	Name string
}

// Synthesizer speaks text aloud. Speak cancels any in-flight utterance
// before starting the new one.
type Synthesizer interface {
	Speak(text string, rate, pitch float64) error
	Voices() []Voice
}

// Recognizer captures a single spoken phrase per invocation. There is no
// continuous mode; each voice command is one Recognize call.
type Recognizer interface {
	Recognize(ctx context.Context) (string, error)
}

// PreferredVoice picks an English female voice when the engine offers one.
// ok is false when nothing matches and the engine default should be used.
func PreferredVoice(voices []Voice) (v Voice, ok bool) {
	for _, c := range voices {
		if strings.HasPrefix(c.Lang, "en") && strings.Contains(c.Name, "Female") {
			return c, true
		}
	}
	return Voice{}, false
}

// Noop satisfies Synthesizer when no engine is available.
type Noop struct{}

func (Noop) Speak(string, float64, float64) error { return nil }
func (Noop) Voices() []Voice                      { return nil }

// ReaderRecognizer captures a phrase by reading one line of text, standing
// in for a microphone in terminal sessions. An empty line counts as no
// speech detected.
type ReaderRecognizer struct {
	r *bufio.Reader
}

// NewReaderRecognizer takes the caller's buffered reader so that it can
// share an input stream with other prompts without losing buffered bytes.
func NewReaderRecognizer(r *bufio.Reader) *ReaderRecognizer {
	return &ReaderRecognizer{r: r}
}

func (rr *ReaderRecognizer) Recognize(ctx context.Context) (string, error) {
	line, err := rr.r.ReadString('\n')
	phrase := strings.TrimSpace(line)
	if err != nil && phrase == "" {
		return "", err
	}
	if phrase == "" {
		return "", errors.New("no speech detected")
	}
	return phrase, nil
}

// WriterSynthesizer renders utterances as text lines, which is how the
// terminal client "speaks". Writing a new utterance implicitly supersedes
// the previous one, mirroring the cancel-then-speak contract.
type WriterSynthesizer struct {
	mu     sync.Mutex
	w      io.Writer
	voices []Voice
	voice  string
}

// NewWriterSynthesizer builds a synthesizer that writes to w, selecting the
// preferred voice from the offered set once at construction.
func NewWriterSynthesizer(w io.Writer, voices []Voice) *WriterSynthesizer {
	s := &WriterSynthesizer{w: w, voices: voices}
	if v, ok := PreferredVoice(voices); ok {
		s.voice = v.Name
	}
	return s
}

func (s *WriterSynthesizer) Speak(text string, rate, pitch float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := fmt.Fprintf(s.w, "[speech] %s\n", text)
	return err
}

func (s *WriterSynthesizer) Voices() []Voice {
	return s.voices
}

// SelectedVoice reports the voice chosen at construction, empty when the
// engine default is in use.
func (s *WriterSynthesizer) SelectedVoice() string {
	return s.voice
}
