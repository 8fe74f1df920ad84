package speech

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferredVoice(t *testing.T) {
	voices := []Voice{
		{Lang: "de-DE", Name: "Anna Female"},
		{Lang: "en-US", Name: "Alex"},
		{Lang: "en-GB", Name: "Serena Female"},
	}

	v, ok := PreferredVoice(voices)
	require.True(t, ok)
	assert.Equal(t, "Serena Female", v.Name, "must be English and Female")

	_, ok = PreferredVoice([]Voice{{Lang: "fr-FR", Name: "Thomas"}})
	assert.False(t, ok)

	_, ok = PreferredVoice(nil)
	assert.False(t, ok)
}

func TestWriterSynthesizer_Speak(t *testing.T) {
	var buf bytes.Buffer
	s := NewWriterSynthesizer(&buf, []Voice{{Lang: "en-US", Name: "Samantha Female"}})

	require.NoError(t, s.Speak("Welcome to Autoscribe.", DefaultRate, DefaultPitch))
	assert.Contains(t, buf.String(), "Welcome to Autoscribe.")
	assert.Equal(t, "Samantha Female", s.SelectedVoice())
}

func TestWriterSynthesizer_NoMatchingVoice(t *testing.T) {
	var buf bytes.Buffer
	s := NewWriterSynthesizer(&buf, nil)
	assert.Empty(t, s.SelectedVoice())
}

func TestNoop(t *testing.T) {
	var s Synthesizer = Noop{}
	require.NoError(t, s.Speak("anything", DefaultRate, DefaultPitch))
	assert.Nil(t, s.Voices())
}

func TestReaderRecognizer(t *testing.T) {
	r := NewReaderRecognizer(bufio.NewReader(strings.NewReader("teacher login\nhello\n")))
	ctx := context.Background()

	phrase, err := r.Recognize(ctx)
	require.NoError(t, err)
	assert.Equal(t, "teacher login", phrase)

	phrase, err = r.Recognize(ctx)
	require.NoError(t, err)
	assert.Equal(t, "hello", phrase)

	_, err = r.Recognize(ctx)
	require.Error(t, err, "exhausted input means no speech")
}

func TestReaderRecognizer_EmptyLine(t *testing.T) {
	r := NewReaderRecognizer(bufio.NewReader(strings.NewReader("\n")))

	_, err := r.Recognize(context.Background())
	require.Error(t, err)
}
