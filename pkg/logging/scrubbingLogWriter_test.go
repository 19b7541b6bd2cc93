package logging

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mosaiq/go-import-framework/pkg/configuration"
)

type mockWriter struct {
	written []byte
}

func (m *mockWriter) Write(p []byte) (n int, err error) {
	m.written = p
	return len(p), nil
}

func (m *mockWriter) WriteLevel(_ zerolog.Level, p []byte) (n int, err error) {
	m.written = p
	return len(p), nil
}

func TestScrubbingWriter_Write(t *testing.T) {
	mockWriter := &mockWriter{}
	config := configuration.NewInMemory()
	config.Set(configuration.AUTHENTICATION_TOKEN, "password")

	writer := NewScrubbingWriter(mockWriter, GetScrubDictFromConfig(config))

	n, err := writer.Write([]byte("password"))

	assert.Nil(t, err)
	assert.Equal(t, len("password"), n)

	require.Equal(t, "***", string(mockWriter.written), "password should be scrubbed")
}

func TestScrubbingWriter_WriteLevel(t *testing.T) {
	s := []byte("password")

	config := configuration.NewInMemory()
	config.Set(configuration.AUTHENTICATION_TOKEN, "password")

	mockWriter := &mockWriter{}
	writer := NewScrubbingWriter(mockWriter, GetScrubDictFromConfig(config))

	n, err := writer.WriteLevel(zerolog.InfoLevel, s)
	assert.Nil(t, err)
	assert.Equal(t, len(s), n)

	require.Equal(t, "***", string(mockWriter.written), "password should be scrubbed")
}

func TestScrubbingIoWriter(t *testing.T) {
	scrubDict := getDefaultDict()
	addTermToDict("password", 0, scrubDict)
	addTermToDict("session", 0, scrubDict)

	pattern := "%s for my account, including my %s"
	patternWithSecret := fmt.Sprintf(pattern, "password", "session")
	patternWithMaskedSecret := fmt.Sprintf(pattern, redactMask, redactMask)

	bufioWriter := bytes.NewBufferString("")
	writer := NewScrubbingIoWriter(bufioWriter, scrubDict)

	// invoke method under test
	n, err := writer.Write([]byte(patternWithSecret))
	assert.Nil(t, err)
	assert.Equal(t, len(patternWithSecret), n)
	require.Equal(t, patternWithMaskedSecret, bufioWriter.String(), "password should be scrubbed")
}

func TestScrubbingIoWriter_AddRemoveTerm(t *testing.T) {
	bufioWriter := bytes.NewBufferString("")
	writer := NewScrubbingIoWriter(bufioWriter, ScrubbingDict{})

	scrubbingWriter, ok := writer.(ScrubbingLogWriter)
	require.True(t, ok)

	scrubbingWriter.AddTerm("hidden", 0)
	_, err := writer.Write([]byte("this stays hidden"))
	assert.Nil(t, err)
	assert.Equal(t, "this stays "+redactMask, bufioWriter.String())

	bufioWriter.Reset()
	scrubbingWriter.RemoveTerm("hidden")
	_, err = writer.Write([]byte("this stays hidden"))
	assert.Nil(t, err)
	assert.Equal(t, "this stays hidden", bufioWriter.String())
}

func TestScrubFunction(t *testing.T) {
	t.Run("scrub url credentials", func(t *testing.T) {
		input := "abc http://a:b@host.com asdf \nabc https://a:b@host.com asdf"
		expected := "abc http:***host.com asdf \nabc https:***host.com asdf"
		dict := addMandatoryMasking(ScrubbingDict{})

		actual := scrub([]byte(input), dict)
		assert.Equal(t, expected, string(actual))
	})

	t.Run("dont scrub urls without creds", func(t *testing.T) {
		input := "abc http://host.com asdf \nabc https://a:b@host.com asdf"
		expected := "abc http://host.com asdf \nabc https:***host.com asdf"
		dict := addMandatoryMasking(ScrubbingDict{})

		actual := scrub([]byte(input), dict)
		assert.Equal(t, expected, string(actual))
	})

	t.Run("scrub api key header", func(t *testing.T) {
		input := "request header: map[X-Api-Key:[abcdef123456] User-Agent:[mosaiq-import/1.0.0]]"
		dict := addMandatoryMasking(ScrubbingDict{})

		actual := scrub([]byte(input), dict)
		assert.NotContains(t, string(actual), "abcdef123456")
		assert.Contains(t, string(actual), redactMask)
	})

	t.Run("scrub token env assignment", func(t *testing.T) {
		input := "environment: MOSAIQ_API_TOKEN=abcdef123456"
		dict := addMandatoryMasking(ScrubbingDict{})

		actual := scrub([]byte(input), dict)
		assert.NotContains(t, string(actual), "abcdef123456")
	})

	t.Run("scrub token json field", func(t *testing.T) {
		input := `{"token":"abcdef123456","name":"ds0"}`
		dict := addMandatoryMasking(ScrubbingDict{})

		actual := scrub([]byte(input), dict)
		assert.NotContains(t, string(actual), "abcdef123456")
		assert.Contains(t, string(actual), "ds0")
	})

	t.Run("scrub literal terms with regex characters", func(t *testing.T) {
		dict := ScrubbingDict{}
		addTermToDict("to(ke)n+", 0, dict)

		actual := scrub([]byte("my secret is to(ke)n+ here"), dict)
		assert.Equal(t, "my secret is "+redactMask+" here", string(actual))
	})
}
