package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerLogQuietSuppresses(t *testing.T) {
	var stdout bytes.Buffer
	var stderr bytes.Buffer

	logger := New(&stdout, &stderr, true, false)
	logger.Log("parsed 3 files", false)

	assert.Empty(t, stdout.String())
	assert.Empty(t, stderr.String())
}

func TestLoggerLogForceShowBypassesQuiet(t *testing.T) {
	var stdout bytes.Buffer
	var stderr bytes.Buffer

	logger := New(&stdout, &stderr, true, false)
	logger.Log("TOTAL", true)

	assert.Equal(t, "TOTAL\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestLoggerLogBypassesQuietWhenDebugEnabled(t *testing.T) {
	var stdout bytes.Buffer
	var stderr bytes.Buffer

	logger := New(&stdout, &stderr, true, true)
	logger.Log("parsed 3 files", false)

	assert.Equal(t, "parsed 3 files\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestLoggerDebugWritesToStdoutWhenEnabled(t *testing.T) {
	var stdout bytes.Buffer
	var stderr bytes.Buffer

	logger := New(&stdout, &stderr, false, true)
	logger.Debug("skipping malformed record")

	assert.Equal(t, "skipping malformed record\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestLoggerDebugDoesNotWriteWhenDisabled(t *testing.T) {
	var stdout bytes.Buffer
	var stderr bytes.Buffer

	logger := New(&stdout, &stderr, false, false)
	logger.Debug("skipping malformed record")

	assert.Empty(t, stdout.String())
	assert.Empty(t, stderr.String())
}

func TestLoggerErrorAlwaysWritesToStderr(t *testing.T) {
	var stdout bytes.Buffer
	var stderr bytes.Buffer

	logger := New(&stdout, &stderr, true, false)
	logger.Error("file missing")

	assert.Empty(t, stdout.String())
	assert.Equal(t, "file missing\n", stderr.String())
}

func TestLoggerErrorfAlwaysWritesToStderr(t *testing.T) {
	var stdout bytes.Buffer
	var stderr bytes.Buffer

	logger := New(&stdout, &stderr, true, false)
	logger.Errorf("file %s missing", "coverage.lcov")

	assert.Empty(t, stdout.String())
	assert.Equal(t, "file coverage.lcov missing", stderr.String())
}
