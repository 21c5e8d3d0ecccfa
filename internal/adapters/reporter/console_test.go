package reporter

import (
	"bytes"
	"testing"

	"github.com/GabrielNunesIT/go-libs/logger"
	"github.com/stretchr/testify/assert"
)

func TestConsoleWriteLine(t *testing.T) {
	var out, logs bytes.Buffer
	c := NewConsole(&out, logger.NewConsoleLogger(&logs), false)

	c.WriteLine("GET /ping")
	c.WriteLine("")

	assert.Equal(t, "GET /ping\n\n", out.String())
}

func TestConsoleVerbose(t *testing.T) {
	var out, quietLogs, loudLogs bytes.Buffer

	NewConsole(&out, logger.NewConsoleLogger(&quietLogs), false).Verbosef("Resolving %s", "GET /ping")
	NewConsole(&out, logger.NewConsoleLogger(&loudLogs), true).Verbosef("Resolving %s", "GET /ping")

	assert.Empty(t, quietLogs.String())
	assert.Contains(t, loudLogs.String(), "Resolving GET /ping")
	assert.Empty(t, out.String())
}

func TestConsoleErrorf(t *testing.T) {
	var out, logs bytes.Buffer
	NewConsole(&out, logger.NewConsoleLogger(&logs), false).Errorf("endpoint %s not found", "GET /x")

	assert.Contains(t, logs.String(), "endpoint GET /x not found")
	assert.Empty(t, out.String())
}
