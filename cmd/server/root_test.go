package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignite/listmonk-mcp/internal/config"
	"github.com/ignite/listmonk-mcp/internal/pkg/logger"
)

func TestToolsCommandPrintsCatalog(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"tools"})

	require.NoError(t, cmd.Execute())

	var defs []struct {
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &defs))
	assert.Len(t, defs, 28)
	assert.Equal(t, "get_subscribers", defs[0].Name)
}

func TestServeRejectsMissingConfiguration(t *testing.T) {
	t.Setenv("LISTMONK_BASE_URL", "")
	t.Setenv("LISTMONK_API_KEY", "")
	prev := logger.SetOutput(io.Discard)
	t.Cleanup(func() { logger.SetOutput(prev) })

	cmd := newRootCmd()
	cmd.SetArgs([]string{"--transport", "stdio"})

	err := cmd.Execute()
	require.Error(t, err)

	var cfgErr *config.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "base_url", cfgErr.Field)
}

func TestServeRejectsUnknownLogLevel(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--log-level", "chatty"})
	assert.Error(t, cmd.Execute())
}

func TestConfigureLogging(t *testing.T) {
	redact := false
	require.NoError(t, configureLogging(config.LoggingConfig{Level: "debug", RedactPII: &redact}))
	t.Cleanup(func() {
		_ = configureLogging(config.LoggingConfig{Level: "info"})
		logger.SetRedactPII(true)
	})
	assert.Error(t, configureLogging(config.LoggingConfig{Level: "loud"}))
}
