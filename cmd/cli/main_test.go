package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmdRejectsUnreadableConfigFile(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs([]string{
		"--config", "does-not-exist.yaml",
		"escorts", "--states", "VA", "--width", `14'3"`,
	})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
	assert.Empty(t, out.String())
}

func TestRootCmdEscortsWithDefaultConfig(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs([]string{
		"escorts", "--states", "Virginia", "--width", `14'3"`,
	})

	require.NoError(t, cmd.Execute())

	var results []struct {
		State              string
		EscortRequirements string
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "Virginia", results[0].State)
	assert.Equal(t, "1 Lead Car", results[0].EscortRequirements)
}
