package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	streamwire "github.com/lex00/streamwire-aws-go"
)

func TestNewSynthCmd(t *testing.T) {
	cmd := newSynthCmd()

	assert.Equal(t, "synth <config>", cmd.Use)
	assert.NotEmpty(t, cmd.Short)

	formatFlag := cmd.Flags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "json", formatFlag.DefValue)

	require.NotNil(t, cmd.Flags().Lookup("output"))
	require.NotNil(t, cmd.Flags().Lookup("json"))
}

func TestRunSynth_FailureReturnsError(t *testing.T) {
	cfgPath := writeConfig(t, `
name: Clickstream
bucket_arn: arn:aws:s3:::clickstream-archive
disable_logging: true
log_group: existing-group
`)

	err := runSynth(cfgPath, "json", "", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "synth failed")
}

func TestOutputSynthResult_FailureEnvelope(t *testing.T) {
	result := streamwire.SynthResult{
		Success: false,
		Errors:  []string{"synthesis failed: logging is disabled but a log group was supplied"},
	}

	err := outputSynthResult(result, "json", "", true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "synth failed")
}

func TestOutputSynthResult_SuccessEnvelope(t *testing.T) {
	result := streamwire.SynthResult{
		Success: true,
		Template: &streamwire.Template{
			AWSTemplateFormatVersion: "2010-09-09",
			Resources:                map[string]streamwire.ResourceDef{},
		},
		Resources: []string{},
	}

	require.NoError(t, outputSynthResult(result, "json", "", true))
}
