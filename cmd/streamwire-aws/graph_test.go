package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGraphCmd(t *testing.T) {
	cmd := newGraphCmd()

	assert.Equal(t, "graph <config>", cmd.Use)
	assert.NotEmpty(t, cmd.Short)

	flag := cmd.Flags().Lookup("format")
	require.NotNil(t, flag)
	assert.Equal(t, "dot", flag.DefValue)
}

func TestRunGraph_UnknownFormat(t *testing.T) {
	cfgPath := writeConfig(t, `
name: Clickstream
bucket_arn: arn:aws:s3:::clickstream-archive
`)

	err := runGraph(cfgPath, "png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestRunGraph_MissingConfig(t *testing.T) {
	err := runGraph("/nonexistent/stream.yaml", "dot")
	require.Error(t, err)
}
