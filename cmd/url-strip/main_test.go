package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestStripCommand(t *testing.T) {
	out, err := execute(t, "strip", "https://youtube.com/watch?v=dQw4w9WgXcQ&trackerinfo=x")
	require.NoError(t, err)
	assert.Equal(t, "https://youtu.be/dQw4w9WgXcQ\n", out)
}

func TestStripCommandMalformed(t *testing.T) {
	_, err := execute(t, "strip", "foo")
	assert.Error(t, err)
}

func TestDomainsCommand(t *testing.T) {
	out, err := execute(t, "domains")
	require.NoError(t, err)
	assert.Contains(t, out, "twitter.com")
	assert.Contains(t, out, "vm.tiktok.com")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "url-strip")
}
