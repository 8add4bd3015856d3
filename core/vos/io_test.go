package vos

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVIOAdapterWrapsStreams(t *testing.T) {
	out := &bytes.Buffer{}
	vio := NewVIOAdapter(strings.NewReader("input"), out, nil)

	_, err := vio.Stdout().Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, "hello", out.String())

	buf := make([]byte, 5)
	n, err := vio.Stdin().Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "input", string(buf[:n]))
}

func TestVIOAdapterNilStreams(t *testing.T) {
	vio := NewVIOAdapter(nil, nil, nil)

	// Writes are discarded.
	n, err := vio.Stderr().Write([]byte("dropped"))
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	// Reads fail.
	_, err = vio.Stdin().Read(make([]byte, 1))
	assert.Error(t, err)
}
