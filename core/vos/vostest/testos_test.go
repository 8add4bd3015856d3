package vostest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestOSChdir(t *testing.T) {
	testOS := NewTestOS()
	require.NoError(t, testOS.Fs.MkdirAll("/home/user/docs", 0755))

	wd, err := testOS.Getwd()
	require.NoError(t, err)
	assert.Equal(t, "/", wd)

	require.NoError(t, testOS.Chdir("/home/user"))

	// Relative paths resolve against the current directory.
	require.NoError(t, testOS.Chdir("docs"))
	wd, _ = testOS.Getwd()
	assert.Equal(t, "/home/user/docs", wd)

	// Failed moves keep the working directory.
	assert.Error(t, testOS.Chdir("/missing"))
	wd, _ = testOS.Getwd()
	assert.Equal(t, "/home/user/docs", wd)
}
