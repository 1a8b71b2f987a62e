package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseUniform(t *testing.T) {
	x, y, err := parseUniform("3")
	require.NoError(t, err)
	require.Equal(t, 3, x)
	require.Equal(t, 3, y)

	x, y, err = parseUniform("4:2")
	require.NoError(t, err)
	require.Equal(t, 4, x)
	require.Equal(t, 2, y)

	for _, bad := range []string{"", "a", "4:b", ":2"} {
		_, _, err = parseUniform(bad)
		require.Error(t, err, "input %q", bad)
	}
}

func TestParseILF(t *testing.T) {
	low, high, err := parseILF("1.2:1.8")
	require.NoError(t, err)
	require.Equal(t, 1.2, low)
	require.Equal(t, 1.8, high)

	for _, bad := range []string{"1.5", "x:1.8", "1.2:y", ""} {
		_, _, err = parseILF(bad)
		require.Error(t, err, "input %q", bad)
	}
}
