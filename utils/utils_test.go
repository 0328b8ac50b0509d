package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFileTail(t *testing.T) {
	t.Parallel()

	filePath := filepath.Join(t.TempDir(), "tail.log")
	require.NoError(t, os.WriteFile(filePath, []byte("0123456789"), 0644))

	testCases := []struct {
		name     string
		maxLen   int
		expected string
	}{
		{
			name:     "whole file when maxLen is zero",
			maxLen:   0,
			expected: "0123456789",
		},
		{
			name:     "whole file when maxLen exceeds size",
			maxLen:   100,
			expected: "0123456789",
		},
		{
			name:     "tail only",
			maxLen:   4,
			expected: "6789",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			data, err := ReadFileTail(filePath, tc.maxLen)
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, string(data))
		})
	}
}

func TestReadFileTail_MissingFile(t *testing.T) {
	t.Parallel()

	data, err := ReadFileTail(filepath.Join(t.TempDir(), "does-not-exist.log"), 0)
	assert.Error(t, err)
	assert.Nil(t, data)
}
