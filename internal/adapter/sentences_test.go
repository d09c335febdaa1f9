package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "mutatest.dev/pkg/mutatest/internal/model"
)

func TestLoadSentences(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    []string
	}{
		{
			name:    "plain text lines",
			file:    "inputs.txt",
			content: "the quick brown fox\n\n  the lazy dog  \n",
			want:    []string{"the quick brown fox", "the lazy dog"},
		},
		{
			name:    "yaml list",
			file:    "inputs.yaml",
			content: "- the quick brown fox\n- ''\n- the lazy dog\n",
			want:    []string{"the quick brown fox", "the lazy dog"},
		},
		{
			name:    "json list",
			file:    "inputs.json",
			content: `["a cat sat on the mat", "upload the file"]`,
			want:    []string{"a cat sat on the mat", "upload the file"},
		},
		{
			name:    "empty file",
			file:    "empty.txt",
			content: "",
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			got, err := LoadSentences(m.Path(path))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadSentences_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadSentences(m.Path(filepath.Join(dir, "missing.txt")))
	require.Error(t, err)

	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("key: value\n"), 0o600))

	_, err = LoadSentences(m.Path(path))
	require.Error(t, err)
}
