package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTitle(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"h1", "# Arduino\n\nIntro text.\n", "Arduino"},
		{"inline markup", "# Using `NeuroMaster` with **Arduino**\n", "Using NeuroMaster with Arduino"},
		{"first h1 after h2", "## Setup\n\n# Boards\n", "Boards"},
		{"setext", "Arduino Guide\n=============\n", "Arduino Guide"},
		{"frontmatter title wins", "---\ntitle: From Meta\n---\n# Heading\n", "From Meta"},
		{"frontmatter without title", "---\nlang: en\n---\n# Heading\n", "Heading"},
		{"empty frontmatter", "---\n---\n# Heading\n", "Heading"},
		{"crlf frontmatter", "---\r\ntitle: CRLF\r\n---\r\nbody\r\n", "CRLF"},
		{"no heading", "plain paragraph\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Title([]byte(tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTitle_UnclosedFrontmatter(t *testing.T) {
	_, err := Title([]byte("---\ntitle: x\n# Heading\n"))
	assert.ErrorIs(t, err, ErrMissingClosingDelimiter)
}

func TestSplitFrontmatter(t *testing.T) {
	fm, body, had, err := SplitFrontmatter([]byte("---\na: 1\n---\nbody\n"))
	require.NoError(t, err)
	assert.True(t, had)
	assert.Equal(t, "a: 1\n", string(fm))
	assert.Equal(t, "body\n", string(body))

	_, body, had, err = SplitFrontmatter([]byte("body only\n"))
	require.NoError(t, err)
	assert.False(t, had)
	assert.Equal(t, "body only\n", string(body))
}
