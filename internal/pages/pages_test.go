package pages

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dberrors "git.home.luguber.info/inful/docpress/internal/errors"
	"git.home.luguber.info/inful/docpress/internal/sidebar"
)

func writePage(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestSourcePath(t *testing.T) {
	root := filepath.FromSlash("/site/docs")
	tests := []struct {
		ref  string
		want string
	}{
		{"/guide/arduino.md", "/site/docs/guide/arduino.md"},
		{"/en/guide/arduino", "/site/docs/en/guide/arduino.md"},
		{"/en/guide/arduino.html", "/site/docs/en/guide/arduino.md"},
		{"/guide/", "/site/docs/guide/README.md"},
		{"/../etc/passwd.md", "/site/docs/etc/passwd.md"},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			assert.Equal(t, filepath.FromSlash(tt.want), SourcePath(root, tt.ref))
		})
	}
}

func TestCheck_DefaultSidebar(t *testing.T) {
	root := t.TempDir()
	writePage(t, root, "guide/arduino.md", "# Arduino 入门\n")
	writePage(t, root, "en/guide/arduino.md", "---\ntitle: Arduino\n---\n# Ignored\n")

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	report, err := Check(sidebar.Default(), root, logger)
	require.NoError(t, err)
	require.NoError(t, report.Err())
	require.Len(t, report.Rows, 2)

	assert.Equal(t, "/guide/", report.Rows[0].Prefix)
	assert.Equal(t, "NeuroMaster", report.Rows[0].Group)
	assert.Equal(t, "Arduino 入门", report.Rows[0].Page.Title)
	assert.Equal(t, "Arduino", report.Rows[1].Page.Title)
	assert.Contains(t, logs.String(), "prefix=/guide/")
}

func TestCheck_MissingPage(t *testing.T) {
	root := t.TempDir()
	writePage(t, root, "guide/arduino.md", "# Arduino\n")

	report, err := Check(sidebar.Default(), root, nil)
	require.NoError(t, err)

	failed := report.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, "/en/guide/arduino.md", failed[0].Page.Ref)
	assert.True(t, dberrors.IsCategory(report.Err(), dberrors.CategoryContent))
}

func TestCheck_InvalidSidebar(t *testing.T) {
	_, err := Check(sidebar.Config{{Prefix: "guide"}}, t.TempDir(), nil)
	require.Error(t, err)
	assert.True(t, dberrors.IsCategory(err, dberrors.CategoryValidation))
}
