package errors

import (
	"bytes"
	stdErrors "errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocBuilderError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *DocBuilderError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(CategoryConfig, SeverityFatal, "configuration invalid"),
			expected: "config (fatal): configuration invalid",
		},
		{
			name:     "error with cause",
			err:      Wrap(fmt.Errorf("file not found"), CategoryConfig, SeverityFatal, "failed to load config"),
			expected: "config (fatal): failed to load config: file not found",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if result := test.err.Error(); result != test.expected {
				t.Errorf("Error() = %q, want %q", result, test.expected)
			}
		})
	}
}

func TestDocBuilderError_WithContext(t *testing.T) {
	err := New(CategoryContent, SeverityWarning, "page missing").
		WithContext("ref", "/guide/arduino.md").
		WithContext("locale", "/")

	require.NotNil(t, err.Context)
	assert.Equal(t, "/guide/arduino.md", err.Context["ref"])
	assert.Equal(t, "/", err.Context["locale"])
}

func TestIsCategory(t *testing.T) {
	configErr := ConfigNotFound("docpress.yaml")
	wrapped := fmt.Errorf("startup: %w", configErr)
	standardErr := fmt.Errorf("standard error")

	tests := []struct {
		name     string
		err      error
		category ErrorCategory
		expected bool
	}{
		{"config error matches config category", configErr, CategoryConfig, true},
		{"config error doesn't match content category", configErr, CategoryContent, false},
		{"wrapped config error matches", wrapped, CategoryConfig, true},
		{"standard error doesn't match any category", standardErr, CategoryConfig, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, IsCategory(test.err, test.category))
		})
	}
	assert.Equal(t, CategoryInternal, GetCategory(standardErr))
}

func TestConfigNotFound(t *testing.T) {
	err := ConfigNotFound("./missing/docpress.yaml")
	assert.Equal(t, CategoryConfig, err.Category)
	assert.Equal(t, SeverityFatal, err.Severity)
	assert.Equal(t, "./missing/docpress.yaml", err.Context["path"])
	assert.Contains(t, err.Error(), "./missing/docpress.yaml")
}

func TestConfigInvalid_Unwraps(t *testing.T) {
	cause := fmt.Errorf("yaml: line 3")
	err := ConfigInvalid("docpress.yaml", cause)
	assert.True(t, stdErrors.Is(err, cause))
}

func TestCLIErrorAdapter_ExitCodeFor(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, slog.Default())

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil error", nil, 0},
		{"validation", ValidationFailed("sidebar", "duplicate prefix"), 2},
		{"config", ConfigNotFound("x.yaml"), 7},
		{"wrapped config", fmt.Errorf("boot: %w", ConfigNotFound("x.yaml")), 7},
		{"content", PageNotFound("/guide/a.md", "docs/guide/a.md"), 11},
		{"internal", InternalError("boom", nil), 10},
		{"unclassified", fmt.Errorf("unknown"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, adapter.ExitCodeFor(tt.err))
		})
	}
}

func TestCLIErrorAdapter_FormatError(t *testing.T) {
	quiet := NewCLIErrorAdapter(false, slog.Default())
	verbose := NewCLIErrorAdapter(true, slog.Default())

	assert.Equal(t, "", quiet.FormatError(nil))
	assert.Equal(t, "config file does not exist: a.yaml", quiet.FormatError(ConfigNotFound("a.yaml")))
	assert.Equal(t, "content: page does not exist: /a.md", quiet.FormatError(PageNotFound("/a.md", "docs/a.md")))
	assert.Equal(t, "Error: plain", quiet.FormatError(fmt.Errorf("plain")))
	assert.Equal(t, "config (fatal): config file does not exist: a.yaml", verbose.FormatError(ConfigNotFound("a.yaml")))
}

func TestCLIErrorAdapter_HandleError(t *testing.T) {
	var logBuf, out bytes.Buffer
	adapter := NewCLIErrorAdapter(true, slog.New(slog.NewTextHandler(&logBuf, nil)))
	adapter.out = &out
	code := -1
	adapter.exit = func(c int) { code = c }

	adapter.HandleError(ConfigNotFound("site.yaml"))

	assert.Equal(t, 7, code)
	assert.Contains(t, out.String(), "site.yaml")
	assert.Contains(t, logBuf.String(), "category=config")

	code = -1
	adapter.HandleError(nil)
	assert.Equal(t, -1, code)
}
