package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deploymenttheory/go-ta1600/internal/testutil"
	"github.com/deploymenttheory/go-ta1600/pkg/app"
)

// execute runs the root command with fresh flag values and returns stdout
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	verbose, quiet, outputFormat, configPath = false, false, "table", ""
	copyDest, copyOverwrite, copySkipDeleted = ".", false, false

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestDirCommand(t *testing.T) {
	path := testutil.SampleImage(t).WriteFile("sample.img")

	out, err := execute(t, "dir", path)
	require.NoError(t, err)
	assert.Contains(t, out, "VOLUME ID:")
	assert.Contains(t, out, "ABCDEF")
	assert.Contains(t, out, "TOTAL ADUS ALLOCATED: 16")
}

func TestLegacyOrder(t *testing.T) {
	path := testutil.SampleImage(t).WriteFile("sample.img")

	t.Run("dir wildcard", func(t *testing.T) {
		out, err := execute(t, path, "dir", "*")
		require.NoError(t, err)
		assert.NotContains(t, out, "VOLUME ID:")
		assert.Contains(t, out, "BAR")
		assert.Contains(t, out, "TOTAL ADUS ALLOCATED: 16")
	})

	t.Run("copy", func(t *testing.T) {
		dest := t.TempDir()
		_, err := execute(t, path, "copy", "FOO.SEQ", "--dest", dest)
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(dest, "FOO.SEQ"))
		require.NoError(t, err)
		assert.Equal(t, testutil.Pattern(1024, 1), data)
	})
}

func TestCommandErrors(t *testing.T) {
	path := testutil.SampleImage(t).WriteFile("sample.img")

	tests := []struct {
		name string
		args []string
		code string
	}{
		{"missing image", []string{}, app.ErrCodeInvalidInput},
		{"missing command", []string{path}, app.ErrCodeInvalidInput},
		{"unknown command", []string{path, "format"}, app.ErrCodeInvalidInput},
		{"unreadable image", []string{"dir", filepath.Join(t.TempDir(), "absent.img")}, app.ErrCodeImageAccess},
		{"file not found", []string{"dir", path, "NOPE.SEQ"}, app.ErrCodeFileNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			var appErr *app.CommonError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.code, appErr.Code)
		})
	}
}

func TestConfigCommand(t *testing.T) {
	out, err := execute(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "owner_width: 14")
	assert.Contains(t, out, "guard_cycles: true")
	assert.Contains(t, out, "available_code_pages:")
}
