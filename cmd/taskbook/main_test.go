package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestEnv(t *testing.T) {
	t.Helper()
	t.Setenv("TRANSLATION_FOLDER", "../../pkg/translator/translation")
	t.Setenv("LOG_LEVEL", "error")
}

func TestRun_InvalidStorageSettings(t *testing.T) {
	setTestEnv(t)
	t.Setenv("STORAGE_DRIVER", "mysql")
	t.Setenv("MYSQL_PARAMS", "parseTime=maybe")

	assert.Equal(t, 1, run())
}

func TestRun_UnreadableTaskBook(t *testing.T) {
	setTestEnv(t)
	path := filepath.Join(t.TempDir(), "taskbook.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tasks: [{kind: chore}]\n"), 0o644))
	t.Setenv("STORAGE_DRIVER", "file")
	t.Setenv("DATA_FILE", path)

	assert.Equal(t, 1, run())
}
