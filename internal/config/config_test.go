package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"APP_LANG", "LANG", "STORAGE_DRIVER", "DATA_FILE", "LOG_OUTPUT", "SUPPORTED_LANGUAGES"} {
		t.Setenv(key, "")
	}
	t.Setenv("STORAGE_DRIVER", "FILE")
	t.Setenv("DATA_FILE", "/tmp/book.yaml")
	t.Setenv("SUPPORTED_LANGUAGES", "en, fr ,,")
	t.Setenv("LOG_OUTPUT", "stderr,/tmp/taskbook.log")

	cfg := LoadConfig()

	assert.Equal(t, StorageFile, cfg.StorageDriver)
	assert.Equal(t, "/tmp/book.yaml", cfg.DataFile)
	assert.Equal(t, []string{"en", "fr"}, cfg.SupportedLanguages)
	assert.Equal(t, []string{"stderr", "/tmp/taskbook.log"}, cfg.LogOutput)
	assert.Equal(t, "3306", cfg.DbPort)
}

func TestParseList(t *testing.T) {
	assert.Nil(t, parseList("   "))
	assert.Nil(t, parseList(" , ,"))
	assert.Equal(t, []string{"a", "b"}, parseList("a, b"))
}
