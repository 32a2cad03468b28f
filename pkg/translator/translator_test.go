package translator_test

import (
	"os"
	"path/filepath"
	"testing"

	"taskbook/pkg/translator"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitTranslator_LoadsMessages(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "en.toml"), []byte(`hello = "Hello english"`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fr.toml"), []byte(`hello = "Bonjour"`), 0o644))

	translator.InitTranslator(translator.Config{
		TranslationFolder:  dir,
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageFr},
	})

	msg, err := i18n.NewLocalizer(translator.Translator, translator.LanguageFr).Localize(&i18n.LocalizeConfig{MessageID: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "Bonjour", msg)
}

func TestInitTranslator_InvalidFolder(t *testing.T) {
	translator.InitTranslator(translator.Config{
		TranslationFolder:  "/path/does/not/exist",
		SupportedLanguages: []string{translator.LanguageEn},
	})
	require.NotNil(t, translator.Translator)
}

func TestInitTranslator_ShippedTranslations(t *testing.T) {
	translator.InitTranslator(translator.Config{
		TranslationFolder:  "translation",
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageFr},
	})

	for _, lang := range []string{translator.LanguageEn, translator.LanguageFr} {
		msg, err := i18n.NewLocalizer(translator.Translator, lang).Localize(&i18n.LocalizeConfig{MessageID: "duplicateTask"})
		require.NoError(t, err, lang)
		assert.NotEmpty(t, msg)
	}
}

func TestResolveLanguage(t *testing.T) {
	supported := []string{translator.LanguageEn, translator.LanguageFr}

	assert.Equal(t, translator.LanguageFr, translator.ResolveLanguage("fr", supported))
	assert.Equal(t, translator.LanguageFr, translator.ResolveLanguage("fr_FR.UTF-8", supported))
	assert.Equal(t, translator.LanguageEn, translator.ResolveLanguage("en-GB", supported))
	assert.Equal(t, translator.LanguageEn, translator.ResolveLanguage("", supported))
	assert.Equal(t, translator.LanguageEn, translator.ResolveLanguage("fr", nil))
}
