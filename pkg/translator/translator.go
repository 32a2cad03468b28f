package translator

import (
	"path/filepath"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

var Translator *i18n.Bundle

type Config struct {
	TranslationFolder  string
	SupportedLanguages []string // one <lang>.toml file per language
}

const (
	LanguageFr = "fr"
	LanguageEn = "en"
)

func InitTranslator(cfg Config) {
	Translator = i18n.NewBundle(language.English)
	Translator.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, lang := range cfg.SupportedLanguages {
		path := filepath.Join(cfg.TranslationFolder, lang+".toml")
		if _, err := Translator.LoadMessageFile(path); err != nil {
			zap.L().Warn("failed to load translation file", zap.String("file", path), zap.Error(err))
		}
	}
}

// ResolveLanguage picks the supported language closest to the requested
// one, falling back to English.
func ResolveLanguage(requested string, supported []string) string {
	if requested == "" || len(supported) == 0 {
		return LanguageEn
	}

	tags := make([]language.Tag, 0, len(supported))
	names := make([]string, 0, len(supported))
	for _, s := range supported {
		tag, err := language.Parse(s)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		names = append(names, s)
	}
	if len(tags) == 0 {
		return LanguageEn
	}

	// Keep the POSIX locale shape working, e.g. "fr_FR.UTF-8".
	desired, _, err := language.ParseAcceptLanguage(posixToBCP47(requested))
	if err != nil || len(desired) == 0 {
		return LanguageEn
	}
	_, index, confidence := language.NewMatcher(tags).Match(desired...)
	if confidence == language.No {
		return LanguageEn
	}
	return names[index]
}

func posixToBCP47(value string) string {
	out := []rune{}
	for _, r := range value {
		switch r {
		case '.', '@':
			return string(out)
		case '_':
			out = append(out, '-')
		default:
			out = append(out, r)
		}
	}
	return string(out)
}
