package feedback

import (
	"taskbook/pkg/translator"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/zap"
)

// Err is a user-facing error with a translated message.
type Err struct {
	Key     string
	Message string
}

func (e Err) Error() string {
	return e.Message
}

// CreateError builds an Err whose message is translated into lang.
func CreateError(msgKey string, lang string, data map[string]any) Err {
	return Err{Key: msgKey, Message: GetTransMsg(msgKey, lang, data)}
}

// GetTransMsg retrieves the translated message, or the key itself when no
// translation exists.
func GetTransMsg(msgKey string, lang string, data map[string]any) string {
	if translator.Translator == nil {
		return msgKey
	}
	l := i18n.NewLocalizer(translator.Translator, lang, translator.LanguageEn)
	msg, err := l.Localize(&i18n.LocalizeConfig{
		MessageID:    msgKey,
		TemplateData: data,
	})
	if err != nil {
		zap.L().Warn("translation not found", zap.String("lang", lang), zap.String("message_id", msgKey), zap.Error(err))
		return msgKey
	}
	return msg
}
