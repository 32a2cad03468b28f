package cli

import (
	"errors"
	"strings"

	"taskbook/internal/core/domain"
	"taskbook/pkg/feedback"
)

var kindMessages = map[domain.ErrorKind]string{
	domain.KindPersonNotFound:     feedback.MsgPersonNotFound,
	domain.KindInvalidTaskIndex:   feedback.MsgInvalidTaskIndex,
	domain.KindInvalidPersonIndex: feedback.MsgInvalidPersonIndex,
	domain.KindInvalidParameter:   feedback.MsgInvalidParameter,
	domain.KindNotEdited:          feedback.MsgNotEdited,
	domain.KindAssignorAssignee:   feedback.MsgAssignorAssignee,
	domain.KindDuplicateTask:      feedback.MsgDuplicateTask,
	domain.KindDuplicatePerson:    feedback.MsgDuplicatePerson,
}

// userError translates err into lang.
func userError(err error, lang string) feedback.Err {
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		fe := feedback.CreateError(feedback.MsgInvalidCommandFormat, lang, map[string]any{"Usage": parseErr.Usage})
		if parseErr.Err != nil {
			fe.Message = capitalize(parseErr.Err.Error()) + ".\n" + fe.Message
		}
		return fe
	}
	if errors.Is(err, ErrUnknownCommand) {
		return feedback.CreateError(feedback.MsgUnknownCommand, lang, nil)
	}

	var domainErr *domain.Error
	if errors.As(err, &domainErr) {
		if key, ok := kindMessages[domainErr.Kind]; ok {
			return feedback.CreateError(key, lang, map[string]any{"Param": domainErr.Param})
		}
	}
	return feedback.CreateError(feedback.MsgUnexpectedError, lang, nil)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
