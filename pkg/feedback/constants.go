package feedback

const (
	MsgPersonNotFound       = "personNotFound"
	MsgInvalidTaskIndex     = "invalidTaskIndex"
	MsgInvalidPersonIndex   = "invalidPersonIndex"
	MsgInvalidParameter     = "invalidParameter"
	MsgNotEdited            = "notEdited"
	MsgAssignorAssignee     = "assignorAssignee"
	MsgDuplicateTask        = "duplicateTask"
	MsgDuplicatePerson      = "duplicatePerson"
	MsgInvalidCommandFormat = "invalidCommandFormat"
	MsgUnknownCommand       = "unknownCommand"
	MsgFailSaveTaskBook     = "failSaveTaskBook"
	MsgUnexpectedError      = "unexpectedError"
)
