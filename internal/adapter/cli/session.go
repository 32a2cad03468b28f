package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"taskbook/internal/app/command"
	"taskbook/internal/core/ports"
	"taskbook/pkg/feedback"
)

const prompt = "> "

// Session reads commands line by line and runs them one at a time against
// the registry, saving it after every change.
type Session struct {
	model  ports.Model
	store  ports.SnapshotStore
	lang   string
	out    io.Writer
	logger *zap.Logger
}

func NewSession(model ports.Model, store ports.SnapshotStore, lang string, out io.Writer, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{model: model, store: store, lang: lang, out: out, logger: logger}
}

// Run processes lines from in until exit, end of input or ctx is done.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(s.out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return scanner.Err()
		}
		if s.Handle(ctx, scanner.Text()) {
			return nil
		}
	}
}

// Handle runs one line and reports whether the session should end.
func (s *Session) Handle(ctx context.Context, line string) bool {
	if strings.TrimSpace(line) == "" {
		return false
	}

	word := CommandWord(line)
	cmd, err := ParseCommand(line)
	if err != nil {
		fe := userError(err, s.lang)
		s.logger.Debug("could not parse command", zap.String("command", word), zap.String("key", fe.Key), zap.Error(err))
		fmt.Fprintln(s.out, fe.Error())
		return false
	}

	result, err := withLogging(s.logger, word, cmd).Execute(s.model)
	if err != nil {
		fmt.Fprintln(s.out, userError(err, s.lang).Error())
		return false
	}

	fmt.Fprintln(s.out, s.message(result))
	s.render(result.View)

	if result.Mutated && s.store != nil {
		if err := s.store.Save(ctx, s.model.Snapshot()); err != nil {
			s.logger.Error("failed to save task book", zap.Error(err))
			fmt.Fprintln(s.out, feedback.CreateError(feedback.MsgFailSaveTaskBook, s.lang, nil).Error())
		}
	}
	return result.Exit
}

// message translates a result, keeping the English text when the bundle
// has no entry for its key.
func (s *Session) message(result command.Result) string {
	if result.Key == "" {
		return result.Message
	}
	if msg := feedback.GetTransMsg(result.Key, s.lang, result.Data); msg != result.Key {
		return msg
	}
	return result.Message
}

func (s *Session) render(view command.View) {
	switch view {
	case command.ViewTasks:
		for i, task := range s.model.FilteredTasks() {
			fmt.Fprintf(s.out, "%d. %s\n", i+1, strings.ReplaceAll(task.String(), "\n", "\n   "))
		}
	case command.ViewPersons:
		for i, person := range s.model.FilteredPersons() {
			fmt.Fprintf(s.out, "%d. %s\n", i+1, person)
		}
	}
}
