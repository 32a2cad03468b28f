package cli

import (
	"time"

	"go.uber.org/zap"

	"taskbook/internal/app/command"
	"taskbook/internal/core/domain"
	"taskbook/internal/core/ports"
)

// loggedCommand logs each execution with its outcome and latency.
type loggedCommand struct {
	word   string
	next   command.Command
	logger *zap.Logger
}

func withLogging(logger *zap.Logger, word string, next command.Command) command.Command {
	return loggedCommand{word: word, next: next, logger: logger}
}

func (c loggedCommand) Execute(m ports.Model) (command.Result, error) {
	start := time.Now()

	result, err := c.next.Execute(m)

	fields := []zap.Field{
		zap.String("command", c.word),
		zap.Bool("mutated", result.Mutated),
		zap.Duration("latency", time.Since(start)),
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
		if domain.KindOf(err) == domain.KindUnknown {
			c.logger.Error("command failed", fields...)
			return result, err
		}
		c.logger.Info("command rejected", fields...)
		return result, err
	}

	c.logger.Info("command executed", fields...)
	return result, nil
}
