package cli

import (
	"sort"
	"strings"

	"taskbook/internal/app/command"
	"taskbook/internal/core/ports"
)

const (
	msgGoodbye = "Goodbye."
	keyGoodbye = "goodbye"
	keyHelp    = "help"
)

type helpCommand struct{}

func (helpCommand) Execute(ports.Model) (command.Result, error) {
	lines := make([]string, 0, len(usages))
	for _, usage := range usages {
		lines = append(lines, usage)
	}
	sort.Strings(lines)
	joined := strings.Join(lines, "\n  ")
	return command.Result{
		Message: "Commands:\n  " + joined,
		Key:     keyHelp,
		Data:    map[string]any{"Usages": joined},
	}, nil
}

type exitCommand struct{}

func (exitCommand) Execute(ports.Model) (command.Result, error) {
	return command.Result{Message: msgGoodbye, Key: keyGoodbye, Exit: true}, nil
}
