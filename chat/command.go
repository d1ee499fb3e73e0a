// Package chat drives a session.Session from the console: the interactive
// read-eval loop and the scripted demo.
package chat

import "strings"

// Command is the classification of one line of operator input.
type Command int

const (
	CommandNone Command = iota
	CommandMessage
	CommandQuit
	CommandReset
	CommandHelp
)

func (c Command) String() string {
	switch c {
	case CommandNone:
		return "none"
	case CommandMessage:
		return "message"
	case CommandQuit:
		return "quit"
	case CommandReset:
		return "reset"
	case CommandHelp:
		return "help"
	default:
		return "unknown"
	}
}

// Classify maps a line of input to a Command. Matching is case-insensitive
// and ignores surrounding whitespace. Blank input is CommandNone.
func Classify(line string) Command {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "":
		return CommandNone
	case "quit", "exit", "bye":
		return CommandQuit
	case "reset":
		return CommandReset
	case "help":
		return CommandHelp
	default:
		return CommandMessage
	}
}
