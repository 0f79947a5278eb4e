package commands

import (
	"fmt"
	"strings"

	"github.com/sandeepkv93/clockd/internal/model"
)

type Type string

const (
	TypeMode       Type = "mode"
	TypeStart      Type = "start"
	TypeStop       Type = "stop"
	TypeSet        Type = "set"
	TypeFullscreen Type = "fullscreen"
	TypeHistory    Type = "history"
	TypeFormat     Type = "format"
)

// Types lists every palette command in help order.
var Types = []Type{TypeMode, TypeStart, TypeStop, TypeSet, TypeFullscreen, TypeHistory, TypeFormat}

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code       ErrorCode
	Message    string
	Suggestion string
}

func (e *CommandError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%s: %s (did you mean %q?)", e.Code, e.Message, e.Suggestion)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type ModeArgs struct {
	Mode model.Mode
}

// SetArgs holds the raw field text; coercion happens in the model.
type SetArgs struct {
	Hours   string
	Minutes string
	Seconds string
}

type FormatArgs struct {
	Format model.ClockFormat
}

type Command struct {
	Type   Type
	Raw    string
	Mode   *ModeArgs
	Set    *SetArgs
	Format *FormatArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeMode:
		return parseMode(input, args)
	case TypeStart, TypeStop, TypeFullscreen, TypeHistory:
		return Command{Type: Type(head), Raw: input}, nil
	case TypeSet:
		return parseSet(input, args)
	case TypeFormat:
		return parseFormat(input, args)
	default:
		return Command{}, &CommandError{
			Code:       ErrCodeUnknownCommand,
			Message:    fmt.Sprintf("unsupported command: %s", head),
			Suggestion: Suggest(head),
		}
	}
}

func parseMode(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "mode requires clock, stopwatch or countdown"}
	}
	mode, err := model.ParseMode(strings.Join(args, "-"))
	if err != nil {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown mode: %s", strings.Join(args, " "))}
	}
	return Command{Type: TypeMode, Raw: raw, Mode: &ModeArgs{Mode: mode}}, nil
}

func parseSet(raw string, args []string) (Command, error) {
	if len(args) == 1 && strings.Contains(args[0], ":") {
		args = strings.Split(args[0], ":")
	}
	switch len(args) {
	case 1:
		return Command{Type: TypeSet, Raw: raw, Set: &SetArgs{Seconds: args[0]}}, nil
	case 2:
		return Command{Type: TypeSet, Raw: raw, Set: &SetArgs{Minutes: args[0], Seconds: args[1]}}, nil
	case 3:
		return Command{Type: TypeSet, Raw: raw, Set: &SetArgs{Hours: args[0], Minutes: args[1], Seconds: args[2]}}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "set requires HH:MM:SS or HH MM SS"}
	}
}

func parseFormat(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "format requires 12h or 24h"}
	}
	switch strings.ToLower(args[0]) {
	case "12h", "24h":
	default:
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown format: %s", args[0])}
	}
	return Command{Type: TypeFormat, Raw: raw, Format: &FormatArgs{Format: model.ParseClockFormat(args[0])}}, nil
}
