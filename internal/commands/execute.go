package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Mode       func(ModeArgs) (Result, error)
	Start      func() (Result, error)
	Stop       func() (Result, error)
	Set        func(SetArgs) (Result, error)
	Fullscreen func() (Result, error)
	History    func() (Result, error)
	Format     func(FormatArgs) (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeMode:
		if handlers.Mode == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Mode(*cmd.Mode)
	case TypeStart:
		if handlers.Start == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Start()
	case TypeStop:
		if handlers.Stop == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Stop()
	case TypeSet:
		if handlers.Set == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Set(*cmd.Set)
	case TypeFullscreen:
		if handlers.Fullscreen == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Fullscreen()
	case TypeHistory:
		if handlers.History == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.History()
	case TypeFormat:
		if handlers.Format == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Format(*cmd.Format)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}

func missing(t Type) error {
	return &CommandError{Code: ErrCodeHandlerMissing, Message: fmt.Sprintf("%s handler not configured", t)}
}
