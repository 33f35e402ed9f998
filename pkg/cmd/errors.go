package cmd

import (
	"errors"
	"fmt"
)

var (
	// ErrConfigurationConflict is returned when a name or alias is already
	// taken on the same parent.
	ErrConfigurationConflict = errors.New("configuration conflict")
	// ErrSlotOrder is returned for argument declarations that can never parse.
	ErrSlotOrder = errors.New("invalid argument slot")
	// ErrInvalidCommand is returned for malformed command definitions.
	ErrInvalidCommand = errors.New("invalid command")

	ErrUnknownCommand = errors.New("unknown command")
	ErrNoCommand      = errors.New("no command given")

	errNoMatch = errors.New("no type matched")
)

// ConfigError is a fatal tree construction error. It is never produced at
// dispatch time.
type ConfigError struct {
	Command string
	Key     string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("command %q: %v: %q", e.Command, e.Err, e.Key)
	}
	return fmt.Sprintf("command %q: %v", e.Command, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// ErrorKind classifies a runtime argument error.
type ErrorKind uint8

const (
	InvalidArgValue ErrorKind = iota + 1
	TooManyArguments
	InsufficientArguments
	NoArguments
	// InvalidArguments is reserved for custom slot-level rejections, see
	// ErrRejected.
	InvalidArguments
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidArgValue:
		return "invalid argument value"
	case TooManyArguments:
		return "too many arguments"
	case InsufficientArguments:
		return "insufficient arguments"
	case NoArguments:
		return "no arguments"
	case InvalidArguments:
		return "invalid arguments"
	}
	return fmt.Sprintf("ErrorKind(%d)", uint8(k))
}

// ErrorRecord locates one argument error. SlotIndex addresses the declared
// slot, TokenIndex the raw token; they differ only after multi-token slots.
type ErrorRecord struct {
	Kind       ErrorKind
	SlotIndex  int
	TokenIndex int
	Tokens     []string
	Detail     string
}

func (r ErrorRecord) Error() string {
	if r.Detail != "" {
		return fmt.Sprintf("argument %d: %s: %s", r.SlotIndex+1, r.Kind, r.Detail)
	}
	return fmt.Sprintf("argument %d: %s", r.SlotIndex+1, r.Kind)
}
