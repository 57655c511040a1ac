package icg

import (
	"fmt"

	"github.com/mpetrov/rvm16/parser"
)

// ErrorKind categorizes a semantic failure during code generation.
type ErrorKind int

const (
	ErrorUnknownRegister ErrorKind = iota
	ErrorUnknownOpcode
	ErrorFunctionExists
	ErrorUnknownSymbol
	ErrorUnsupported
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorUnknownRegister:
		return "unknown register"
	case ErrorUnknownOpcode:
		return "unknown opcode"
	case ErrorFunctionExists:
		return "function exists"
	case ErrorUnknownSymbol:
		return "unknown symbol"
	case ErrorUnsupported:
		return "unsupported"
	default:
		return "unknown error"
	}
}

// Error is a fatal ICG-stage error.
type Error struct {
	Pos     parser.Position
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Pos, e.Kind, e.Message)
}

func newError(pos parser.Position, kind ErrorKind, message string) *Error {
	return &Error{Pos: pos, Kind: kind, Message: message}
}
