package polyparse

import (
	"fmt"

	"github.com/mpspoly/polyparse/monolex"
)

// ErrorKind enumerates spec §7's taxonomy plus the overflow and
// resource-limit kinds this module's config/overflow hardening adds.
type ErrorKind int

const (
	ErrCannotParseCoefficient ErrorKind = iota
	ErrMixedRationalAndFloating
	ErrUnterminatedComplexCoefficient
	ErrMissingComma
	ErrMissingStartingBracket
	ErrMissingClosingBracket
	ErrMissingSign
	ErrUnexpectedTokenAfterCoefficient
	ErrUnexpectedTokenAfterX
	ErrUnexpectedEof
	ErrNegativeExponent
	ErrExponentTooLarge
	ErrResourceLimitExceeded
)

var errorNames = map[ErrorKind]string{
	ErrCannotParseCoefficient:          "CannotParseCoefficient",
	ErrMixedRationalAndFloating:        "MixedRationalAndFloating",
	ErrUnterminatedComplexCoefficient:  "UnterminatedComplexCoefficient",
	ErrMissingComma:                    "MissingComma",
	ErrMissingStartingBracket:          "MissingStartingBracket",
	ErrMissingClosingBracket:           "MissingClosingBracket",
	ErrMissingSign:                     "MissingSign",
	ErrUnexpectedTokenAfterCoefficient: "UnexpectedTokenAfterCoefficient",
	ErrUnexpectedTokenAfterX:           "UnexpectedTokenAfterX",
	ErrUnexpectedEof:                   "UnexpectedEof",
	ErrNegativeExponent:                "NegativeExponent",
	ErrExponentTooLarge:                "ExponentTooLarge",
	ErrResourceLimitExceeded:           "ResourceLimitExceeded",
}

func (k ErrorKind) String() string {
	if name, ok := errorNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Position locates a failure by token index (there is no filename or
// line/column notion in this grammar — a polynomial expression is a
// single flat token stream).
type Position struct {
	TokenIndex int
}

func (p Position) String() string {
	return fmt.Sprintf("token %d", p.TokenIndex)
}

// Error is the one diagnostic a failed Parse call produces.
type Error struct {
	Kind    ErrorKind
	Pos     Position
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Pos, e.Kind, e.Message)
}

func newError(pos Position, kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Pos: pos, Message: message}
}

// fromMonolex maps a monolex.Error (spec components 3/4's own slice of
// the taxonomy) onto the parser's unified ErrorKind.
func fromMonolex(pos Position, err *monolex.Error) *Error {
	kind := ErrCannotParseCoefficient
	switch err.Kind {
	case monolex.ErrCannotParseCoefficient:
		kind = ErrCannotParseCoefficient
	case monolex.ErrMixedRationalAndFloating:
		kind = ErrMixedRationalAndFloating
	case monolex.ErrUnterminatedComplexCoefficient:
		kind = ErrUnterminatedComplexCoefficient
	case monolex.ErrMissingComma:
		kind = ErrMissingComma
	case monolex.ErrMissingStartingBracket:
		kind = ErrMissingStartingBracket
	case monolex.ErrMissingClosingBracket:
		kind = ErrMissingClosingBracket
	case monolex.ErrUnexpectedTokenAfterCoefficient:
		kind = ErrUnexpectedTokenAfterCoefficient
	case monolex.ErrUnexpectedTokenAfterX:
		kind = ErrUnexpectedTokenAfterX
	case monolex.ErrNegativeExponent:
		kind = ErrNegativeExponent
	case monolex.ErrExponentTooLarge:
		kind = ErrExponentTooLarge
	}
	return newError(pos, kind, err.Error())
}
