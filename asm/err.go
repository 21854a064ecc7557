package asm

import (
	"errors"

	"github.com/ezrec/sim8086/translate"
)

var f = translate.From

var (
	ErrBitsUnsupported    = errors.New(f("only bits 16 is supported"))
	ErrByteOdd            = errors.New(f("db bytes do not end on an instruction boundary"))
	ErrEquateSyntax       = errors.New(f(".equ syntax"))
	ErrEquateDuplicate    = errors.New(f(".equ duplicated"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
	ErrNotInteger         = errors.New(f("not an integer"))
	ErrOperandCount       = errors.New(f("wrong number of operands"))
)

// ErrRegisterName reports an operand that does not name a register.
type ErrRegisterName string

func (err ErrRegisterName) Error() string {
	return f("'%v' is not a register", string(err))
}

// ErrParseNumber reports a word that does not parse as an integer.
type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

// ErrByteRange reports a `db` value outside the range of a byte.
type ErrByteRange string

func (err ErrByteRange) Error() string {
	return f("'%v' does not fit in a byte", string(err))
}

// ErrExpression reports a $(...) expression that did not evaluate.
type ErrExpression struct {
	Expr string
	Err  error
}

func (err *ErrExpression) Error() string {
	return f("$(%v) is not a valid expression: %v", err.Expr, err.Err)
}

func (err *ErrExpression) Unwrap() error {
	return err.Err
}

// ErrSyntax wraps an error with the source line it was found on.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}
