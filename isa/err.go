package isa

import (
	"errors"

	"github.com/ezrec/sim8086/translate"
)

var f = translate.From

var (
	// Instruction decode errors
	ErrOpcodeDecode    = errors.New(f("not a register move"))
	ErrModeUnsupported = errors.New(f("addressing mode unsupported"))

	// Instruction encode errors
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
	ErrRegisterInvalid    = errors.New(f("register invalid"))
	ErrWidthMismatch      = errors.New(f("operand width mismatch"))
)

// ErrRegisterSelect is the panic value of a register lookup outside the
// register table.
type ErrRegisterSelect struct {
	Select uint8
	Width  Width
}

func (err ErrRegisterSelect) Error() string {
	return f("register select %d width %d out of range", err.Select, int(err.Width))
}

// ErrCodeLength is the panic value of decoding a slice that is not one Code.
type ErrCodeLength int

func (err ErrCodeLength) Error() string {
	return f("instruction length %d, expected 2", int(err))
}

// ErrOpcode reports a byte pair that DecodeStrict rejects.
type ErrOpcode struct {
	Code Code
	Err  error
}

func (err *ErrOpcode) Error() string {
	return f("bad opcode %02x %02x: %v", err.Code[0], err.Code[1], err.Err)
}

func (err *ErrOpcode) Unwrap() error {
	return err.Err
}

// ErrEncode reports an instruction that has no encoding.
type ErrEncode struct {
	Instruction Instruction
	Err         error
}

func (err *ErrEncode) Error() string {
	return f("cannot encode %v: %v", err.Instruction, err.Err)
}

func (err *ErrEncode) Unwrap() error {
	return err.Err
}
