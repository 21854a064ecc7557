package isa

import (
	"fmt"
)

// Form identifies an instruction variant.
type Form int

//go:generate go tool stringer -linecomment -type=Form
const (
	FORM_MOVE = Form(0) // mov
)

// Instruction is a decoded instruction. The set of implementations is closed
// to this package; switch over Form() to handle each variant.
type Instruction interface {
	Form() Form
	String() string

	instruction()
}

// Move is a register to register move.
type Move struct {
	Dst Register // Destination register.
	Src Register // Source register.
}

var _ Instruction = Move{}

// Form returns FORM_MOVE.
func (Move) Form() Form {
	return FORM_MOVE
}

// String returns the assembly language representation of the move.
func (mv Move) String() string {
	return fmt.Sprintf("%v %v, %v", mv.Form(), mv.Dst, mv.Src)
}

func (Move) instruction() {}
