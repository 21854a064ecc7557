package isa

import (
	"iter"
)

// Width is the operand width selected by the W bit.
type Width int

//go:generate go tool stringer -linecomment -type=Width
const (
	WIDTH_BYTE = Width(0) // byte
	WIDTH_WORD = Width(1) // word
)

// Register is one of the sixteen named 8086 registers.
type Register int

//go:generate go tool stringer -linecomment -type=Register
const (
	REG_AL = Register(0)  // al
	REG_CL = Register(1)  // cl
	REG_DL = Register(2)  // dl
	REG_BL = Register(3)  // bl
	REG_AH = Register(4)  // ah
	REG_CH = Register(5)  // ch
	REG_DH = Register(6)  // dh
	REG_BH = Register(7)  // bh
	REG_AX = Register(8)  // ax
	REG_CX = Register(9)  // cx
	REG_DX = Register(10) // dx
	REG_BX = Register(11) // bx
	REG_SP = Register(12) // sp
	REG_BP = Register(13) // bp
	REG_SI = Register(14) // si
	REG_DI = Register(15) // di
)

const (
	SELECT_MASK  = 0b111 // Mask of a register-select field.
	SELECT_COUNT = 8     // Number of register-select codes.
)

// registerTable maps a register-select code to its byte and word register.
// Column 0 is the byte form, column 1 the word form.
var registerTable = [SELECT_COUNT][2]Register{
	{REG_AL, REG_AX}, // 000
	{REG_CL, REG_CX}, // 001
	{REG_DL, REG_DX}, // 010
	{REG_BL, REG_BX}, // 011
	{REG_AH, REG_SP}, // 100
	{REG_CH, REG_BP}, // 101
	{REG_DH, REG_SI}, // 110
	{REG_BH, REG_DI}, // 111
}

// LookupRegister resolves a register-select code and width to a Register.
//
// A select code outside [0,7] or a width other than WIDTH_BYTE or WIDTH_WORD
// can only come from a masking defect, so it panics with ErrRegisterSelect
// rather than returning an error.
func LookupRegister(sel uint8, width Width) Register {
	if int(sel) >= len(registerTable) || width < WIDTH_BYTE || width > WIDTH_WORD {
		panic(ErrRegisterSelect{Select: sel, Width: width})
	}

	return registerTable[sel][width]
}

// Valid returns true if the register is one of the sixteen named registers.
func (reg Register) Valid() bool {
	return reg >= REG_AL && reg <= REG_DI
}

// Width returns the width class of the register.
func (reg Register) Width() Width {
	if reg >= REG_AX {
		return WIDTH_WORD
	}
	return WIDTH_BYTE
}

// Select returns the register-select code that encodes the register.
func (reg Register) Select() uint8 {
	return uint8(reg) & SELECT_MASK
}

// Registers returns an iterator over all registers, byte registers first.
func Registers() iter.Seq[Register] {
	return func(yield func(reg Register) bool) {
		for reg := REG_AL; reg <= REG_DI; reg++ {
			if !yield(reg) {
				return
			}
		}
	}
}
