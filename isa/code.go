package isa

// Mode is the MOD field of the second byte.
type Mode int

const (
	MOD_MEM        = Mode(0) // Memory, no displacement.
	MOD_MEM_DISP8  = Mode(1) // Memory, 8-bit displacement.
	MOD_MEM_DISP16 = Mode(2) // Memory, 16-bit displacement.
	MOD_REG        = Mode(3) // Register to register.
)

const (
	OPCODE_MOV_RM = 0b100010 // mov r/m, reg

	CODE_W_MASK    = 0b00000001 // Byte 0: width flag.
	CODE_D_MASK    = 0b00000010 // Byte 0: direction flag.
	CODE_RM_MASK   = 0b00000111 // Byte 1: destination register-select.
	CODE_REG_MASK  = 0b00111000 // Byte 1: source register-select.
	CODE_REG_SHIFT = 3
)

// Code is one encoded instruction. Byte 0 is the higher-order byte.
//
//	byte 0            byte 1
//	|o|o|o|o|o|o|d|w| |m|m|r|r|r|b|b|b|
//	 opcode             mod reg  r/m
type Code [2]byte

// MakeCode creates a Code from its higher and lower order bytes.
func MakeCode(hi, lo byte) Code {
	return Code{hi, lo}
}

// Opcode returns the six opcode bits of byte 0.
func (code Code) Opcode() uint8 {
	return code[0] >> 2
}

// D returns the direction flag. When set, REG is the destination.
func (code Code) D() bool {
	return (code[0] & CODE_D_MASK) != 0
}

// W returns the width flag.
func (code Code) W() Width {
	return Width(code[0] & CODE_W_MASK)
}

// Mod returns the addressing mode.
func (code Code) Mod() Mode {
	return Mode(code[1] >> 6)
}

// Reg returns the REG register-select code.
func (code Code) Reg() uint8 {
	return (code[1] & CODE_REG_MASK) >> CODE_REG_SHIFT
}

// RM returns the R/M register-select code.
func (code Code) RM() uint8 {
	return code[1] & CODE_RM_MASK
}

// Bytes returns the code as a byte slice.
func (code Code) Bytes() []byte {
	return []byte{code[0], code[1]}
}
