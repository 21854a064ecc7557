package isa

// Decode decodes one register to register move.
//
// Only the W bit of byte 0 and the REG and R/M fields of byte 1 are
// examined: R/M selects the destination, REG the source. Every byte pair
// decodes, so there is no error result.
func Decode(code Code) Instruction {
	width := Width(code[0] & CODE_W_MASK)
	dst := code[1] & CODE_RM_MASK
	src := (code[1] & CODE_REG_MASK) >> CODE_REG_SHIFT

	return Move{
		Dst: LookupRegister(dst, width),
		Src: LookupRegister(src, width),
	}
}

// DecodeBytes decodes a two byte slice. The caller is responsible for
// instruction boundaries; any other length panics.
func DecodeBytes(data []byte) Instruction {
	if len(data) != len(Code{}) {
		panic(ErrCodeLength(len(data)))
	}

	return Decode(Code(data))
}

// DecodeStrict decodes a byte pair only if it is a register to register
// `mov` (100010dw 11 reg r/m). When D is set REG is the destination.
func DecodeStrict(code Code) (inst Instruction, err error) {
	if code.Opcode() != OPCODE_MOV_RM {
		err = &ErrOpcode{Code: code, Err: ErrOpcodeDecode}
		return
	}

	if code.Mod() != MOD_REG {
		err = &ErrOpcode{Code: code, Err: ErrModeUnsupported}
		return
	}

	mv := Decode(code).(Move)
	if code.D() {
		mv.Dst, mv.Src = mv.Src, mv.Dst
	}

	inst = mv

	return
}
