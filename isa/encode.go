package isa

// MakeCodeMove creates the `mov r/m, reg` encoding of a register move.
// The operands must be valid registers of the same width.
func MakeCodeMove(dst, src Register) Code {
	hi := byte(OPCODE_MOV_RM<<2) | byte(dst.Width())
	lo := byte(MOD_REG<<6) | (src.Select() << CODE_REG_SHIFT) | dst.Select()

	return Code{hi, lo}
}

// Encode returns the byte pair that Decode maps back to inst.
func Encode(inst Instruction) (code Code, err error) {
	if inst == nil {
		err = &ErrEncode{Err: ErrInstructionInvalid}
		return
	}

	switch inst.Form() {
	case FORM_MOVE:
		mv, ok := inst.(Move)
		if !ok {
			err = &ErrEncode{Instruction: inst, Err: ErrInstructionInvalid}
			return
		}
		if !mv.Dst.Valid() || !mv.Src.Valid() {
			err = &ErrEncode{Instruction: inst, Err: ErrRegisterInvalid}
			return
		}
		if mv.Dst.Width() != mv.Src.Width() {
			err = &ErrEncode{Instruction: inst, Err: ErrWidthMismatch}
			return
		}
		code = MakeCodeMove(mv.Dst, mv.Src)
	default:
		panic(f("unhandled instruction form %v", inst.Form()))
	}

	return
}
