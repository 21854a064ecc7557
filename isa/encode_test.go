package isa

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncode(t *testing.T) {
	assert := assert.New(t)

	for n, inst := range manyRegisterMoves {
		code, err := Encode(inst)
		assert.NoError(err)
		assert.Equal(Code(manyRegisterMov[n*2:n*2+2]), code, inst.String())
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	assert := assert.New(t)

	count := 0
	for dst := range Registers() {
		for src := range Registers() {
			mv := Move{Dst: dst, Src: src}
			code, err := Encode(mv)
			if dst.Width() != src.Width() {
				assert.ErrorIs(err, ErrWidthMismatch, mv.String())
				continue
			}
			assert.NoError(err, mv.String())
			assert.Equal(Instruction(mv), Decode(code))
			count++
		}
	}
	assert.Equal(128, count)

	// Every mod=11, d=0 mov re-encodes to itself.
	for _, hi := range []byte{0x88, 0x89} {
		for lo := 0xc0; lo <= 0xff; lo++ {
			code := MakeCode(hi, byte(lo))
			again, err := Encode(Decode(code))
			assert.NoError(err)
			assert.Equal(code, again)
		}
	}
}

func TestEncodeInvalid(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		inst Instruction
		err  error
	}){
		{"width", Move{REG_AX, REG_BL}, ErrWidthMismatch},
		{"dst", Move{Register(16), REG_BL}, ErrRegisterInvalid},
		{"src", Move{REG_AX, Register(-1)}, ErrRegisterInvalid},
		{"nil", nil, ErrInstructionInvalid},
	}

	for _, entry := range table {
		_, err := Encode(entry.inst)
		if !assert.ErrorIs(err, entry.err, entry.name) {
			continue
		}
		assert.NotEmpty(err.Error(), entry.name)

		var ee *ErrEncode
		if assert.True(errors.As(err, &ee), entry.name) {
			assert.Equal(entry.inst, ee.Instruction)
		}
	}
}
