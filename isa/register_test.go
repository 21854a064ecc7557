package isa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterTable(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		sel  uint8
		b    Register
		w    Register
		name string
	}){
		{0b000, REG_AL, REG_AX, "al/ax"},
		{0b001, REG_CL, REG_CX, "cl/cx"},
		{0b010, REG_DL, REG_DX, "dl/dx"},
		{0b011, REG_BL, REG_BX, "bl/bx"},
		{0b100, REG_AH, REG_SP, "ah/sp"},
		{0b101, REG_CH, REG_BP, "ch/bp"},
		{0b110, REG_DH, REG_SI, "dh/si"},
		{0b111, REG_BH, REG_DI, "bh/di"},
	}

	for _, entry := range table {
		assert.Equal(entry.b, LookupRegister(entry.sel, WIDTH_BYTE), entry.name)
		assert.Equal(entry.w, LookupRegister(entry.sel, WIDTH_WORD), entry.name)
		assert.Equal(entry.name, entry.b.String()+"/"+entry.w.String())
	}
}

func TestRegisterTableComplete(t *testing.T) {
	assert := assert.New(t)

	seen := map[Register]bool{}
	for sel := range uint8(SELECT_COUNT) {
		for _, width := range []Width{WIDTH_BYTE, WIDTH_WORD} {
			reg := LookupRegister(sel, width)
			assert.True(reg.Valid())
			assert.Equal(width, reg.Width())
			assert.Equal(sel, reg.Select())
			assert.False(seen[reg], reg.String())
			seen[reg] = true
		}
	}

	assert.Equal(16, len(seen))
	for reg := range Registers() {
		assert.True(seen[reg], reg.String())
	}
}

func TestLookupRegisterOutOfRange(t *testing.T) {
	assert := assert.New(t)

	assert.PanicsWithValue(ErrRegisterSelect{Select: 8, Width: WIDTH_BYTE}, func() {
		LookupRegister(8, WIDTH_BYTE)
	})
	assert.PanicsWithValue(ErrRegisterSelect{Select: 8, Width: WIDTH_WORD}, func() {
		LookupRegister(8, WIDTH_WORD)
	})
	assert.PanicsWithValue(ErrRegisterSelect{Select: 0, Width: Width(2)}, func() {
		LookupRegister(0, Width(2))
	})
	assert.PanicsWithValue(ErrRegisterSelect{Select: 3, Width: Width(-1)}, func() {
		LookupRegister(3, Width(-1))
	})
	assert.PanicsWithError(ErrRegisterSelect{Select: 0xff, Width: WIDTH_WORD}.Error(), func() {
		LookupRegister(0xff, WIDTH_WORD)
	})
}

func TestRegisterString(t *testing.T) {
	assert := assert.New(t)

	names := []string{}
	for reg := range Registers() {
		names = append(names, reg.String())
	}

	assert.Equal([]string{
		"al", "cl", "dl", "bl", "ah", "ch", "dh", "bh",
		"ax", "cx", "dx", "bx", "sp", "bp", "si", "di",
	}, names)
	assert.Equal("Register(16)", Register(16).String())
	assert.False(Register(16).Valid())
	assert.False(Register(-1).Valid())
	assert.Equal("byte", WIDTH_BYTE.String())
	assert.Equal("word", WIDTH_WORD.String())
}
