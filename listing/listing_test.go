package listing

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/sim8086/isa"
)

func makeListing(insts ...isa.Instruction) *Listing {
	lst := &Listing{}
	for _, inst := range insts {
		code, err := isa.Encode(inst)
		if err != nil {
			panic(err)
		}
		lst.Append(code, inst, 0)
	}
	return lst
}

func TestListingWriteTo(t *testing.T) {
	assert := assert.New(t)

	lst := makeListing(manyRegisterMoves...)

	expected := strings.Join([]string{
		"bits 16",
		"mov cx, bx",
		"mov ch, ah",
		"mov dx, bx",
		"mov si, bx",
		"mov bx, di",
		"mov al, cl",
		"mov ch, ch",
		"mov bx, ax",
		"mov bx, si",
		"mov sp, di",
		"mov bp, ax",
	}, "\n") + "\n"

	var buf bytes.Buffer
	n, err := lst.WriteTo(&buf)
	assert.NoError(err)
	assert.Equal(int64(len(expected)), n)
	assert.Equal(expected, buf.String())
	assert.Equal(expected, lst.String())

	assert.Equal(readFixture(t, "listing_0038_many_register_mov"), lst.Binary())
	assert.Equal(22, lst.Size())
}

type failWriter struct {
	after int
}

var errWrite = errors.New("write failed")

func (fw *failWriter) Write(data []byte) (int, error) {
	if fw.after == 0 {
		return 0, errWrite
	}
	fw.after--
	return len(data), nil
}

func TestListingWriteToError(t *testing.T) {
	assert := assert.New(t)

	lst := makeListing(manyRegisterMoves...)

	n, err := lst.WriteTo(&failWriter{after: 0})
	assert.ErrorIs(err, errWrite)
	assert.Equal(int64(0), n)

	n, err = lst.WriteTo(&failWriter{after: 2})
	assert.ErrorIs(err, errWrite)
	assert.Equal(int64(len("bits 16\nmov cx, bx\n")), n)
}

func TestListingDebug(t *testing.T) {
	assert := assert.New(t)

	lst := makeListing(manyRegisterMoves[:3]...)

	dbg := lst.Debug(0)
	assert.NotNil(dbg.Entry)
	assert.Equal(0, dbg.Offset)
	assert.Equal(0, dbg.Index)

	dbg = lst.Debug(3)
	assert.NotNil(dbg.Entry)
	assert.Equal(2, dbg.Offset)
	assert.Equal(1, dbg.Index)
	assert.Equal(manyRegisterMoves[1], dbg.Instruction)

	dbg = lst.Debug(5)
	assert.Equal(4, dbg.Offset)
	assert.Equal(1, dbg.Index)

	dbg = lst.Debug(6)
	assert.Nil(dbg.Entry)
	assert.Equal(0, dbg.Index)

	dbg = lst.Debug(-1)
	assert.Nil(dbg.Entry)
}

func TestConcat(t *testing.T) {
	assert := assert.New(t)

	a := makeListing(manyRegisterMoves[:4]...)
	b := makeListing(manyRegisterMoves[4:]...)

	lst := Concat(a, &Listing{}, b)
	assert.Equal(makeListing(manyRegisterMoves...), lst)

	// Inputs are left untouched.
	assert.Equal(0, b.Entries[0].Offset)

	assert.Equal(&Listing{}, Concat())
}
