package listing

import (
	"github.com/ezrec/sim8086/translate"
)

var f = translate.From

// ErrTruncated reports a stream ending inside an instruction.
type ErrTruncated int

func (err ErrTruncated) Error() string {
	return f("offset %#04x: truncated instruction", int(err))
}

// ErrDecode reports a code the strict decoder rejected.
type ErrDecode struct {
	Offset int
	Err    error
}

func (err *ErrDecode) Error() string {
	return f("offset %#04x: %v", err.Offset, err.Err)
}

func (err *ErrDecode) Unwrap() error {
	return err.Err
}
