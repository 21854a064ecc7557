package listing

import (
	"errors"
	"io"
	"iter"
	"log"

	"github.com/ezrec/sim8086/isa"
)

// Reader splits a byte stream into two byte codes and decodes them.
type Reader struct {
	Input   io.Reader // Object code input.
	Strict  bool      // If set, reject codes that are not register moves.
	Verbose bool      // If set, logs each decoded code.

	offset int
	err    error
}

// Err returns the error that ended the last iteration, if any.
func (rd *Reader) Err() error {
	return rd.err
}

// Offset returns the number of bytes consumed so far.
func (rd *Reader) Offset() int {
	return rd.offset
}

// Entries returns an iterator that yields decoded entries until the input
// is exhausted or an error occurs. Check Err() after the iteration.
// Input is read two bytes at a time; wrap it in a bufio.Reader if needed.
func (rd *Reader) Entries() iter.Seq2[int, Entry] {
	return func(yield func(offset int, entry Entry) bool) {
		rd.err = nil

		for {
			var code isa.Code
			_, err := io.ReadFull(rd.Input, code[:])
			switch {
			case errors.Is(err, io.EOF):
				return
			case errors.Is(err, io.ErrUnexpectedEOF):
				rd.err = ErrTruncated(rd.offset)
				return
			case err != nil:
				rd.err = err
				return
			}

			entry := Entry{Offset: rd.offset, Code: code}
			if rd.Strict {
				entry.Instruction, err = isa.DecodeStrict(code)
				if err != nil {
					rd.err = &ErrDecode{Offset: rd.offset, Err: err}
					return
				}
			} else {
				entry.Instruction = isa.Decode(code)
			}

			if rd.Verbose {
				log.Printf("%04x: %02x %02x %v", entry.Offset, code[0], code[1], entry.Instruction)
			}

			rd.offset += len(code)

			if !yield(entry.Offset, entry) {
				return
			}
		}
	}
}

// Read decodes the whole input into a Listing.
func (rd *Reader) Read() (lst *Listing, err error) {
	lst = &Listing{}

	for _, entry := range rd.Entries() {
		lst.Entries = append(lst.Entries, entry)
	}

	err = rd.Err()

	return
}
