// Package listing turns byte streams into decoded instruction listings,
// and listings back into bytes or NASM compatible text.
package listing

import (
	"bytes"
	"fmt"
	"io"
	"iter"
	"slices"

	"github.com/ezrec/sim8086/internal"
	"github.com/ezrec/sim8086/isa"
)

// HEADER is the first line of a listing's text form.
const HEADER = "bits 16"

// Entry is one decoded instruction and where it came from.
type Entry struct {
	Offset      int             // Byte offset of the code in the stream.
	Code        isa.Code        // Encoded byte pair.
	Instruction isa.Instruction // Decoded instruction.
	LineNo      int             // Source line, if assembled. Zero otherwise.
}

// Listing is an ordered sequence of entries.
type Listing struct {
	Entries []Entry
}

// Debug locates the entry containing a byte offset.
type Debug struct {
	*Entry
	Index int // Byte index within the entry's code.
}

// Append adds a decoded code at the end of the listing.
func (lst *Listing) Append(code isa.Code, inst isa.Instruction, lineno int) {
	lst.Entries = append(lst.Entries, Entry{
		Offset:      lst.Size(),
		Code:        code,
		Instruction: inst,
		LineNo:      lineno,
	})
}

// Size returns the length of the listing in bytes.
func (lst *Listing) Size() int {
	return len(lst.Entries) * len(isa.Code{})
}

// Debug returns the entry that covers offset. The entry is nil when offset
// lies outside the listing.
func (lst *Listing) Debug(offset int) (dbg Debug) {
	for n, entry := range lst.Entries {
		if offset >= entry.Offset && offset < entry.Offset+len(entry.Code) {
			dbg = Debug{
				Entry: &lst.Entries[n],
				Index: offset - entry.Offset,
			}
			break
		}
	}

	return
}

// Binary returns the encoded bytes of the listing.
func (lst *Listing) Binary() (bins []byte) {
	for _, entry := range lst.Entries {
		bins = append(bins, entry.Code[:]...)
	}

	return
}

// Instructions returns an iterator over the decoded instructions.
func (lst *Listing) Instructions() iter.Seq[isa.Instruction] {
	return func(yield func(inst isa.Instruction) bool) {
		for _, entry := range lst.Entries {
			if !yield(entry.Instruction) {
				return
			}
		}
	}
}

// WriteTo writes the listing as assembly text, starting with HEADER.
func (lst *Listing) WriteTo(w io.Writer) (n int64, err error) {
	var wrote int

	wrote, err = fmt.Fprintln(w, HEADER)
	n += int64(wrote)
	if err != nil {
		return
	}

	for inst := range lst.Instructions() {
		wrote, err = fmt.Fprintln(w, inst.String())
		n += int64(wrote)
		if err != nil {
			return
		}
	}

	return
}

// String returns the listing as assembly text.
func (lst *Listing) String() string {
	var buf bytes.Buffer
	lst.WriteTo(&buf)
	return buf.String()
}

// Concat joins listings in order, rebasing the offsets of each entry.
func Concat(lsts ...*Listing) (out *Listing) {
	seqs := make([]iter.Seq[Entry], 0, len(lsts))
	for _, lst := range lsts {
		seqs = append(seqs, slices.Values(lst.Entries))
	}

	out = &Listing{}
	for n, entry := range internal.IterSeqEnumerate(internal.IterSeqConcat(seqs...)) {
		entry.Offset = n * len(isa.Code{})
		out.Entries = append(out.Entries, entry)
	}

	return
}
