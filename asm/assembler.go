// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package asm assembles NASM style register move listings into object code.
package asm

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/sim8086/internal"
	"github.com/ezrec/sim8086/isa"
	"github.com/ezrec/sim8086/listing"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO": "0",
	"BITS":   "16",
}

// regMap maps register names to registers.
var regMap = map[string]isa.Register{}

func init() {
	for reg := range isa.Registers() {
		regMap[reg.String()] = reg
	}
}

var parenRe = regexp.MustCompile(`\$\([^\$]*\)`)

// Assembler is a single pass assembler for register moves.
type Assembler struct {
	Verbose bool              // If set, verbosely logs the assembler actions.
	Equate  map[string]string // Map of equates.

	predefine map[string]string // Predefines
	pending   []byte            // `db` bytes not yet paired into a code.
	listing   *listing.Listing
}

// Predefine defines an equate before parsing, or redefines an existing one.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// valueOf returns the value of a simple word.
func (asm *Assembler) valueOf(word string) (value int64, err error) {
	value, err = strconv.ParseInt(word, 0, 32)
	if err != nil {
		err = ErrParseNumber(word)
	}
	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{Name: "asm"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		v, err := asm.valueOf(str)
		if err != nil {
			// Ignore non-integer equates. They may be registers.
			continue
		}
		pred[key] = starlark.MakeInt64(v)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = &ErrExpression{Expr: expr, Err: err}
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = &ErrExpression{Expr: expr, Err: ErrNotInteger}
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = &ErrExpression{Expr: expr, Err: ErrNotInteger}
		return
	}
	return
}

// resolve replaces a word by its equate, if it has one.
func (asm *Assembler) resolve(word string) string {
	equate, ok := asm.Equate[word]
	if ok {
		return equate
	}
	return word
}

// register parses a register operand.
func (asm *Assembler) register(word string) (reg isa.Register, err error) {
	word = strings.ToLower(asm.resolve(word))
	reg, ok := regMap[word]
	if !ok {
		err = ErrRegisterName(word)
	}
	return
}

// parseLine splits a line into its mnemonic and operands after expanding
// $() expressions.
func (asm *Assembler) parseLine(line string, lineno int) (mnemonic string, args []string, err error) {
	asm.Equate["LINENO"] = strconv.Itoa(lineno)

	line = parenRe.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil && err == nil {
			err = _err
		}
		return fmt.Sprintf("%#x", value)
	})
	if err != nil {
		return
	}

	mnemonic, rest := line, ""
	if n := strings.IndexFunc(line, unicode.IsSpace); n >= 0 {
		mnemonic, rest = line[:n], strings.TrimSpace(line[n+1:])
	}
	mnemonic = strings.ToLower(mnemonic)

	if len(rest) == 0 {
		return
	}

	// .equ takes whitespace separated arguments.
	if mnemonic == ".equ" {
		args = strings.Fields(rest)
		return
	}

	for _, arg := range strings.Split(rest, ",") {
		args = append(args, strings.TrimSpace(arg))
	}

	return
}

// emit appends one code to the listing.
func (asm *Assembler) emit(code isa.Code, inst isa.Instruction, lineno int) {
	if asm.Verbose {
		log.Printf("%v: %04x: %02x %02x %v", lineno, asm.listing.Size(), code[0], code[1], inst)
	}
	asm.listing.Append(code, inst, lineno)
}

// parseArgs evaluates one parsed line.
func (asm *Assembler) parseArgs(mnemonic string, args []string, lineno int) (err error) {
	switch mnemonic {
	case "":
		return
	case "bits":
		if len(args) != 1 {
			err = ErrOperandCount
			return
		}
		var bits int64
		bits, err = asm.valueOf(asm.resolve(args[0]))
		if err != nil {
			return
		}
		if bits != 16 {
			err = ErrBitsUnsupported
			return
		}
	case ".equ":
		if len(args) != 2 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[args[0]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[args[0]] = args[1]
	case "db":
		if len(args) == 0 {
			err = ErrOperandCount
			return
		}
		for _, arg := range args {
			var value int64
			value, err = asm.valueOf(asm.resolve(arg))
			if err != nil {
				return
			}
			if value < -0x80 || value > 0xff {
				err = ErrByteRange(arg)
				return
			}
			asm.pending = append(asm.pending, byte(value))
			if len(asm.pending) == len(isa.Code{}) {
				code := isa.Code(asm.pending)
				asm.emit(code, isa.Decode(code), lineno)
				asm.pending = asm.pending[:0]
			}
		}
	case "mov":
		if len(asm.pending) != 0 {
			err = ErrByteOdd
			return
		}
		if len(args) != 2 {
			err = ErrOperandCount
			return
		}
		var dst, src isa.Register
		dst, err = asm.register(args[0])
		if err != nil {
			return
		}
		src, err = asm.register(args[1])
		if err != nil {
			return
		}
		inst := isa.Move{Dst: dst, Src: src}
		var code isa.Code
		code, err = isa.Encode(inst)
		if err != nil {
			return
		}
		asm.emit(code, inst, lineno)
	default:
		err = ErrInstructionInvalid
	}

	return
}

// Parse parses an input stream into a Listing.
func (asm *Assembler) Parse(input io.Reader) (lst *listing.Listing, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.listing = &listing.Listing{}
	asm.pending = asm.pending[:0]
	asm.Equate = maps.Collect(internal.IterSeq2Concat(maps.All(sysEquate), maps.All(asm.predefine)))

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment, _, _ := strings.Cut(text, ";")
		line = strings.TrimSpace(text_comment)

		var mnemonic string
		var args []string
		mnemonic, args, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseArgs(mnemonic, args, lineno)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	if len(asm.pending) != 0 {
		err = ErrByteOdd
		return
	}

	lst = asm.listing

	return
}
