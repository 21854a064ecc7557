// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bufio"
	"bytes"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/ezrec/sim8086/asm"
	"github.com/ezrec/sim8086/listing"
)

// disassemble decodes each object file in turn into one listing.
func disassemble(paths []string, strict bool, verbose bool) (lst *listing.Listing, err error) {
	var parts []*listing.Listing

	for _, path := range paths {
		var inf *os.File
		inf, err = os.Open(path)
		if err != nil {
			return
		}

		rd := &listing.Reader{
			Input:   bufio.NewReader(inf),
			Strict:  strict,
			Verbose: verbose,
		}

		var part *listing.Listing
		part, err = rd.Read()
		inf.Close()
		if err != nil {
			err = fmt.Errorf("%v: %w", path, err)
			return
		}
		parts = append(parts, part)
	}

	lst = listing.Concat(parts...)

	return
}

// assemble parses a source file into a listing.
func assemble(path string, verbose bool) (lst *listing.Listing, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	as := &asm.Assembler{Verbose: verbose}
	lst, err = as.Parse(inf)
	if err != nil {
		err = fmt.Errorf("%v: %w", path, err)
	}

	return
}

// writeOutput renders the listing, as object code if binary is set, and
// writes it to output. The output file is only created once the listing is
// fully rendered, so it may safely name one of the inputs.
func writeOutput(lst *listing.Listing, output string, binary bool) (err error) {
	var data []byte
	if binary {
		data = lst.Binary()
	} else {
		var buf bytes.Buffer
		_, err = lst.WriteTo(&buf)
		if err != nil {
			return
		}
		data = buf.Bytes()
	}

	if output == "-" {
		_, err = os.Stdout.Write(data)
		return
	}

	return os.WriteFile(output, data, 0o644)
}

// run assembles source, or disassembles the object files in args, then
// writes the result to output.
func run(source string, output string, args []string, strict bool, verbose bool) (err error) {
	var lst *listing.Listing

	if len(source) != 0 {
		if len(args) != 0 {
			err = fmt.Errorf("unknown arguments: %v", args)
			return
		}
		if output == "-" && term.IsTerminal(int(os.Stdout.Fd())) {
			err = errors.New("refusing to write object code to a terminal")
			return
		}
		lst, err = assemble(source, verbose)
	} else {
		lst, err = disassemble(args, strict, verbose)
	}
	if err != nil {
		return
	}

	err = writeOutput(lst, output, len(source) != 0)
	if err != nil {
		err = fmt.Errorf("%v: %w", output, err)
	}

	return
}

func main() {
	var source string
	var output string
	var strict bool
	var verbose bool

	flag.StringVar(&source, "a", "", ".asm file to assemble")
	flag.StringVar(&output, "o", "-", "Output file")
	flag.BoolVar(&strict, "strict", false, "Reject codes that are not register moves")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %v [-strict] [-v] [-o listing.asm] FILE...\n", os.Args[0])
		fmt.Fprintf(flag.CommandLine.Output(), "       %v -a FILE.asm [-v] -o FILE\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.Parse()

	if len(source) == 0 && flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	err := run(source, output, flag.Args(), strict, verbose)
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}
}
