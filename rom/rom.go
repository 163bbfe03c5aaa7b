// Package rom formats assembled LDST programs as program ROM images.
package rom

import (
	"bufio"
	"bytes"
	"io"
	"math/bits"
	"path/filepath"

	"github.com/ezrec/ldst/ldst"
	"github.com/ezrec/ldst/translate"
)

var f = translate.From

// MODULE_NAME is the name of the Verilog program ROM module.
const MODULE_NAME = "LDST_PROGRAM_ROM"

// DEFAULT_OUTPUT is the output file used when none is given.
const DEFAULT_OUTPUT = "a.mem"

// WORD_BITS is the width of an instruction word.
const WORD_BITS = 12

// Format is an output file format.
type Format int

//go:generate go tool stringer -linecomment -type=Format
const (
	FORMAT_MEM     = Format(0) // mem
	FORMAT_VERILOG = Format(1) // verilog
	FORMAT_LISTING = Format(2) // listing
)

// formatExt maps output file extensions to formats.
var formatExt = map[string]Format{
	".mem": FORMAT_MEM,
	".v":   FORMAT_VERILOG,
}

// FormatOf returns the format selected by the extension of path.
// Unrecognized extensions select FORMAT_MEM.
func FormatOf(path string) Format {
	format, ok := formatExt[filepath.Ext(path)]
	if !ok {
		return FORMAT_MEM
	}
	return format
}

// Rom is the program ROM content.
type Rom struct {
	Name   string   // Module name, for FORMAT_VERILOG.
	Data   []uint16 // Instruction words.
	LineNo []int    // Source line of each word, for FORMAT_LISTING.
	Source []string // Source text of each word, for FORMAT_LISTING.
}

// New returns the ROM content of an assembled program.
func New(prog *ldst.Program) (rom *Rom) {
	rom = &Rom{
		Name: MODULE_NAME,
		Data: prog.Binary(),
	}

	for addr := range prog.Words() {
		dbg := prog.Debug(addr)
		lineno := 0
		if dbg.Statement != nil {
			lineno = dbg.LineNo
		}
		rom.LineNo = append(rom.LineNo, lineno)
		rom.Source = append(rom.Source, prog.Source(addr))
	}

	return
}

// AddressBits returns the address width of the ROM, which is at least 1.
func (rom *Rom) AddressBits() int {
	return max(1, bits.Len(uint(len(rom.Data))))
}

// Write writes the ROM in a format.
func (rom *Rom) Write(w io.Writer, format Format) (err error) {
	bw := bufio.NewWriter(w)

	switch format {
	case FORMAT_MEM:
		rom.writeMem(bw)
	case FORMAT_VERILOG:
		rom.writeVerilog(bw)
	case FORMAT_LISTING:
		rom.writeListing(bw)
	default:
		err = ErrFormatInvalid(format)
		return
	}

	return bw.Flush()
}

// Bytes returns the ROM in a format.
func (rom *Rom) Bytes(format Format) (data []byte, err error) {
	var buf bytes.Buffer

	err = rom.Write(&buf, format)
	if err != nil {
		return
	}

	data = buf.Bytes()
	return
}
