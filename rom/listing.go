package rom

import (
	"bufio"
	"fmt"

	"github.com/ezrec/ldst/ldst"
)

// writeListing writes the address, word, source line, source text and
// disassembly of each instruction.
func (rom *Rom) writeListing(bw *bufio.Writer) {
	fmt.Fprintf(bw, "ADDR WORD  LINE %-24v; %v\n", "SOURCE", "CODE")

	for addr, word := range rom.Data {
		lineno := 0
		if addr < len(rom.LineNo) {
			lineno = rom.LineNo[addr]
		}
		source := ""
		if addr < len(rom.Source) {
			source = rom.Source[addr]
		}
		fmt.Fprintf(bw, "%04x %03x  %4d %-24v; %v\n", addr, word, lineno, source, ldst.DecodeInstruction(word))
	}
}
