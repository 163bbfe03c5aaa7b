package rom

import (
	"bufio"
	"fmt"
)

// writeMem writes one hexadecimal word per line: the opcode digit, then
// two operand digits.
func (rom *Rom) writeMem(bw *bufio.Writer) {
	for _, word := range rom.Data {
		fmt.Fprintf(bw, "%01x%02x\n", (word>>8)&0xf, word&0xff)
	}
}
