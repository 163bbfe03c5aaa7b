package rom

import (
	"bufio"
	"fmt"
)

// writeVerilog writes a clocked ROM module with one case per address.
func (rom *Rom) writeVerilog(bw *bufio.Writer) {
	abits := rom.AddressBits()

	fmt.Fprintf(bw, "module %v (clock, address, data_out);\n", rom.Name)
	fmt.Fprintf(bw, "    input clock;\n")
	fmt.Fprintf(bw, "    input [%d:0] address;\n", abits-1)
	fmt.Fprintf(bw, "    output reg [%d:0] data_out;\n", WORD_BITS-1)
	fmt.Fprintf(bw, "\n")
	fmt.Fprintf(bw, "    always @ (posedge clock)\n")
	fmt.Fprintf(bw, "    begin\n")
	fmt.Fprintf(bw, "        case (address)\n")

	for addr, word := range rom.Data {
		fmt.Fprintf(bw, "            %d'h%04x: data_out = %d'h%03x;\n", abits, addr, WORD_BITS, word)
	}

	fmt.Fprintf(bw, "            default: data_out = %d'hxxx;\n", WORD_BITS)
	fmt.Fprintf(bw, "        endcase\n")
	fmt.Fprintf(bw, "    end\n")
	fmt.Fprintf(bw, "endmodule\n")
}
