package ldst

import (
	"iter"
	"strings"
)

// Program is an assembled program. The index of an instruction is its address.
type Program struct {
	Statements   []Statement   // Pass 1 statements, in address order.
	Instructions []Instruction // Resolved instructions, in address order.
	Symbols      *SymbolTable  // Symbols used to resolve the program.
}

// Debug relates an address to its source statement.
type Debug struct {
	*Statement
	Address     int
	Instruction Instruction
}

// Len returns the number of instructions.
func (prog *Program) Len() int {
	return len(prog.Instructions)
}

// Debug returns the source of the instruction at an address.
// The Statement is nil if the address is out of range.
func (prog *Program) Debug(addr int) (dbg Debug) {
	if addr < 0 || addr >= len(prog.Instructions) {
		return
	}

	dbg = Debug{
		Address:     addr,
		Instruction: prog.Instructions[addr],
	}
	if addr < len(prog.Statements) {
		dbg.Statement = &prog.Statements[addr]
	}

	return
}

// Source returns the normalized source text of the statement at an address.
func (prog *Program) Source(addr int) string {
	dbg := prog.Debug(addr)
	if dbg.Statement == nil {
		return ""
	}
	return strings.Join(dbg.Words, " ")
}

// Binary returns the 12-bit instruction words.
func (prog *Program) Binary() (bins []uint16) {
	for _, word := range prog.Words() {
		bins = append(bins, word)
	}

	return
}

// Words iterates over the addresses and 12-bit words of the program.
func (prog *Program) Words() iter.Seq2[int, uint16] {
	return func(yield func(addr int, word uint16) bool) {
		for addr, inst := range prog.Instructions {
			if !yield(addr, inst.Word()) {
				return
			}
		}
	}
}
