package ldst

import (
	"iter"
	"maps"

	"github.com/ezrec/ldst/internal"
)

// Register aliases, and ALU function codes, in listing order.
var sysOrder = []string{
	"A", "B", "FLAGS", "ALU",
	"AND", "NAND", "OR", "NOR", "NOT", "XOR", "XNOR",
	"ADD", "ADC", "SUB", "SBC",
	"SHL", "SHCL", "SHR", "SHCR", "SAR",
}

// Predefined system symbols.
var sysSymbol = map[string]uint64{
	"A":     0,
	"B":     1,
	"FLAGS": 2,
	"ALU":   3,

	"AND":  0x00,
	"NAND": 0x04,
	"OR":   0x20,
	"NOR":  0x24,
	"NOT":  0x2c,
	"XOR":  0x40,
	"XNOR": 0x44,
	"ADD":  0x80,
	"ADC":  0x81,
	"SUB":  0x82,
	"SBC":  0x83,
	"SHL":  0xa0,
	"SHCL": 0xa1,
	"SHR":  0xc0,
	"SHCR": 0xc1,
	"SAR":  0xe0,
}

// SymbolTable maps symbol names to values for one assembly.
type SymbolTable struct {
	symbols map[string]uint64
	order   []string // User symbols, in definition order.
}

var _ SymbolLookup = (*SymbolTable)(nil)

// NewSymbolTable returns a symbol table holding only the system symbols.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		symbols: maps.Clone(sysSymbol),
	}
}

// Set binds a new symbol to a value.
func (st *SymbolTable) Set(name string, value uint64) (err error) {
	_, ok := st.symbols[name]
	if ok {
		err = ErrSymbolDuplicate(name)
		return
	}

	st.symbols[name] = value
	st.order = append(st.order, name)
	return
}

// Define binds a new symbol to the value of an integer literal.
func (st *SymbolTable) Define(name string, raw string) (err error) {
	_, ok := st.symbols[name]
	if ok {
		err = ErrSymbolDuplicate(name)
		return
	}

	value, err := ParseLiteral(raw)
	if err != nil {
		return
	}

	return st.Set(name, value)
}

// Lookup returns the value of a symbol.
func (st *SymbolTable) Lookup(name string) (value uint64, err error) {
	value, ok := st.symbols[name]
	if !ok {
		err = ErrSymbolUndefined(name)
	}
	return
}

// Builtin returns true if the name is a system symbol.
func (st *SymbolTable) Builtin(name string) (ok bool) {
	_, ok = sysSymbol[name]
	return
}

// Len returns the number of symbols, including system symbols.
func (st *SymbolTable) Len() int {
	return len(st.symbols)
}

// All iterates over the system symbols, then the user symbols in definition order.
func (st *SymbolTable) All() iter.Seq2[string, uint64] {
	return internal.IterSeq2Concat(
		internal.IterSeq2Ordered(sysOrder, st.symbols),
		internal.IterSeq2Ordered(st.order, st.symbols),
	)
}
