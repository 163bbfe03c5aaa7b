package ldst

import (
	"strconv"
	"strings"
	"unicode"
)

// OperandKind is the state of an unresolved operand.
type OperandKind int

//go:generate go tool stringer -linecomment -type=OperandKind
const (
	OPERAND_ABSENT  = OperandKind(0) // absent
	OPERAND_LITERAL = OperandKind(1) // literal
	OPERAND_SYMBOL  = OperandKind(2) // symbol
)

// ByteSelect selects the byte of a symbol value used as an operand.
type ByteSelect int

//go:generate go tool stringer -linecomment -type=ByteSelect
const (
	SELECT_BYTE = ByteSelect(0) // byte
	SELECT_HIGH = ByteSelect(1) // high
	SELECT_LOW  = ByteSelect(2) // low
)

// selectSuffix maps byte selections to their source suffix.
var selectSuffix = map[ByteSelect]string{
	SELECT_HIGH: ".H",
	SELECT_LOW:  ".L",
}

// Suffix returns the source suffix of the byte selection.
func (sel ByteSelect) Suffix() string {
	return selectSuffix[sel]
}

// Operand is an operand as written in the source.
type Operand struct {
	Kind   OperandKind
	Value  uint64     // Literal value, for OPERAND_LITERAL.
	Symbol string     // Symbol name, for OPERAND_SYMBOL.
	Select ByteSelect // Byte selection, for OPERAND_SYMBOL.
}

// SymbolLookup resolves symbol names to values.
type SymbolLookup interface {
	Lookup(name string) (value uint64, err error)
}

// isLiteral returns true if the word must be parsed as an integer literal.
func isLiteral(word string) bool {
	if len(word) > 1 && (word[0] == '-' || word[0] == '+') {
		word = word[1:]
	}
	return len(word) > 0 && word[0] >= '0' && word[0] <= '9'
}

// validSymbol returns true if the name can be used as a symbol.
func validSymbol(name string) bool {
	if len(name) == 0 || isLiteral(name) {
		return false
	}
	for _, r := range name {
		if unicode.IsSpace(r) || strings.ContainsRune(":;#", r) {
			return false
		}
	}
	return true
}

// ParseLiteral parses an integer literal, detecting the base from its prefix.
// Negative values are stored in two's complement.
func ParseLiteral(word string) (value uint64, err error) {
	value, err = strconv.ParseUint(word, 0, 64)
	if err == nil {
		return
	}

	v64, err := strconv.ParseInt(word, 0, 64)
	if err != nil {
		err = ErrLiteralInvalid(word)
		return
	}

	value = uint64(v64)
	return
}

// ParseOperand classifies an operand word.
func ParseOperand(word string) (op Operand, err error) {
	if len(word) == 0 {
		op = Operand{Kind: OPERAND_ABSENT}
		return
	}

	if isLiteral(word) {
		var value uint64
		value, err = ParseLiteral(word)
		if err != nil {
			return
		}
		op = Operand{Kind: OPERAND_LITERAL, Value: value}
		return
	}

	sel := SELECT_BYTE
	switch {
	case strings.HasSuffix(word, SELECT_HIGH.Suffix()):
		sel = SELECT_HIGH
	case strings.HasSuffix(word, SELECT_LOW.Suffix()):
		sel = SELECT_LOW
	}
	name := strings.TrimSuffix(word, sel.Suffix())

	if !validSymbol(name) {
		err = ErrSymbolName
		return
	}

	op = Operand{Kind: OPERAND_SYMBOL, Symbol: name, Select: sel}
	return
}

// Resolve returns the 8-bit value of the operand.
func (op Operand) Resolve(symbols SymbolLookup) (value uint8, err error) {
	switch op.Kind {
	case OPERAND_ABSENT:
		value = 0
	case OPERAND_LITERAL:
		value = uint8(op.Value & 0xff)
	case OPERAND_SYMBOL:
		var v64 uint64
		v64, err = symbols.Lookup(op.Symbol)
		if err != nil {
			return
		}
		if op.Select == SELECT_HIGH {
			v64 >>= 8
		}
		value = uint8(v64 & 0xff)
	}

	return
}

// String returns the operand as it would be written in the source.
func (op Operand) String() string {
	switch op.Kind {
	case OPERAND_LITERAL:
		return "0x" + strconv.FormatUint(op.Value, 16)
	case OPERAND_SYMBOL:
		return op.Symbol + op.Select.Suffix()
	}
	return ""
}
