package ldst

// Resolve converts the operand of every statement into an 8-bit value.
// The symbols are only read.
func Resolve(statements []Statement, symbols SymbolLookup) (insts []Instruction, err error) {
	insts = make([]Instruction, 0, len(statements))

	for addr, st := range statements {
		var value uint8
		value, err = st.Operand.Resolve(symbols)
		if err != nil {
			err = &ErrAddress{Address: addr, Err: err}
			insts = nil
			return
		}

		insts = append(insts, Instruction{Opcode: st.Opcode, Operand: value})
	}

	return
}
