// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package ldst

import (
	"bufio"
	"io"
	"log"
	"os"
	"slices"
	"strings"
)

// LABEL_MARK terminates a label definition.
const LABEL_MARK = ":"

// DEFINE is the named constant directive.
const DEFINE = "DEFINE"

// Statement is an instruction recorded by pass 1, with its operand unresolved.
type Statement struct {
	LineNo  int      // Source line number.
	Words   []string // Source words, upper-cased.
	Opcode  Opcode   // Opcode to emit.
	Operand Operand  // Operand as written.
}

// Assembler is a two pass assembler for the LDST processor.
type Assembler struct {
	Verbose  bool   // If set, verbosely logs the assembler actions.
	Filename string // Source name reported in errors.

	Symbols    *SymbolTable // Symbols of the current assembly.
	Statements []Statement  // Statements of the current assembly.

	predefine      map[string]string
	predefineOrder []string
}

// Predefine defines a new symbol, or redefines a previous predefine,
// to be bound before each assembly.
func (asm *Assembler) Predefine(name string, value string) {
	name = strings.ToUpper(name)

	if asm.predefine == nil {
		asm.predefine = make(map[string]string)
	}
	if _, ok := asm.predefine[name]; !ok {
		asm.predefineOrder = append(asm.predefineOrder, name)
	}
	asm.predefine[name] = value
}

// reset prepares the assembler for a new source.
func (asm *Assembler) reset() (err error) {
	asm.Symbols = NewSymbolTable()
	asm.Statements = nil

	for _, name := range asm.predefineOrder {
		if !validSymbol(name) {
			err = ErrSymbolName
			return
		}
		err = asm.Symbols.Define(name, asm.predefine[name])
		if err != nil {
			return
		}
	}

	return
}

// ParseFile assembles a source file.
func (asm *Assembler) ParseFile(path string) (prog *Program, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	if len(asm.Filename) == 0 {
		asm.Filename = path
		defer func() { asm.Filename = "" }()
	}

	return asm.Parse(inf)
}

// Parse assembles an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	err = asm.reset()
	if err != nil {
		return
	}

	scanner := bufio.NewScanner(input)

	var lineno int
	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		err = asm.parseLine(Tokenize(text), lineno)
		if err != nil {
			err = &ErrLine{File: asm.Filename, LineNo: lineno, Line: strings.TrimSpace(text), Err: err}
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		err = &ErrLine{File: asm.Filename, LineNo: lineno + 1, Err: err}
		return
	}

	insts, err := Resolve(asm.Statements, asm.Symbols)
	if err != nil {
		return
	}

	if asm.Verbose {
		for addr, inst := range insts {
			log.Printf("%04x: %03x %v\n", addr, inst.Word(), inst)
		}
	}

	prog = &Program{
		Statements:   slices.Clone(asm.Statements),
		Instructions: insts,
		Symbols:      asm.Symbols,
	}

	return
}

// checkEnd verifies that a statement of count words has nothing after it.
func checkEnd(words []string, count int) (err error) {
	if len(words) > count {
		err = ErrOperandExtra
	}
	return
}

// parseLine records the statement of one line of words.
func (asm *Assembler) parseLine(words []string, lineno int) (err error) {
	if len(words) == 0 {
		return
	}

	head := words[0]

	// NAME:
	if strings.HasSuffix(head, LABEL_MARK) {
		name := strings.TrimSuffix(head, LABEL_MARK)
		if !validSymbol(name) {
			err = ErrSymbolName
			return
		}
		if len(words) > 1 {
			err = ErrLabelSyntax
			return
		}
		err = asm.Symbols.Set(name, uint64(len(asm.Statements)))
		return
	}

	// DEFINE NAME VALUE
	if head == DEFINE {
		if len(words) < 3 {
			err = ErrDefineSyntax
			return
		}
		err = checkEnd(words, 3)
		if err != nil {
			return
		}
		if !validSymbol(words[1]) {
			err = ErrSymbolName
			return
		}
		err = asm.Symbols.Define(words[1], words[2])
		return
	}

	mn, ok := LookupMnemonic(head)
	if !ok {
		err = ErrMnemonicInvalid
		return
	}

	if len(words) < 1+mn.Operands {
		err = ErrOperandMissing
		return
	}
	err = checkEnd(words, 1+mn.Operands)
	if err != nil {
		return
	}

	st := Statement{
		LineNo:  lineno,
		Words:   words,
		Opcode:  mn.Opcode,
		Operand: Operand{Kind: OPERAND_ABSENT},
	}

	if mn.Operands > 0 {
		word := words[1]
		if mn.HasImm && strings.HasPrefix(word, IMMEDIATE_MARK) {
			st.Opcode = mn.Immediate
			word = strings.TrimPrefix(word, IMMEDIATE_MARK)
			if len(word) == 0 {
				err = ErrOperandMissing
				return
			}
		}
		st.Operand, err = ParseOperand(word)
		if err != nil {
			return
		}
	}

	if asm.Verbose {
		log.Printf("%04x: %v %v\n", len(asm.Statements), st.Opcode, st.Operand)
	}

	asm.Statements = append(asm.Statements, st)

	return
}
