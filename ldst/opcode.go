package ldst

import (
	"fmt"
)

// Opcode is the 4-bit operation field of an instruction word.
type Opcode uint8

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_LD   = Opcode(0x0) // ld
	OP_ST   = Opcode(0x1) // st
	OP_LDI  = Opcode(0x2) // ldi
	OP_CALL = Opcode(0x4) // call
	OP_RET  = Opcode(0x5) // ret
	OP_JMP  = Opcode(0x8) // jmp
	OP_JZ   = Opcode(0x9) // jz
	OP_JC   = Opcode(0xa) // jc
	OP_JO   = Opcode(0xc) // jo
)

// OPCODE_MASK masks the significant bits of an Opcode.
const OPCODE_MASK = 0xf

// IMMEDIATE_MARK prefixes an LD operand to select OP_LDI.
const IMMEDIATE_MARK = "#"

// Mnemonic describes the encoding of an assembly mnemonic.
type Mnemonic struct {
	Opcode    Opcode // Opcode emitted.
	Operands  int    // Number of operands required (0 or 1).
	Immediate Opcode // Opcode emitted for an IMMEDIATE_MARK operand.
	HasImm    bool   // If set, IMMEDIATE_MARK selects Immediate.
}

// mnemonicMap is the fixed instruction set.
var mnemonicMap = map[string]Mnemonic{
	"LD":   {Opcode: OP_LD, Operands: 1, Immediate: OP_LDI, HasImm: true},
	"LDI":  {Opcode: OP_LDI, Operands: 1, Immediate: OP_LDI, HasImm: true},
	"ST":   {Opcode: OP_ST, Operands: 1},
	"CALL": {Opcode: OP_CALL, Operands: 1},
	"RET":  {Opcode: OP_RET, Operands: 0},
	"JMP":  {Opcode: OP_JMP, Operands: 1},
	"JZ":   {Opcode: OP_JZ, Operands: 1},
	"JC":   {Opcode: OP_JC, Operands: 1},
	"JO":   {Opcode: OP_JO, Operands: 1},
}

// LookupMnemonic returns the encoding of an upper-case mnemonic.
func LookupMnemonic(word string) (mn Mnemonic, ok bool) {
	mn, ok = mnemonicMap[word]
	return
}

// Instruction is a fully resolved instruction.
type Instruction struct {
	Opcode  Opcode
	Operand uint8
}

// Word returns the 12-bit instruction word.
func (inst Instruction) Word() uint16 {
	return (uint16(inst.Opcode&OPCODE_MASK) << 8) | uint16(inst.Operand)
}

// DecodeInstruction splits a 12-bit instruction word.
func DecodeInstruction(word uint16) Instruction {
	return Instruction{
		Opcode:  Opcode((word >> 8) & OPCODE_MASK),
		Operand: uint8(word & 0xff),
	}
}

// String returns the disassembly of the instruction.
func (inst Instruction) String() string {
	if inst.Opcode == OP_RET {
		return inst.Opcode.String()
	}
	if inst.Opcode == OP_LDI {
		return fmt.Sprintf("%v %v0x%02x", OP_LD, IMMEDIATE_MARK, inst.Operand)
	}
	return fmt.Sprintf("%v 0x%02x", inst.Opcode, inst.Operand)
}
