// Package ldst implements the two-pass assembler for the LDST processor.
//
// The LDST processor has a 12-bit instruction word: a 4-bit opcode followed by
// an 8-bit operand. Its assembly language has one statement per line, labels
// terminated by ':', a DEFINE directive for named constants, and ';' comments.
// Register names (A, B, FLAGS, ALU) and the ALU function codes are predefined
// symbols.
//
// Pass 1 (Assembler.Parse) tokenizes each line, binds labels and defines, and
// records a Statement per instruction with its operand still symbolic. Pass 2
// (Resolve) turns every operand into an 8-bit value. Forward references are
// legal, since labels are all bound before pass 2 starts.
package ldst
