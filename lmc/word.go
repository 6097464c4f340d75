package lmc

import (
	"fmt"
)

const (
	MEMSIZE = 100  // memory size in words
	BASE    = 1000 // numeric base of the tens-complement domain
)

// Word is a machine word in the unsigned tens-complement domain 0..999.
// Values 0..499 represent themselves, values 500..999 represent -500..-1.
type Word int

// ToUnsigned converts a signed integer to its tens-complement word.
// The domain -999..999 maps onto 0..999, but only -500..499 is meaningful
// as a signed quantity.
func ToUnsigned(value int) Word {
	if value < 0 {
		return Word(BASE + value)
	}
	return Word(value)
}

// Signed interprets the word under the tens-complement convention.
func (w Word) Signed() int {
	if int(w) >= BASE/2 {
		return int(w) - BASE
	}
	return int(w)
}

// Decode splits the word into its (opcode, address) pair.
func (w Word) Decode() Instruction {
	return Instruction{
		Op:   Opcode(int(w) / MEMSIZE),
		Addr: int(w) % MEMSIZE,
	}
}

// Instruction is a decoded (opcode, address) pair.
type Instruction struct {
	Op   Opcode
	Addr int
}

// Word packs the instruction back into a machine word.
func (in Instruction) Word() Word {
	return Word(int(in.Op)*MEMSIZE + in.Addr)
}

// String returns the canonical mnemonic with its operand, for display only.
func (in Instruction) String() string {
	switch {
	case in.Op == OP_HLT:
		return OP_HLT.String()
	case in.Op == OP_IO && in.Addr == IO_ADDR_INP:
		return "INP"
	case in.Op == OP_IO && in.Addr == IO_ADDR_OUT:
		return "OUT"
	case in.Op >= OP_ADD && in.Op <= OP_STA, in.Op >= OP_LDA && in.Op <= OP_BRP:
		return fmt.Sprintf("%v %d", in.Op, in.Addr)
	}
	return fmt.Sprintf("undefined (%d, %d)", int(in.Op), in.Addr)
}
