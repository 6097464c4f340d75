// Package lmc implements the machine and assembler for the Little Man
// Computer, a pedagogical decimal processor.
//
// The machine has 100 words of memory, an accumulator, and a program
// counter, all operating on three-decimal-digit words with tens-complement
// arithmetic (0..499 are non-negative, 500..999 represent -500..-1). It
// executes one fetch-decode-execute cycle per step and signals input,
// output, halt, and error conditions to its caller.
//
// The assembler translates the ten-opcode mnemonic language, with labels,
// an origin directive, and compile-time expression evaluation, into the
// packed word image the machine loads.
package lmc
