package lmc

// Opcode is the operation class of a machine word, encoded in its
// hundreds digit. Code 4 is unassigned.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_HLT = Opcode(0) // HLT
	OP_ADD = Opcode(1) // ADD
	OP_SUB = Opcode(2) // SUB
	OP_STA = Opcode(3) // STA
	OP_LDA = Opcode(5) // LDA
	OP_BRA = Opcode(6) // BRA
	OP_BRZ = Opcode(7) // BRZ
	OP_BRP = Opcode(8) // BRP
	OP_IO  = Opcode(9) // IO
)

// Address field values that select the I/O operation for OP_IO words.
const (
	IO_ADDR_INP = 1 // 901: read one value into the accumulator
	IO_ADDR_OUT = 2 // 902: write the accumulator
)

// RunState is the lifecycle state of a Machine.
type RunState int

//go:generate go tool stringer -linecomment -type=RunState
const (
	STATE_RUNNING = RunState(0) // run
	STATE_HALTED  = RunState(1) // halt
	STATE_ABORTED = RunState(2) // abort
)
