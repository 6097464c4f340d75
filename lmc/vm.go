package lmc

import (
	"fmt"
	"log"
	"strings"
)

// Machine is the Little Man Computer: 100 words of memory, the register
// set, and the fetch-decode-execute cycle. One machine is driven by one
// caller at a time; independent machines share no state.
type Machine struct {
	Verbose bool // If set, verbosely logs the machine actions.

	mem [MEMSIZE]Word

	pc  int         // program counter
	acc Word        // accumulator
	mar int         // memory address register
	mdr Word        // memory data register
	cir Instruction // current instruction register

	carry         int
	isZero        bool
	isNonnegative bool

	terminated bool
	fault      error

	input  InputSource
	output OutputSink
}

// NewMachine creates a machine in its power-on state.
func NewMachine() (m *Machine) {
	m = &Machine{}
	m.Reset()
	return
}

// SetInput installs the input adapter consulted by INP.
func (m *Machine) SetInput(source InputSource) {
	m.input = source
}

// SetOutput installs the output adapter fed by OUT.
func (m *Machine) SetOutput(sink OutputSink) {
	m.output = sink
}

// Reset returns registers and flags to their power-on defaults. Memory is
// left untouched.
func (m *Machine) Reset() {
	if m.Verbose {
		log.Printf("machine: reset")
	}

	m.pc = 0
	m.acc = 0
	m.mar = 0
	m.mdr = 0
	m.cir = Instruction{}
	m.carry = 0
	m.setFlags()
	m.terminated = false
	m.fault = nil
}

// Clear zeroes memory, then resets.
func (m *Machine) Clear() {
	clear(m.mem[:])
	m.Reset()
}

// Load writes an image into memory, then resets registers and flags
// without clearing the rest of memory. A cell outside the address or word
// domain fails the whole load.
func (m *Machine) Load(img Image) (err error) {
	for _, cell := range img {
		if cell.Addr < 0 || cell.Addr >= MEMSIZE {
			return ErrAddrRange(cell.Addr)
		}
		if cell.Word < 0 || cell.Word >= BASE {
			return ErrWordRange(cell.Word)
		}
		m.mar, m.mdr = cell.Addr, cell.Word
		m.writeMem()
	}
	m.Reset()
	return
}

func (m *Machine) writeMem() {
	m.mem[m.mar] = m.mdr
}

func (m *Machine) readMem() {
	m.mdr = m.mem[m.mar]
}

func (m *Machine) setFlags() {
	m.isZero = m.acc == 0
	m.isNonnegative = m.acc < BASE/2
}

// abort records a runtime fault and terminates execution.
func (m *Machine) abort(err error) {
	if m.Verbose {
		log.Printf("machine: abort at %02d: %v", m.pc-1, err)
	}
	m.fault = err
	m.terminated = true
}

func (m *Machine) fetch() {
	m.mar = m.pc
	m.readMem()
	m.pc = (m.pc + 1) % MEMSIZE
}

func (m *Machine) decode() {
	m.cir = m.mdr.Decode()
	m.mar = m.cir.Addr
	m.readMem()
}

func (m *Machine) execute() {
	if m.Verbose {
		log.Printf("machine: %02d: %v", m.pc-1, m.cir)
	}

	switch m.cir.Op {
	case OP_HLT:
		m.terminated = true
	case OP_ADD:
		m.acc += m.mdr
	case OP_SUB:
		m.acc += BASE - m.mdr
	case OP_STA:
		m.mdr = m.acc
		m.writeMem()
	case OP_LDA:
		m.acc = m.mdr
	case OP_BRA:
		m.pc = m.mar
	case OP_BRZ:
		if m.isZero {
			m.pc = m.mar
		}
	case OP_BRP:
		if m.isNonnegative {
			m.pc = m.mar
		}
	case OP_IO:
		if !m.io() {
			return
		}
	default:
		m.abort(ErrBadInstruction(m.cir))
	}

	m.carry = int(m.acc) / BASE
	m.acc %= BASE
	m.setFlags()
}

// io dispatches the OP_IO address field. A false return means the cycle
// aborted before the accumulator truncation.
func (m *Machine) io() (ok bool) {
	switch m.cir.Addr {
	case IO_ADDR_INP:
		if m.input == nil {
			m.abort(ErrEndOfInput)
			return
		}
		value, have := m.input.Next()
		if !have {
			m.abort(ErrEndOfInput)
			return
		}
		if value >= BASE {
			m.abort(ErrInputRange(value))
			return
		}
		m.acc = Word(value)
	case IO_ADDR_OUT:
		if m.output != nil {
			m.output.Emit(uint16(m.acc))
		}
	default:
		m.abort(ErrBadInstruction(m.cir))
	}

	return true
}

// SingleStep executes exactly one fetch-decode-execute cycle. It is a
// no-op once the machine has halted or aborted.
func (m *Machine) SingleStep() {
	if m.State() != STATE_RUNNING {
		return
	}

	m.fetch()
	m.decode()
	m.execute()
}

// Run steps until the machine leaves the running state.
func (m *Machine) Run() {
	for m.State() == STATE_RUNNING {
		m.SingleStep()
	}
}

// State reports the lifecycle state. Halted and aborted are terminal
// until an explicit Reset.
func (m *Machine) State() RunState {
	switch {
	case !m.terminated:
		return STATE_RUNNING
	case m.fault != nil:
		return STATE_ABORTED
	default:
		return STATE_HALTED
	}
}

// Err returns the captured runtime fault, or nil.
func (m *Machine) Err() error {
	return m.fault
}

// PC returns the program counter.
func (m *Machine) PC() int { return m.pc }

// ACC returns the accumulator.
func (m *Machine) ACC() Word { return m.acc }

// MAR returns the memory address register.
func (m *Machine) MAR() int { return m.mar }

// MDR returns the memory data register.
func (m *Machine) MDR() Word { return m.mdr }

// CIR returns the current instruction register.
func (m *Machine) CIR() Instruction { return m.cir }

// Carry returns the overflow digit of the last accumulator truncation.
func (m *Machine) Carry() int { return m.carry }

// IsZero reports the zero flag.
func (m *Machine) IsZero() bool { return m.isZero }

// IsNonnegative reports the non-negative flag of the tens-complement
// accumulator.
func (m *Machine) IsNonnegative() bool { return m.isNonnegative }

// Memory returns a copy of the raw memory array.
func (m *Machine) Memory() (mem []Word) {
	mem = make([]Word, MEMSIZE)
	copy(mem, m.mem[:])
	return
}

// String renders the classic memory dump with the current instruction.
func (m *Machine) String() string {
	var sb strings.Builder

	rule := "-----" + strings.Repeat("------", 10)
	sb.WriteString("MEMORY   0     1     2     3     4     5     6     7     8     9\n")
	sb.WriteString(rule + "\n")
	for i := 0; i < MEMSIZE; i += 10 {
		fmt.Fprintf(&sb, "%3d: ", i)
		for j := range 10 {
			fmt.Fprintf(&sb, " %5d", int(m.mem[i+j]))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(rule + "\n")
	fmt.Fprintf(&sb, "        Current instruction: %v\n", m.cir)

	return sb.String()
}
