package lmc

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// sourceFunc adapts a func to the InputSource contract for tests.
type sourceFunc func() (uint16, bool)

func (fn sourceFunc) Next() (value uint16, ok bool) { return fn() }

// sinkFunc adapts a func to the OutputSink contract for tests.
type sinkFunc func(uint16)

func (fn sinkFunc) Emit(value uint16) { fn(value) }

func cardSource(values ...uint16) InputSource {
	return sourceFunc(func() (value uint16, ok bool) {
		if len(values) == 0 {
			return
		}
		value, values, ok = values[0], values[1:], true
		return
	})
}

func TestMachinePowerOn(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine()

	assert.Equal(STATE_RUNNING, m.State())
	assert.Equal(0, m.PC())
	assert.Equal(Word(0), m.ACC())
	assert.Equal(Instruction{}, m.CIR())
	assert.True(m.IsZero())
	assert.True(m.IsNonnegative())
	assert.NoError(m.Err())
}

func TestMachineLoad(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine()

	err := m.Load(Image{{0, 901}, {99, 42}})
	assert.NoError(err)

	mem := m.Memory()
	assert.Equal(Word(901), mem[0])
	assert.Equal(Word(42), mem[99])

	// Registers go back to power-on defaults, memory stays.
	assert.Equal(0, m.PC())
	assert.Equal(Word(901), m.Memory()[0])
}

func TestMachineLoadRange(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine()

	err := m.Load(Image{{120, 5}})
	var ar ErrAddrRange
	assert.True(errors.As(err, &ar))

	err = m.Load(Image{{5, 1200}})
	var wr ErrWordRange
	assert.True(errors.As(err, &wr))
}

func TestMachineAddWrap(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine()

	// LDA 3 / ADD 4 / HLT with 999 and 2 as data.
	err := m.Load(Image{{0, 503}, {1, 104}, {2, 0}, {3, 999}, {4, 2}})
	assert.NoError(err)

	m.Run()

	assert.Equal(STATE_HALTED, m.State())
	assert.Equal(Word(1), m.ACC())
	assert.Equal(1, m.Carry())
	assert.False(m.IsZero())
	assert.True(m.IsNonnegative())
}

func TestMachineAddToZero(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine()

	// 999 + 1 wraps to 0, never 1000.
	err := m.Load(Image{{0, 503}, {1, 104}, {2, 0}, {3, 999}, {4, 1}})
	assert.NoError(err)

	m.Run()

	assert.Equal(Word(0), m.ACC())
	assert.True(m.IsZero())
}

func TestMachineSub(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine()

	// LDA 3 / SUB 4 / HLT computes 4 - 17 = -13.
	err := m.Load(Image{{0, 503}, {1, 204}, {2, 0}, {3, 4}, {4, 17}})
	assert.NoError(err)

	m.Run()

	assert.Equal(Word(987), m.ACC())
	assert.Equal(-13, m.ACC().Signed())
	assert.False(m.IsNonnegative())
}

func TestMachineSta(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine()

	// LDA 3 / STA 4 / HLT
	err := m.Load(Image{{0, 503}, {1, 304}, {2, 0}, {3, 42}})
	assert.NoError(err)

	m.Run()

	assert.Equal(Word(42), m.Memory()[4])
	assert.Equal(Word(42), m.MDR())
}

func TestMachineBranches(t *testing.T) {
	assert := assert.New(t)

	// BRA always redirects the program counter.
	m := NewMachine()
	assert.NoError(m.Load(Image{{0, 650}}))
	m.SingleStep()
	assert.Equal(50, m.PC())

	// BRZ taken with a zero accumulator.
	m = NewMachine()
	assert.NoError(m.Load(Image{{0, 750}}))
	m.SingleStep()
	assert.Equal(50, m.PC())

	// BRZ and BRP not taken with a negative accumulator.
	m = NewMachine()
	assert.NoError(m.Load(Image{{0, 509}, {1, 750}, {2, 850}, {9, 600}}))
	m.SingleStep()
	assert.Equal(Word(600), m.ACC())
	m.SingleStep()
	assert.Equal(2, m.PC())
	m.SingleStep()
	assert.Equal(3, m.PC())

	// BRP taken with a non-negative accumulator.
	m = NewMachine()
	assert.NoError(m.Load(Image{{0, 850}}))
	m.SingleStep()
	assert.Equal(50, m.PC())
}

func TestMachineInput(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine()
	m.SetInput(cardSource(17))

	err := m.Load(Image{{0, 901}, {1, 0}})
	assert.NoError(err)

	m.Run()

	assert.Equal(STATE_HALTED, m.State())
	assert.Equal(Word(17), m.ACC())
}

func TestMachineEndOfInput(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine()
	m.SetInput(cardSource())

	err := m.Load(Image{{0, 901}})
	assert.NoError(err)

	m.Run()

	assert.Equal(STATE_ABORTED, m.State())
	assert.ErrorIs(m.Err(), ErrEndOfInput)
}

func TestMachineNoInputAdapter(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine()
	assert.NoError(m.Load(Image{{0, 901}}))

	m.Run()

	assert.Equal(STATE_ABORTED, m.State())
	assert.ErrorIs(m.Err(), ErrEndOfInput)
}

func TestMachineInputRange(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine()
	m.SetInput(cardSource(1234))

	assert.NoError(m.Load(Image{{0, 901}}))

	m.Run()

	assert.Equal(STATE_ABORTED, m.State())
	var ir ErrInputRange
	assert.True(errors.As(m.Err(), &ir))
	assert.Equal(uint16(1234), uint16(ir))
}

func TestMachineOutput(t *testing.T) {
	assert := assert.New(t)

	var outputs []uint16

	m := NewMachine()
	m.SetOutput(sinkFunc(func(value uint16) { outputs = append(outputs, value) }))

	// LDA 3 / OUT / HLT
	err := m.Load(Image{{0, 503}, {1, 902}, {2, 0}, {3, 21}})
	assert.NoError(err)

	m.Run()

	assert.Equal([]uint16{21}, outputs)
}

func TestMachineBadInstruction(t *testing.T) {
	assert := assert.New(t)

	for _, word := range []Word{400, 905, 999} {
		m := NewMachine()
		assert.NoError(m.Load(Image{{0, word}}))

		m.Run()

		assert.Equal(STATE_ABORTED, m.State(), word)
		var bi ErrBadInstruction
		assert.True(errors.As(m.Err(), &bi), word)
		assert.Equal(ErrBadInstruction(word.Decode()), bi, word)
	}
}

func TestMachineTerminalIdempotence(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine()
	assert.NoError(m.Load(Image{{0, 503}, {1, 0}, {3, 7}}))

	m.Run()
	assert.Equal(STATE_HALTED, m.State())

	pc, acc, mem := m.PC(), m.ACC(), m.Memory()
	m.SingleStep()
	m.SingleStep()

	assert.Equal(STATE_HALTED, m.State())
	assert.Equal(pc, m.PC())
	assert.Equal(acc, m.ACC())
	assert.Equal(mem, m.Memory())
	assert.NoError(m.Err())
}

func TestMachineResetAndClear(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine()
	assert.NoError(m.Load(Image{{0, 503}, {1, 0}, {3, 7}}))

	m.Run()
	assert.Equal(STATE_HALTED, m.State())

	// Reset rewinds the registers but keeps memory.
	m.Reset()
	assert.Equal(STATE_RUNNING, m.State())
	assert.Equal(0, m.PC())
	assert.Equal(Word(7), m.Memory()[3])

	m.Run()
	assert.Equal(Word(7), m.ACC())

	// Clear also zeroes memory.
	m.Clear()
	assert.Equal(Word(0), m.Memory()[3])
	assert.Equal(STATE_RUNNING, m.State())
}

func TestMachineString(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine()
	assert.NoError(m.Load(Image{{0, 503}, {3, 7}}))

	dump := m.String()
	assert.True(strings.HasPrefix(dump, "MEMORY"))
	assert.Contains(dump, "503")
	assert.Contains(dump, "Current instruction: HLT")
}
