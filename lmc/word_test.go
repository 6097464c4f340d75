package lmc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComplement(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		signed   int
		unsigned Word
	}){
		{0, 0},
		{1, 1},
		{-1, 999},
		{-499, 501},
		{-500, 500},
		{499, 499},
	}

	for _, entry := range table {
		assert.Equal(entry.unsigned, ToUnsigned(entry.signed))
	}
}

func TestComplementRoundTrip(t *testing.T) {
	assert := assert.New(t)

	for signed := -BASE / 2; signed < BASE/2; signed++ {
		assert.Equal(signed, ToUnsigned(signed).Signed())
	}
}

func TestWordDecode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		word Word
		in   Instruction
	}){
		{0, Instruction{OP_HLT, 0}},
		{123, Instruction{OP_ADD, 23}},
		{299, Instruction{OP_SUB, 99}},
		{306, Instruction{OP_STA, 6}},
		{550, Instruction{OP_LDA, 50}},
		{600, Instruction{OP_BRA, 0}},
		{707, Instruction{OP_BRZ, 7}},
		{842, Instruction{OP_BRP, 42}},
		{901, Instruction{OP_IO, IO_ADDR_INP}},
		{902, Instruction{OP_IO, IO_ADDR_OUT}},
	}

	for _, entry := range table {
		assert.Equal(entry.in, entry.word.Decode())
		assert.Equal(entry.word, entry.in.Word())
	}
}

func TestDisassemble(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		in   Instruction
		text string
	}){
		{Instruction{OP_HLT, 0}, "HLT"},
		{Instruction{OP_HLT, 42}, "HLT"},
		{Instruction{OP_ADD, 42}, "ADD 42"},
		{Instruction{OP_SUB, 5}, "SUB 5"},
		{Instruction{OP_STA, 99}, "STA 99"},
		{Instruction{OP_LDA, 0}, "LDA 0"},
		{Instruction{OP_BRA, 10}, "BRA 10"},
		{Instruction{OP_BRZ, 11}, "BRZ 11"},
		{Instruction{OP_BRP, 12}, "BRP 12"},
		{Instruction{OP_IO, 1}, "INP"},
		{Instruction{OP_IO, 2}, "OUT"},
		{Instruction{OP_IO, 5}, "undefined (9, 5)"},
		{Instruction{Opcode(4), 0}, "undefined (4, 0)"},
	}

	for _, entry := range table {
		assert.Equal(entry.text, entry.in.String())
	}
}

func TestRunStateString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("run", STATE_RUNNING.String())
	assert.Equal("halt", STATE_HALTED.String())
	assert.Equal("abort", STATE_ABORTED.String())
}
