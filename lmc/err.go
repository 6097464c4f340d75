package lmc

import (
	"errors"

	"github.com/techrabbit58/madnick/translate"
)

var f = translate.From

var (
	// Machine errors
	ErrEndOfInput = errors.New(f("end of input"))

	// Assembler errors
	ErrLabelDuplicate     = errors.New(f("label duplicated"))
	ErrOperandMissing     = errors.New(f("operand missing"))
	ErrOperandExtra       = errors.New(f("excessive operands"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
)

// ErrInputRange reports an input value outside the machine word domain.
type ErrInputRange uint16

func (err ErrInputRange) Error() string {
	return f("input out of range (0..%d): %d", BASE-1, uint16(err))
}

// ErrBadInstruction reports an undefined (opcode, address) pair.
type ErrBadInstruction Instruction

func (err ErrBadInstruction) Error() string {
	return f("bad instruction (%d, %d)", int(err.Op), err.Addr)
}

// ErrLabelMissing reports a reference to a label never defined.
type ErrLabelMissing string

func (err ErrLabelMissing) Error() string {
	return f("label %v missing", string(err))
}

// ErrValueRange reports a data value outside -999..999.
type ErrValueRange int

func (err ErrValueRange) Error() string {
	return f("value %d out of range [%d ... %d]", int(err), -(BASE - 1), BASE-1)
}

// ErrAddrRange reports an address outside the memory array.
type ErrAddrRange int

func (err ErrAddrRange) Error() string {
	return f("address %d out of range [0 ... %d]", int(err), MEMSIZE-1)
}

// ErrWordRange reports a word outside the unsigned domain, found while
// loading a hand-built image.
type ErrWordRange int

func (err ErrWordRange) Error() string {
	return f("word %d out of range [0 ... %d]", int(err), BASE-1)
}

// ErrParseNumber reports an operand that is not a number.
type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

// ErrParseExpression reports a $() expression that does not evaluate to an
// integer.
type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrSyntax positions an assembly error in the source text. Assembly is
// all-or-nothing; the first ErrSyntax aborts the assemble call.
type ErrSyntax struct {
	LineNo int
	Column int
	Token  string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d column %d '%v' %v", err.LineNo, err.Column, err.Token, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
