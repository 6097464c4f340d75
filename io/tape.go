package io

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/techrabbit58/madnick/lmc"
)

// Tape streams decimal numbers over an io.Reader for input and an
// io.Writer for output, one value per whitespace-separated token in and
// one value per line out. A token that is not a number ends the tape.
type Tape struct {
	Input  io.Reader
	Output io.Writer
	Signed bool

	scanner *bufio.Scanner
}

var _ lmc.InputSource = (*Tape)(nil)
var _ lmc.OutputSink = (*Tape)(nil)

// Next scans the next number from the input stream, converted
// tens-complement.
func (tp *Tape) Next() (value uint16, ok bool) {
	if tp.Input == nil {
		return
	}
	if tp.scanner == nil {
		tp.scanner = bufio.NewScanner(tp.Input)
		tp.scanner.Split(bufio.ScanWords)
	}

	if !tp.scanner.Scan() {
		return
	}
	number, err := strconv.Atoi(strings.Trim(tp.scanner.Text(), ","))
	if err != nil {
		return
	}

	value = uint16(lmc.ToUnsigned(number))
	ok = true
	return
}

// Emit writes one value to the output stream, signed or raw per the
// Signed flag.
func (tp *Tape) Emit(value uint16) {
	if tp.Output == nil {
		return
	}

	out := int(value)
	if tp.Signed {
		out = lmc.Word(value).Signed()
	}
	fmt.Fprintf(tp.Output, "%d\n", out)
}
