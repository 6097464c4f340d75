package lmc

import (
	"iter"
)

// Cell is one addressed memory word, the unit of exchange between the
// assembler and the machine.
type Cell struct {
	Addr int
	Word Word
}

// Image is an ordered sequence of cells in emission order. An origin
// directive may make the addresses non-monotonic.
type Image []Cell

// Line is one assembled source line: the emitted cell plus its origin in
// the source text.
type Line struct {
	LineNo int
	Source string
	Cell   Cell
}

// Program is the assembler output: the memory image together with the
// listing information needed to map an address back to its source line.
type Program struct {
	Lines []Line
}

// Image returns the loadable memory image.
func (prog *Program) Image() (img Image) {
	img = make(Image, 0, len(prog.Lines))
	for _, line := range prog.Lines {
		img = append(img, line.Cell)
	}
	return
}

// Cells iterates the image as (address, word) pairs in emission order.
func (prog *Program) Cells() iter.Seq2[int, Word] {
	return func(yield func(addr int, word Word) bool) {
		for _, line := range prog.Lines {
			if !yield(line.Cell.Addr, line.Cell.Word) {
				return
			}
		}
	}
}

// LineAt returns the source line number of the word at the given address,
// or 0 when the address holds no assembled word.
func (prog *Program) LineAt(addr int) int {
	for _, line := range prog.Lines {
		if line.Cell.Addr == addr {
			return line.LineNo
		}
	}

	return 0
}
