// Package io provides input and output adapters for the machine. The
// machine itself never performs I/O; these adapters satisfy its narrow
// InputSource and OutputSink contracts: fixed card decks (CardReader),
// collecting output (CardPunch), caller-fed queues (Feed), and number
// streams over readers and writers (Tape).
package io

import (
	"strconv"
	"strings"

	"github.com/techrabbit58/madnick/lmc"
)

// CardReader supplies input values from a fixed deck of cards. Signed
// card values are converted tens-complement on construction.
type CardReader struct {
	cards []lmc.Word
	next  int
}

var _ lmc.InputSource = (*CardReader)(nil)

// NewCardReader creates a reader over the given signed values.
func NewCardReader(values ...int) (cr *CardReader) {
	cr = &CardReader{
		cards: make([]lmc.Word, 0, len(values)),
	}
	for _, value := range values {
		cr.cards = append(cr.cards, lmc.ToUnsigned(value))
	}
	return
}

// Rewind restarts the deck from the first card.
func (cr *CardReader) Rewind() {
	cr.next = 0
}

// Next returns the next card, or not ok past the end of the deck.
func (cr *CardReader) Next() (value uint16, ok bool) {
	if cr.next >= len(cr.cards) {
		return
	}

	value = uint16(cr.cards[cr.next])
	cr.next++
	ok = true
	return
}

// CardPunch collects output values. Signed selects tens-complement
// interpretation when rendering.
type CardPunch struct {
	Signed    bool
	Separator string // Defaults to ", ".

	cards []uint16
}

var _ lmc.OutputSink = (*CardPunch)(nil)

// Emit appends one value to the punched output.
func (cp *CardPunch) Emit(value uint16) {
	cp.cards = append(cp.cards, value)
}

// Reset discards the punched output.
func (cp *CardPunch) Reset() {
	cp.cards = cp.cards[:0]
}

// Values returns the punched output, signed or raw per the Signed flag.
func (cp *CardPunch) Values() (values []int) {
	values = make([]int, 0, len(cp.cards))
	for _, card := range cp.cards {
		if cp.Signed {
			values = append(values, lmc.Word(card).Signed())
		} else {
			values = append(values, int(card))
		}
	}
	return
}

// String joins the punched values with the separator.
func (cp *CardPunch) String() string {
	sep := cp.Separator
	if len(sep) == 0 {
		sep = ", "
	}

	fields := make([]string, 0, len(cp.cards))
	for _, value := range cp.Values() {
		fields = append(fields, strconv.Itoa(value))
	}
	return strings.Join(fields, sep)
}
