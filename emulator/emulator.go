// Package emulator wires a machine to its default input and output
// adapters and keeps the assembled program listing alongside, so callers
// can assemble, load, step, and map addresses back to source lines
// through one facade.
package emulator

import (
	stdio "io"

	"github.com/techrabbit58/madnick/io"
	"github.com/techrabbit58/madnick/lmc"
)

// FEED_CAPACITY is the default capacity of the interactive input feed.
const FEED_CAPACITY = 64

// Emulator state. Machine + program listing + IO adapters.
type Emulator struct {
	Verbose      bool // If set, enables verbose logging.
	*lmc.Machine      // The machine simulation.

	Program *lmc.Program // The currently loaded program listing.

	Feed  io.Feed      // Interactive input feed (default input).
	Punch io.CardPunch // Collected output (default output).
	Tape  io.Tape      // Stream IO alternative.
}

// NewEmulator creates an emulator with the feed and punch wired as the
// machine adapters.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Machine: lmc.NewMachine(),
		Program: &lmc.Program{},
	}

	emu.Feed.Capacity = FEED_CAPACITY
	emu.Feed.Reset()

	emu.SetInput(&emu.Feed)
	emu.SetOutput(&emu.Punch)

	return
}

// UseTape switches both adapters to the stream tape.
func (emu *Emulator) UseTape() {
	emu.SetInput(&emu.Tape)
	emu.SetOutput(&emu.Tape)
}

// LoadSource assembles a source stream and loads the image.
func (emu *Emulator) LoadSource(input stdio.Reader) (err error) {
	asm := &lmc.Assembler{Verbose: emu.Verbose}

	prog, err := asm.Parse(input)
	if err != nil {
		return
	}

	emu.Program = prog
	err = emu.Load(prog.Image())
	return
}

// ProvideInput pushes one signed value onto the interactive feed.
func (emu *Emulator) ProvideInput(value int) error {
	return emu.Feed.Push(value)
}

// LineNo returns the source line of the next instruction, or 0 when the
// program counter points outside the program.
func (emu *Emulator) LineNo() int {
	return emu.Program.LineAt(emu.PC())
}

// Step performs a single machine step and reports whether execution has
// reached a terminal state.
func (emu *Emulator) Step() (done bool) {
	emu.Machine.Verbose = emu.Verbose

	emu.SingleStep()
	return emu.State() != lmc.STATE_RUNNING
}

// Run drives the machine to termination. An aborted machine yields the
// captured fault, positioned at the faulting source line.
func (emu *Emulator) Run() (err error) {
	emu.Machine.Verbose = emu.Verbose

	emu.Machine.Run()
	if emu.State() == lmc.STATE_ABORTED {
		err = &ErrRuntime{LineNo: emu.Program.LineAt(emu.PC() - 1), Err: emu.Err()}
	}

	return
}
