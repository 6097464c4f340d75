package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/techrabbit58/madnick/emulator"
	"github.com/techrabbit58/madnick/io"
)

func main() {
	var cards string
	var signed bool
	var input string
	var output string
	var trace bool
	var verbose bool

	flag.StringVar(&cards, "c", "", "Comma separated input values")
	flag.BoolVar(&signed, "s", false, "Signed output values")
	flag.StringVar(&input, "i", "", "Number tape input ('-' for stdin)")
	flag.StringVar(&output, "o", "", "Number tape output ('-' for stdout)")
	flag.BoolVar(&trace, "t", false, "Dump machine state after every step")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("%v: Expected one program file, got: %v", os.Args[0], flag.Args())
	}
	program := flag.Arg(0)

	inf, err := os.Open(program)
	if err != nil {
		log.Fatalf("%v: %v", program, err)
	}
	defer inf.Close()

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	emu.Punch.Signed = signed

	err = emu.LoadSource(inf)
	if err != nil {
		log.Fatalf("%v: %v", program, err)
	}

	useTape := len(input) != 0 || len(output) != 0
	if useTape {
		emu.Tape.Signed = signed
		if input == "-" || len(input) == 0 {
			emu.Tape.Input = os.Stdin
		} else {
			tin, err := os.Open(input)
			if err != nil {
				log.Fatalf("%v: %v", input, err)
			}
			defer tin.Close()
			emu.Tape.Input = tin
		}
		if output == "-" || len(output) == 0 {
			emu.Tape.Output = os.Stdout
		} else {
			tout, err := os.Create(output)
			if err != nil {
				log.Fatalf("%v: %v", output, err)
			}
			defer tout.Close()
			emu.Tape.Output = tout
		}
		emu.UseTape()
	} else if len(cards) != 0 {
		var values []int
		for _, field := range strings.Split(cards, ",") {
			value, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				log.Fatalf("%v: not a number: %v", os.Args[0], field)
			}
			values = append(values, value)
		}
		emu.SetInput(io.NewCardReader(values...))
	}

	if trace {
		for done := false; !done; {
			fmt.Print(emu.Machine)
			done = emu.Step()
		}
		if err := emu.Err(); err != nil {
			log.Fatalf("%v: line %d: %v", program, emu.Program.LineAt(emu.PC()-1), err)
		}
	} else {
		if err := emu.Run(); err != nil {
			log.Fatalf("%v: %v", program, err)
		}
	}

	if !useTape {
		fmt.Println(emu.Punch.String())
	}
}
