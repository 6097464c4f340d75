package lmc

import (
	"bufio"
	"io"
	"log"
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// opcodeBase maps the memory-referencing mnemonics to their word bases.
var opcodeBase = map[string]Word{
	"add": 100,
	"sub": 200,
	"sta": 300,
	"lda": 500,
	"bra": 600,
	"brz": 700,
	"brp": 800,
}

var mnemonics = map[string]bool{
	"hlt": true, "cob": true,
	"add": true, "sub": true, "sta": true, "lda": true,
	"bra": true, "brz": true, "brp": true,
	"inp": true, "out": true,
	"dat": true, "org": true,
}

func isMnemonic(word string) bool {
	return mnemonics[strings.ToLower(word)]
}

// emitted is one word appended during the structural pass. A non-empty
// label marks a pending reference to be resolved by the fix-up pass.
type emitted struct {
	lineNo int
	source string
	addr   int
	word   Word

	base  Word
	label string
	tok   Token
}

// Assembler translates the mnemonic language into a loadable Program.
// The zero value is ready to use; Parse resets all state.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.

	Label map[string]int // Map of lower-cased labels to memory addresses.

	emitted  []emitted
	location int
}

// Assemble translates source text into a program in one call.
func Assemble(source string) (*Program, error) {
	asm := &Assembler{}
	return asm.Parse(strings.NewReader(source))
}

// Parse assembles an input stream into a Program. Assembly is
// all-or-nothing: the first error aborts and no program is produced.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	if asm.Label == nil {
		asm.Label = make(map[string]int, 16)
	}
	clear(asm.Label)
	asm.emitted = asm.emitted[:0]
	asm.location = 0

	var lineno int
	for scanner.Scan() {
		text := scanner.Text()
		lineno++

		if asm.Verbose {
			log.Printf("%v: %v", lineno, text)
		}

		line := stripComment(text)

		line, err = asm.parenExpand(line, lineno)
		if err != nil {
			return
		}

		var tokens []Token
		tokens, err = lexLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseTokens(tokens, strings.TrimSpace(line))
		if err != nil {
			return
		}
	}
	err = scanner.Err()
	if err != nil {
		return
	}

	// Fix-up pass: resolve the pending label references now that every
	// label definition has been seen.
	for n := range asm.emitted {
		em := &asm.emitted[n]
		if len(em.label) == 0 {
			continue
		}
		addr, ok := asm.Label[em.label]
		if !ok {
			err = syntaxErr(em.tok, ErrLabelMissing(em.label))
			return
		}
		em.word = em.base + Word(addr)
		em.label = ""
	}

	prog = &Program{Lines: make([]Line, 0, len(asm.emitted))}
	for _, em := range asm.emitted {
		prog.Lines = append(prog.Lines, Line{
			LineNo: em.lineNo,
			Source: em.source,
			Cell:   Cell{Addr: em.addr, Word: em.word},
		})
	}

	return
}

var parenRe = regexp.MustCompile(`\$\([^$]*\)`)

// parenExpand substitutes $(...) compile-time evaluations with their
// integer results before lexing.
func (asm *Assembler) parenExpand(line string, lineno int) (out string, err error) {
	out = parenRe.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2:len(str)-1], lineno)
		if _err != nil {
			if err == nil {
				err = &ErrSyntax{LineNo: lineno, Column: strings.Index(line, str) + 1, Token: str, Err: _err}
			}
			return str
		}
		return strconv.Itoa(value)
	})
	return
}

// parenEval does compile-time $(...) evaluations.
func (asm *Assembler) parenEval(expr string, lineno int) (value int, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"LINENO": starlark.MakeInt(lineno),
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = int(st_int64)
	return
}

// parseTokens evaluates one tokenized line: an optional label definition
// followed by exactly one operation.
func (asm *Assembler) parseTokens(tokens []Token, source string) (err error) {
	tok := tokens[0]
	if tok.Kind == TOKEN_EOL {
		return
	}

	// A leading identifier that is not a mnemonic defines a label bound
	// to the current location. Rebinding a label is an error, never a
	// silent overwrite.
	if tok.Kind == TOKEN_IDENT && !isMnemonic(tok.Text) {
		label := strings.ToLower(tok.Text)
		if _, ok := asm.Label[label]; ok {
			return syntaxErr(tok, ErrLabelDuplicate)
		}
		asm.Label[label] = asm.location
		tokens = tokens[1:]
		tok = tokens[0]
	}

	if tok.Kind != TOKEN_IDENT || !isMnemonic(tok.Text) {
		return syntaxErr(tok, ErrInstructionInvalid)
	}

	lineno := tok.LineNo
	mnemonic := strings.ToLower(tok.Text)
	operands := tokens[1:]

	switch mnemonic {
	case "hlt", "cob":
		if err = expectEnd(operands); err != nil {
			return
		}
		err = asm.emit(tok, emitted{lineNo: lineno, source: source, word: Instruction{Op: OP_HLT}.Word()})
	case "inp":
		if err = expectEnd(operands); err != nil {
			return
		}
		err = asm.emit(tok, emitted{lineNo: lineno, source: source, word: Instruction{Op: OP_IO, Addr: IO_ADDR_INP}.Word()})
	case "out":
		if err = expectEnd(operands); err != nil {
			return
		}
		err = asm.emit(tok, emitted{lineNo: lineno, source: source, word: Instruction{Op: OP_IO, Addr: IO_ADDR_OUT}.Word()})
	case "dat":
		value := 0
		if operands[0].Kind == TOKEN_NUMBER {
			value, err = strconv.Atoi(operands[0].Text)
			if err != nil {
				return syntaxErr(operands[0], ErrParseNumber(operands[0].Text))
			}
			if value <= -BASE || value >= BASE {
				return syntaxErr(operands[0], ErrValueRange(value))
			}
			operands = operands[1:]
		}
		if err = expectEnd(operands); err != nil {
			return
		}
		err = asm.emit(tok, emitted{lineNo: lineno, source: source, word: ToUnsigned(value)})
	case "org":
		var addr int
		addr, err = address(operands[0])
		if err != nil {
			return
		}
		if err = expectEnd(operands[1:]); err != nil {
			return
		}
		asm.location = addr
	default:
		base := opcodeBase[mnemonic]
		operand := operands[0]
		switch operand.Kind {
		case TOKEN_NUMBER:
			var addr int
			addr, err = address(operand)
			if err != nil {
				return
			}
			if err = expectEnd(operands[1:]); err != nil {
				return
			}
			err = asm.emit(operand, emitted{lineNo: lineno, source: source, word: base + Word(addr)})
		case TOKEN_IDENT:
			if err = expectEnd(operands[1:]); err != nil {
				return
			}
			err = asm.emit(operand, emitted{
				lineNo: lineno,
				source: source,
				base:   base,
				label:  strings.ToLower(operand.Text),
				tok:    operand,
			})
		default:
			err = syntaxErr(operand, ErrOperandMissing)
		}
	}

	return
}

// emit appends one word at the current location and advances it.
func (asm *Assembler) emit(tok Token, em emitted) (err error) {
	if asm.location < 0 || asm.location >= MEMSIZE {
		return syntaxErr(tok, ErrAddrRange(asm.location))
	}

	em.addr = asm.location
	asm.emitted = append(asm.emitted, em)
	asm.location++
	return
}

// expectEnd verifies the line carries no further operands.
func expectEnd(rest []Token) error {
	if rest[0].Kind != TOKEN_EOL {
		return syntaxErr(rest[0], ErrOperandExtra)
	}
	return nil
}

// address parses an address literal operand in 0..99.
func address(tok Token) (addr int, err error) {
	if tok.Kind != TOKEN_NUMBER {
		err = syntaxErr(tok, ErrOperandMissing)
		return
	}
	addr, err = strconv.Atoi(tok.Text)
	if err != nil {
		err = syntaxErr(tok, ErrParseNumber(tok.Text))
		return
	}
	if addr < 0 || addr >= MEMSIZE {
		err = syntaxErr(tok, ErrAddrRange(addr))
	}
	return
}
