package lmc

import (
	"strings"
)

// TokenKind classifies a lexeme.
type TokenKind int

//go:generate go tool stringer -linecomment -type=TokenKind
const (
	TOKEN_IDENT  = TokenKind(0) // identifier
	TOKEN_NUMBER = TokenKind(1) // number
	TOKEN_EOL    = TokenKind(2) // end of line
)

// Token is a classified lexeme with its source position. Columns are
// 1-based.
type Token struct {
	Kind   TokenKind
	Text   string
	LineNo int
	Column int
}

// stripComment removes a '#' or '//' comment from the line.
func stripComment(line string) string {
	if at := strings.IndexByte(line, '#'); at >= 0 {
		line = line[:at]
	}
	if at := strings.Index(line, "//"); at >= 0 {
		line = line[:at]
	}
	return line
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdent(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// lexLine tokenizes one source line, comment already stripped. The token
// stream always ends with a TOKEN_EOL carrying the position just past the
// last lexeme.
func lexLine(line string, lineno int) (tokens []Token, err error) {
	at := 0
	for at < len(line) {
		c := line[at]
		switch {
		case c == ' ' || c == '\t' || c == '\r':
			at++
		case isIdentStart(c):
			start := at
			for at < len(line) && isIdent(line[at]) {
				at++
			}
			tokens = append(tokens, Token{TOKEN_IDENT, line[start:at], lineno, start + 1})
		case isDigit(c), (c == '+' || c == '-') && at+1 < len(line) && isDigit(line[at+1]):
			start := at
			at++
			for at < len(line) && isDigit(line[at]) {
				at++
			}
			tokens = append(tokens, Token{TOKEN_NUMBER, line[start:at], lineno, start + 1})
		default:
			bad := Token{TOKEN_EOL, string(c), lineno, at + 1}
			err = syntaxErr(bad, ErrInstructionInvalid)
			return
		}
	}

	tokens = append(tokens, Token{TOKEN_EOL, "", lineno, len(line) + 1})
	return
}

// syntaxErr positions an assembly error at the offending token.
func syntaxErr(tok Token, err error) error {
	return &ErrSyntax{LineNo: tok.LineNo, Column: tok.Column, Token: tok.Text, Err: err}
}
