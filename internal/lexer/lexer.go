// Package lexer implements the hand-written scanner that turns source
// bytes into the tagged token stream consumed by the parser.
package lexer

import (
	"fmt"
	"io"

	"github.com/cwbudde/go-tac/internal/token"
)

// Lexer is a one-byte-lookahead scanner over an io.ByteReader. It has no
// internal buffering of the whole source: Scan is called repeatedly and
// returns one Token per call, terminating with token.EofToken.
//
// The zero value is not usable; construct with New.
type Lexer struct {
	r       io.ByteReader
	words   map[string]token.Token // interned keywords and type names
	peek    byte
	line    int
	atEOF   bool
}

// New returns a Lexer reading from r. Line numbers start at 1.
func New(r io.ByteReader) *Lexer {
	l := &Lexer{
		r:    r,
		peek: ' ',
		line: 1,
	}
	l.internKeywords()
	return l
}

// Line returns the current line number, for error messages.
func (l *Lexer) Line() int {
	return l.line
}

func (l *Lexer) internKeywords() {
	l.words = map[string]token.Token{
		"if":    token.NewWord("if", token.IF),
		"else":  token.NewWord("else", token.ELSE),
		"while": token.NewWord("while", token.WHILE),
		"do":    token.NewWord("do", token.DO),
		"break": token.NewWord("break", token.BREAK),
		"true":  token.TrueWord,
		"false": token.FalseWord,
		"int":   token.NewSimpleType("int", 4),
		"float": token.NewSimpleType("float", 8),
		"char":  token.NewSimpleType("char", 1),
		"bool":  token.NewSimpleType("bool", 1),
	}
}

// readByte returns the next input byte, or (0, io.EOF) once the
// underlying reader is exhausted. After the first EOF it keeps
// returning io.EOF rather than propagating a reader that panics on
// repeated reads past end of stream.
func (l *Lexer) readByte() (byte, error) {
	if l.atEOF {
		return 0, io.EOF
	}
	b, err := l.r.ReadByte()
	if err == io.EOF {
		l.atEOF = true
		return 0, io.EOF
	}
	return b, err
}

func (l *Lexer) advance() error {
	b, err := l.readByte()
	if err != nil {
		l.peek = 0
		return err
	}
	l.peek = b
	return nil
}

// Scan returns the next token. It never returns an error for ordinary
// end of input: running off the end of the stream yields token.EofToken.
// A non-EOF I/O error from the underlying reader is returned as err,
// with the current line attached by the caller (the parser).
func (l *Lexer) Scan() (token.Token, error) {
	for {
		switch l.peek {
		case ' ', '\t', '\r':
			if err := l.advance(); err != nil {
				return token.EofToken, nil
			}
			continue
		case '\n':
			l.line++
			if err := l.advance(); err != nil {
				return token.EofToken, nil
			}
			continue
		case 0:
			if l.atEOF {
				return token.EofToken, nil
			}
		}
		break
	}

	if l.atEOF && l.peek == 0 {
		return token.EofToken, nil
	}

	switch l.peek {
	case '&':
		return l.scanCompound('&', token.AndOp)
	case '|':
		return l.scanCompound('|', token.OrOp)
	case '=':
		return l.scanCompound('=', token.EqOp)
	case '!':
		return l.scanCompound('=', token.NeOp)
	case '<':
		return l.scanCompoundOrElse('=', token.LeOp, '<')
	case '>':
		return l.scanCompoundOrElse('=', token.GeOp, '>')
	}

	if isDigit(l.peek) {
		return l.scanNumber()
	}
	if isLetter(l.peek) {
		return l.scanWord()
	}

	b := l.peek
	if err := l.advance(); err != nil && err != io.EOF {
		return token.Token{}, fmt.Errorf("line %d: %w", l.line, err)
	}
	return token.NewPunct(b), nil
}

// scanCompound handles the two-character operators &&, ||, == and !=:
// if the byte after the current one is want, it returns compound,
// otherwise the current byte as a punctuation token.
func (l *Lexer) scanCompound(want byte, compound token.Token) (token.Token, error) {
	first := l.peek
	if err := l.advance(); err != nil && err != io.EOF {
		return token.Token{}, fmt.Errorf("line %d: %w", l.line, err)
	}
	if l.peek == want {
		if err := l.advance(); err != nil && err != io.EOF {
			return token.Token{}, fmt.Errorf("line %d: %w", l.line, err)
		}
		return compound, nil
	}
	return token.NewPunct(first), nil
}

// scanCompoundOrElse handles <, <=, >, >= where the single-char form is
// a real punctuation token rather than an error.
func (l *Lexer) scanCompoundOrElse(second byte, compound token.Token, single byte) (token.Token, error) {
	if err := l.advance(); err != nil && err != io.EOF {
		return token.Token{}, fmt.Errorf("line %d: %w", l.line, err)
	}
	if l.peek == second {
		if err := l.advance(); err != nil && err != io.EOF {
			return token.Token{}, fmt.Errorf("line %d: %w", l.line, err)
		}
		return compound, nil
	}
	return token.NewPunct(single), nil
}

func (l *Lexer) scanNumber() (token.Token, error) {
	var digits []byte
	for isDigit(l.peek) {
		digits = append(digits, l.peek)
		if err := l.advance(); err != nil {
			break
		}
	}

	if l.peek != '.' || l.atEOF && l.peek == 0 {
		return token.NewInteger(atoi(digits)), nil
	}

	whole := append(digits, '.')
	if err := l.advance(); err != nil || !isDigit(l.peek) {
		// '.' not followed by a digit: not part of this number. The
		// grammar never produces this, but fail safe rather than lose
		// the byte.
		return token.Token{}, fmt.Errorf("line %d: malformed real literal", l.line)
	}
	for isDigit(l.peek) {
		whole = append(whole, l.peek)
		if err := l.advance(); err != nil {
			break
		}
	}

	f, err := parseFloat(whole)
	if err != nil {
		return token.Token{}, fmt.Errorf("line %d: malformed real literal %q", l.line, whole)
	}
	return token.NewReal(f), nil
}

func atoi(digits []byte) int64 {
	var value int64
	for _, d := range digits {
		value = value*10 + int64(d-'0')
	}
	return value
}

func (l *Lexer) scanWord() (token.Token, error) {
	var buf []byte
	for isLetter(l.peek) || isDigit(l.peek) {
		buf = append(buf, l.peek)
		if err := l.advance(); err != nil {
			break
		}
	}
	lexeme := string(buf)
	if tok, ok := l.words[lexeme]; ok {
		return tok, nil
	}
	return token.NewWord(lexeme, token.ID), nil
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
