package calc

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

var symbols = map[rune]Kind{
	'+': Add,
	'-': Sub,
	'*': Mul,
	'/': Div,
	'%': Mod,
	'^': Pow,
	'(': OpenParen,
	')': CloseParen,
}

func NewLexer(r io.Reader) *Lexer {
	return &Lexer{
		buf: bufio.NewReader(r),
	}
}

// Lexer turns text into tokens. Scanning stops at the first character it
// does not recognize; with SkipSpace set, whitespace is skipped instead.
type Lexer struct {
	buf       *bufio.Reader
	pos       int
	last      int
	SkipSpace bool
}

func (l *Lexer) Pos() int {
	return l.pos
}

func (l *Lexer) readRune() (rune, error) {
	r, n, err := l.buf.ReadRune()
	l.pos += n
	l.last = n
	return r, err
}

// unreadRune steps back over the last rune read by the byte width the
// reader reported for it.
func (l *Lexer) unreadRune() error {
	err := l.buf.UnreadRune()
	if err == nil {
		l.pos -= l.last
		l.last = 0
	}
	return err
}

func isNumberLetter(r rune) bool {
	return ('0' <= r && r <= '9') || r == '.'
}

func (l *Lexer) lexNumber() (Token, error) {
	var buf bytes.Buffer
	for {
		r, err := l.readRune()
		if err != nil {
			if err == io.EOF {
				break
			}
			return Token{}, err
		}
		if !isNumberLetter(r) {
			l.unreadRune()
			break
		}
		buf.WriteRune(r)
	}

	s := buf.String()
	// Out of range literals are well formed and parse to ±Inf or 0.
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return Token{}, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	return Num(f), nil
}

// Tokenize scans until end of input or the first unrecognized character.
func (l *Lexer) Tokenize() (Tokens, error) {
	var ts Tokens
	for {
		r, err := l.readRune()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}

		if k, ok := symbols[r]; ok {
			ts = append(ts, Op(k))
			continue
		}
		if isNumberLetter(r) {
			l.unreadRune()
			t, err := l.lexNumber()
			if err != nil {
				return nil, err
			}
			ts = append(ts, t)
			continue
		}
		if l.SkipSpace && unicode.IsSpace(r) {
			continue
		}
		l.unreadRune()
		break
	}
	return ts, nil
}

func Tokenize(s string) (Tokens, error) {
	return NewLexer(strings.NewReader(s)).Tokenize()
}
