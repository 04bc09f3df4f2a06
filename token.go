package calc

import (
	"bytes"
	"fmt"
	"strconv"
)

type Kind int

const (
	Number Kind = iota
	Add
	Sub
	Mul
	Div
	Mod
	Pow
	OpenParen
	CloseParen
)

var kindNames = [...]string{
	Number:     "number",
	Add:        "+",
	Sub:        "-",
	Mul:        "*",
	Div:        "/",
	Mod:        "%",
	Pow:        "^",
	OpenParen:  "(",
	CloseParen: ")",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// IsOperator reports whether k is one of the binary operators.
func (k Kind) IsOperator() bool {
	_, ok := ops[k]
	return ok
}

// Token is a lexical symbol. Value is only meaningful for Number.
type Token struct {
	Kind  Kind
	Value float64
}

func Num(v float64) Token {
	return Token{Kind: Number, Value: v}
}

func Op(k Kind) Token {
	return Token{Kind: k}
}

func (t Token) String() string {
	if t.Kind == Number {
		return strconv.FormatFloat(t.Value, 'g', -1, 64)
	}
	return t.Kind.String()
}

type Tokens []Token

// String joins the tokens with single spaces, which for a resolved
// sequence is its reverse polish form.
func (ts Tokens) String() string {
	var buf bytes.Buffer
	for i, t := range ts {
		if i > 0 {
			buf.WriteByte(' ')
		}
		fmt.Fprint(&buf, t)
	}
	return buf.String()
}
