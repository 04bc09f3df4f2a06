// Package calc evaluates infix arithmetic expressions over float64.
//
// An expression goes through three stages: the Lexer produces tokens, Resolve
// reorders them into postfix order and Evaluate reduces the postfix sequence
// to a single value. Calculate runs all three.
package calc

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

type Option func(*Calculator)

// WithSkipSpace makes the lexer skip whitespace rather than stop at it.
func WithSkipSpace(skip bool) Option {
	return func(c *Calculator) {
		c.skipSpace = skip
	}
}

// WithLogger sets the logger that receives a debug record per stage.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Calculator) {
		c.logger = logger
	}
}

// Calculator holds evaluation options. It keeps no state between calls and
// is safe for concurrent use.
type Calculator struct {
	skipSpace bool
	logger    *slog.Logger
}

func New(opts ...Option) *Calculator {
	c := &Calculator{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Calculator) debug(msg string, args ...any) {
	if c.logger == nil {
		return
	}
	c.logger.Log(context.Background(), slog.LevelDebug, msg, args...)
}

func (c *Calculator) tokenize(r io.Reader) (Tokens, error) {
	l := NewLexer(r)
	l.SkipSpace = c.skipSpace
	ts, err := l.Tokenize()
	if err != nil {
		c.debug("tokenize", "pos", l.Pos(), "err", err)
		return nil, err
	}
	c.debug("tokenize", "pos", l.Pos(), "tokens", ts.String())
	return ts, nil
}

// Postfix lexes and resolves input without evaluating it.
func (c *Calculator) Postfix(input string) (Tokens, error) {
	ts, err := c.tokenize(strings.NewReader(input))
	if err != nil {
		return nil, err
	}
	rpn, err := Resolve(ts)
	if err != nil {
		c.debug("resolve", "err", err)
		return nil, err
	}
	c.debug("resolve", "postfix", rpn.String())
	return rpn, nil
}

func (c *Calculator) Calculate(input string) (float64, error) {
	rpn, err := c.Postfix(input)
	if err != nil {
		return 0, err
	}
	v, err := Evaluate(rpn)
	if err != nil {
		c.debug("evaluate", "err", err)
		return 0, err
	}
	c.debug("evaluate", "result", v)
	return v, nil
}

var std = New()

// Calculate evaluates input with the default options: scanning stops at the
// first whitespace or unrecognized character.
func Calculate(input string) (float64, error) {
	return std.Calculate(input)
}

func Postfix(input string) (Tokens, error) {
	return std.Postfix(input)
}
