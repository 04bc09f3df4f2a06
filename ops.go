package calc

import (
	"math"
)

// Fn applies a binary operator. lhs is the operand pushed first.
type Fn func(lhs, rhs float64) (float64, error)

type OpInfo struct {
	prec int
	fn   Fn
}

// Precedence ranks: a lower value binds tighter.
const (
	precPow = 2
	precMul = 3
	precAdd = 4
)

var ops map[Kind]OpInfo

func makeOp(prec int, fn Fn) OpInfo {
	return OpInfo{prec: prec, fn: fn}
}

func init() {
	ops = make(map[Kind]OpInfo)
	ops[Add] = makeOp(precAdd, doAdd)
	ops[Sub] = makeOp(precAdd, doSub)
	ops[Mul] = makeOp(precMul, doMul)
	ops[Div] = makeOp(precMul, doDiv)
	ops[Mod] = makeOp(precMul, doMod)
	ops[Pow] = makeOp(precPow, doPow)
}

func doAdd(lhs, rhs float64) (float64, error) {
	return lhs + rhs, nil
}

func doSub(lhs, rhs float64) (float64, error) {
	return lhs - rhs, nil
}

func doMul(lhs, rhs float64) (float64, error) {
	return lhs * rhs, nil
}

func doDiv(lhs, rhs float64) (float64, error) {
	if rhs == 0 {
		return 0, ErrDivideByZero
	}
	return lhs / rhs, nil
}

// doMod is the truncated remainder; the sign follows lhs.
func doMod(lhs, rhs float64) (float64, error) {
	if rhs == 0 {
		return 0, ErrDivideByZero
	}
	return math.Mod(lhs, rhs), nil
}

func doPow(lhs, rhs float64) (float64, error) {
	return math.Pow(lhs, rhs), nil
}
