package calc

import (
	"math"
	"testing"

	"github.com/mattn/anko/env"
	"github.com/mattn/anko/vm"
)

// anko has the usual precedence and left associativity for + - * /, so it
// serves as a reference for expressions built only from those operators.
func TestAgainstAnko(t *testing.T) {
	inputs := []string{
		"1.0+2.0*3.0",
		"8.0-3.0-2.0",
		"2.0*3.0+4.0",
		"100.0/10.0/5.0",
		"10.0/4.0*2.0",
		"(1.5+2.5)*(3.0-1.0)",
		"1.0-(2.0-(3.0-4.0))",
		"65.0/4.0",
		"0.1+0.2",
		"7.0*(2.0+3.0)/5.0-1.25",
		"((2.0))",
	}
	for _, input := range inputs {
		got, err := Calculate(input)
		if err != nil {
			t.Errorf("%q: %v", input, err)
			continue
		}
		rv, err := vm.Execute(env.NewEnv(), nil, input)
		if err != nil {
			t.Fatalf("anko %q: %v", input, err)
		}
		want, ok := rv.(float64)
		if !ok {
			t.Fatalf("anko %q: unexpected result %T", input, rv)
		}
		if math.Abs(got-want) > 1e-12 {
			t.Errorf("want %v for %q but got %v", want, input, got)
		}
	}
}
