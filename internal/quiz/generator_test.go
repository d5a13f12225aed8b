package quiz

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"
)

func newTestGenerator(t *testing.T, opts Options, seed int64) *Generator {
	t.Helper()
	g, err := NewGenerator(opts, rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("NewGenerator() failed: %v", err)
	}
	return g
}

func TestGeneratedAnswersInRange(t *testing.T) {
	g := newTestGenerator(t, DefaultOptions(), 42)

	for i := 0; i < 5000; i++ {
		q := g.Generate()
		got := Evaluate(q)
		if got < 0 || got > 11 {
			t.Fatalf("question %q evaluates to %d, outside [0, 11]", q, got)
		}
		if g.LastResult() != got {
			t.Fatalf("LastResult() = %d, Evaluate(%q) = %d", g.LastResult(), q, got)
		}
	}
}

func TestGeneratedOperandsInRange(t *testing.T) {
	g := newTestGenerator(t, DefaultOptions(), 7)

	for i := 0; i < 2000; i++ {
		q := g.Next()
		if q.A < 1 || q.A > 20 || q.B < 1 || q.B > 20 {
			t.Fatalf("operands out of [1, 20]: %v", q)
		}
		if g.Attempts() < 1 {
			t.Fatalf("Attempts() = %d after a question", g.Attempts())
		}
	}
}

func TestLastResultBeforeFirstQuestion(t *testing.T) {
	g := newTestGenerator(t, DefaultOptions(), 1)
	if g.LastResult() != -1 {
		t.Errorf("LastResult() before Generate = %d, expected -1", g.LastResult())
	}
}

func TestEvaluateMatchesArithmetic(t *testing.T) {
	for a := 1; a <= 20; a++ {
		for b := 1; b <= 20; b++ {
			cases := map[string]int{
				fmt.Sprintf("%d + %d", a, b): a + b,
				fmt.Sprintf("%d - %d", a, b): a - b,
				fmt.Sprintf("%d * %d", a, b): a * b,
			}
			for expr, want := range cases {
				if got := Evaluate(expr); got != want {
					t.Fatalf("Evaluate(%q) = %d, expected %d", expr, got, want)
				}
			}
		}
	}
}

func TestEvaluateLenient(t *testing.T) {
	tests := []struct {
		expr string
		want int
	}{
		{"3 / 3", 0},
		{"3 % 2", 0},
		{"3 ^ 2", 0},
		{"", 0},
		{"7", 0},
		{"a + b", 0},
		{"2 + 3", 5},
		{"-4 + 10", 6},
	}

	for _, tc := range tests {
		t.Run(tc.expr, func(t *testing.T) {
			if got := Evaluate(tc.expr); got != tc.want {
				t.Errorf("Evaluate(%q) = %d, expected %d", tc.expr, got, tc.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	q, err := Parse("12 - 3")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if q != (Question{A: 12, B: 3, Op: OpSub}) {
		t.Errorf("Parse() = %+v", q)
	}
	if q.String() != "12 - 3" || q.Answer() != 9 {
		t.Errorf("round trip gave %q = %d", q.String(), q.Answer())
	}

	tests := []struct {
		expr string
		err  error
	}{
		{"1 / 2", ErrUnknownOperator},
		{"1 +", ErrMalformed},
		{"x * 2", ErrMalformed},
		{"1  + 2", ErrMalformed},
	}
	for _, tc := range tests {
		t.Run(tc.expr, func(t *testing.T) {
			if _, err := Parse(tc.expr); !errors.Is(err, tc.err) {
				t.Errorf("Parse(%q) error = %v, expected %v", tc.expr, err, tc.err)
			}
		})
	}
}

func TestGeneratorDeterminism(t *testing.T) {
	g1 := newTestGenerator(t, DefaultOptions(), 12345)
	g2 := newTestGenerator(t, DefaultOptions(), 12345)

	for i := 0; i < 100; i++ {
		q1, q2 := g1.Generate(), g2.Generate()
		if q1 != q2 {
			t.Fatalf("question %d differs with same seed: %q vs %q", i, q1, q2)
		}
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Options)
		err    error
	}{
		{"defaults", func(*Options) {}, nil},
		{"no operators", func(o *Options) { o.Operators = nil }, ErrInfeasible},
		{"bad operator", func(o *Options) { o.Operators = []Operator{"/"} }, ErrUnknownOperator},
		{"empty operand range", func(o *Options) { o.OperandMin, o.OperandMax = 5, 4 }, ErrInfeasible},
		{"empty answer range", func(o *Options) { o.AnswerMin, o.AnswerMax = 3, 2 }, ErrInfeasible},
		{
			// Smallest product and sum of 50s is far above 11, and 50-50 = 0 only with subtraction.
			"unreachable answers",
			func(o *Options) { o.Operators = []Operator{OpAdd, OpMul}; o.OperandMin, o.OperandMax = 50, 60 },
			ErrInfeasible,
		},
		{
			"subtraction only still reaches range",
			func(o *Options) { o.Operators = []Operator{OpSub}; o.OperandMin, o.OperandMax = 50, 60 },
			nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			opts := DefaultOptions()
			tc.mutate(&opts)
			err := opts.Validate()
			if tc.err == nil && err != nil {
				t.Fatalf("Validate() = %v, expected nil", err)
			}
			if tc.err != nil && !errors.Is(err, tc.err) {
				t.Fatalf("Validate() = %v, expected %v", err, tc.err)
			}
		})
	}
}

func TestNewGeneratorRejectsInfeasible(t *testing.T) {
	opts := DefaultOptions()
	opts.Operators = []Operator{OpMul}
	opts.OperandMin, opts.OperandMax = 4, 9 // 16 is the smallest product

	if _, err := NewGenerator(opts, nil); !errors.Is(err, ErrInfeasible) {
		t.Errorf("NewGenerator() error = %v, expected ErrInfeasible", err)
	}
}

func TestSetOperandMax(t *testing.T) {
	g := newTestGenerator(t, DefaultOptions(), 3)

	if err := g.SetOperandMax(30); err != nil {
		t.Fatalf("SetOperandMax(30) failed: %v", err)
	}
	if g.Options().OperandMax != 30 {
		t.Errorf("OperandMax = %d, expected 30", g.Options().OperandMax)
	}

	if err := g.SetOperandMax(0); !errors.Is(err, ErrInfeasible) {
		t.Errorf("SetOperandMax(0) error = %v, expected ErrInfeasible", err)
	}
	if g.Options().OperandMax != 30 {
		t.Errorf("rejected bound should keep previous value, got %d", g.Options().OperandMax)
	}

	for i := 0; i < 500; i++ {
		q := g.Next()
		if q.A > 30 || q.B > 30 {
			t.Fatalf("operand above new bound: %v", q)
		}
	}
}

func TestGeneratorCopiesOperators(t *testing.T) {
	opts := DefaultOptions()
	g := newTestGenerator(t, opts, 9)
	opts.Operators[0] = "/"

	if g.Options().Operators[0] != OpAdd {
		t.Error("generator should not share the caller's operator slice")
	}
}

func TestFeasibleMatchesExhaustiveSearch(t *testing.T) {
	exhaustive := func(o Options) bool {
		for _, op := range o.Operators {
			for a := o.OperandMin; a <= o.OperandMax; a++ {
				for b := o.OperandMin; b <= o.OperandMax; b++ {
					if r := op.Apply(a, b); r >= o.AnswerMin && r <= o.AnswerMax {
						return true
					}
				}
			}
		}
		return false
	}

	for _, op := range Operators {
		for lo := -6; lo <= 6; lo++ {
			for hi := lo; hi <= lo+5; hi++ {
				for ansLo := -8; ansLo <= 8; ansLo += 3 {
					opts := Options{
						Operators:  []Operator{op},
						OperandMin: lo,
						OperandMax: hi,
						AnswerMin:  ansLo,
						AnswerMax:  ansLo + 1,
					}
					if got, want := opts.feasible(), exhaustive(opts); got != want {
						t.Fatalf("feasible(%+v) = %v, expected %v", opts, got, want)
					}
				}
			}
		}
	}
}

func TestValidateWideOperandRange(t *testing.T) {
	opts := DefaultOptions()
	opts.OperandMax = 1_000_000
	if err := opts.Validate(); err != nil {
		t.Fatalf("Validate() = %v, expected nil", err)
	}

	opts.Operators = []Operator{OpMul}
	opts.OperandMin = 12
	if err := opts.Validate(); !errors.Is(err, ErrInfeasible) {
		t.Errorf("Validate() = %v, expected ErrInfeasible", err)
	}
}
