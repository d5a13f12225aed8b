// Package quiz generates the arithmetic questions shown in the question bubble.
//
// A question is "a op b" with op one of +, -, *. Generation is rejection
// sampling: draw an operator and two operands, keep the first expression whose
// result falls inside the answer range. There is no retry cap; NewGenerator
// refuses option sets for which no expression can succeed.
package quiz

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

var (
	// ErrMalformed is returned by Parse for text that is not three space-separated tokens
	// with integer operands.
	ErrMalformed = errors.New("quiz: malformed question")

	// ErrUnknownOperator is returned by Parse for an operator outside + - *.
	ErrUnknownOperator = errors.New("quiz: unknown operator")

	// ErrInfeasible means no operand pair in range produces an answer in range.
	ErrInfeasible = errors.New("quiz: no question can satisfy the answer range")
)

// Operator is an arithmetic operator token.
type Operator string

const (
	OpAdd Operator = "+"
	OpSub Operator = "-"
	OpMul Operator = "*"
)

// Operators lists every supported operator.
var Operators = []Operator{OpAdd, OpSub, OpMul}

// ParseOperator validates an operator token.
func ParseOperator(s string) (Operator, error) {
	switch op := Operator(s); op {
	case OpAdd, OpSub, OpMul:
		return op, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownOperator, s)
	}
}

// Apply computes a op b. Unknown operators give 0.
func (op Operator) Apply(a, b int) int {
	switch op {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	default:
		return 0
	}
}

// Question is one generated expression.
type Question struct {
	A, B int
	Op   Operator
}

// String formats the question as "a op b".
func (q Question) String() string {
	return fmt.Sprintf("%d %s %d", q.A, q.Op, q.B)
}

// Answer evaluates the question.
func (q Question) Answer() int {
	return q.Op.Apply(q.A, q.B)
}

// Parse reads a question in "a op b" form.
func Parse(expr string) (Question, error) {
	parts := strings.Split(expr, " ")
	if len(parts) != 3 {
		return Question{}, fmt.Errorf("%w: %q", ErrMalformed, expr)
	}

	a, errA := strconv.Atoi(parts[0])
	b, errB := strconv.Atoi(parts[2])
	if errA != nil || errB != nil {
		return Question{}, fmt.Errorf("%w: %q", ErrMalformed, expr)
	}

	op, err := ParseOperator(parts[1])
	if err != nil {
		return Question{}, err
	}

	return Question{A: a, B: b, Op: op}, nil
}

// Evaluate returns the result of an "a op b" expression.
// It never fails: unknown operators and unreadable operands evaluate to 0.
func Evaluate(expr string) int {
	parts := strings.Split(expr, " ")
	if len(parts) < 3 {
		return 0
	}
	a, errA := strconv.Atoi(parts[0])
	b, errB := strconv.Atoi(parts[2])
	if errA != nil || errB != nil {
		return 0
	}
	return Operator(parts[1]).Apply(a, b)
}

// Options bounds the generated questions. All ranges are inclusive.
type Options struct {
	Operators  []Operator
	OperandMin int
	OperandMax int
	AnswerMin  int
	AnswerMax  int
}

// DefaultOptions are the classic rules: operands 1-20, answers 0-11.
func DefaultOptions() Options {
	return Options{
		Operators:  append([]Operator(nil), Operators...),
		OperandMin: 1,
		OperandMax: 20,
		AnswerMin:  0,
		AnswerMax:  11,
	}
}

// Validate reports whether the options describe a usable, feasible question space.
func (o Options) Validate() error {
	if len(o.Operators) == 0 {
		return fmt.Errorf("%w: no operators", ErrInfeasible)
	}
	for _, op := range o.Operators {
		if _, err := ParseOperator(string(op)); err != nil {
			return err
		}
	}
	if o.OperandMin > o.OperandMax {
		return fmt.Errorf("%w: operand range [%d, %d] is empty", ErrInfeasible, o.OperandMin, o.OperandMax)
	}
	if o.AnswerMin > o.AnswerMax {
		return fmt.Errorf("%w: answer range [%d, %d] is empty", ErrInfeasible, o.AnswerMin, o.AnswerMax)
	}
	if !o.feasible() {
		return fmt.Errorf("%w: operands [%d, %d], answers [%d, %d]",
			ErrInfeasible, o.OperandMin, o.OperandMax, o.AnswerMin, o.AnswerMax)
	}
	return nil
}

// feasible reports whether any operator and operand pair lands in the answer range.
// Sums and differences cover contiguous ranges; products are checked once per left operand.
func (o Options) feasible() bool {
	for _, op := range o.Operators {
		switch op {
		case OpAdd:
			if overlaps(2*o.OperandMin, 2*o.OperandMax, o.AnswerMin, o.AnswerMax) {
				return true
			}
		case OpSub:
			if overlaps(o.OperandMin-o.OperandMax, o.OperandMax-o.OperandMin, o.AnswerMin, o.AnswerMax) {
				return true
			}
		case OpMul:
			if o.productFeasible() {
				return true
			}
		}
	}
	return false
}

func (o Options) productFeasible() bool {
	for a := o.OperandMin; a <= o.OperandMax; a++ {
		var lo, hi int
		switch {
		case a == 0:
			if o.AnswerMin <= 0 && o.AnswerMax >= 0 {
				return true
			}
			continue
		case a > 0:
			lo, hi = ceilDiv(o.AnswerMin, a), floorDiv(o.AnswerMax, a)
		default:
			lo, hi = ceilDiv(o.AnswerMax, a), floorDiv(o.AnswerMin, a)
		}
		if overlaps(lo, hi, o.OperandMin, o.OperandMax) {
			return true
		}
	}
	return false
}

func overlaps(lo1, hi1, lo2, hi2 int) bool {
	return max(lo1, lo2) <= min(hi1, hi2)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) == (b < 0)) {
		q++
	}
	return q
}

// Generator produces questions. It is not safe for concurrent use;
// each game session owns one.
type Generator struct {
	opts       Options
	rng        *rand.Rand
	lastResult int
	attempts   int // Samples drawn by the last Generate call
}

// NewGenerator validates opts and returns a generator drawing from rng.
func NewGenerator(opts Options, rng *rand.Rand) (*Generator, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	opts.Operators = append([]Operator(nil), opts.Operators...)
	return &Generator{opts: opts, rng: rng, lastResult: -1}, nil
}

// Options returns the generator's current bounds.
func (g *Generator) Options() Options {
	return g.opts
}

// SetOperandMax changes the upper operand bound.
// The previous bound is kept when the new one would make generation infeasible.
func (g *Generator) SetOperandMax(n int) error {
	if n == g.opts.OperandMax {
		return nil
	}
	next := g.opts
	next.OperandMax = n
	if err := next.Validate(); err != nil {
		return err
	}
	g.opts = next
	return nil
}

// Next samples until a question's answer is inside the answer range.
func (g *Generator) Next() Question {
	g.attempts = 0
	span := g.opts.OperandMax - g.opts.OperandMin + 1
	for {
		g.attempts++
		q := Question{
			Op: g.opts.Operators[g.rng.Intn(len(g.opts.Operators))],
			A:  g.rng.Intn(span) + g.opts.OperandMin,
			B:  g.rng.Intn(span) + g.opts.OperandMin,
		}
		if r := q.Answer(); r >= g.opts.AnswerMin && r <= g.opts.AnswerMax {
			g.lastResult = r
			return q
		}
	}
}

// Generate returns the next question as an "a op b" string.
func (g *Generator) Generate() string {
	return g.Next().String()
}

// Evaluate is the package-level Evaluate, exposed on the generator for symmetry with Generate.
func (g *Generator) Evaluate(expr string) int {
	return Evaluate(expr)
}

// LastResult is the answer of the most recent question, or -1 before the first one.
func (g *Generator) LastResult() int {
	return g.lastResult
}

// Attempts reports how many samples the last Generate call needed.
func (g *Generator) Attempts() int {
	return g.attempts
}
