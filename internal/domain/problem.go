package domain

import (
	"fmt"
	"io"
	"strings"
)

// Operator is one of the four arithmetic symbols a Problem can carry.
type Operator rune

const (
	OpAdd Operator = '+'
	OpSub Operator = '-'
	OpMul Operator = '*'
	OpDiv Operator = '÷'
)

// Operators lists every supported operator in worksheet order.
var Operators = []Operator{OpAdd, OpSub, OpMul, OpDiv}

// ParseOperator accepts the four symbols plus "/" as an ASCII spelling of ÷.
func ParseOperator(s string) (Operator, error) {
	switch strings.TrimSpace(s) {
	case "+":
		return OpAdd, nil
	case "-":
		return OpSub, nil
	case "*":
		return OpMul, nil
	case "÷", "/":
		return OpDiv, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOperator, s)
}

func (o Operator) String() string {
	if o == 0 {
		return "?"
	}
	return string(rune(o))
}

func (o Operator) valid() bool {
	switch o {
	case OpAdd, OpSub, OpMul, OpDiv:
		return true
	}
	return false
}

// MarshalText lets operators travel as their symbol in JSON and YAML.
func (o Operator) MarshalText() ([]byte, error) {
	if !o.valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperator, rune(o))
	}
	return []byte(o.String()), nil
}

func (o *Operator) UnmarshalText(text []byte) error {
	op, err := ParseOperator(string(text))
	if err != nil {
		return err
	}
	*o = op
	return nil
}

// Problem is a single arithmetic question. The result only exists once an
// operator has been applied.
type Problem struct {
	Left  int
	Right int
	Op    Operator

	result  int
	applied bool
}

func NewProblem(left, right int) *Problem {
	return &Problem{Left: left, Right: right}
}

// SetOperands replaces both operands and forgets any previously applied operator.
func (p *Problem) SetOperands(left, right int) {
	p.Left = left
	p.Right = right
	p.Op = 0
	p.result = 0
	p.applied = false
}

// Apply sets the operator and computes the result. Division truncates toward
// zero. A zero divisor is the caller's problem and panics like any Go integer
// division by zero.
func (p *Problem) Apply(op Operator) error {
	var result int
	switch op {
	case OpAdd:
		result = p.Left + p.Right
	case OpSub:
		result = p.Left - p.Right
	case OpMul:
		result = p.Left * p.Right
	case OpDiv:
		result = p.Left / p.Right
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOperator, rune(op))
	}
	p.Op = op
	p.result = result
	p.applied = true
	return nil
}

func (p *Problem) Addition()       { _ = p.Apply(OpAdd) }
func (p *Problem) Subtraction()    { _ = p.Apply(OpSub) }
func (p *Problem) Multiplication() { _ = p.Apply(OpMul) }
func (p *Problem) Division()       { _ = p.Apply(OpDiv) }

// Result returns the computed answer; ok is false until Apply has succeeded.
func (p *Problem) Result() (result int, ok bool) {
	return p.result, p.applied
}

// CheckAnswer reports whether candidate equals the computed result.
func (p *Problem) CheckAnswer(candidate int) bool {
	return p.applied && candidate == p.result
}

// Lines renders the problem in column layout:
//
//	  135
//	+  78
//	-----
func (p *Problem) Lines() []string {
	return []string{
		fmt.Sprintf("%5d", p.Left),
		fmt.Sprintf("%s%4d", p.Op, p.Right),
		"-----",
	}
}

// Render writes Lines to w, one per line.
func (p *Problem) Render(w io.Writer) error {
	_, err := io.WriteString(w, strings.Join(p.Lines(), "\n")+"\n")
	return err
}

func (p *Problem) String() string {
	return fmt.Sprintf("%d %s %d", p.Left, p.Op, p.Right)
}
