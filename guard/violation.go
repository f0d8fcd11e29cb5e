package guard

import (
	"fmt"

	"github.com/guardkit/guardkit-go/numeral"
)

// Violation reports a rejected guard. It is delivered by panic: a violated
// guard has no success value, so evaluation cannot continue past it.
type Violation struct {
	Guard  string // guard function name, e.g. "IfLess"
	Detail string // operand rendering, e.g. "5 < 3"; empty for predicate guards
	File   string
	Line   int
}

func (v *Violation) Error() string {
	if v.Detail == "" {
		return fmt.Sprintf("guard: %s rejected at %s:%d", v.Guard, v.File, v.Line)
	}
	return fmt.Sprintf("guard: %s rejected (%s) at %s:%d", v.Guard, v.Detail, v.File, v.Line)
}

// guardInfo is the record emitted for the first pass and first fail of
// each guard site.
type guardInfo struct {
	GuardName string        `json:"guard_name"`
	Condition bool          `json:"condition"`
	Operands  operands      `json:"operands,omitempty"`
	Id        string        `json:"id"`
	Location  *locationInfo `json:"location"`
}

type wrappedGuardInfo struct {
	G *guardInfo `json:"guardkit_guard"`
}

type operands interface {
	describe(symbol string) string
}

type operandKind interface {
	int64 | uint64
}

type operandPair[T operandKind] struct {
	Left  T `json:"left"`
	Right T `json:"right"`
}

func (p operandPair[T]) describe(symbol string) string {
	return fmt.Sprintf("%v %s %v", p.Left, symbol, p.Right)
}

// NewOperands widens a numeral pair to the fixed-size kinds used in guard
// records and diagnostics. Defined types widen the same way as their
// underlying kind; an unsigned kind wraps below zero, which is how the
// two are told apart.
func NewOperands[N numeral.Number](lhs, rhs N) operands {
	var zero N
	if zero-1 < zero {
		return operandPair[int64]{int64(lhs), int64(rhs)}
	}
	return operandPair[uint64]{uint64(lhs), uint64(rhs)}
}
