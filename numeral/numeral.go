// Package numeral provides the ordering capability consumed by the guard
// package: a closed set of machine numeral kinds, a three-way comparison
// producing a tagged Ordering, and the five relations derivable from it.
//
// A numeral's identity is its value. Two numerals are equal exactly when
// they denote the same integer, and Compare is ordinary integer comparison;
// no alternate representation exists that could tie-break differently.
package numeral

// Number is the closed set of kinds a numeral may take.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Ordering is the result of comparing two numerals. Compare returns a
// single Ordering, so exactly one of the three values holds for any pair.
type Ordering int8

const (
	LessThan    Ordering = -1
	EqualTo     Ordering = 0
	GreaterThan Ordering = 1
)

func (o Ordering) String() string {
	switch o {
	case LessThan:
		return "less_than"
	case EqualTo:
		return "equal_to"
	case GreaterThan:
		return "greater_than"
	}
	return "invalid_ordering"
}

// Compare derives the Ordering of lhs and rhs.
func Compare[N Number](lhs, rhs N) Ordering {
	switch {
	case lhs < rhs:
		return LessThan
	case lhs > rhs:
		return GreaterThan
	}
	return EqualTo
}

// Relation names one of the five order relations a guard may require.
type Relation uint8

const (
	Less Relation = iota
	LessOrEqual
	Greater
	GreaterOrEqual
	Equal
)

func (r Relation) String() string {
	switch r {
	case Less:
		return "less"
	case LessOrEqual:
		return "less_or_equal"
	case Greater:
		return "greater"
	case GreaterOrEqual:
		return "greater_or_equal"
	case Equal:
		return "equal"
	}
	return "invalid_relation"
}

// Symbol returns the operator spelling used in diagnostics.
func (r Relation) Symbol() string {
	switch r {
	case Less:
		return "<"
	case LessOrEqual:
		return "<="
	case Greater:
		return ">"
	case GreaterOrEqual:
		return ">="
	case Equal:
		return "=="
	}
	return "?"
}

// Holds reports whether an Ordering satisfies the relation. This switch is
// the single source of relation truth; every guard and every static verdict
// routes through it, so no two relations can disagree about the same pair.
func (r Relation) Holds(o Ordering) bool {
	switch r {
	case Less:
		return o == LessThan
	case LessOrEqual:
		return o != GreaterThan
	case Greater:
		return o == GreaterThan
	case GreaterOrEqual:
		return o != LessThan
	case Equal:
		return o == EqualTo
	}
	return false
}

// IsLess reports whether lhs < rhs.
func IsLess[N Number](lhs, rhs N) bool { return Less.Holds(Compare(lhs, rhs)) }

// IsLessOrEqual reports whether lhs <= rhs.
func IsLessOrEqual[N Number](lhs, rhs N) bool { return LessOrEqual.Holds(Compare(lhs, rhs)) }

// IsGreater reports whether lhs > rhs.
func IsGreater[N Number](lhs, rhs N) bool { return Greater.Holds(Compare(lhs, rhs)) }

// IsGreaterOrEqual reports whether lhs >= rhs.
func IsGreaterOrEqual[N Number](lhs, rhs N) bool { return GreaterOrEqual.Holds(Compare(lhs, rhs)) }

// IsEqual reports whether lhs == rhs.
func IsEqual[N Number](lhs, rhs N) bool { return Equal.Holds(Compare(lhs, rhs)) }
