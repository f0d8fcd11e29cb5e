// Package boolean defines the two truth markers consumed by the guard
// package. True and False are distinct zero-size types, and Boolean is the
// closed constraint containing exactly those two, so a guard instantiated
// over Boolean can never meet a third inhabitant.
package boolean

// True is the affirmative truth marker.
type True struct{}

// False is the negative truth marker.
type False struct{}

// Boolean is the closed constraint over the two truth markers. It is a
// type set, not a method set: no type outside this package satisfies it.
type Boolean interface {
	True | False
}

// ValueOf collapses a truth marker type to its runtime value.
func ValueOf[B Boolean]() bool {
	var b B
	_, ok := any(b).(True)
	return ok
}

// Bool reports the truth value carried by the marker.
func (True) Bool() bool { return true }

// Bool reports the truth value carried by the marker.
func (False) Bool() bool { return false }

// Not returns the negation of the marker B.
func Not[B Boolean]() bool { return !ValueOf[B]() }

// And reports whether both markers are True.
func And[A, B Boolean]() bool { return ValueOf[A]() && ValueOf[B]() }

// Or reports whether at least one marker is True.
func Or[A, B Boolean]() bool { return ValueOf[A]() || ValueOf[B]() }
