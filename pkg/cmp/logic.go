package cmp

import (
	"google.golang.org/protobuf/proto"
	pref "google.golang.org/protobuf/reflect/protoreflect"
)

// And combines message comparisons, equal only if all eqs are equal.
// With no eqs everything is equal.
func And(eqs ...Message) Message {
	return func(x, y proto.Message) bool {
		for _, eq := range eqs {
			if !eq(x, y) {
				return false
			}
		}
		return true
	}
}

// ValueAnd combines value comparisons, equal only if every eq that claims
// the field finds it equal. ok is true if any eq claimed the field.
func ValueAnd(eqs ...Value) Value {
	return func(fd pref.FieldDescriptor, x, y pref.Value) (equal bool, ok bool) {
		for _, eq := range eqs {
			if equal, ok2 := eq(fd, x, y); ok2 {
				ok = ok2
				if !equal {
					return false, true
				}
			}
		}
		return true, ok
	}
}

// Or combines message comparisons, equal if any eq is equal. With no eqs
// nothing is equal.
func Or(eqs ...Message) Message {
	return func(x, y proto.Message) bool {
		for _, eq := range eqs {
			if eq(x, y) {
				return true
			}
		}
		return false
	}
}

// ValueOr combines value comparisons, equal if any eq that claims the
// field finds it equal. ok is true if any eq claimed the field.
func ValueOr(eqs ...Value) Value {
	return func(fd pref.FieldDescriptor, x, y pref.Value) (equal bool, ok bool) {
		for _, eq := range eqs {
			if equal, ok2 := eq(fd, x, y); ok2 {
				ok = ok2
				if equal {
					return true, true
				}
			}
		}
		return false, ok
	}
}
