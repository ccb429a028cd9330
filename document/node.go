package document

import "strconv"

// Node is one value in a parsed configuration document. The concrete
// types are Scalar, Sequence and Mapping; nothing else implements it.
type Node interface {
	node()
}

type ScalarKindEnum int

const (
	_ ScalarKindEnum = iota // skip zero value, use it as a default (invalid) value for ScalarKindEnum

	ScalarString
	ScalarInt
	ScalarFloat
	ScalarBool

	// ScalarKindTotal is a constant that represents the total number of kinds defined
	ScalarKindTotal = int(iota)
)

// String returns a human-readable kind name.
func (k ScalarKindEnum) String() string {
	switch k {
	case ScalarString:
		return "string"
	case ScalarInt:
		return "int"
	case ScalarFloat:
		return "float"
	case ScalarBool:
		return "bool"
	default:
		return "unknown"
	}
}

// Scalar is a typed leaf value. Only the field matching Kind is
// meaningful.
type Scalar struct {
	Kind ScalarKindEnum

	StrVal   string
	IntVal   int64
	FloatVal float64
	BoolVal  bool
}

// Sequence is an ordered list of nodes.
type Sequence []Node

// Mapping is a single key/value pair. Multi-key maps never reach this
// type; the decoder rejects them.
type Mapping struct {
	Key   string
	Value Node
}

func (Scalar) node()   {}
func (Sequence) node() {}
func (Mapping) node()  {}

// Str creates a string scalar.
func Str(v string) Scalar {
	return Scalar{Kind: ScalarString, StrVal: v}
}

// Int creates an integer scalar.
func Int(v int64) Scalar {
	return Scalar{Kind: ScalarInt, IntVal: v}
}

// Float creates a floating-point scalar.
func Float(v float64) Scalar {
	return Scalar{Kind: ScalarFloat, FloatVal: v}
}

// Bool creates a boolean scalar.
func Bool(v bool) Scalar {
	return Scalar{Kind: ScalarBool, BoolVal: v}
}

// Text returns the literal textual form of the scalar: the string
// itself, base-10 integers, shortest-form floats, true/false booleans.
func (s Scalar) Text() string {
	switch s.Kind {
	case ScalarString:
		return s.StrVal
	case ScalarInt:
		return strconv.FormatInt(s.IntVal, 10)
	case ScalarFloat:
		return strconv.FormatFloat(s.FloatVal, 'g', -1, 64)
	case ScalarBool:
		return strconv.FormatBool(s.BoolVal)
	default:
		return ""
	}
}
