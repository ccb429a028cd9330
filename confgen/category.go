package confgen

type CategoryEnum int

const (
	CategoryUnknown CategoryEnum = iota
	CategoryStatement
	CategoryReference
	CategoryOptions
	CategoryParameterList
	CategorySimpleParameter
	CategoryComplexParameter
	CategoryListParameter
	CategoryStringParameter
	CategoryIntParameter
	CategoryBooleanParameter

	// CategoryTotal is a constant that represents the total number of categories defined
	CategoryTotal = int(iota)
)

// String returns a human-readable category name.
func (c CategoryEnum) String() string {
	switch c {
	case CategoryStatement:
		return "statement"
	case CategoryReference:
		return "reference"
	case CategoryOptions:
		return "options"
	case CategoryParameterList:
		return "parameter-list"
	case CategorySimpleParameter:
		return "simple-parameter"
	case CategoryComplexParameter:
		return "complex-parameter"
	case CategoryListParameter:
		return "list-parameter"
	case CategoryStringParameter:
		return "string-parameter"
	case CategoryIntParameter:
		return "int-parameter"
	case CategoryBooleanParameter:
		return "boolean-parameter"
	default:
		return "unknown"
	}
}

// statementNames is the closed set of recognized top-level keywords.
var statementNames = map[string]struct{}{
	"source":      {},
	"destination": {},
	"log":         {},
	"parser":      {},
	"rewrite":     {},
	"template":    {},
	"channel":     {},
	"junction":    {},
	"filter":      {},
	"options":     {},
}

// unnamedStatements are emitted without the declared document id.
var unnamedStatements = map[string]struct{}{
	"log":      {},
	"channel":  {},
	"junction": {},
	"options":  {},
}

// IsStatementName returns true if name is one of the ten recognized
// statement keywords.
func IsStatementName(name string) bool {
	_, ok := statementNames[name]
	return ok
}

// IsUnnamedStatement returns true if the given statement kind never
// carries a user-supplied identifier, like log or junction.
func IsUnnamedStatement(name string) bool {
	_, ok := unnamedStatements[name]
	return ok
}
