package confgen

import (
	"strconv"
	"strings"

	"syslogng-gen/document"
)

// indentUnit is one level of indentation: three spaces per stack level
// below the first.
const indentUnit = "   "

// quotationChars are the characters that force double-quoting of a
// string parameter.
const quotationChars = "$@:/."

// Compile translates a parsed configuration document into syslog-ng
// configuration text. The root must be a single-key mapping from a
// statement, option or parameter name to its body; id is the declared
// identifier of the document, emitted in the headers of named
// statements. On failure no partial text is returned.
func Compile(id string, root document.Node) (string, error) {
	m, ok := root.(document.Mapping)
	if !ok {
		return "", &InvalidInputError{Reason: "root must be a single-key mapping"}
	}

	return build(id, m.Key, m.Value, NewStack())
}

// build emits the text fragment for one node. It consults Classify,
// then dispatches on the category; every recursive descent pushes a
// context and releases it before any failure propagates, so the stack
// depth is restored on all paths.
func build(id, parent string, n document.Node, stack *Stack) (string, error) {
	category, err := Classify(parent, n, stack)
	if err != nil {
		return "", err
	}

	indent := strings.Repeat(indentUnit, stack.Depth()-1)

	switch category {
	case CategoryStatement:
		return buildStatement(id, parent, n.(document.Sequence), indent, stack)

	case CategoryReference:
		return indent + parent + "(" + n.(document.Scalar).Text() + ");", nil

	case CategoryOptions:
		return buildOptions(id, parent, n, indent, stack)

	case CategoryParameterList:
		return buildParameters(id, parent, n.(document.Sequence), stack)

	case CategorySimpleParameter:
		return buildSimpleParameter(n.(document.Scalar), indent), nil

	case CategoryComplexParameter:
		return buildComplexParameter(id, n.(document.Mapping), indent, stack)

	case CategoryListParameter:
		return buildListParameter(n.(document.Sequence)), nil

	case CategoryStringParameter:
		return quoteIfNeeded(n.(document.Scalar).StrVal), nil

	case CategoryIntParameter:
		return strconv.FormatInt(n.(document.Scalar).IntVal, 10), nil

	case CategoryBooleanParameter:
		// Target grammar polarity: true disables, so it reads "no".
		if n.(document.Scalar).BoolVal {
			return "no", nil
		}

		return "yes", nil

	default:
		return "", &MalformedTreeError{ParentKey: parent, Context: stack.Top(), Depth: stack.Depth()}
	}
}

// buildStatement emits a statement block like a log source or
// destination. Unnamed statement kinds and nested statements omit the
// declared id from the header. Non-mapping body elements (a leading
// id/driver scalar) are consumed by the shape check and skipped here.
func buildStatement(id, parent string, body document.Sequence, indent string, stack *Stack) (string, error) {
	var b strings.Builder

	if IsUnnamedStatement(parent) || stack.Depth() > 1 {
		b.WriteString(indent + parent + " {\n")
	} else {
		b.WriteString(indent + parent + " " + id + " {\n")
	}

	for _, elem := range body {
		m, ok := elem.(document.Mapping)
		if !ok {
			continue
		}

		release := stack.Push(ContextRoot)
		fragment, err := build(id, m.Key, m.Value, stack)
		release()

		if err != nil {
			return "", err
		}

		b.WriteString(fragment)
	}

	b.WriteString(indent + "};")

	return b.String(), nil
}

// buildOptions emits a named option block whose body is a parameter
// list.
func buildOptions(id, parent string, n document.Node, indent string, stack *Stack) (string, error) {
	release := stack.Push(ContextOptions)
	body, err := build(id, parent, n, stack)
	release()

	if err != nil {
		return "", err
	}

	return indent + parent + "(\n" + body + "\n" + indent + ");\n", nil
}

// buildParameters emits every element of a parameter list, joined
// with ",\n". Indentation comes from each element's own recursive
// call.
func buildParameters(id, parent string, body document.Sequence, stack *Stack) (string, error) {
	release := stack.Push(ContextParameter)
	defer release()

	params := make([]string, 0, len(body))

	for _, elem := range body {
		fragment, err := build(id, parent, elem, stack)
		if err != nil {
			return "", err
		}

		params = append(params, fragment)
	}

	return strings.Join(params, ",\n"), nil
}

// buildSimpleParameter emits one scalar parameter. Numeric-looking
// strings pass through unquoted; other strings are quoted when they
// contain special characters.
func buildSimpleParameter(s document.Scalar, indent string) string {
	if s.Kind == document.ScalarString && !looksNumeric(s.StrVal) {
		return indent + quoteIfNeeded(s.StrVal)
	}

	return indent + s.Text()
}

// buildComplexParameter emits a single-key mapping parameter as
// key(content). The caller context supplies any surrounding indent
// for the content.
func buildComplexParameter(id string, m document.Mapping, indent string, stack *Stack) (string, error) {
	release := stack.Push(ContextNestedParameter)
	content, err := build(id, m.Key, m.Value, stack)
	release()

	if err != nil {
		return "", err
	}

	return indent + m.Key + "(" + content + ")", nil
}

// buildListParameter joins a sequence of scalar leaves with comma and
// space, each element unquoted.
func buildListParameter(body document.Sequence) string {
	items := make([]string, 0, len(body))

	for _, elem := range body {
		items = append(items, elem.(document.Scalar).Text())
	}

	return strings.Join(items, ", ")
}

// quoteIfNeeded wraps the string in double quotes when it contains any
// character the target grammar cannot take bare.
func quoteIfNeeded(s string) string {
	if strings.ContainsAny(s, quotationChars) {
		return `"` + s + `"`
	}

	return s
}

// looksNumeric returns true if the string parses as a number.
func looksNumeric(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
