package confgen

import "syslogng-gen/document"

// Classify decides which emission rule applies to a node, given the
// key it hangs under and the current context stack. The decision is a
// priority chain, not independent predicates: the statement rule is
// checked first because its shape overlaps with the option-block rule.
// Every reachable combination matches exactly one category or fails
// with MalformedTreeError. Classify never mutates the stack.
func Classify(parentKey string, n document.Node, stack *Stack) (CategoryEnum, error) {
	if isStatement(parentKey, n) {
		return CategoryStatement, nil
	}

	top := stack.Top()

	switch v := n.(type) {
	case document.Scalar:
		switch top {
		case ContextRoot:
			return CategoryReference, nil
		case ContextParameter:
			return CategorySimpleParameter, nil
		case ContextNestedParameter:
			switch v.Kind {
			case document.ScalarString:
				return CategoryStringParameter, nil
			case document.ScalarInt:
				return CategoryIntParameter, nil
			case document.ScalarBool:
				return CategoryBooleanParameter, nil
			}
			// Floats have no leaf rule at this depth.
		}

	case document.Sequence:
		switch top {
		case ContextRoot:
			return CategoryOptions, nil
		case ContextOptions:
			return CategoryParameterList, nil
		case ContextNestedParameter:
			if allScalars(v) {
				return CategoryListParameter, nil
			}
		}

	case document.Mapping:
		if top == ContextParameter {
			return CategoryComplexParameter, nil
		}
	}

	return CategoryUnknown, &MalformedTreeError{
		ParentKey: parentKey,
		Context:   top,
		Depth:     stack.Depth(),
	}
}

// isStatement reports whether name is a recognized statement keyword
// and the content has statement shape: a sequence of mappings, with an
// optional leading id/driver element that may be a string scalar or a
// mapping.
func isStatement(name string, n document.Node) bool {
	if !IsStatementName(name) {
		return false
	}

	seq, ok := n.(document.Sequence)
	if !ok {
		return false
	}

	if allMappings(seq) {
		return true
	}

	if len(seq) < 2 || !allMappings(seq[1:]) {
		return false
	}

	switch head := seq[0].(type) {
	case document.Scalar:
		return head.Kind == document.ScalarString
	case document.Mapping:
		return true
	default:
		return false
	}
}

// allMappings returns true if every element of the sequence is a
// mapping.
func allMappings(seq document.Sequence) bool {
	for _, n := range seq {
		if _, ok := n.(document.Mapping); !ok {
			return false
		}
	}

	return true
}

// allScalars returns true if every element of the sequence is a
// scalar.
func allScalars(seq document.Sequence) bool {
	for _, n := range seq {
		if _, ok := n.(document.Scalar); !ok {
			return false
		}
	}

	return true
}
