package confgen

import "fmt"

// MalformedTreeError reports a node whose shape and position match
// none of the classification rules. It aborts the whole compile call;
// no partial text is returned.
type MalformedTreeError struct {
	// ParentKey is the key the offending node was attached to.
	ParentKey string
	// Context is the stack top at the point of failure.
	Context ContextEnum
	// Depth is the stack depth at the point of failure.
	Depth int
}

func (e *MalformedTreeError) Error() string {
	return fmt.Sprintf("malformed configuration tree: no rule applies under %q in %s context at depth %d",
		e.ParentKey, e.Context, e.Depth)
}

// InvalidInputError reports a root value that is not a single-key
// mapping. It is rejected before traversal begins.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "invalid compile input: " + e.Reason
}
