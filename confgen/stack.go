package confgen

type ContextEnum int

const (
	// ContextRoot marks the document root or the inside of a
	// statement body.
	ContextRoot ContextEnum = iota
	// ContextOptions marks the inside of an option block, whose body
	// is a parameter list.
	ContextOptions
	// ContextParameter marks a single parameter value.
	ContextParameter
	// ContextNestedParameter marks a parameter of a parameter, where
	// only list, string, int and boolean leaves are accepted.
	ContextNestedParameter

	// ContextTotal is a constant that represents the total number of contexts defined
	ContextTotal = int(iota)
)

// String returns a human-readable context name.
func (c ContextEnum) String() string {
	switch c {
	case ContextRoot:
		return "root"
	case ContextOptions:
		return "options"
	case ContextParameter:
		return "parameter"
	case ContextNestedParameter:
		return "nested-parameter"
	default:
		return "unknown"
	}
}

// Stack tracks the structural context of the current node during one
// compile call. It starts at ContextRoot and must return to its
// pre-call depth after every recursive branch; Push returns a release
// function that the caller invokes before propagating any failure.
type Stack struct {
	frames []ContextEnum
}

// NewStack creates a stack holding the initial root context.
func NewStack() *Stack {
	return &Stack{frames: []ContextEnum{ContextRoot}}
}

// Top returns the current context.
func (s *Stack) Top() ContextEnum {
	return s.frames[len(s.frames)-1]
}

// Depth returns the number of contexts on the stack. Indentation is a
// function of Depth alone: three spaces per level below the first.
func (s *Stack) Depth() int {
	return len(s.frames)
}

// Push enters ctx and returns the function that leaves it again.
func (s *Stack) Push(ctx ContextEnum) (release func()) {
	s.frames = append(s.frames, ctx)

	return func() {
		s.frames = s.frames[:len(s.frames)-1]
	}
}
