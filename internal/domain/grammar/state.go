package grammar

// State sequences parsers over one input. The first failure sticks and
// every later step becomes a no-op, so a template reads top to bottom.
type State struct {
	input string
	err   error
}

// NewState starts sequencing at input.
func NewState(input string) *State {
	return &State{input: input}
}

// Run applies p at the current position.
func Run[T any](s *State, p Parser[T]) T {
	var zero T
	if s.err != nil {
		return zero
	}
	v, rest, err := p(s.input)
	if err != nil {
		s.err = err
		return zero
	}
	s.input = rest
	return v
}

// Lit matches a fixed piece of text.
func (s *State) Lit(lit string) {
	Run(s, Tag(lit))
}

// Rest returns the unconsumed input.
func (s *State) Rest() string {
	return s.input
}

// Err returns the first failure.
func (s *State) Err() error {
	return s.err
}

// Seq turns a sequencing function into a Parser.
func Seq[T any](f func(s *State) T) Parser[T] {
	return func(in string) (T, string, error) {
		s := NewState(in)
		v := f(s)
		if s.err != nil {
			var zero T
			return zero, in, s.err
		}
		return v, s.input, nil
	}
}
