package corpus

import (
	"errors"
	"fmt"
)

// Sentinel kinds for corpus errors.
var (
	ErrOpenCorpus = errors.New("open corpus")
	ErrMalformed  = errors.New("malformed corpus")
)

// ParseError reports a record that could not be read.
type ParseError struct {
	// Line is the 1-based line of a JSON lines corpus, or the 1-based
	// element position of a JSON array corpus.
	Line int
	// Raw is the offending line. It is empty for array corpora.
	Raw string
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("record %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("record %d: parse error", e.Line)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
