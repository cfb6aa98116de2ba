// Package grammar holds the text parsers for feed event descriptions.
//
// A Parser consumes a prefix of its input and returns the parsed value
// together with the unconsumed remainder. Parsers are pure and compose
// through Alt, Opt, Many and the State sequencing helper.
package grammar

import (
	"fmt"
	"strconv"
	"strings"
)

// Parser parses a prefix of input.
type Parser[T any] func(input string) (T, string, error)

// Error reports where and why a parser failed.
type Error struct {
	Expected string
	Near     string
}

const nearLimit = 48

func (e *Error) Error() string {
	return fmt.Sprintf("expected %s near %q", e.Expected, e.Near)
}

func fail(expected, input string) *Error {
	near := input
	if len(near) > nearLimit {
		near = near[:nearLimit] + "..."
	}
	return &Error{Expected: expected, Near: near}
}

// Tag matches lit exactly.
func Tag(lit string) Parser[string] {
	return func(in string) (string, string, error) {
		if !strings.HasPrefix(in, lit) {
			return "", in, fail(strconv.Quote(lit), in)
		}
		return lit, in[len(lit):], nil
	}
}

// Value matches lit and yields v.
func Value[T any](lit string, v T) Parser[T] {
	return func(in string) (T, string, error) {
		if !strings.HasPrefix(in, lit) {
			var zero T
			return zero, in, fail(strconv.Quote(lit), in)
		}
		return v, in[len(lit):], nil
	}
}

// Until captures everything before the first occurrence of lit and
// consumes lit. The capture must be a non-empty single line.
func Until(lit string) Parser[string] {
	return func(in string) (string, string, error) {
		i := strings.Index(in, lit)
		if i <= 0 {
			return "", in, fail("text followed by "+strconv.Quote(lit), in)
		}
		captured := in[:i]
		if strings.ContainsRune(captured, '\n') {
			return "", in, fail("single line followed by "+strconv.Quote(lit), in)
		}
		return captured, in[i+len(lit):], nil
	}
}

// UntilPeriod captures a name terminated by ".".
//
// Names may contain periods themselves ("Jr."), so the period that ends
// the current line wins. Without one the first period in the line is the
// terminator.
func UntilPeriod() Parser[string] {
	return func(in string) (string, string, error) {
		line := in
		if nl := strings.IndexByte(in, '\n'); nl >= 0 {
			line = in[:nl]
		}
		end := -1
		if strings.HasSuffix(line, ".") {
			end = len(line) - 1
		} else {
			end = strings.IndexByte(line, '.')
		}
		if end <= 0 {
			return "", in, fail(`text followed by "."`, in)
		}
		return in[:end], in[end+1:], nil
	}
}

// Line captures the rest of the current line without consuming the
// newline. The capture must not be empty.
func Line() Parser[string] {
	return func(in string) (string, string, error) {
		end := strings.IndexByte(in, '\n')
		if end < 0 {
			end = len(in)
		}
		if end == 0 {
			return "", in, fail("non-empty line", in)
		}
		return in[:end], in[end:], nil
	}
}

// Int parses a decimal integer with an optional leading minus sign.
func Int() Parser[int64] {
	return func(in string) (int64, string, error) {
		i := 0
		if i < len(in) && in[i] == '-' {
			i++
		}
		start := i
		for i < len(in) && in[i] >= '0' && in[i] <= '9' {
			i++
		}
		if i == start {
			return 0, in, fail("integer", in)
		}
		n, err := strconv.ParseInt(in[:i], 10, 64)
		if err != nil {
			return 0, in, fail("integer in range", in)
		}
		return n, in[i:], nil
	}
}

// Expect matches a name captured earlier in the same description.
func Expect(name string) Parser[string] {
	return func(in string) (string, string, error) {
		if name == "" || !strings.HasPrefix(in, name) {
			return "", in, fail("repeated name "+strconv.Quote(name), in)
		}
		return name, in[len(name):], nil
	}
}

// Alt tries each parser in order and returns the first success.
// Order encodes precedence: put the more specific template first.
func Alt[T any](ps ...Parser[T]) Parser[T] {
	return func(in string) (T, string, error) {
		var err error
		for _, p := range ps {
			v, rest, perr := p(in)
			if perr == nil {
				return v, rest, nil
			}
			err = perr
		}
		var zero T
		if err == nil {
			err = fail("any alternative", in)
		}
		return zero, in, err
	}
}

// Opt runs p and yields nil without consuming input when it fails.
func Opt[T any](p Parser[T]) Parser[*T] {
	return func(in string) (*T, string, error) {
		v, rest, err := p(in)
		if err != nil {
			return nil, in, nil
		}
		return &v, rest, nil
	}
}

// Many applies p until it fails or stops consuming input.
func Many[T any](p Parser[T]) Parser[[]T] {
	return func(in string) ([]T, string, error) {
		var out []T
		for {
			v, rest, err := p(in)
			if err != nil || len(rest) == len(in) {
				return out, in, nil
			}
			out = append(out, v)
			in = rest
		}
	}
}

// Map transforms the result of p.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return func(in string) (B, string, error) {
		a, rest, err := p(in)
		if err != nil {
			var zero B
			return zero, in, err
		}
		return f(a), rest, nil
	}
}

// Verify fails with expected when ok rejects the parsed value.
func Verify[T any](p Parser[T], expected string, ok func(T) bool) Parser[T] {
	return func(in string) (T, string, error) {
		v, rest, err := p(in)
		if err != nil {
			return v, in, err
		}
		if !ok(v) {
			var zero T
			return zero, in, fail(expected, in)
		}
		return v, rest, nil
	}
}

// End succeeds only on empty input.
func End() Parser[struct{}] {
	return func(in string) (struct{}, string, error) {
		if in != "" {
			return struct{}{}, in, fail("end of text", in)
		}
		return struct{}{}, in, nil
	}
}
