// Package corpus reads captured feed records from JSON array or JSON lines
// files.
package corpus

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/okian/feedcodec/internal/domain/model"
	"github.com/okian/feedcodec/pkg/logger"
	"github.com/okian/feedcodec/pkg/metrics"
)

// Default source configuration constants.
const (
	defaultBufferSize  = 256
	defaultMaxLineSize = 16 << 20
)

// Format is the layout of a corpus.
type Format int

const (
	// FormatAuto picks FormatJSONArray when the first non-space byte is '['.
	FormatAuto Format = iota
	FormatJSONLines
	FormatJSONArray
)

// Source streams the records of one corpus.
type Source struct {
	name        string
	open        func() (io.ReadCloser, error)
	format      Format
	bufferSize  int
	maxLineSize int
	logger      logger.Logger
}

// NewFileSource reads the corpus at path.
func NewFileSource(path string, opts ...Option) *Source {
	return newSource(path, func() (io.ReadCloser, error) { return os.Open(path) }, opts)
}

// NewReaderSource reads a corpus from r under the given name.
func NewReaderSource(name string, r io.Reader, opts ...Option) *Source {
	return newSource(name, func() (io.ReadCloser, error) { return io.NopCloser(r), nil }, opts)
}

func newSource(name string, open func() (io.ReadCloser, error), opts []Option) *Source {
	s := &Source{
		name:        name,
		open:        open,
		bufferSize:  defaultBufferSize,
		maxLineSize: defaultMaxLineSize,
		logger:      logger.Get().Named("corpus"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name identifies the corpus in logs and stored parse failures.
func (s *Source) Name() string {
	return s.name
}

// Start begins reading and returns record and error channels. The error
// channel carries *ParseError for unreadable records; a malformed array
// ends the stream. Both channels close when the corpus is exhausted or ctx
// is cancelled.
func (s *Source) Start(ctx context.Context) (<-chan model.RawEvent, <-chan error, error) {
	rc, err := s.open()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %w", ErrOpenCorpus, s.name, err)
	}

	br := bufio.NewReader(rc)
	format := s.format
	if format == FormatAuto {
		format = detect(br)
	}

	records := make(chan model.RawEvent, s.bufferSize)
	errs := make(chan error, s.bufferSize)

	go func() {
		defer close(records)
		defer close(errs)
		defer rc.Close()

		e := emitter{ctx: ctx, records: records, errs: errs}
		var n int
		if format == FormatJSONArray {
			n = s.readArray(&e, br)
		} else {
			n = s.readLines(&e, br)
		}
		s.logger.Debug(ctx, "corpus read",
			logger.String("source", s.name),
			logger.Int("records", n),
			logger.Int("parse_errors", e.failed),
		)
	}()

	return records, errs, nil
}

// detect peeks at the first non-space byte.
func detect(br *bufio.Reader) Format {
	for i := 1; ; i++ {
		b, err := br.Peek(i)
		if err != nil || len(b) < i {
			return FormatJSONLines
		}
		switch b[i-1] {
		case ' ', '\t', '\r', '\n':
			continue
		case '[':
			return FormatJSONArray
		default:
			return FormatJSONLines
		}
	}
}

type emitter struct {
	ctx     context.Context
	records chan<- model.RawEvent
	errs    chan<- error
	failed  int
}

func (e *emitter) record(r model.RawEvent) bool { //nolint:gocritic // hugeParam: RawEvent must be passed by value for channel semantics
	select {
	case e.records <- r:
		return true
	case <-e.ctx.Done():
		return false
	}
}

func (e *emitter) fail(pe *ParseError) bool {
	e.failed++
	metrics.RecordCorpusParseError()
	select {
	case e.errs <- pe:
		return true
	case <-e.ctx.Done():
		return false
	}
}

func (s *Source) readLines(e *emitter, br *bufio.Reader) int {
	initial := 64 * 1024
	if s.maxLineSize < initial {
		initial = s.maxLineSize
	}
	sc := bufio.NewScanner(br)
	sc.Buffer(make([]byte, 0, initial), s.maxLineSize)

	var line, n int
	for sc.Scan() {
		line++
		text := bytes.TrimSpace(sc.Bytes())
		if len(text) == 0 {
			continue
		}
		var r model.RawEvent
		if err := json.Unmarshal(text, &r); err != nil {
			if !e.fail(&ParseError{Line: line, Raw: string(text), Err: err}) {
				return n
			}
			continue
		}
		if !e.record(r) {
			return n
		}
		n++
	}
	if err := sc.Err(); err != nil {
		e.fail(&ParseError{Line: line + 1, Err: fmt.Errorf("%w: %w", ErrMalformed, err)})
	}
	return n
}

func (s *Source) readArray(e *emitter, br *bufio.Reader) int {
	dec := json.NewDecoder(br)
	if _, err := dec.Token(); err != nil {
		e.fail(&ParseError{Line: 1, Err: fmt.Errorf("%w: %w", ErrMalformed, err)})
		return 0
	}

	var pos, n int
	for dec.More() {
		pos++
		var r model.RawEvent
		if err := dec.Decode(&r); err != nil {
			if !fatal(err) {
				// The decoder consumed the whole element; the stream can continue.
				if !e.fail(&ParseError{Line: pos, Err: err}) {
					return n
				}
				continue
			}
			e.fail(&ParseError{Line: pos, Err: fmt.Errorf("%w: %w", ErrMalformed, err)})
			return n
		}
		if !e.record(r) {
			return n
		}
		n++
	}
	if _, err := dec.Token(); err != nil {
		e.fail(&ParseError{Line: pos + 1, Err: fmt.Errorf("%w: unterminated array: %w", ErrMalformed, err)})
	}
	return n
}

// fatal reports whether err left the decoder unable to find the next element.
func fatal(err error) bool {
	var syntaxErr *json.SyntaxError
	return errors.As(err, &syntaxErr) || errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF)
}
