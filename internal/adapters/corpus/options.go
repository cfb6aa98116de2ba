package corpus

import "github.com/okian/feedcodec/pkg/logger"

// Option applies a configuration option to a Source.
type Option func(*Source)

// WithFormat forces the corpus layout instead of detecting it.
func WithFormat(f Format) Option {
	return func(s *Source) {
		s.format = f
	}
}

// WithBufferSize sets the record channel buffer.
func WithBufferSize(n int) Option {
	return func(s *Source) {
		if n > 0 {
			s.bufferSize = n
		}
	}
}

// WithMaxLineSize bounds a single JSON lines record.
func WithMaxLineSize(n int) Option {
	return func(s *Source) {
		if n > 0 {
			s.maxLineSize = n
		}
	}
}

// WithLogger sets a custom logger for the source.
func WithLogger(l logger.Logger) Option {
	return func(s *Source) {
		if l != nil {
			s.logger = l
		}
	}
}
