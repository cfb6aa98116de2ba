package service

import (
	"github.com/okian/feedcodec/internal/config"
	"github.com/okian/feedcodec/internal/domain/codec"
	"github.com/okian/feedcodec/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithWorkerCount sets the number of worker goroutines.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithQueueSize sets the maximum size of the record queue.
func WithQueueSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.queueSize = size
		}
	}
}

// WithDedupeSize sets the size of the record id cache.
func WithDedupeSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.dedupeSize = size
		}
	}
}

// WithStorePath sets the SQLite file holding outcomes. Empty keeps them in memory.
func WithStorePath(path string) Option {
	return func(s *Service) {
		s.storePath = path
	}
}

// WithStopOnFirstFailure ends a Validate run at the first failed record.
func WithStopOnFirstFailure(stop bool) Option {
	return func(s *Service) {
		s.stopOnFirstFailure = stop
	}
}

// WithRegistry checks records with a custom registry.
func WithRegistry(r *codec.Registry) Option {
	return func(s *Service) {
		s.registry = r
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// FromConfig maps a loaded Config onto service options.
func FromConfig(cfg *config.Config) []Option {
	return []Option{
		WithWorkerCount(cfg.WorkerCount),
		WithQueueSize(cfg.QueueSize),
		WithDedupeSize(cfg.DedupeSize),
		WithStorePath(cfg.StorePath),
		WithStopOnFirstFailure(cfg.StopOnFirstFailure),
	}
}
