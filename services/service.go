// Package services holds the business logic behind every endpoint. It talks
// to persistence only through store.Store and has no HTTP dependencies.
package services

import (
	"time"

	"prepcourse/config"
	"prepcourse/store"

	"golang.org/x/crypto/bcrypt"
)

const defaultConcurrency = 8

type Service struct {
	store       store.Store
	now         func() time.Time
	loc         *time.Location
	saltRound   int
	concurrency int
}

type Option func(*Service)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithLocation sets the calendar used for day buckets.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithSaltRound sets the bcrypt cost for student passwords.
func WithSaltRound(cost int) Option {
	return func(s *Service) {
		if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
			s.saltRound = cost
		}
	}
}

// WithConcurrency bounds the per-entity fan-out of count listings.
func WithConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

func New(st store.Store, opts ...Option) *Service {
	s := &Service{
		store:       st,
		now:         time.Now,
		loc:         time.Local,
		saltRound:   bcrypt.DefaultCost,
		concurrency: defaultConcurrency,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewFromConfig builds a Service tuned by the application configuration.
func NewFromConfig(st store.Store, cfg *config.Config) *Service {
	if cfg == nil {
		return New(st)
	}
	return New(st,
		WithLocation(cfg.Location()),
		WithSaltRound(cfg.SaltRound),
		WithConcurrency(cfg.DBMaxOpenConns),
	)
}

func (s *Service) Location() *time.Location { return s.loc }
