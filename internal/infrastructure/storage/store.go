package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GriffinCanCode/CourseCatalog/backend/internal/domain/catalog"
	"github.com/GriffinCanCode/CourseCatalog/backend/internal/infrastructure/resilience"
)

// ErrMalformed matches every *ParseError.
var ErrMalformed = errors.New("malformed catalog data")

// Store is the persistence contract for the catalog. There is no update
// or delete.
type Store interface {
	// Load returns every course in stored order.
	Load(ctx context.Context) ([]catalog.Course, error)
	// Save appends one course.
	Save(ctx context.Context, course catalog.Course) error
	Close() error
}

// ParseError reports stored data that could not be decoded.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrMalformed) true for any ParseError.
func (e *ParseError) Is(target error) bool { return target == ErrMalformed }

// Recorder receives store call timings. monitoring.Metrics implements it.
type Recorder interface {
	RecordServiceCall(service, method, status string, duration time.Duration)
	RecordServiceError(service, method, errorType string)
}

type instrumented struct {
	Store
	rec Recorder
}

// Instrument wraps store so every Load and Save is timed and counted.
func Instrument(store Store, rec Recorder) Store {
	if rec == nil {
		return store
	}
	return &instrumented{Store: store, rec: rec}
}

func (s *instrumented) Load(ctx context.Context) ([]catalog.Course, error) {
	start := time.Now()
	courses, err := s.Store.Load(ctx)
	s.record("load", start, err)
	return courses, err
}

func (s *instrumented) Save(ctx context.Context, course catalog.Course) error {
	start := time.Now()
	err := s.Store.Save(ctx, course)
	s.record("save", start, err)
	return err
}

func (s *instrumented) record(method string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
		errType := "io"
		switch {
		case errors.Is(err, ErrMalformed):
			errType = "malformed"
		case errors.Is(err, resilience.ErrCircuitOpen):
			errType = "circuit_open"
		}
		s.rec.RecordServiceError("store", method, errType)
	}
	s.rec.RecordServiceCall("store", method, status, time.Since(start))
}
