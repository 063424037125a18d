package storage

import (
	"context"

	"github.com/GriffinCanCode/CourseCatalog/backend/internal/domain/catalog"
	"github.com/GriffinCanCode/CourseCatalog/backend/internal/infrastructure/resilience"
)

type guarded struct {
	Store
	breaker *resilience.Breaker
}

// Guard routes Load and Save through breaker so a dead backend fails
// requests immediately instead of each waiting out its own timeout.
func Guard(store Store, breaker *resilience.Breaker) Store {
	return &guarded{Store: store, breaker: breaker}
}

func (s *guarded) Load(ctx context.Context) ([]catalog.Course, error) {
	return resilience.Do(s.breaker, func() ([]catalog.Course, error) {
		return s.Store.Load(ctx)
	})
}

func (s *guarded) Save(ctx context.Context, course catalog.Course) error {
	_, err := resilience.Do(s.breaker, func() (struct{}, error) {
		return struct{}{}, s.Store.Save(ctx, course)
	})
	return err
}
