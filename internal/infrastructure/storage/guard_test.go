package storage

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/CourseCatalog/backend/internal/domain/catalog"
	"github.com/GriffinCanCode/CourseCatalog/backend/internal/infrastructure/resilience"
)

func TestGuardPassesThrough(t *testing.T) {
	ctx := context.Background()
	breaker := resilience.New("file", resilience.Settings{Threshold: 1, Cooldown: time.Minute})
	store := Guard(newTestFileStore(t), breaker)

	require.NoError(t, store.Save(ctx, catalog.Course{Code: "CS101"}))
	courses, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, courses, 1)
	assert.Equal(t, resilience.StateClosed, breaker.State())
}

func TestGuardOpensOnDeadRedis(t *testing.T) {
	ctx := context.Background()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })

	breaker := resilience.New("redis", resilience.Settings{Threshold: 2, Cooldown: time.Minute})
	store := Guard(NewRedisStore(client, "courses"), breaker)

	require.NoError(t, store.Save(ctx, catalog.Course{Code: "CS101"}))

	mr.Close()
	for i := 0; i < 2; i++ {
		_, err := store.Load(ctx)
		require.Error(t, err)
		assert.NotErrorIs(t, err, resilience.ErrCircuitOpen)
	}

	_, err = store.Load(ctx)
	assert.ErrorIs(t, err, resilience.ErrCircuitOpen)
	assert.ErrorIs(t, store.Save(ctx, catalog.Course{Code: "CS102"}), resilience.ErrCircuitOpen)
}

func TestInstrumentRecordsCircuitOpen(t *testing.T) {
	breaker := resilience.New("file", resilience.Settings{Threshold: 1, Cooldown: time.Minute})
	fs := newTestFileStore(t)
	require.NoError(t, os.WriteFile(fs.Path(), []byte("garbage"), 0o644))

	rec := new(mockRecorder)
	rec.On("RecordServiceError", "store", "load", "malformed").Once()
	rec.On("RecordServiceError", "store", "load", "circuit_open").Once()
	rec.On("RecordServiceCall", "store", "load", "error", mock.AnythingOfType("time.Duration")).Twice()

	store := Instrument(Guard(fs, breaker), rec)
	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, ErrMalformed)
	_, err = store.Load(context.Background())
	assert.ErrorIs(t, err, resilience.ErrCircuitOpen)

	rec.AssertExpectations(t)
}
