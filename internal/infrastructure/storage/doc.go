/*
Package storage persists the course catalog.

# Backends

  - FileStore keeps the whole catalog in one JSON document, an array of
    course objects. A missing document is an empty catalog. Save reads the
    full document, appends and rewrites it through a temp file and rename.
  - RedisStore keeps one JSON element per course in a Redis list. Appends
    are a single RPUSH.

Both return a *ParseError (matching ErrMalformed) when stored data is not
a course sequence.

# Seeding

LoadSeed reads courses from a YAML, TOML or JSON file and LoadSeeds does
the same for every file matching a glob. Seed writes them into a store that
is still empty.

# Decorators

Instrument reports call timings and error kinds to a Recorder. Guard sends
calls through a resilience.Breaker.

# Usage

	var store storage.Store = storage.NewFileStore("course_catalog.json")
	store = storage.Instrument(store, metrics)

	courses, err := store.Load(ctx)
	err = store.Save(ctx, course)
*/
package storage
