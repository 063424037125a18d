package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/CourseCatalog/backend/internal/domain/catalog"
)

func newTestFileStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "course_catalog.json"))
}

func TestFileStoreLoadMissingDocument(t *testing.T) {
	store := newTestFileStore(t)

	courses, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, courses)
	assert.Empty(t, courses)

	_, err = os.Stat(store.Path())
	assert.True(t, os.IsNotExist(err), "load must not create the document")
}

func TestFileStoreSaveKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	store := newTestFileStore(t)

	const n = 5
	for i := 0; i < n; i++ {
		require.NoError(t, store.Save(ctx, catalog.Course{
			Code:       fmt.Sprintf("CS%d", 100+i),
			Name:       fmt.Sprintf("Course %d", i),
			Instructor: "A. Lee",
			Semester:   "Fall",
		}))
	}

	courses, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, courses, n)
	for i, c := range courses {
		assert.Equal(t, fmt.Sprintf("CS%d", 100+i), c.Code)
	}
}

func TestFileStorePermitsDuplicateCodes(t *testing.T) {
	ctx := context.Background()
	store := newTestFileStore(t)

	require.NoError(t, store.Save(ctx, catalog.Course{Code: "CS101", Name: "First"}))
	require.NoError(t, store.Save(ctx, catalog.Course{Code: "CS101", Name: "Second"}))

	courses, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, courses, 2)

	first, ok := catalog.Find(courses, "CS101")
	require.True(t, ok)
	assert.Equal(t, "First", first.Name)
}

func TestFileStoreDocumentFormat(t *testing.T) {
	ctx := context.Background()
	store := newTestFileStore(t)

	require.NoError(t, store.Save(ctx, catalog.Course{
		Code: "CS101", Name: "Intro", Instructor: "A. Lee", Semester: "Fall",
	}))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)

	doc := string(data)
	assert.Equal(t, byte('['), data[0], "document is a JSON array")
	for _, key := range []string{
		"code", "name", "instructor", "semester", "schedule",
		"classroom", "prerequisites", "grading", "description",
	} {
		assert.Contains(t, doc, `"`+key+`"`)
	}
	assert.Contains(t, doc, `"schedule": ""`)
}

func TestFileStoreReadsExistingDocument(t *testing.T) {
	store := newTestFileStore(t)
	doc := `[
    {"code": "MATH200", "name": "Linear Algebra", "instructor": "C. Diaz", "semester": "Spring",
     "schedule": "TTh 9:00", "classroom": "B2", "prerequisites": "", "grading": "", "description": ""}
]`
	require.NoError(t, os.WriteFile(store.Path(), []byte(doc), 0o644))

	courses, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "Linear Algebra", courses[0].Name)
	assert.Equal(t, "TTh 9:00", courses[0].Schedule)
}

func TestFileStoreMalformedDocument(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", "this is not json"},
		{"object instead of array", `{"code": "CS101"}`},
		{"truncated", `[{"code": "CS101", "name": `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestFileStore(t)
			require.NoError(t, os.WriteFile(store.Path(), []byte(tt.doc), 0o644))

			_, err := store.Load(context.Background())
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformed))

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, store.Path(), perr.Source)

			err = store.Save(context.Background(), catalog.Course{Code: "X"})
			assert.True(t, errors.Is(err, ErrMalformed), "save must not overwrite a malformed document")

			data, readErr := os.ReadFile(store.Path())
			require.NoError(t, readErr)
			assert.Equal(t, tt.doc, string(data))
		})
	}
}

func TestFileStoreConcurrentSaves(t *testing.T) {
	ctx := context.Background()
	store := newTestFileStore(t)

	const n = 25
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, store.Save(ctx, catalog.Course{Code: fmt.Sprintf("C%02d", i)}))
		}(i)
	}
	wg.Wait()

	courses, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, courses, n, "no update may be lost within one process")
}

func TestFileStoreCanceledContext(t *testing.T) {
	store := newTestFileStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, store.Save(ctx, catalog.Course{Code: "CS101"}), context.Canceled)
}
