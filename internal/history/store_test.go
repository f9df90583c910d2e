package history

import (
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/dialog-tools/zenity/internal/history/migrations"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = db.Close()
	})

	err = migrations.Run(db)
	require.NoError(t, err)

	return NewWithDB(db)
}

func seedRecord(t *testing.T, s *Store, kind, response string, createdAt time.Time) Record {
	t.Helper()
	r := Record{
		ID:        uuid.New(),
		Kind:      kind,
		Title:     "Test",
		Command:   "zenity",
		Response:  response,
		ExitCode:  0,
		CreatedAt: createdAt,
	}
	require.NoError(t, s.Insert(r))
	return r
}

func TestStore_InsertAndGet(t *testing.T) {
	s := newTestStore(t)

	content := "hello"
	r := NewRecord("entry", "Name", "zenity", "affirmed", &content, 0)
	require.NoError(t, s.Insert(r))

	got, err := s.Get(r.ID)
	require.NoError(t, err)
	require.Equal(t, r.ID, got.ID)
	require.Equal(t, "entry", got.Kind)
	require.Equal(t, "Name", got.Title)
	require.Equal(t, "affirmed", got.Response)
	require.NotNil(t, got.Content)
	require.Equal(t, "hello", *got.Content)
	require.Equal(t, 0, got.ExitCode)
}

func TestStore_Insert_NilContent(t *testing.T) {
	s := newTestStore(t)

	r := NewRecord("question", "Sure?", "zenity", "rejected", nil, 1)
	require.NoError(t, s.Insert(r))

	got, err := s.Get(r.ID)
	require.NoError(t, err)
	require.Nil(t, got.Content)
	require.Equal(t, 1, got.ExitCode)
}

func TestStore_List_NewestFirst(t *testing.T) {
	s := newTestStore(t)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	old := seedRecord(t, s, "info", "affirmed", base)
	recent := seedRecord(t, s, "question", "rejected", base.Add(time.Hour))

	records, err := s.List(Filter{})
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, recent.ID, records[0].ID)
	require.Equal(t, old.ID, records[1].ID)
}

func TestStore_List_WithFilters(t *testing.T) {
	s := newTestStore(t)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	seedRecord(t, s, "info", "affirmed", base)
	seedRecord(t, s, "question", "rejected", base.Add(time.Minute))
	seedRecord(t, s, "question", "affirmed", base.Add(2*time.Minute))

	byKind, err := s.List(Filter{Kind: "question"})
	require.NoError(t, err)
	require.Len(t, byKind, 2)

	byResponse, err := s.List(Filter{Response: "affirmed"})
	require.NoError(t, err)
	require.Len(t, byResponse, 2)

	since := base.Add(90 * time.Second)
	bySince, err := s.List(Filter{Since: &since})
	require.NoError(t, err)
	require.Len(t, bySince, 1)

	limited, err := s.List(Filter{Limit: 1})
	require.NoError(t, err)
	require.Len(t, limited, 1)

	combined, err := s.List(Filter{Kind: "question", Response: "rejected"})
	require.NoError(t, err)
	require.Len(t, combined, 1)
}

func TestStore_Count(t *testing.T) {
	s := newTestStore(t)

	n, err := s.Count()
	require.NoError(t, err)
	require.Zero(t, n)

	seedRecord(t, s, "info", "affirmed", time.Now().UTC())

	n, err = s.Count()
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
}

func TestStore_Clear(t *testing.T) {
	s := newTestStore(t)

	base := time.Now().UTC()
	seedRecord(t, s, "info", "affirmed", base)
	seedRecord(t, s, "info", "affirmed", base.Add(time.Second))

	removed, err := s.Clear()
	require.NoError(t, err)
	require.EqualValues(t, 2, removed)

	n, err := s.Count()
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestStore_Prune(t *testing.T) {
	s := newTestStore(t)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		seedRecord(t, s, "info", "affirmed", base.Add(time.Duration(i)*time.Minute))
	}

	removed, err := s.Prune(2)
	require.NoError(t, err)
	require.EqualValues(t, 3, removed)

	records, err := s.List(Filter{})
	require.NoError(t, err)
	require.Len(t, records, 2)
	// the newest two survive
	require.Equal(t, base.Add(4*time.Minute), records[0].CreatedAt)
	require.Equal(t, base.Add(3*time.Minute), records[1].CreatedAt)
}

func TestStore_Prune_NoLimit(t *testing.T) {
	s := newTestStore(t)

	seedRecord(t, s, "info", "affirmed", time.Now().UTC())

	removed, err := s.Prune(0)
	require.NoError(t, err)
	require.Zero(t, removed)
}
