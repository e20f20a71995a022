package toolshed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempDB(t *testing.T) *Database {
	t.Helper()
	db, err := NewDatabase(SeedTools())
	if err != nil {
		t.Fatalf("new db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// forEachStore runs fn against a freshly seeded store of every kind.
func forEachStore(t *testing.T, fn func(t *testing.T, s Store)) {
	t.Helper()
	t.Run("memory", func(t *testing.T) {
		fn(t, NewMemoryStore(SeedTools()))
	})
	t.Run("sqlite", func(t *testing.T) {
		fn(t, tempDB(t))
	})
}

func TestStoreSeededAvailable(t *testing.T) {
	forEachStore(t, func(t *testing.T, s Store) {
		tools, err := s.Tools()
		require.NoError(t, err)
		require.Len(t, tools, len(SeedTools()))
		for i, tool := range tools {
			assert.Equal(t, SeedTools()[i].Name, tool.Name)
			assert.Equal(t, Available, tool.State, tool.Name)
		}
	})
}

func TestStoreKeepsCategoryAndHandling(t *testing.T) {
	forEachStore(t, func(t *testing.T, s Store) {
		tools, err := s.Tools()
		require.NoError(t, err)
		assert.Equal(t, General, tools[0].Category)
		assert.Equal(t, Decoration, tools[7].Category)
		assert.True(t, tools[7].SpecialHandling)
		assert.False(t, tools[5].SpecialHandling)
		assert.Equal(t, Cleaning, tools[11].Category)
	})
}

func TestStoreBorrow(t *testing.T) {
	forEachStore(t, func(t *testing.T, s Store) {
		require.NoError(t, s.Borrow(2, 124, 8))

		tools, err := s.Tools()
		require.NoError(t, err)
		assert.Equal(t, BorrowState{Borrowed: true, WorkerID: 124, Hours: 8}, tools[1].State)
		for i, tool := range tools {
			if i != 1 {
				assert.False(t, tool.State.Borrowed, tool.Name)
			}
		}
	})
}

func TestStoreBorrowAlreadyBorrowed(t *testing.T) {
	forEachStore(t, func(t *testing.T, s Store) {
		require.NoError(t, s.Borrow(1, 121, 5))

		err := s.Borrow(1, 122, 3)
		require.ErrorIs(t, err, ErrAlreadyBorrowed)

		tools, err := s.Tools()
		require.NoError(t, err)
		assert.Equal(t, BorrowState{Borrowed: true, WorkerID: 121, Hours: 5}, tools[0].State)
	})
}

func TestStoreBorrowOutOfRange(t *testing.T) {
	forEachStore(t, func(t *testing.T, s Store) {
		for _, idx := range []int{0, -1, len(SeedTools()) + 1} {
			assert.ErrorIs(t, s.Borrow(idx, 121, 1), ErrOutOfRange, "index %d", idx)
		}
	})
}

func TestStoreReturnByWorker(t *testing.T) {
	forEachStore(t, func(t *testing.T, s Store) {
		require.NoError(t, s.Borrow(4, 125, 2))

		held, err := s.ReturnByWorker(125)
		require.NoError(t, err)
		assert.Equal(t, "Levels", held.Name)
		assert.Equal(t, BorrowState{Borrowed: true, WorkerID: 125, Hours: 2}, held.State)

		tools, err := s.Tools()
		require.NoError(t, err)
		assert.Equal(t, Available, tools[3].State)
	})
}

func TestStoreReturnWithoutLoan(t *testing.T) {
	forEachStore(t, func(t *testing.T, s Store) {
		require.NoError(t, s.Borrow(1, 121, 5))

		_, err := s.ReturnByWorker(130)
		require.ErrorIs(t, err, ErrNoLoan)

		tools, err := s.Tools()
		require.NoError(t, err)
		assert.Equal(t, BorrowState{Borrowed: true, WorkerID: 121, Hours: 5}, tools[0].State)
	})
}

// A worker may hold several tools; each return releases the first one in
// catalog order.
func TestStoreReturnReleasesFirstMatch(t *testing.T) {
	forEachStore(t, func(t *testing.T, s Store) {
		require.NoError(t, s.Borrow(6, 127, 1))
		require.NoError(t, s.Borrow(2, 127, 2))

		held, err := s.ReturnByWorker(127)
		require.NoError(t, err)
		assert.Equal(t, "Screwdriver", held.Name)

		tools, err := s.Tools()
		require.NoError(t, err)
		assert.False(t, tools[1].State.Borrowed)
		assert.True(t, tools[5].State.Borrowed)

		held, err = s.ReturnByWorker(127)
		require.NoError(t, err)
		assert.Equal(t, "Paint Brush", held.Name)

		_, err = s.ReturnByWorker(127)
		assert.ErrorIs(t, err, ErrNoLoan)
	})
}

func TestOpenStore(t *testing.T) {
	for _, name := range []string{"", "memory", "SQLite", " sqlite "} {
		s, err := OpenStore(name, SeedTools())
		require.NoError(t, err, name)
		tools, err := s.Tools()
		require.NoError(t, err)
		assert.Len(t, tools, len(SeedTools()))
		require.NoError(t, s.Close())
	}

	_, err := OpenStore("postgres", SeedTools())
	assert.ErrorIs(t, err, ErrUnknownStore)
}

func TestMemoryStoreCopiesSeed(t *testing.T) {
	seed := SeedTools()
	s := NewMemoryStore(seed)
	require.NoError(t, s.Borrow(1, 121, 1))
	assert.False(t, seed[0].State.Borrowed)
}

func TestDatabasesAreIsolated(t *testing.T) {
	a := tempDB(t)
	b := tempDB(t)
	require.NoError(t, a.Borrow(1, 121, 1))

	tools, err := b.Tools()
	require.NoError(t, err)
	assert.False(t, tools[0].State.Borrowed)
}
