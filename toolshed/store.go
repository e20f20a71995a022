package toolshed

import (
	"fmt"
	"strings"
)

// Store owns the ordered tool records of a run. Indexes are 1-based.
type Store interface {
	// Tools returns every tool in catalog order.
	Tools() ([]Tool, error)
	// Borrow marks the tool at index as borrowed. It fails with ErrOutOfRange
	// or ErrAlreadyBorrowed and leaves state untouched in that case.
	Borrow(index int, workerID int64, hours int) error
	// ReturnByWorker releases the first tool, in catalog order, held by
	// workerID and returns it as it was before release.
	ReturnByWorker(workerID int64) (Tool, error)
	Close() error
}

// Store names accepted by OpenStore.
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

// OpenStore builds the named store seeded with tools.
func OpenStore(name string, tools []Tool) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", StoreMemory:
		return NewMemoryStore(tools), nil
	case StoreSQLite:
		return NewDatabase(tools)
	default:
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownStore)
	}
}

// MemoryStore keeps tools by value in a slice.
type MemoryStore struct {
	tools []Tool
}

// NewMemoryStore copies tools into a new store.
func NewMemoryStore(tools []Tool) *MemoryStore {
	return &MemoryStore{tools: append([]Tool(nil), tools...)}
}

func (s *MemoryStore) Tools() ([]Tool, error) {
	return append([]Tool(nil), s.tools...), nil
}

func (s *MemoryStore) Borrow(index int, workerID int64, hours int) error {
	if index < 1 || index > len(s.tools) {
		return fmt.Errorf("tool %d: %w", index, ErrOutOfRange)
	}
	t := &s.tools[index-1]
	if t.State.Borrowed {
		return fmt.Errorf("%s: %w", t.Name, ErrAlreadyBorrowed)
	}
	t.State = BorrowState{Borrowed: true, WorkerID: workerID, Hours: hours}
	return nil
}

func (s *MemoryStore) ReturnByWorker(workerID int64) (Tool, error) {
	for i := range s.tools {
		t := &s.tools[i]
		if t.State.Borrowed && t.State.WorkerID == workerID {
			held := *t
			t.State = Available
			return held, nil
		}
	}
	return Tool{}, fmt.Errorf("worker %d: %w", workerID, ErrNoLoan)
}

func (s *MemoryStore) Close() error { return nil }
