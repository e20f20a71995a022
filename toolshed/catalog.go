package toolshed

import (
	"fmt"
	"strings"
)

// Catalog is a thin façade over a Store, keeping the session code simple.
type Catalog struct {
	store Store
}

// NewCatalog wraps store. The catalog owns it from here on.
func NewCatalog(store Store) *Catalog {
	return &Catalog{store: store}
}

// Close closes the underlying store.
func (c *Catalog) Close() error { return c.store.Close() }

// ListAll returns the current tools with their 1-based display index.
func (c *Catalog) ListAll() ([]Entry, error) {
	tools, err := c.store.Tools()
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, len(tools))
	for i, t := range tools {
		entries[i] = Entry{Index: i + 1, Tool: t}
	}
	return entries, nil
}

// Count is the number of tools in the catalog.
func (c *Catalog) Count() (int, error) {
	tools, err := c.store.Tools()
	if err != nil {
		return 0, err
	}
	return len(tools), nil
}

// Get returns the tool at a 1-based index.
func (c *Catalog) Get(index int) (Tool, error) {
	tools, err := c.store.Tools()
	if err != nil {
		return Tool{}, err
	}
	if index < 1 || index > len(tools) {
		return Tool{}, fmt.Errorf("tool %d: %w", index, ErrOutOfRange)
	}
	return tools[index-1], nil
}

// Borrow lends the tool at index to workerID. Hours are expected to be
// validated by the caller.
func (c *Catalog) Borrow(index int, workerID int64, hours int) error {
	return c.store.Borrow(index, workerID, hours)
}

// ReturnByWorker releases the first tool held by workerID.
func (c *Catalog) ReturnByWorker(workerID int64) (Tool, error) {
	return c.store.ReturnByWorker(workerID)
}

// Summary lists every outstanding loan in catalog order.
func (c *Catalog) Summary() ([]string, error) {
	tools, err := c.store.Tools()
	if err != nil {
		return nil, err
	}
	lines := []string{}
	for _, t := range tools {
		if t.State.Borrowed {
			lines = append(lines, SummaryLine(t))
		}
	}
	return lines, nil
}

// ------------------ Formatting ------------------

// SummaryLine formats one outstanding loan.
func SummaryLine(t Tool) string {
	return fmt.Sprintf("%s --- Borrowed by %d --- %d hour/s || Not Returned", t.Name, t.State.WorkerID, t.State.Hours)
}

// DescribeAvailability reports who holds t, or that it is free, adding the
// handling note for decoration tools that need it. The result may span two lines.
func DescribeAvailability(t Tool) string {
	if t.State.Borrowed {
		lines := []string{fmt.Sprintf("%s is borrowed by %d.", t.Name, t.State.WorkerID)}
		if t.NeedsSpecialHandling() {
			lines = append(lines, fmt.Sprintf("%s requires special handling.", t.Name))
		}
		return strings.Join(lines, "\n")
	}
	if t.NeedsSpecialHandling() {
		return fmt.Sprintf("%s is available to be borrowed and requires special handling.", t.Name)
	}
	return fmt.Sprintf("%s is available to be borrowed.", t.Name)
}

// MenuLine formats an entry for the borrow menu.
func MenuLine(e Entry) string {
	if e.Tool.State.Borrowed {
		return fmt.Sprintf("%d. %s (borrowed by %d)", e.Index, e.Tool.Name, e.Tool.State.WorkerID)
	}
	return fmt.Sprintf("%d. %s", e.Index, e.Tool.Name)
}
