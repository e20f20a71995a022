package toolshed

import "fmt"

// Directory is the read-only worker roster.
type Directory struct {
	workers []Worker
}

// NewDirectory copies workers so later edits to the slice do not leak in.
func NewDirectory(workers []Worker) *Directory {
	return &Directory{workers: append([]Worker(nil), workers...)}
}

// FindByID returns the first worker with the given ID.
func (d *Directory) FindByID(id int64) (Worker, error) {
	for _, w := range d.workers {
		if w.ID == id {
			return w, nil
		}
	}
	return Worker{}, fmt.Errorf("worker %d: %w", id, ErrWorkerNotFound)
}

// All returns the roster in directory order.
func (d *Directory) All() []Worker {
	return append([]Worker(nil), d.workers...)
}
