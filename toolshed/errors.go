package toolshed

import "errors"

var (
	// ErrOutOfRange is returned when a tool index is outside [1, count].
	ErrOutOfRange = errors.New("tool index out of range")
	// ErrAlreadyBorrowed is returned when borrowing a tool that is out on loan.
	ErrAlreadyBorrowed = errors.New("tool already borrowed")
	// ErrNoLoan is returned when a worker has no tool to return.
	ErrNoLoan = errors.New("no tool borrowed by this worker")
	// ErrWorkerNotFound is returned for IDs missing from the roster.
	ErrWorkerNotFound = errors.New("worker not found")
	// ErrUnknownStore is returned for an unrecognised store name.
	ErrUnknownStore = errors.New("unknown store")
)
