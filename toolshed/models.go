package toolshed

// Category is the closed set of tool kinds kept in the shed.
type Category int

const (
	General Category = iota
	Decoration
	Cleaning
)

func (c Category) String() string {
	switch c {
	case General:
		return "Construction"
	case Decoration:
		return "Decoration"
	case Cleaning:
		return "Cleaning"
	default:
		return "Unknown"
	}
}

// BorrowState is either available (Borrowed false, zero WorkerID and Hours)
// or borrowed by WorkerID for Hours.
type BorrowState struct {
	Borrowed bool  `json:"borrowed"`
	WorkerID int64 `json:"worker_id"`
	Hours    int   `json:"hours"`
}

// Available is the zero borrow state.
var Available = BorrowState{}

// Tool is a borrowable item and its current loan state.
type Tool struct {
	Name            string      `json:"name"`
	Category        Category    `json:"category"`
	SpecialHandling bool        `json:"special_handling"`
	State           BorrowState `json:"state"`
}

// NeedsSpecialHandling reports whether the handling note applies. Only
// decoration tools carry it.
func (t Tool) NeedsSpecialHandling() bool {
	return t.Category == Decoration && t.SpecialHandling
}

// Worker is an employee allowed to borrow tools.
type Worker struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Entry pairs a tool with its 1-based position in the catalog.
type Entry struct {
	Index int
	Tool  Tool
}

// MaxBorrowHours caps a single loan.
const MaxBorrowHours = 24

// ValidHours reports whether h is an acceptable loan duration.
func ValidHours(h int64) bool {
	return h >= 1 && h <= MaxBorrowHours
}
