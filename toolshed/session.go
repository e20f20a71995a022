package toolshed

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
)

const (
	commandPrompt = "Do you want to check_availability, borrow, return, summary or end? "
	notNumberMsg  = "Please enter a whole number: "
	badHoursMsg   = "Borrow time must be between 1 and 24 hours. Please enter a valid time: "
)

// Session is the interactive command loop. It reads one command per line.
type Session struct {
	sc        *bufio.Scanner
	out       io.Writer
	catalog   *Catalog
	directory *Directory
	log       *slog.Logger
}

// NewSession reads commands from in and writes all user-facing text to out.
// A nil logger discards log records.
func NewSession(in io.Reader, out io.Writer, catalog *Catalog, directory *Directory, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Session{
		sc:        bufio.NewScanner(in),
		out:       out,
		catalog:   catalog,
		directory: directory,
		log:       logger,
	}
}

// Run loops until "end" or end of input. Both return nil.
func (s *Session) Run() error {
	for {
		line, err := s.readLine(commandPrompt)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.out)
			return nil
		}
		if err != nil {
			return err
		}

		var cmdErr error
		switch cmd := strings.TrimSpace(line); cmd {
		case "":
			continue
		case "check_availability":
			cmdErr = s.handleCheckAvailability()
		case "borrow":
			cmdErr = s.handleBorrow()
		case "return":
			cmdErr = s.handleReturn()
		case "summary":
			cmdErr = s.handleSummary()
		case "workers":
			s.handleWorkers()
		case "help":
			s.handleHelp()
		case "end":
			fmt.Fprintln(s.out, "Goodbye!")
			return nil
		default:
			s.log.Debug("unknown command", "command", cmd)
			fmt.Fprintln(s.out, "Invalid choice. Try again.")
		}

		if errors.Is(cmdErr, io.EOF) {
			fmt.Fprintln(s.out)
			return nil
		}
		if cmdErr != nil {
			return cmdErr
		}
	}
}

// ------------------ Input helpers ------------------

// readLine prints prompt and returns the next line, or io.EOF once input ends.
func (s *Session) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	if !s.sc.Scan() {
		if err := s.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.sc.Text(), nil
}

// readInt re-prompts until the line parses as an integer.
func (s *Session) readInt(prompt string) (int64, error) {
	for {
		line, err := s.readLine(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
		if err == nil {
			return n, nil
		}
		s.log.Debug("rejected numeric input", "input", line)
		prompt = notNumberMsg
	}
}

// readHours re-prompts until the value is a valid loan duration.
func (s *Session) readHours(toolName string) (int, error) {
	h, err := s.readInt(fmt.Sprintf("How long do you want to borrow %s for? (in hours): ", toolName))
	for err == nil && !ValidHours(h) {
		s.log.Debug("rejected borrow time", "hours", h)
		h, err = s.readInt(badHoursMsg)
	}
	return int(h), err
}

// ------------------ Commands ------------------

func (s *Session) handleCheckAvailability() error {
	entries, err := s.catalog.ListAll()
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return nil
	}
	fmt.Fprintln(s.out, "Here is the availability of tools:")
	for _, e := range entries {
		fmt.Fprintln(s.out, DescribeAvailability(e.Tool))
	}
	return nil
}

func (s *Session) handleBorrow() error {
	id, err := s.readInt("Enter your ID: ")
	if err != nil {
		return err
	}
	worker, err := s.directory.FindByID(id)
	if err != nil {
		s.log.Debug("borrow by unknown worker", "worker_id", id)
		fmt.Fprintln(s.out, "Invalid ID. Try again.")
		return nil
	}
	fmt.Fprintf(s.out, "Hello, %s (%d)!\n", worker.Name, worker.ID)

	entries, err := s.catalog.ListAll()
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return nil
	}
	for _, e := range entries {
		fmt.Fprintln(s.out, MenuLine(e))
	}

	serial, err := s.readInt("Enter serial number of the tool you want to borrow: ")
	if err != nil {
		return err
	}
	if serial < 1 || serial > int64(len(entries)) {
		fmt.Fprintln(s.out, "Invalid choice. Try again.")
		return nil
	}
	tool, err := s.catalog.Get(int(serial))
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return nil
	}
	if tool.State.Borrowed {
		fmt.Fprintln(s.out, "This tool is already borrowed. Try again.")
		return nil
	}

	hours, err := s.readHours(tool.Name)
	if err != nil {
		return err
	}

	switch err := s.catalog.Borrow(int(serial), worker.ID, hours); {
	case errors.Is(err, ErrAlreadyBorrowed):
		fmt.Fprintln(s.out, "This tool is already borrowed. Try again.")
		return nil
	case errors.Is(err, ErrOutOfRange):
		fmt.Fprintln(s.out, "Invalid choice. Try again.")
		return nil
	case err != nil:
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return nil
	}

	s.log.Info("tool borrowed", "tool", tool.Name, "worker_id", worker.ID, "hours", hours)
	fmt.Fprintf(s.out, "%s (%d) has borrowed %s for %d hour/s.\n", worker.Name, worker.ID, tool.Name, hours)
	return nil
}

func (s *Session) handleReturn() error {
	id, err := s.readInt("Enter your ID: ")
	if err != nil {
		return err
	}
	tool, err := s.catalog.ReturnByWorker(id)
	if errors.Is(err, ErrNoLoan) {
		fmt.Fprintln(s.out, "No tool borrowed by this ID.")
		return nil
	}
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return nil
	}
	s.log.Info("tool returned", "tool", tool.Name, "worker_id", id)
	fmt.Fprintln(s.out, "Tool returned successfully.")
	return nil
}

func (s *Session) handleSummary() error {
	lines, err := s.catalog.Summary()
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return nil
	}
	for _, l := range lines {
		fmt.Fprintln(s.out, l)
	}
	return nil
}

func (s *Session) handleWorkers() {
	for _, w := range s.directory.All() {
		fmt.Fprintf(s.out, "%-5d %s\n", w.ID, w.Name)
	}
}

func (s *Session) handleHelp() {
	fmt.Fprintln(s.out, "Available commands:")
	fmt.Fprintln(s.out, "  check_availability  show every tool and who holds it")
	fmt.Fprintln(s.out, "  borrow              borrow a tool by serial number")
	fmt.Fprintln(s.out, "  return              return the first tool held by an ID")
	fmt.Fprintln(s.out, "  summary             list tools not yet returned")
	fmt.Fprintln(s.out, "  workers             list worker IDs")
	fmt.Fprintln(s.out, "  end                 quit")
}
