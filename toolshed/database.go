package toolshed

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Database is a Store backed by a private in-memory SQLite database. Nothing
// outlives the process.
type Database struct {
	db *sql.DB

	insertToolStmt *sql.Stmt
	listToolsStmt  *sql.Stmt
}

// NewDatabase opens the in-memory database, applies the schema and seeds it
// with tools in order.
func NewDatabase(tools []Tool) (*Database, error) {
	db, err := sql.Open("sqlite3", "file::memory:?_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// Every connection to :memory: is its own database, so pin exactly one.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := applyMigrations(db); err != nil {
		db.Close()
		return nil, err
	}

	database := &Database{db: db}
	if err := database.prepareStatements(); err != nil {
		database.Close()
		return nil, err
	}
	if err := database.seed(tools); err != nil {
		database.Close()
		return nil, err
	}
	return database, nil
}

// Close releases prepared statements and closes the DB.
func (d *Database) Close() error {
	if d.insertToolStmt != nil {
		d.insertToolStmt.Close()
	}
	if d.listToolsStmt != nil {
		d.listToolsStmt.Close()
	}
	return d.db.Close()
}

// ---------------------------------------------------------------------------
// Schema migration
// ---------------------------------------------------------------------------

const schemaVersion = 1

func applyMigrations(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS meta (key TEXT PRIMARY KEY, value TEXT);`); err != nil {
		return err
	}

	var current int
	_ = db.QueryRow(`SELECT value FROM meta WHERE key='schema_version';`).Scan(&current)
	if current >= schemaVersion {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS tools (
            position INTEGER PRIMARY KEY,
            name TEXT NOT NULL,
            category INTEGER NOT NULL,
            special_handling BOOLEAN NOT NULL DEFAULT 0,
            borrowed BOOLEAN NOT NULL DEFAULT 0,
            borrower_id INTEGER NOT NULL DEFAULT 0,
            hours INTEGER NOT NULL DEFAULT 0,
            CHECK (borrowed = 1 OR (borrower_id = 0 AND hours = 0))
        );`,
		`CREATE INDEX IF NOT EXISTS idx_tools_borrower ON tools(borrower_id) WHERE borrowed = 1;`,
	}
	for _, stmt := range stmts {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("apply migration: %w", err)
		}
	}
	if _, err := tx.Exec(`INSERT INTO meta(key,value) VALUES('schema_version',?)
            ON CONFLICT(key) DO UPDATE SET value=excluded.value;`, schemaVersion); err != nil {
		return fmt.Errorf("apply migration: %w", err)
	}

	return tx.Commit()
}

// ---------------------------------------------------------------------------
// Prepared statements
// ---------------------------------------------------------------------------

func (d *Database) prepareStatements() error {
	var err error
	if d.insertToolStmt, err = d.db.Prepare(`INSERT INTO tools(position,name,category,special_handling,borrowed,borrower_id,hours) VALUES(?,?,?,?,?,?,?)`); err != nil {
		return err
	}
	if d.listToolsStmt, err = d.db.Prepare(`SELECT name,category,special_handling,borrowed,borrower_id,hours FROM tools ORDER BY position`); err != nil {
		return err
	}
	return nil
}

func (d *Database) seed(tools []Tool) error {
	tx, err := d.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt := tx.Stmt(d.insertToolStmt)
	for i, t := range tools {
		if _, err := stmt.Exec(i+1, t.Name, int(t.Category), t.SpecialHandling, t.State.Borrowed, t.State.WorkerID, t.State.Hours); err != nil {
			return fmt.Errorf("seed %s: %w", t.Name, err)
		}
	}
	return tx.Commit()
}

// ---------------------------------------------------------------------------
// Store
// ---------------------------------------------------------------------------

func (d *Database) Tools() ([]Tool, error) {
	rows, err := d.listToolsStmt.Query()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tools []Tool
	for rows.Next() {
		var (
			t        Tool
			category int
		)
		if err := rows.Scan(&t.Name, &category, &t.SpecialHandling, &t.State.Borrowed, &t.State.WorkerID, &t.State.Hours); err != nil {
			return nil, err
		}
		t.Category = Category(category)
		tools = append(tools, t)
	}
	return tools, rows.Err()
}

// Borrow checks and updates the tool row in one transaction.
func (d *Database) Borrow(index int, workerID int64, hours int) error {
	tx, err := d.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var (
		name     string
		borrowed bool
	)
	err = tx.QueryRow(`SELECT name, borrowed FROM tools WHERE position=?`, index).Scan(&name, &borrowed)
	if err == sql.ErrNoRows {
		return fmt.Errorf("tool %d: %w", index, ErrOutOfRange)
	}
	if err != nil {
		return err
	}
	if borrowed {
		return fmt.Errorf("%s: %w", name, ErrAlreadyBorrowed)
	}

	if _, err := tx.Exec(`UPDATE tools SET borrowed=1, borrower_id=?, hours=? WHERE position=?`, workerID, hours, index); err != nil {
		return err
	}
	return tx.Commit()
}

// ReturnByWorker releases the lowest-positioned tool held by workerID.
func (d *Database) ReturnByWorker(workerID int64) (Tool, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return Tool{}, err
	}
	defer tx.Rollback()

	var (
		position int
		category int
		t        Tool
	)
	err = tx.QueryRow(`SELECT position, name, category, special_handling, borrower_id, hours FROM tools
        WHERE borrowed=1 AND borrower_id=? ORDER BY position LIMIT 1`, workerID).
		Scan(&position, &t.Name, &category, &t.SpecialHandling, &t.State.WorkerID, &t.State.Hours)
	if err == sql.ErrNoRows {
		return Tool{}, fmt.Errorf("worker %d: %w", workerID, ErrNoLoan)
	}
	if err != nil {
		return Tool{}, err
	}
	t.Category = Category(category)
	t.State.Borrowed = true

	if _, err := tx.Exec(`UPDATE tools SET borrowed=0, borrower_id=0, hours=0 WHERE position=?`, position); err != nil {
		return Tool{}, err
	}
	return t, tx.Commit()
}
