// Package store persists suggestion runs in a local SQLite database.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rpgo/savings-planner/internal/domain"

	_ "modernc.org/sqlite" // register sqlite driver
)

// ErrRunNotFound is returned when no run matches an ID.
var ErrRunNotFound = errors.New("run not found")

// History provides SQLite-backed run history.
type History struct {
	db    *sql.DB
	now   func() time.Time
	newID func() string
}

// Run summarizes one suggest invocation.
type Run struct {
	ID            string
	CreatedAt     time.Time
	Source        string
	PeopleCount   int
	ProductsCount int
	RecordCount   int
}

// Open opens or creates the history database at the given path.
func Open(dbPath string) (*History, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating history dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &History{db: db, now: time.Now, newID: uuid.NewString}, nil
}

// Close closes the history database.
func (h *History) Close() error {
	return h.db.Close()
}

// SaveRun stores records under a new run ID and returns the run.
func (h *History) SaveRun(source string, peopleCount, productsCount int, records []domain.ResultRecord) (Run, error) {
	run := Run{
		ID:            h.newID(),
		CreatedAt:     h.now().UTC().Truncate(time.Second),
		Source:        source,
		PeopleCount:   peopleCount,
		ProductsCount: productsCount,
		RecordCount:   len(records),
	}

	tx, err := h.db.Begin()
	if err != nil {
		return Run{}, err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(`INSERT INTO runs
		(run_id, created_at, source, people_count, products_count, record_count)
		VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID, run.CreatedAt.Format(time.RFC3339), run.Source, run.PeopleCount, run.ProductsCount, run.RecordCount,
	)
	if err != nil {
		return Run{}, fmt.Errorf("inserting run: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO suggestions
		(run_id, position, client_name, scenario, product_name,
		 monthly_effort, net_amount, goal_reached, indicators)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return Run{}, err
	}
	defer func() { _ = stmt.Close() }()

	for i, r := range records {
		indicators, err := json.Marshal(r.Indicators)
		if err != nil {
			return Run{}, fmt.Errorf("encoding indicators: %w", err)
		}
		reached := 0
		if r.GoalReached {
			reached = 1
		}
		if _, err := stmt.Exec(run.ID, i, r.ClientName, r.Scenario, r.ProductName,
			r.MonthlyEffort.String(), r.NetAmount.String(), reached, string(indicators)); err != nil {
			return Run{}, fmt.Errorf("inserting suggestion %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return Run{}, err
	}
	return run, nil
}

// ListRuns returns the most recent runs first. limit <= 0 returns all.
func (h *History) ListRuns(limit int) ([]Run, error) {
	query := `SELECT run_id, created_at, source, people_count, products_count, record_count
		FROM runs ORDER BY created_at DESC, rowid DESC`
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := h.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(s scanner) (Run, error) {
	var run Run
	var created string
	if err := s.Scan(&run.ID, &created, &run.Source, &run.PeopleCount, &run.ProductsCount, &run.RecordCount); err != nil {
		return Run{}, err
	}
	run.CreatedAt, _ = time.Parse(time.RFC3339, created)
	return run, nil
}

// LoadRun returns a run and its records in insertion order.
// An ID prefix is accepted when it matches exactly one run.
func (h *History) LoadRun(id string) (Run, []domain.ResultRecord, error) {
	if id == "" {
		return Run{}, nil, fmt.Errorf("%w: empty id", ErrRunNotFound)
	}
	run, err := h.findRun(id)
	if err != nil {
		return Run{}, nil, err
	}
	records, err := h.loadRecords(run.ID)
	if err != nil {
		return Run{}, nil, err
	}
	return run, records, nil
}

func (h *History) findRun(id string) (Run, error) {
	const columns = "run_id, created_at, source, people_count, products_count, record_count"

	run, err := scanRun(h.db.QueryRow("SELECT "+columns+" FROM runs WHERE run_id = ?", id))
	if err == nil {
		return run, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return Run{}, err
	}

	// Prefix match is literal, so _ and % in id are not wildcards.
	rows, err := h.db.Query("SELECT "+columns+" FROM runs WHERE substr(run_id, 1, ?) = ? LIMIT 2",
		utf8.RuneCountInString(id), id)
	if err != nil {
		return Run{}, err
	}
	defer func() { _ = rows.Close() }()

	var matches []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return Run{}, err
		}
		matches = append(matches, run)
	}
	if err := rows.Err(); err != nil {
		return Run{}, err
	}
	switch len(matches) {
	case 0:
		return Run{}, fmt.Errorf("%w: %q", ErrRunNotFound, id)
	case 1:
		return matches[0], nil
	default:
		return Run{}, fmt.Errorf("run id prefix %q is ambiguous", id)
	}
}

func (h *History) loadRecords(runID string) ([]domain.ResultRecord, error) {
	rows, err := h.db.Query(`SELECT client_name, scenario, product_name,
		monthly_effort, net_amount, goal_reached, indicators
		FROM suggestions WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	records := []domain.ResultRecord{}
	for rows.Next() {
		var r domain.ResultRecord
		var effort, net, indicators string
		var reached int
		if err := rows.Scan(&r.ClientName, &r.Scenario, &r.ProductName, &effort, &net, &reached, &indicators); err != nil {
			return nil, err
		}
		if r.MonthlyEffort, err = decimal.NewFromString(effort); err != nil {
			return nil, fmt.Errorf("monthly effort %q: %w", effort, err)
		}
		if r.NetAmount, err = decimal.NewFromString(net); err != nil {
			return nil, fmt.Errorf("net amount %q: %w", net, err)
		}
		if err := json.Unmarshal([]byte(indicators), &r.Indicators); err != nil {
			return nil, fmt.Errorf("indicators: %w", err)
		}
		r.GoalReached = reached != 0
		records = append(records, r)
	}
	return records, rows.Err()
}

// DeleteRun removes a run and its suggestions.
func (h *History) DeleteRun(id string) error {
	res, err := h.db.Exec("DELETE FROM runs WHERE run_id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %q", ErrRunNotFound, id)
	}
	return nil
}
