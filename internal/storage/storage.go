package storage

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Separator is the single-character field delimiter used in every table
// file. Field values must not contain it; the format does no escaping.
const Separator = ";"

// Store persists one table per delimited text file under a data directory.
// The first line of every file holds the column headers.
type Store struct {
	dir string
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	return &Store{dir: dir}, nil
}

func (s *Store) path(table string) string {
	return filepath.Join(s.dir, table+".csv")
}

// EnsureTable creates the table file with its header line if it does not
// exist yet. Idempotent.
func (s *Store) EnsureTable(table string, headers []string) error {
	_, err := os.Stat(s.path(table))
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat table %s: %w", table, err)
	}

	return s.WriteAll(table, headers, nil)
}

// ReadAll returns every record row in file order, skipping the header line
// and blank lines. An absent table reads as empty, not as an error.
func (s *Store) ReadAll(table string) ([][]string, error) {
	f, err := os.Open(s.path(table))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open table %s: %w", table, err)
	}
	defer f.Close()

	var rows [][]string
	scanner := bufio.NewScanner(f)
	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			first = false
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, strings.Split(line, Separator))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read table %s: %w", table, err)
	}

	return rows, nil
}

// WriteAll overwrites the whole table: header line first, then every row.
// The overwrite is direct, with no temp-file-and-rename step; a crash
// mid-write can leave the table truncated.
func (s *Store) WriteAll(table string, headers []string, rows [][]string) error {
	f, err := os.Create(s.path(table))
	if err != nil {
		return fmt.Errorf("create table %s: %w", table, err)
	}

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, strings.Join(headers, Separator))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, Separator))
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("write table %s: %w", table, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close table %s: %w", table, err)
	}

	return nil
}

// AppendRow writes a single record to the end of the table file; used for
// pure creates so unrelated rows are never re-encoded.
func (s *Store) AppendRow(table string, row []string) error {
	f, err := os.OpenFile(s.path(table), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open table %s: %w", table, err)
	}

	if _, err := fmt.Fprintln(f, strings.Join(row, Separator)); err != nil {
		f.Close()
		return fmt.Errorf("append to table %s: %w", table, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close table %s: %w", table, err)
	}

	return nil
}

// NextID scans column 0 of every row and returns max+1, or 1 for an empty
// table. Rows whose id column is not numeric are skipped rather than
// rejected.
func (s *Store) NextID(table string) (int64, error) {
	rows, err := s.ReadAll(table)
	if err != nil {
		return 0, err
	}

	var maxID int64
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		id, err := strconv.ParseInt(row[0], 10, 64)
		if err != nil {
			continue
		}
		if id > maxID {
			maxID = id
		}
	}

	return maxID + 1, nil
}
