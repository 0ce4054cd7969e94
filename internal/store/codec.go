package store

import (
	"fmt"
	"strconv"
)

const (
	timeLayout = "2006-01-02 15:04:05"
	dateLayout = "2006-01-02"
)

// rowID reads the id column of a raw row. Rows without a numeric id report
// ok=false and are skipped by id matching, mirroring the tolerant id scan of
// the store's NextID.
func rowID(row []string) (int64, bool) {
	if len(row) == 0 {
		return 0, false
	}
	id, err := strconv.ParseInt(row[0], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// rowError tags a decode failure with its table and 1-based row number so a
// corrupt line is reported instead of silently patched over.
func rowError(table string, row int, err error) error {
	return fmt.Errorf("table %s row %d: %w", table, row+1, err)
}

func checkWidth(row []string, want int) error {
	if len(row) != want {
		return fmt.Errorf("want %d fields, got %d", want, len(row))
	}
	return nil
}
