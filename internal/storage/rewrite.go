package storage

// Rewrite reads every row of a table, applies fn, and writes the result
// back with the given headers. Updates and deletes go through here so the
// read-patch-write cycle lives in one place.
//
// This is not a transaction: the write is a direct overwrite and nothing is
// rolled back if it fails partway.
func (s *Store) Rewrite(table string, headers []string, fn func(rows [][]string) ([][]string, error)) error {
	rows, err := s.ReadAll(table)
	if err != nil {
		return err
	}

	out, err := fn(rows)
	if err != nil {
		return err
	}

	return s.WriteAll(table, headers, out)
}
