package repository

import (
	"context"
	"fmt"
	"reflect"

	"talent-match/internal/database"
)

// call records one statement sent to fakeQuerier.
type call struct {
	sql  string
	args []any
}

// fakeQuerier answers every statement with the next queued result.
type fakeQuerier struct {
	calls []call

	row      database.Row
	rows     database.Rows
	queryErr error
	affected int64
	execErr  error
}

func (f *fakeQuerier) Exec(_ context.Context, sql string, args ...any) (int64, error) {
	f.calls = append(f.calls, call{sql, args})
	return f.affected, f.execErr
}

func (f *fakeQuerier) Query(_ context.Context, sql string, args ...any) (database.Rows, error) {
	f.calls = append(f.calls, call{sql, args})
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return f.rows, nil
}

func (f *fakeQuerier) QueryRow(_ context.Context, sql string, args ...any) database.Row {
	f.calls = append(f.calls, call{sql, args})
	return f.row
}

func (f *fakeQuerier) last() call {
	if len(f.calls) == 0 {
		return call{}
	}
	return f.calls[len(f.calls)-1]
}

// fakeRow copies values into the scan targets in column order; a nil value
// leaves its target untouched.
type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return assign(r.values, dest)
}

type fakeRows struct {
	records [][]any
	pos     int
	err     error
	closed  bool
}

func (r *fakeRows) Close()     { r.closed = true }
func (r *fakeRows) Err() error { return r.err }

func (r *fakeRows) Next() bool {
	if r.pos >= len(r.records) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	return assign(r.records[r.pos-1], dest)
}

func assign(values, dest []any) error {
	if len(values) != len(dest) {
		return fmt.Errorf("scan: %d values into %d targets", len(values), len(dest))
	}
	for i, v := range values {
		if v == nil {
			continue
		}
		target := reflect.ValueOf(dest[i]).Elem()
		val := reflect.ValueOf(v)
		if !val.Type().AssignableTo(target.Type()) {
			return fmt.Errorf("scan: column %d: %s into %s", i, val.Type(), target.Type())
		}
		target.Set(val)
	}
	return nil
}
