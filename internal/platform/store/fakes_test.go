package store

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
)

type fakeTag struct{ n int64 }

func (t fakeTag) String() string      { return fmt.Sprintf("UPDATE %d", t.n) }
func (t fakeTag) RowsAffected() int64 { return t.n }

// fakeRows serves fixed tuples and assigns them through reflection
type fakeRows struct {
	cols   []string
	data   [][]any
	i      int
	err    error
	closed bool
}

func (r *fakeRows) Next() bool {
	if r.i >= len(r.data) {
		return false
	}
	r.i++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	if r.i == 0 || r.i > len(r.data) {
		return errors.New("scan outside row")
	}
	return assignAll(dest, r.data[r.i-1])
}

func (r *fakeRows) Err() error        { return r.err }
func (r *fakeRows) Close()            { r.closed = true }
func (r *fakeRows) Columns() []string { return r.cols }

type fakeRow struct {
	vals []any
	err  error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return assignAll(dest, r.vals)
}

func assignAll(dest, vals []any) error {
	if len(dest) != len(vals) {
		return fmt.Errorf("scan: %d dest for %d values", len(dest), len(vals))
	}
	for i := range dest {
		reflect.ValueOf(dest[i]).Elem().Set(reflect.ValueOf(vals[i]))
	}
	return nil
}

// fakeDB is a scripted TxRunner that records every statement
type fakeDB struct {
	mu       sync.Mutex
	execs    []string
	execArgs [][]any
	execErr  func(sql string) error
	affected int64
	rows     *fakeRows
	queryErr error
	row      func(sql string, args []any) Row
	txCalls  int
	txErr    error
	pingErr  error
	closed   bool
}

func (f *fakeDB) Exec(_ context.Context, sql string, args ...any) (CommandTag, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.execs = append(f.execs, sql)
	f.execArgs = append(f.execArgs, args)
	if f.execErr != nil {
		if err := f.execErr(sql); err != nil {
			return nil, err
		}
	}
	return fakeTag{n: f.affected}, nil
}

func (f *fakeDB) Query(context.Context, string, ...any) (Rows, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return f.rows, nil
}

func (f *fakeDB) QueryRow(_ context.Context, sql string, args ...any) Row {
	if f.row == nil {
		return fakeRow{err: errors.New("no row scripted")}
	}
	return f.row(sql, args)
}

func (f *fakeDB) Tx(_ context.Context, fn func(q RowQuerier) error) error {
	f.txCalls++
	if err := fn(f); err != nil {
		return err
	}
	return f.txErr
}

func (f *fakeDB) Ping(context.Context) error { return f.pingErr }
func (f *fakeDB) Close() error               { f.closed = true; return nil }

func (f *fakeDB) executed(prefix string) int {
	n := 0
	for _, s := range f.execs {
		if strings.HasPrefix(strings.TrimSpace(s), prefix) {
			n++
		}
	}
	return n
}

// fakeCH records DDL and inserts
type fakeCH struct {
	execs    []string
	execErr  error
	inserted map[string][][]any
	columns  []string
	rows     *fakeRows
	pingErr  error
	closed   bool
}

func (f *fakeCH) Exec(_ context.Context, sql string, _ ...any) error {
	f.execs = append(f.execs, sql)
	return f.execErr
}

func (f *fakeCH) Insert(_ context.Context, table string, columns []string, rows [][]any) error {
	if f.inserted == nil {
		f.inserted = map[string][][]any{}
	}
	f.columns = columns
	f.inserted[table] = append(f.inserted[table], rows...)
	return nil
}

func (f *fakeCH) Query(context.Context, string, ...any) (Rows, error) { return f.rows, nil }
func (f *fakeCH) Ping(context.Context) error                          { return f.pingErr }
func (f *fakeCH) Close() error                                        { f.closed = true; return nil }
