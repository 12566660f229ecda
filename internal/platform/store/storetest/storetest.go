// Package storetest provides a scripted in memory store for repo and service tests
package storetest

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"paysystem/internal/platform/store"

	"github.com/jackc/pgx/v5"
)

// Result is what a scripted statement returns
type Result struct {
	Rows     [][]any
	Affected int64
	Err      error
}

// Call is one recorded statement
type Call struct {
	SQL  string
	Args []any
}

type rule struct {
	frag string
	fn   func(args []any) Result
}

// DB is a store.TxRunner whose answers are scripted by SQL fragment
// the most recently added matching rule wins, unmatched statements succeed with no rows
type DB struct {
	mu    sync.Mutex
	rules []rule
	calls []Call
	txs   int
}

// New returns an empty script
func New() *DB { return &DB{} }

// On answers every statement containing frag with fn
func (d *DB) On(frag string, fn func(args []any) Result) *DB {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.rules = append(d.rules, rule{frag: frag, fn: fn})
	return d
}

// Return answers statements containing frag with a fixed result
func (d *DB) Return(frag string, res Result) *DB {
	return d.On(frag, func([]any) Result { return res })
}

// Calls returns the recorded statements
func (d *DB) Calls() []Call {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]Call(nil), d.calls...)
}

// Ran counts statements containing frag
func (d *DB) Ran(frag string) int {
	n := 0
	for _, c := range d.Calls() {
		if strings.Contains(c.SQL, frag) {
			n++
		}
	}
	return n
}

// Last returns the newest statement containing frag
func (d *DB) Last(frag string) (Call, bool) {
	calls := d.Calls()
	for i := len(calls) - 1; i >= 0; i-- {
		if strings.Contains(calls[i].SQL, frag) {
			return calls[i], true
		}
	}
	return Call{}, false
}

// Txs counts transactions opened
func (d *DB) Txs() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.txs
}

func (d *DB) answer(sql string, args []any) Result {
	d.mu.Lock()
	d.calls = append(d.calls, Call{SQL: sql, Args: args})
	rules := d.rules
	d.mu.Unlock()
	for i := len(rules) - 1; i >= 0; i-- {
		if strings.Contains(sql, rules[i].frag) {
			return rules[i].fn(args)
		}
	}
	return Result{}
}

// Exec implements store.RowQuerier
func (d *DB) Exec(_ context.Context, sql string, args ...any) (store.CommandTag, error) {
	res := d.answer(sql, args)
	if res.Err != nil {
		return nil, res.Err
	}
	return tag(res.Affected), nil
}

// Query implements store.RowQuerier
func (d *DB) Query(_ context.Context, sql string, args ...any) (store.Rows, error) {
	res := d.answer(sql, args)
	if res.Err != nil {
		return nil, res.Err
	}
	return &Rows{Data: res.Rows}, nil
}

// QueryRow implements store.RowQuerier, no scripted rows scans as pgx.ErrNoRows
func (d *DB) QueryRow(_ context.Context, sql string, args ...any) store.Row {
	res := d.answer(sql, args)
	switch {
	case res.Err != nil:
		return row{err: res.Err}
	case len(res.Rows) == 0:
		return row{err: pgx.ErrNoRows}
	}
	return row{vals: res.Rows[0]}
}

// Tx runs fn against the same script
func (d *DB) Tx(_ context.Context, fn func(q store.RowQuerier) error) error {
	d.mu.Lock()
	d.txs++
	d.mu.Unlock()
	return fn(d)
}

type tag int64

func (t tag) String() string      { return fmt.Sprintf("OK %d", int64(t)) }
func (t tag) RowsAffected() int64 { return int64(t) }

type row struct {
	vals []any
	err  error
}

func (r row) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return Assign(dest, r.vals)
}

// Rows iterates fixed tuples
type Rows struct {
	Data [][]any
	Cols []string
	Fail error
	i    int
}

// Next advances to the next tuple
func (r *Rows) Next() bool {
	if r.i >= len(r.Data) {
		return false
	}
	r.i++
	return true
}

// Scan assigns the current tuple into dest
func (r *Rows) Scan(dest ...any) error {
	if r.i == 0 || r.i > len(r.Data) {
		return fmt.Errorf("storetest: scan outside row")
	}
	return Assign(dest, r.Data[r.i-1])
}

// Err returns Fail
func (r *Rows) Err() error { return r.Fail }

// Close is a no-op
func (r *Rows) Close() {}

// Columns returns Cols
func (r *Rows) Columns() []string { return r.Cols }

// Assign copies vals into the pointers in dest
// nil clears the target, T fills a *T target, convertible kinds are converted
func Assign(dest, vals []any) error {
	if len(dest) != len(vals) {
		return fmt.Errorf("storetest: %d targets for %d values", len(dest), len(vals))
	}
	for i := range dest {
		dv := reflect.ValueOf(dest[i])
		if dv.Kind() != reflect.Pointer || dv.IsNil() {
			return fmt.Errorf("storetest: target %d is not a pointer", i)
		}
		if err := set(dv.Elem(), vals[i]); err != nil {
			return fmt.Errorf("storetest: column %d: %w", i, err)
		}
	}
	return nil
}

func set(dst reflect.Value, v any) error {
	if v == nil {
		dst.Set(reflect.Zero(dst.Type()))
		return nil
	}
	sv := reflect.ValueOf(v)
	switch {
	case sv.Type().AssignableTo(dst.Type()):
		dst.Set(sv)
	case dst.Kind() == reflect.Pointer && sv.Type().AssignableTo(dst.Type().Elem()):
		p := reflect.New(dst.Type().Elem())
		p.Elem().Set(sv)
		dst.Set(p)
	case sv.Type().ConvertibleTo(dst.Type()):
		dst.Set(sv.Convert(dst.Type()))
	default:
		return fmt.Errorf("cannot assign %s to %s", sv.Type(), dst.Type())
	}
	return nil
}

// CH is a store.Clickhouse that keeps inserts in memory
type CH struct {
	mu       sync.Mutex
	Inserted map[string][][]any
	Columns  []string
	Queries  []Call
	Answer   func(sql string, args []any) Result
	Fail     error
}

// Exec records nothing and returns Fail
func (c *CH) Exec(context.Context, string, ...any) error { return c.Fail }

// Insert appends rows under table
func (c *CH) Insert(_ context.Context, table string, columns []string, rows [][]any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Fail != nil {
		return c.Fail
	}
	if c.Inserted == nil {
		c.Inserted = map[string][][]any{}
	}
	c.Columns = columns
	c.Inserted[table] = append(c.Inserted[table], rows...)
	return nil
}

// Query records the statement and serves Answer
func (c *CH) Query(_ context.Context, sql string, args ...any) (store.Rows, error) {
	c.mu.Lock()
	c.Queries = append(c.Queries, Call{SQL: sql, Args: args})
	c.mu.Unlock()
	if c.Fail != nil {
		return nil, c.Fail
	}
	var res Result
	if c.Answer != nil {
		res = c.Answer(sql, args)
	}
	if res.Err != nil {
		return nil, res.Err
	}
	return &Rows{Data: res.Rows}, nil
}

// Close is a no-op
func (c *CH) Close() error { return nil }

var (
	_ store.TxRunner   = (*DB)(nil)
	_ store.Clickhouse = (*CH)(nil)
)
