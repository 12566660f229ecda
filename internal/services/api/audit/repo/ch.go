package repo

import (
	"context"
	"strings"
	"sync"
	"time"

	"paysystem/internal/platform/store"
	"paysystem/internal/services/api/audit/domain"
)

const chTable = "audit_logs"

var chColumns = []string{"id", "customer_id", "entity_type", "action", "user_id", "details", "message", "created_at"}

// Sequence hands out ids from the microsecond clock, strictly increasing within the process
type Sequence struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

// NewSequence returns a clock backed sequence
func NewSequence() *Sequence { return &Sequence{now: time.Now} }

// Next returns an id greater than every id returned before
func (s *Sequence) Next() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.now().UnixMicro()
	if id <= s.last {
		id = s.last + 1
	}
	s.last = id
	return id
}

// CH stores the trail in a clickhouse MergeTree table
type CH struct {
	db  store.Clickhouse
	seq *Sequence
	now func() time.Time
}

// NewCH returns the clickhouse backed repo
func NewCH(db store.Clickhouse) *CH {
	return &CH{db: db, seq: NewSequence(), now: time.Now}
}

// Insert appends one row, id and created_at are assigned here since the table has no defaults
func (r *CH) Insert(ctx context.Context, e domain.Entry) (domain.Entry, error) {
	e.ID = r.seq.Next()
	e.CreatedAt = r.now().UTC().Truncate(time.Millisecond)
	row := []any{e.ID, e.CustomerID, e.EntityType, e.Action, e.UserID, string(e.Details), e.Message, e.CreatedAt}
	if err := r.db.Insert(ctx, chTable, chColumns, [][]any{row}); err != nil {
		return domain.Entry{}, err
	}
	return e, nil
}

func (r *CH) List(ctx context.Context, in domain.ListInput) ([]domain.Entry, error) {
	where, args := chWhere(in)
	sql := "SELECT " + strings.Join(chColumns, ", ") + " FROM " + chTable + where +
		" ORDER BY id DESC LIMIT ? OFFSET ?"
	args = append(args, in.Limit, in.Offset())

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]domain.Entry, 0, in.Limit)
	for rows.Next() {
		var e domain.Entry
		var details string
		if err := rows.Scan(&e.ID, &e.CustomerID, &e.EntityType, &e.Action, &e.UserID, &details, &e.Message, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.Details = []byte(details)
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *CH) Count(ctx context.Context, in domain.ListInput) (int, error) {
	where, args := chWhere(in)
	rows, err := r.db.Query(ctx, "SELECT count() FROM "+chTable+where, args...)
	if err != nil {
		return 0, err
	}
	defer rows.Close()
	var n uint64
	if rows.Next() {
		if err := rows.Scan(&n); err != nil {
			return 0, err
		}
	}
	return int(n), rows.Err()
}

func chWhere(in domain.ListInput) (string, []any) {
	var conds []string
	var args []any
	if in.CustomerID != "" {
		conds = append(conds, "customer_id = ?")
		args = append(args, in.CustomerID)
	}
	if in.Start != nil {
		conds = append(conds, "created_at >= ?")
		args = append(args, in.Start.UTC())
	}
	if in.End != nil {
		conds = append(conds, "created_at <= ?")
		args = append(args, in.End.UTC())
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}
