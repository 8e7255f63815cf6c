package gateway

import (
	"strconv"
	"sync"
	"time"

	"crm-backoffice/internal/domain"
)

// Row is a JSON-shaped record exactly as the mock backend stores it.
type Row = map[string]any

// Table is one in-memory resource collection. Rows keep insertion order.
// The mutex is the per-resource serialization a multi-request server needs;
// there is no versioning or optimistic concurrency beyond it.
type Table struct {
	mu     sync.Mutex
	rows   []Row
	lastID int64
	now    func() time.Time
}

func newTable() *Table {
	return &Table{now: time.Now}
}

// List returns clones of all rows satisfying every supplied filter, in
// insertion order. An empty filter set returns the full collection.
func (t *Table) List(filters map[string]string) ([]Row, error) {
	preds := make([]predicate, 0, len(filters))
	for k, v := range filters {
		p, err := parsePredicate(k, v)
		if err != nil {
			return nil, err
		}
		preds = append(preds, p)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Row, 0, len(t.rows))
	for _, row := range t.rows {
		if rowMatches(row, preds) {
			out = append(out, cloneRow(row))
		}
	}
	return out, nil
}

// Get returns a clone of the row with the given id.
func (t *Table) Get(id string) (Row, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	i := t.indexOf(id)
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	return cloneRow(t.rows[i]), nil
}

// Insert stores the payload with a freshly assigned id and returns the
// stored row. IDs derive from the current unix-millisecond timestamp and
// are bumped to stay strictly increasing when calls land within the same
// millisecond.
func (t *Table) Insert(payload Row) Row {
	row := cloneRow(payload)
	delete(row, "id")

	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.now().UnixMilli()
	if id <= t.lastID {
		id = t.lastID + 1
	}
	t.lastID = id
	row["id"] = strconv.FormatInt(id, 10)
	t.rows = append(t.rows, row)
	return cloneRow(row)
}

// Update merges the patch into the row with the given id, top-level key by
// key, and returns the merged row. The id key is never overwritten.
func (t *Table) Update(id string, patch Row) (Row, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	i := t.indexOf(id)
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	for k, v := range patch {
		if k == "id" {
			continue
		}
		t.rows[i][k] = cloneValue(v)
	}
	return cloneRow(t.rows[i]), nil
}

// Delete removes the row with the given id and returns the id.
func (t *Table) Delete(id string) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	i := t.indexOf(id)
	if i < 0 {
		return "", domain.ErrNotFound
	}
	t.rows = append(t.rows[:i], t.rows[i+1:]...)
	return id, nil
}

// Load replaces the table contents wholesale. Seed and fixture data keep
// their own ids; lastID is advanced past the largest numeric id seen so
// later inserts never collide with loaded rows.
func (t *Table) Load(rows []Row) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows = make([]Row, 0, len(rows))
	t.lastID = 0
	for _, row := range rows {
		clone := cloneRow(row)
		t.rows = append(t.rows, clone)
		if n, err := strconv.ParseInt(stringify(clone["id"]), 10, 64); err == nil && n > t.lastID {
			t.lastID = n
		}
	}
}

// Len reports the current row count.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.rows)
}

func (t *Table) indexOf(id string) int {
	for i, row := range t.rows {
		if stringify(row["id"]) == id {
			return i
		}
	}
	return -1
}

func rowMatches(row Row, preds []predicate) bool {
	for _, p := range preds {
		if !p.matches(row) {
			return false
		}
	}
	return true
}

func cloneRow(row Row) Row {
	out := make(Row, len(row))
	for k, v := range row {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case Row:
		return cloneRow(t)
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}
