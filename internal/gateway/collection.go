package gateway

import (
	"context"
	"encoding/json"
	"fmt"
)

// Collection adapts one raw table to a concrete entity type through a JSON
// round-trip, so callers work with structs while the table keeps the
// wire-shaped rows. It is the in-process implementation of the collection
// surface the thunk services depend on; gateway/rest provides the HTTP one.
type Collection[T any] struct {
	table    *Table
	resource string
}

// Open binds a typed collection to the named resource.
func Open[T any](g *Gateway, resource string) (Collection[T], error) {
	t, ok := g.Table(resource)
	if !ok {
		return Collection[T]{}, fmt.Errorf("unknown resource %q", resource)
	}
	return Collection[T]{table: t, resource: resource}, nil
}

func (c Collection[T]) List(_ context.Context, filters map[string]string) ([]T, error) {
	rows, err := c.table.List(filters)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		e, err := decodeRow[T](row)
		if err != nil {
			return nil, fmt.Errorf("decode %s row: %w", c.resource, err)
		}
		out = append(out, e)
	}
	return out, nil
}

func (c Collection[T]) GetByID(_ context.Context, id string) (*T, error) {
	row, err := c.table.Get(id)
	if err != nil {
		return nil, err
	}
	e, err := decodeRow[T](row)
	if err != nil {
		return nil, fmt.Errorf("decode %s row: %w", c.resource, err)
	}
	return &e, nil
}

func (c Collection[T]) Create(_ context.Context, e T) (*T, error) {
	row, err := encodeRow(e)
	if err != nil {
		return nil, err
	}
	created, err := decodeRow[T](c.table.Insert(row))
	if err != nil {
		return nil, fmt.Errorf("decode %s row: %w", c.resource, err)
	}
	return &created, nil
}

func (c Collection[T]) Update(_ context.Context, e T) (*T, error) {
	row, err := encodeRow(e)
	if err != nil {
		return nil, err
	}
	id := stringify(row["id"])
	merged, err := c.table.Update(id, row)
	if err != nil {
		return nil, err
	}
	out, err := decodeRow[T](merged)
	if err != nil {
		return nil, fmt.Errorf("decode %s row: %w", c.resource, err)
	}
	return &out, nil
}

func (c Collection[T]) Delete(_ context.Context, id string) (string, error) {
	return c.table.Delete(id)
}

func encodeRow[T any](e T) (Row, error) {
	buf, err := json.Marshal(e)
	if err != nil {
		return nil, err
	}
	var row Row
	if err := json.Unmarshal(buf, &row); err != nil {
		return nil, err
	}
	return row, nil
}

func decodeRow[T any](row Row) (T, error) {
	var e T
	buf, err := json.Marshal(row)
	if err != nil {
		return e, err
	}
	if err := json.Unmarshal(buf, &e); err != nil {
		return e, err
	}
	return e, nil
}
