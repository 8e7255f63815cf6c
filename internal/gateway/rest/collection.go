package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
)

// Collection is the typed view of one remote resource. It mirrors the
// in-process gateway collection method for method.
type Collection[T any] struct {
	client   *Client
	resource string
}

// Open binds a typed collection to the named remote resource.
func Open[T any](c *Client, resource string) Collection[T] {
	return Collection[T]{client: c, resource: resource}
}

func (c Collection[T]) List(ctx context.Context, filters map[string]string) ([]T, error) {
	query := url.Values{}
	for k, v := range filters {
		query.Set(k, v)
	}

	var out []T
	if err := c.client.do(ctx, http.MethodGet, "/api/"+c.resource, query, nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c Collection[T]) GetByID(ctx context.Context, id string) (*T, error) {
	var out T
	if err := c.client.do(ctx, http.MethodGet, "/api/"+c.resource+"/"+url.PathEscape(id), nil, nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c Collection[T]) Create(ctx context.Context, e T) (*T, error) {
	var out T
	if err := c.client.do(ctx, http.MethodPost, "/api/"+c.resource, nil, e, http.StatusCreated, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c Collection[T]) Update(ctx context.Context, e T) (*T, error) {
	id, err := entityID(e)
	if err != nil {
		return nil, err
	}

	var out T
	if err := c.client.do(ctx, http.MethodPut, "/api/"+c.resource+"/"+url.PathEscape(id), nil, e, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c Collection[T]) Delete(ctx context.Context, id string) (string, error) {
	var out struct {
		Message string `json:"message"`
		ID      string `json:"id"`
	}
	body := map[string]string{"id": id}
	if err := c.client.do(ctx, http.MethodDelete, "/api/"+c.resource, nil, body, http.StatusOK, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

// entityID pulls the id out of an entity through its JSON shape.
func entityID(e any) (string, error) {
	buf, err := json.Marshal(e)
	if err != nil {
		return "", err
	}
	var row map[string]any
	if err := json.Unmarshal(buf, &row); err != nil {
		return "", err
	}
	switch v := row["id"].(type) {
	case string:
		if v != "" {
			return v, nil
		}
	case float64:
		return strconv.FormatInt(int64(v), 10), nil
	}
	return "", errors.New("entity has no id")
}
