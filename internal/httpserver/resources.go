package httpserver

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"crm-backoffice/internal/domain"
	"crm-backoffice/internal/gateway"
)

func listHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		table, ok := resolveTable(c, deps)
		if !ok {
			return
		}

		filters := make(map[string]string)
		for key, values := range c.Request.URL.Query() {
			if len(values) > 0 {
				filters[key] = values[0]
			}
		}

		rows, err := table.List(filters)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

func getHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		table, ok := resolveTable(c, deps)
		if !ok {
			return
		}

		row, err := table.Get(c.Param("id"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, row)
	}
}

func createHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		// The auth endpoint shares the /api prefix with the collections.
		if c.Param("resource") == "auth" {
			signInHandler(deps)(c)
			return
		}

		table, ok := resolveTable(c, deps)
		if !ok {
			return
		}

		var payload gateway.Row
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
			return
		}
		c.JSON(http.StatusCreated, table.Insert(payload))
	}
}

func updateHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		table, ok := resolveTable(c, deps)
		if !ok {
			return
		}

		var payload gateway.Row
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
			return
		}

		row, err := table.Update(c.Param("id"), payload)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, row)
	}
}

// deleteHandler expects the target id in the JSON body rather than the path,
// mirroring the wire contract the SPA client speaks.
func deleteHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		table, ok := resolveTable(c, deps)
		if !ok {
			return
		}

		var body gateway.Row
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
			return
		}

		id, ok := deleteID(body["id"])
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "id is required and must be numeric"})
			return
		}

		deleted, err := table.Delete(id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		resource := c.Param("resource")
		c.JSON(http.StatusOK, gin.H{
			"message": fmt.Sprintf("%s %s deleted", resource, deleted),
			"id":      deleted,
		})
	}
}

func resolveTable(c *gin.Context, deps Deps) (*gateway.Table, bool) {
	resource := c.Param("resource")
	table, ok := deps.Gateway.Table(resource)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("unknown resource %q", resource)})
		return nil, false
	}
	return table, true
}

// deleteID accepts the id either as a JSON number or a numeric string.
func deleteID(raw any) (string, bool) {
	switch v := raw.(type) {
	case string:
		if _, err := strconv.ParseInt(v, 10, 64); err != nil {
			return "", false
		}
		return v, true
	case float64:
		if v != float64(int64(v)) {
			return "", false
		}
		return strconv.FormatInt(int64(v), 10), true
	default:
		return "", false
	}
}
