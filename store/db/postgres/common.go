package postgres

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// placeholder returns a positional placeholder for PostgreSQL ($1, $2, ...)
func placeholder(n int) string {
	return fmt.Sprintf("$%d", n)
}

// placeholders returns n positional placeholders for PostgreSQL
func placeholders(n int) string {
	list := []string{}
	for i := 0; i < n; i++ {
		list = append(list, placeholder(i+1))
	}
	return strings.Join(list, ", ")
}

// marshalJSON serializes v into the TEXT form used by JSON columns.
func marshalJSON(v any) (string, error) {
	buf, err := json.Marshal(v)
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal json column")
	}
	return string(buf), nil
}

// unmarshalJSON deserializes a JSON TEXT column into dest. An empty column
// leaves dest at its zero value.
func unmarshalJSON(raw string, dest any) error {
	if raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return errors.Wrap(err, "failed to unmarshal json column")
	}
	return nil
}
