package formbuilder

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/dileepkakara/portfolio/internal/utils"
)

// IDKey is the JSON property holding an item's identifier.
const IDKey = "_id"

// Record is an item viewed through its JSON field names.
type Record struct {
	ID     string
	Fields map[string]any
}

// RecordOf adapts any JSON serialisable value into a Record.
func RecordOf(v any) (Record, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return Record{}, fmt.Errorf("encode item: %w", err)
	}
	fields := map[string]any{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return Record{}, fmt.Errorf("item is not an object: %w", err)
	}
	return Record{ID: scalarText(fields[IDKey]), Fields: fields}, nil
}

func RecordsOf[T any](items []T) ([]Record, error) {
	out := make([]Record, 0, len(items))
	for _, it := range items {
		rec, err := RecordOf(it)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// Text returns the field as form text. Lists are joined with ", ".
func (r Record) Text(name string) string {
	v, ok := r.Fields[name]
	if !ok {
		return ""
	}
	if list, ok := v.([]any); ok {
		parts := make([]string, 0, len(list))
		for _, item := range list {
			parts = append(parts, scalarText(item))
		}
		return utils.JoinTags(parts)
	}
	return scalarText(v)
}

// List returns the field as a list of strings. A plain string is treated as
// comma separated tags.
func (r Record) List(name string) []string {
	switch v := r.Fields[name].(type) {
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s := scalarText(item); s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		return utils.ParseTags(v)
	default:
		return nil
	}
}

func scalarText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		raw, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return strings.Trim(string(raw), `"`)
	}
}
