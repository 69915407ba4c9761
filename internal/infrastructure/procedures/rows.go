package procedures

import (
	"fmt"
	"strconv"
	"strings"

	"gorm.io/datatypes"
)

// Int64 reads an integer column. Drivers hand integers back as int64, as
// text, or as []byte depending on the engine and the procedure.
func (r Row) Int64(col string) (int64, error) {
	v, ok := r[col]
	if !ok || v == nil {
		return 0, fmt.Errorf("column %q missing", col)
	}
	switch n := v.(type) {
	case int64:
		return n, nil
	case int32:
		return int64(n), nil
	case int:
		return int64(n), nil
	case uint64:
		return int64(n), nil
	case uint32:
		return int64(n), nil
	case float64:
		return int64(n), nil
	case []byte:
		return strconv.ParseInt(strings.TrimSpace(string(n)), 10, 64)
	case string:
		return strconv.ParseInt(strings.TrimSpace(n), 10, 64)
	default:
		return 0, fmt.Errorf("column %q: unsupported type %T", col, v)
	}
}

// Int reads an integer column, treating a missing or NULL value as zero.
func (r Row) Int(col string) int {
	if v, ok := r[col]; !ok || v == nil {
		return 0
	}
	n, err := r.Int64(col)
	if err != nil {
		return 0
	}
	return int(n)
}

// String reads a text column; NULL reads as "".
func (r Row) String(col string) string {
	switch v := r[col].(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprint(v)
	}
}

// StringList decodes a JSON-array text column. NULL and "" decode to an
// empty list.
func (r Row) StringList(col string) ([]string, error) {
	raw := strings.TrimSpace(r.String(col))
	if raw == "" || raw == "null" {
		return []string{}, nil
	}
	var list datatypes.JSONSlice[string]
	if err := list.Scan(raw); err != nil {
		return nil, fmt.Errorf("column %q: %w", col, err)
	}
	if list == nil {
		return []string{}, nil
	}
	return []string(list), nil
}

// EncodeList serializes a list field to the JSON text the procedures expect.
func EncodeList(items []string) (string, error) {
	if items == nil {
		items = []string{}
	}
	v, err := datatypes.NewJSONSlice(items).Value()
	if err != nil {
		return "", err
	}
	switch b := v.(type) {
	case []byte:
		return string(b), nil
	case string:
		return b, nil
	default:
		return "", fmt.Errorf("unexpected encoded list type %T", v)
	}
}
