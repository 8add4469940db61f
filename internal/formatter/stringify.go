package formatter

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	runewidth "github.com/mattn/go-runewidth"
)

const ellipsis = "..."

// Stringify renders a decoded value as cell text. Strings keep their line
// breaks (normalized to "\n", trailing breaks dropped); nested maps and
// slices become compact JSON; nil becomes the empty string.
func Stringify(v any) string {
	if v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return normalizeLines(t)
	case bool, int, int64, uint64, float64:
		return fmt.Sprint(t)
	case map[string]any, []any:
		if b, err := json.Marshal(t); err == nil {
			return string(b)
		}
		return fmt.Sprintf("%v", t)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() { //nolint:exhaustive // only composite kinds need JSON
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		if b, err := json.Marshal(v); err == nil {
			return string(b)
		}
	}
	return fmt.Sprintf("%v", v)
}

func normalizeLines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.TrimRight(s, "\n")
}

// truncate shortens every line of s to at most maxWidth terminal columns,
// marking cut lines with an ellipsis when there is room for one.
func truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return s
	}
	tail := ellipsis
	if maxWidth <= runewidth.StringWidth(ellipsis) {
		tail = ""
	}
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = runewidth.Truncate(l, maxWidth, tail)
	}
	return strings.Join(lines, "\n")
}
