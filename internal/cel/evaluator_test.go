package cel

import (
	"testing"

	"github.com/google/cel-go/common/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	eval, err := NewEvaluator()
	require.NoError(t, err)

	data := map[string]any{
		"name":  "inventory",
		"count": 2,
		"items": []any{
			map[string]any{"name": "bolt", "available": true},
			map[string]any{"name": "nut", "available": false},
		},
	}

	tests := []struct {
		name     string
		expr     string
		expected any
	}{
		{"field", "_.name", "inventory"},
		{"number", "_.count", int64(2)},
		{"index", "_.items[1].name", "nut"},
		{"filter", "_.items.filter(x, x.available)", []any{map[string]any{"name": "bolt", "available": true}}},
		{"map", "_.items.map(x, x.name)", []any{"bolt", "nut"}},
		{"map literal", `{"a": 1}`, map[string]any{"a": int64(1)}},
		{"size", `_.name.size()`, int64(9)},
		{"null", "null", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := eval.Evaluate(tt.expr, data)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestEvaluateErrors(t *testing.T) {
	eval, err := NewEvaluator()
	require.NoError(t, err)

	_, err = eval.Evaluate("_.items[", map[string]any{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "compilation error")

	_, err = eval.Evaluate("_.missing", map[string]any{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "eval error")
}

func TestToGo(t *testing.T) {
	assert.Nil(t, ToGo(nil))
	assert.Equal(t, true, ToGo(types.Bool(true)))
	assert.Equal(t, uint64(3), ToGo(types.Uint(3)))
	assert.Equal(t, 1.5, ToGo(types.Double(1.5)))
	assert.Equal(t, []byte("x"), ToGo(types.Bytes("x")))
}
