package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadData(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []any
		wantErr bool
	}{
		{
			name:  "json object",
			input: `{"name": "test", "value": 42}`,
			want:  []any{map[string]any{"name": "test", "value": float64(42)}},
		},
		{
			name:  "json array",
			input: `[1, 2, 3]`,
			want:  []any{[]any{float64(1), float64(2), float64(3)}},
		},
		{
			name:  "json array of one string",
			input: `["x"]`,
			want:  []any{[]any{"x"}},
		},
		{
			name:  "pretty printed json array",
			input: "[\n  {\"a\": 1},\n  {\"a\": 2}\n]",
			want:  []any{[]any{map[string]any{"a": float64(1)}, map[string]any{"a": float64(2)}}},
		},
		{
			name:  "ndjson",
			input: "{\"a\": 1}\n{\"a\": 2}\nplain",
			want:  []any{map[string]any{"a": float64(1)}, map[string]any{"a": float64(2)}, "plain"},
		},
		{
			name:  "yaml",
			input: "name: test\nvalue: 42",
			want:  []any{map[string]any{"name": "test", "value": 42}},
		},
		{
			name:  "multi document yaml",
			input: "---\nname: a\n---\nname: b\n",
			want:  []any{map[string]any{"name": "a"}, map[string]any{"name": "b"}},
		},
		{
			name:  "toml",
			input: "[server]\nhost = \"localhost\"\nport = 8080",
			want:  []any{map[string]any{"server": map[string]any{"host": "localhost", "port": int64(8080)}}},
		},
		{
			name:    "empty",
			input:   "   \n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadData(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadFormat(t *testing.T) {
	t.Run("csv", func(t *testing.T) {
		got, err := LoadFormat("name,age\nalice,30\nbob,25\n", FormatCSV)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, []any{
			[]any{"name", "age"},
			[]any{"alice", "30"},
			[]any{"bob", "25"},
		}, got[0])
	})

	t.Run("csv with ragged rows", func(t *testing.T) {
		got, err := LoadFormat("a,b\n1\n", FormatCSV)
		require.NoError(t, err)
		assert.Equal(t, []any{[]any{"a", "b"}, []any{"1"}}, got[0])
	})

	t.Run("forced json rejects yaml", func(t *testing.T) {
		_, err := LoadFormat("name: x", FormatJSON)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid JSON")
	})

	t.Run("forced yaml", func(t *testing.T) {
		got, err := LoadFormat("- a\n- b\n", "YML")
		require.NoError(t, err)
		assert.Equal(t, []any{[]any{"a", "b"}}, got)
	})

	t.Run("auto", func(t *testing.T) {
		got, err := LoadFormat(`{"a": true}`, "")
		require.NoError(t, err)
		assert.Equal(t, []any{map[string]any{"a": true}}, got)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := LoadFormat("x", "xml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported input format")
	})
}

func TestLoadRoot(t *testing.T) {
	single, err := LoadRoot(`{"a": 1}`, FormatAuto)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": float64(1)}, single)

	multi, err := LoadRoot("{\"a\": 1}\n{\"a\": 2}", FormatAuto)
	require.NoError(t, err)
	assert.Equal(t, []any{map[string]any{"a": float64(1)}, map[string]any{"a": float64(2)}}, multi)
}

func TestLoadReaderAndFile(t *testing.T) {
	got, err := LoadReader(strings.NewReader("k,v\nx,1\n"), FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, []any{[]any{"k", "v"}, []any{"x", "1"}}, got)

	path := filepath.Join(t.TempDir(), "data.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- name: a\n- name: b\n"), 0o600))
	got, err = LoadFile(path, FormatAuto)
	require.NoError(t, err)
	assert.Equal(t, []any{map[string]any{"name": "a"}, map[string]any{"name": "b"}}, got)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.json"), FormatAuto)
	require.Error(t, err)
}

func TestIsLikelyTOML(t *testing.T) {
	assert.True(t, isLikelyTOML("title = \"x\"\nowner = \"y\""))
	assert.True(t, isLikelyTOML("[database.credentials]\nuser = \"u\""))
	assert.False(t, isLikelyTOML("name: x\nvalue: 1"))
	assert.False(t, isLikelyTOML("[1, 2, 3]"))
}
