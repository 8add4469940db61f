package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/papergrid/internal/config"
	"github.com/oakwood-commons/papergrid/internal/limiter"
	"github.com/oakwood-commons/papergrid/pkg/loader"
)

type fakeEvaluator struct {
	expr string
	root any
	out  any
	err  error
}

func (f *fakeEvaluator) Evaluate(expr string, root any) (any, error) {
	f.expr = expr
	f.root = root
	return f.out, f.err
}

func TestEngineRender(t *testing.T) {
	root, err := LoadRoot(`[{"name":"alice"},{"name":"bob"},{"name":"carol"}]`, loader.FormatAuto)
	require.NoError(t, err)

	engine, err := New(WithLimits(limiter.Config{Tail: 2}))
	require.NoError(t, err)

	out, err := engine.Render(root)
	require.NoError(t, err)

	expected := "+-----+\n" +
		"|name |\n" +
		"+-----+\n" +
		"| bob |\n" +
		"+-----+\n" +
		"|carol|\n" +
		"+-----+\n"
	assert.Equal(t, expected, out)
}

func TestEngineEvaluate(t *testing.T) {
	t.Run("default cel evaluator", func(t *testing.T) {
		engine, err := New()
		require.NoError(t, err)

		got, err := engine.Evaluate("_.a + 1", map[string]any{"a": 1})
		require.NoError(t, err)
		assert.Equal(t, int64(2), got)
	})

	t.Run("empty expression selects root", func(t *testing.T) {
		fake := &fakeEvaluator{}
		engine, err := New(WithEvaluator(fake))
		require.NoError(t, err)

		root := []any{"x"}
		got, err := engine.Evaluate("", root)
		require.NoError(t, err)
		assert.Equal(t, root, got)
		assert.Empty(t, fake.expr)
	})

	t.Run("injected evaluator", func(t *testing.T) {
		fake := &fakeEvaluator{out: "picked"}
		engine, err := New(WithEvaluator(fake))
		require.NoError(t, err)

		got, err := engine.Evaluate("anything", 42)
		require.NoError(t, err)
		assert.Equal(t, "picked", got)
		assert.Equal(t, "anything", fake.expr)
		assert.Equal(t, 42, fake.root)
	})

	t.Run("evaluator error is wrapped", func(t *testing.T) {
		engine, err := New(WithEvaluator(&fakeEvaluator{err: errors.New("boom")}))
		require.NoError(t, err)

		_, err = engine.Evaluate("x", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `expression "x": boom`)
	})

	t.Run("nil engine", func(t *testing.T) {
		var engine *Engine
		_, err := engine.Evaluate("x", nil)
		require.Error(t, err)
	})
}

func TestEngineTable(t *testing.T) {
	cfg, err := config.Default()
	require.NoError(t, err)
	cfg.Table.Columns = []string{"b"}

	engine, err := New(WithConfig(cfg), WithFirstRowHeader(true), WithLimits(limiter.Config{Limit: 1}))
	require.NoError(t, err)

	table := engine.Table([]any{
		[]any{"a", "b"},
		[]any{"1", "2"},
		[]any{"3", "4"},
	})
	assert.Equal(t, []string{"b"}, table.Columns)
	assert.Equal(t, [][]string{{"2"}}, table.Rows)
}

func TestNewRejectsInvalidSettings(t *testing.T) {
	cfg, err := config.Default()
	require.NoError(t, err)
	cfg.Style.Align = "diagonal"

	_, err = New(WithConfig(cfg))
	require.Error(t, err)

	_, err = New(WithLimits(limiter.Config{Limit: 1, Tail: 1}))
	require.Error(t, err)
}
