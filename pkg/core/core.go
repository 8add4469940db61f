// Package core turns structured data into a rendered papergrid table. It
// chains the loader, an expression evaluator, the tabulator, the record
// limiter and the grid builder behind one Engine.
package core

import (
	"errors"
	"fmt"

	"github.com/oakwood-commons/papergrid/internal/cel"
	"github.com/oakwood-commons/papergrid/internal/config"
	"github.com/oakwood-commons/papergrid/internal/formatter"
	"github.com/oakwood-commons/papergrid/internal/limiter"
	"github.com/oakwood-commons/papergrid/pkg/grid"
	"github.com/oakwood-commons/papergrid/pkg/loader"
)

// Evaluator evaluates expressions against a root node.
type Evaluator interface {
	Evaluate(expr string, root any) (any, error)
}

// Engine renders decoded data as a table.
type Engine struct {
	Evaluator Evaluator
	Config    config.Config
	Limits    limiter.Config
	// FirstRowHeader names columns after the first row of list-of-list input.
	FirstRowHeader bool
}

// Option configures the Engine.
type Option func(*Engine)

// WithEvaluator sets a custom evaluator.
func WithEvaluator(e Evaluator) Option {
	return func(c *Engine) {
		c.Evaluator = e
	}
}

// WithConfig replaces the default style and table settings.
func WithConfig(cfg config.Config) Option {
	return func(c *Engine) {
		c.Config = cfg
	}
}

// WithLimits sets the row window.
func WithLimits(l limiter.Config) Option {
	return func(c *Engine) {
		c.Limits = l
	}
}

// WithFirstRowHeader uses the first row of list-of-list input as the header.
func WithFirstRowHeader(on bool) Option {
	return func(c *Engine) {
		c.FirstRowHeader = on
	}
}

// New creates an Engine with the embedded default config and a CEL
// evaluator unless options say otherwise.
func New(opts ...Option) (*Engine, error) {
	cfg, err := config.Default()
	if err != nil {
		return nil, err
	}
	engine := &Engine{Config: cfg}
	for _, opt := range opts {
		opt(engine)
	}
	if err := engine.Config.Validate(); err != nil {
		return nil, err
	}
	if err := engine.Limits.Validate(); err != nil {
		return nil, err
	}
	if engine.Evaluator == nil {
		eval, err := cel.NewEvaluator()
		if err != nil {
			return nil, err
		}
		engine.Evaluator = eval
	}
	return engine, nil
}

// LoadRoot parses input into a single root node; multi-doc inputs return a slice.
func LoadRoot(input, format string) (any, error) {
	return loader.LoadRoot(input, format)
}

// LoadFile reads a file and parses it into a single root node.
func LoadFile(path, format string) (any, error) {
	return loader.LoadFile(path, format)
}

// Evaluate runs expr against root. An empty expression selects root.
func (e *Engine) Evaluate(expr string, root any) (any, error) {
	if expr == "" {
		return root, nil
	}
	if e == nil || e.Evaluator == nil {
		return nil, errors.New("evaluator is not configured")
	}
	out, err := e.Evaluator.Evaluate(expr, root)
	if err != nil {
		return nil, fmt.Errorf("expression %q: %w", expr, err)
	}
	return out, nil
}

// Table tabulates node with the configured columns, then applies the row
// window.
func (e *Engine) Table(node any) formatter.Table {
	t := formatter.Tabulate(node, formatter.Options{
		FirstRowHeader: e.FirstRowHeader,
		SelectColumns:  e.Config.Table.Columns,
		ColumnOrder:    e.Config.Table.ColumnOrder,
		HiddenColumns:  e.Config.Table.HiddenColumns,
	})
	t.Rows = limiter.Apply(e.Limits, t.Rows)
	return t
}

// Build lays t out on a grid styled by the engine's config.
func (e *Engine) Build(t formatter.Table) (*grid.Grid, error) {
	return formatter.BuildGrid(t, e.Config)
}

// Render tabulates, builds and renders node.
func (e *Engine) Render(node any) (string, error) {
	g, err := e.Build(e.Table(node))
	if err != nil {
		return "", err
	}
	return g.Render(), nil
}
