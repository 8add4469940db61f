package cmd

import (
	"context"

	"github.com/spf13/pflag"

	"github.com/oakwood-commons/papergrid/internal/config"
	"github.com/oakwood-commons/papergrid/pkg/logger"
	"github.com/oakwood-commons/papergrid/pkg/settings"
)

// loadConfig merges defaults, the config file and the flags the user set.
// Flags left at their default never override the file.
func loadConfig(ctx context.Context, flags *pflag.FlagSet, opts *renderOptions) (config.Config, error) {
	path := config.ResolvePath(opts.configFile)
	if run, ok := settings.FromContext(ctx); ok && run.ConfigPath != "" {
		path = run.ConfigPath
	}

	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if path != "" {
		logger.FromContext(ctx).V(1).Info("loaded config", "path", path)
	}

	applyFlagOverrides(&cfg, flags, opts)
	return cfg, cfg.Validate()
}

func applyFlagOverrides(cfg *config.Config, flags *pflag.FlagSet, opts *renderOptions) {
	changed := func(name string) bool {
		f := flags.Lookup(name)
		return f != nil && f.Changed
	}

	if changed("align") {
		cfg.Style.Align = opts.align
		if !changed("header-align") {
			cfg.Style.HeaderAlign = opts.align
		}
	}
	if changed("header-align") {
		cfg.Style.HeaderAlign = opts.headerAlign
	}
	if changed("padding-x") {
		cfg.Style.Padding.Horizontal = opts.paddingX
	}
	if changed("padding-y") {
		cfg.Style.Padding.Vertical = opts.paddingY
	}
	if changed("corner") {
		cfg.Style.Border.Corner = opts.corner
	}
	if changed("max-width") {
		cfg.Table.MaxCellWidth = opts.maxWidth
	}
	if changed("no-header") {
		cfg.Table.Header = !opts.noHeader
	}
	if changed("columns") {
		cfg.Table.Columns = opts.columns
	}
	if changed("order") {
		cfg.Table.ColumnOrder = opts.columnOrder
	}
	if changed("hide") {
		cfg.Table.HiddenColumns = append(cfg.Table.HiddenColumns, opts.hidden...)
	}
}
