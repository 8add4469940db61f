package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/oakwood-commons/papergrid/internal/config"
	"github.com/oakwood-commons/papergrid/internal/limiter"
	"github.com/oakwood-commons/papergrid/pkg/core"
	"github.com/oakwood-commons/papergrid/pkg/loader"
	"github.com/oakwood-commons/papergrid/pkg/logger"
	"github.com/oakwood-commons/papergrid/pkg/settings"
)

// errShowHelp is returned by readInput when there is neither a file
// argument nor piped input.
var errShowHelp = errors.New("no input provided")

var (
	stdinIsPiped = func() bool { return !term.IsTerminal(int(os.Stdin.Fd())) }
	termGetSize  = term.GetSize
)

// renderOptions holds the flags of the root command.
type renderOptions struct {
	inputFormat string
	expression  string
	configFile  string
	debug       bool

	columns     []string
	hidden      []string
	columnOrder []string
	noHeader    bool

	align       string
	headerAlign string
	paddingX    int
	paddingY    int
	corner      string
	maxWidth    int

	limits limiter.Config
}

func newRootCmd() *cobra.Command {
	opts := &renderOptions{}
	var ctx context.Context

	cmd := &cobra.Command{
		Use:   settings.CliBinaryName + " [file]",
		Short: "Render JSON, YAML, TOML or CSV data as a bordered text table",
		Long: `papergrid reads structured data from a file or stdin and prints it as a
table of monospaced text with ASCII borders.

A list of objects becomes one row per object, an object becomes KEY/VALUE
rows, a list of lists (or CSV) becomes rows as-is. Multi-line values stay
multi-line inside their cell.`,
		Example: "\n  papergrid users.json\n" +
			"  kubectl get pods -o json | papergrid -e '_.items.map(p, {\"name\": p.metadata.name})'\n" +
			"  papergrid --input-format csv --align left report.csv\n" +
			"  papergrid data.yaml --columns name,email --limit 10\n",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       cliVersionString(),
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			// --debug maps to zap's debug level (-1), otherwise info (0).
			var level int8
			if opts.debug {
				level = -1
			}
			lgr := logger.WithValues(logger.Get(level), logger.CommandKey, cmd.Name())

			run := settings.NewCliParams()
			run.MinLogLevel = level
			run.ConfigPath = config.ResolvePath(opts.configFile)
			run.Input.Format = opts.inputFormat
			ctx = settings.IntoContext(logger.WithLogger(cmd.Context(), lgr), run)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if ctx == nil {
				ctx = context.Background()
			}
			err := runRender(ctx, cmd, opts, args)
			if errors.Is(err, errShowHelp) {
				return cmd.Help()
			}
			return err
		},
	}
	cmd.SetVersionTemplate("{{.Version}}\n")

	f := cmd.Flags()
	f.StringVar(&opts.inputFormat, "input-format", loader.FormatAuto, "input format: "+strings.Join(loader.Formats, "|"))
	f.StringVarP(&opts.expression, "expression", "e", "", "CEL expression selecting the data to tabulate, with '_' as the root (e.g. '_.items.filter(x, x.active)')")
	f.StringVar(&opts.configFile, "config-file", "", "path to a YAML config file (default $XDG_CONFIG_HOME/papergrid/config.yaml)")
	f.BoolVar(&opts.debug, "debug", false, "log pipeline steps to stderr")
	f.StringSliceVar(&opts.columns, "columns", nil, "show only these columns, in this order")
	f.StringSliceVar(&opts.hidden, "hide", nil, "columns to omit")
	f.StringSliceVar(&opts.columnOrder, "order", nil, "columns to place first")
	f.BoolVar(&opts.noHeader, "no-header", false, "do not print column names")
	f.StringVar(&opts.align, "align", "", "cell alignment: left|center|right (default from config)")
	f.StringVar(&opts.headerAlign, "header-align", "", "header alignment: left|center|right (default from config)")
	f.IntVar(&opts.paddingX, "padding-x", 0, "spaces inside the left and right border")
	f.IntVar(&opts.paddingY, "padding-y", 0, "blank lines inside the top and bottom border")
	f.StringVar(&opts.corner, "corner", "", "corner glyph (default from config)")
	f.IntVar(&opts.maxWidth, "max-width", 0, "truncate cell lines wider than this (0 = unlimited)")
	f.IntVar(&opts.limits.Limit, "limit", 0, "show at most N rows")
	f.IntVar(&opts.limits.Offset, "offset", 0, "skip the first N rows")
	f.IntVar(&opts.limits.Tail, "tail", 0, "show the last N rows (excludes --limit; ignores --offset)")

	cmd.AddCommand(newVersionCmd(), newConfigCmd())
	return cmd
}

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func runRender(ctx context.Context, cmd *cobra.Command, opts *renderOptions, args []string) error {
	lgr := logger.FromContext(ctx)

	cfg, err := loadConfig(ctx, cmd.Flags(), opts)
	if err != nil {
		return err
	}

	engine, err := core.New(
		core.WithConfig(cfg),
		core.WithLimits(opts.limits),
		core.WithFirstRowHeader(strings.EqualFold(opts.inputFormat, loader.FormatCSV)),
	)
	if err != nil {
		return err
	}

	data, source, err := readInput(cmd, opts.inputFormat, args)
	if err != nil {
		return err
	}
	lgr.V(1).Info("loaded input", logger.InputKey, source)
	run, hasRun := settings.FromContext(ctx)
	if hasRun {
		run.Input.FromStdin = len(args) == 0
		if !run.Input.FromStdin {
			run.Input.Path = args[0]
		}
	}

	if data, err = engine.Evaluate(opts.expression, data); err != nil {
		return err
	}

	table := engine.Table(data)
	lgr.V(1).Info("tabulated input", logger.RecordsKey, len(table.Rows), logger.ColumnsKey, len(table.Columns))

	g, err := engine.Build(table)
	if err != nil {
		return err
	}
	out := g.Render()
	lgr.V(1).Info("rendered grid", logger.RowsKey, g.CountRows(), logger.ColumnsKey, g.CountColumns())
	if hasRun && run.IsDebug() {
		checkTerminalWidth(ctx, out)
	}

	_, err = io.WriteString(cmd.OutOrStdout(), out)
	return err
}

// readInput loads the file argument or piped stdin. The returned source
// names where the data came from.
func readInput(cmd *cobra.Command, format string, args []string) (any, string, error) {
	if len(args) == 1 {
		data, err := loader.LoadFile(args[0], format)
		if err != nil {
			return nil, args[0], fmt.Errorf("load %s: %w", args[0], err)
		}
		return data, args[0], nil
	}
	if !stdinIsPiped() {
		return nil, "", errShowHelp
	}
	data, err := loader.LoadReader(cmd.InOrStdin(), format)
	if err != nil {
		return nil, "stdin", fmt.Errorf("load stdin: %w", err)
	}
	return data, "stdin", nil
}

// checkTerminalWidth logs when the table is wider than the terminal it is
// written to.
func checkTerminalWidth(ctx context.Context, out string) {
	first, _, _ := strings.Cut(out, "\n")
	width := utf8.RuneCountInString(first)
	termWidth, _, err := termGetSize(int(os.Stdout.Fd()))
	if err != nil || termWidth <= 0 || width <= termWidth {
		return
	}
	logger.FromContext(ctx).V(1).Info("table is wider than the terminal", logger.WidthKey, width, "terminal_width", termWidth)
}

func cliVersionString() string {
	v := settings.VersionInformation
	return fmt.Sprintf("%s %s (commit %s, built %s, go %s)", settings.CliBinaryName, v.BuildVersion, v.Commit, v.BuildTime, runtime.Version())
}
