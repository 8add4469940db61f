// Package settings holds build metadata and the per-invocation settings of
// the papergrid CLI.
package settings

// CliBinaryName is the canonical binary name for this tool.
const CliBinaryName = "papergrid"

// VersionInformation is populated at build time via ldflags.
var VersionInformation = VersionInfo{
	Commit:       "unknown",
	BuildVersion: "v0.0.0-nightly",
	BuildTime:    "unknown",
}

// VersionInfo holds metadata about the build.
type VersionInfo struct {
	Commit       string
	BuildVersion string
	BuildTime    string
}

// Input describes where table data comes from.
type Input struct {
	// Path is the file argument; empty when reading stdin.
	Path string
	// FromStdin is set when data is piped in.
	FromStdin bool
	// Format forces a decoder: auto, json, ndjson, yaml, toml or csv.
	Format string
}

// Run holds the settings for a single execution of the application.
type Run struct {
	MinLogLevel int8
	Input       Input
	ConfigPath  string
	ExitOnError bool
}

// NewCliParams returns the defaults used by the command line entry point.
func NewCliParams() *Run {
	return &Run{
		MinLogLevel: 0,
		Input: Input{
			Format: "auto",
		},
		ExitOnError: true,
	}
}

// IsDebug reports whether debug-level logging was requested.
func (r *Run) IsDebug() bool {
	return r != nil && r.MinLogLevel < 0
}
