package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/atomicstack/gridmenu/internal/app"
	"github.com/atomicstack/gridmenu/internal/source"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose bool
}

const (
	envSource        = "GRIDMENU_SOURCE"
	envSheet         = "GRIDMENU_SHEET"
	envQuery         = "GRIDMENU_QUERY"
	envTable         = "GRIDMENU_TABLE"
	envMenu          = "GRIDMENU_MENU"
	envWidth         = "GRIDMENU_WIDTH"
	envHeight        = "GRIDMENU_HEIGHT"
	envShowFooter    = "GRIDMENU_FOOTER"
	envNoContextMenu = "GRIDMENU_NO_CONTEXT_MENU"
	envNoAlign       = "GRIDMENU_NO_ALIGN"
	envReload        = "GRIDMENU_RELOAD"
	envVerbose       = "GRIDMENU_VERBOSE"
	envTrace         = "GRIDMENU_TRACE"
	envLogFile       = "GRIDMENU_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. The source may
// be given with --source or as the single positional argument.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := pflag.NewFlagSet("gridmenu", pflag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	fs.SortFlags = false

	src := fs.StringP("source", "s", envOrDefault(env, envSource, ""), "csv, tsv, xlsx or sqlite file to show (empty shows a sample table)")
	sheet := fs.String("sheet", envOrDefault(env, envSheet, ""), "workbook sheet to load (defaults to the active sheet)")
	query := fs.String("query", envOrDefault(env, envQuery, ""), "SQL query for sqlite sources")
	table := fs.String("table", envOrDefault(env, envTable, ""), "table to load from sqlite sources when no query is given")
	menu := fs.StringP("menu", "m", envOrDefault(env, envMenu, ""), "YAML or HCL file describing the context menu items")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	noMenu := fs.Bool("no-context-menu", envOrBool(env, envNoContextMenu, false), "disable the per-cell context menu")
	noAlign := fs.Bool("no-align", envOrBool(env, envNoAlign, false), "let the context menu extend past the grid")
	reload := fs.Duration("reload", envOrDuration(env, envReload, 0), "poll the source for changes at this interval (0 disables)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "print menu open/close messages")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	switch rest := fs.Args(); {
	case len(rest) > 1:
		return Config{}, fmt.Errorf("expected at most one source argument, got %d", len(rest))
	case len(rest) == 1 && fs.Changed("source"):
		return Config{}, errors.New("source given both as --source and as an argument")
	case len(rest) == 1:
		*src = rest[0]
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			Source:      *src,
			Sheet:       *sheet,
			Query:       *query,
			Table:       *table,
			Menu:        *menu,
			Width:       *width,
			Height:      *height,
			ShowFooter:  *footer,
			Verbose:     *verbose,
			ContextMenu: !*noMenu,
			AlignToGrid: !*noAlign,
			Reload:      *reload,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Features: Features{
			Verbose: *verbose,
		},
		Flags: map[string]string{
			"source":        *src,
			"sheet":         *sheet,
			"query":         *query,
			"table":         *table,
			"menu":          *menu,
			"width":         strconv.Itoa(*width),
			"height":        strconv.Itoa(*height),
			"footer":        strconv.FormatBool(*footer),
			"noContextMenu": strconv.FormatBool(*noMenu),
			"noAlign":       strconv.FormatBool(*noAlign),
			"reload":        reload.String(),
			"trace":         strconv.FormatBool(*trace),
			"verbose":       strconv.FormatBool(*verbose),
			"logFile":       *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate checks that the source can be opened with the given selectors
// and that the remaining options are in range.
func Validate(cfg Config) error {
	kind, err := source.KindOf(cfg.App.Source)
	if err != nil {
		return err
	}
	if kind == source.KindSQLite && cfg.App.Query == "" && cfg.App.Table == "" {
		return source.ErrNoQuery
	}
	if kind != source.KindSQLite && (cfg.App.Query != "" || cfg.App.Table != "") {
		return fmt.Errorf("--query and --table only apply to sqlite sources")
	}
	if kind != source.KindXLSX && cfg.App.Sheet != "" {
		return fmt.Errorf("--sheet only applies to xlsx sources")
	}
	if cfg.App.Reload < 0 {
		return fmt.Errorf("reload must be >= 0 (got %s)", cfg.App.Reload)
	}
	if cfg.App.Reload > 0 && kind == source.KindSample {
		return errors.New("--reload needs a source file")
	}
	if cfg.App.Menu != "" {
		switch strings.ToLower(filepath.Ext(cfg.App.Menu)) {
		case ".yaml", ".yml", ".hcl":
		default:
			return fmt.Errorf("menu file %q must be .yaml, .yml or .hcl", cfg.App.Menu)
		}
	}
	return nil
}
