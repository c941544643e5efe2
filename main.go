package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/mattn/go-isatty"
	"github.com/rivo/tview"
	"github.com/spf13/pflag"

	"github.com/filetug/sizetug/pkg/dirsize"
	"github.com/filetug/sizetug/pkg/files/osfile"
	"github.com/filetug/sizetug/pkg/opener"
	"github.com/filetug/sizetug/pkg/report"
	"github.com/filetug/sizetug/pkg/sizetug"
	"github.com/filetug/sizetug/pkg/sizetug/stsettings"
)

var version = "dev"

var osExit = os.Exit

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

var isTerminal = func() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

var (
	defaultConfigPath = stsettings.DefaultConfigPath
	loadConfig        = stsettings.LoadConfig
)

type options struct {
	print        bool
	output       string
	sort         string
	asc          bool
	hideDotfiles bool
	config       string
	logFile      string
	version      bool
	path         string
}

func main() {
	if err := execute(os.Args[1:]); err != nil {
		_, _ = fmt.Fprintf(stderr, "sizetug: %v\n", err)
		osExit(1)
	}
}

func usage(flags *pflag.FlagSet) func() {
	return func() {
		_, _ = fmt.Fprintln(stderr, heredoc.Doc(`
			sizetug shows the size of every file and folder directly inside a directory.

			Usage:

				sizetug [flags] [path]

			Positional Arguments:
			  path    Directory to scan. In the terminal UI it can also be typed or dropped later.

			Folders are sized by summing every regular file below them. When stdout is not
			a terminal, or --print is given, the result is printed instead of opening the UI.

			Flags:
		`))
		flags.SetOutput(stderr)
		flags.PrintDefaults()
	}
}

func parseFlags(args []string) (options, *pflag.FlagSet, error) {
	var o options
	flags := pflag.NewFlagSet("sizetug", pflag.ContinueOnError)
	flags.SortFlags = false
	flags.BoolVarP(&o.print, "print", "p", false, "Print the scan result and exit")
	flags.StringVarP(&o.output, "output", "o", "table", "Print format: table or json")
	flags.StringVarP(&o.sort, "sort", "s", "", "Initial order: name or size (default from config, else listing order)")
	flags.BoolVar(&o.asc, "asc", false, "Sort ascending instead of descending")
	flags.BoolVar(&o.hideDotfiles, "hide-dotfiles", false, "Leave out entries whose name starts with a dot")
	flags.StringVarP(&o.config, "config", "c", "", "Config file (default ~/.sizetug/config.yaml)")
	flags.StringVar(&o.logFile, "log", "", "Append diagnostics to `file` while the UI runs")
	flags.BoolVarP(&o.version, "version", "v", false, "Show version and exit")
	flags.Usage = usage(flags)

	if err := flags.Parse(args); err != nil {
		return o, flags, err
	}
	if flags.NArg() > 1 {
		return o, flags, fmt.Errorf("expected at most one path, got %d", flags.NArg())
	}
	if flags.NArg() == 1 {
		o.path = flags.Arg(0)
	}
	switch o.output {
	case "table", "json":
	default:
		return o, flags, fmt.Errorf("invalid output format %q: must be table or json", o.output)
	}
	return o, flags, nil
}

// settings merges the config file with flags; flags win.
func settings(o options, flags *pflag.FlagSet) (stsettings.Config, dirsize.SortState, error) {
	path, required := o.config, true
	if path == "" {
		required = false
		var err error
		if path, err = defaultConfigPath(); err != nil {
			log.Println("no default config:", err)
			path = ""
		}
	}
	cfg, err := loadConfig(path, required)
	if err != nil {
		return cfg, dirsize.SortState{}, err
	}
	if flags.Changed("sort") {
		cfg.Sort.Key = o.sort
	}
	if flags.Changed("asc") {
		cfg.Sort.Direction = "desc"
		if o.asc {
			cfg.Sort.Direction = "asc"
		}
	}
	if flags.Changed("hide-dotfiles") {
		cfg.HideDotfiles = o.hideDotfiles
	}
	state, err := cfg.SortState()
	return cfg, state, err
}

func execute(args []string) error {
	o, flags, err := parseFlags(args)
	if errors.Is(err, pflag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	if o.version {
		_, _ = fmt.Fprintln(stdout, version)
		return nil
	}

	cfg, sortState, err := settings(o, flags)
	if err != nil {
		return err
	}

	ctx := context.Background()
	store := osfile.NewStore()
	scanOptions := dirsize.Options{HideDotfiles: cfg.HideDotfiles}

	if o.print || !isTerminal() {
		return printScan(ctx, o, store, scanOptions, sortState)
	}

	closeLog, err := setupLogging(o.logFile)
	if err != nil {
		return err
	}
	defer closeLog()

	session := sizetug.NewSession(store, opener.New(cfg.OpenCommand), scanOptions)
	windowOptions := []sizetug.WindowOption{sizetug.WithSort(sortState)}
	if o.path != "" {
		windowOptions = append(windowOptions, sizetug.WithInitialPath(o.path))
	}
	run(newApp(ctx, session, windowOptions...))
	return nil
}

func printScan(ctx context.Context, o options, store *osfile.Store, scanOptions dirsize.Options, sortState dirsize.SortState) error {
	path := o.path
	if path == "" {
		path = "."
	}
	path, err := filepath.Abs(sizetug.ParseDroppedPath(path))
	if err != nil {
		return err
	}
	if o.output == "table" && isatty.IsTerminal(os.Stderr.Fd()) {
		hook, done := report.Progress(stderr)
		scanOptions.Progress = hook
		defer done()
	}
	result, err := dirsize.Scan(ctx, store, path, scanOptions)
	if err != nil {
		return err
	}
	dirsize.Sort(result.Entries, sortState)
	return report.Print(result, o.output, stdout)
}

// setupLogging keeps log output off the UI screen.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(stderr) }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(stderr)
		_ = f.Close()
	}, nil
}

var setupApp = sizetug.SetupApp

var newApp = func(ctx context.Context, session *sizetug.Session, options ...sizetug.WindowOption) application {
	app := tview.NewApplication()
	setupApp(ctx, app, session, options...)
	return app
}

type application interface{ Run() error }

var run = func(app application) {
	if err := app.Run(); err != nil {
		_, _ = fmt.Fprintf(stderr, "%v\n", err)
	}
}
