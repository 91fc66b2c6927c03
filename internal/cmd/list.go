package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/harrison/lss/internal/config"
	"github.com/harrison/lss/internal/display"
	"github.com/harrison/lss/internal/fileutil"
	"github.com/harrison/lss/internal/filelock"
	"github.com/harrison/lss/internal/logger"
	"github.com/harrison/lss/internal/sequence"
	"github.com/harrison/lss/internal/watcher"
	"github.com/spf13/cobra"
)

// outputLockTimeout bounds how long a write to --output waits for another lss.
const outputLockTimeout = 10 * time.Second

// lister holds everything one invocation needs to produce listings.
type lister struct {
	cfg    *config.Config
	path   string
	output string
	out    io.Writer
	errOut io.Writer
	log    logger.Logger
}

// runList implements the root command
func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	path := "."
	if len(args) == 1 {
		path = args[0]
	}

	output, _ := cmd.Flags().GetString("output")
	watch, _ := cmd.Flags().GetBool("watch")

	l := &lister{
		cfg:    cfg,
		path:   path,
		output: output,
		out:    cmd.OutOrStdout(),
		errOut: cmd.ErrOrStderr(),
		log:    logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel),
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if err := l.listOnce(ctx); err != nil {
		return err
	}
	if !watch {
		return nil
	}

	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	return l.watch(ctx)
}

// loadConfig reads the config file and applies explicitly set flags
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		var err error
		configPath, err = config.DefaultConfigPath()
		if err != nil {
			return nil, err
		}
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
	}

	var (
		logLevel, format, colorMode *string
		includeHidden, filesOnly    *bool
		extensions                  *[]string
		workers                     *int
		debounce                    *time.Duration
	)

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		v, _ := flags.GetString("log-level")
		logLevel = &v
	}
	if flags.Changed("format") {
		v, _ := flags.GetString("format")
		format = &v
	}
	if flags.Changed("color") {
		v, _ := flags.GetString("color")
		colorMode = &v
	}
	if flags.Changed("hidden") {
		v, _ := flags.GetBool("hidden")
		includeHidden = &v
	}
	if flags.Changed("files-only") {
		v, _ := flags.GetBool("files-only")
		filesOnly = &v
	}
	if flags.Changed("ext") {
		v, _ := flags.GetStringSlice("ext")
		extensions = &v
	}
	if flags.Changed("workers") {
		v, _ := flags.GetInt("workers")
		workers = &v
	}
	if flags.Changed("debounce") {
		v, _ := flags.GetDuration("debounce")
		debounce = &v
	}

	cfg.MergeWithFlags(logLevel, format, colorMode, includeHidden, filesOnly, extensions, workers, debounce)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// listOnce lists the path, groups it and writes the report
func (l *lister) listOnce(ctx context.Context) error {
	start := time.Now()

	names, err := fileutil.ListNames(l.path, fileutil.ListOptions{
		IncludeHidden: l.cfg.IncludeHidden,
		FilesOnly:     l.cfg.FilesOnly,
		Extensions:    l.cfg.Extensions,
	})
	if err != nil {
		return err
	}
	l.log.LogDebug(fmt.Sprintf("read %d entries from %s", len(names), l.path))

	var seqs []sequence.Sequence
	if l.cfg.Workers > 1 {
		seqs = sequence.AggregateParallel(names, l.cfg.Workers)
	} else {
		seqs = sequence.Aggregate(names)
	}

	report := display.NewReport(l.path, seqs)
	l.log.LogListing(l.path, report.Total(), len(seqs), time.Since(start))

	if len(names) == 0 {
		display.WarnEmptyListing(l.path, l.skippedNames()).Display(l.errOut, display.ShouldColor(l.cfg.Color, l.errOut))
	}

	if l.output == "" {
		return report.Render(l.out, l.cfg.Format, display.ShouldColor(l.cfg.Color, l.out))
	}

	// Files never get ANSI codes unless explicitly forced
	var buf bytes.Buffer
	if err := report.Render(&buf, l.cfg.Format, l.cfg.Color == config.ColorAlways); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, outputLockTimeout)
	defer cancel()
	if err := filelock.LockAndWrite(ctx, l.output, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write listing to %s: %w", l.output, err)
	}
	l.log.LogInfo(fmt.Sprintf("wrote listing to %s", l.output))

	return nil
}

// skippedNames returns the entries the configured filters removed, or nil
// when no filter is active.
func (l *lister) skippedNames() []string {
	if l.cfg.IncludeHidden && !l.cfg.FilesOnly && len(l.cfg.Extensions) == 0 {
		return nil
	}
	all, err := fileutil.ListNames(l.path, fileutil.ListOptions{IncludeHidden: true})
	if err != nil {
		l.log.LogDebug(fmt.Sprintf("could not list unfiltered entries: %v", err))
		return nil
	}
	return all
}

// ownFiles returns the paths listOnce writes while producing --output, so
// watch mode does not react to its own writes.
func (l *lister) ownFiles() []string {
	if l.output == "" {
		return nil
	}
	out, err := filepath.Abs(l.output)
	if err != nil {
		return nil
	}
	return []string{
		out,
		out + ".lock",
		filepath.Join(filepath.Dir(out), filelock.TempPattern),
	}
}

// watch refreshes the listing until ctx is cancelled
func (l *lister) watch(ctx context.Context) error {
	w, err := watcher.New(l.path, watcher.Options{
		Debounce:     l.cfg.WatchDebounce,
		IgnoreHidden: !l.cfg.IncludeHidden,
		Ignore:       l.ownFiles(),
	}, l.log)
	if err != nil {
		return err
	}

	l.log.LogInfo(fmt.Sprintf("watching %s (Ctrl+C to stop)", w.Dir()))

	return w.Run(ctx, func() error {
		if err := l.listOnce(ctx); err != nil {
			if _, statErr := os.Stat(l.path); statErr != nil {
				return err
			}
			// Transient failures (e.g. a locked output file) should not end the watch
			l.log.LogError(err.Error())
		}
		return nil
	})
}
