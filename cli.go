package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"octalysis/internal/i18n"
	"octalysis/internal/state"
	"octalysis/internal/storage"
)

// App holds what every command needs: configuration, the snapshot database,
// the state store seeded from it and the translator.
type App struct {
	DBPath string
	Locale string
	Debug  bool

	config  *Config
	logger  *slog.Logger
	logFile *os.File
	db      *storage.Store
	store   *state.Store
	tr      *i18n.Translator
}

func NewRootCmd() *cobra.Command {
	config := loadConfig()
	app := &App{config: config}

	cmd := &cobra.Command{
		Use:          "octalysis",
		Short:        "Octalysis motivation assessment in the terminal",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive chart
  octalysis

  # Scriptable commands
  octalysis set scarcity 80
  octalysis export -f png -o chart.png
  octalysis summary
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(app)
		},
	}

	cmd.PersistentFlags().StringVar(&app.DBPath, "db", config.DatabasePath(), "snapshot database path")
	cmd.PersistentFlags().StringVar(&app.Locale, "locale", config.Locale, "UI language (en, ru)")
	cmd.PersistentFlags().BoolVar(&app.Debug, "debug", config.Debug, "write a debug log to "+config.LogPath())

	cmd.AddCommand(newExportCmd(app))
	cmd.AddCommand(newSummaryCmd(app))
	cmd.AddCommand(newSetCmd(app))
	cmd.AddCommand(newResetCmd(app))
	return cmd
}

// open prepares logging, storage, the state store and the translator. A
// persisted snapshot, if any, replaces the defaults.
func (a *App) open(ctx context.Context) error {
	if err := a.openLogger(); err != nil {
		return err
	}

	locale, err := a.resolveLocale()
	if err != nil {
		return err
	}
	tr, err := i18n.New(locale)
	if err != nil {
		return err
	}
	a.tr = tr

	db, err := storage.Open(ctx, a.DBPath, a.logger)
	if err != nil {
		return err
	}
	a.db = db

	initial := state.Default()
	if st, ok, err := db.Load(ctx); err != nil {
		a.logger.Warn("load snapshot", "err", err)
	} else if ok {
		initial = st
	}
	a.store = state.NewStore(initial)
	a.logger.Debug("app opened", "db", a.DBPath, "locale", locale)
	return nil
}

func (a *App) openLogger() error {
	if !a.Debug {
		a.logger = slog.New(slog.DiscardHandler)
		return nil
	}
	path := a.config.LogPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	a.logFile = f
	a.logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return nil
}

// resolveLocale prefers the flag/config value, then LANG, then English.
func (a *App) resolveLocale() (i18n.Locale, error) {
	if a.Locale != "" {
		return i18n.ParseLocale(a.Locale)
	}
	if l, err := i18n.ParseLocale(os.Getenv("LANG")); err == nil {
		return l, nil
	}
	return i18n.English, nil
}

// save writes the current snapshot synchronously.
func (a *App) save(ctx context.Context) error {
	return a.db.Save(ctx, a.store.Snapshot())
}

func (a *App) Close() error {
	var errs []error
	if a.db != nil {
		errs = append(errs, a.db.Close())
	}
	if a.logFile != nil {
		errs = append(errs, a.logFile.Close())
	}
	return errors.Join(errs...)
}

func newExportCmd(app *App) *cobra.Command {
	var (
		format string
		output string
		width  int
		theme  string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the chart as PNG, SVG or text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, ok := formatFromPath(output)
			if format != "" {
				var err error
				if f, err = parseExportFormat(format); err != nil {
					return err
				}
			} else if !ok {
				f = formatPNG
			}
			if output == "" {
				var err error
				if output, err = app.config.GetSavePath(withExtension("octalysis", f)); err != nil {
					return err
				}
			}

			ctx := cmd.Context()
			if err := app.open(ctx); err != nil {
				return err
			}
			defer app.Close()

			if theme == "" {
				theme = app.config.Theme
			}
			if err := exportChart(output, f, app.store.Snapshot(), app.tr, themeFor(theme), width); err != nil {
				return fmt.Errorf("export %s: %w", output, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "png, svg or txt (default from the output extension, else png)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file")
	cmd.Flags().IntVar(&width, "width", defaultExportWidth, "chart width in pixels")
	cmd.Flags().StringVar(&theme, "theme", "", "light, dark or auto")
	return cmd
}

func newSummaryCmd(app *App) *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print drive values, scores and notes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.open(cmd.Context()); err != nil {
				return err
			}
			defer app.Close()

			md := summaryMarkdown(app.store.Snapshot(), app.tr)
			if raw {
				_, err := fmt.Fprint(cmd.OutOrStdout(), md)
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), renderMarkdown(md, 80, themeFor(app.config.Theme)))
			return err
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print markdown source")
	return cmd
}

func newSetCmd(app *App) *cobra.Command {
	var note, name string
	cmd := &cobra.Command{
		Use:   "set DRIVER VALUE",
		Short: "Set one drive (0-100), optionally with a note",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := state.ParseDriver(args[0])
			if err != nil {
				return err
			}
			v, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid value %q: %w", args[1], err)
			}

			ctx := cmd.Context()
			if err := app.open(ctx); err != nil {
				return err
			}
			defer app.Close()

			app.store.UpdateDriver(d, v)
			if cmd.Flags().Changed("note") {
				app.store.SetComment(d, note)
			}
			if cmd.Flags().Changed("name") {
				app.store.SetProjectName(name)
			}
			if err := app.save(ctx); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %d\n", d.Key(), app.store.Snapshot().Value(d))
			return nil
		},
	}
	cmd.Flags().StringVar(&note, "note", "", "note for the drive")
	cmd.Flags().StringVar(&name, "name", "", "project name")
	return cmd
}

func newResetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore all drives to 50 and clear notes and name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := app.open(ctx); err != nil {
				return err
			}
			defer app.Close()

			app.store.Reset()
			return app.save(ctx)
		},
	}
}
