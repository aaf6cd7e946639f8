// Command shotcalc calculates the trajectory of a shotgun pellet and prints
// the range table.
//
//	shotcalc -shot "#6" -material lead -velocity 1300 -wind 10
//	shotcalc -scenario loads.yaml -export out/
//	shotcalc -tui
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gehtsoft-usa/go_shotcalc"
	"github.com/gehtsoft-usa/go_shotcalc/internal/chart"
	"github.com/gehtsoft-usa/go_shotcalc/internal/config"
	"github.com/gehtsoft-usa/go_shotcalc/internal/form"
	"github.com/gehtsoft-usa/go_shotcalc/internal/input"
	"github.com/gehtsoft-usa/go_shotcalc/internal/metrics"
	"github.com/gehtsoft-usa/go_shotcalc/internal/report"
	"github.com/gehtsoft-usa/go_shotcalc/internal/scenario"
	"github.com/gehtsoft-usa/go_shotcalc/internal/storage"
)

const runSource = "cli"

type options struct {
	values       map[string]string // field texts of the flags that were set
	scenarioPath string
	exportDir    string
	pngPath      string
	sparkline    bool
	tui          bool
	dbPath       string
}

var settingFlags = []struct {
	name  string
	field string
	usage string
}{
	{"shot", input.FieldShotSize, "shot size, e.g. \"#7 1/2\", BB or \"00 Buck\""},
	{"diameter", input.FieldDiameter, "pellet diameter in inches, instead of -shot"},
	{"material", input.FieldMaterial, "shot material, e.g. Lead, Steel or Bismuth"},
	{"density", input.FieldDensity, "material density in lb/cu.in., instead of -material"},
	{"weight", input.FieldWeight, "pellet weight in grains, overrides the derived weight"},
	{"velocity", input.FieldMuzzleVelocity, "muzzle velocity in fps (100-4000)"},
	{"wind", input.FieldCrosswind, "crosswind in mph (0-60)"},
	{"altitude", input.FieldAltitude, "altitude in feet: \"sea level\" or a multiple of 500 up to 10000"},
	{"temp", input.FieldTemperature, "temperature in °F (-10 to 120), standard for the altitude by default"},
	{"bc", input.FieldBallisticCoefficient, "relative ballistic coefficient"},
}

func newFlagSet() *flag.FlagSet {
	return flag.NewFlagSet("shotcalc", flag.ContinueOnError)
}

func parseFlags(fs *flag.FlagSet, args []string) (options, error) {
	opts := options{values: make(map[string]string)}
	fields := make(map[string]string)
	for _, f := range settingFlags {
		fs.String(f.name, "", f.usage)
		fields[f.name] = f.field
	}

	fs.StringVar(&opts.scenarioPath, "scenario", "", "YAML file with one or more scenarios")
	fs.StringVar(&opts.exportDir, "export", os.Getenv("SHOTCALC_EXPORT_DIR"), "directory to write the tab-separated export file into")
	fs.StringVar(&opts.pngPath, "png", "", "PNG chart file, or a directory for one chart per scenario")
	fs.BoolVar(&opts.sparkline, "chart", false, "print the velocity chart")
	fs.BoolVar(&opts.tui, "tui", false, "start the interactive form")
	fs.StringVar(&opts.dbPath, "db", os.Getenv("SHOTCALC_DB_PATH"), "SQLite file to record the runs in")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments %v", fs.Args())
	}

	fs.Visit(func(f *flag.Flag) {
		if field, ok := fields[f.Name]; ok {
			opts.values[field] = f.Value.String()
		}
	})
	return opts, nil
}

func main() {
	logger := config.NewLogger(os.Stderr, config.LogLevel())
	if err := run(os.Args[1:], os.Stdout, logger); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func run(args []string, out io.Writer, logger *slog.Logger) error {
	opts, err := parseFlags(newFlagSet(), args)
	if err != nil {
		return err
	}

	var scenarios []scenario.Scenario
	if opts.scenarioPath != "" {
		scenarios, err = scenario.Load(opts.scenarioPath)
		if err != nil {
			return err
		}
	} else {
		scenarios = []scenario.Scenario{{}}
	}

	pngDir := false
	if opts.pngPath != "" {
		if info, err := os.Stat(opts.pngPath); err == nil && info.IsDir() {
			pngDir = true
		} else if len(scenarios) > 1 {
			return fmt.Errorf("-png must be a directory for %d scenarios", len(scenarios))
		}
	}

	var store *storage.Store
	if opts.dbPath != "" {
		store, err = storage.Open(opts.dbPath)
		if err != nil {
			return err
		}
		defer store.Close()
	}
	record := func(s input.Settings, result go_shotcalc.TrajectoryResult) {
		if store == nil {
			return
		}
		if _, err := store.SaveRun(storage.NewRun(runSource, s, result)); err != nil {
			logger.Warn("failed to save run", "component", "cli", "error", err)
		}
	}

	for i, sc := range scenarios {
		settings, err := sc.Settings()
		if err != nil {
			return fmt.Errorf("scenario %d: %w", i+1, err)
		}
		// Flags win over the scenario file.
		if err := settings.SetAll(opts.values); err != nil {
			return err
		}

		if opts.tui {
			m := form.NewModel(settings, form.Options{ExportDir: opts.exportDir, OnFire: record})
			_, err := tea.NewProgram(m).Run()
			return err
		}

		if err := calculate(out, logger, sc, settings, opts, pngDir, record); err != nil {
			return err
		}
	}
	return nil
}

func calculate(out io.Writer, logger *slog.Logger, sc scenario.Scenario, settings input.Settings, opts options, pngDir bool, record form.FireFunc) error {
	start := time.Now()
	result, err := settings.Simulate()
	if err != nil {
		return err
	}
	metrics.ObserveSimulation(runSource, time.Since(start), result.EffectiveRange())
	record(settings, result)

	title := sc.Title(settings)
	logger.Debug("trajectory calculated",
		"component", "cli",
		"title", title,
		"samples", result.Len(),
		"effective_range", result.EffectiveRange(),
	)

	fmt.Fprintln(out, title)
	fmt.Fprintln(out, report.RenderTable(result))
	if opts.sparkline {
		fmt.Fprintln(out, chart.VelocitySparkline(result, 60, 10))
	}

	name := report.FileName(settings.Diameter(), result.PelletWeight(), settings.MuzzleVelocity(), settings.Crosswind())
	if opts.exportDir != "" {
		path, err := report.Export(opts.exportDir, name, result)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, "Saved", path)
	}

	if opts.pngPath != "" {
		path := opts.pngPath
		if pngDir {
			path = filepath.Join(opts.pngPath, name+".png")
		}
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
		if err := chart.RenderPNG(f, result, title); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Fprintln(out, "Saved", path)
	}
	return nil
}
