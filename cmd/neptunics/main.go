// neptunics is a terminal viewer for Neptun ICS timetable exports.
//
// The calendar file is taken from the positional argument, falling back to
// the config file; with neither, usage is printed and the UI never starts.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ganajtur0/neptunics/internal/config"
	"github.com/ganajtur0/neptunics/internal/ics"
	"github.com/ganajtur0/neptunics/internal/index"
	appLog "github.com/ganajtur0/neptunics/internal/log"
	"github.com/ganajtur0/neptunics/internal/timetable"
	"github.com/ganajtur0/neptunics/internal/ui"
)

// flagConfig holds CLI flag values.
type flagConfig struct {
	configPath string
	logPath    string
	icsPath    string
}

func main() {
	os.Exit(run())
}

func run() int {
	flags := parseFlags()

	if err := appLog.Init(flags.logPath); err != nil {
		// Logging is best-effort; the viewer still works without it.
		fmt.Fprintf(os.Stderr, "warning: cannot open log file: %v\n", err)
	}
	defer appLog.Sync()
	appLog.Info("neptunics starting")

	conf, err := loadConfig(flags.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading config: %v\n", err)
		flag.Usage()
		return 1
	}

	// CLI path overrides the config file.
	icsPath := flags.icsPath
	if icsPath == "" {
		icsPath, err = conf.CalendarPath()
		if err != nil {
			fmt.Fprintln(os.Stderr, "no calendar file given")
			flag.Usage()
			return 1
		}
	}

	opts := ics.Options{UTCOffsetMinutes: conf.UTCOffsetHours * 60}
	events, stats, err := ics.ParseFile(icsPath, opts)
	if err != nil {
		appLog.Error("failed to read calendar", err, "path", icsPath)
		fmt.Fprintf(os.Stderr, "cannot read %s: %v\n", icsPath, err)
		flag.Usage()
		return 1
	}
	appLog.Info("calendar loaded", "path", icsPath, "events", stats.Parsed, "skipped", stats.Skipped)
	if stats.Skipped > 0 {
		fmt.Fprintf(os.Stderr, "warning: skipped %d malformed event block(s)\n", stats.Skipped)
	}

	start, end := conf.Window()
	window := timetable.Window{Start: start, End: end}

	view, err := ui.New(index.New(events), window)
	if err != nil {
		appLog.Error("cannot initialize terminal", err)
		fmt.Fprintf(os.Stderr, "cannot initialize terminal: %v\n", err)
		return 1
	}
	defer view.Close()

	if err := view.Run(); err != nil {
		appLog.Error("ui loop failed", err)
		return 1
	}
	appLog.Info("neptunics exiting")
	return 0
}

// loadConfig reads the explicit config path when given, otherwise resolves
// the standard locations (YAML first, legacy orarend.conf second).
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.Resolve()
}

func parseFlags() flagConfig {
	var cfg flagConfig

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [calendar.ics]\n\n", os.Args[0])
		fmt.Fprintf(flag.CommandLine.Output(),
			"Without a positional path the calendar location is read from the\nconfig file (%s).\n\nFlags:\n",
			config.DefaultPath())
		flag.PrintDefaults()
	}

	flag.StringVar(&cfg.configPath, "config", "", "Path to config file (default: XDG lookup)")
	flag.StringVar(&cfg.logPath, "log", appLog.DefaultPath(), "Path to log file")
	flag.Parse()

	cfg.icsPath = flag.Arg(0)
	return cfg
}
