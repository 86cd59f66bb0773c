// Package config loads the viewer's configuration. The primary format is a
// small YAML file under the XDG config home; the key=value orarend.conf of
// earlier versions is still honored as a fallback, with only its `path` key
// consumed.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ganajtur0/neptunics/internal/caltime"
	"github.com/ganajtur0/neptunics/internal/ics"
)

// ErrMissingPath is returned when neither the CLI nor any config file yields
// a calendar file location.
var ErrMissingPath = errors.New("no calendar path configured")

// Config is the application configuration.
type Config struct {
	// Path is the calendar file's filesystem location.
	Path string `yaml:"path"`

	// UTCOffsetHours is added to every parsed timestamp. The Neptun export
	// writes times two hours behind the wall clock, hence the default.
	UTCOffsetHours int `yaml:"utc_offset_hours"`

	// DayStart / DayEnd bound the visible window of the week grid, "HH:MM".
	DayStart string `yaml:"day_start"`
	DayEnd   string `yaml:"day_end"`
}

// Default returns the in-memory default configuration.
func Default() *Config {
	return &Config{
		UTCOffsetHours: ics.DefaultUTCOffsetHours,
		DayStart:       "07:00",
		DayEnd:         "20:00",
	}
}

// Normalize fills missing or unusable values with defaults so a partial file
// still behaves.
func (c *Config) Normalize() {
	def := Default()
	if _, err := parseClock(c.DayStart); err != nil {
		c.DayStart = def.DayStart
	}
	if _, err := parseClock(c.DayEnd); err != nil {
		c.DayEnd = def.DayEnd
	}
	start, _ := parseClock(c.DayStart)
	end, _ := parseClock(c.DayEnd)
	if !start.Before(end) {
		c.DayStart, c.DayEnd = def.DayStart, def.DayEnd
	}
}

// Window returns the parsed display window bounds. Normalize guarantees they
// parse and are ordered.
func (c *Config) Window() (start, end caltime.Clock) {
	start, _ = parseClock(c.DayStart)
	end, _ = parseClock(c.DayEnd)
	return start, end
}

// CalendarPath returns the configured calendar location, or ErrMissingPath.
func (c *Config) CalendarPath() (string, error) {
	if c.Path == "" {
		return "", ErrMissingPath
	}
	return c.Path, nil
}

func parseClock(s string) (caltime.Clock, error) {
	hh, mm, found := strings.Cut(s, ":")
	if !found {
		return caltime.Clock{}, fmt.Errorf("clock %q: missing ':'", s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return caltime.Clock{}, fmt.Errorf("clock %q: bad hour", s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return caltime.Clock{}, fmt.Errorf("clock %q: bad minute", s)
	}
	return caltime.Clock{Hour: h, Minute: m}, nil
}

// ConfigHome resolves the XDG config home: $XDG_CONFIG_HOME, else ~/.config.
func ConfigHome() string {
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		return home
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config")
}

// DefaultPath is the YAML config location.
func DefaultPath() string {
	return filepath.Join(ConfigHome(), "neptunics", "config.yaml")
}

// LegacyPath is the key=value config location of earlier versions.
func LegacyPath() string {
	return filepath.Join(ConfigHome(), "orarend.conf")
}

// Resolve loads configuration from the standard locations: the YAML file
// first, then the legacy file. When neither exists the defaults are returned
// with no error; whether a missing calendar path is fatal is the caller's
// call (the CLI may supply one).
func Resolve() (*Config, error) {
	cfg, err := Load(DefaultPath())
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	cfg, err = LoadLegacy(LegacyPath())
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return Default(), nil
}

// Load reads the YAML config at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.Normalize()
	return cfg, nil
}

// LoadLegacy reads a key=value config file. Only the `path` key is consumed;
// anything else, delimiterless lines included, is skipped.
func LoadLegacy(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg := Default()
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		key, value, found := strings.Cut(sc.Text(), "=")
		if !found {
			continue
		}
		if strings.TrimSpace(key) == "path" {
			cfg.Path = strings.TrimSpace(value)
			break
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return cfg, nil
}
