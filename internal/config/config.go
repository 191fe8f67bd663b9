package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"
	"gopkg.in/yaml.v3"

	"github.com/stealthstack/survivesimgame/internal/domain/survival"
	"github.com/stealthstack/survivesimgame/internal/domain/world"
)

const (
	MinWidth  = 10
	MinHeight = 10
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Seed          int64              `yaml:"seed"`
	Width         int                `yaml:"width"`
	Height        int                `yaml:"height"`
	StartX        int                `yaml:"start_x"`
	StartY        int                `yaml:"start_y"`
	StartMinute   int                `yaml:"start_minute"`
	TickMinutes   int                `yaml:"tick_minutes"`
	TickDelay     time.Duration      `yaml:"tick_delay"`
	MaxTicks      int64              `yaml:"max_ticks"`
	StartWithTent bool               `yaml:"start_with_tent"`
	Render        bool               `yaml:"render"`
	HTTPAddr      string             `yaml:"http_addr"`
	ObserverAddr  string             `yaml:"observer_addr"`
	DBDSN         string             `yaml:"db_dsn"`
	SQLitePath    string             `yaml:"sqlite_path"`
	MigrationsDir string             `yaml:"migrations_dir"`
	ArchiveDir    string             `yaml:"archive_dir"`
	LogLevel      string             `yaml:"log_level"`
	LogFormat     string             `yaml:"log_format"`
	Weather       map[string][]Entry `yaml:"weather"`
}

// Entry is one weighted weather option as written in YAML.
type Entry struct {
	Weather string `yaml:"weather"`
	Weight  int    `yaml:"weight"`
}

func Default() Config {
	return Config{
		Seed:          time.Now().UnixNano(),
		Width:         50,
		Height:        20,
		StartX:        20,
		StartY:        10,
		StartMinute:   survival.StartMinute,
		TickMinutes:   survival.StandardTickMinutes,
		TickDelay:     100 * time.Millisecond,
		Render:        true,
		StartWithTent: true,
		LogLevel:      "info",
		LogFormat:     "text",
	}
}

// Load overlays the YAML file at path onto Default. Keys absent from the
// file keep their default.
func Load(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := validateDocument(raw); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// FromEnv overrides base with SURVIVESIM_* and LOG_* variables. Malformed
// numbers are reported rather than ignored.
func FromEnv(base Config) (Config, error) {
	cfg := base
	var err error
	if cfg.Seed, err = int64Env("SURVIVESIM_SEED", cfg.Seed); err != nil {
		return cfg, err
	}
	if cfg.Width, err = intEnv("SURVIVESIM_WIDTH", cfg.Width); err != nil {
		return cfg, err
	}
	if cfg.Height, err = intEnv("SURVIVESIM_HEIGHT", cfg.Height); err != nil {
		return cfg, err
	}
	if cfg.TickMinutes, err = intEnv("SURVIVESIM_TICK_MINUTES", cfg.TickMinutes); err != nil {
		return cfg, err
	}
	delayMS, err := intEnv("SURVIVESIM_TICK_DELAY_MS", int(cfg.TickDelay/time.Millisecond))
	if err != nil {
		return cfg, err
	}
	cfg.TickDelay = time.Duration(delayMS) * time.Millisecond
	if cfg.MaxTicks, err = int64Env("SURVIVESIM_MAX_TICKS", cfg.MaxTicks); err != nil {
		return cfg, err
	}
	if cfg.StartWithTent, err = boolEnv("SURVIVESIM_START_WITH_TENT", cfg.StartWithTent); err != nil {
		return cfg, err
	}
	if cfg.Render, err = boolEnv("SURVIVESIM_RENDER", cfg.Render); err != nil {
		return cfg, err
	}
	cfg.HTTPAddr = stringEnv("SURVIVESIM_HTTP_ADDR", cfg.HTTPAddr)
	cfg.ObserverAddr = stringEnv("SURVIVESIM_OBSERVER_ADDR", cfg.ObserverAddr)
	cfg.DBDSN = stringEnv("SURVIVESIM_DB_DSN", cfg.DBDSN)
	cfg.SQLitePath = stringEnv("SURVIVESIM_SQLITE_PATH", cfg.SQLitePath)
	cfg.MigrationsDir = stringEnv("SURVIVESIM_MIGRATIONS_DIR", cfg.MigrationsDir)
	cfg.ArchiveDir = stringEnv("SURVIVESIM_ARCHIVE_DIR", cfg.ArchiveDir)
	cfg.LogLevel = stringEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = stringEnv("LOG_FORMAT", cfg.LogFormat)
	return cfg, nil
}

// Resolve loads SURVIVESIM_CONFIG when set, applies the environment and
// validates the result.
func Resolve() (Config, error) {
	cfg := Default()
	if path := strings.TrimSpace(os.Getenv("SURVIVESIM_CONFIG")); path != "" {
		loaded, err := Load(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	cfg, err := FromEnv(cfg)
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Width < MinWidth || c.Height < MinHeight {
		return fmt.Errorf("%w: grid must be at least %dx%d, got %dx%d", ErrInvalidConfig, MinWidth, MinHeight, c.Width, c.Height)
	}
	if c.StartX < 0 || c.StartX >= c.Width || c.StartY < 0 || c.StartY >= c.Height {
		return fmt.Errorf("%w: start (%d,%d) outside %dx%d grid", ErrInvalidConfig, c.StartX, c.StartY, c.Width, c.Height)
	}
	if c.StartMinute < 0 || c.StartMinute >= world.MinutesPerDay {
		return fmt.Errorf("%w: start_minute %d out of range", ErrInvalidConfig, c.StartMinute)
	}
	if c.TickMinutes <= 0 || world.MinutesPerDay%c.TickMinutes != 0 {
		return fmt.Errorf("%w: tick_minutes %d must divide %d", ErrInvalidConfig, c.TickMinutes, world.MinutesPerDay)
	}
	if c.TickDelay < 0 {
		return fmt.Errorf("%w: tick_delay must not be negative", ErrInvalidConfig)
	}
	if c.MaxTicks < 0 {
		return fmt.Errorf("%w: max_ticks must not be negative", ErrInvalidConfig)
	}
	if c.DBDSN != "" && c.SQLitePath != "" {
		return fmt.Errorf("%w: db_dsn and sqlite_path are mutually exclusive", ErrInvalidConfig)
	}
	switch strings.ToLower(c.LogFormat) {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: log_format %q must be text or json", ErrInvalidConfig, c.LogFormat)
	}
	_, err := c.WeatherTable()
	return err
}

var seasonNames = []string{
	string(world.SeasonSpring),
	string(world.SeasonSummer),
	string(world.SeasonFall),
	string(world.SeasonWinter),
}

// WeatherTable returns the default table with any configured seasons
// replaced wholesale.
func (c Config) WeatherTable() (world.WeatherTable, error) {
	table := world.DefaultWeatherTable()
	if len(c.Weather) == 0 {
		return table, nil
	}
	weatherNames := make([]string, 0, len(world.AllWeather))
	for _, w := range world.AllWeather {
		weatherNames = append(weatherNames, string(w))
	}

	seasons := make([]string, 0, len(c.Weather))
	for name := range c.Weather {
		seasons = append(seasons, name)
	}
	sort.Strings(seasons)

	for _, name := range seasons {
		season, ok := match(name, seasonNames)
		if !ok {
			return nil, unknownName("season", name, seasonNames)
		}
		entries := c.Weather[name]
		options := make([]world.WeightedWeather, 0, len(entries))
		total := 0
		for _, e := range entries {
			w, ok := match(e.Weather, weatherNames)
			if !ok {
				return nil, unknownName("weather", e.Weather, weatherNames)
			}
			if e.Weight < 0 {
				return nil, fmt.Errorf("%w: %s weight for %s is negative", ErrInvalidConfig, w, season)
			}
			total += e.Weight
			options = append(options, world.WeightedWeather{Weather: world.Weather(w), Weight: e.Weight})
		}
		if total == 0 {
			return nil, fmt.Errorf("%w: season %s has no positive weather weight", ErrInvalidConfig, season)
		}
		table[world.Season(season)] = options
	}
	return table, nil
}

func match(name string, known []string) (string, bool) {
	for _, k := range known {
		if strings.EqualFold(strings.TrimSpace(name), k) {
			return k, true
		}
	}
	return "", false
}

func unknownName(kind, name string, known []string) error {
	if s := suggest(name, known); s != "" {
		return fmt.Errorf("%w: unknown %s %q (did you mean %q?)", ErrInvalidConfig, kind, name, s)
	}
	return fmt.Errorf("%w: unknown %s %q", ErrInvalidConfig, kind, name)
}

// suggest returns the closest known name within a third of its length.
func suggest(name string, known []string) string {
	lower := strings.ToLower(strings.TrimSpace(name))
	best, bestDist := "", -1
	for _, k := range known {
		dist := levenshtein.ComputeDistance(lower, strings.ToLower(k))
		if dist > len(k)/3+1 {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = k, dist
		}
	}
	return best
}

func stringEnv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func intEnv(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, key, v)
	}
	return n, nil
}

func int64Env(key string, fallback int64) (int64, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, key, v)
	}
	return n, nil
}

func boolEnv(key string, fallback bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback, fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalidConfig, key, v)
	}
	return b, nil
}
