package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/username/weekcal/internal/calendar"
	"github.com/username/weekcal/internal/locale"
)

// EnvPrefix is prepended to environment overrides, e.g. WEEKCAL_CALENDAR_YEAR
const EnvPrefix = "WEEKCAL"

// Supported values
var (
	OutputFormats = []string{"text", "json"}
	LogLevels     = []string{"debug", "info", "warn", "error"}
)

// Config represents application configuration
type Config struct {
	Calendar CalendarConfig `mapstructure:"calendar"`
	Events   EventsConfig   `mapstructure:"events"`
	Output   OutputConfig   `mapstructure:"output"`
	Log      LogConfig      `mapstructure:"log"`
}

// CalendarConfig selects what to build
type CalendarConfig struct {
	Year           int    `mapstructure:"year"` // 0 means next year
	PaperSize      string `mapstructure:"paper_size"`
	IncludePrivate bool   `mapstructure:"include_private"`
	Locale         string `mapstructure:"locale"`
}

// EventsConfig lists the sources of private recurring events.
// All configured sources are merged; URL falls back to File when unreachable.
type EventsConfig struct {
	File     string `mapstructure:"file"`      // YAML
	TextFile string `mapstructure:"text_file"` // "YYYY-MM-DD Name" lines
	VCard    string `mapstructure:"vcard"`
	URL      string `mapstructure:"url"`
	CacheTTL string `mapstructure:"cache_ttl"`
}

// OutputConfig controls where and how results are written
type OutputConfig struct {
	Dir    string `mapstructure:"dir"`
	Format string `mapstructure:"format"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Load loads configuration from file, .env and WEEKCAL_* environment variables.
// A missing config file is not an error unless configPath names it explicitly.
// The result is not validated; callers apply their overrides and then call Validate.
func Load(configPath string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("weekcal")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.weekcal")
		v.AddConfigPath("/etc/weekcal")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.ExpandEnvVars()
	config.ApplyDefaults(time.Now())

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("calendar.year", 0)
	v.SetDefault("calendar.paper_size", string(calendar.PaperA5))
	v.SetDefault("calendar.include_private", false)
	v.SetDefault("calendar.locale", locale.Default)
	v.SetDefault("events.file", "")
	v.SetDefault("events.text_file", "")
	v.SetDefault("events.vcard", "")
	v.SetDefault("events.url", "")
	v.SetDefault("events.cache_ttl", "24h")
	v.SetDefault("output.dir", ".")
	v.SetDefault("output.format", "text")
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
}

// ApplyDefaults fills values that depend on the current date
func (c *Config) ApplyDefaults(now time.Time) {
	if c.Calendar.Year == 0 {
		c.Calendar.Year = now.Year() + 1
	}
}

// Validate validates the configuration and reports every problem found
func (c *Config) Validate() error {
	var errs []error

	if c.Calendar.Year < calendar.MinYear || c.Calendar.Year > calendar.MaxYear {
		errs = append(errs, fmt.Errorf("calendar.year must be between %d and %d, got %d",
			calendar.MinYear, calendar.MaxYear, c.Calendar.Year))
	}

	if _, err := calendar.ParsePaperSize(c.Calendar.PaperSize); err != nil {
		errs = append(errs, fmt.Errorf("calendar.paper_size: %w", err))
	}

	if locales := locale.Supported(); !slices.Contains(locales, c.Calendar.Locale) {
		errs = append(errs, fmt.Errorf("calendar.locale must be one of %v, got %q", locales, c.Calendar.Locale))
	}

	if _, err := time.ParseDuration(c.Events.CacheTTL); c.Events.CacheTTL != "" && err != nil {
		errs = append(errs, fmt.Errorf("events.cache_ttl: %w", err))
	}

	if c.Events.URL != "" {
		u, err := url.Parse(c.Events.URL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			errs = append(errs, fmt.Errorf("events.url must be an http(s) URL, got %q", c.Events.URL))
		}
	}

	if !slices.Contains(OutputFormats, c.Output.Format) {
		errs = append(errs, fmt.Errorf("output.format must be one of %v, got %q", OutputFormats, c.Output.Format))
	}

	if !slices.Contains(LogLevels, c.Log.Level) {
		errs = append(errs, fmt.Errorf("log.level must be one of %v, got %q", LogLevels, c.Log.Level))
	}

	return errors.Join(errs...)
}

// Paper returns the validated paper size
func (c *CalendarConfig) Paper() calendar.PaperSize {
	p, err := calendar.ParsePaperSize(c.PaperSize)
	if err != nil {
		return calendar.PaperA5
	}
	return p
}

// GetCacheTTL returns cache TTL duration
func (c *EventsConfig) GetCacheTTL() time.Duration {
	if c.CacheTTL == "" {
		return 24 * time.Hour
	}
	duration, err := time.ParseDuration(c.CacheTTL)
	if err != nil {
		return 24 * time.Hour
	}
	return duration
}

// HasSources reports whether any event source is configured
func (c *EventsConfig) HasSources() bool {
	return c.File != "" || c.TextFile != "" || c.VCard != "" || c.URL != ""
}

// ExpandEnvVars expands environment variables in paths and the events URL
func (c *Config) ExpandEnvVars() {
	c.Events.File = os.ExpandEnv(c.Events.File)
	c.Events.TextFile = os.ExpandEnv(c.Events.TextFile)
	c.Events.VCard = os.ExpandEnv(c.Events.VCard)
	c.Events.URL = os.ExpandEnv(c.Events.URL)
	c.Output.Dir = os.ExpandEnv(c.Output.Dir)
	c.Log.File = os.ExpandEnv(c.Log.File)
}
