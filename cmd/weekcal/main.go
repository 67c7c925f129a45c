package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/username/weekcal/internal/calendar"
	"github.com/username/weekcal/internal/config"
	"github.com/username/weekcal/internal/locale"
)

var logger = zap.NewNop()

// options are the flags shared by every command; set values override config
type options struct {
	configPath string
	year       int
	paper      string
	private    bool
	locale     string
	format     string
	out        string
}

// app carries what commands need after config and logger are set up
type app struct {
	cfg   *config.Config
	names *locale.Names
	opts  *options
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, newRootCmd(), os.Stderr)
	stop()
	os.Exit(code)
}

// execute runs cmd and reports a failure to the logger and to stderr
func execute(ctx context.Context, cmd *cobra.Command, stderr io.Writer) int {
	if err := cmd.ExecuteContext(ctx); err != nil {
		logger.Error("Command failed", zap.Error(err))
		_ = logger.Sync()
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	a := &app{opts: opts}

	rootCmd := &cobra.Command{
		Use:           "weekcal",
		Short:         "ISO week calendar booklet generator",
		Long:          "Compute the week pages, Dutch holidays and private anniversaries of a year and print them as a booklet",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			if err := applyFlags(cmd, cfg, opts); err != nil {
				return err
			}

			if cfg.Log.File != "" {
				logger = initFileLogger(cfg.Log.File, cfg.Log.Level)
			} else {
				initLogger(cfg.Log.Level)
			}

			names, err := locale.New(cfg.Calendar.Locale)
			if err != nil {
				return err
			}

			a.cfg = cfg
			a.names = names

			logger.Debug("Configuration loaded",
				zap.Int("year", cfg.Calendar.Year),
				zap.String("paper", cfg.Calendar.PaperSize),
				zap.String("locale", names.Lang()),
				zap.Bool("private", cfg.Calendar.IncludePrivate))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Config file path (default: ./weekcal.yaml if present)")
	flags.IntVarP(&opts.year, "year", "y", 0, "Calendar year (default: next year)")
	flags.StringVarP(&opts.paper, "paper", "p", "", "Paper size: A4 or A5")
	flags.BoolVar(&opts.private, "private", false, "Include private anniversaries")
	flags.StringVarP(&opts.locale, "locale", "l", "", "Language of names and labels: "+strings.Join(locale.Supported(), " or "))
	flags.StringVarP(&opts.format, "format", "f", "", "Output format: text or json")
	flags.StringVarP(&opts.out, "out", "o", "", "Output file (default: stdout)")

	rootCmd.AddCommand(
		weeksCmd(a),
		holidaysCmd(a),
		bookletCmd(a),
		previewCmd(a),
		icsCmd(a),
	)

	return rootCmd
}

// applyFlags copies explicitly set flags over config values and validates the result
func applyFlags(cmd *cobra.Command, cfg *config.Config, opts *options) error {
	flags := cmd.Flags()
	if flags.Changed("year") {
		cfg.Calendar.Year = opts.year
	}
	if flags.Changed("paper") {
		cfg.Calendar.PaperSize = opts.paper
	}
	if flags.Changed("private") {
		cfg.Calendar.IncludePrivate = opts.private
	}
	if flags.Changed("locale") {
		cfg.Calendar.Locale = opts.locale
	}
	if flags.Changed("format") {
		cfg.Output.Format = opts.format
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	return nil
}

func initLogger(level string) {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.Level = zap.NewAtomicLevelAt(parseLevel(level))

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level string) *zap.Logger {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100,  // MB
		MaxBackups: 3,    // Keep max 3 old log files
		MaxAge:     28,   // days
		Compress:   true, // Compress old logs with gzip
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		parseLevel(level),
	)

	return zap.New(core)
}

func parseLevel(level string) zapcore.Level {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		return zapcore.InfoLevel
	}
	return zapLevel
}

// paper returns the configured paper size; config validation guarantees it parses
func (a *app) paper() calendar.PaperSize {
	return a.cfg.Calendar.Paper()
}
