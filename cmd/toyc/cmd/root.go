package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/msto63/toyc/foundation/core/config"
	toyclog "github.com/msto63/toyc/foundation/core/log"
	"github.com/msto63/toyc/internal/driver"
)

var (
	cfgFile   string
	debugMode string
	showAST   bool
	verbose   bool
	colorize  bool
	jobs      int
	maxErrors int
	watchMode bool
	logLevel  string
)

// exitCode is set by the compile run and returned through Execute
var exitCode int

var rootCmd = &cobra.Command{
	Use:   "toyc [flags] <file>.tc...",
	Short: "toyc - ToyC compiler front end",
	Long: `toyc parses ToyC source files and reports syntax errors.

The front end scans each file into tokens, parses it with a predictive
recursive-descent parser, and builds an abstract syntax tree. Debug
options dump the token stream, the parse trace, or the tree.`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCompile,
}

func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "toyc: %v\n", err)
		return 1
	}
	return exitCode
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: discovered toyc.toml/.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (log level debug)")

	rootCmd.Flags().StringVarP(&debugMode, "debug", "d", "off", "debug dump: off, lexer-only, parser-only, all")
	rootCmd.Flags().BoolVarP(&showAST, "ast", "a", false, "print the abstract syntax tree")
	rootCmd.Flags().BoolVar(&colorize, "color", false, "colorize diagnostics")
	rootCmd.Flags().IntVar(&jobs, "jobs", 1, "number of files compiled concurrently")
	rootCmd.Flags().IntVar(&maxErrors, "max-errors", 0, "syntax error cap per file (0 = default)")
	rootCmd.Flags().BoolVarP(&watchMode, "watch", "w", false, "recompile when a source file changes")
}

func runCompile(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyConfigDefaults(cmd, cfg)

	logger, err := buildLogger()
	if err != nil {
		return err
	}

	debug, err := driver.ParseDebugLevel(debugMode)
	if err != nil {
		return err
	}

	d, err := driver.New(driver.Options{
		Debug:     debug,
		ShowAST:   showAST,
		Color:     colorize,
		Jobs:      jobs,
		MaxErrors: maxErrors,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if watchMode {
		return d.Watch(ctx, args)
	}

	exit, err := d.Run(ctx, args)
	if err != nil {
		return err
	}
	exitCode = exit
	return nil
}

// loadConfig loads an explicit config file or discovers one in the
// well-known locations. A missing file is not an error.
func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.Load(cfgFile)
	}
	return config.Discover(config.DefaultDiscoveryOptions())
}

// applyConfigDefaults fills flag values from the config file. A flag
// given explicitly on the command line always wins.
func applyConfigDefaults(cmd *cobra.Command, cfg *config.Config) {
	if cfg == nil {
		return
	}
	if !cmd.Flags().Changed("debug") && cfg.Has("debug") {
		debugMode = cfg.GetString("debug", debugMode)
	}
	if !cmd.Flags().Changed("ast") && cfg.Has("ast") {
		showAST = cfg.GetBool("ast", showAST)
	}
	if !cmd.Flags().Changed("color") && cfg.Has("color") {
		colorize = cfg.GetBool("color", colorize)
	}
	if !cmd.Flags().Changed("jobs") && cfg.Has("jobs") {
		jobs = cfg.GetInt("jobs", jobs)
	}
	if !cmd.Flags().Changed("max-errors") && cfg.Has("max_errors") {
		maxErrors = cfg.GetInt("max_errors", maxErrors)
	}
	if !cmd.Flags().Changed("log-level") && cfg.Has("log_level") {
		logLevel = cfg.GetString("log_level", logLevel)
	}
}

// buildLogger creates the process logger writing structured text to
// stderr, leaving stdout for the compiler's own output
func buildLogger() (*toyclog.Logger, error) {
	level := logLevel
	if verbose {
		level = "debug"
	}
	parsed, err := toyclog.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return toyclog.NewWithConfig(toyclog.Config{
		Level:  parsed,
		Format: toyclog.FormatText,
		Output: os.Stderr,
		Name:   "toyc",
	}), nil
}
