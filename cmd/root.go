/*
Copyright © 2025 CODA Project

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/common-creation/calc/internal/config"
	"github.com/common-creation/calc/internal/logging"
	"github.com/common-creation/calc/internal/session"
	"github.com/common-creation/calc/internal/styles"
)

var (
	cfgFile         string
	debugMode       bool
	noColor         bool
	correctMultiply bool
	cfg             *config.Config
	cfgErr          error
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "calc",
	Short: "calc - interactive two-number calculator",
	Long: `calc asks for two numbers and prints their sum, then asks for two
more numbers and an operator (+, -, *, /) and prints the result.

All interaction happens on standard input and output.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		ShowError("%v", err)
		os.Exit(1)
	}
}

// Main records the build information, installs signal handling and runs
// the root command. Every entry point goes through it.
func Main(version, commit, date string) {
	SetVersion(version, commit, date)

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		cancel()

		// Reads from the terminal do not observe the context
		os.Exit(130)
	}()

	Execute(ctx)
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Version = GetVersionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/calc/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&correctMultiply, "correct-multiply", false, "make '*' multiply instead of divide")

	// Bind flags to viper
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))

	// Environment variable support
	viper.SetEnvPrefix("CALC")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	cfg, cfgErr = loadConfiguration()
	if cfgErr != nil {
		ShowWarning("Failed to load configuration: %v", cfgErr)
		cfg = config.NewDefaultConfig()
	}

	// Apply command line overrides. The loader has already applied the
	// environment over the file.
	if IsDebug() {
		cfg.Logging = logging.DevelopmentConfig()
	}
	if rootCmd.PersistentFlags().Changed("correct-multiply") {
		cfg.Calculator.CorrectMultiply = correctMultiply
	}
	if noColor {
		cfg.UI.Color = false
	}
}

// loadConfiguration resolves the config file once and hands the same path
// to viper and to the loader.
func loadConfiguration() (*config.Config, error) {
	loader := config.NewLoader()
	configPath := loader.FindConfigFile(cfgFile)

	if configPath != "" {
		viper.SetConfigFile(configPath)
		viper.SetConfigType("yaml")
		if err := viper.ReadInConfig(); err != nil {
			return nil, err
		}
	}
	// No config file is not an error, the loader falls back to defaults

	return loader.Load(configPath)
}

// newLogger builds the diagnostics logger; it never writes to stdout
func newLogger(w io.Writer) *log.Logger {
	logger, err := logging.New(GetConfig().Logging, w)
	if err != nil {
		ShowWarning("Failed to initialize logging: %v", err)
		return log.New(w)
	}
	return logger
}

// runRoot runs a single console calculator session
func runRoot(cmd *cobra.Command, args []string) error {
	c := GetConfig()
	out := cmd.OutOrStdout()
	logger := newLogger(cmd.ErrOrStderr())

	s := session.New(cmd.InOrStdin(), out,
		session.WithLogger(logger),
		session.WithStyles(styles.New(out, colorEnabled())),
		session.WithCalculatorOptions(c.CalculatorOptions()),
	)
	logger.Debug("session started", "version", GetVersionString(), "correct_multiply", c.Calculator.CorrectMultiply)

	return s.Run(cmd.Context())
}

// GetConfig returns the loaded configuration
func GetConfig() *config.Config {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}
	return cfg
}

// IsDebug returns whether debug mode is enabled
func IsDebug() bool {
	return debugMode || viper.GetBool("debug")
}

func colorEnabled() bool {
	return !noColor && GetConfig().UI.Color && os.Getenv("NO_COLOR") == ""
}

// ShowError displays an error message to the user
func ShowError(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	st := styles.New(os.Stderr, colorEnabled())
	fmt.Fprintln(os.Stderr, styles.Paint(st.Error, "Error: "+msg))
}

// ShowWarning displays a warning message to the user
func ShowWarning(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	st := styles.New(os.Stderr, colorEnabled())
	fmt.Fprintln(os.Stderr, styles.Paint(st.Muted, "Warning: "+msg))
}

// ShowSuccess displays a success message on w
func ShowSuccess(w io.Writer, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	st := styles.New(w, colorEnabled())
	fmt.Fprintln(w, styles.Paint(st.Result, "✓ "+msg))
}
