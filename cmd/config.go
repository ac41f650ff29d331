/*
Copyright © 2025 CODA Project
*/
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/common-creation/calc/internal/config"
)

var (
	outputFormat string
	forceInit    bool
	initCurrent  bool
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage calc configuration",
	Long: `View, create, and validate calc configuration settings.

The calculator session reads no configuration of its own; these settings
control output styling, logging, and whether '*' multiplies.`,
}

// showCmd shows the current configuration
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

// initCmd writes the sample configuration file
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new configuration file",
	Long: `Write a commented sample configuration file, or with --current the
configuration in effect after files, environment and flags are applied.

The file is created at ~/.config/calc/config.yaml or at the location given
by --config.`,
	RunE: runConfigInit,
}

// pathCmd prints the config file location
var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	RunE:  runConfigPath,
}

// validateCmd validates the configuration
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration",
	RunE:  runConfigValidate,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(showCmd)
	configCmd.AddCommand(initCmd)
	configCmd.AddCommand(pathCmd)
	configCmd.AddCommand(validateCmd)

	showCmd.Flags().StringVarP(&outputFormat, "output", "o", "yaml", "output format (yaml, json)")
	initCmd.Flags().BoolVar(&forceInit, "force", false, "overwrite an existing configuration file")
	initCmd.Flags().BoolVar(&initCurrent, "current", false, "write the current effective configuration instead of the sample")
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	var output []byte
	var err error

	switch strings.ToLower(outputFormat) {
	case "json":
		output, err = json.MarshalIndent(cfg, "", "  ")
	case "yaml", "yml":
		output, err = yaml.Marshal(cfg)
	default:
		return fmt.Errorf("unsupported output format: %s", outputFormat)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(string(output), "\n"))
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	configPath := getConfigPath()

	if _, err := os.Stat(configPath); err == nil && !forceInit {
		return fmt.Errorf("configuration file already exists at %s", configPath)
	}

	var err error
	if initCurrent {
		err = config.NewLoader().Save(configPath, GetConfig())
	} else {
		err = config.CreateSampleConfig(configPath)
	}
	if err != nil {
		return fmt.Errorf("failed to write configuration: %w", err)
	}

	ShowSuccess(cmd.OutOrStdout(), "Configuration initialized at %s", configPath)
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	fmt.Fprintln(cmd.OutOrStdout(), config.NewLoader().GetConfigPath(cfgFile))
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	if cfgErr != nil {
		return fmt.Errorf("configuration is invalid: %w", cfgErr)
	}
	if err := GetConfig().Validate(); err != nil {
		return fmt.Errorf("configuration is invalid: %w", err)
	}

	ShowSuccess(cmd.OutOrStdout(), "Configuration is valid")
	return nil
}

func getConfigPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return config.DefaultConfigPath()
}
