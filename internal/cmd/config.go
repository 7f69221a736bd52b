package cmd

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/opmodel/newcomp/internal/config"
	oerrors "github.com/opmodel/newcomp/internal/errors"
	"github.com/opmodel/newcomp/internal/output"
)

var configInitForce bool

// NewConfigCmd creates the config command group.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  `Configuration management for the newcomp CLI.`,
	}

	cmd.AddCommand(NewConfigInitCmd())
	cmd.AddCommand(NewConfigVetCmd())

	return cmd
}

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Write the default configuration file.

The file is written to the resolved config path:
  --config flag > NEWCOMP_CONFIG env > ~/.newcomp/config.yaml

Examples:
  # Initialize configuration
  newcomp config init

  # Overwrite existing configuration
  newcomp config init --force`,
		Args: cobra.NoArgs,
		RunE: runConfigInit,
	}

	cmd.Flags().BoolVarP(&configInitForce, "force", "f", false,
		"Overwrite existing configuration")

	return cmd
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path, err := config.ExpandPath(configPath.ConfigPath)
	if err != nil || path == "" {
		return exitError(oerrors.NewNotFoundError("could not determine config path", "", "Pass --config explicitly."))
	}

	if _, err := os.Stat(path); err == nil && !configInitForce {
		return exitError(oerrors.NewExistsError(path, "Use --force to overwrite existing configuration."))
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return exitError(err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return exitError(oerrors.Wrap(oerrors.ErrPermission, "could not create "+filepath.Dir(path)))
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return exitError(oerrors.Wrap(oerrors.ErrPermission, "could not write "+path))
	}

	output.Println(output.FormatCheckmark("Configuration initialized at " + output.StyleNoun.Render(path)))
	output.Println("Validate with: newcomp config vet")
	return nil
}

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate configuration",
		Long: `Validate the newcomp configuration file.

Checks performed:
  1. Config file exists at resolved path
  2. Config file is valid YAML
  3. Values are valid (language, kind, style, template paths)
  4. NEWCOMP_* environment overrides are valid

Examples:
  # Validate default configuration
  newcomp config vet

  # Validate custom config path
  newcomp config vet --config /path/to/config.yaml`,
		Args: cobra.NoArgs,
		RunE: runConfigVet,
	}
}

func runConfigVet(cmd *cobra.Command, args []string) error {
	path := configPath.ConfigPath

	output.Debug("validating config",
		"path", path,
		"source", configPath.Source,
	)

	expanded, err := config.ExpandPath(path)
	if err != nil {
		return exitError(err)
	}
	if _, err := os.Stat(expanded); errors.Is(err, fs.ErrNotExist) {
		return exitError(oerrors.NewNotFoundError("configuration file not found", expanded,
			"Run 'newcomp config init' to create default configuration."))
	}

	loaded, err := config.NewLoader().Load(expanded)
	if err != nil {
		return exitError(oerrors.NewValidationError(err.Error(), expanded, "", "Fix the YAML syntax."))
	}

	if err := config.Validate(loaded.Config); err != nil {
		return exitError(oerrors.NewValidationError(err.Error(), expanded, "", ""))
	}

	// Env overrides are validated through full resolution.
	loadedConfig = loaded
	if _, err := resolveOptions(nil); err != nil {
		return exitError(err)
	}

	output.Println(output.FormatCheckmark("Configuration is valid: " + output.StyleNoun.Render(expanded)))
	return nil
}
