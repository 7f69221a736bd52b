// Package cmd provides CLI command implementations.
package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/opmodel/newcomp/internal/config"
	"github.com/opmodel/newcomp/internal/output"
)

var (
	// Global flags
	configFlag     string
	verboseFlag    bool
	timestampsFlag bool

	// Loaded configuration (set during PersistentPreRunE)
	loadedConfig *config.Loaded
	configPath   config.ResolveConfigPathResult
)

// NewRootCmd creates the root command for the newcomp CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "newcomp",
		Short: "Scaffold React components",
		Long: `newcomp generates React component directories: the component source,
a barrel index and an optional CSS module stylesheet.

Components come from five built-in shapes (functional, arrow, class,
memoized, forwardRef) in JavaScript or TypeScript, or from your own
templates with {{ComponentName}} style placeholders.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: NEWCOMP_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(NewCreateCmd())
	rootCmd.AddCommand(NewTemplatesCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals loads configuration and sets up logging.
func initializeGlobals(cmd *cobra.Command) error {
	loadedConfig = nil

	var err error
	configPath, err = config.ResolveConfigPath(configFlag)
	if err != nil {
		output.Debug("could not resolve config path", "error", err)
	}

	if configPath.ConfigPath != "" {
		loaded, err := config.NewLoader().Load(configPath.ConfigPath)
		if err != nil {
			// Commands that need configuration report it themselves.
			output.Debug("config load error", "error", err)
		}
		loadedConfig = loaded
	}

	// Timestamps: flag (if explicitly set) > env > config > default (nil = true)
	logCfg := output.LogConfig{Verbose: verboseFlag}
	ts := config.Resolve(config.KeyTimestamps, config.FlagValue{
		Value: strconv.FormatBool(timestampsFlag),
		Set:   cmd.Flags().Changed("timestamps"),
	}, loadedConfig)
	if b, err := strconv.ParseBool(ts.Value); err == nil {
		logCfg.Timestamps = output.BoolPtr(b)
	}

	output.SetupLogging(logCfg)

	output.Debug("initializing CLI",
		"config", configPath.ConfigPath,
		"config_source", configPath.Source,
		"config_found", loadedConfig != nil && loadedConfig.Found,
	)

	return nil
}
