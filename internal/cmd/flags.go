package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/opmodel/newcomp/internal/config"
	oerrors "github.com/opmodel/newcomp/internal/errors"
	"github.com/opmodel/newcomp/internal/output"
)

// optionError reports a bad flag or option value as a validation error.
func optionError(field string, err error) error {
	return oerrors.NewValidationError(err.Error(), "", field, "")
}

// parseOutputFlag parses an -o/--output value.
func parseOutputFlag(s string) (output.OutputFormat, error) {
	f, err := output.ParseOutputFormat(s)
	if err != nil {
		return "", optionError("output", err)
	}
	return f, nil
}

// stringFlag returns the resolver view of a string flag.
func stringFlag(cmd *cobra.Command, name, value string) config.FlagValue {
	return config.FlagValue{Value: value, Set: cmd.Flags().Changed(name)}
}

// boolFlag returns the resolver view of a bool flag.
func boolFlag(cmd *cobra.Command, name string, value bool) config.FlagValue {
	return config.FlagValue{Value: strconv.FormatBool(value), Set: cmd.Flags().Changed(name)}
}

// resolveOptions resolves configuration against flags, env and the loaded
// config file, and validates the result.
func resolveOptions(flags map[string]config.FlagValue) (*config.Options, error) {
	opts, values, err := config.ResolveOptions(loadedConfig, flags)
	if err != nil {
		return nil, err
	}
	config.LogResolvedValues(values)

	if err := config.ValidateOptions(opts); err != nil {
		return nil, oerrors.NewValidationError(err.Error(), "", "", "Check flags, NEWCOMP_* variables and the config file.")
	}
	return opts, nil
}
