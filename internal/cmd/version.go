package cmd

import (
	"github.com/spf13/cobra"

	"github.com/opmodel/newcomp/internal/output"
	"github.com/opmodel/newcomp/internal/version"
)

var versionOutputFlag string

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Show newcomp version, commit, build date and Go version.`,
		Args:  cobra.NoArgs,
		RunE:  runVersion,
	}

	cmd.Flags().StringVarP(&versionOutputFlag, "output", "o", "table", "Output format: table, yaml, json")

	return cmd
}

func runVersion(cmd *cobra.Command, args []string) error {
	format, err := parseOutputFlag(versionOutputFlag)
	if err != nil {
		return exitError(err)
	}

	info := version.Get()
	if format != output.FormatTable {
		return exitError(output.WriteStructured(output.Stdout(), format, info))
	}

	output.Println(info.String())
	return nil
}
