package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opmodel/newcomp/internal/config"
	"github.com/opmodel/newcomp/internal/output"
	"github.com/opmodel/newcomp/internal/templates"
)

var (
	templatesFileFlag   string
	templatesDirFlag    string
	templatesOutputFlag string
)

// NewTemplatesCmd creates the templates command group.
func NewTemplatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Inspect custom component templates",
		Long: `Inspect custom component templates.

Templates are discovered in this order, without deduplication:
  --template-file / templates.file
  --template-dir  / templates.dir
  ./.newcomp/templates
  ~/.newcomp/templates

Only .js, .jsx, .ts and .tsx files are considered. Directories are not
searched recursively.`,
	}

	cmd.PersistentFlags().StringVar(&templatesFileFlag, "template-file", "", "Single custom template file")
	cmd.PersistentFlags().StringVar(&templatesDirFlag, "template-dir", "", "Directory of custom templates")
	cmd.PersistentFlags().StringVarP(&templatesOutputFlag, "output", "o", "table",
		fmt.Sprintf("Output format (%s)", strings.Join(output.ValidFormats(), ", ")))

	cmd.AddCommand(NewTemplatesListCmd())
	cmd.AddCommand(NewTemplatesShowCmd())

	return cmd
}

// NewTemplatesListCmd creates the templates list command.
func NewTemplatesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List discovered templates",
		Long: `List discovered templates with their placeholders and validation status.

Examples:
  newcomp templates list
  newcomp templates list --template-dir ./templates -o yaml`,
		Args: cobra.NoArgs,
		RunE: runTemplatesList,
	}
}

// NewTemplatesShowCmd creates the templates show command.
func NewTemplatesShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name|path>",
		Short: "Validate a template and print its placeholders",
		Long: `Load a template by display name or path, run the safety checks and
print the placeholders it uses.

Examples:
  newcomp templates show card
  newcomp templates show ./templates/card.jsx -o json`,
		Args: cobra.ExactArgs(1),
		RunE: runTemplatesShow,
	}
}

// templateStatus is the structured form of one template.
type templateStatus struct {
	Name       string   `json:"name" yaml:"name"`
	Path       string   `json:"path" yaml:"path"`
	Status     string   `json:"status" yaml:"status"`
	Variables  []string `json:"variables" yaml:"variables"`
	Advisories []string `json:"advisories,omitempty" yaml:"advisories,omitempty"`
	Error      string   `json:"error,omitempty" yaml:"error,omitempty"`
}

func inspectTemplate(d templates.Descriptor) (templateStatus, error) {
	st := templateStatus{Name: d.Name, Path: d.Path, Variables: []string{}}

	loaded, err := templates.Load(d)
	if err != nil {
		st.Status = output.StatusRejected
		st.Error = err.Error()
		return st, err
	}

	st.Variables = loaded.Variables
	st.Status = output.StatusOK
	for _, a := range loaded.Advisories {
		st.Advisories = append(st.Advisories, a.Message)
		st.Status = output.StatusWarning
	}
	return st, nil
}

func resolveTemplatesOptions(cmd *cobra.Command) (*config.Options, error) {
	return resolveOptions(map[string]config.FlagValue{
		config.KeyTemplatesFile: stringFlag(cmd, "template-file", templatesFileFlag),
		config.KeyTemplatesDir:  stringFlag(cmd, "template-dir", templatesDirFlag),
	})
}

func runTemplatesList(cmd *cobra.Command, args []string) error {
	format, err := parseOutputFlag(templatesOutputFlag)
	if err != nil {
		return exitError(err)
	}
	opts, err := resolveTemplatesOptions(cmd)
	if err != nil {
		return exitError(err)
	}
	descriptors, err := discoverTemplates(opts)
	if err != nil {
		return exitError(err)
	}

	statuses := make([]templateStatus, 0, len(descriptors))
	for _, d := range descriptors {
		// Rejections are part of the listing, not a command failure.
		st, _ := inspectTemplate(d)
		statuses = append(statuses, st)
	}

	if format != output.FormatTable {
		return exitError(output.WriteStructured(output.Stdout(), format, statuses))
	}

	if len(statuses) == 0 {
		output.Println("No custom templates found.")
		return nil
	}

	tbl := output.NewTable("NAME", "STATUS", "VARIABLES", "PATH").StatusColumn(1)
	for _, st := range statuses {
		tbl.Row(st.Name, st.Status, strings.Join(st.Variables, ", "), st.Path)
	}
	output.Println(tbl.String())
	return nil
}

func runTemplatesShow(cmd *cobra.Command, args []string) error {
	format, err := parseOutputFlag(templatesOutputFlag)
	if err != nil {
		return exitError(err)
	}
	opts, err := resolveTemplatesOptions(cmd)
	if err != nil {
		return exitError(err)
	}
	descriptors, err := discoverTemplates(opts)
	if err != nil {
		return exitError(err)
	}

	d, err := templates.Resolve(args[0], descriptors)
	if err != nil {
		return exitError(err)
	}

	st, err := inspectTemplate(d)
	if err != nil {
		return exitError(err)
	}

	if format != output.FormatTable {
		return exitError(output.WriteStructured(output.Stdout(), format, st))
	}

	output.Println(output.FormatCheckmark(fmt.Sprintf("Template %s passed safety checks", output.StyleNoun.Render(st.Name))))
	output.Println("  Path:      " + st.Path)
	variables := strings.Join(st.Variables, ", ")
	if variables == "" {
		variables = "(none)"
	}
	output.Println("  Variables: " + variables)
	for _, a := range st.Advisories {
		output.Println("  Advisory:  " + a)
	}
	return nil
}
