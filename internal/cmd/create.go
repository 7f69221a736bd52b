package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opmodel/newcomp/internal/component"
	"github.com/opmodel/newcomp/internal/config"
	oerrors "github.com/opmodel/newcomp/internal/errors"
	"github.com/opmodel/newcomp/internal/output"
	"github.com/opmodel/newcomp/internal/prompt"
	"github.com/opmodel/newcomp/internal/scaffold"
	"github.com/opmodel/newcomp/internal/templates"
)

var (
	createLangFlag        string
	createKindFlag        string
	createStyleFlag       string
	createNoStyleFlag     bool
	createPropsFlag       bool
	createImportReactFlag bool
	createTemplateFlag    string
	createTemplateDirFlag string
	createFallbackFlag    bool
	createDirFlag         string
	createForceFlag       bool
	createDryRunFlag      bool
	createInteractiveFlag bool
)

// Swapped in tests.
var (
	newPromptDriver = prompt.NewSurveyDriver
	isInteractive   = output.IsInteractive
)

// NewCreateCmd creates the create command.
func NewCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <Name>...",
		Short: "Create one or more components",
		Long: `Create React component directories.

Each component gets its own directory containing:
  <Name>.jsx|tsx          Component source
  index.js|ts             Barrel export
  <Name>.module.<style>   CSS module (unless --no-style)

Kinds:
  functional  function declaration (default)
  arrow       arrow function
  class       React.Component subclass
  memoized    arrow function wrapped in memo()
  forwardRef  arrow function wrapped in forwardRef()

Custom templates are plain files with {{ComponentName}}, {{componentName}},
{{COMPONENT_NAME}} and {{component_name}} placeholders. They are looked up
in --template-dir, templates.dir and templates.file from the config file,
./.newcomp/templates and ~/.newcomp/templates. Templates containing eval,
new Function, child_process, fs, process.exit/kill, exec or spawn are rejected.

With no name on a terminal, or with --interactive, options are asked for.

Examples:
  # Functional JavaScript component with a CSS module
  newcomp create UserCard

  # TypeScript forwardRef component with props and SCSS
  newcomp create Input --lang ts --kind forwardRef --props --style scss

  # Several components at once, no stylesheet
  newcomp create Header Footer Sidebar --no-style --dir src/components

  # From a custom template
  newcomp create Modal --template card`,
		RunE: runCreate,
	}

	cmd.Flags().StringVarP(&createLangFlag, "lang", "l", string(component.DefaultLanguage),
		fmt.Sprintf("Language (%s)", strings.Join(component.LanguageNames(), ", ")))
	cmd.Flags().StringVarP(&createKindFlag, "kind", "k", string(component.DefaultKind),
		fmt.Sprintf("Component kind (%s)", strings.Join(component.KindNames(), ", ")))
	cmd.Flags().StringVarP(&createStyleFlag, "style", "s", config.DefaultStyle,
		"Stylesheet extension (css, scss, less, ...)")
	cmd.Flags().BoolVar(&createNoStyleFlag, "no-style", false, "Do not create a stylesheet")
	cmd.Flags().BoolVarP(&createPropsFlag, "props", "p", false, "Declare a props parameter")
	cmd.Flags().BoolVar(&createImportReactFlag, "import-react", false, "Add `import React from 'react'`")
	cmd.Flags().StringVarP(&createTemplateFlag, "template", "t", "", "Custom template name or path")
	cmd.Flags().StringVar(&createTemplateDirFlag, "template-dir", "", "Directory of custom templates")
	cmd.Flags().BoolVar(&createFallbackFlag, "fallback-builtin", false,
		"Use the built-in variant when the custom template is rejected")
	cmd.Flags().StringVarP(&createDirFlag, "dir", "d", ".", "Parent directory for the component directories")
	cmd.Flags().BoolVarP(&createForceFlag, "force", "f", false, "Overwrite existing component directories (other files in them are kept)")
	cmd.Flags().BoolVar(&createDryRunFlag, "dry-run", false, "Show what would be created without writing")
	cmd.Flags().BoolVarP(&createInteractiveFlag, "interactive", "i", false, "Ask for every option")

	cmd.MarkFlagsMutuallyExclusive("style", "no-style")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	interactive := createInteractiveFlag || (len(args) == 0 && isInteractive())
	if len(args) == 0 && !interactive {
		return exitError(oerrors.NewValidationError("component name is required", "", "name",
			"Pass a name, e.g. 'newcomp create UserCard', or use --interactive."))
	}

	opts, err := resolveCreateOptions(cmd)
	if err != nil {
		return exitError(err)
	}
	base, err := baseSpec(opts)
	if err != nil {
		return exitError(err)
	}

	var descriptors []templates.Descriptor
	if createTemplateFlag != "" || interactive {
		descriptors, err = discoverTemplates(opts)
		if err != nil {
			return exitError(err)
		}
	}

	var selections []selection
	if interactive {
		selections, err = collectInteractive(ctx, args, base, descriptors)
	} else {
		selections, err = collectArgs(args, base)
	}
	if err != nil {
		return exitError(err)
	}

	reqs, err := buildRequests(selections, descriptors)
	if err != nil {
		return exitError(err)
	}

	return generate(ctx, reqs)
}

// selection is one component and the template ref chosen for it.
type selection struct {
	spec        component.Spec
	templateRef string
}

func resolveCreateOptions(cmd *cobra.Command) (*config.Options, error) {
	flags := map[string]config.FlagValue{
		config.KeyLanguage:     stringFlag(cmd, "lang", createLangFlag),
		config.KeyKind:         stringFlag(cmd, "kind", createKindFlag),
		config.KeyStyle:        stringFlag(cmd, "style", createStyleFlag),
		config.KeyProps:        boolFlag(cmd, "props", createPropsFlag),
		config.KeyImportReact:  boolFlag(cmd, "import-react", createImportReactFlag),
		config.KeyTemplatesDir: stringFlag(cmd, "template-dir", createTemplateDirFlag),
	}
	if createNoStyleFlag {
		flags[config.KeyStyle] = config.FlagValue{Value: "", Set: true}
	}
	return resolveOptions(flags)
}

func baseSpec(opts *config.Options) (component.Spec, error) {
	lang, err := component.ParseLanguage(opts.Language)
	if err != nil {
		return component.Spec{}, optionError("lang", err)
	}
	kind, err := component.ParseKind(opts.Kind)
	if err != nil {
		return component.Spec{}, optionError("kind", err)
	}
	return component.Spec{
		Style:           component.NormalizeStyle(opts.Style),
		Language:        lang,
		HasProps:        opts.Props,
		HasHeaderImport: opts.ImportReact,
		Kind:            kind,
	}, nil
}

// discoverTemplates lists templates from the configured file and directory
// followed by the project and user search paths.
func discoverTemplates(opts *config.Options) ([]templates.Descriptor, error) {
	projectDir, err := os.Getwd()
	if err != nil {
		projectDir = ""
	}
	descriptors, err := templates.DiscoverAll(templates.DiscoverOptions{
		File:        opts.TemplatesFile,
		Dir:         opts.TemplatesDir,
		SearchPaths: templates.SearchPaths(projectDir),
	})
	if err != nil {
		return nil, err
	}
	output.Debug("discovered templates", "count", len(descriptors))
	return descriptors, nil
}

func collectArgs(names []string, base component.Spec) ([]selection, error) {
	selections := make([]selection, 0, len(names))
	for _, name := range names {
		if err := component.ValidateName(name); err != nil {
			return nil, err
		}
		spec := base
		spec.Name = strings.TrimSpace(name)
		selections = append(selections, selection{spec: spec, templateRef: createTemplateFlag})
	}
	return selections, nil
}

func collectInteractive(ctx context.Context, names []string, base component.Spec, descriptors []templates.Descriptor) ([]selection, error) {
	if len(names) == 0 {
		names = []string{""}
	}

	templateNames := make([]string, 0, len(descriptors))
	for _, d := range descriptors {
		templateNames = append(templateNames, d.Name)
	}

	driver := newPromptDriver()
	selections := make([]selection, 0, len(names))
	for _, name := range names {
		defaults := base
		defaults.Name = strings.TrimSpace(name)

		answers, err := prompt.Collect(ctx, driver, defaults, templateNames)
		if err != nil {
			return nil, err
		}

		ref := createTemplateFlag
		if len(templateNames) > 0 {
			ref = answers.Template
		}
		selections = append(selections, selection{spec: answers.Spec, templateRef: ref})
	}
	return selections, nil
}

// buildRequests resolves template refs. Every ref is resolved before
// anything is generated so a typo fails the whole run up front.
func buildRequests(selections []selection, descriptors []templates.Descriptor) ([]scaffold.Request, error) {
	targetDir, err := config.ExpandPath(createDirFlag)
	if err != nil {
		return nil, err
	}

	resolved := make(map[string]*templates.Descriptor)
	reqs := make([]scaffold.Request, 0, len(selections))
	for _, s := range selections {
		req := scaffold.Request{
			Spec:            s.spec,
			TargetDir:       targetDir,
			Force:           createForceFlag,
			DryRun:          createDryRunFlag,
			FallbackBuiltin: createFallbackFlag,
		}
		if s.templateRef != "" {
			d, ok := resolved[s.templateRef]
			if !ok {
				found, err := templates.Resolve(s.templateRef, descriptors)
				if err != nil {
					return nil, err
				}
				d = &found
				resolved[s.templateRef] = d
			}
			req.Template = d
		}
		reqs = append(reqs, req)
	}
	return reqs, nil
}

func generate(ctx context.Context, reqs []scaffold.Request) error {
	var (
		outcomes []scaffold.Outcome
		genErr   error
	)
	run := func(ctx context.Context) error {
		outcomes, genErr = scaffold.GenerateAll(ctx, reqs)
		return nil
	}

	var err error
	if len(reqs) > 1 {
		err = output.RunWithSpinner(ctx, run, output.WithTitle(fmt.Sprintf("Generating %d components...", len(reqs))))
	} else {
		err = run(ctx)
	}
	if err != nil {
		return exitError(err)
	}
	if outcomes == nil {
		return exitError(genErr)
	}

	var firstErr error
	for _, o := range outcomes {
		if o.Err == nil {
			printResult(o.Result)
			continue
		}
		if firstErr == nil {
			firstErr = o.Err
		}
		if len(outcomes) > 1 {
			output.ComponentLogger(o.Request.Spec.Name).Error("component not created")
			printError(o.Err)
		}
	}

	switch {
	case firstErr == nil:
		return nil
	case len(outcomes) == 1:
		return exitError(firstErr)
	default:
		return &oerrors.ExitError{Code: ExitCodeFromError(firstErr), Err: genErr, Printed: true}
	}
}

func printResult(res *scaffold.Result) {
	name := output.StyleNoun.Render(res.Name)

	switch {
	case res.DryRun:
		output.Println(fmt.Sprintf("Would create component %s in %s", name, res.Dir))
		printFileLines(res, output.StatusPlanned)
	case res.Overwritten:
		output.Println(output.FormatCheckmark(fmt.Sprintf("Overwrote component %s in %s", name, res.Dir)))
		printFileLines(res, output.StatusOverwritten)
		for _, name := range res.Kept {
			output.Println("  " + output.FormatFileLine(name, output.StatusKept))
		}
	default:
		output.Println(output.FormatCheckmark(fmt.Sprintf("Created component %s in %s", name, res.Dir)))
		entries := make([]output.TreeEntry, 0, len(res.Files))
		for _, f := range res.Files {
			entries = append(entries, output.TreeEntry{Name: f.Path, Description: f.Description})
		}
		output.Print(output.RenderFileTree(res.Name, entries))
	}

	if res.Source != scaffold.SourceBuiltin {
		output.Println(output.StyleDim.Render("  from template ") + output.StyleNoun.Render(res.Source))
	}
}

func printFileLines(res *scaffold.Result, status string) {
	for _, f := range res.Files {
		output.Println("  " + output.FormatFileLine(f.Path, status))
	}
}
