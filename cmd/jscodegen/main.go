package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/blimu-dev/jscodegen/internal/cli"
)

func main() {
	var verbose bool
	root := &cobra.Command{
		Use:          "jscodegen",
		Short:        "Build JavaScript client code models from OpenAPI specs",
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output")

	root.AddCommand(newModelCmd(&verbose))
	root.AddCommand(newRenderCmd(&verbose))
	root.AddCommand(newValidateCmd())

	if err := root.Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

// runFlags registers the flags shared by the model and render commands
func runFlags(cmd *cobra.Command, p *cli.RunParams) {
	cmd.Flags().StringVarP(&p.ConfigPath, "config", "c", "", "Path to jscodegen.yaml config")
	cmd.Flags().StringVar(&p.SingleClient, "client", "", "Build only the named client from config")
	// Fallback single-client flags
	cmd.Flags().StringVar(&p.Fallback.Spec, "input", "", "OpenAPI spec file (yaml/json) or URL")
	cmd.Flags().StringVar(&p.Fallback.Type, "type", "", "Client type (default javascript-apollo)")
	cmd.Flags().StringVar(&p.Fallback.Name, "client-name", "", "Client name")
	cmd.Flags().StringVar(&p.Fallback.ProjectName, "project-name", "", "npm project name")
	cmd.Flags().StringArrayVar(&p.Fallback.IncludeTags, "include-tags", nil, "Regex patterns for tags to include")
	cmd.Flags().StringArrayVar(&p.Fallback.ExcludeTags, "exclude-tags", nil, "Regex patterns for tags to exclude")
}

func newModelCmd(verbose *bool) *cobra.Command {
	var p cli.RunParams
	cmd := &cobra.Command{
		Use:   "model",
		Short: "Print the code model as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			p.Out = cmd.OutOrStdout()
			p.Logger = cli.NewLogger(cmd.ErrOrStderr(), *verbose)
			return cli.RunModel(p)
		},
	}
	runFlags(cmd, &p)
	return cmd
}

func newRenderCmd(verbose *bool) *cobra.Command {
	var p cli.RunParams
	var templatePath string
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the code model through a Go template",
		RunE: func(cmd *cobra.Command, args []string) error {
			p.Out = cmd.OutOrStdout()
			p.Logger = cli.NewLogger(cmd.ErrOrStderr(), *verbose)
			return cli.RunRender(p, templatePath)
		},
	}
	runFlags(cmd, &p)
	cmd.Flags().StringVarP(&templatePath, "template", "t", "", "Template file (default: built-in JSDoc summary)")
	return cmd
}

func newValidateCmd() *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate an OpenAPI spec",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunValidate(input)
		},
	}
	cmd.Flags().StringVar(&input, "input", "", "OpenAPI spec file (yaml/json)")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}
