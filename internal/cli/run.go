package cli

import (
	"errors"
	"io"
	"log/slog"

	"github.com/blimu-dev/jscodegen/pkg/generator"
)

type FallbackParams struct {
	Spec        string
	Type        string
	Name        string
	ProjectName string
	IncludeTags []string
	ExcludeTags []string
}

type RunParams struct {
	ConfigPath   string
	SingleClient string
	Fallback     FallbackParams

	Out    io.Writer
	Logger *slog.Logger
}

// RunModel builds the code model of each selected client and writes it as a
// stream of YAML documents
func RunModel(p RunParams) error {
	results, err := buildTrees(p)
	if err != nil {
		return err
	}
	return writeYAML(p.Out, results)
}

// RunRender renders the code model of each selected client through the
// template at templatePath, or the built-in summary when it is empty
func RunRender(p RunParams, templatePath string) error {
	results, err := buildTrees(p)
	if err != nil {
		return err
	}
	return writeRendered(p.Out, results, templatePath)
}

func RunValidate(input string) error {
	return generator.ValidateSpec(input)
}

func buildTrees(p RunParams) ([]generator.Result, error) {
	if p.ConfigPath == "" && (p.Fallback.Spec == "" || p.Fallback.Name == "") {
		return nil, errors.New("either --config or both --input and --client-name must be provided")
	}
	service := generator.NewService(p.Logger)
	return service.Generate(generator.GenerateOptions{
		ConfigPath:   p.ConfigPath,
		SingleClient: p.SingleClient,
		Fallback: generator.FallbackOptions{
			Spec:        absPath(p.Fallback.Spec),
			Type:        p.Fallback.Type,
			Name:        p.Fallback.Name,
			ProjectName: p.Fallback.ProjectName,
			IncludeTags: p.Fallback.IncludeTags,
			ExcludeTags: p.Fallback.ExcludeTags,
		},
	})
}
