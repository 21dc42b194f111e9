package generator

import (
	"log/slog"

	"github.com/blimu-dev/jscodegen/pkg/codemodel"
	"github.com/blimu-dev/jscodegen/pkg/config"
	"github.com/blimu-dev/jscodegen/pkg/openapi"
)

// BuildModel is a convenience function for building code models with minimal configuration
func BuildModel(opts BuildModelOptions) ([]Result, error) {
	service := NewService(opts.Logger)

	genOpts := GenerateOptions{
		ConfigPath:   opts.ConfigPath,
		SingleClient: opts.SingleClient,
		Fallback: FallbackOptions{
			Spec:        opts.Spec,
			Type:        opts.Type,
			Name:        opts.Name,
			ProjectName: opts.ProjectName,
			IncludeTags: opts.IncludeTags,
			ExcludeTags: opts.ExcludeTags,
		},
	}

	return service.Generate(genOpts)
}

// BuildModelOptions contains options for the convenience BuildModel function
type BuildModelOptions struct {
	// ConfigPath is the path to the configuration file (optional)
	ConfigPath string

	// SingleClient builds only the named client from config (optional)
	SingleClient string

	// Fallback options when no config file is provided
	Spec        string   // OpenAPI spec file or URL
	Type        string   // Generator type, defaults to "javascript-apollo"
	Name        string   // Client name
	ProjectName string   // npm project name, derived from the document title when empty
	IncludeTags []string // Regex patterns for tags to include
	ExcludeTags []string // Regex patterns for tags to exclude

	// Logger receives progress and diagnostics. Nil uses slog.Default.
	Logger *slog.Logger
}

// BuildJavaScriptModel builds the JavaScript client code model of one document
func BuildJavaScriptModel(spec, clientName string) (*codemodel.Tree, error) {
	results, err := BuildModel(BuildModelOptions{
		Spec: spec,
		Type: config.TypeJavaScriptApollo,
		Name: clientName,
	})
	if err != nil {
		return nil, err
	}
	return results[0].Tree, nil
}

// BuildFromConfig is a convenience function for building from a config file
func BuildFromConfig(configPath string, singleClient ...string) ([]Result, error) {
	service := NewService(nil)
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	onlyClient := ""
	if len(singleClient) > 0 {
		onlyClient = singleClient[0]
	}

	return service.GenerateFromConfig(cfg, onlyClient)
}

// ValidateSpec validates an OpenAPI specification
func ValidateSpec(specPath string) error {
	return openapi.ValidateDocument(specPath)
}
