// Package jscodegen builds the code model of JavaScript API clients from
// OpenAPI specifications.
//
// The code model is a tree of models, properties, parameters and operations
// annotated with JavaScript type names, sanitized identifiers, example
// values, JSDoc types and argument lists, ready for a template renderer.
//
// Quick Start:
//
//	import "github.com/blimu-dev/jscodegen"
//
//	tree, err := jscodegen.BuildJavaScriptModel(
//		"https://petstore3.swagger.io/api/v3/openapi.json",
//		"petstore",
//	)
//
// For more advanced usage, see the generator package.
package jscodegen

import (
	"log/slog"

	"github.com/blimu-dev/jscodegen/pkg/codemodel"
	"github.com/blimu-dev/jscodegen/pkg/generator"
)

// BuildJavaScriptModel is a convenience function for building the code
// model of a JavaScript client with default settings.
//
// Parameters:
//   - spec: Path to OpenAPI specification file or HTTP(S) URL
//   - clientName: Name of the client, used in log output
func BuildJavaScriptModel(spec, clientName string) (*codemodel.Tree, error) {
	return generator.BuildJavaScriptModel(spec, clientName)
}

// BuildModel builds code models with full configuration options.
//
// Example:
//
//	results, err := jscodegen.BuildModel(jscodegen.BuildModelOptions{
//		Spec:        "./openapi.yaml",
//		Name:        "petstore",
//		IncludeTags: []string{"pet", "store"},
//		ExcludeTags: []string{"internal"},
//	})
func BuildModel(opts BuildModelOptions) ([]generator.Result, error) {
	return generator.BuildModel(generator.BuildModelOptions{
		ConfigPath:   opts.ConfigPath,
		SingleClient: opts.SingleClient,
		Spec:         opts.Spec,
		Type:         opts.Type,
		Name:         opts.Name,
		ProjectName:  opts.ProjectName,
		IncludeTags:  opts.IncludeTags,
		ExcludeTags:  opts.ExcludeTags,
		Logger:       opts.Logger,
	})
}

// BuildFromConfig builds code models from a YAML configuration file.
// Optionally, you can specify a single client name to build only that client.
//
// Example:
//
//	// Build all clients from config
//	results, err := jscodegen.BuildFromConfig("./jscodegen.yaml")
//
//	// Build only a specific client
//	results, err := jscodegen.BuildFromConfig("./jscodegen.yaml", "petstore")
func BuildFromConfig(configPath string, singleClient ...string) ([]generator.Result, error) {
	return generator.BuildFromConfig(configPath, singleClient...)
}

// ValidateSpec validates an OpenAPI specification file.
//
// Example:
//
//	err := jscodegen.ValidateSpec("./openapi.yaml")
//	if err != nil {
//		log.Fatalf("Invalid OpenAPI spec: %v", err)
//	}
func ValidateSpec(specPath string) error {
	return generator.ValidateSpec(specPath)
}

// BuildModelOptions contains options for code model generation
type BuildModelOptions struct {
	// ConfigPath is the path to the configuration file (optional)
	ConfigPath string

	// SingleClient builds only the named client from config (optional)
	SingleClient string

	// Fallback options when no config file is provided
	Spec        string   // OpenAPI spec file or URL
	Type        string   // Generator type, defaults to "javascript-apollo"
	Name        string   // Client name
	ProjectName string   // npm project name
	IncludeTags []string // Regex patterns for tags to include
	ExcludeTags []string // Regex patterns for tags to exclude

	// Logger receives progress and diagnostics (optional)
	Logger *slog.Logger
}
