package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// ErrInvalidNaming is returned for a model property naming convention outside
// original, camelCase, PascalCase and snake_case.
var ErrInvalidNaming = errors.New("invalid model property naming")

// Naming is the convention applied to property and parameter names
type Naming string

const (
	NamingOriginal   Naming = "original"
	NamingCamelCase  Naming = "camelCase"
	NamingPascalCase Naming = "PascalCase"
	NamingSnakeCase  Naming = "snake_case"
)

// ParseNaming validates a naming convention value
func ParseNaming(s string) (Naming, error) {
	switch n := Naming(s); n {
	case NamingOriginal, NamingCamelCase, NamingPascalCase, NamingSnakeCase:
		return n, nil
	}
	return "", fmt.Errorf("%w '%s': must be 'original', 'camelCase', 'PascalCase' or 'snake_case'", ErrInvalidNaming, s)
}

// TypeJavaScriptApollo identifies the JavaScript client code model generator
const TypeJavaScriptApollo = "javascript-apollo"

// Config represents the complete configuration for code model generation
type Config struct {
	Spec    string   `yaml:"spec"`
	Name    string   `yaml:"name"`
	Clients []Client `yaml:"clients"`
}

// Client represents configuration for a single client code model
type Client struct {
	Type string `yaml:"type"`
	Name string `yaml:"name"`

	// Project metadata. Empty values are derived from the document info block.
	ProjectName        string `yaml:"projectName"`
	ModuleName         string `yaml:"moduleName"`
	ProjectVersion     string `yaml:"projectVersion"`
	ProjectDescription string `yaml:"projectDescription"`
	LicenseName        string `yaml:"licenseName"`

	// InvokerPackage, ModelPackage and APIPackage make up module paths of
	// generated types, e.g. module:<invoker>/<model>/Pet.
	InvokerPackage string `yaml:"invokerPackage"`
	ModelPackage   string `yaml:"modelPackage"`
	APIPackage     string `yaml:"apiPackage"`

	ModelPropertyNaming Naming `yaml:"modelPropertyNaming"`
	ModelNamePrefix     string `yaml:"modelNamePrefix"`
	ModelNameSuffix     string `yaml:"modelNameSuffix"`

	// ReservedWords are added to the built-in reserved word list.
	ReservedWords []string `yaml:"reservedWords"`
	// ReservedWordsMappings replaces a reserved word with a fixed identifier
	// instead of prefixing it with an underscore.
	ReservedWordsMappings map[string]string `yaml:"reservedWordsMappings"`

	// UseInheritance toggles inheritance and mixin support. Defaults to true.
	UseInheritance *bool `yaml:"useInheritance"`

	IncludeTags []string `yaml:"includeTags"`
	ExcludeTags []string `yaml:"excludeTags"`
}

func defaultClient() Client {
	inherit := true
	return Client{
		Type:                TypeJavaScriptApollo,
		ModelPackage:        "model",
		APIPackage:          "api",
		ModelPropertyNaming: NamingCamelCase,
		UseInheritance:      &inherit,
	}
}

// ApplyDefaults fills unset fields with their default values. Pointer fields
// count as set once non-nil, so an explicit useInheritance: false survives.
func (c *Client) ApplyDefaults() error {
	if err := mergo.Merge(c, defaultClient(), mergo.WithoutDereference); err != nil {
		return fmt.Errorf("applying client defaults: %w", err)
	}
	return nil
}

// Validate checks the client configuration
func (c *Client) Validate() error {
	if c.Type == "" || c.Name == "" {
		return errors.New("client missing required fields (type, name)")
	}
	if _, err := ParseNaming(string(c.ModelPropertyNaming)); err != nil {
		return err
	}
	return nil
}

// InheritanceEnabled reports whether inheritance and mixins are supported
func (c *Client) InheritanceEnabled() bool {
	return c.UseInheritance == nil || *c.UseInheritance
}

// Load loads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if cfg.Spec == "" {
		return nil, errors.New("config.spec is required")
	}
	for i := range cfg.Clients {
		c := &cfg.Clients[i]
		if err := c.ApplyDefaults(); err != nil {
			return nil, err
		}
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("clients[%d]: %w", i, err)
		}
	}
	// Do not absolutize when spec is an HTTP(S) URL
	if u, err := url.Parse(cfg.Spec); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		// keep as-is
	} else if !filepath.IsAbs(cfg.Spec) {
		abs, _ := filepath.Abs(cfg.Spec)
		cfg.Spec = abs
	}
	return &cfg, nil
}
