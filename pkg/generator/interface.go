package generator

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/blimu-dev/jscodegen/pkg/codemodel"
	"github.com/blimu-dev/jscodegen/pkg/config"
	"github.com/blimu-dev/jscodegen/pkg/generator/javascript"
	"github.com/blimu-dev/jscodegen/pkg/ir"
	"github.com/blimu-dev/jscodegen/pkg/openapi"
)

// Generator defines the interface for code model generators
type Generator interface {
	// Generate builds the code model of one client from the IR
	Generate(client config.Client, in ir.IR) (*codemodel.Tree, error)
	// GetType returns the type identifier for this generator (e.g., "javascript-apollo")
	GetType() string
}

// Registry manages available generators
type Registry struct {
	generators map[string]Generator
}

// NewRegistry creates a new generator registry
func NewRegistry() *Registry {
	return &Registry{
		generators: make(map[string]Generator),
	}
}

// Register adds a generator to the registry
func (r *Registry) Register(gen Generator) {
	r.generators[gen.GetType()] = gen
}

// Get retrieves a generator by type
func (r *Registry) Get(genType string) (Generator, bool) {
	gen, exists := r.generators[genType]
	return gen, exists
}

// GetAvailableTypes returns all registered generator types, sorted
func (r *Registry) GetAvailableTypes() []string {
	types := make([]string, 0, len(r.generators))
	for t := range r.generators {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// GenerateOptions contains options for code model generation
type GenerateOptions struct {
	ConfigPath   string
	SingleClient string
	Fallback     FallbackOptions
}

// FallbackOptions contains fallback options when no config file is provided
type FallbackOptions struct {
	Spec        string
	Type        string
	Name        string
	ProjectName string
	IncludeTags []string
	ExcludeTags []string
}

// Result is the code model built for one configured client
type Result struct {
	Client string
	Tree   *codemodel.Tree
}

// Service provides high-level code model generation
type Service struct {
	registry *Registry
	logger   *slog.Logger
}

// NewService creates a new generator service with the default generators.
// A nil logger uses slog.Default.
func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	registry := NewRegistry()
	registry.Register(javascript.NewGenerator(logger))
	return NewServiceWithRegistry(registry, logger)
}

// NewServiceWithRegistry creates a new generator service with a custom registry
func NewServiceWithRegistry(registry *Registry, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		registry: registry,
		logger:   logger,
	}
}

// Generate builds code models based on the provided options
func (s *Service) Generate(opts GenerateOptions) ([]Result, error) {
	var cfg *config.Config
	var err error

	if opts.ConfigPath == "" {
		if opts.Fallback.Spec == "" || opts.Fallback.Name == "" {
			return nil, fmt.Errorf("either config path or fallback spec and name must be provided")
		}
		typ := opts.Fallback.Type
		if typ == "" {
			typ = config.TypeJavaScriptApollo
		}
		cfg = &config.Config{
			Spec: opts.Fallback.Spec,
			Clients: []config.Client{
				{
					Type:        typ,
					Name:        opts.Fallback.Name,
					ProjectName: opts.Fallback.ProjectName,
					IncludeTags: opts.Fallback.IncludeTags,
					ExcludeTags: opts.Fallback.ExcludeTags,
				},
			},
		}
	} else {
		cfg, err = config.Load(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
	}

	return s.GenerateFromConfig(cfg, opts.SingleClient)
}

// GenerateFromConfig loads the configured document and builds a code model
// for each client, or only for onlyClient when it is set
func (s *Service) GenerateFromConfig(cfg *config.Config, onlyClient string) ([]Result, error) {
	doc, err := openapi.LoadDocument(cfg.Spec)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("loaded document", "spec", cfg.Spec)
	return s.GenerateFromDocument(doc, cfg.Clients, onlyClient)
}

// GenerateFromDocument builds a code model for each client from an already
// loaded document
func (s *Service) GenerateFromDocument(doc *openapi.Document, clients []config.Client, onlyClient string) ([]Result, error) {
	fullIR := BuildIR(doc)

	var results []Result
	for _, client := range clients {
		if onlyClient != "" && client.Name != onlyClient {
			continue
		}

		tree, err := s.generateClient(fullIR, client)
		if err != nil {
			return nil, err
		}
		results = append(results, Result{Client: client.Name, Tree: tree})
	}

	if onlyClient != "" && len(results) == 0 {
		return nil, fmt.Errorf("client %s not found in config", onlyClient)
	}
	return results, nil
}

func (s *Service) generateClient(fullIR ir.IR, client config.Client) (*codemodel.Tree, error) {
	generator, exists := s.registry.Get(client.Type)
	if !exists {
		return nil, fmt.Errorf("unsupported client type: %s", client.Type)
	}

	// Filter IR based on client configuration
	filteredIR, err := filterIR(fullIR, client)
	if err != nil {
		return nil, fmt.Errorf("client %s: %w", client.Name, err)
	}

	tree, err := generator.Generate(client, filteredIR)
	if err != nil {
		return nil, err
	}
	s.logger.Info("built code model",
		"client", client.Name,
		"type", client.Type,
		"models", len(tree.Models),
		"apis", len(tree.APIs),
		"warnings", len(tree.Warnings),
	)
	return tree, nil
}

// GetRegistry returns the generator registry
func (s *Service) GetRegistry() *Registry {
	return s.registry
}
