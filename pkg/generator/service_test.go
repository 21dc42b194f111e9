package generator

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/blimu-dev/jscodegen/pkg/codemodel"
	"github.com/blimu-dev/jscodegen/pkg/config"
	"github.com/blimu-dev/jscodegen/pkg/ir"
	"github.com/blimu-dev/jscodegen/pkg/openapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const storeDoc = `
openapi: 3.0.3
info:
  title: Swagger Petstore
  version: 1.0.7
paths:
  /pets/{petId}:
    get:
      tags: [pet]
      operationId: getPetById
      parameters:
        - name: petId
          in: path
          required: true
          schema: {type: integer, format: int64}
      responses:
        "200":
          description: ok
          content:
            application/json:
              schema: {$ref: '#/components/schemas/Pet'}
  /store/inventory:
    get:
      tags: [store]
      operationId: getInventory
      responses:
        "200":
          description: ok
          content:
            application/json:
              schema:
                type: object
                additionalProperties: {type: integer, format: int32}
components:
  schemas:
    Pet:
      type: object
      required: [name]
      properties:
        name: {type: string}
        status:
          type: string
          enum: [available, sold]
`

func newTestService() *Service {
	return NewService(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestServiceGenerateFromDocument(t *testing.T) {
	doc, err := openapi.LoadDocumentFromData([]byte(storeDoc))
	require.NoError(t, err)

	results, err := newTestService().GenerateFromDocument(doc, []config.Client{
		{Type: config.TypeJavaScriptApollo, Name: "petstore"},
	}, "")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "petstore", results[0].Client)

	tree := results[0].Tree
	assert.Equal(t, "swagger-petstore", tree.Info.ProjectName)
	assert.Equal(t, "SwaggerPetstore", tree.Info.ModuleName)
	assert.Empty(t, tree.Warnings)

	pet := tree.Model("Pet")
	require.NotNil(t, pet)
	assert.True(t, pet.HasEnums)
	require.Len(t, pet.Ext.Required, 1)
	assert.Equal(t, "name", pet.Ext.Required[0].BaseName)

	require.Len(t, tree.APIs, 2)
	assert.Equal(t, "PetApi", tree.APIs[0].ClassName)
	assert.Equal(t, "StoreApi", tree.APIs[1].ClassName)

	get := tree.Operation("getPetById")
	require.NotNil(t, get)
	assert.Equal(t, "petId, requestInit", get.Ext.ArgList.Value())
	assert.Equal(t, "module:model/Pet", get.Ext.DocType.Value())
	assert.Equal(t, "789", get.Param("petId").Ext.ExampleValue.Value())

	inventory := tree.Operation("getInventory")
	require.NotNil(t, inventory)
	assert.Equal(t, "Object.<String, Number>", inventory.Ext.DocType.Value())
	assert.Equal(t, "{'String': 'Number'}", inventory.Ext.ReturnType.Value())
	assert.Equal(t, "requestInit", inventory.Ext.ArgList.Value())
}

func TestServiceFiltersTagsPerClient(t *testing.T) {
	doc, err := openapi.LoadDocumentFromData([]byte(storeDoc))
	require.NoError(t, err)

	clients := []config.Client{
		{Type: config.TypeJavaScriptApollo, Name: "all"},
		{Type: config.TypeJavaScriptApollo, Name: "store", IncludeTags: []string{"^store$"}},
	}
	results, err := newTestService().GenerateFromDocument(doc, clients, "store")
	require.NoError(t, err)
	require.Len(t, results, 1)

	tree := results[0].Tree
	require.Len(t, tree.APIs, 1)
	assert.Equal(t, "store", tree.APIs[0].Tag)
	assert.Nil(t, tree.Model("Pet"))
}

func TestServiceRejectsUnknownClientAndType(t *testing.T) {
	doc, err := openapi.LoadDocumentFromData([]byte(storeDoc))
	require.NoError(t, err)
	s := newTestService()

	_, err = s.GenerateFromDocument(doc, []config.Client{{Type: "cobol", Name: "legacy"}}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported client type: cobol")

	_, err = s.GenerateFromDocument(doc, []config.Client{{Type: config.TypeJavaScriptApollo, Name: "a"}}, "b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "client b not found")

	_, err = s.GenerateFromDocument(doc, []config.Client{{Type: config.TypeJavaScriptApollo, Name: "a", ExcludeTags: []string{"("}}}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "client a")
}

func TestServiceGenerateFromConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "openapi.yaml"), []byte(storeDoc), 0o644))
	cfg := `
spec: ` + filepath.Join(dir, "openapi.yaml") + `
clients:
  - name: petstore
    projectName: petstore-client
    modelPropertyNaming: snake_case
`
	cfgPath := filepath.Join(dir, "jscodegen.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	results, err := newTestService().Generate(GenerateOptions{ConfigPath: cfgPath})
	require.NoError(t, err)
	require.Len(t, results, 1)

	tree := results[0].Tree
	assert.Equal(t, "petstore-client", tree.Info.ProjectName)
	assert.Equal(t, "snake_case", tree.Settings.ModelPropertyNaming)
	assert.True(t, tree.Settings.UseInheritance)
}

func TestServiceGenerateRequiresSpecAndName(t *testing.T) {
	_, err := newTestService().Generate(GenerateOptions{Fallback: FallbackOptions{Spec: "openapi.yaml"}})
	require.Error(t, err)
}

type stubGenerator struct{ calls int }

func (g *stubGenerator) Generate(client config.Client, in ir.IR) (*codemodel.Tree, error) {
	g.calls++
	return &codemodel.Tree{Info: codemodel.Info{ProjectName: client.Name}}, nil
}

func (g *stubGenerator) GetType() string { return "stub" }

func TestRegistry(t *testing.T) {
	stub := &stubGenerator{}
	registry := NewRegistry()
	registry.Register(stub)

	gen, ok := registry.Get("stub")
	require.True(t, ok)
	assert.Same(t, stub, gen)
	_, ok = registry.Get("missing")
	assert.False(t, ok)

	assert.Equal(t, []string{config.TypeJavaScriptApollo}, newTestService().GetRegistry().GetAvailableTypes())

	doc, err := openapi.LoadDocumentFromData([]byte(storeDoc))
	require.NoError(t, err)
	results, err := NewServiceWithRegistry(registry, slog.New(slog.NewTextHandler(io.Discard, nil))).
		GenerateFromDocument(doc, []config.Client{{Type: "stub", Name: "one"}, {Type: "stub", Name: "two"}}, "")
	require.NoError(t, err)
	assert.Equal(t, 2, stub.calls)
	assert.Equal(t, "two", results[1].Tree.Info.ProjectName)
}
