package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNaming(t *testing.T) {
	for _, s := range []string{"original", "camelCase", "PascalCase", "snake_case"} {
		n, err := ParseNaming(s)
		require.NoError(t, err)
		assert.Equal(t, Naming(s), n)
	}

	_, err := ParseNaming("kebab-case")
	require.ErrorIs(t, err, ErrInvalidNaming)
	assert.Contains(t, err.Error(), "'kebab-case'")
}

func TestApplyDefaults(t *testing.T) {
	c := Client{Name: "petstore"}
	require.NoError(t, c.ApplyDefaults())

	assert.Equal(t, TypeJavaScriptApollo, c.Type)
	assert.Equal(t, "model", c.ModelPackage)
	assert.Equal(t, "api", c.APIPackage)
	assert.Equal(t, NamingCamelCase, c.ModelPropertyNaming)
	assert.True(t, c.InheritanceEnabled())
}

func TestApplyDefaultsKeepsConfiguredValues(t *testing.T) {
	off := false
	c := Client{
		Name:                "petstore",
		ModelPackage:        "models",
		ModelPropertyNaming: NamingSnakeCase,
		UseInheritance:      &off,
	}
	require.NoError(t, c.ApplyDefaults())

	assert.Equal(t, "models", c.ModelPackage)
	assert.Equal(t, NamingSnakeCase, c.ModelPropertyNaming)
	assert.False(t, c.InheritanceEnabled())
}

func TestValidate(t *testing.T) {
	c := Client{Type: TypeJavaScriptApollo, Name: "petstore", ModelPropertyNaming: NamingOriginal}
	require.NoError(t, c.Validate())

	c.Name = ""
	require.Error(t, c.Validate())

	c = Client{Type: TypeJavaScriptApollo, Name: "petstore", ModelPropertyNaming: "UPPER"}
	require.ErrorIs(t, c.Validate(), ErrInvalidNaming)
}

func TestInheritanceEnabledByDefault(t *testing.T) {
	var c Client
	assert.True(t, c.InheritanceEnabled())
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jscodegen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
spec: openapi.yaml
clients:
  - name: petstore
    invokerPackage: petstore
    useInheritance: false
    reservedWords: [client]
    reservedWordsMappings:
      delete: remove
    includeTags: ["^pet$"]
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(cfg.Spec))
	require.Len(t, cfg.Clients, 1)

	c := cfg.Clients[0]
	assert.Equal(t, TypeJavaScriptApollo, c.Type)
	assert.Equal(t, "petstore", c.InvokerPackage)
	assert.Equal(t, "model", c.ModelPackage)
	assert.False(t, c.InheritanceEnabled())
	assert.Equal(t, []string{"client"}, c.ReservedWords)
	assert.Equal(t, map[string]string{"delete": "remove"}, c.ReservedWordsMappings)
	assert.Equal(t, []string{"^pet$"}, c.IncludeTags)
}

func TestLoadKeepsURLSpec(t *testing.T) {
	path := writeConfig(t, `
spec: https://petstore3.swagger.io/api/v3/openapi.json
clients:
  - name: petstore
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://petstore3.swagger.io/api/v3/openapi.json", cfg.Spec)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(writeConfig(t, "clients: []\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config.spec is required")

	_, err = Load(writeConfig(t, `
spec: openapi.yaml
clients:
  - name: petstore
    modelPropertyNaming: lower
`))
	require.ErrorIs(t, err, ErrInvalidNaming)
	assert.Contains(t, err.Error(), "clients[0]")

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
