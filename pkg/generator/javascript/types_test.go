package javascript

import (
	"testing"

	"github.com/blimu-dev/jscodegen/pkg/codemodel"
	"github.com/blimu-dev/jscodegen/pkg/config"
	"github.com/blimu-dev/jscodegen/pkg/ir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scalar(kind ir.IRSchemaKind, format string) ir.IRSchema {
	return ir.IRSchema{Kind: kind, Format: format}
}

func arrayOf(item ir.IRSchema) ir.IRSchema {
	return ir.IRSchema{Kind: ir.IRKindArray, Items: &item}
}

func mapOf(value ir.IRSchema) ir.IRSchema {
	return ir.IRSchema{Kind: ir.IRKindObject, AdditionalProperties: &value}
}

func ref(name string) ir.IRSchema {
	return ir.IRSchema{Kind: ir.IRKindRef, Ref: name}
}

func TestOpenAPIType(t *testing.T) {
	tests := []struct {
		schema   ir.IRSchema
		expected string
	}{
		{scalar(ir.IRKindString, ""), "string"},
		{scalar(ir.IRKindString, "date"), "date"},
		{scalar(ir.IRKindString, "date-time"), "DateTime"},
		{scalar(ir.IRKindString, "byte"), "ByteArray"},
		{scalar(ir.IRKindString, "binary"), "binary"},
		{scalar(ir.IRKindString, "uuid"), "UUID"},
		{scalar(ir.IRKindString, "uri"), "URI"},
		{scalar(ir.IRKindString, "email"), "string"},
		{scalar(ir.IRKindInteger, "int32"), "integer"},
		{scalar(ir.IRKindInteger, "int64"), "long"},
		{scalar(ir.IRKindNumber, ""), "number"},
		{scalar(ir.IRKindNumber, "double"), "double"},
		{scalar(ir.IRKindBoolean, ""), "boolean"},
		{arrayOf(scalar(ir.IRKindString, "")), "array"},
		{mapOf(scalar(ir.IRKindString, "")), "map"},
		{ir.IRSchema{Kind: ir.IRKindObject}, "object"},
		{ir.IRSchema{Kind: ir.IRKindAny}, "AnyType"},
		{ir.IRSchema{Kind: ir.IRKindOneOf}, "AnyType"},
		{ir.IRSchema{Kind: ir.IRKindEnum, EnumBase: ir.IRKindInteger}, "integer"},
		{ir.IRSchema{Kind: ir.IRKindEnum, EnumBase: ir.IRKindUnknown}, "string"},
		{ir.IRSchema{Kind: ir.IRKindNull}, ""},
		{ir.IRSchema{Kind: ir.IRKindUnknown}, ""},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, openAPIType(test.schema), "openAPIType(%s %q)", test.schema.Kind, test.schema.Format)
	}
}

func TestTypeDeclaration(t *testing.T) {
	b := newTestBuilder(t, config.Client{},
		ir.IRModelDef{Name: "Pet", Schema: ir.IRSchema{Kind: ir.IRKindObject}},
		ir.IRModelDef{Name: "Tags", Schema: arrayOf(scalar(ir.IRKindString, ""))},
		ir.IRModelDef{Name: "Id", Schema: scalar(ir.IRKindInteger, "int64")},
		ir.IRModelDef{Name: "Status", Schema: ir.IRSchema{Kind: ir.IRKindEnum, EnumBase: ir.IRKindString, EnumValues: []string{"a"}}},
	)

	tests := []struct {
		schema   ir.IRSchema
		expected string
	}{
		{scalar(ir.IRKindString, ""), "String"},
		{scalar(ir.IRKindInteger, ""), "Number"},
		{scalar(ir.IRKindString, "date-time"), "Date"},
		{scalar(ir.IRKindString, "binary"), "File"},
		{scalar(ir.IRKindString, "byte"), "Blob"},
		{ir.IRSchema{Kind: ir.IRKindAny}, "Object"},
		{arrayOf(scalar(ir.IRKindString, "")), "[String]"},
		{arrayOf(arrayOf(ref("Pet"))), "[[Pet]]"},
		{mapOf(ref("Pet")), "{String: Pet}"},
		{arrayOf(mapOf(scalar(ir.IRKindInteger, ""))), "[{String: Number}]"},
		{ref("Pet"), "Pet"},
		{ref("Tags"), "[String]"},
		{ref("Id"), "Number"},
		{ref("Status"), "Status"},
		{ir.IRSchema{Kind: ir.IRKindNull}, ""},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, b.typeDeclaration(test.schema))
	}
}

func TestTypeDeclarationStopsAtSelfReferencingAlias(t *testing.T) {
	b := newTestBuilder(t, config.Client{},
		ir.IRModelDef{Name: "Tree", Schema: arrayOf(ref("Tree"))},
	)
	assert.Equal(t, "[Tree]", b.typeDeclaration(ref("Tree")))
}

func TestResolveScalar(t *testing.T) {
	b := newTestBuilder(t, config.Client{})

	ti := b.resolveType(scalar(ir.IRKindString, "uuid"), "id", "test")
	assert.Equal(t, "String", ti.DataType)
	assert.Equal(t, "String", ti.BaseType)
	assert.True(t, ti.IsString)
	assert.True(t, ti.IsUUID)
	assert.True(t, ti.IsPrimitiveType)
	assert.False(t, ti.IsEnum)

	ti = b.resolveType(scalar(ir.IRKindString, "binary"), "file", "test")
	assert.Equal(t, "File", ti.DataType)
	assert.True(t, ti.IsBinary)
	assert.True(t, ti.IsFile)

	ti = b.resolveType(scalar(ir.IRKindInteger, "int64"), "id", "test")
	assert.Equal(t, "Number", ti.DataType)
	assert.True(t, ti.IsLong)
	assert.False(t, ti.IsInteger)
}

func TestResolveInlineEnum(t *testing.T) {
	b := newTestBuilder(t, config.Client{})

	s := ir.IRSchema{Kind: ir.IRKindEnum, EnumBase: ir.IRKindString, EnumValues: []string{"available", "", "*"}}
	ti := b.resolveType(s, "status", "test")

	assert.True(t, ti.IsEnum)
	assert.Equal(t, "String", ti.DataType)
	assert.Equal(t, "StatusEnum", ti.EnumName)
	assert.Equal(t, "StatusEnum", ti.DatatypeWithEnum)
	assert.Equal(t, []codemodel.EnumValue{
		{Name: "available", Value: `"available"`, Raw: "available"},
		{Name: "empty", Value: `""`, Raw: ""},
		{Name: "STAR", Value: `"*"`, Raw: "*"},
	}, ti.AllowableValues)

	ti = b.resolveType(ir.IRSchema{Kind: ir.IRKindEnum, EnumBase: ir.IRKindInteger, EnumValues: []string{"1", "2"}}, "level", "test")
	assert.Equal(t, "Number", ti.DataType)
	assert.Equal(t, "1", ti.AllowableValues[0].Value)
}

func TestResolveContainers(t *testing.T) {
	b := newTestBuilder(t, config.Client{},
		ir.IRModelDef{Name: "Pet", Schema: ir.IRSchema{Kind: ir.IRKindObject}},
	)

	ti := b.resolveType(arrayOf(mapOf(scalar(ir.IRKindInteger, ""))), "counts", "test")
	assert.True(t, ti.IsContainer)
	assert.True(t, ti.IsArray)
	assert.Equal(t, "array", ti.ContainerType)
	assert.Equal(t, "Array", ti.BaseType)
	assert.Equal(t, "[{String: Number}]", ti.DataType)
	require.NotNil(t, ti.Items)
	assert.True(t, ti.Items.IsMap)
	assert.Equal(t, "{String: Number}", ti.Items.DataType)
	require.NotNil(t, ti.Items.Items)
	assert.Equal(t, "Number", ti.Items.Items.DataType)
	assert.Equal(t, "counts", ti.Items.Items.Name)

	ti = b.resolveType(arrayOf(ref("Pet")), "pets", "test")
	assert.Equal(t, "[Pet]", ti.DataType)
	assert.Equal(t, "Pet", ti.ComplexType)
	assert.True(t, ti.Items.IsModel)
}

func TestResolveContainerOfEnum(t *testing.T) {
	b := newTestBuilder(t, config.Client{})

	s := arrayOf(ir.IRSchema{Kind: ir.IRKindEnum, EnumBase: ir.IRKindString, EnumValues: []string{"a", "b"}})
	ti := b.resolveType(s, "tags", "test")

	assert.True(t, ti.IsEnum)
	assert.Equal(t, "TagsEnum", ti.EnumName)
	assert.Equal(t, "[String]", ti.DataType)
	assert.Equal(t, "[TagsEnum]", ti.DatatypeWithEnum)
	assert.Len(t, ti.AllowableValues, 2)
}

func TestResolveUnaliasesPrimitiveAndContainerRefs(t *testing.T) {
	b := newTestBuilder(t, config.Client{},
		ir.IRModelDef{Name: "Tags", Schema: arrayOf(scalar(ir.IRKindString, ""))},
		ir.IRModelDef{Name: "Id", Schema: scalar(ir.IRKindString, "uuid")},
		ir.IRModelDef{Name: "Status", Schema: ir.IRSchema{Kind: ir.IRKindEnum, EnumBase: ir.IRKindString, EnumValues: []string{"a"}}},
	)

	ti := b.resolveType(ref("Tags"), "tags", "test")
	assert.Equal(t, "[String]", ti.DataType)
	assert.True(t, ti.IsArray)

	ti = b.resolveType(ref("Id"), "id", "test")
	assert.Equal(t, "String", ti.DataType)
	assert.True(t, ti.IsUUID)

	ti = b.resolveType(ref("Status"), "status", "test")
	assert.Equal(t, "Status", ti.DataType)
	assert.False(t, ti.IsEnum)
	assert.False(t, ti.IsModel)
}

func TestResolveUnmappedKindIsTolerated(t *testing.T) {
	b := newTestBuilder(t, config.Client{})

	ti := b.resolveType(ir.IRSchema{Kind: ir.IRKindNull}, "nothing", "model Pet property nothing")
	assert.True(t, ti.Unresolved)
	assert.Empty(t, ti.DataType)

	require.Len(t, b.tree.Warnings, 1)
	assert.Equal(t, codemodel.SeverityError, b.tree.Warnings[0].Severity)
	assert.Equal(t, "model Pet property nothing", b.tree.Warnings[0].Element)

	ti = b.resolveType(arrayOf(ir.IRSchema{Kind: ir.IRKindUnknown}), "things", "test")
	assert.True(t, ti.Unresolved)
	assert.True(t, ti.Items.Unresolved)
}

func TestIsPrimitive(t *testing.T) {
	for _, p := range []string{"String", "Boolean", "Number", "Array", "Object", "Date", "File", "Blob"} {
		assert.True(t, IsPrimitive(p), p)
	}
	for _, p := range []string{"Pet", "string", "", "Integer"} {
		assert.False(t, IsPrimitive(p), p)
	}
}
