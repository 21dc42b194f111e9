package javascript

import (
	"testing"

	"github.com/blimu-dev/jscodegen/pkg/codemodel"
	"github.com/blimu-dev/jscodegen/pkg/config"
	"github.com/blimu-dev/jscodegen/pkg/ir"
	"github.com/stretchr/testify/assert"
)

func TestIsModelled(t *testing.T) {
	enumProp := &codemodel.Property{TypeInfo: codemodel.TypeInfo{DataType: "String", BaseType: "String", IsEnum: true}}
	enumParam := &codemodel.Parameter{TypeInfo: enumProp.TypeInfo}

	tests := []struct {
		name     string
		d        codemodel.Descriptor
		expected bool
	}{
		{"primitive property", &codemodel.Property{TypeInfo: codemodel.TypeInfo{DataType: "String"}}, false},
		{"model property", &codemodel.Property{TypeInfo: codemodel.TypeInfo{DataType: "Pet", BaseType: "Pet"}}, true},
		{"enum property", enumProp, true},
		{"enum parameter", enumParam, true},
		{"model parameter", &codemodel.Parameter{TypeInfo: codemodel.TypeInfo{DataType: "Pet"}}, true},
		{"primitive return", &codemodel.Operation{ReturnType: "Pet", ReturnTypeIsPrimitive: true}, false},
		{"model return", &codemodel.Operation{ReturnType: "String", ReturnTypeIsPrimitive: false}, true},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, isModelled(test.d), test.name)
	}
}

func TestModelledType(t *testing.T) {
	b := newTestBuilder(t, config.Client{})
	assert.Equal(t, "module:model/Pet", b.modelledType("Pet"))

	b = newTestBuilder(t, config.Client{InvokerPackage: "petstore", ModelPackage: "models"})
	assert.Equal(t, "module:petstore/models/Pet", b.modelledType("Pet"))
}

func TestPropertyDocType(t *testing.T) {
	b := newTestBuilder(t, config.Client{},
		ir.IRModelDef{Name: "Category", Schema: ir.IRSchema{Kind: ir.IRKindObject}},
	)
	status := ir.IRSchema{Kind: ir.IRKindEnum, EnumBase: ir.IRKindString, EnumValues: []string{"a"}}

	tests := []struct {
		schema   ir.IRSchema
		expected string
	}{
		{scalar(ir.IRKindString, ""), "String"},
		{scalar(ir.IRKindString, "date-time"), "Date"},
		{scalar(ir.IRKindString, "binary"), "File"},
		{ref("Category"), "module:model/Category"},
		{status, "Pet.StatusEnum"},
		{arrayOf(ref("Category")), "Array.<module:model/Category>"},
		{arrayOf(mapOf(scalar(ir.IRKindInteger, ""))), "Array.<Object.<String, Number>>"},
		{mapOf(arrayOf(scalar(ir.IRKindString, ""))), "Object.<String, Array.<String>>"},
		{arrayOf(status), "Array.<Pet.StatusEnum>"},
		{ir.IRSchema{Kind: ir.IRKindNull}, "*"},
		{arrayOf(ir.IRSchema{Kind: ir.IRKindUnknown}), "Array.<*>"},
	}

	for _, test := range tests {
		p := b.buildProperty("Pet", ir.IRField{Name: "status", Type: &test.schema})
		assert.Equal(t, test.expected, b.propertyDocType("Pet", p))
	}
}

func TestParameterDocType(t *testing.T) {
	b := newTestBuilder(t, config.Client{InvokerPackage: "petstore"},
		ir.IRModelDef{Name: "Pet", Schema: ir.IRSchema{Kind: ir.IRKindObject}},
	)
	status := ir.IRSchema{Kind: ir.IRKindEnum, EnumBase: ir.IRKindString, EnumValues: []string{"a"}}

	tests := []struct {
		schema   ir.IRSchema
		expected string
	}{
		{scalar(ir.IRKindInteger, "int64"), "Number"},
		{status, "module:petstore/model/String"},
		{arrayOf(status), "Array.<module:petstore/model/String>"},
		{ref("Pet"), "module:petstore/model/Pet"},
		{arrayOf(ref("Pet")), "Array.<module:petstore/model/Pet>"},
		{mapOf(scalar(ir.IRKindBoolean, "")), "Object.<String, Boolean>"},
		{ir.IRSchema{Kind: ir.IRKindNull}, "*"},
	}

	for _, test := range tests {
		p := b.buildParameter("test", ir.IRParam{Name: "status", In: ir.InQuery, Schema: test.schema})
		assert.Equal(t, test.expected, b.parameterDocType(p))
	}
}

func TestOperationDocType(t *testing.T) {
	b := newTestBuilder(t, config.Client{},
		ir.IRModelDef{Name: "Pet", Schema: ir.IRSchema{Kind: ir.IRKindObject}},
	)

	tests := []struct {
		response *ir.IRSchema
		expected string
	}{
		{nil, ""},
		{&ir.IRSchema{Kind: ir.IRKindString}, "String"},
		{&ir.IRSchema{Kind: ir.IRKindRef, Ref: "Pet"}, "module:model/Pet"},
		{ptr(arrayOf(ref("Pet"))), "Array.<module:model/Pet>"},
		{ptr(mapOf(scalar(ir.IRKindInteger, "int32"))), "Object.<String, Number>"},
		{ptr(arrayOf(arrayOf(scalar(ir.IRKindString, "")))), "Array.<Array.<String>>"},
		{&ir.IRSchema{Kind: ir.IRKindNull}, "*"},
	}

	for _, test := range tests {
		op, err := b.buildOperation(ir.IROperation{OperationID: "getPet", Method: "GET", Path: "/pet", Response: test.response})
		if !assert.NoError(t, err) {
			continue
		}
		assert.Equal(t, test.expected, b.operationDocType(op, b.returns[op]))
	}
}

func ptr[T any](v T) *T { return &v }
