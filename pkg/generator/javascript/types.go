package javascript

import (
	"github.com/blimu-dev/jscodegen/pkg/codemodel"
	"github.com/blimu-dev/jscodegen/pkg/ir"
)

// typeMapping maps openapi type names to JavaScript types
var typeMapping = map[string]string{
	"array":     "Array",
	"set":       "Array",
	"map":       "Object",
	"List":      "Array",
	"boolean":   "Boolean",
	"string":    "String",
	"int":       "Number",
	"float":     "Number",
	"number":    "Number",
	"decimal":   "Number",
	"DateTime":  "Date",
	"date":      "Date",
	"long":      "Number",
	"short":     "Number",
	"char":      "String",
	"double":    "Number",
	"object":    "Object",
	"integer":   "Number",
	"ByteArray": "Blob",
	"binary":    "File",
	"file":      "File",
	"UUID":      "String",
	"URI":       "String",
	"AnyType":   "Object",
}

// languagePrimitives are the JavaScript types that are never generated
var languagePrimitives = map[string]struct{}{
	"String": {}, "Boolean": {}, "Number": {}, "Array": {},
	"Object": {}, "Date": {}, "File": {}, "Blob": {},
}

// defaultIncludes are available without an import
var defaultIncludes = languagePrimitives

// IsPrimitive reports whether t is a native JavaScript type
func IsPrimitive(t string) bool {
	_, ok := languagePrimitives[t]
	return ok
}

// needToImport reports whether t refers to a generated type
func needToImport(t string) bool {
	_, included := defaultIncludes[t]
	return !included && !IsPrimitive(t)
}

// openAPIType returns the openapi-level name of a scalar or container
// schema, or "" when the kind has no mapping.
func openAPIType(s ir.IRSchema) string {
	kind := s.Kind
	if kind == ir.IRKindEnum {
		kind = s.EnumBase
		if kind == ir.IRKindUnknown || kind == "" {
			kind = ir.IRKindString
		}
	}
	switch kind {
	case ir.IRKindString:
		switch s.Format {
		case "date":
			return "date"
		case "date-time":
			return "DateTime"
		case "byte":
			return "ByteArray"
		case "binary":
			return "binary"
		case "uuid":
			return "UUID"
		case "uri":
			return "URI"
		}
		return "string"
	case ir.IRKindInteger:
		if s.Format == "int64" {
			return "long"
		}
		return "integer"
	case ir.IRKindNumber:
		switch s.Format {
		case "float", "double", "decimal":
			return s.Format
		}
		return "number"
	case ir.IRKindBoolean:
		return "boolean"
	case ir.IRKindArray:
		return "array"
	case ir.IRKindObject:
		if s.IsMap() {
			return "map"
		}
		return "object"
	case ir.IRKindAny, ir.IRKindOneOf, ir.IRKindAnyOf, ir.IRKindAllOf:
		return "AnyType"
	}
	return ""
}

// unalias follows references to array, map and non-enum primitive
// component schemas, which are rendered structurally instead of by name.
// visiting guards against self-referencing aliases.
func (b *builder) unalias(s ir.IRSchema, visiting map[string]bool) ir.IRSchema {
	for s.Kind == ir.IRKindRef {
		if visiting[s.Ref] {
			return s
		}
		def, ok := b.defs[s.Ref]
		if !ok {
			return s
		}
		target := def.Schema
		switch {
		case target.Kind == ir.IRKindArray, target.IsMap(), isScalar(target.Kind):
		default:
			return s
		}
		visiting[s.Ref] = true
		target.Nullable = target.Nullable || s.Nullable
		s = target
	}
	return s
}

func isScalar(k ir.IRSchemaKind) bool {
	switch k {
	case ir.IRKindString, ir.IRKindInteger, ir.IRKindNumber, ir.IRKindBoolean:
		return true
	}
	return false
}

// typeDeclaration resolves the JavaScript type of a schema: [T] for arrays,
// {String: T} for maps, the class name for models. It returns "" for kinds
// without a mapping.
func (b *builder) typeDeclaration(s ir.IRSchema) string {
	return b.declare(s, map[string]bool{})
}

func (b *builder) declare(s ir.IRSchema, visiting map[string]bool) string {
	s = b.unalias(s, visiting)
	switch {
	case s.Kind == ir.IRKindArray:
		return "[" + b.declare(itemsOf(s), visiting) + "]"
	case s.IsMap():
		return "{String: " + b.declare(*s.AdditionalProperties, visiting) + "}"
	case s.Kind == ir.IRKindRef:
		return b.className(s.Ref)
	}
	return b.schemaType(s)
}

// schemaType maps a non-container schema through the type table. Mapped
// types that need no import are returned as is; anything else is a model.
func (b *builder) schemaType(s ir.IRSchema) string {
	oat := openAPIType(s)
	if oat == "" {
		return ""
	}
	t, ok := typeMapping[oat]
	if !ok {
		t = oat
	} else if !needToImport(t) {
		return t
	}
	return b.className(t)
}

func itemsOf(s ir.IRSchema) ir.IRSchema {
	if s.Items == nil {
		return ir.IRSchema{Kind: ir.IRKindAny}
	}
	return *s.Items
}

// resolveType builds the type facts of a property or parameter named name.
// element identifies the schema position in diagnostics.
func (b *builder) resolveType(s ir.IRSchema, name, element string) codemodel.TypeInfo {
	return b.resolve(s, name, element, map[string]bool{})
}

func (b *builder) resolve(s ir.IRSchema, name, element string, visiting map[string]bool) codemodel.TypeInfo {
	s = b.unalias(s, visiting)
	var t codemodel.TypeInfo
	t.DataFormat = s.Format

	switch {
	case s.Kind == ir.IRKindArray || s.IsMap():
		var inner ir.IRSchema
		if s.Kind == ir.IRKindArray {
			inner = itemsOf(s)
			t.ContainerType, t.IsArray, t.BaseType = "array", true, "Array"
		} else {
			inner = *s.AdditionalProperties
			t.ContainerType, t.IsMap, t.BaseType = "map", true, "Object"
		}
		items := &codemodel.Property{
			TypeInfo: b.resolve(inner, name, element, visiting),
			BaseName: name,
			Name:     name,
		}
		setDefaults(items, inner)
		t.IsContainer = true
		t.Items = items
		t.ComplexType = items.ComplexType
		if t.IsArray {
			t.DataType = "[" + items.DataType + "]"
			t.DatatypeWithEnum = "[" + items.DatatypeWithEnum + "]"
		} else {
			t.DataType = "{String: " + items.DataType + "}"
			t.DatatypeWithEnum = "{String: " + items.DatatypeWithEnum + "}"
		}
		if items.IsEnum {
			// an enum innermost item makes the container an enum too
			t.IsEnum = true
			t.EnumName = items.EnumName
			t.AllowableValues = items.AllowableValues
		}
		if items.Unresolved {
			t.Unresolved = true
		}
		return t

	case s.Kind == ir.IRKindRef:
		cls := b.className(s.Ref)
		t.DataType, t.DatatypeWithEnum, t.BaseType, t.ComplexType = cls, cls, cls, cls
		if def, ok := b.defs[s.Ref]; ok && def.Schema.Kind != ir.IRKindEnum {
			t.IsModel = true
		}
		return t
	}

	oat := openAPIType(s)
	if oat == "" {
		b.unresolved(element, s.Kind)
		t.Unresolved = true
		return t
	}
	setScalarFlags(&t, oat)
	t.DataType = b.schemaType(s)
	t.DatatypeWithEnum = t.DataType
	t.BaseType = t.DataType
	if IsPrimitive(t.DataType) {
		t.IsPrimitiveType = true
	} else {
		t.ComplexType = t.DataType
	}

	if s.Kind == ir.IRKindEnum {
		t.IsEnum = true
		t.EnumName = b.namer.EnumName(name)
		t.DatatypeWithEnum = t.EnumName
		t.AllowableValues = b.enumValues(s, t.DataType)
	}
	return t
}

// setScalarFlags sets the kind flags for an openapi type name
func setScalarFlags(t *codemodel.TypeInfo, oat string) {
	switch oat {
	case "string", "char":
		t.IsString = true
	case "UUID":
		t.IsString, t.IsUUID = true, true
	case "URI":
		t.IsString, t.IsURI = true, true
	case "date":
		t.IsDate = true
	case "DateTime":
		t.IsDateTime = true
	case "ByteArray":
		t.IsByteArray = true
	case "binary":
		t.IsBinary, t.IsFile = true, true
	case "file":
		t.IsFile = true
	case "integer", "int", "short":
		t.IsInteger = true
	case "long":
		t.IsLong = true
	case "number", "decimal":
		t.IsNumber = true
	case "float":
		t.IsFloat = true
	case "double":
		t.IsDouble = true
	case "boolean":
		t.IsBoolean = true
	case "object":
		t.IsFreeFormObject = true
	case "AnyType":
		t.IsAnyType = true
	}
}

// enumValues builds the members of an enum schema
func (b *builder) enumValues(s ir.IRSchema, dataType string) []codemodel.EnumValue {
	out := make([]codemodel.EnumValue, 0, len(s.EnumValues))
	for _, v := range s.EnumValues {
		out = append(out, codemodel.EnumValue{
			Name:  b.namer.EnumVarName(v),
			Value: EnumValue(v, dataType),
			Raw:   v,
		})
	}
	return out
}
