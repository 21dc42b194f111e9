package generator

import (
	"strings"

	"github.com/blimu-dev/jscodegen/pkg/ir"
	"github.com/blimu-dev/jscodegen/pkg/openapi"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/spf13/cast"
)

const componentsPrefix = "#/components/schemas/"

// schemaConverter turns kin-openapi schemas into IR schemas. Inline object
// schemas nested below a named owner are lifted into their own model
// definitions, named <owner>_<property>.
type schemaConverter struct {
	order openapi.PropertyOrder
	defs  []ir.IRModelDef
	seen  map[string]struct{}
}

func newSchemaConverter(order openapi.PropertyOrder) *schemaConverter {
	return &schemaConverter{order: order, seen: map[string]struct{}{}}
}

// refName returns the component name a $ref points at
func refName(ref string) string {
	if strings.HasPrefix(ref, componentsPrefix) {
		return strings.TrimPrefix(ref, componentsPrefix)
	}
	parts := strings.Split(ref, "/")
	return parts[len(parts)-1]
}

// convert converts sr found at the JSON pointer path. owner names the model
// that inline objects below sr are lifted under; an empty owner converts sr
// in place.
func (c *schemaConverter) convert(sr *openapi3.SchemaRef, path, owner string) ir.IRSchema {
	if sr == nil {
		return ir.IRSchema{Kind: ir.IRKindUnknown}
	}
	if sr.Ref != "" {
		name := refName(sr.Ref)
		if name == "" {
			return ir.IRSchema{Kind: ir.IRKindUnknown}
		}
		out := ir.IRSchema{Kind: ir.IRKindRef, Ref: name}
		if sr.Value != nil {
			out.Nullable = sr.Value.Nullable
		}
		return out
	}
	if sr.Value == nil {
		return ir.IRSchema{Kind: ir.IRKindUnknown}
	}
	s := sr.Value
	out := ir.IRSchema{
		Nullable:    s.Nullable,
		Format:      s.Format,
		Description: s.Description,
		Default:     s.Default,
		Example:     s.Example,
	}
	if s.Discriminator != nil {
		out.Discriminator = &ir.IRDiscriminator{PropertyName: s.Discriminator.PropertyName, Mapping: s.Discriminator.Mapping}
	}

	// Compositions. A single-member allOf is a wrapper around its member.
	if len(s.AllOf) == 1 && len(s.Properties) == 0 {
		inner := c.convert(s.AllOf[0], openapi.Child(path, "allOf", "0"), owner)
		inner.Nullable = inner.Nullable || s.Nullable
		if inner.Description == "" {
			inner.Description = s.Description
		}
		return inner
	}
	if len(s.OneOf) > 0 {
		out.Kind = ir.IRKindOneOf
		out.OneOf = c.convertAll(s.OneOf, openapi.Child(path, "oneOf"), owner)
		return out
	}
	if len(s.AnyOf) > 0 {
		out.Kind = ir.IRKindAnyOf
		out.AnyOf = c.convertAll(s.AnyOf, openapi.Child(path, "anyOf"), owner)
		return out
	}
	if len(s.AllOf) > 0 {
		out.Kind = ir.IRKindAllOf
		out.AllOf = c.convertAll(s.AllOf, openapi.Child(path, "allOf"), owner)
		return out
	}

	// Enum (non-string values are kept raw and stringified for portability)
	if len(s.Enum) > 0 {
		out.Kind = ir.IRKindEnum
		out.EnumRaw = s.Enum
		out.EnumBase = inferEnumBaseKind(s)
		out.EnumValues = make([]string, 0, len(s.Enum))
		for _, v := range s.Enum {
			out.EnumValues = append(out.EnumValues, cast.ToString(v))
		}
		return out
	}

	switch {
	case s.Type == nil || len(*s.Type) == 0:
		if len(s.Properties) > 0 || s.AdditionalProperties.Schema != nil {
			return c.object(s, out, path, owner)
		}
		out.Kind = ir.IRKindAny
	case s.Type.Is(openapi3.TypeString):
		out.Kind = ir.IRKindString
	case s.Type.Is(openapi3.TypeInteger):
		out.Kind = ir.IRKindInteger
	case s.Type.Is(openapi3.TypeNumber):
		out.Kind = ir.IRKindNumber
	case s.Type.Is(openapi3.TypeBoolean):
		out.Kind = ir.IRKindBoolean
	case s.Type.Is(openapi3.TypeNull):
		out.Kind = ir.IRKindNull
	case s.Type.Is(openapi3.TypeArray):
		out.Kind = ir.IRKindArray
		itemOwner := owner
		if owner != "" {
			itemOwner = owner + "_inner"
		}
		items := c.nested(s.Items, openapi.Child(path, "items"), itemOwner)
		out.Items = &items
	case s.Type.Is(openapi3.TypeObject):
		return c.object(s, out, path, owner)
	default:
		out.Kind = ir.IRKindUnknown
	}
	return out
}

func (c *schemaConverter) convertAll(refs openapi3.SchemaRefs, path, owner string) []*ir.IRSchema {
	subs := make([]*ir.IRSchema, 0, len(refs))
	for i, sub := range refs {
		sc := c.convert(sub, openapi.Child(path, cast.ToString(i)), owner)
		subs = append(subs, &sc)
	}
	return subs
}

// object fills the object part of out. Properties follow document order.
func (c *schemaConverter) object(s *openapi3.Schema, out ir.IRSchema, path, owner string) ir.IRSchema {
	out.Kind = ir.IRKindObject
	out.Properties, out.Required = c.fields(s, path, owner)
	switch {
	case s.AdditionalProperties.Schema != nil:
		valueOwner := owner
		if owner != "" {
			valueOwner = owner + "_value"
		}
		ap := c.nested(s.AdditionalProperties.Schema, openapi.Child(path, "additionalProperties"), valueOwner)
		out.AdditionalProperties = &ap
	case s.AdditionalProperties.Has != nil && *s.AdditionalProperties.Has:
		out.AdditionalProperties = &ir.IRSchema{Kind: ir.IRKindAny}
	}
	return out
}

// fields converts the declared properties of s, lifting inline objects below owner
func (c *schemaConverter) fields(s *openapi3.Schema, path, owner string) ([]ir.IRField, []string) {
	names := make([]string, 0, len(s.Properties))
	for n := range s.Properties {
		names = append(names, n)
	}
	names = c.order.Sort(path, names)

	required := make(map[string]bool, len(s.Required))
	for _, r := range s.Required {
		required[r] = true
	}
	fields := make([]ir.IRField, 0, len(names))
	for _, n := range names {
		pr := s.Properties[n]
		propOwner := ""
		if owner != "" {
			propOwner = owner + "_" + n
		}
		fType := c.nested(pr, openapi.Child(path, "properties", n), propOwner)
		fields = append(fields, ir.IRField{Name: n, Type: &fType, Required: required[n], Annotations: extractAnnotations(pr)})
	}
	// Required names in document order; names without a declared property are dropped
	var req []string
	for _, r := range s.Required {
		if _, ok := s.Properties[r]; ok {
			req = append(req, r)
		}
	}
	return fields, req
}

// nested converts a schema found below a named owner. An inline object with
// declared properties becomes a model definition named after owner and is
// referenced from its position.
func (c *schemaConverter) nested(sr *openapi3.SchemaRef, path, owner string) ir.IRSchema {
	if owner == "" || sr == nil || sr.Ref != "" || sr.Value == nil || !isInlineObject(sr.Value) {
		return c.convert(sr, path, owner)
	}
	if _, ok := c.seen[owner]; !ok {
		c.seen[owner] = struct{}{}
		def := ir.IRModelDef{Name: owner, Annotations: extractAnnotations(sr)}
		def.Schema = c.object(sr.Value, ir.IRSchema{
			Nullable:    sr.Value.Nullable,
			Description: sr.Value.Description,
		}, path, owner)
		c.defs = append(c.defs, def)
	}
	return ir.IRSchema{Kind: ir.IRKindRef, Ref: owner, Nullable: sr.Value.Nullable}
}

func isInlineObject(s *openapi3.Schema) bool {
	if len(s.Properties) == 0 || len(s.Enum) > 0 {
		return false
	}
	return s.Type == nil || len(*s.Type) == 0 || s.Type.Is(openapi3.TypeObject)
}

// modelDef converts a component schema. allOf members that are references
// become the parent (the first) and mixins (the rest); inline members and
// properties declared next to allOf become the model's own properties.
func (c *schemaConverter) modelDef(name string, sr *openapi3.SchemaRef) ir.IRModelDef {
	path := openapi.Child("#/components/schemas", name)
	def := ir.IRModelDef{Name: name, Annotations: extractAnnotations(sr)}
	if sr == nil || sr.Ref != "" || sr.Value == nil || !hasRefMember(sr.Value.AllOf) {
		def.Schema = c.convert(sr, path, name)
		return def
	}
	s := sr.Value
	def.Schema = ir.IRSchema{Kind: ir.IRKindObject, Nullable: s.Nullable, Description: s.Description}
	for i, member := range s.AllOf {
		if member == nil {
			continue
		}
		if member.Ref != "" {
			if def.Parent == "" {
				def.Parent = refName(member.Ref)
			} else {
				def.Interfaces = append(def.Interfaces, refName(member.Ref))
			}
			continue
		}
		if member.Value == nil {
			continue
		}
		fields, req := c.fields(member.Value, openapi.Child(path, "allOf", cast.ToString(i)), name)
		def.Schema.Properties = append(def.Schema.Properties, fields...)
		def.Schema.Required = append(def.Schema.Required, req...)
		if def.Schema.Description == "" {
			def.Schema.Description = member.Value.Description
		}
	}
	fields, req := c.fields(s, path, name)
	def.Schema.Properties = append(def.Schema.Properties, fields...)
	def.Schema.Required = append(def.Schema.Required, req...)
	return def
}

func hasRefMember(refs openapi3.SchemaRefs) bool {
	for _, r := range refs {
		if r != nil && r.Ref != "" {
			return true
		}
	}
	return false
}

// extractAnnotations extracts annotations from a schema reference
func extractAnnotations(sr *openapi3.SchemaRef) ir.IRAnnotations {
	var a ir.IRAnnotations
	if sr == nil || sr.Value == nil {
		return a
	}
	s := sr.Value
	a.Title = s.Title
	a.Description = s.Description
	a.Deprecated = s.Deprecated
	a.ReadOnly = s.ReadOnly
	a.WriteOnly = s.WriteOnly
	a.Default = s.Default
	if s.Example != nil {
		a.Examples = []any{s.Example}
	}
	return a
}

// inferEnumBaseKind infers the base kind for an enum
func inferEnumBaseKind(s *openapi3.Schema) ir.IRSchemaKind {
	// Prefer explicit type when present
	if s.Type != nil {
		switch {
		case s.Type.Is(openapi3.TypeString):
			return ir.IRKindString
		case s.Type.Is(openapi3.TypeInteger):
			return ir.IRKindInteger
		case s.Type.Is(openapi3.TypeNumber):
			return ir.IRKindNumber
		case s.Type.Is(openapi3.TypeBoolean):
			return ir.IRKindBoolean
		}
	}
	// Fallback: inspect first enum value
	if len(s.Enum) > 0 {
		switch s.Enum[0].(type) {
		case string:
			return ir.IRKindString
		case int, int32, int64:
			return ir.IRKindInteger
		case float32, float64:
			return ir.IRKindNumber
		case bool:
			return ir.IRKindBoolean
		}
	}
	return ir.IRKindUnknown
}
