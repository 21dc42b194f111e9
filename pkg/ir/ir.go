package ir

// IROperation represents a single API operation (endpoint + method)
type IROperation struct {
	OperationID string
	Method      string
	Path        string
	Tag         string
	Summary     string
	Description string
	Deprecated  bool

	// OriginalTags are the tags declared on the operation, ["default"] when none
	OriginalTags []string
	// Params are the operation parameters in declared order. A request body
	// is appended as a trailing body or form parameter.
	Params []IRParam
	// Response is the success response schema; nil means no content.
	Response *IRSchema
	Servers  []IRServer
}

// IRService represents a group of operations, typically grouped by tag
type IRService struct {
	Tag        string
	Operations []IROperation
}

// IR represents the complete intermediate representation of an OpenAPI spec
type IR struct {
	Info     IRInfo
	Services []IRService
	// ModelDefs holds a language-agnostic structured representation of components schemas
	ModelDefs []IRModelDef
}

// IRInfo mirrors the document info block
type IRInfo struct {
	Title       string
	Description string
	Version     string
	License     string
}

// IRServer is a server declared on an operation
type IRServer struct {
	URL         string
	Description string
}

// Parameter locations
const (
	InPath     = "path"
	InQuery    = "query"
	InHeader   = "header"
	InCookie   = "cookie"
	InBody     = "body"
	InFormData = "formData"
)

// IRParam represents a parameter
type IRParam struct {
	Name     string
	In       string
	Required bool
	Schema   IRSchema
	// Description from the OpenAPI parameter
	Description string
	// Example is the parameter-level example (example, then the first named
	// entry of examples). Schema-level examples live on Schema.
	Example any
	// Style and Explode are the declared serialization; empty and nil when absent
	Style   string
	Explode *bool
}

// IRModelDef represents a named model (typically a component or a generated inline type)
// with a structured schema that is language-agnostic.
type IRModelDef struct {
	Name        string
	Schema      IRSchema
	Annotations IRAnnotations

	// Parent is the schema name this model extends, empty when none
	Parent string
	// Interfaces are further schemas mixed in through allOf
	Interfaces []string
}

// IRAnnotations captures non-structural metadata that some generators may render.
type IRAnnotations struct {
	Title       string
	Description string
	Deprecated  bool
	ReadOnly    bool
	WriteOnly   bool
	Default     any
	Examples    []any
}

// IRSchemaKind represents the kind of schema
type IRSchemaKind string

const (
	IRKindUnknown IRSchemaKind = "unknown"
	IRKindAny     IRSchemaKind = "any"
	IRKindString  IRSchemaKind = "string"
	IRKindNumber  IRSchemaKind = "number"
	IRKindInteger IRSchemaKind = "integer"
	IRKindBoolean IRSchemaKind = "boolean"
	IRKindNull    IRSchemaKind = "null"
	IRKindArray   IRSchemaKind = "array"
	IRKindObject  IRSchemaKind = "object"
	IRKindEnum    IRSchemaKind = "enum"
	IRKindRef     IRSchemaKind = "ref"
	IRKindOneOf   IRSchemaKind = "oneOf"
	IRKindAnyOf   IRSchemaKind = "anyOf"
	IRKindAllOf   IRSchemaKind = "allOf"
)

// IRSchema models a JSON Schema (as used by OpenAPI 3.1) shape in a language-agnostic way
type IRSchema struct {
	Kind     IRSchemaKind
	Nullable bool
	Format   string

	// Object. Properties keep document order.
	Properties           []IRField
	AdditionalProperties *IRSchema // typed maps; nil when absent
	// Required names the required properties in document order
	Required []string

	// Array
	Items *IRSchema

	// Enum
	EnumValues []string     // stringified values for portability
	EnumRaw    []any        // original values preserving type where possible
	EnumBase   IRSchemaKind // underlying base kind: string, number, integer, boolean, unknown

	// Ref (component name or canonical name)
	Ref string

	// Compositions
	OneOf []*IRSchema
	AnyOf []*IRSchema
	AllOf []*IRSchema

	// Polymorphism
	Discriminator *IRDiscriminator

	Description string
	Default     any
	Example     any
}

// IRField represents a field in an object schema
type IRField struct {
	Name     string
	Type     *IRSchema
	Required bool
	// Pass-through annotations commonly used by generators
	Annotations IRAnnotations
}

// IRDiscriminator represents polymorphism discriminator information
type IRDiscriminator struct {
	PropertyName string
	Mapping      map[string]string
}

// IsMap reports whether the schema is a string-keyed map: an object with
// typed additional properties and no declared properties.
func (s IRSchema) IsMap() bool {
	return s.Kind == IRKindObject && s.AdditionalProperties != nil && len(s.Properties) == 0
}

// IsContainer reports whether the schema is an array or a map.
func (s IRSchema) IsContainer() bool {
	return s.Kind == IRKindArray || s.IsMap()
}

// ModelDef returns the model definition with the given name.
func (in IR) ModelDef(name string) (IRModelDef, bool) {
	for _, md := range in.ModelDefs {
		if md.Name == name {
			return md, true
		}
	}
	return IRModelDef{}, false
}
