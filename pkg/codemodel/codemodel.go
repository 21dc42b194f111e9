// Package codemodel holds the fully resolved descriptor tree handed to
// template renderers: models, properties, parameters and operations,
// annotated with target-language type names, identifiers, example values
// and documentation types.
package codemodel

// Descriptor is implemented by the descriptor kinds that carry derived
// documentation types: *Property, *Parameter and *Operation.
type Descriptor interface {
	descriptor()
}

func (*Property) descriptor()  {}
func (*Parameter) descriptor() {}
func (*Operation) descriptor() {}

// Tree is the output of one generation run.
type Tree struct {
	Info     Info         `yaml:"info"`
	Models   []*Model     `yaml:"models"`
	APIs     []*API       `yaml:"apis"`
	Warnings []Diagnostic `yaml:"warnings,omitempty"`
	Settings TreeSettings `yaml:"settings"`
}

// Info is the project metadata derived from the document info block and
// client configuration.
type Info struct {
	ProjectName        string `yaml:"projectName"`
	ModuleName         string `yaml:"moduleName"`
	ProjectVersion     string `yaml:"projectVersion"`
	ProjectDescription string `yaml:"projectDescription"`
	LicenseName        string `yaml:"licenseName"`
}

// TreeSettings echoes the configuration that shaped the tree.
type TreeSettings struct {
	InvokerPackage      string `yaml:"invokerPackage"`
	ModelPackage        string `yaml:"modelPackage"`
	APIPackage          string `yaml:"apiPackage"`
	ModelPropertyNaming string `yaml:"modelPropertyNaming"`
	UseInheritance      bool   `yaml:"useInheritance"`
}

// Model describes one named schema.
type Model struct {
	// Name is the schema name as it appears in the document.
	Name        string `yaml:"name"`
	ClassName   string `yaml:"classname"`
	Description string `yaml:"description,omitempty"`

	// Parent is the raw schema name of the parent model, empty when the
	// model does not inherit.
	Parent      string   `yaml:"parent,omitempty"`
	ParentClass string   `yaml:"parentClass,omitempty"`
	Interfaces  []string `yaml:"interfaces,omitempty"`

	Vars    []*Property `yaml:"vars"`
	AllVars []*Property `yaml:"allVars"`

	HasEnums bool `yaml:"hasEnums"`

	// Set for enum schemas declared at the top level.
	IsEnum          bool        `yaml:"isEnum,omitempty"`
	DataType        string      `yaml:"dataType,omitempty"`
	AllowableValues []EnumValue `yaml:"allowableValues,omitempty"`

	// Alias flags for array, map and primitive component schemas.
	IsArray     bool   `yaml:"isArray,omitempty"`
	IsMap       bool   `yaml:"isMap,omitempty"`
	IsPrimitive bool   `yaml:"isPrimitive,omitempty"`
	ItemType    string `yaml:"itemType,omitempty"`

	Ext ModelExt `yaml:"ext"`
}

// EnumValue is one member of an enum.
type EnumValue struct {
	// Name is the identifier used for the member.
	Name string `yaml:"name"`
	// Value is the literal as rendered in the target language.
	Value string `yaml:"value"`
	// Raw is the literal as declared.
	Raw string `yaml:"raw"`
}

// TypeInfo is the resolved type shared by properties and parameters.
type TypeInfo struct {
	DataType         string `yaml:"dataType"`
	DatatypeWithEnum string `yaml:"datatypeWithEnum"`
	BaseType         string `yaml:"baseType"`
	ComplexType      string `yaml:"complexType,omitempty"`
	DataFormat       string `yaml:"dataFormat,omitempty"`

	// Unresolved is set when the schema kind had no type mapping; DataType
	// is empty in that case.
	Unresolved bool `yaml:"unresolved,omitempty"`

	IsString         bool `yaml:"isString,omitempty"`
	IsInteger        bool `yaml:"isInteger,omitempty"`
	IsLong           bool `yaml:"isLong,omitempty"`
	IsNumber         bool `yaml:"isNumber,omitempty"`
	IsFloat          bool `yaml:"isFloat,omitempty"`
	IsDouble         bool `yaml:"isDouble,omitempty"`
	IsBoolean        bool `yaml:"isBoolean,omitempty"`
	IsDate           bool `yaml:"isDate,omitempty"`
	IsDateTime       bool `yaml:"isDateTime,omitempty"`
	IsFile           bool `yaml:"isFile,omitempty"`
	IsBinary         bool `yaml:"isBinary,omitempty"`
	IsByteArray      bool `yaml:"isByteArray,omitempty"`
	IsUUID           bool `yaml:"isUuid,omitempty"`
	IsURI            bool `yaml:"isUri,omitempty"`
	IsAnyType        bool `yaml:"isAnyType,omitempty"`
	IsFreeFormObject bool `yaml:"isFreeFormObject,omitempty"`
	IsPrimitiveType  bool `yaml:"isPrimitiveType,omitempty"`
	IsModel          bool `yaml:"isModel,omitempty"`

	IsContainer   bool      `yaml:"isContainer,omitempty"`
	ContainerType string    `yaml:"containerType,omitempty"`
	IsArray       bool      `yaml:"isArray,omitempty"`
	IsMap         bool      `yaml:"isMap,omitempty"`
	Items         *Property `yaml:"items,omitempty"`

	IsEnum          bool        `yaml:"isEnum,omitempty"`
	EnumName        string      `yaml:"enumName,omitempty"`
	AllowableValues []EnumValue `yaml:"allowableValues,omitempty"`
}

// Property describes one model field.
type Property struct {
	TypeInfo `yaml:",inline"`

	// BaseName is the name as declared in the schema.
	BaseName    string `yaml:"baseName"`
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Required    bool   `yaml:"required"`
	Nullable    bool   `yaml:"nullable,omitempty"`
	ReadOnly    bool   `yaml:"readOnly,omitempty"`

	// DefaultValue is the declared default rendered as a literal.
	DefaultValue string `yaml:"defaultValue,omitempty"`
	// Default and Example are the declared values in string form.
	Default string `yaml:"default,omitempty"`
	Example string `yaml:"example,omitempty"`

	Ext PropertyExt `yaml:"ext"`
}

// Parameter describes one operation argument.
type Parameter struct {
	TypeInfo `yaml:",inline"`

	BaseName    string `yaml:"baseName"`
	ParamName   string `yaml:"paramName"`
	Description string `yaml:"description,omitempty"`
	Required    bool   `yaml:"required"`

	In               string `yaml:"in"`
	IsPathParam      bool   `yaml:"isPathParam,omitempty"`
	IsQueryParam     bool   `yaml:"isQueryParam,omitempty"`
	IsHeaderParam    bool   `yaml:"isHeaderParam,omitempty"`
	IsCookieParam    bool   `yaml:"isCookieParam,omitempty"`
	IsBodyParam      bool   `yaml:"isBodyParam,omitempty"`
	IsFormParam      bool   `yaml:"isFormParam,omitempty"`
	CollectionFormat string `yaml:"collectionFormat,omitempty"`

	DefaultValue string `yaml:"defaultValue,omitempty"`
	// Example is the example picked from the document, before synthesis.
	Example string `yaml:"example,omitempty"`

	Ext ParameterExt `yaml:"ext"`
}

// Server is a target server declared on an operation.
type Server struct {
	URL         string `yaml:"url"`
	Description string `yaml:"description,omitempty"`
}

// Operation describes one API call.
type Operation struct {
	// OperationID is the identifier as declared in the document.
	OperationID string `yaml:"operationId"`
	// Nickname is the sanitized method name.
	Nickname    string `yaml:"nickname"`
	HTTPMethod  string `yaml:"httpMethod"`
	Path        string `yaml:"path"`
	Summary     string `yaml:"summary,omitempty"`
	Description string `yaml:"description,omitempty"`
	Deprecated  bool   `yaml:"deprecated,omitempty"`

	AllParams      []*Parameter `yaml:"allParams"`
	RequiredParams []*Parameter `yaml:"requiredParams,omitempty"`
	OptionalParams []*Parameter `yaml:"optionalParams,omitempty"`
	BodyParam      *Parameter   `yaml:"bodyParam,omitempty"`

	ReturnType            string `yaml:"returnType,omitempty"`
	ReturnBaseType        string `yaml:"returnBaseType,omitempty"`
	ReturnContainer       string `yaml:"returnContainer,omitempty"`
	ReturnTypeIsPrimitive bool   `yaml:"returnTypeIsPrimitive,omitempty"`
	IsArray               bool   `yaml:"isArray,omitempty"`
	IsMap                 bool   `yaml:"isMap,omitempty"`

	Servers []Server `yaml:"servers,omitempty"`

	Ext OperationExt `yaml:"ext"`
}

// API groups the operations sharing a tag.
type API struct {
	Tag        string       `yaml:"tag"`
	ClassName  string       `yaml:"classname"`
	Operations []*Operation `yaml:"operations"`
}

// Severity classifies a diagnostic.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Diagnostic records a tolerated or auto-corrected input defect.
type Diagnostic struct {
	Severity Severity `yaml:"severity"`
	// Element names the input element, e.g. "model 200Response".
	Element string `yaml:"element"`
	Message string `yaml:"message"`
}

// Model returns the model with the given schema name.
func (t *Tree) Model(name string) *Model {
	for _, m := range t.Models {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// Operation returns the operation with the given declared operation id.
func (t *Tree) Operation(operationID string) *Operation {
	for _, api := range t.APIs {
		for _, op := range api.Operations {
			if op.OperationID == operationID {
				return op
			}
		}
	}
	return nil
}

// Var returns the model's own property with the given declared name.
func (m *Model) Var(baseName string) *Property {
	for _, p := range m.Vars {
		if p.BaseName == baseName {
			return p
		}
	}
	return nil
}

// Param returns the parameter with the given declared name.
func (o *Operation) Param(baseName string) *Parameter {
	for _, p := range o.AllParams {
		if p.BaseName == baseName {
			return p
		}
	}
	return nil
}

// TypeName returns the base type when set, otherwise the data type.
func (t *TypeInfo) TypeName() string {
	if t.BaseType != "" {
		return t.BaseType
	}
	return t.DataType
}
