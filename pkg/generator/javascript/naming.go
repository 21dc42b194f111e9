package javascript

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/blimu-dev/jscodegen/pkg/config"
	"github.com/blimu-dev/jscodegen/pkg/utils"
)

// ErrEmptyOperationID is returned for an operation without an operationId
var ErrEmptyOperationID = errors.New("empty method/operation name (operationId) not allowed")

// Role selects the normalization rules applied to a raw name
type Role int

const (
	RoleModel Role = iota
	RoleVariable
	RoleParameter
	RoleOperation
	RoleEnumValue
)

func (r Role) String() string {
	switch r {
	case RoleModel:
		return "model"
	case RoleVariable:
		return "variable"
	case RoleParameter:
		return "parameter"
	case RoleOperation:
		return "operation"
	case RoleEnumValue:
		return "enumValue"
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

// DefaultReservedWords are the identifiers generated code may not declare
var DefaultReservedWords = []string{
	"abstract", "arguments", "boolean", "break", "byte",
	"case", "catch", "char", "class", "const",
	"continue", "debugger", "default", "delete", "do",
	"double", "else", "enum", "eval", "export",
	"extends", "false", "final", "finally", "float",
	"for", "function", "goto", "if", "implements",
	"import", "in", "instanceof", "int", "interface",
	"let", "long", "native", "new", "null",
	"package", "private", "protected", "public", "return",
	"short", "static", "super", "switch", "synchronized",
	"this", "throw", "throws", "transient", "true",
	"try", "typeof", "var", "void", "volatile",
	"while", "with", "yield",
	"Array", "Date", "hasOwnProperty",
	"Infinity", "isFinite", "isNaN", "isPrototypeOf",
	"Math", "NaN", "Number", "Object",
	"prototype", "String", "toString", "undefined", "valueOf",
}

// symbolNames names enum values made of punctuation only
var symbolNames = map[string]string{
	"$": "Dollar", "^": "Caret", "|": "Pipe", "=": "Equal", "*": "Star",
	"-": "Minus", "&": "Ampersand", "%": "Percent", "#": "Hash", "@": "At",
	"!": "Exclamation", "+": "Plus", ":": "Colon", ";": "Semicolon",
	">": "Greater_Than", "<": "Less_Than", ".": "Period", "_": "Underscore",
	"?": "Question_Mark", ",": "Comma", "'": "Quote", "\"": "Double_Quote",
	"/": "Slash", "\\": "Back_Slash", "(": "Left_Parenthesis", ")": "Right_Parenthesis",
	"{": "Left_Curly_Bracket", "}": "Right_Curly_Bracket",
	"[": "Left_Square_Bracket", "]": "Right_Square_Bracket",
	"~": "Tilde", "`": "Backtick",
	"<=": "Less_Than_Or_Equal_To", ">=": "Greater_Than_Or_Equal_To", "!=": "Not_Equal",
}

const (
	unnamedVar      = "_u"
	emptyEnumVar    = "empty"
	modelPrefix     = "Model"
	operationPrefix = "call_"
)

var (
	constantName  = regexp.MustCompile(`^[A-Z_]*$`)
	leadingDigit  = regexp.MustCompile(`^\d`)
	primitiveType = regexp.MustCompile(`\b(Boolean|Integer|Number|String|Date|Blob)\b`)
)

// Namer turns raw schema names into identifiers. It is immutable once built
// and safe for concurrent use.
type Namer struct {
	naming   config.Naming
	reserved map[string]struct{}
	mappings map[string]string
	prefix   string
	suffix   string
}

// NewNamer builds a Namer from the client configuration. An unknown naming
// convention fails with config.ErrInvalidNaming.
func NewNamer(client config.Client) (*Namer, error) {
	naming := client.ModelPropertyNaming
	if naming == "" {
		naming = config.NamingCamelCase
	}
	if _, err := config.ParseNaming(string(naming)); err != nil {
		return nil, err
	}
	n := &Namer{
		naming:   naming,
		reserved: make(map[string]struct{}, len(DefaultReservedWords)+len(client.ReservedWords)),
		mappings: make(map[string]string, len(client.ReservedWordsMappings)),
		prefix:   client.ModelNamePrefix,
		suffix:   client.ModelNameSuffix,
	}
	for _, w := range DefaultReservedWords {
		n.reserved[w] = struct{}{}
	}
	for _, w := range client.ReservedWords {
		n.reserved[w] = struct{}{}
	}
	for k, v := range client.ReservedWordsMappings {
		n.mappings[k] = v
	}
	return n, nil
}

// Naming returns the property naming convention
func (n *Namer) Naming() config.Naming { return n.naming }

// IsReserved reports whether word is reserved. The check is case-sensitive.
func (n *Namer) IsReserved(word string) bool {
	_, ok := n.reserved[word]
	return ok
}

func (n *Namer) escapeReserved(name string) string {
	if m, ok := n.mappings[name]; ok {
		return m
	}
	return "_" + name
}

// Normalize converts raw into an identifier for the given role. The returned
// warning is non-empty when the name had to be changed to avoid a reserved
// word or a leading digit; only operations can fail.
func (n *Namer) Normalize(raw string, role Role) (string, string, error) {
	switch role {
	case RoleModel:
		name, warn := n.ModelName(raw)
		return name, warn, nil
	case RoleVariable, RoleParameter:
		return n.VarName(raw), "", nil
	case RoleOperation:
		return n.OperationID(raw)
	case RoleEnumValue:
		return n.EnumVarName(raw), "", nil
	}
	return "", "", fmt.Errorf("unknown role %s", role)
}

func (n *Namer) applyNaming(name string) string {
	switch n.naming {
	case config.NamingOriginal:
		return name
	case config.NamingPascalCase:
		return utils.ToPascalCase(name)
	case config.NamingSnakeCase:
		return utils.ToSnakeCase(name)
	default:
		return utils.ToCamelCase(name)
	}
}

// VarName returns the identifier of a property: pet_id -> petId under camelCase
func (n *Namer) VarName(raw string) string {
	name := utils.SanitizeName(raw)
	// the placeholder is a fixed point under every convention
	if name == "" || name == "_" || name == unnamedVar {
		return unnamedVar
	}
	// all upper case names are treated as constants
	if !constantName.MatchString(name) {
		name = n.applyNaming(name)
	}
	if n.IsReserved(name) || leadingDigit.MatchString(name) {
		name = n.escapeReserved(name)
	}
	return name
}

// ParamName returns the identifier of an operation parameter
func (n *Namer) ParamName(raw string) string {
	return n.VarName(raw)
}

// ModelName returns the class name of a schema: phone_number -> PhoneNumber.
// Reserved words and names starting with a digit are prefixed with Model.
func (n *Namer) ModelName(raw string) (string, string) {
	name := utils.SanitizeName(raw)
	if n.prefix != "" {
		name = n.prefix + "_" + name
	}
	if n.suffix != "" {
		name = name + "_" + n.suffix
	}
	name = utils.ToPascalCase(name)

	if name == "" {
		return modelPrefix, fmt.Sprintf("%q has no usable characters for a model name. Renamed to %s", raw, modelPrefix)
	}
	if n.IsReserved(name) {
		renamed := modelPrefix + name
		return renamed, fmt.Sprintf("%s (reserved word) cannot be used as model name. Renamed to %s", name, renamed)
	}
	if leadingDigit.MatchString(name) {
		renamed := modelPrefix + name
		return renamed, fmt.Sprintf("%s (model name starts with number) cannot be used as model name. Renamed to %s", name, renamed)
	}
	return name, ""
}

// OperationID returns the method name of an operation: find_pets -> findPets
func (n *Namer) OperationID(raw string) (string, string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", "", ErrEmptyOperationID
	}
	id := utils.ToCamelCase(utils.SanitizeName(raw))
	if id == "" {
		return "", "", fmt.Errorf("%w: %q has no usable characters", ErrEmptyOperationID, raw)
	}
	if n.IsReserved(id) {
		renamed := utils.ToCamelCase(operationPrefix + id)
		return renamed, fmt.Sprintf("%s (reserved word) cannot be used as method name. Renamed to %s", id, renamed), nil
	}
	if leadingDigit.MatchString(id) {
		renamed := utils.ToCamelCase(operationPrefix + id)
		return renamed, fmt.Sprintf("%s (starting with a number) cannot be used as method name. Renamed to %s", id, renamed), nil
	}
	return id, "", nil
}

// EnumVarName returns the member name of an enum value. Values are kept
// verbatim except for the empty string, symbols and reserved words.
func (n *Namer) EnumVarName(value string) string {
	if value == "" {
		return emptyEnumVar
	}
	if sym, ok := symbolNames[value]; ok {
		return strings.ToUpper(sym)
	}
	if n.IsReserved(value) {
		return n.escapeReserved(value)
	}
	return value
}

// EnumName returns the type name of an inline enum declared by a property
func (n *Namer) EnumName(propName string) string {
	base := utils.ToPascalCase(strings.TrimLeft(utils.SanitizeName(propName), "_"))
	return base + "Enum"
}

// EnumValue renders an enum literal. Numbers are kept verbatim, everything
// else becomes a quoted string.
func EnumValue(value, dataType string) string {
	if dataType == "Integer" || dataType == "Number" {
		return value
	}
	return `"` + escapeText(value) + `"`
}

// APIName returns the class name of the API grouping a tag
func APIName(tag string) string {
	name := utils.ToPascalCase(utils.SanitizeName(tag))
	if name == "" {
		name = "Default"
	}
	return name + "Api"
}

// NormalizeType wraps primitive type names in single quotes for runtime type
// conversion: [String] -> ['String'].
func NormalizeType(dataType string) string {
	return primitiveType.ReplaceAllString(dataType, "'$1'")
}

var textEscaper = strings.NewReplacer(
	"\t", " ", "\n", " ", "\r", " ",
	`\`, `\\`, `"`, `\"`,
	"*/", "*_/", "/*", "/_*",
)

// escapeText makes s safe inside a double-quoted string literal and a block comment
func escapeText(s string) string {
	return textEscaper.Replace(s)
}

// escapeVersion strips quotes and comment delimiters from a version string
func escapeVersion(s string) string {
	s = strings.NewReplacer(`"`, "", "'", "").Replace(s)
	return strings.NewReplacer("*/", "*_/", "/*", "/_*").Replace(s)
}
