package javascript

import (
	"github.com/blimu-dev/jscodegen/pkg/codemodel"
	"github.com/blimu-dev/jscodegen/pkg/ir"
	"github.com/spf13/cast"
)

// Placeholder literals used when a descriptor declares no value
const (
	exampleInteger  = "56"
	exampleLong     = "789"
	exampleNumber   = "3.4"
	exampleBoolean  = "true"
	exampleFile     = "/path/to/file"
	exampleDate     = "2013-10-20"
	exampleDateTime = "2013-10-20T19:20:30+01:00"
	exampleNull     = "null"
)

// setDefaults records the declared default and example of s on p
func setDefaults(p *codemodel.Property, s ir.IRSchema) {
	if s.Default != nil {
		p.Default = cast.ToString(s.Default)
		p.DefaultValue = defaultLiteral(&p.TypeInfo, s.Default)
	}
	if s.Example != nil {
		p.Example = cast.ToString(s.Example)
	}
}

// defaultLiteral renders a declared default as a JavaScript literal.
// Booleans and numbers are kept verbatim, strings are single-quoted, other
// kinds have no literal.
func defaultLiteral(t *codemodel.TypeInfo, v any) string {
	if v == nil {
		return ""
	}
	switch {
	case t.IsDate, t.IsDateTime:
		return ""
	case t.IsBoolean, t.IsInteger, t.IsLong, t.IsNumber, t.IsFloat, t.IsDouble:
		return cast.ToString(v)
	case t.IsString:
		return "'" + cast.ToString(v) + "'"
	}
	return ""
}

// propertyExample synthesizes the example of a property. A declared default
// wins over a declared example.
func (b *builder) propertyExample(p *codemodel.Property) string {
	explicit := p.Default
	if explicit == "" {
		explicit = p.Example
	}
	return b.example(&p.TypeInfo, p.Name, explicit)
}

// parameterExample synthesizes the example of a parameter from the value
// picked while building it.
func (b *builder) parameterExample(p *codemodel.Parameter) string {
	return b.example(&p.TypeInfo, p.ParamName, p.Example)
}

// example returns a literal for a value of type t. explicit is the declared
// value, empty when none. Containers wrap the example of their items and
// ignore explicit values.
func (b *builder) example(t *codemodel.TypeInfo, name, explicit string) string {
	if t.IsContainer && t.Items != nil {
		item := b.propertyExample(t.Items)
		if t.IsArray {
			return "[" + item + "]"
		}
		return "{key: " + item + "}"
	}
	if t.Unresolved {
		return exampleNull
	}

	ex := explicit
	orElse := func(placeholder string) string {
		if ex == "" {
			return placeholder
		}
		return ex
	}
	switch {
	case t.IsInteger:
		return orElse(exampleInteger)
	case t.IsLong:
		return orElse(exampleLong)
	case t.IsDouble, t.IsFloat, t.IsNumber:
		return orElse(exampleNumber)
	case t.IsBoolean:
		return orElse(exampleBoolean)
	case t.IsFile, t.IsBinary:
		return `"` + escapeText(orElse(exampleFile)) + `"`
	case t.IsDate:
		return `new Date("` + escapeText(orElse(exampleDate)) + `")`
	case t.IsDateTime:
		return `new Date("` + escapeText(orElse(exampleDateTime)) + `")`
	case t.IsString:
		return `"` + escapeText(orElse(name+"_example")) + `"`
	case !IsPrimitive(t.TypeName()):
		return "new " + b.moduleName() + "." + t.TypeName() + "()"
	}
	return orElse(exampleNull)
}
