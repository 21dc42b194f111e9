package javascript

import (
	"strings"

	"github.com/blimu-dev/jscodegen/pkg/codemodel"
)

// unresolvedDocType is the JSDoc type of a value whose type could not be resolved
const unresolvedDocType = "*"

// isModelled reports whether the type of d is generated rather than native.
// Properties and parameters count enums as modelled. Operations use the
// primitive-return flag computed while building them.
func isModelled(d codemodel.Descriptor) bool {
	switch v := d.(type) {
	case *codemodel.Property:
		return v.IsEnum || !IsPrimitive(v.TypeName())
	case *codemodel.Parameter:
		return v.IsEnum || !IsPrimitive(v.TypeName())
	case *codemodel.Operation:
		return !v.ReturnTypeIsPrimitive
	}
	return false
}

// modelledType returns the JSDoc module path of a generated type,
// e.g. module:petstore/model/Pet.
func (b *builder) modelledType(dataType string) string {
	var parts []string
	for _, p := range []string{b.client.InvokerPackage, b.client.ModelPackage, dataType} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return "module:" + strings.Join(parts, "/")
}

func wrapDocType(t *codemodel.TypeInfo, inner string) string {
	if t.IsArray {
		return "Array.<" + inner + ">"
	}
	return "Object.<String, " + inner + ">"
}

// propertyDocType derives the JSDoc type of a property declared on the model
// named className. Enums are qualified by the owning class.
func (b *builder) propertyDocType(className string, p *codemodel.Property) string {
	if p.IsContainer && p.Items != nil {
		return wrapDocType(&p.TypeInfo, b.propertyDocType(className, p.Items))
	}
	switch {
	case p.Unresolved:
		return unresolvedDocType
	case p.IsEnum:
		return className + "." + p.DatatypeWithEnum
	case isModelled(p):
		return b.modelledType(p.DatatypeWithEnum)
	}
	return p.DatatypeWithEnum
}

// parameterDocType derives the JSDoc type of a parameter
func (b *builder) parameterDocType(p *codemodel.Parameter) string {
	if p.IsContainer && p.Items != nil {
		item := &codemodel.Parameter{TypeInfo: p.Items.TypeInfo}
		return wrapDocType(&p.TypeInfo, b.parameterDocType(item))
	}
	switch {
	case p.Unresolved:
		return unresolvedDocType
	case isModelled(p):
		return b.modelledType(p.DataType)
	}
	return p.DataType
}

// operationDocType derives the JSDoc type of an operation result. ret is the
// resolved response type, nil for operations without content.
func (b *builder) operationDocType(op *codemodel.Operation, ret *codemodel.TypeInfo) string {
	if ret == nil {
		return ""
	}
	if ret.IsContainer && ret.Items != nil {
		return wrapDocType(ret, b.operationDocType(op, &ret.Items.TypeInfo))
	}
	if ret.Unresolved {
		return unresolvedDocType
	}
	if isModelled(op) {
		return b.modelledType(op.ReturnBaseType)
	}
	return op.ReturnBaseType
}
