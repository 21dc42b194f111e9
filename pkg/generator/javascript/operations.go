package javascript

import (
	"strings"

	"github.com/blimu-dev/jscodegen/pkg/codemodel"
	"github.com/blimu-dev/jscodegen/pkg/ir"
)

// Trailing arguments of every generated API method
const (
	optsArg        = "opts"
	requestInitArg = "requestInit"
)

// argList returns the argument list of an operation: required parameters in
// order, then opts when there is anything optional to pass, then requestInit.
func argList(op *codemodel.Operation) (string, bool) {
	var args []string
	hasOptional := false
	for _, p := range op.AllParams {
		if p.Required {
			args = append(args, p.ParamName)
		} else {
			hasOptional = true
		}
	}
	// servers are selected through opts
	if len(op.Servers) > 0 {
		hasOptional = true
	}
	if hasOptional {
		args = append(args, optsArg)
	}
	args = append(args, requestInitArg)
	return strings.Join(args, ", "), hasOptional
}

// requiredVars collects the required properties of a model. Own properties
// keep document order. With inheritance the combined list walks AllVars;
// without it both lists are the same.
func requiredVars(m *codemodel.Model, inheritance bool) ([]*codemodel.Property, []*codemodel.Property) {
	var required []*codemodel.Property
	for _, v := range m.Vars {
		if v.Required {
			required = append(required, v)
		}
	}
	if !inheritance {
		return required, required
	}
	var all []*codemodel.Property
	for _, v := range m.AllVars {
		if v.Required {
			all = append(all, v)
		}
	}
	return required, all
}

// markMoreRequired flags each required property with whether another
// required property follows it.
func markMoreRequired(required []*codemodel.Property) error {
	for i, v := range required {
		if err := v.Ext.HasMoreRequired.Set(i < len(required)-1); err != nil {
			return err
		}
	}
	return nil
}

// collectionFormat returns how an array parameter is serialized. Arrays of
// binary items are passed through untouched.
func collectionFormat(p ir.IRParam, t *codemodel.TypeInfo) string {
	if !t.IsArray {
		return ""
	}
	if t.Items != nil && t.Items.DataFormat == "binary" {
		return "passthrough"
	}
	style := p.Style
	if style == "" {
		switch p.In {
		case ir.InQuery, ir.InCookie, ir.InFormData:
			style = "form"
		default:
			style = "simple"
		}
	}
	explode := style == "form"
	if p.Explode != nil {
		explode = *p.Explode
	}
	switch style {
	case "form":
		if explode {
			return "multi"
		}
		return "csv"
	case "spaceDelimited":
		return "ssv"
	case "pipeDelimited":
		return "pipes"
	}
	return "csv"
}

// setReturnType fills the return type fields of op from the resolved
// response type.
func setReturnType(op *codemodel.Operation, ret *codemodel.TypeInfo) {
	if ret == nil {
		return
	}
	op.ReturnType = ret.DataType
	op.IsArray = ret.IsArray
	op.IsMap = ret.IsMap
	if ret.IsContainer {
		op.ReturnContainer = ret.ContainerType
	}
	inner := ret
	for inner.IsContainer && inner.Items != nil {
		inner = &inner.Items.TypeInfo
	}
	op.ReturnBaseType = inner.DataType
	op.ReturnTypeIsPrimitive = IsPrimitive(op.ReturnBaseType)
}
