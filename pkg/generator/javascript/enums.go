package javascript

import (
	"slices"

	"github.com/blimu-dev/jscodegen/pkg/codemodel"
)

// reconcileEnums drops from child.Vars every enum property that the parent
// already declares identically. parentVars are the parent's own properties
// as built, before the parent was itself reconciled. AllVars is left alone
// so the parent's enum stays reachable through inheritance.
func reconcileEnums(child *codemodel.Model, parentVars []*codemodel.Property) int {
	if !hasEnums(parentVars) {
		return 0
	}
	removed := 0
	for _, pv := range parentVars {
		if !pv.IsEnum {
			continue
		}
		child.Vars = slices.DeleteFunc(child.Vars, func(cv *codemodel.Property) bool {
			if cv.IsEnum && enumEqual(cv, pv) {
				removed++
				return true
			}
			return false
		})
	}
	return removed
}

func hasEnums(vars []*codemodel.Property) bool {
	return slices.ContainsFunc(vars, func(p *codemodel.Property) bool { return p.IsEnum })
}

// enumEqual compares two enum properties structurally: name, resolved type
// and the set of declared values.
func enumEqual(a, b *codemodel.Property) bool {
	if a.BaseName != b.BaseName || a.Name != b.Name {
		return false
	}
	if a.DataType != b.DataType || a.DatatypeWithEnum != b.DatatypeWithEnum {
		return false
	}
	return sameValues(a.AllowableValues, b.AllowableValues)
}

func sameValues(a, b []codemodel.EnumValue) bool {
	set := make(map[string]struct{}, len(a))
	for _, v := range a {
		set[v.Raw] = struct{}{}
	}
	other := make(map[string]struct{}, len(b))
	for _, v := range b {
		if _, ok := set[v.Raw]; !ok {
			return false
		}
		other[v.Raw] = struct{}{}
	}
	return len(set) == len(other)
}

// reconcile runs enum reconciliation over every model with a parent, using
// the parents' snapshots taken when the models were built.
func (b *builder) reconcile() {
	for _, m := range b.tree.Models {
		if m.Parent == "" || !m.HasEnums {
			continue
		}
		parentVars, ok := b.snapshots[m.Parent]
		if !ok {
			continue
		}
		if n := reconcileEnums(m, parentVars); n > 0 {
			b.logger.Debug("removed enums declared by parent", "model", m.Name, "parent", m.Parent, "count", n)
		}
	}
}
