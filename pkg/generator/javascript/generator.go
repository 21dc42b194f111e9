// Package javascript builds the code model of a JavaScript client running on
// Apollo RESTDataSource. It resolves schema types to JavaScript types,
// normalizes identifiers, reconciles inherited enums and derives the JSDoc
// types, examples and argument lists the templates render.
package javascript

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/blimu-dev/jscodegen/pkg/codemodel"
	"github.com/blimu-dev/jscodegen/pkg/config"
	"github.com/blimu-dev/jscodegen/pkg/ir"
	"github.com/spf13/cast"
)

// responseName names the result of an operation in synthesized examples
const responseName = "response"

// Generator builds JavaScript client code models
type Generator struct {
	logger *slog.Logger
}

// NewGenerator creates a new JavaScript generator. A nil logger uses slog.Default.
func NewGenerator(logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{logger: logger}
}

// GetType returns the generator type identifier
func (g *Generator) GetType() string {
	return config.TypeJavaScriptApollo
}

// Generate builds the code model of one client. Configuration errors and
// operations without an operationId fail the run without a partial tree;
// other input defects are recorded in Tree.Warnings.
func (g *Generator) Generate(client config.Client, in ir.IR) (*codemodel.Tree, error) {
	if err := client.ApplyDefaults(); err != nil {
		return nil, err
	}
	namer, err := NewNamer(client)
	if err != nil {
		return nil, fmt.Errorf("client %s: %w", client.Name, err)
	}
	b := newBuilder(client, namer, g.logger.With("client", client.Name), in.ModelDefs)
	if err := b.build(in); err != nil {
		return nil, err
	}
	return b.tree, nil
}

// builder holds the state of one generation run. Models are indexed by
// their schema name; parents are looked up by name when needed.
type builder struct {
	client      config.Client
	inheritance bool
	namer       *Namer
	logger      *slog.Logger
	tree        *codemodel.Tree

	defs    map[string]ir.IRModelDef
	classes map[string]string
	models  map[string]*codemodel.Model
	// snapshots are the own properties of each model as built, before
	// enum reconciliation
	snapshots map[string][]*codemodel.Property
	lineages  map[string][]*codemodel.Property
	returns   map[*codemodel.Operation]*codemodel.TypeInfo
}

func newBuilder(client config.Client, namer *Namer, logger *slog.Logger, defs []ir.IRModelDef) *builder {
	b := &builder{
		client:      client,
		inheritance: client.InheritanceEnabled(),
		namer:       namer,
		logger:      logger,
		tree:        &codemodel.Tree{},
		defs:        make(map[string]ir.IRModelDef, len(defs)),
		classes:     make(map[string]string, len(defs)),
		models:      make(map[string]*codemodel.Model, len(defs)),
		snapshots:   make(map[string][]*codemodel.Property, len(defs)),
		lineages:    make(map[string][]*codemodel.Property, len(defs)),
		returns:     map[*codemodel.Operation]*codemodel.TypeInfo{},
	}
	for _, def := range defs {
		b.defs[def.Name] = def
	}
	return b
}

func (b *builder) build(in ir.IR) error {
	b.tree.Info = projectInfo(b.client, in.Info)
	b.tree.Settings = codemodel.TreeSettings{
		InvokerPackage:      b.client.InvokerPackage,
		ModelPackage:        b.client.ModelPackage,
		APIPackage:          b.client.APIPackage,
		ModelPropertyNaming: string(b.namer.Naming()),
		UseInheritance:      b.inheritance,
	}

	b.assignClassNames(in.ModelDefs)
	for _, def := range in.ModelDefs {
		b.tree.Models = append(b.tree.Models, b.buildModel(def))
	}
	for _, m := range b.tree.Models {
		vars := b.lineage(m.Name, map[string]bool{})
		if b.inheritance {
			m.AllVars = vars
			continue
		}
		m.Vars = slices.Clone(vars)
		m.AllVars = vars
		m.HasEnums = hasEnums(m.Vars)
	}

	for _, svc := range in.Services {
		api, err := b.buildAPI(svc)
		if err != nil {
			return err
		}
		b.tree.APIs = append(b.tree.APIs, api)
	}

	b.reconcile()
	if err := b.annotate(); err != nil {
		return err
	}
	return b.finish()
}

func (b *builder) warn(element, msg string) {
	b.logger.Warn(msg, "element", element)
	b.tree.Warnings = append(b.tree.Warnings, codemodel.Diagnostic{
		Severity: codemodel.SeverityWarning,
		Element:  element,
		Message:  msg,
	})
}

// unresolved records a schema whose kind has no type mapping. The run goes on
// with an empty type.
func (b *builder) unresolved(element string, kind ir.IRSchemaKind) {
	msg := fmt.Sprintf("no type defined for schema of kind %s", kind)
	b.logger.Error(msg, "element", element)
	b.tree.Warnings = append(b.tree.Warnings, codemodel.Diagnostic{
		Severity: codemodel.SeverityError,
		Element:  element,
		Message:  msg,
	})
}

func (b *builder) moduleName() string {
	return b.tree.Info.ModuleName
}

// assignClassNames names every model up front, in schema name order. A class
// name already taken by another schema gets a numeric suffix.
func (b *builder) assignClassNames(defs []ir.IRModelDef) {
	owners := make(map[string]string, len(defs))
	for _, def := range defs {
		name := b.modelName(def.Name)
		if owner, taken := owners[name]; taken {
			base := name
			for i := 2; ; i++ {
				name = fmt.Sprintf("%s%d", base, i)
				if _, taken := owners[name]; !taken {
					break
				}
			}
			b.warn("model "+def.Name, fmt.Sprintf("%s is already used as class name by %s. Renamed to %s", base, owner, name))
		}
		owners[name] = def.Name
		b.classes[def.Name] = name
	}
}

// className returns the class name of a schema, naming it on first use
func (b *builder) className(raw string) string {
	if c, ok := b.classes[raw]; ok {
		return c
	}
	c := b.modelName(raw)
	b.classes[raw] = c
	return c
}

func (b *builder) modelName(raw string) string {
	name, warning := b.namer.ModelName(raw)
	if warning != "" {
		b.warn("model "+raw, warning)
	}
	return name
}

func (b *builder) buildModel(def ir.IRModelDef) *codemodel.Model {
	s := def.Schema
	m := &codemodel.Model{
		Name:        def.Name,
		ClassName:   b.className(def.Name),
		Description: firstNonEmpty(def.Annotations.Description, s.Description),
	}
	if b.inheritance && def.Parent != "" {
		m.Parent = def.Parent
		m.ParentClass = b.className(def.Parent)
		m.Interfaces = def.Interfaces
	}

	switch {
	case s.Kind == ir.IRKindArray:
		m.IsArray = true
		m.ItemType = b.typeDeclaration(itemsOf(s))
	case s.IsMap():
		m.IsMap = true
		m.ItemType = b.typeDeclaration(*s.AdditionalProperties)
	case s.Kind == ir.IRKindEnum:
		m.IsEnum = true
		m.DataType = b.schemaType(s)
		m.AllowableValues = b.enumValues(s, m.DataType)
	case isScalar(s.Kind):
		m.IsPrimitive = true
		m.DataType = b.schemaType(s)
	case s.Kind == ir.IRKindObject:
		for _, f := range s.Properties {
			m.Vars = append(m.Vars, b.buildProperty(def.Name, f))
		}
	}
	m.HasEnums = hasEnums(m.Vars)
	b.snapshots[def.Name] = slices.Clone(m.Vars)
	b.models[def.Name] = m
	return m
}

func (b *builder) buildProperty(owner string, f ir.IRField) *codemodel.Property {
	s := ir.IRSchema{Kind: ir.IRKindUnknown}
	if f.Type != nil {
		s = *f.Type
	}
	name := b.namer.VarName(f.Name)
	p := &codemodel.Property{
		TypeInfo:    b.resolveType(s, name, "model "+owner+" property "+f.Name),
		BaseName:    f.Name,
		Name:        name,
		Description: firstNonEmpty(f.Annotations.Description, s.Description),
		Required:    f.Required,
		Nullable:    s.Nullable,
		ReadOnly:    f.Annotations.ReadOnly,
	}
	setDefaults(p, s)
	return p
}

// lineage returns the properties of a model across its ancestry: the parent's
// first, then each mixin's, then its own. An own property replaces an
// inherited one of the same name in place. Inherited properties are copies so
// that each model annotates its own descriptors.
func (b *builder) lineage(name string, visiting map[string]bool) []*codemodel.Property {
	if vars, ok := b.lineages[name]; ok {
		return vars
	}
	def, ok := b.defs[name]
	if !ok {
		return nil
	}
	if visiting[name] {
		b.warn("model "+name, "inheritance cycle detected, inherited properties ignored")
		return nil
	}
	visiting[name] = true
	defer delete(visiting, name)

	var vars []*codemodel.Property
	index := map[string]int{}
	add := func(p *codemodel.Property, inherited bool) {
		if inherited {
			p = inheritedCopy(p)
		}
		if i, ok := index[p.BaseName]; ok {
			if !inherited {
				vars[i] = p
			}
			return
		}
		index[p.BaseName] = len(vars)
		vars = append(vars, p)
	}
	for _, ancestor := range append([]string{def.Parent}, def.Interfaces...) {
		if ancestor == "" {
			continue
		}
		for _, p := range b.lineage(ancestor, visiting) {
			add(p, true)
		}
	}
	for _, p := range b.snapshots[name] {
		add(p, false)
	}
	b.lineages[name] = vars
	return vars
}

func (b *builder) buildAPI(svc ir.IRService) (*codemodel.API, error) {
	api := &codemodel.API{Tag: svc.Tag, ClassName: APIName(svc.Tag)}
	for _, in := range svc.Operations {
		op, err := b.buildOperation(in)
		if err != nil {
			return nil, err
		}
		api.Operations = append(api.Operations, op)
	}
	return api, nil
}

func (b *builder) buildOperation(in ir.IROperation) (*codemodel.Operation, error) {
	nickname, warning, err := b.namer.OperationID(in.OperationID)
	if err != nil {
		return nil, fmt.Errorf("operation %s %s: %w", in.Method, in.Path, err)
	}
	element := "operation " + in.OperationID
	if warning != "" {
		b.warn(element, warning)
	}
	op := &codemodel.Operation{
		OperationID: in.OperationID,
		Nickname:    nickname,
		HTTPMethod:  in.Method,
		Path:        in.Path,
		Summary:     in.Summary,
		Description: in.Description,
		Deprecated:  in.Deprecated,
	}

	for _, p := range in.Params {
		op.AllParams = append(op.AllParams, b.buildParameter(element, p))
	}
	// required parameters first, declared order otherwise kept
	slices.SortStableFunc(op.AllParams, func(x, y *codemodel.Parameter) int {
		switch {
		case x.Required == y.Required:
			return 0
		case x.Required:
			return -1
		}
		return 1
	})
	for _, p := range op.AllParams {
		if p.Required {
			op.RequiredParams = append(op.RequiredParams, p)
		} else {
			op.OptionalParams = append(op.OptionalParams, p)
		}
		if p.IsBodyParam {
			op.BodyParam = p
		}
	}

	for _, s := range in.Servers {
		op.Servers = append(op.Servers, codemodel.Server{URL: s.URL, Description: s.Description})
	}

	if in.Response != nil {
		ret := b.resolveType(*in.Response, responseName, element+" response")
		setReturnType(op, &ret)
		b.returns[op] = &ret
	}
	return op, nil
}

func (b *builder) buildParameter(element string, in ir.IRParam) *codemodel.Parameter {
	name := b.namer.ParamName(in.Name)
	p := &codemodel.Parameter{
		TypeInfo:    b.resolveType(in.Schema, name, element+" parameter "+in.Name),
		BaseName:    in.Name,
		ParamName:   name,
		Description: firstNonEmpty(in.Description, in.Schema.Description),
		Required:    in.Required,
		In:          in.In,
	}
	switch in.In {
	case ir.InPath:
		p.IsPathParam = true
	case ir.InQuery:
		p.IsQueryParam = true
	case ir.InHeader:
		p.IsHeaderParam = true
	case ir.InCookie:
		p.IsCookieParam = true
	case ir.InBody:
		p.IsBodyParam = true
	case ir.InFormData:
		p.IsFormParam = true
	}
	p.CollectionFormat = collectionFormat(in, &p.TypeInfo)
	p.DefaultValue = defaultLiteral(&p.TypeInfo, in.Schema.Default)
	// parameter example, then schema default, then schema example
	for _, v := range []any{in.Example, in.Schema.Default, in.Schema.Example} {
		if v != nil {
			p.Example = cast.ToString(v)
			break
		}
	}
	return p
}

// inheritedCopy copies a property for a child model. Annotations are reset
// down the item chain since the child derives its own.
func inheritedCopy(p *codemodel.Property) *codemodel.Property {
	cp := *p
	cp.Ext = codemodel.PropertyExt{}
	if p.Items != nil {
		cp.Items = inheritedCopy(p.Items)
	}
	return &cp
}

// annotateItems annotates the item descriptors of a container. docType
// derives the doc type of one item.
func (b *builder) annotateItems(t *codemodel.TypeInfo, docType func(*codemodel.Property) string) []error {
	var errs []error
	for item := t.Items; t.IsContainer && item != nil; item = item.Items {
		errs = append(errs,
			item.Ext.DocType.Set(docType(item)),
			item.Ext.ExampleValue.Set(b.propertyExample(item)),
		)
		t = &item.TypeInfo
	}
	return errs
}

// annotate derives the doc types and examples of every descriptor
func (b *builder) annotate() error {
	var errs []error
	for _, m := range b.tree.Models {
		errs = append(errs,
			m.Ext.DocType.Set(b.modelledType(m.ClassName)),
			m.Ext.ExampleValue.Set("new "+b.moduleName()+"."+m.ClassName+"()"),
		)
		for _, vars := range [][]*codemodel.Property{m.Vars, m.AllVars} {
			for _, v := range vars {
				errs = append(errs,
					v.Ext.DocType.Set(b.propertyDocType(m.ClassName, v)),
					v.Ext.ExampleValue.Set(b.propertyExample(v)),
				)
				errs = append(errs, b.annotateItems(&v.TypeInfo, func(item *codemodel.Property) string {
					return b.propertyDocType(m.ClassName, item)
				})...)
			}
		}
	}
	for _, api := range b.tree.APIs {
		for _, op := range api.Operations {
			for _, p := range op.AllParams {
				errs = append(errs,
					p.Ext.DocType.Set(b.parameterDocType(p)),
					p.Ext.ExampleValue.Set(b.parameterExample(p)),
				)
				errs = append(errs, b.annotateItems(&p.TypeInfo, func(item *codemodel.Property) string {
					return b.parameterDocType(&codemodel.Parameter{TypeInfo: item.TypeInfo})
				})...)
			}
			ret := b.returns[op]
			example := exampleNull
			if ret != nil {
				example = b.example(ret, responseName, "")
			}
			errs = append(errs,
				op.Ext.DocType.Set(b.operationDocType(op, ret)),
				op.Ext.ExampleValue.Set(example),
			)
			if op.ReturnType != "" {
				errs = append(errs, op.Ext.ReturnType.Set(NormalizeType(op.ReturnType)))
			}
		}
	}
	return errors.Join(errs...)
}

// finish computes argument lists and required property lists
func (b *builder) finish() error {
	var errs []error
	for _, api := range b.tree.APIs {
		for _, op := range api.Operations {
			args, hasOptional := argList(op)
			errs = append(errs,
				op.Ext.ArgList.Set(args),
				op.Ext.HasOptionalParams.Set(hasOptional),
			)
		}
	}
	for _, m := range b.tree.Models {
		required, allRequired := requiredVars(m, b.inheritance)
		errs = append(errs,
			m.Ext.SetRequired(required, allRequired),
			markMoreRequired(required),
		)
	}
	return errors.Join(errs...)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
