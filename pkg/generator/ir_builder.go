package generator

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/blimu-dev/jscodegen/pkg/config"
	"github.com/blimu-dev/jscodegen/pkg/ir"
	"github.com/blimu-dev/jscodegen/pkg/openapi"
	"github.com/getkin/kin-openapi/openapi3"
)

// DefaultTag groups operations that declare no tag
const DefaultTag = "default"

// BuildIR creates an IR from an OpenAPI document
func BuildIR(doc *openapi.Document) ir.IR {
	conv := newSchemaConverter(doc.PropertyOrder)
	modelDefs := buildStructuredModels(doc, conv)
	result := buildIRFromDoc(doc, conv)
	result.Info = collectInfo(doc.T)
	// Inline schemas lifted while converting components and operations
	result.ModelDefs = append(modelDefs, conv.defs...)
	sort.SliceStable(result.ModelDefs, func(i, j int) bool { return result.ModelDefs[i].Name < result.ModelDefs[j].Name })
	return result
}

// filterIR filters the IR based on client configuration
func filterIR(fullIR ir.IR, client config.Client) (ir.IR, error) {
	include, exclude, err := compileTagFilters(client.IncludeTags, client.ExcludeTags)
	if err != nil {
		return ir.IR{}, err
	}
	if len(include) == 0 && len(exclude) == 0 {
		return fullIR, nil
	}

	// Filter services and operations based on their original tags
	filteredServices := make([]ir.IRService, 0)
	for _, service := range fullIR.Services {
		filteredOps := make([]ir.IROperation, 0)
		for _, op := range service.Operations {
			if shouldIncludeOperation(op.OriginalTags, include, exclude) {
				filteredOps = append(filteredOps, op)
			}
		}
		// Only include the service if it has at least one operation after filtering
		if len(filteredOps) > 0 {
			filteredService := service
			filteredService.Operations = filteredOps
			filteredServices = append(filteredServices, filteredService)
		}
	}

	filteredIR := ir.IR{
		Info:     fullIR.Info,
		Services: filteredServices,
	}
	filteredIR.ModelDefs = filterUnusedModelDefs(filteredIR, fullIR.ModelDefs)
	return filteredIR, nil
}

// compileTagFilters compiles regex patterns for tag filtering
func compileTagFilters(include, exclude []string) ([]*regexp.Regexp, []*regexp.Regexp, error) {
	inc := make([]*regexp.Regexp, 0, len(include))
	for _, p := range include {
		r, err := regexp.Compile(p)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid includeTags pattern %q: %w", p, err)
		}
		inc = append(inc, r)
	}
	exc := make([]*regexp.Regexp, 0, len(exclude))
	for _, p := range exclude {
		r, err := regexp.Compile(p)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid excludeTags pattern %q: %w", p, err)
		}
		exc = append(exc, r)
	}
	return inc, exc, nil
}

// shouldIncludeOperation determines if an operation should be included based on its original tags
func shouldIncludeOperation(originalTags []string, include, exclude []*regexp.Regexp) bool {
	// If no include patterns, assume all tags are initially included
	included := len(include) == 0

	// Check include patterns - operation is included if ANY of its tags match ANY include pattern
	if len(include) > 0 {
		for _, tag := range originalTags {
			for _, r := range include {
				if r.MatchString(tag) {
					included = true
					break
				}
			}
			if included {
				break
			}
		}
	}

	if !included {
		return false
	}

	// Check exclude patterns - operation is excluded if ANY of its tags match ANY exclude pattern
	for _, tag := range originalTags {
		for _, r := range exclude {
			if r.MatchString(tag) {
				return false
			}
		}
	}

	return true
}

func collectInfo(doc *openapi3.T) ir.IRInfo {
	if doc.Info == nil {
		return ir.IRInfo{}
	}
	info := ir.IRInfo{
		Title:       doc.Info.Title,
		Description: doc.Info.Description,
		Version:     doc.Info.Version,
	}
	if doc.Info.License != nil {
		info.License = doc.Info.License.Name
	}
	return info
}

var methodOrder = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD", "TRACE"}

// buildIRFromDoc builds services from the document paths. Operations are
// grouped by their first tag and ordered by path, then method.
func buildIRFromDoc(doc *openapi.Document, conv *schemaConverter) ir.IR {
	servicesMap := map[string]*ir.IRService{}
	if doc.Paths == nil {
		return ir.IR{}
	}

	items := doc.Paths.Map()
	paths := make([]string, 0, len(items))
	for path := range items {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	for _, path := range paths {
		item := items[path]
		if item == nil {
			continue
		}
		operations := []*openapi3.Operation{
			item.Get, item.Post, item.Put, item.Patch,
			item.Delete, item.Options, item.Head, item.Trace,
		}
		for i, op := range operations {
			if op == nil {
				continue
			}
			irOp := buildOperation(conv, item, op, methodOrder[i], path)
			if _, ok := servicesMap[irOp.Tag]; !ok {
				servicesMap[irOp.Tag] = &ir.IRService{Tag: irOp.Tag}
			}
			servicesMap[irOp.Tag].Operations = append(servicesMap[irOp.Tag].Operations, irOp)
		}
	}

	services := make([]ir.IRService, 0, len(servicesMap))
	for _, s := range servicesMap {
		services = append(services, *s)
	}
	sort.Slice(services, func(i, j int) bool { return services[i].Tag < services[j].Tag })
	return ir.IR{Services: services}
}

func buildOperation(conv *schemaConverter, item *openapi3.PathItem, op *openapi3.Operation, method, path string) ir.IROperation {
	itemPath := openapi.Child("#/paths", path)
	opPath := openapi.Child(itemPath, strings.ToLower(method))

	// Copy original tags, defaulting to ["default"] if no tags
	originalTags := make([]string, len(op.Tags))
	copy(originalTags, op.Tags)
	if len(originalTags) == 0 {
		originalTags = []string{DefaultTag}
	}

	params := collectParams(conv, item, op, itemPath, opPath)
	params = append(params, extractRequestBody(conv, op, opPath)...)

	servers := op.Servers
	if servers == nil {
		servers = &item.Servers
	}
	var irServers []ir.IRServer
	for _, s := range *servers {
		if s != nil {
			irServers = append(irServers, ir.IRServer{URL: s.URL, Description: s.Description})
		}
	}

	return ir.IROperation{
		OperationID:  op.OperationID,
		Method:       method,
		Path:         path,
		Tag:          originalTags[0],
		OriginalTags: originalTags,
		Summary:      op.Summary,
		Description:  op.Description,
		Deprecated:   op.Deprecated,
		Params:       params,
		Response:     extractResponse(conv, op, opPath),
		Servers:      irServers,
	}
}

// collectParams extracts parameters in declared order. Path-level parameters
// come first unless the operation overrides them.
func collectParams(conv *schemaConverter, item *openapi3.PathItem, op *openapi3.Operation, itemPath, opPath string) []ir.IRParam {
	overridden := map[string]bool{}
	for _, pr := range op.Parameters {
		if pr != nil && pr.Value != nil {
			overridden[pr.Value.In+":"+pr.Value.Name] = true
		}
	}
	var out []ir.IRParam
	add := func(pr *openapi3.ParameterRef, path string) {
		if pr == nil || pr.Value == nil {
			return
		}
		p := pr.Value
		param := ir.IRParam{
			Name:        p.Name,
			In:          p.In,
			Required:    p.Required || p.In == openapi3.ParameterInPath,
			Schema:      conv.convert(p.Schema, openapi.Child(path, "schema"), ""),
			Description: p.Description,
			Example:     p.Example,
			Style:       p.Style,
			Explode:     p.Explode,
		}
		if param.Example == nil && len(p.Examples) > 0 {
			param.Example = firstExample(p.Examples)
		}
		out = append(out, param)
	}
	for i, pr := range item.Parameters {
		if pr != nil && pr.Value != nil && overridden[pr.Value.In+":"+pr.Value.Name] {
			continue
		}
		add(pr, openapi.Child(itemPath, "parameters", fmt.Sprint(i)))
	}
	for i, pr := range op.Parameters {
		add(pr, openapi.Child(opPath, "parameters", fmt.Sprint(i)))
	}
	return out
}

// firstExample returns the value of the first named example, by name
func firstExample(examples openapi3.Examples) any {
	names := make([]string, 0, len(examples))
	for n := range examples {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		if ex := examples[n]; ex != nil && ex.Value != nil && ex.Value.Value != nil {
			return ex.Value.Value
		}
	}
	return nil
}

// extractRequestBody turns a request body into trailing parameters: one body
// parameter for JSON and other payloads, one parameter per property for form
// encodings.
func extractRequestBody(conv *schemaConverter, op *openapi3.Operation, opPath string) []ir.IRParam {
	if op.RequestBody == nil || op.RequestBody.Value == nil {
		return nil
	}
	rb := op.RequestBody.Value
	contentPath := openapi.Child(opPath, "requestBody", "content")
	owner := op.OperationID + "_request"

	for _, ct := range []string{"application/x-www-form-urlencoded", "multipart/form-data"} {
		media, ok := rb.Content[ct]
		if !ok || media.Schema == nil {
			continue
		}
		// Form fields are spread into parameters even when the schema is a reference
		formPath := openapi.Child(contentPath, ct, "schema")
		if media.Schema.Ref != "" {
			formPath = openapi.Child("#/components/schemas", refName(media.Schema.Ref))
		}
		schema := conv.convert(&openapi3.SchemaRef{Value: media.Schema.Value}, formPath, "")
		if schema.Kind != ir.IRKindObject {
			break
		}
		params := make([]ir.IRParam, 0, len(schema.Properties))
		for _, f := range schema.Properties {
			params = append(params, ir.IRParam{
				Name:        f.Name,
				In:          ir.InFormData,
				Required:    f.Required,
				Schema:      *f.Type,
				Description: f.Annotations.Description,
			})
		}
		return params
	}

	ct, media := pickMedia(rb.Content)
	if media == nil {
		return nil
	}
	schema := conv.nested(media.Schema, openapi.Child(contentPath, ct, "schema"), owner)
	name := "body"
	if schema.Kind == ir.IRKindRef {
		name = schema.Ref
	}
	return []ir.IRParam{{
		Name:        name,
		In:          ir.InBody,
		Required:    rb.Required,
		Schema:      schema,
		Description: rb.Description,
		Example:     media.Example,
	}}
}

// pickMedia prefers application/json, then the first content type by name
func pickMedia(content openapi3.Content) (string, *openapi3.MediaType) {
	if media, ok := content["application/json"]; ok && media != nil {
		return "application/json", media
	}
	types := make([]string, 0, len(content))
	for ct := range content {
		types = append(types, ct)
	}
	sort.Strings(types)
	for _, ct := range types {
		if content[ct] != nil {
			return ct, content[ct]
		}
	}
	return "", nil
}

// extractResponse returns the success response schema: 200, 201, then the
// lowest other 2xx code. nil means no content.
func extractResponse(conv *schemaConverter, op *openapi3.Operation, opPath string) *ir.IRSchema {
	if op.Responses == nil {
		return nil
	}
	m := op.Responses.Map()
	codes := []string{"200", "201"}
	var rest []string
	for code := range m {
		if len(code) == 3 && code[0] == '2' && code != "200" && code != "201" {
			rest = append(rest, code)
		}
	}
	sort.Strings(rest)
	codes = append(codes, rest...)

	for _, code := range codes {
		rr, ok := m[code]
		if !ok || rr == nil || rr.Value == nil {
			continue
		}
		ct, media := pickMedia(rr.Value.Content)
		if media == nil || media.Schema == nil {
			return nil
		}
		path := openapi.Child(opPath, "responses", code, "content", ct, "schema")
		schema := conv.nested(media.Schema, path, op.OperationID+"_"+code+"_response")
		return &schema
	}
	return nil
}

// buildStructuredModels converts components.schemas into a language-agnostic IR
func buildStructuredModels(doc *openapi.Document, conv *schemaConverter) []ir.IRModelDef {
	out := []ir.IRModelDef{}
	if doc.Components == nil || doc.Components.Schemas == nil {
		return out
	}
	names := make([]string, 0, len(doc.Components.Schemas))
	for name := range doc.Components.Schemas {
		names = append(names, name)
	}
	sort.Strings(names)

	// Pre-populate seen with component names to prevent inline duplicates
	for _, name := range names {
		conv.seen[name] = struct{}{}
	}

	for _, name := range names {
		out = append(out, conv.modelDef(name, doc.Components.Schemas[name]))
	}
	return out
}

// filterUnusedModelDefs removes ModelDefs that are not referenced by any operations
func filterUnusedModelDefs(filteredIR ir.IR, allModelDefs []ir.IRModelDef) []ir.IRModelDef {
	modelDefMap := make(map[string]ir.IRModelDef)
	for _, md := range allModelDefs {
		modelDefMap[md.Name] = md
	}

	referenced := make(map[string]bool)

	var markModel func(name string)
	var collectRefs func(schema ir.IRSchema)
	markModel = func(name string) {
		if name == "" || referenced[name] {
			return
		}
		referenced[name] = true
		if md, ok := modelDefMap[name]; ok {
			collectRefs(md.Schema)
			markModel(md.Parent)
			for _, iface := range md.Interfaces {
				markModel(iface)
			}
		}
	}
	collectRefs = func(schema ir.IRSchema) {
		if schema.Kind == ir.IRKindRef {
			markModel(schema.Ref)
		}
		if schema.Items != nil {
			collectRefs(*schema.Items)
		}
		if schema.AdditionalProperties != nil {
			collectRefs(*schema.AdditionalProperties)
		}
		for _, group := range [][]*ir.IRSchema{schema.OneOf, schema.AnyOf, schema.AllOf} {
			for _, sub := range group {
				if sub != nil {
					collectRefs(*sub)
				}
			}
		}
		for _, field := range schema.Properties {
			if field.Type != nil {
				collectRefs(*field.Type)
			}
		}
	}

	for _, service := range filteredIR.Services {
		for _, op := range service.Operations {
			for _, param := range op.Params {
				collectRefs(param.Schema)
			}
			if op.Response != nil {
				collectRefs(*op.Response)
			}
		}
	}

	filtered := make([]ir.IRModelDef, 0)
	for _, md := range allModelDefs {
		if referenced[md.Name] {
			filtered = append(filtered, md)
		}
	}
	return filtered
}
