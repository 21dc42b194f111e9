// Package render executes text/template templates against a code model tree.
// Templates get the sprig function library plus a few JSDoc helpers.
package render

import (
	"embed"
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/blimu-dev/jscodegen/pkg/codemodel"
)

//go:embed templates/*
var templatesFS embed.FS

// SummaryTemplate is the built-in template: JSDoc-annotated class skeletons
// for every model and API of a tree.
const SummaryTemplate = "summary.js.gotmpl"

// FuncMap returns the functions available to templates
func FuncMap() template.FuncMap {
	funcMap := sprig.TxtFuncMap()
	funcMap["jsdocType"] = jsdocType
	return funcMap
}

// jsdocType wraps a doc type in braces. An empty doc type renders as the
// JSDoc any type.
func jsdocType(docType string) string {
	if docType == "" {
		docType = "*"
	}
	return "{" + docType + "}"
}

// Summary renders the built-in template
func Summary(w io.Writer, tree *codemodel.Tree) error {
	content, err := templatesFS.ReadFile("templates/" + SummaryTemplate)
	if err != nil {
		return fmt.Errorf("failed to read template %s: %w", SummaryTemplate, err)
	}
	return Execute(w, SummaryTemplate, string(content), tree)
}

// File renders the template at path
func File(w io.Writer, path string, tree *codemodel.Tree) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read template %s: %w", path, err)
	}
	return Execute(w, path, string(content), tree)
}

// Execute parses text as a template named name and renders the tree with it
func Execute(w io.Writer, name, text string, tree *codemodel.Tree) error {
	tmpl, err := template.New(name).Funcs(FuncMap()).Option("missingkey=error").Parse(text)
	if err != nil {
		return fmt.Errorf("failed to parse template %s: %w", name, err)
	}
	if err := tmpl.Execute(w, tree); err != nil {
		return fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	return nil
}
