package openapi

import (
	"fmt"
	"net/url"
	"os"

	"github.com/getkin/kin-openapi/openapi3"
)

// Document is a parsed OpenAPI document together with the declaration order
// of its object properties, which the parsed form does not retain.
type Document struct {
	*openapi3.T
	PropertyOrder PropertyOrder
}

// LoadDocument loads an OpenAPI document from a local file path or an HTTP(S) URL
func LoadDocument(input string) (*Document, error) {
	loader := &openapi3.Loader{IsExternalRefsAllowed: true}
	return LoadDocumentWithLoader(loader, input)
}

// LoadDocumentWithLoader loads an OpenAPI document using a custom loader
func LoadDocumentWithLoader(loader *openapi3.Loader, input string) (*Document, error) {
	var (
		data     []byte
		location *url.URL
		err      error
	)
	// Try to parse as URL; if it looks like http(s), fetch via URL
	if u, perr := url.Parse(input); perr == nil && (u.Scheme == "http" || u.Scheme == "https") {
		location = u
		data, err = openapi3.DefaultReadFromURI(loader, u)
	} else {
		location = &url.URL{Path: input}
		data, err = os.ReadFile(input)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", input, err)
	}
	return loadData(loader, data, location)
}

// LoadDocumentFromData parses an in-memory YAML or JSON document
func LoadDocumentFromData(data []byte) (*Document, error) {
	loader := &openapi3.Loader{IsExternalRefsAllowed: true}
	return loadData(loader, data, nil)
}

func loadData(loader *openapi3.Loader, data []byte, location *url.URL) (*Document, error) {
	var (
		doc *openapi3.T
		err error
	)
	if location != nil {
		doc, err = loader.LoadFromDataWithPath(data, location)
	} else {
		doc, err = loader.LoadFromData(data)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing openapi document: %w", err)
	}
	order, err := ExtractPropertyOrder(data)
	if err != nil {
		return nil, err
	}
	return &Document{T: doc, PropertyOrder: order}, nil
}

// ValidateDocument validates an OpenAPI document
func ValidateDocument(input string) error {
	loader := &openapi3.Loader{IsExternalRefsAllowed: true}
	doc, err := LoadDocumentWithLoader(loader, input)
	if err != nil {
		return err
	}
	return doc.Validate(loader.Context)
}
