package codemodel

import (
	"errors"
	"fmt"
)

// ErrAnnotationConflict is returned when a derived field that was already
// written is written again with a different value.
var ErrAnnotationConflict = errors.New("conflicting annotation write")

// Once holds a derived value that may be written exactly once per enrichment
// pass. Rewriting the same value is a no-op.
type Once[T comparable] struct {
	value T
	set   bool
}

// Set stores v, failing if a different value is already present.
func (o *Once[T]) Set(v T) error {
	if o.set {
		if o.value != v {
			return fmt.Errorf("%w: have %v, got %v", ErrAnnotationConflict, o.value, v)
		}
		return nil
	}
	o.value = v
	o.set = true
	return nil
}

// Get returns the stored value and whether it was written.
func (o Once[T]) Get() (T, bool) {
	return o.value, o.set
}

// Value returns the stored value, or the zero value when unset.
func (o Once[T]) Value() T {
	return o.value
}

// IsSet reports whether the value was written.
func (o Once[T]) IsSet() bool {
	return o.set
}

// MarshalYAML renders unset values as null.
func (o Once[T]) MarshalYAML() (any, error) {
	if !o.set {
		return nil, nil
	}
	return o.value, nil
}

// PropertyExt carries the derived facts for a model property.
type PropertyExt struct {
	DocType         Once[string] `yaml:"docType"`
	ExampleValue    Once[string] `yaml:"exampleValue"`
	HasMoreRequired Once[bool]   `yaml:"hasMoreRequired"`
}

// ParameterExt carries the derived facts for an operation parameter.
type ParameterExt struct {
	DocType      Once[string] `yaml:"docType"`
	ExampleValue Once[string] `yaml:"exampleValue"`
}

// OperationExt carries the derived facts for an operation.
type OperationExt struct {
	DocType           Once[string] `yaml:"docType"`
	ExampleValue      Once[string] `yaml:"exampleValue"`
	ArgList           Once[string] `yaml:"argList"`
	HasOptionalParams Once[bool]   `yaml:"hasOptionalParams"`
	// ReturnType is the return type with primitive names quoted for
	// runtime conversion, e.g. ['String'].
	ReturnType Once[string] `yaml:"returnType"`
}

// ModelExt carries the derived facts for a model.
type ModelExt struct {
	DocType      Once[string] `yaml:"docType"`
	ExampleValue Once[string] `yaml:"exampleValue"`

	// Required lists the model's own required properties in document order.
	Required []*Property `yaml:"required"`
	// AllRequired lists required properties across the inheritance chain.
	// It is the same list as Required when inheritance is disabled.
	AllRequired []*Property `yaml:"allRequired"`

	requiredSet bool
}

// SetRequired stores the required-property lists. It may be called once.
func (e *ModelExt) SetRequired(required, allRequired []*Property) error {
	if e.requiredSet {
		return fmt.Errorf("%w: required properties already recorded", ErrAnnotationConflict)
	}
	e.Required = required
	e.AllRequired = allRequired
	e.requiredSet = true
	return nil
}
