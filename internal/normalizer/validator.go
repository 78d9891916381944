package normalizer

import (
	"errors"
)

// ErrInvalidDataType is returned when the input is not a Document.
var ErrInvalidDataType = errors.New("invalid data type: expected normalizer.Document")

// requiredFields lists the top-level keys and the shape each must have.
var requiredFields = []struct {
	key  string
	kind string
}{
	{"id", "integer"},
	{"name", "string"},
	{"height", "number"},
	{"weight", "number"},
	{"base_experience", "integer"},
	{"stats", "array"},
	{"abilities", "array"},
	{"types", "array"},
	{"moves", "array"},
	{"sprites", "object"},
}

// Validator checks that a document carries every top-level field a Pokemon needs.
// Nested entries are checked by the Transformer as it walks them.
type Validator struct{}

// NewValidator creates a new validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate checks if data meets requirements.
func (v *Validator) Validate(data any) error {
	doc, ok := data.(Document)
	if !ok {
		return ErrInvalidDataType
	}

	for _, f := range requiredFields {
		var err error

		switch f.kind {
		case "integer":
			_, err = intField(doc, "", f.key)
		case "string":
			_, err = stringField(doc, "", f.key)
		case "number":
			_, err = floatField(doc, "", f.key)
		case "array":
			_, err = listField(doc, "", f.key)
		case "object":
			_, err = objectField(doc, "", f.key)
		}

		if err != nil {
			return err
		}
	}

	return nil
}
