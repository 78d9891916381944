// Package normalizer turns raw catalog documents into Pokemon entities.
package normalizer

import (
	"fmt"
	"io"

	"pokedex/pkg/pokemon"
)

// Processor validates and transforms catalog documents.
type Processor struct {
	validator   *Validator
	transformer *Transformer
}

// NewProcessor creates a new processor instance.
func NewProcessor() *Processor {
	return &Processor{
		validator:   NewValidator(),
		transformer: NewTransformer(),
	}
}

// Process transforms a decoded document into a Pokemon.
func (p *Processor) Process(doc Document) (*pokemon.Pokemon, error) {
	if err := p.validator.Validate(doc); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	entity, err := p.transformer.Transform(doc)
	if err != nil {
		return nil, fmt.Errorf("transformation failed: %w", err)
	}

	return entity, nil
}

// ProcessJSON decodes a JSON body and processes it.
func (p *Processor) ProcessJSON(r io.Reader) (*pokemon.Pokemon, error) {
	doc, err := Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode failed: %w", err)
	}

	return p.Process(doc)
}
