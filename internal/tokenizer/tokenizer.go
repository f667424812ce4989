// Package tokenizer estimates token counts for assembled report text.
package tokenizer

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

// DefaultModelName is the tokenizer model used when none is configured.
const DefaultModelName = "gpt-4o"

// Counter estimates the number of model tokens in a piece of text.
type Counter interface {
	Count(text string) int
	Model() string
}

// OpenAICounter counts tokens with the tiktoken encoding of an OpenAI model.
type OpenAICounter struct {
	encoding  *tiktoken.Tiktoken
	modelName string
}

// NewCounter resolves the tiktoken encoding for the given model name.
func NewCounter(modelName string) (*OpenAICounter, error) {
	if modelName == "" {
		modelName = DefaultModelName
	}
	encoding, encodingError := tiktoken.EncodingForModel(modelName)
	if encodingError != nil {
		return nil, fmt.Errorf("resolving tokenizer encoding for model %s: %w", modelName, encodingError)
	}
	return &OpenAICounter{encoding: encoding, modelName: modelName}, nil
}

// Count returns the token count of text under the counter's encoding.
func (counter *OpenAICounter) Count(text string) int {
	return len(counter.encoding.Encode(text, nil, nil))
}

// Model returns the resolved model name.
func (counter *OpenAICounter) Model() string {
	return counter.modelName
}

var _ Counter = (*OpenAICounter)(nil)
