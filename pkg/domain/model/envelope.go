package model

import (
	"encoding/json"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
)

// Envelope is the uniform result wrapper returned by every action
// invocation, regardless of transport.
type Envelope struct {
	Content []Content `json:"content"`
}

type Content struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

func NewEnvelope(texts ...string) *Envelope {
	contents := make([]Content, 0, len(texts))
	for _, text := range texts {
		contents = append(contents, Content{Type: "text", Text: text})
	}
	return &Envelope{Content: contents}
}

func NewEnvelopef(format string, args ...any) *Envelope {
	return NewEnvelope(fmt.Sprintf(format, args...))
}

// NewJSONEnvelope renders a structured object as a readable text block
// below the given message. Structured results are never returned as
// opaque binary.
func NewJSONEnvelope(msg string, v any) (*Envelope, error) {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to render result object")
	}
	return NewEnvelope(msg + "\n" + string(raw)), nil
}

// Text returns the first text block, or an empty string for an empty
// envelope.
func (x *Envelope) Text() string {
	if len(x.Content) == 0 {
		return ""
	}
	return x.Content[0].Text
}
