package llm

import "context"

// DefaultTemperature is applied when a caller passes no temperature option.
const DefaultTemperature = 0.7

// Message is one entry of the chat exchange sent to a provider. Role is one
// of "system", "user" or "assistant".
type Message struct {
	Role    string
	Content string
}

// Options carries the per-call tuning knobs a provider may honor. The model
// itself is fixed when the provider is constructed.
type Options struct {
	Temperature float64
	MaxTokens   int
}

// Option mutates Options; see WithTemperature and WithMaxTokens.
type Option func(*Options)

func WithTemperature(temp float64) Option {
	return func(o *Options) { o.Temperature = temp }
}

func WithMaxTokens(n int) Option {
	return func(o *Options) { o.MaxTokens = n }
}

// Apply folds the given options over the defaults.
func Apply(opts ...Option) Options {
	o := Options{Temperature: DefaultTemperature}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// LLMProvider is the contract the answer rewriter needs from a language-model
// backend: one blocking chat completion per call.
type LLMProvider interface {
	Chat(ctx context.Context, history []Message, options ...Option) (string, error)
}
