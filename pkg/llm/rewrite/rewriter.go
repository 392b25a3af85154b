package rewrite

import (
	"context"
	"strings"
	"time"

	"career-path-be/internal/pkg/logger"
	"career-path-be/pkg/llm"
)

// systemPrompt freezes the facts: the model may only restyle text already
// verified upstream, never add to it.
const systemPrompt = `You are a helpful career advisor assistant.
Rewrite the following verified career information in a friendly, conversational tone.

CRITICAL RULES:
1. DO NOT add new facts or steps
2. DO NOT change numbers or requirements
3. Only rephrase for clarity
4. Keep all factual content intact
5. Make it sound natural and encouraging
`

// Rewriter wraps an LLM provider with a hard timeout and fail-open-to-original
// semantics. On any failure the caller gets back exactly the text it passed in.
type Rewriter struct {
	provider llm.LLMProvider
	timeout  time.Duration
	log      logger.ILogger
}

func New(provider llm.LLMProvider, timeout time.Duration, log logger.ILogger) *Rewriter {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Rewriter{
		provider: provider,
		timeout:  timeout,
		log:      log,
	}
}

// Rewrite restyles answer text. The bool reports whether the rewrite was
// applied; false means the original text is returned untouched. Failures are
// logged server-side only and never surfaced to the caller.
func (r *Rewriter) Rewrite(ctx context.Context, text string) (string, bool) {
	if r == nil || r.provider == nil || text == "" {
		return text, false
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	history := []llm.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: "Rewrite this in simple, encouraging language:\n\n" + text},
	}

	rewritten, err := r.provider.Chat(ctx, history, llm.WithTemperature(0.3))
	if err != nil {
		if r.log != nil {
			r.log.Warn("rewrite", "rewrite failed, using original answer", map[string]interface{}{
				"error": err.Error(),
			})
		}
		return text, false
	}

	rewritten = strings.TrimSpace(rewritten)
	if rewritten == "" {
		return text, false
	}

	return rewritten, true
}
