// Package imagegen proxies prompts to a hosted text-to-image model. Responses
// are cached in Redis by prompt hash and every call is recorded in the
// generation_log table so operators can see upstream health and cache
// effectiveness.
package imagegen

import (
	"strings"
	"time"
)

// DefaultPrompt is used when the client sends no prompt.
const DefaultPrompt = "professional modern business card design"

// MaxPromptRunes caps prompt length after trimming.
const MaxPromptRunes = 1000

// Outcome classifies one generation call. Values must match the
// generation_log.outcome ENUM.
type Outcome string

const (
	OutcomeSuccess        Outcome = "success"
	OutcomeCacheHit       Outcome = "cache_hit"
	OutcomeUpstreamError  Outcome = "upstream_error"
	OutcomeTransportError Outcome = "transport_error"
)

// UpstreamResult is a raw upstream response.
type UpstreamResult struct {
	StatusCode  int    `json:"status_code"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// OK reports whether the upstream answered with a 2xx status.
func (r *UpstreamResult) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Result is what the service hands back to the handler.
type Result struct {
	ContentType string
	Body        []byte
	Cached      bool
}

// GenerateRequest is the body of POST /api/generate-design. Prompt wins;
// without it the prompt is built from Card, and without either the
// default prompt is used.
type GenerateRequest struct {
	Prompt string      `json:"prompt"`
	Card   *PromptCard `json:"card,omitempty"`
}

// PromptCard is the subset of card data that shapes a generated prompt.
type PromptCard struct {
	Name    string `json:"name"`
	Company string `json:"company"`
}

// GenerateInput carries a request through the service.
type GenerateInput struct {
	Prompt   string
	RemoteIP string
}

// LogEntry is one row of generation_log. The preview and client IP can
// name a person, so they stay in the database and out of responses.
type LogEntry struct {
	ID            int64     `json:"id"`
	PromptHash    string    `json:"prompt_hash"`
	PromptPreview string    `json:"-"`
	Outcome       Outcome   `json:"outcome"`
	StatusCode    int       `json:"status_code"`
	ContentType   string    `json:"content_type"`
	LatencyMS     int64     `json:"latency_ms"`
	RemoteIP      string    `json:"-"`
	CreatedAt     time.Time `json:"created_at"`
}

// previewRunes is how much of a prompt is kept in the log.
const previewRunes = 120

// BuildPrompt returns the prompt the card editor sends for a card:
// "<name> business card with <company> logo and modern theme.", with
// "Professional" and "Company" standing in for blank fields.
func BuildPrompt(card PromptCard) string {
	name := strings.TrimSpace(card.Name)
	if name == "" {
		name = "Professional"
	}
	company := strings.TrimSpace(card.Company)
	if company == "" {
		company = "Company"
	}
	return name + " business card with " + company + " logo and modern theme."
}

// preview truncates a prompt for logging.
func preview(prompt string) string {
	r := []rune(prompt)
	if len(r) <= previewRunes {
		return prompt
	}
	return string(r[:previewRunes])
}
