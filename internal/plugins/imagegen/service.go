package imagegen

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"mime"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/keyxmakerx/cardstudio/internal/apperror"
)

// Limits for GET /api/generate-design/history.
const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 200
)

// maxErrorMessage bounds how much upstream error text reaches the client.
const maxErrorMessage = 500

// ImageService defines the contract for proxied image generation.
type ImageService interface {
	// Generate resolves the prompt, serves it from cache when possible and
	// otherwise calls the model.
	Generate(ctx context.Context, input GenerateInput) (*Result, error)

	// History returns recent generation log entries.
	History(ctx context.Context, limit int) ([]LogEntry, error)
}

// imageService implements ImageService. The cache and log repository are
// optional; a nil value disables that concern.
type imageService struct {
	client   Client
	cache    Cache
	cacheTTL time.Duration
	logs     LogRepository
	now      func() time.Time
}

// NewImageService creates a new image service.
func NewImageService(client Client, cache Cache, cacheTTL time.Duration, logs LogRepository) ImageService {
	return &imageService{
		client:   client,
		cache:    cache,
		cacheTTL: cacheTTL,
		logs:     logs,
		now:      time.Now,
	}
}

// NormalizePrompt trims the prompt and substitutes DefaultPrompt for an
// empty one. Prompts longer than MaxPromptRunes are rejected.
func NormalizePrompt(prompt string) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return DefaultPrompt, nil
	}
	if utf8.RuneCountInString(prompt) > MaxPromptRunes {
		return "", apperror.NewValidation(fmt.Sprintf("prompt must be at most %d characters", MaxPromptRunes))
	}
	return prompt, nil
}

// PromptHash is the hex SHA-256 of a normalized prompt.
func PromptHash(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return hex.EncodeToString(sum[:])
}

// generateFailedMessage is returned when the model cannot be reached.
const generateFailedMessage = "Failed to generate design"

// Generate serves one prompt.
func (s *imageService) Generate(ctx context.Context, input GenerateInput) (*Result, error) {
	prompt, err := NormalizePrompt(input.Prompt)
	if err != nil {
		return nil, err
	}
	hash := PromptHash(prompt)
	start := s.now()

	entry := &LogEntry{
		PromptHash:    hash,
		PromptPreview: preview(prompt),
		RemoteIP:      input.RemoteIP,
	}

	if cached := s.cached(ctx, hash); cached != nil {
		entry.Outcome = OutcomeCacheHit
		entry.StatusCode = cached.StatusCode
		entry.ContentType = cached.ContentType
		s.record(ctx, entry, start)
		return &Result{ContentType: cached.ContentType, Body: cached.Body, Cached: true}, nil
	}

	res, err := s.client.Generate(ctx, prompt)
	if err != nil {
		entry.Outcome = OutcomeTransportError
		entry.StatusCode = 0
		s.record(ctx, entry, start)
		return nil, apperror.NewInternalMessage(generateFailedMessage, err)
	}

	entry.StatusCode = res.StatusCode
	entry.ContentType = res.ContentType

	if !res.OK() {
		entry.Outcome = OutcomeUpstreamError
		s.record(ctx, entry, start)
		return nil, apperror.NewUpstream(res.StatusCode, upstreamMessage(res.Body))
	}

	if isJSON(res.ContentType) && !json.Valid(res.Body) {
		entry.Outcome = OutcomeUpstreamError
		s.record(ctx, entry, start)
		return nil, apperror.NewBadGateway(generateFailedMessage, fmt.Errorf("upstream returned malformed JSON"))
	}

	entry.Outcome = OutcomeSuccess
	s.record(ctx, entry, start)
	s.store(ctx, hash, res)

	return &Result{ContentType: res.ContentType, Body: res.Body}, nil
}

// History returns up to limit recent log entries.
func (s *imageService) History(ctx context.Context, limit int) ([]LogEntry, error) {
	if s.logs == nil {
		return []LogEntry{}, nil
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}

	entries, err := s.logs.Recent(ctx, limit)
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("listing generation history: %w", err))
	}
	if entries == nil {
		entries = []LogEntry{}
	}
	return entries, nil
}

// cached returns a cache hit or nil. Cache failures are logged and treated
// as a miss.
func (s *imageService) cached(ctx context.Context, hash string) *UpstreamResult {
	if s.cache == nil || s.cacheTTL <= 0 {
		return nil
	}
	res, err := s.cache.Get(ctx, hash)
	if err != nil {
		slog.Warn("image cache read failed", slog.String("prompt_hash", hash), slog.Any("error", err))
		return nil
	}
	return res
}

// store caches a successful response. Failures are logged only.
func (s *imageService) store(ctx context.Context, hash string, res *UpstreamResult) {
	if s.cache == nil || s.cacheTTL <= 0 {
		return
	}
	if err := s.cache.Set(ctx, hash, res, s.cacheTTL); err != nil {
		slog.Warn("image cache write failed", slog.String("prompt_hash", hash), slog.Any("error", err))
	}
}

// record writes the log entry. Failures are logged only so a broken
// database never blocks generation.
func (s *imageService) record(ctx context.Context, entry *LogEntry, start time.Time) {
	entry.LatencyMS = s.now().Sub(start).Milliseconds()

	slog.Info("image generation",
		slog.String("outcome", string(entry.Outcome)),
		slog.Int("status", entry.StatusCode),
		slog.Int64("latency_ms", entry.LatencyMS),
		slog.String("prompt_hash", entry.PromptHash),
	)

	if s.logs == nil {
		return
	}
	if err := s.logs.Log(ctx, entry); err != nil {
		slog.Warn("failed to record image generation", slog.Any("error", err))
	}
}

// upstreamMessage extracts a client-facing message from an error body. JSON
// bodies of the form {"error": "..."} yield the inner message.
func upstreamMessage(body []byte) string {
	var envelope struct {
		Error string `json:"error"`
	}
	msg := strings.TrimSpace(string(body))
	if json.Unmarshal(body, &envelope) == nil && envelope.Error != "" {
		msg = envelope.Error
	}
	if msg == "" {
		return "image model request failed"
	}
	if len(msg) > maxErrorMessage {
		msg = strings.ToValidUTF8(msg[:maxErrorMessage], "")
	}
	return msg
}

// isJSON reports whether a content type is JSON.
func isJSON(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mt == "application/json" || strings.HasSuffix(mt, "+json")
}
