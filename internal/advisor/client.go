package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"moments_pipeline/internal/domain"
)

// Config holds advisor client configuration.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client talks to the remote risk-scoring service. Scoring failures never
// propagate: callers always get an advisory, degraded to a safe default when
// the service is unreachable.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		logger:  logger.With("component", "advisor"),
	}
}

func (c *Client) Assess(ctx context.Context, req domain.AssessRequest) domain.Advisory {
	advisory, err := c.assess(ctx, req)
	if err != nil {
		c.logger.Warn("advisor unavailable, using safe default",
			"from", req.From,
			"error", err,
		)
		return SafeDefault()
	}
	return clamp(advisory)
}

func (c *Client) assess(ctx context.Context, req domain.AssessRequest) (domain.Advisory, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return domain.Advisory{}, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/assess", bytes.NewReader(body))
	if err != nil {
		return domain.Advisory{}, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return domain.Advisory{}, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Advisory{}, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var advisory domain.Advisory
	if err := json.NewDecoder(resp.Body).Decode(&advisory); err != nil {
		return domain.Advisory{}, fmt.Errorf("decode response: %w", err)
	}

	if advisory.UrgencyLevel == "" {
		advisory.UrgencyLevel = domain.UrgencyLow
	}

	return advisory, nil
}

// SafeDefault is the deterministic advisory used when the scorer is
// unavailable. Degraded distinguishes it from a genuine low-risk result.
func SafeDefault() domain.Advisory {
	return domain.Advisory{
		LanguageConfidence: 0.5,
		UrgencyLevel:       domain.UrgencyLow,
		Harm: domain.HarmSignals{
			Detected:   false,
			Confidence: 0,
			Type:       "none",
			Context:    "advisor unavailable",
		},
		Spam: domain.SpamIndicators{
			Detected:   false,
			Confidence: 0,
		},
		EscalationSuggested: false,
		Degraded:            true,
		Notes:               "advisor unavailable - using safe defaults",
	}
}

func clamp(a domain.Advisory) domain.Advisory {
	a.LanguageConfidence = clamp01(a.LanguageConfidence)
	a.Harm.Confidence = clamp01(a.Harm.Confidence)
	a.Spam.Confidence = clamp01(a.Spam.Confidence)
	return a
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
