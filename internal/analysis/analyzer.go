package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/DjapsSparrow/Kine-siologie/internal/config"
)

// Analyzer sends protocol document text to the configured analysis
// endpoint and returns the structured analysis text. The endpoint is an
// opaque external service; this client only knows text in, text out.
type Analyzer struct {
	url    string
	apiKey string
	http   *http.Client
}

var ErrNotConfigured = errors.New("analysis endpoint not configured")

func New(cfg *config.Config) *Analyzer {
	return &Analyzer{
		url:    cfg.AnalysisURL,
		apiKey: cfg.AnalysisKey,
		http:   &http.Client{Timeout: 60 * time.Second},
	}
}

type analyzeRequest struct {
	Content string `json:"content"`
}

type analyzeResponse struct {
	Analysis string `json:"analysis"`
	Error    string `json:"error"`
}

func (a *Analyzer) Analyze(ctx context.Context, content string) (string, error) {
	if a.url == "" {
		return "", ErrNotConfigured
	}

	body, err := json.Marshal(analyzeRequest{Content: content})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if a.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+a.apiKey)
	}

	resp, err := a.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var parsed analyzeResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		if parsed.Error != "" {
			return "", fmt.Errorf("analysis failed: %s", parsed.Error)
		}
		return "", fmt.Errorf("analysis failed: status %d", resp.StatusCode)
	}

	return parsed.Analysis, nil
}
