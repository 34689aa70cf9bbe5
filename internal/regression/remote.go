package regression

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"betterrest-backend/config"
)

// InferenceRequest is the body posted to a remote inference service.
type InferenceRequest struct {
	Wake           float64 `json:"wake"`
	EstimatedSleep float64 `json:"estimatedSleep"`
	Coffee         float64 `json:"coffee"`
}

// InferenceResponse models the remote service's answer.
type InferenceResponse struct {
	Code        int     `json:"code"`
	Message     string  `json:"message,omitempty"`
	ActualSleep float64 `json:"actualSleep"`
}

// RemoteModel delegates inference to an HTTP service.
type RemoteModel struct {
	url     string
	headers map[string]string
	client  *http.Client
}

// NewRemoteModel creates a client for the configured inference service.
func NewRemoteModel(cfg config.RemoteConfig, logger *zap.SugaredLogger) *RemoteModel {
	var transport http.RoundTripper = &http.Transport{}
	if cfg.HTTPProxy != "" {
		proxyURL, err := url.Parse(cfg.HTTPProxy)
		if err != nil {
			logger.Warnf("invalid proxy URL %q: %v; inference requests will not use a proxy", cfg.HTTPProxy, err)
		} else {
			transport = &http.Transport{Proxy: http.ProxyURL(proxyURL)}
		}
	}

	return &RemoteModel{
		url:     cfg.URL,
		headers: cfg.Headers,
		client: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
	}
}

// Predict posts the features and returns the predicted actual sleep.
func (m *RemoteModel) Predict(ctx context.Context, wake, estimatedSleep, coffee float64) (float64, error) {
	jsonBody, err := json.Marshal(InferenceRequest{Wake: wake, EstimatedSleep: estimatedSleep, Coffee: coffee})
	if err != nil {
		return 0, fmt.Errorf("failed to marshal inference request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for key, value := range m.headers {
		req.Header.Set(key, value)
	}

	resp, err := m.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("received non-200 status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("failed to read response body: %w", err)
	}

	var inference InferenceResponse
	if err := json.Unmarshal(body, &inference); err != nil {
		return 0, fmt.Errorf("failed to unmarshal inference response: %w", err)
	}

	if inference.Code != 0 {
		return 0, fmt.Errorf("inference service returned code %d: %s", inference.Code, inference.Message)
	}

	return inference.ActualSleep, nil
}
