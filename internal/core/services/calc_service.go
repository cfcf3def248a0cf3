package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"solarhub-portal/internal/config"
)

// CalcService proxies requests to the external renewable-energy
// calculation API. The formulas live entirely in that service.
type CalcService struct {
	baseURL string
	client  *http.Client
}

// NewCalcService creates a new calculation service client
func NewCalcService(cfg *config.Config) *CalcService {
	return &CalcService{
		baseURL: cfg.Calc.BaseURL,
		client: &http.Client{
			Timeout: time.Duration(cfg.Calc.TimeoutSeconds) * time.Second,
		},
	}
}

// CalcResult carries the upstream response verbatim
type CalcResult struct {
	StatusCode int
	Body       []byte
}

// Estimate forwards the request body to POST /calculate upstream
func (s *CalcService) Estimate(ctx context.Context, body []byte) (*CalcResult, error) {
	return s.forward(ctx, "/calculate", body)
}

// EstimateDetail forwards the request body to POST /calculate/detail upstream
func (s *CalcService) EstimateDetail(ctx context.Context, body []byte) (*CalcResult, error) {
	return s.forward(ctx, "/calculate/detail", body)
}

// forward relays a JSON body to the upstream path and returns the
// upstream status and body unmodified
func (s *CalcService) forward(ctx context.Context, path string, body []byte) (*CalcResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calculation service unreachable: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &CalcResult{StatusCode: resp.StatusCode, Body: respBody}, nil
}
