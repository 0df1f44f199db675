package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"agri-advice/internal/domain/apperr"
	"agri-advice/internal/infra/logger"
)

// PlantNetProvider proxies photos to the PlantNet identification API and
// passes the provider's JSON result through untouched.
type PlantNetProvider struct {
	Logger     *logger.Logger
	HttpClient *http.Client
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
}

func NewPlantNetProvider(log *logger.Logger, httpClient *http.Client, baseURL, apiKey string, timeout time.Duration) *PlantNetProvider {
	return &PlantNetProvider{Logger: log, HttpClient: httpClient, BaseURL: baseURL, APIKey: apiKey, Timeout: timeout}
}

func (p *PlantNetProvider) Identify(ctx context.Context, photoPath string) (json.RawMessage, error) {
	if p.APIKey == "" {
		return nil, apperr.FromProvider(nil, "plantid", http.StatusServiceUnavailable, "plant identification is not configured")
	}

	file, err := os.Open(photoPath)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.KindInvalidInput, http.StatusBadRequest, "could not read uploaded photo")
	}
	defer file.Close()

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	part, err := form.CreateFormFile("images", filepath.Base(photoPath))
	if err != nil {
		return nil, apperr.FromProvider(err, "plantid", 0, "failed to build identification request")
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, apperr.FromProvider(err, "plantid", 0, "failed to build identification request")
	}
	form.WriteField("organs", "auto")
	if err := form.Close(); err != nil {
		return nil, apperr.FromProvider(err, "plantid", 0, "failed to build identification request")
	}

	ctx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	endpoint := p.BaseURL + "?api-key=" + url.QueryEscape(p.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		return nil, apperr.FromProvider(err, "plantid", 0, "failed to build identification request")
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	res, err := p.HttpClient.Do(req)
	if err != nil {
		p.Logger.Error(fmt.Sprintf("PlantNet request failed: %v", err))
		return nil, transportFailure(err, "plantid")
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, apperr.FromProvider(err, "plantid", 0, "failed to read identification response")
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		p.Logger.Error(fmt.Sprintf("PlantNet unexpected status %s response_body %s", res.Status, string(body)))
		return nil, statusFailure("plantid", res.StatusCode, body)
	}

	return json.RawMessage(body), nil
}
