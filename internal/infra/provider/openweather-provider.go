package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"agri-advice/internal/domain/apperr"
	"agri-advice/internal/domain/dto"
	"agri-advice/internal/infra/logger"
)

// OpenWeatherProvider fetches current conditions from OpenWeather. The
// temperature arrives in Kelvin unless the query asks for another unit.
type OpenWeatherProvider struct {
	Logger     *logger.Logger
	HttpClient *http.Client
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
}

func NewOpenWeatherProvider(log *logger.Logger, httpClient *http.Client, baseURL, apiKey string, timeout time.Duration) *OpenWeatherProvider {
	return &OpenWeatherProvider{Logger: log, HttpClient: httpClient, BaseURL: baseURL, APIKey: apiKey, Timeout: timeout}
}

func (p *OpenWeatherProvider) Current(ctx context.Context, query dto.WeatherQuery) (dto.WeatherData, error) {
	params := url.Values{}
	params.Set("appid", p.APIKey)
	if query.City != "" {
		params.Set("q", query.City)
	} else {
		params.Set("lat", query.Lat)
		params.Set("lon", query.Lon)
	}
	if query.Units != "" {
		params.Set("units", query.Units)
	}

	ctx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.BaseURL+"/weather?"+params.Encode(), nil)
	if err != nil {
		return dto.WeatherData{}, apperr.FromProvider(err, "weather", 0, "failed to build weather request")
	}

	res, err := p.HttpClient.Do(req)
	if err != nil {
		p.Logger.Error(fmt.Sprintf("Weather request failed: %v", err))
		return dto.WeatherData{}, transportFailure(err, "weather")
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return dto.WeatherData{}, apperr.FromProvider(err, "weather", 0, "failed to read weather response")
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		p.Logger.Error(fmt.Sprintf("Weather unexpected status %s response_body %s", res.Status, string(body)))
		return dto.WeatherData{}, statusFailure("weather", res.StatusCode, body)
	}

	var data dto.WeatherData
	if err := json.Unmarshal(body, &data); err != nil {
		return dto.WeatherData{}, apperr.FromProvider(err, "weather", 0, "failed to decode weather response")
	}

	p.Logger.Info(fmt.Sprintf("Weather fetched for %s, temp %.2f", data.Name, data.Main.Temp))
	return data, nil
}
