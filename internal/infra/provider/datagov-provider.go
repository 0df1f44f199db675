package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"agri-advice/internal/domain/apperr"
	"agri-advice/internal/domain/dto"
	"agri-advice/internal/infra/logger"
)

// paramScanLimit bounds the dataset scan used to derive valid filter values.
const paramScanLimit = 5000

// DataGovProvider queries the data.gov.in mandi price dataset.
type DataGovProvider struct {
	Logger     *logger.Logger
	HttpClient *http.Client
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
}

func NewDataGovProvider(log *logger.Logger, httpClient *http.Client, baseURL, apiKey string, timeout time.Duration) *DataGovProvider {
	return &DataGovProvider{Logger: log, HttpClient: httpClient, BaseURL: baseURL, APIKey: apiKey, Timeout: timeout}
}

func (p *DataGovProvider) Enabled() bool {
	return p.APIKey != ""
}

type dataGovResponse struct {
	Total   int64             `json:"total"`
	Records []dto.PriceRecord `json:"records"`
}

// Records runs a filtered, paginated price query.
func (p *DataGovProvider) Records(ctx context.Context, query dto.PriceQuery) (dto.PricePage, error) {
	params := url.Values{}
	params.Set("filters[commodity]", query.Commodity)
	params.Set("filters[state]", query.State)
	params.Set("filters[market]", query.Market)
	if query.Variety != "" {
		params.Set("filters[variety]", query.Variety)
	}
	if query.ArrivalDate != "" {
		params.Set("filters[arrival_date]", query.ArrivalDate)
	}
	params.Set("offset", strconv.FormatInt(query.Offset, 10))
	params.Set("limit", strconv.FormatInt(query.Limit, 10))

	parsed, err := p.fetch(ctx, params)
	if err != nil {
		return dto.PricePage{}, err
	}

	return dto.PricePage{
		Records: parsed.Records,
		Total:   parsed.Total,
		Offset:  query.Offset,
		Limit:   query.Limit,
	}, nil
}

// AllRecords scans the dataset with the given filters, capped at the
// parameter-scan limit. Used to derive valid commodities, states and markets.
func (p *DataGovProvider) AllRecords(ctx context.Context, filters map[string]string) ([]dto.PriceRecord, error) {
	params := url.Values{}
	for field, value := range filters {
		params.Set("filters["+field+"]", value)
	}
	params.Set("limit", strconv.Itoa(paramScanLimit))

	parsed, err := p.fetch(ctx, params)
	if err != nil {
		return nil, err
	}
	return parsed.Records, nil
}

func (p *DataGovProvider) fetch(ctx context.Context, params url.Values) (dataGovResponse, error) {
	params.Set("api-key", p.APIKey)
	params.Set("format", "json")

	ctx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return dataGovResponse{}, apperr.FromProvider(err, "prices", 0, "failed to build prices request")
	}

	res, err := p.HttpClient.Do(req)
	if err != nil {
		p.Logger.Error(fmt.Sprintf("Prices request failed: %v", err))
		return dataGovResponse{}, transportFailure(err, "prices")
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return dataGovResponse{}, apperr.FromProvider(err, "prices", 0, "failed to read prices response")
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		p.Logger.Error(fmt.Sprintf("Prices unexpected status %s response_body %s", res.Status, string(body)))
		return dataGovResponse{}, statusFailure("prices", res.StatusCode, body)
	}

	var parsed dataGovResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return dataGovResponse{}, apperr.FromProvider(err, "prices", 0, "failed to decode prices response")
	}

	p.Logger.Info(fmt.Sprintf("Prices fetched, total %d, returned %d", parsed.Total, len(parsed.Records)))
	return parsed, nil
}
