package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agri-advice/internal/domain/apperr"
	"agri-advice/internal/domain/dto"
	"agri-advice/internal/infra/logger"
)

type fakeWeatherProvider struct {
	data dto.WeatherData
	err  error

	lastQuery dto.WeatherQuery
}

func (f *fakeWeatherProvider) Current(ctx context.Context, query dto.WeatherQuery) (dto.WeatherData, error) {
	f.lastQuery = query
	return f.data, f.err
}

type fakePricesProvider struct {
	enabled bool
	page    dto.PricePage
	pageErr error
	records []dto.PriceRecord
	allErr  error
}

func (f *fakePricesProvider) Enabled() bool { return f.enabled }

func (f *fakePricesProvider) Records(ctx context.Context, query dto.PriceQuery) (dto.PricePage, error) {
	return f.page, f.pageErr
}

func (f *fakePricesProvider) AllRecords(ctx context.Context, filters map[string]string) ([]dto.PriceRecord, error) {
	return f.records, f.allErr
}

type fakePlantIDProvider struct {
	result json.RawMessage
	err    error
}

func (f *fakePlantIDProvider) Identify(ctx context.Context, photoPath string) (json.RawMessage, error) {
	return f.result, f.err
}

func newExternalHandlers(t *testing.T, weather *fakeWeatherProvider, prices *fakePricesProvider) *ExternalHandlers {
	t.Helper()
	log := logger.NewLogger(context.Background(), "error", false)
	return NewExternalHandlers(log, weather, prices, &fakePlantIDProvider{}, t.TempDir())
}

func TestGetWeatherRequiresLocation(t *testing.T) {
	h := newExternalHandlers(t, &fakeWeatherProvider{}, &fakePricesProvider{})
	rec := httptest.NewRecorder()

	h.GetWeather(rec, httptest.NewRequest(http.MethodGet, "/api/external/weather", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetWeatherUsesMetricUnits(t *testing.T) {
	weather := &fakeWeatherProvider{data: dto.WeatherData{Name: "Bangalore"}}
	h := newExternalHandlers(t, weather, &fakePricesProvider{})
	rec := httptest.NewRecorder()

	h.GetWeather(rec, httptest.NewRequest(http.MethodGet, "/api/external/weather?city=Bangalore", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "metric", weather.lastQuery.Units)
	assert.Equal(t, "Bangalore", weather.lastQuery.City)
}

func TestGetWeatherLocationNotFound(t *testing.T) {
	weather := &fakeWeatherProvider{err: apperr.FromProvider(errors.New("city not found"), "weather", http.StatusNotFound, "weather returned status 404")}
	h := newExternalHandlers(t, weather, &fakePricesProvider{})
	rec := httptest.NewRecorder()

	h.GetWeather(rec, httptest.NewRequest(http.MethodGet, "/api/external/weather?city=Nowhere", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Location not found")
}

func TestGetPricesRequiresFilters(t *testing.T) {
	h := newExternalHandlers(t, &fakeWeatherProvider{}, &fakePricesProvider{enabled: true})
	rec := httptest.NewRecorder()

	h.GetPrices(rec, httptest.NewRequest(http.MethodGet, "/api/external/prices?commodity=wheat", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Commodity, state, and market are required")
}

func TestGetPricesRejectsBadArrivalDate(t *testing.T) {
	h := newExternalHandlers(t, &fakeWeatherProvider{}, &fakePricesProvider{enabled: true})
	rec := httptest.NewRecorder()
	target := "/api/external/prices?commodity=wheat&state=karnataka&market=bangalore&arrival_date=2026-08-31"

	h.GetPrices(rec, httptest.NewRequest(http.MethodGet, target, nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "DD/MM/YYYY")
}

func TestGetPricesFallsBackToMockWhenDisabled(t *testing.T) {
	h := newExternalHandlers(t, &fakeWeatherProvider{}, &fakePricesProvider{enabled: false})
	rec := httptest.NewRecorder()
	target := "/api/external/prices?commodity=wheat&state=karnataka&market=bangalore"

	h.GetPrices(rec, httptest.NewRequest(http.MethodGet, target, nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var page dto.PricePage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	require.Len(t, page.Records, 1)
	assert.Equal(t, "Wheat", page.Records[0].Commodity)
	assert.Equal(t, "Karnataka", page.Records[0].State)
	assert.Equal(t, "Bangalore", page.Records[0].Market)
	assert.Equal(t, json.Number("1250"), page.Records[0].ModalPrice)
}

func TestGetPricesFallsBackToMockOnLookupFailure(t *testing.T) {
	prices := &fakePricesProvider{enabled: true, pageErr: errors.New("dataset down")}
	h := newExternalHandlers(t, &fakeWeatherProvider{}, prices)
	rec := httptest.NewRecorder()
	target := "/api/external/prices?commodity=wheat&state=karnataka&market=bangalore"

	h.GetPrices(rec, httptest.NewRequest(http.MethodGet, target, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Wheat")
}

func TestGetValidParamsDistinctSorted(t *testing.T) {
	prices := &fakePricesProvider{enabled: true, records: []dto.PriceRecord{
		{Commodity: "wheat", State: "karnataka", Market: "bangalore", Variety: "local"},
		{Commodity: "rice", State: "karnataka", Market: "mysuru", Variety: "local"},
		{Commodity: "wheat", State: "tamil nadu", Market: "chennai", Variety: "hybrid"},
	}}
	h := newExternalHandlers(t, &fakeWeatherProvider{}, prices)
	rec := httptest.NewRecorder()

	h.GetValidParams(rec, httptest.NewRequest(http.MethodGet, "/api/external/valid-params", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var params dto.ValidParams
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &params))
	assert.Equal(t, []string{"Rice", "Wheat"}, params.Commodities)
	assert.Equal(t, []string{"Karnataka", "Tamil Nadu"}, params.States)
	assert.Equal(t, []string{"Bangalore", "Chennai", "Mysuru"}, params.Markets)
	assert.Equal(t, []string{"Hybrid", "Local"}, params.Varieties)
}

func TestGetValidMarketsMockFallback(t *testing.T) {
	h := newExternalHandlers(t, &fakeWeatherProvider{}, &fakePricesProvider{enabled: false})
	rec := httptest.NewRecorder()

	h.GetValidMarkets(rec, httptest.NewRequest(http.MethodGet, "/api/external/valid-markets?state=karnataka&commodity=wheat", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Bangalore")
}
