package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agri-advice/internal/domain/apperr"
	"agri-advice/internal/domain/dto"
)

func TestWeatherCurrentByCity(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		json.NewEncoder(w).Encode(map[string]interface{}{
			"weather": []map[string]string{{"description": "clear sky"}},
			"main":    map[string]float64{"temp": 300.15, "humidity": 62},
			"name":    "Bangalore",
		})
	}))
	defer server.Close()

	p := NewOpenWeatherProvider(testProviderLogger(), server.Client(), server.URL, "ow-key", 5*time.Second)
	data, err := p.Current(context.Background(), dto.WeatherQuery{City: "Bangalore"})

	require.NoError(t, err)
	assert.Equal(t, "ow-key", gotQuery.Get("appid"))
	assert.Equal(t, "Bangalore", gotQuery.Get("q"))
	assert.Empty(t, gotQuery.Get("units"))
	require.Len(t, data.Weather, 1)
	assert.Equal(t, "clear sky", data.Weather[0].Description)
	assert.InDelta(t, 300.15, data.Main.Temp, 0.001)
}

func TestWeatherCurrentByCoordinatesWithUnits(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		json.NewEncoder(w).Encode(map[string]interface{}{"name": "Mysuru"})
	}))
	defer server.Close()

	p := NewOpenWeatherProvider(testProviderLogger(), server.Client(), server.URL, "ow-key", 5*time.Second)
	_, err := p.Current(context.Background(), dto.WeatherQuery{Lat: "12.29", Lon: "76.64", Units: "metric"})

	require.NoError(t, err)
	assert.Equal(t, "12.29", gotQuery.Get("lat"))
	assert.Equal(t, "76.64", gotQuery.Get("lon"))
	assert.Equal(t, "metric", gotQuery.Get("units"))
	assert.Empty(t, gotQuery.Get("q"))
}

func TestWeatherCurrentNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"cod":"404","message":"city not found"}`, http.StatusNotFound)
	}))
	defer server.Close()

	p := NewOpenWeatherProvider(testProviderLogger(), server.Client(), server.URL, "ow-key", 5*time.Second)
	_, err := p.Current(context.Background(), dto.WeatherQuery{City: "Nowhere"})

	require.Error(t, err)
	assert.Equal(t, apperr.KindProviderError, apperr.KindOf(err))
	assert.Equal(t, http.StatusNotFound, apperr.StatusOf(err))
}
