package provider

import (
	"context"
	"encoding/json"

	"agri-advice/internal/domain/dto"
)

// ISpeechProvider wraps the speech provider's transcription and synthesis
// endpoints. TextToSpeech returns the audio payload base64-encoded.
type ISpeechProvider interface {
	SpeechToText(ctx context.Context, audioPath, language string) (string, error)
	TextToSpeech(ctx context.Context, text, language string) (string, error)
}

// IWeatherProvider fetches current weather for a city or coordinate pair.
type IWeatherProvider interface {
	Current(ctx context.Context, query dto.WeatherQuery) (dto.WeatherData, error)
}

// IPricesProvider queries the commodity price dataset. Enabled reports
// whether an API key is configured; callers fall back to mock data when not.
type IPricesProvider interface {
	Enabled() bool
	Records(ctx context.Context, query dto.PriceQuery) (dto.PricePage, error)
	AllRecords(ctx context.Context, filters map[string]string) ([]dto.PriceRecord, error)
}

// IPlantIDProvider proxies a photo to the plant identification service.
type IPlantIDProvider interface {
	Identify(ctx context.Context, photoPath string) (json.RawMessage, error)
}
