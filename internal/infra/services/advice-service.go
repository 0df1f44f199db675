package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"agri-advice/internal/domain/apperr"
	"agri-advice/internal/domain/dto"
	Iservices "agri-advice/internal/domain/interfaces/services"
	"agri-advice/internal/domain/locale"
	"agri-advice/internal/infra/logger"
	"agri-advice/internal/infra/provider"
)

// AdviceService runs the advice query pipeline: validate, transcribe,
// classify, resolve, record, synthesize. One sequential pass per request.
type AdviceService struct {
	Logger         *logger.Logger
	Speech         provider.ISpeechProvider
	Weather        provider.IWeatherProvider
	HistoryService Iservices.IHistoryService
	WeatherCity    string
}

func NewAdviceService(log *logger.Logger, speech provider.ISpeechProvider, weather provider.IWeatherProvider, historyService Iservices.IHistoryService, weatherCity string) *AdviceService {
	return &AdviceService{
		Logger:         log,
		Speech:         speech,
		Weather:        weather,
		HistoryService: historyService,
		WeatherCity:    weatherCity,
	}
}

// ProcessQuery turns a raw text or audio query into localized advice with
// synthesized audio. Validation failures pre-empt every external call; a
// history write failure is logged and never alters the outcome.
func (s *AdviceService) ProcessQuery(ctx context.Context, query dto.AdviceQuery) (dto.AdviceResult, error) {
	if strings.TrimSpace(query.Query) == "" && query.AudioPath == "" {
		return dto.AdviceResult{}, apperr.New(apperr.KindInvalidInput, http.StatusBadRequest,
			"Either text query or audio file is required")
	}

	transcript := query.Query
	if query.AudioPath != "" {
		if !locale.VoiceSupported(query.Language) {
			return dto.AdviceResult{}, apperr.New(apperr.KindUnsupportedLanguage, http.StatusBadRequest,
				"Unsupported language. Use hi-IN, kn-IN, or ta-IN for voice queries")
		}

		sttTranscript, err := s.Speech.SpeechToText(ctx, query.AudioPath, query.Language)
		if err != nil {
			return dto.AdviceResult{}, err
		}
		transcript = sttTranscript
	}

	if strings.TrimSpace(transcript) == "" {
		return dto.AdviceResult{}, apperr.New(apperr.KindEmptyTranscript, http.StatusBadRequest,
			"No valid query provided or audio could not be transcribed")
	}

	normalized := locale.Normalize(transcript)
	category := locale.Classify(normalized, query.Language)
	s.Logger.Info(fmt.Sprintf("Query classified as %s for language %s", category, query.Language))

	adviceText, err := s.resolve(ctx, query.Language, category)
	if err != nil {
		return dto.AdviceResult{}, err
	}

	if err := s.HistoryService.Record(ctx, query.UserID, transcript, adviceText); err != nil {
		s.Logger.Warn(fmt.Sprintf("History save failed for user %s: %v", query.UserID, err))
	}

	audio, err := s.Speech.TextToSpeech(ctx, adviceText, query.Language)
	if err != nil {
		return dto.AdviceResult{}, err
	}

	return dto.AdviceResult{AdviceText: adviceText, AudioBase64: audio}, nil
}

// Synthesize exposes the synthesis adapter for the standalone TTS endpoint.
func (s *AdviceService) Synthesize(ctx context.Context, text, language string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", apperr.New(apperr.KindInvalidInput, http.StatusBadRequest, "Text is required")
	}
	return s.Speech.TextToSpeech(ctx, text, language)
}

// resolve maps the category to response text. The weather category queries
// the fixed reference city; an unknown language downgrades to its default
// text, never a hard failure.
func (s *AdviceService) resolve(ctx context.Context, lang string, category locale.Category) (string, error) {
	if category == locale.CategoryWeather {
		data, err := s.Weather.Current(ctx, dto.WeatherQuery{City: s.WeatherCity})
		if err != nil {
			return "", apperr.Wrap(err, apperr.KindWeatherUnavailable, apperr.StatusOf(err),
				"Failed to fetch weather data")
		}

		description := ""
		if len(data.Weather) > 0 {
			description = data.Weather[0].Description
		}
		if text, ok := locale.WeatherResponse(lang, description, data.Main.Temp); ok {
			return text, nil
		}
		return locale.DefaultResponse(lang), nil
	}

	if text, ok := locale.Response(lang, category); ok {
		return text, nil
	}
	return locale.DefaultResponse(lang), nil
}
