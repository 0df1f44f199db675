package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agri-advice/internal/domain/apperr"
	"agri-advice/internal/domain/dto"
	"agri-advice/internal/domain/locale"
	"agri-advice/internal/infra/logger"
)

const hindiPestAdvice = "आपकी फसल में कीड़े हैं। सुझाव: जैविक कीटनाशक का उपयोग करें, जैसे नीम का तेल।"

type fakeSpeech struct {
	transcript string
	sttErr     error
	audio      string
	ttsErr     error

	sttCalls    int
	ttsCalls    int
	lastTTSText string
	lastTTSLang string
}

func (f *fakeSpeech) SpeechToText(ctx context.Context, audioPath, language string) (string, error) {
	f.sttCalls++
	return f.transcript, f.sttErr
}

func (f *fakeSpeech) TextToSpeech(ctx context.Context, text, language string) (string, error) {
	f.ttsCalls++
	f.lastTTSText = text
	f.lastTTSLang = language
	return f.audio, f.ttsErr
}

type fakeWeather struct {
	data  dto.WeatherData
	err   error
	calls int
}

func (f *fakeWeather) Current(ctx context.Context, query dto.WeatherQuery) (dto.WeatherData, error) {
	f.calls++
	return f.data, f.err
}

type recordedEntry struct {
	userID   string
	query    string
	response string
}

type fakeHistory struct {
	recordErr error
	entries   []recordedEntry
}

func (f *fakeHistory) Record(ctx context.Context, userID, query, response string) error {
	f.entries = append(f.entries, recordedEntry{userID: userID, query: query, response: response})
	return f.recordErr
}

func (f *fakeHistory) List(ctx context.Context, userID string, offset, limit int64) (dto.HistoryPage, error) {
	return dto.HistoryPage{}, nil
}

func (f *fakeHistory) Delete(ctx context.Context, userID, id string) error {
	return nil
}

func newTestAdviceService(speech *fakeSpeech, weather *fakeWeather, history *fakeHistory) *AdviceService {
	log := logger.NewLogger(context.Background(), "error", false)
	return NewAdviceService(log, speech, weather, history, "Bangalore")
}

func TestProcessQueryRequiresInput(t *testing.T) {
	speech := &fakeSpeech{}
	weather := &fakeWeather{}
	history := &fakeHistory{}
	svc := newTestAdviceService(speech, weather, history)

	_, err := svc.ProcessQuery(context.Background(), dto.AdviceQuery{UserID: "u1", Language: "hi-IN"})

	require.Error(t, err)
	assert.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err))
	assert.Equal(t, http.StatusBadRequest, apperr.StatusOf(err))
	assert.Zero(t, speech.sttCalls)
	assert.Zero(t, speech.ttsCalls)
	assert.Zero(t, weather.calls)
	assert.Empty(t, history.entries)
}

func TestProcessQueryRejectsUnsupportedVoiceLanguage(t *testing.T) {
	speech := &fakeSpeech{}
	svc := newTestAdviceService(speech, &fakeWeather{}, &fakeHistory{})

	_, err := svc.ProcessQuery(context.Background(), dto.AdviceQuery{
		UserID:    "u1",
		Language:  "fr-FR",
		AudioPath: "uploads/query.wav",
	})

	require.Error(t, err)
	assert.Equal(t, apperr.KindUnsupportedLanguage, apperr.KindOf(err))
	assert.Equal(t, http.StatusBadRequest, apperr.StatusOf(err))
	assert.Zero(t, speech.sttCalls)
}

func TestProcessQueryEmptyTranscript(t *testing.T) {
	speech := &fakeSpeech{transcript: "   "}
	svc := newTestAdviceService(speech, &fakeWeather{}, &fakeHistory{})

	_, err := svc.ProcessQuery(context.Background(), dto.AdviceQuery{
		UserID:    "u1",
		Language:  "hi-IN",
		AudioPath: "uploads/query.wav",
	})

	require.Error(t, err)
	assert.Equal(t, apperr.KindEmptyTranscript, apperr.KindOf(err))
	assert.Equal(t, 1, speech.sttCalls)
	assert.Zero(t, speech.ttsCalls)
}

func TestProcessQueryHindiPestScenario(t *testing.T) {
	speech := &fakeSpeech{audio: "bW9jayBhdWRpbw=="}
	weather := &fakeWeather{}
	history := &fakeHistory{}
	svc := newTestAdviceService(speech, weather, history)

	result, err := svc.ProcessQuery(context.Background(), dto.AdviceQuery{
		UserID:   "U",
		Query:    "मेरी फसल में कीड़े हैं",
		Language: "hi-IN",
	})

	require.NoError(t, err)
	assert.Equal(t, hindiPestAdvice, result.AdviceText)
	assert.NotEmpty(t, result.AudioBase64)

	require.Len(t, history.entries, 1)
	assert.Equal(t, "U", history.entries[0].userID)
	assert.Equal(t, "मेरी फसल में कीड़े हैं", history.entries[0].query)
	assert.Equal(t, hindiPestAdvice, history.entries[0].response)

	assert.Equal(t, 1, speech.ttsCalls)
	assert.Equal(t, hindiPestAdvice, speech.lastTTSText)
	assert.Equal(t, "hi-IN", speech.lastTTSLang)
	assert.Zero(t, weather.calls)
}

func TestProcessQueryWeatherScenario(t *testing.T) {
	speech := &fakeSpeech{audio: "bW9jayBhdWRpbw=="}
	weather := &fakeWeather{data: dto.WeatherData{
		Weather: []dto.WeatherCondition{{Description: "clear sky"}},
		Main:    dto.WeatherMain{Temp: 300.15},
	}}
	history := &fakeHistory{}
	svc := newTestAdviceService(speech, weather, history)

	result, err := svc.ProcessQuery(context.Background(), dto.AdviceQuery{
		UserID:   "U",
		Query:    "आज मौसम कैसा है",
		Language: "hi-IN",
	})

	require.NoError(t, err)
	assert.Contains(t, result.AdviceText, "clear sky")
	assert.Contains(t, result.AdviceText, "26.99°C")
	assert.Equal(t, 1, weather.calls)
	require.Len(t, history.entries, 1)
}

func TestProcessQueryWeatherFailurePropagates(t *testing.T) {
	speech := &fakeSpeech{}
	weather := &fakeWeather{err: apperr.FromProvider(errors.New("boom"), "weather", http.StatusBadGateway, "weather returned status 502")}
	history := &fakeHistory{}
	svc := newTestAdviceService(speech, weather, history)

	_, err := svc.ProcessQuery(context.Background(), dto.AdviceQuery{
		UserID:   "U",
		Query:    "आज मौसम कैसा है",
		Language: "hi-IN",
	})

	require.Error(t, err)
	assert.Equal(t, apperr.KindWeatherUnavailable, apperr.KindOf(err))
	assert.Equal(t, http.StatusBadGateway, apperr.StatusOf(err))
	assert.Empty(t, history.entries)
	assert.Zero(t, speech.ttsCalls)
}

func TestProcessQueryHistoryFailureIsSwallowed(t *testing.T) {
	speech := &fakeSpeech{audio: "bW9jayBhdWRpbw=="}
	history := &fakeHistory{recordErr: errors.New("mongo down")}
	svc := newTestAdviceService(speech, &fakeWeather{}, history)

	result, err := svc.ProcessQuery(context.Background(), dto.AdviceQuery{
		UserID:   "U",
		Query:    "मेरी फसल में कीड़े हैं",
		Language: "hi-IN",
	})

	require.NoError(t, err)
	assert.Equal(t, hindiPestAdvice, result.AdviceText)
	assert.Equal(t, 1, speech.ttsCalls)
}

func TestProcessQueryRecordsBeforeSynthesis(t *testing.T) {
	speech := &fakeSpeech{ttsErr: apperr.FromProvider(errors.New("tts down"), "tts", http.StatusBadGateway, "tts returned status 502")}
	history := &fakeHistory{}
	svc := newTestAdviceService(speech, &fakeWeather{}, history)

	_, err := svc.ProcessQuery(context.Background(), dto.AdviceQuery{
		UserID:   "U",
		Query:    "मेरी फसल में कीड़े हैं",
		Language: "hi-IN",
	})

	require.Error(t, err)
	assert.Equal(t, apperr.KindProviderError, apperr.KindOf(err))
	// The entry is persisted even though synthesis failed afterwards.
	require.Len(t, history.entries, 1)
}

func TestProcessQueryUnknownLanguageFallsBack(t *testing.T) {
	speech := &fakeSpeech{audio: "bW9jayBhdWRpbw=="}
	svc := newTestAdviceService(speech, &fakeWeather{}, &fakeHistory{})

	result, err := svc.ProcessQuery(context.Background(), dto.AdviceQuery{
		UserID:   "U",
		Query:    "how do I water my crops",
		Language: "en-IN",
	})

	require.NoError(t, err)
	assert.Equal(t, locale.FallbackResponse, result.AdviceText)
}

func TestSynthesizeRequiresText(t *testing.T) {
	svc := newTestAdviceService(&fakeSpeech{}, &fakeWeather{}, &fakeHistory{})

	_, err := svc.Synthesize(context.Background(), "  ", "hi-IN")

	require.Error(t, err)
	assert.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err))
}
