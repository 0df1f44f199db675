package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"agri-advice/internal/domain/apperr"
	"agri-advice/internal/infra/logger"
)

const (
	// SttModel is the fixed acoustic model requested for every transcription.
	SttModel = "saarika:v2.5"
	// TtsVoice is the fixed voice profile requested for every synthesis.
	TtsVoice = "male"
)

// SarvamProvider wraps the Sarvam speech API: one call per operation, no
// retries, provider errors translated into the pipeline's taxonomy.
type SarvamProvider struct {
	Logger     *logger.Logger
	HttpClient *http.Client
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
}

func NewSarvamProvider(log *logger.Logger, httpClient *http.Client, baseURL, apiKey string, timeout time.Duration) *SarvamProvider {
	return &SarvamProvider{Logger: log, HttpClient: httpClient, BaseURL: baseURL, APIKey: apiKey, Timeout: timeout}
}

type sttResponse struct {
	Transcript string `json:"transcript"`
}

type ttsResponse struct {
	Audios []string `json:"audios"`
}

// SpeechToText posts the uploaded audio file and returns the raw transcript.
func (p *SarvamProvider) SpeechToText(ctx context.Context, audioPath, language string) (string, error) {
	file, err := os.Open(audioPath)
	if err != nil {
		return "", apperr.Wrap(err, apperr.KindInvalidInput, http.StatusBadRequest, "could not read uploaded audio")
	}
	defer file.Close()

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	part, err := form.CreateFormFile("file", filepath.Base(audioPath))
	if err != nil {
		return "", apperr.FromProvider(err, "stt", 0, "failed to build STT request")
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", apperr.FromProvider(err, "stt", 0, "failed to build STT request")
	}
	form.WriteField("model", SttModel)
	form.WriteField("language_code", language)
	if err := form.Close(); err != nil {
		return "", apperr.FromProvider(err, "stt", 0, "failed to build STT request")
	}

	ctx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.BaseURL+"/speech-to-text", &buf)
	if err != nil {
		return "", apperr.FromProvider(err, "stt", 0, "failed to build STT request")
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.Header.Set("api-subscription-key", p.APIKey)

	res, err := p.HttpClient.Do(req)
	if err != nil {
		p.Logger.Error(fmt.Sprintf("STT request failed: %v", err))
		return "", transportFailure(err, "stt")
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", apperr.FromProvider(err, "stt", 0, "failed to read STT response")
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		p.Logger.Error(fmt.Sprintf("STT unexpected status %s response_body %s", res.Status, string(body)))
		return "", statusFailure("stt", res.StatusCode, body)
	}

	var parsed sttResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", apperr.FromProvider(err, "stt", 0, "failed to decode STT response")
	}

	p.Logger.Info(fmt.Sprintf("STT transcript received, length %d", len(parsed.Transcript)))
	return parsed.Transcript, nil
}

// TextToSpeech synthesizes the advice text and returns base64-encoded audio.
func (p *SarvamProvider) TextToSpeech(ctx context.Context, text, language string) (string, error) {
	payload := struct {
		Text     string `json:"text"`
		Voice    string `json:"voice"`
		Language string `json:"language"`
	}{Text: text, Voice: TtsVoice, Language: language}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return "", apperr.FromProvider(err, "tts", 0, "failed to build TTS request")
	}

	ctx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.BaseURL+"/text-to-speech", bytes.NewReader(payloadBytes))
	if err != nil {
		return "", apperr.FromProvider(err, "tts", 0, "failed to build TTS request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-subscription-key", p.APIKey)

	res, err := p.HttpClient.Do(req)
	if err != nil {
		p.Logger.Error(fmt.Sprintf("TTS request failed: %v", err))
		return "", transportFailure(err, "tts")
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", apperr.FromProvider(err, "tts", 0, "failed to read TTS response")
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		p.Logger.Error(fmt.Sprintf("TTS unexpected status %s response_body %s", res.Status, string(body)))
		return "", statusFailure("tts", res.StatusCode, body)
	}

	var parsed ttsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", apperr.FromProvider(err, "tts", 0, "failed to decode TTS response")
	}
	if len(parsed.Audios) == 0 || parsed.Audios[0] == "" {
		return "", apperr.FromProvider(nil, "tts", 0, "TTS returned no audio")
	}

	p.Logger.Info(fmt.Sprintf("TTS audio received, base64 length %d", len(parsed.Audios[0])))
	return parsed.Audios[0], nil
}
