package handlers

import (
	"fmt"
	"net/http"

	"agri-advice/internal/domain/dto"
	Iservices "agri-advice/internal/domain/interfaces/services"
	"agri-advice/internal/infra/logger"
	"agri-advice/internal/middleware"
	"agri-advice/internal/util"
)

const maxUploadBytes = 10 << 20

// defaultLanguage is assumed for text queries that carry no language tag,
// matching the behavior the web client relies on.
const defaultLanguage = "en-IN"

type AdviceHandlers struct {
	Logger        *logger.Logger
	AdviceService Iservices.IAdviceService
	UploadDir     string
}

func NewAdviceHandlers(log *logger.Logger, adviceService Iservices.IAdviceService, uploadDir string) *AdviceHandlers {
	return &AdviceHandlers{Logger: log, AdviceService: adviceService, UploadDir: uploadDir}
}

// SubmitAdvice accepts a multipart form with an optional audio upload and
// optional text query and runs the advice pipeline. The temporary upload is
// released exactly once, on every exit path, by the single deferred cleanup.
func (h *AdviceHandlers) SubmitAdvice(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		if err := r.ParseForm(); err != nil {
			writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
			return
		}
	}

	query := r.FormValue("query")
	language := r.FormValue("language")
	if language == "" {
		language = defaultLanguage
	}

	audioPath := ""
	defer func() {
		if err := util.RemoveUpload(audioPath); err != nil {
			h.Logger.Warn(fmt.Sprintf("Failed to remove upload %s: %v", audioPath, err))
		}
	}()

	if file, header, err := r.FormFile("audio"); err == nil {
		defer file.Close()

		path, err := util.SaveUpload(h.UploadDir, file, header.Filename)
		if err != nil {
			h.Logger.Error(fmt.Sprintf("Failed to store audio upload: %v", err))
			writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to store audio upload"})
			return
		}
		audioPath = path
	}

	result, err := h.AdviceService.ProcessQuery(r.Context(), dto.AdviceQuery{
		UserID:    middleware.Identity(r.Context()),
		Query:     query,
		Language:  language,
		AudioPath: audioPath,
	})
	if err != nil {
		h.Logger.Error(fmt.Sprintf("Advice pipeline failed: %v", err))
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// SynthesizeSpeech converts arbitrary text to speech in the given language.
func (h *AdviceHandlers) SynthesizeSpeech(w http.ResponseWriter, r *http.Request) {
	var req dto.SynthesisRequest
	if err := decodeJSONBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if req.Language == "" {
		req.Language = "hi-IN"
	}

	audio, err := h.AdviceService.Synthesize(r.Context(), req.Text, req.Language)
	if err != nil {
		h.Logger.Error(fmt.Sprintf("TTS failed: %v", err))
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"audioBase64": audio})
}
