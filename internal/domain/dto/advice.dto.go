package dto

// AdviceQuery is the pipeline input assembled by the advice handler. AudioPath
// points at the request-scoped temporary upload; the handler owns its cleanup.
type AdviceQuery struct {
	UserID    string
	Query     string
	Language  string
	AudioPath string
}

// AdviceResult is the localized advice plus synthesized speech returned to the
// caller. The audio travels base64-encoded over the wire.
type AdviceResult struct {
	AdviceText  string `json:"adviceText"`
	AudioBase64 string `json:"audioBase64"`
}

// SynthesisRequest is the body of the standalone text-to-speech endpoint.
type SynthesisRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

// ErrorResponse is the envelope every endpoint renders on failure.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}
